package cli

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/containerd/errdefs"
)

func TestPrimitiveConverter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		prim KnownPrimitive
		in   []string
		want []any
	}{
		{String, []string{"a", "b c"}, []any{"a", "b c"}},
		{Bool, []string{"true", "0"}, []any{true, false}},
		{Byte, []string{"2", "255"}, []any{uint8(2), uint8(255)}},
		{Rune, []string{"x", "ş"}, []any{'x', 'ş'}},
		{Rune, []string{"\uFFFD"}, []any{'\uFFFD'}},
		{Int, []string{"-3"}, []any{-3}},
		{Int8, []string{"127"}, []any{int8(127)}},
		{Int16, []string{"-300"}, []any{int16(-300)}},
		{Int32, []string{"70000"}, []any{int32(70000)}},
		{Int64, []string{"9000000000"}, []any{int64(9000000000)}},
		{Uint, []string{"7"}, []any{uint(7)}},
		{Uint16, []string{"65535"}, []any{uint16(65535)}},
		{Uint32, []string{"1"}, []any{uint32(1)}},
		{Uint64, []string{"18446744073709551615"}, []any{uint64(18446744073709551615)}},
		{Float32, []string{"2.5"}, []any{float32(2.5)}},
		{Float64, []string{"1e3"}, []any{1000.0}},
		{Duration, []string{"1m30s"}, []any{90 * time.Second}},
		{Int, []string{}, []any{}},
		{Int, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.prim.String(), func(t *testing.T) {
			got, err := PrimitiveConverter(tt.prim)(tt.in)
			if err != nil {
				t.Fatalf("convert %q: %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("convert %q = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPrimitiveConverter_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		prim  KnownPrimitive
		in    []string
		index int
	}{
		{Byte, []string{"1", "256"}, 1},
		{Int8, []string{"-129"}, 0},
		{Int, []string{"2.5"}, 0},
		{Uint, []string{"-1"}, 0},
		{Bool, []string{"yes"}, 0},
		{Rune, []string{"ab"}, 0},
		{Rune, []string{""}, 0},
		{Rune, []string{"\xff"}, 0},
		{Rune, []string{"\uFFFDx"}, 0},
		{Float32, []string{"2.5f"}, 0},
		{Duration, []string{"10"}, 0},
	}
	for _, tt := range tests {
		_, err := PrimitiveConverter(tt.prim)(tt.in)
		var ce *ConversionError
		if !errors.As(err, &ce) {
			t.Fatalf("%s %q: expected *ConversionError, got %v", tt.prim, tt.in, err)
		}
		if ce.Index != tt.index || ce.Value != tt.in[tt.index] || ce.Type != tt.prim {
			t.Fatalf("%s %q: unexpected error fields %+v", tt.prim, tt.in, ce)
		}
		if !errors.Is(err, errdefs.ErrInvalidArgument) {
			t.Fatalf("%s %q: error %v should be ErrInvalidArgument", tt.prim, tt.in, err)
		}
	}
}

func TestParseKnownPrimitive(t *testing.T) {
	t.Parallel()
	for i, name := range primitiveNames {
		got, err := ParseKnownPrimitive(name)
		if err != nil || got != KnownPrimitive(i) {
			t.Fatalf("ParseKnownPrimitive(%q) = %v, %v", name, got, err)
		}
	}
	if got, err := ParseKnownPrimitive(" Float64 "); err != nil || got != Float64 {
		t.Fatalf("ParseKnownPrimitive is case-insensitive: got %v, %v", got, err)
	}
	if got, err := ParseKnownPrimitive(""); err != nil || got != String {
		t.Fatalf("empty name should mean string: got %v, %v", got, err)
	}
	if _, err := ParseKnownPrimitive("complex128"); !errors.Is(err, errdefs.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if s := KnownPrimitive(200).String(); s != "KnownPrimitive(200)" {
		t.Fatalf("String() = %q", s)
	}
}

func TestDescriptor_ConvertWithoutConverter(t *testing.T) {
	t.Parallel()
	d := NewDescriptor(One, []string{"one"})
	got, err := d.Convert([]string{"a", "b"})
	if err != nil || !reflect.DeepEqual(got, []any{"a", "b"}) {
		t.Fatalf("Convert = %v, %v", got, err)
	}
	if got, _ := d.Convert(nil); got != nil {
		t.Fatalf("Convert(nil) = %v, want nil", got)
	}
}
