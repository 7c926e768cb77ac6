package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/containerd/errdefs"
)

// Converter turns the raw values collected for one argument occurrence into
// typed values. A nil input means "no values" and must yield nil.
type Converter func(values []string) ([]any, error)

// KnownPrimitive names a built-in converter.
type KnownPrimitive uint8

const (
	String KnownPrimitive = iota
	Bool
	Byte
	Rune
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Duration
)

var primitiveNames = [...]string{
	String:   "string",
	Bool:     "bool",
	Byte:     "byte",
	Rune:     "rune",
	Int:      "int",
	Int8:     "int8",
	Int16:    "int16",
	Int32:    "int32",
	Int64:    "int64",
	Uint:     "uint",
	Uint8:    "uint8",
	Uint16:   "uint16",
	Uint32:   "uint32",
	Uint64:   "uint64",
	Float32:  "float32",
	Float64:  "float64",
	Duration: "duration",
}

func (p KnownPrimitive) String() string {
	if int(p) < len(primitiveNames) {
		return primitiveNames[p]
	}
	return fmt.Sprintf("KnownPrimitive(%d)", uint8(p))
}

// ParseKnownPrimitive maps a type name ("int", "float64", ...) to its
// primitive. Matching is case-insensitive; "" means string.
func ParseKnownPrimitive(name string) (KnownPrimitive, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return String, nil
	}
	for i, n := range primitiveNames {
		if n == name {
			return KnownPrimitive(i), nil
		}
	}
	return 0, fmt.Errorf("unknown primitive type %q: %w", name, errdefs.ErrInvalidArgument)
}

// ConversionError reports a value a built-in converter could not parse.
type ConversionError struct {
	Index int
	Value string
	Type  KnownPrimitive
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert value %d (%q) to %s: %v", e.Index, e.Value, e.Type, e.Err)
}

func (e *ConversionError) Unwrap() []error {
	return []error{e.Err, errdefs.ErrInvalidArgument}
}

// PrimitiveConverter returns the converter for p. It panics on an unknown
// primitive, which can only come from a programming error.
func PrimitiveConverter(p KnownPrimitive) Converter {
	parse := primitiveParser(p)
	return func(values []string) ([]any, error) {
		if values == nil {
			return nil, nil
		}
		out := make([]any, len(values))
		for i, v := range values {
			x, err := parse(v)
			if err != nil {
				return nil, &ConversionError{Index: i, Value: v, Type: p, Err: err}
			}
			out[i] = x
		}
		return out, nil
	}
}

func primitiveParser(p KnownPrimitive) func(string) (any, error) {
	signed := func(bits int, conv func(int64) any) func(string) (any, error) {
		return func(s string) (any, error) {
			n, err := strconv.ParseInt(s, 10, bits)
			if err != nil {
				return nil, err
			}
			return conv(n), nil
		}
	}
	unsigned := func(bits int, conv func(uint64) any) func(string) (any, error) {
		return func(s string) (any, error) {
			n, err := strconv.ParseUint(s, 10, bits)
			if err != nil {
				return nil, err
			}
			return conv(n), nil
		}
	}

	switch p {
	case String:
		return func(s string) (any, error) { return s, nil }
	case Bool:
		return func(s string) (any, error) { return strconv.ParseBool(s) }
	case Rune:
		return func(s string) (any, error) {
			r, size := utf8.DecodeRuneInString(s)
			if (r == utf8.RuneError && size <= 1) || size != len(s) {
				return nil, fmt.Errorf("want exactly one character")
			}
			return r, nil
		}
	case Int:
		return signed(strconv.IntSize, func(n int64) any { return int(n) })
	case Int8:
		return signed(8, func(n int64) any { return int8(n) })
	case Int16:
		return signed(16, func(n int64) any { return int16(n) })
	case Int32:
		return signed(32, func(n int64) any { return int32(n) })
	case Int64:
		return signed(64, func(n int64) any { return n })
	case Uint:
		return unsigned(strconv.IntSize, func(n uint64) any { return uint(n) })
	case Byte, Uint8:
		return unsigned(8, func(n uint64) any { return uint8(n) })
	case Uint16:
		return unsigned(16, func(n uint64) any { return uint16(n) })
	case Uint32:
		return unsigned(32, func(n uint64) any { return uint32(n) })
	case Uint64:
		return unsigned(64, func(n uint64) any { return n })
	case Float32:
		return func(s string) (any, error) {
			f, err := strconv.ParseFloat(s, 32)
			if err != nil {
				return nil, err
			}
			return float32(f), nil
		}
	case Float64:
		return func(s string) (any, error) { return strconv.ParseFloat(s, 64) }
	case Duration:
		return func(s string) (any, error) { return time.ParseDuration(s) }
	default:
		panic(fmt.Sprintf("cli: unknown primitive %d", uint8(p)))
	}
}
