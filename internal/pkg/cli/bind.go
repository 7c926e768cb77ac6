package cli

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/containerd/errdefs"
)

// Bind stores the results of a parser built by Describe into dst, which
// must be a non-nil pointer to the described struct.
//
// A bool field is set to true by a bare occurrence, or to the parsed value
// when one is given. Other scalar fields take the last value of the last
// occurrence. Slice fields receive every value of every occurrence.
func Bind(dst any, parsed *Parsed[string]) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("Bind: dst must be a non-nil pointer to a struct: %w", errdefs.ErrInvalidArgument)
	}
	if parsed == nil {
		return nil
	}

	var errs []error
	walkStruct(rv, true, func(sf reflect.StructField, fv reflect.Value) {
		_, hasFlag := sf.Tag.Lookup("cli_flag")
		_, hasPos := sf.Tag.Lookup("cli_position")
		if !hasFlag && !hasPos {
			return
		}
		occurrences := parsed.Lookup(sf.Name)
		if len(occurrences) == 0 {
			return
		}
		if err := bindField(fv, occurrences); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", sf.Name, err))
		}
	})
	return errors.Join(errs...)
}

func bindField(fv reflect.Value, occurrences []Result[string]) error {
	v := fv
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		v = v.Elem()
	}

	if v.Kind() == reflect.Slice {
		for _, r := range occurrences {
			for _, val := range r.Values {
				elem := reflect.New(v.Type().Elem()).Elem()
				if err := setValue(elem, val); err != nil {
					return err
				}
				v.Set(reflect.Append(v, elem))
			}
		}
		return nil
	}

	last := occurrences[len(occurrences)-1]
	if v.Kind() == reflect.Bool && len(last.Values) == 0 {
		v.SetBool(true)
		return nil
	}
	if len(last.Values) == 0 {
		return fmt.Errorf("requires a value: %w", errdefs.ErrInvalidArgument)
	}
	return setValue(v, last.Values[len(last.Values)-1])
}

func setValue(v reflect.Value, val string) error {
	if v.Type() == durationType {
		d, err := time.ParseDuration(val)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch v.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return err
		}
		v.SetBool(b)
		return nil
	case reflect.String:
		v.SetString(val)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return err
		}
		if v.OverflowInt(n) {
			return fmt.Errorf("value %q overflows field of type %s", val, v.Type())
		}
		v.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return err
		}
		if v.OverflowUint(n) {
			return fmt.Errorf("value %q overflows field of type %s", val, v.Type())
		}
		v.SetUint(n)
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), v.Type().Bits())
		if err != nil {
			return err
		}
		if v.OverflowFloat(f) {
			return fmt.Errorf("value %q overflows field of type %s", val, v.Type())
		}
		v.SetFloat(f)
		return nil
	}
	return fmt.Errorf("unsupported field kind %s", v.Kind())
}
