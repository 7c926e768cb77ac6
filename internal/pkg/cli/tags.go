package cli

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// FieldInfo is the payload of descriptors built by Describe.
type FieldInfo struct {
	Name        string
	Description string
	Type        reflect.Type
}

// Describe builds one descriptor per tagged field of the struct v (or
// pointer to it). The key of each descriptor is the Go field name.
//
//	type Options struct {
//		Config string   `cli_position:"0"`
//		Count  int      `cli_flag:"count" cli_flag_alternatives:"c" cli_priority:"1"`
//		Tags   []string `cli_flag:"tag" cli_compare:"exact"`
//	}
//
// Recognized tags: cli_flag (primary alias), cli_flag_alternatives
// (pipe-separated extra aliases), cli_position, cli_priority, cli_compare
// and cli_description. Anonymous structs and fields tagged cli_embed are
// flattened.
func Describe(v any) ([]Descriptor[string], error) {
	if v == nil {
		return nil, errors.New("Describe: nil value")
	}
	typ := reflect.TypeOf(v)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("Describe: %s is not a struct", typ)
	}

	var (
		descs []Descriptor[string]
		errs  []string
	)
	walkStruct(reflect.ValueOf(v), false, func(sf reflect.StructField, _ reflect.Value) {
		flag, hasFlag := sf.Tag.Lookup("cli_flag")
		altSpec, hasAlt := sf.Tag.Lookup("cli_flag_alternatives")
		posSpec, hasPos := sf.Tag.Lookup("cli_position")
		prioSpec, hasPrio := sf.Tag.Lookup("cli_priority")
		cmpSpec, hasCmp := sf.Tag.Lookup("cli_compare")

		// skip untagged fields
		if !hasFlag && !hasPos {
			if hasAlt || hasPrio || hasCmp {
				errs = append(errs, fmt.Sprintf("%s: field %q has cli tags but neither cli_flag nor cli_position", typ, sf.Name))
			}
			return
		}

		var aliases []string
		if hasFlag {
			if strings.TrimSpace(flag) == "" {
				errs = append(errs, fmt.Sprintf("%s: field %q has empty cli_flag", typ, sf.Name))
			} else {
				aliases = append(aliases, flag)
			}
		}
		if hasAlt {
			if !hasFlag {
				errs = append(errs, fmt.Sprintf("%s: field %q has cli_flag_alternatives but no cli_flag", typ, sf.Name))
			}
			for _, a := range strings.Split(altSpec, "|") {
				a = strings.TrimSpace(a)
				if a == "" {
					errs = append(errs, fmt.Sprintf("%s: field %q has empty cli_flag_alternative", typ, sf.Name))
					continue
				}
				if a == flag {
					errs = append(errs, fmt.Sprintf("%s: field %q cli_flag_alternative %q duplicates cli_flag", typ, sf.Name, a))
					continue
				}
				aliases = append(aliases, a)
			}
			if dup := firstDuplicate(aliases); dup != "" {
				errs = append(errs, fmt.Sprintf("%s: field %q has duplicate cli_flag_alternative %q", typ, sf.Name, dup))
			}
		}

		opts := []DescriptorOption{WithPayload(FieldInfo{
			Name:        sf.Name,
			Description: sf.Tag.Get("cli_description"),
			Type:        sf.Type,
		})}
		if hasPos {
			n, err := strconv.Atoi(strings.TrimSpace(posSpec))
			if err != nil || n < 0 {
				errs = append(errs, fmt.Sprintf("%s: field %q has invalid cli_position %q", typ, sf.Name, posSpec))
			}
			opts = append(opts, AtPosition(n))
		}
		if hasPrio {
			n, err := strconv.Atoi(strings.TrimSpace(prioSpec))
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s: field %q has invalid cli_priority %q", typ, sf.Name, prioSpec))
			}
			opts = append(opts, WithPriority(n))
		}
		if hasCmp {
			c, err := ParseComparison(cmpSpec)
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s: field %q: %v", typ, sf.Name, err))
			}
			opts = append(opts, WithComparison(c))
		}
		prim, ok := primitiveFor(sf.Type)
		if !ok {
			errs = append(errs, fmt.Sprintf("%s: field %q has unsupported type %s", typ, sf.Name, sf.Type))
			return
		}
		opts = append(opts, WithPrimitive(prim))

		descs = append(descs, NewDescriptor(sf.Name, aliases, opts...))
	})

	if len(errs) > 0 {
		return nil, errors.New("Describe:\n  - " + strings.Join(errs, "\n  - "))
	}
	return descs, nil
}

// ParseInto describes dst, parses args with the resulting parser and binds
// the results back into dst.
func ParseInto(dst any, args []string, opts ...Option) (*Parsed[string], error) {
	descs, err := Describe(dst)
	if err != nil {
		return nil, err
	}
	p, err := New(descs, opts...)
	if err != nil {
		return nil, err
	}
	parsed, err := p.Parse(args)
	if err != nil {
		return nil, err
	}
	if err := Bind(dst, parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

var durationType = reflect.TypeOf(time.Duration(0))

func primitiveFor(t reflect.Type) (KnownPrimitive, bool) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	if t == durationType {
		return Duration, true
	}
	switch t.Kind() {
	case reflect.String:
		return String, true
	case reflect.Bool:
		return Bool, true
	case reflect.Int:
		return Int, true
	case reflect.Int8:
		return Int8, true
	case reflect.Int16:
		return Int16, true
	case reflect.Int32:
		return Int32, true
	case reflect.Int64:
		return Int64, true
	case reflect.Uint:
		return Uint, true
	case reflect.Uint8:
		return Uint8, true
	case reflect.Uint16:
		return Uint16, true
	case reflect.Uint32:
		return Uint32, true
	case reflect.Uint64:
		return Uint64, true
	case reflect.Float32:
		return Float32, true
	case reflect.Float64:
		return Float64, true
	}
	return 0, false
}

// walkStruct recursively visits exported fields, following anonymous
// embedded structs and fields tagged cli_embed. With alloc set, nil embedded
// pointers are allocated so that visited fields are settable.
func walkStruct(v reflect.Value, alloc bool, visit func(sf reflect.StructField, fv reflect.Value)) {
	if !v.IsValid() {
		return
	}
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v = reflect.New(v.Type().Elem()).Elem()
		} else {
			v = v.Elem()
		}
	}
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		// skip unexported fields
		if sf.PkgPath != "" {
			continue
		}
		fv := v.Field(i)

		_, embed := sf.Tag.Lookup("cli_embed")
		if sf.Anonymous || embed {
			switch fv.Kind() {
			case reflect.Struct:
				walkStruct(fv, alloc, visit)
				continue
			case reflect.Pointer:
				if fv.Type().Elem().Kind() != reflect.Struct {
					break
				}
				if fv.IsNil() && alloc && fv.CanSet() {
					fv.Set(reflect.New(fv.Type().Elem()))
				}
				walkStruct(fv, alloc, visit)
				continue
			}
		}
		visit(sf, fv)
	}
}

func firstDuplicate(ss []string) string {
	seen := map[string]struct{}{}
	for _, s := range ss {
		if _, ok := seen[s]; ok {
			return s
		}
		seen[s] = struct{}{}
	}
	return ""
}
