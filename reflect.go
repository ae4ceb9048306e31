package nestedtext

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Marshal returns the NestedText encoding of v.
//
// Marshal converts a Go value into a Value tree and then encodes that
// tree, the way Encoder.Encode does. Because NestedText has only one
// leaf type, every scalar Go value is converted to its string form
// (fmt.Sprint) rather than coerced back on decode — round-tripping
// through Unmarshal into the same numeric type is supported, but the
// wire form is always a plain string, matching the format's "no type
// inference" rule.
//
// Struct fields can be renamed or skipped with an `nt` tag:
//
//	Field string `nt:"my_field"`
//	Field string `nt:"-"`
func Marshal(v any, opts ...EncodeOption) ([]byte, error) {
	val, err := valueFromReflect(reflect.ValueOf(v))
	if err != nil {
		return nil, err
	}
	return MarshalValue(val, opts...)
}

func valueFromReflect(v reflect.Value) (Value, error) {
	v = indirectReflect(v)
	if !v.IsValid() {
		return String(""), nil
	}

	switch v.Kind() {
	case reflect.String:
		return String(v.String()), nil
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return String(fmt.Sprint(v.Interface())), nil
	case reflect.Slice, reflect.Array:
		out := make(List, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem, err := valueFromReflect(v.Index(i))
			if err != nil {
				return nil, err
			}
			out = append(out, elem)
		}
		return out, nil
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, errors.New("nestedtext: map key type must be string")
		}
		out := NewMapping()
		keys := v.MapKeys()
		for _, k := range keys {
			elem, err := valueFromReflect(v.MapIndex(k))
			if err != nil {
				return nil, err
			}
			out.Set(k.String(), elem)
		}
		return out, nil
	case reflect.Struct:
		out := NewMapping()
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			name, skip := fieldTag(field)
			if skip {
				continue
			}
			elem, err := valueFromReflect(v.Field(i))
			if err != nil {
				return nil, err
			}
			out.Set(name, elem)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("nestedtext: unsupported type %s", v.Type())
	}
}

// decodeInto assigns val, a decoded Value tree, into the Go value
// pointed to by v.
func decodeInto(v any, val Value) error {
	if v == nil {
		return errors.New("nestedtext: cannot unmarshal into a nil value")
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("nestedtext: destination must be a non-nil pointer")
	}
	return setReflect(rv.Elem(), val)
}

func setReflect(dst reflect.Value, src Value) error {
	if src == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}

	if dst.Kind() == reflect.Ptr {
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return setReflect(dst.Elem(), src)
	}

	if dst.Kind() == reflect.Interface {
		native, err := toNative(src)
		if err != nil {
			return err
		}
		dst.Set(reflect.ValueOf(native))
		return nil
	}

	switch t := src.(type) {
	case String:
		return setScalar(dst, string(t))
	case List:
		if dst.Kind() != reflect.Slice {
			return fmt.Errorf("nestedtext: cannot unmarshal list into %s", dst.Type())
		}
		out := reflect.MakeSlice(dst.Type(), len(t), len(t))
		for i, elem := range t {
			if err := setReflect(out.Index(i), elem); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
		dst.Set(out)
		return nil
	case *Mapping:
		switch dst.Kind() {
		case reflect.Struct:
			return setStructFields(dst, t)
		case reflect.Map:
			if dst.Type().Key().Kind() != reflect.String {
				return errors.New("nestedtext: map key type must be string")
			}
			out := reflect.MakeMapWithSize(dst.Type(), t.Len())
			var err error
			t.Range(func(key string, value Value) bool {
				elem := reflect.New(dst.Type().Elem()).Elem()
				if err = setReflect(elem, value); err != nil {
					return false
				}
				out.SetMapIndex(reflect.ValueOf(key), elem)
				return true
			})
			if err != nil {
				return err
			}
			dst.Set(out)
			return nil
		default:
			return fmt.Errorf("nestedtext: cannot unmarshal mapping into %s", dst.Type())
		}
	default:
		return fmt.Errorf("nestedtext: unsupported value type %T", src)
	}
}

func setStructFields(dst reflect.Value, m *Mapping) error {
	t := dst.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, skip := fieldTag(field)
		if skip {
			continue
		}
		val, ok := m.Get(name)
		if !ok {
			continue
		}
		if err := setReflect(dst.Field(i), val); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	return nil
}

// setScalar converts the single NestedText leaf type, string, into dst's
// Go type. Conversions beyond string are a convenience for round-tripping
// already-typed Go structs; they are never inferred on the way out.
func setScalar(dst reflect.Value, s string) error {
	switch dst.Kind() {
	case reflect.String:
		dst.SetString(s)
		return nil
	case reflect.Bool:
		switch s {
		case "true":
			dst.SetBool(true)
		case "false":
			dst.SetBool(false)
		default:
			return fmt.Errorf("nestedtext: cannot unmarshal %q into bool", s)
		}
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
			return fmt.Errorf("nestedtext: cannot unmarshal %q into %s", s, dst.Type())
		}
		if dst.OverflowInt(n) {
			return fmt.Errorf("nestedtext: value %q overflows %s", s, dst.Type())
		}
		dst.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var n uint64
		if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
			return fmt.Errorf("nestedtext: cannot unmarshal %q into %s", s, dst.Type())
		}
		if dst.OverflowUint(n) {
			return fmt.Errorf("nestedtext: value %q overflows %s", s, dst.Type())
		}
		dst.SetUint(n)
		return nil
	case reflect.Float32, reflect.Float64:
		var f float64
		if _, err := fmt.Sscanf(s, "%g", &f); err != nil {
			return fmt.Errorf("nestedtext: cannot unmarshal %q into %s", s, dst.Type())
		}
		dst.SetFloat(f)
		return nil
	default:
		return fmt.Errorf("nestedtext: cannot unmarshal string into %s", dst.Type())
	}
}

// ToInterface converts a Value tree into the plain any form (string,
// []any, map[string]any) that encoding/json and similar stdlib
// marshalers already understand, for debugging and interop (e.g. the nt
// CLI's json subcommand).
func ToInterface(v Value) (any, error) {
	return toNative(v)
}

// toNative converts a Value tree into the plain any form (string,
// []any, map[string]any) used when decoding into an interface{}.
func toNative(v Value) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case String:
		return string(t), nil
	case List:
		out := make([]any, len(t))
		for i, elem := range t {
			n, err := toNative(elem)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case *Mapping:
		out := make(map[string]any, t.Len())
		var err error
		t.Range(func(key string, value Value) bool {
			var n any
			n, err = toNative(value)
			if err != nil {
				return false
			}
			out[key] = n
			return true
		})
		if err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, fmt.Errorf("nestedtext: unsupported value type %T", v)
	}
}

// fieldTag resolves a struct field's NestedText key name and whether it
// should be skipped, per its `nt` tag.
func fieldTag(field reflect.StructField) (name string, skip bool) {
	tag, ok := field.Tag.Lookup("nt")
	if !ok || tag == "" {
		return field.Name, false
	}
	name = strings.SplitN(tag, ",", 2)[0]
	if name == "-" {
		return "", true
	}
	if name == "" {
		name = field.Name
	}
	return name, false
}

func indirectReflect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
