package editable

import (
	"fmt"
	"reflect"
	"strings"
)

// Fields are matched by the name in their yaml tag, which is also the name an
// overrides document uses. A field tagged `editable:"-"` can be read but not
// written, and is skipped by Leaves.
const tagName = "yaml"

// Resolve walks cfg along p and returns the value found there.
func Resolve(cfg any, p Path) (any, error) {
	if p.IsZero() {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	v, _, err := walk(reflect.ValueOf(cfg), p)
	if err != nil {
		return nil, err
	}
	if !v.IsValid() {
		return nil, nil
	}
	return v.Interface(), nil
}

// ResolveString is Resolve for string leaves.
func ResolveString(cfg any, p Path) (string, error) {
	v, err := Resolve(cfg, p)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s holds %T", ErrNotString, p, v)
	}
	return s, nil
}

// Set writes value to the string leaf at p. cfgPtr must be a pointer to a
// configuration struct.
func Set(cfgPtr any, p Path, value string) error {
	if p.IsZero() {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	root := reflect.ValueOf(cfgPtr)
	if root.Kind() != reflect.Pointer || root.IsNil() {
		return fmt.Errorf("%w: Set needs a non-nil pointer, got %T", ErrNotTraversable, cfgPtr)
	}

	v, field, err := walk(root, p)
	if err != nil {
		return err
	}
	if field != nil && isExcluded(*field) {
		return fmt.Errorf("%w: %s", ErrNotEditable, p)
	}
	if v.Kind() != reflect.String {
		return fmt.Errorf("%w: %s holds %s", ErrNotString, p, v.Kind())
	}
	if !v.CanSet() {
		return fmt.Errorf("%w: %s is not addressable", ErrNotTraversable, p)
	}
	v.SetString(value)
	return nil
}

// walk returns the value at p and, when the last segment is a field, its
// struct field description.
func walk(v reflect.Value, p Path) (reflect.Value, *reflect.StructField, error) {
	var last *reflect.StructField
	for i, seg := range p.segs {
		v = indirect(v)
		if !v.IsValid() {
			return reflect.Value{}, nil, fmt.Errorf("%w: nil value before %s", ErrNotTraversable, prefix(p, i+1))
		}

		if seg.IsIndex {
			if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
				return reflect.Value{}, nil, fmt.Errorf("%w: %s is %s, not a sequence", ErrNotTraversable, prefix(p, i), v.Kind())
			}
			if seg.Index < 0 || seg.Index >= v.Len() {
				return reflect.Value{}, nil, fmt.Errorf("%w: %s has %d entries", ErrIndexOutOfRange, prefix(p, i+1), v.Len())
			}
			v = v.Index(seg.Index)
			last = nil
			continue
		}

		if v.Kind() != reflect.Struct {
			return reflect.Value{}, nil, fmt.Errorf("%w: field %q on %s", ErrNotTraversable, seg.Name, v.Kind())
		}
		sf, ok := fieldByTag(v.Type(), seg.Name)
		if !ok {
			return reflect.Value{}, nil, fmt.Errorf("%w: %s", ErrUnknownField, prefix(p, i+1))
		}
		v = v.FieldByIndex(sf.Index)
		last = &sf
	}
	return indirect(v), last, nil
}

func prefix(p Path, n int) string {
	return Path{segs: p.segs[:n]}.String()
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func fieldByTag(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if fieldName(sf) == name {
			return sf, true
		}
	}
	return reflect.StructField{}, false
}

func fieldName(sf reflect.StructField) string {
	tag := sf.Tag.Get(tagName)
	if tag == "-" {
		return ""
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return sf.Name
}

func isExcluded(sf reflect.StructField) bool {
	return sf.Tag.Get("editable") == "-"
}
