package schema

import (
	"fmt"
	"reflect"

	"arraystruct/internal/ident"
)

// FieldTag overrides the field name derived from a struct field.
const FieldTag = "field"

// FromStruct derives a schema from a struct type whose fields are all of one
// type. Field names come from the `field` tag when present and are the
// snake_case Go field names otherwise, so
//
//	type View[T any] struct{ R, G, B T }
//
// yields fields r, g and b.
func FromStruct(name string, t reflect.Type) (*Schema, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%s: %w", t, ErrNotStruct)
	}

	if _, err := elemType(t); err != nil {
		return nil, err
	}

	names := make([]string, t.NumField())
	for i := range t.NumField() {
		names[i] = fieldName(t.Field(i))
	}

	return New(name, names...)
}

// FromType is FromStruct for a type parameter.
func FromType[V any](name string) (*Schema, error) {
	return FromStruct(name, reflect.TypeFor[V]())
}

// MustFromType is like FromType but panics on error.
func MustFromType[V any](name string) *Schema {
	s, err := FromType[V](name)
	if err != nil {
		panic(err)
	}

	return s
}

// CheckStruct verifies that struct type t lists exactly the fields of s, in
// index order, each of type elem.
func CheckStruct(s *Schema, t reflect.Type, elem reflect.Type) error {
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("%s: %w", t, ErrNotStruct)
	}

	got, err := elemType(t)
	if err != nil {
		return err
	}

	if got != elem {
		return fmt.Errorf("%s: fields are %s, want %s: %w", t, got, elem, ErrMixedTypes)
	}

	if t.NumField() != s.Len() {
		return fmt.Errorf("%s has %d fields, shape %s has %d: %w", t, t.NumField(), s.Name(), s.Len(), ErrLayout)
	}

	for i := range t.NumField() {
		name := fieldName(t.Field(i))
		if name != s.FieldName(i) {
			return fmt.Errorf("%s field %d is %q, shape %s has %q: %w", t, i, name, s.Name(), s.FieldName(i), ErrLayout)
		}
	}

	return nil
}

// elemType returns the common field type of struct t.
func elemType(t reflect.Type) (reflect.Type, error) {
	if t.NumField() == 0 {
		return nil, fmt.Errorf("%s: %w", t, ErrNoFields)
	}

	var elem reflect.Type

	for i := range t.NumField() {
		f := t.Field(i)

		if f.Anonymous {
			return nil, fmt.Errorf("%s.%s: %w", t, f.Name, ErrEmbedded)
		}

		if !f.IsExported() {
			return nil, fmt.Errorf("%s.%s: %w", t, f.Name, ErrUnexported)
		}

		if elem == nil {
			elem = f.Type
		} else if f.Type != elem {
			return nil, fmt.Errorf("%s.%s is %s, want %s: %w", t, f.Name, f.Type, elem, ErrMixedTypes)
		}
	}

	return elem, nil
}

func fieldName(f reflect.StructField) string {
	if tag := f.Tag.Get(FieldTag); tag != "" && tag != "-" {
		return tag
	}

	return ident.Snake(f.Name)
}
