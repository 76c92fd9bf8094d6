package schema

import (
	"fmt"
	"strings"

	"arraystruct/internal/ident"
)

// Field is one named position of a shape.
type Field struct {
	Name  string
	Index int
}

// Schema is the ordered mapping from field name to fixed index shared by all
// records of one shape. A Schema is immutable once built.
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
}

// New builds a schema called name whose fields take indices in the given
// order.
func New(name string, fields ...string) (*Schema, error) {
	if !ident.Valid(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("shape %s: %w", name, ErrNoFields)
	}

	s := &Schema{
		name:   name,
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	for i, f := range fields {
		if !ident.Valid(f) {
			return nil, fmt.Errorf("shape %s: field %d %q: %w", name, i, f, ErrInvalidField)
		}

		if prev, dup := s.index[f]; dup {
			return nil, fmt.Errorf("shape %s: field %q at %d and %d: %w", name, f, prev, i, ErrDuplicateField)
		}

		s.fields[i] = Field{Name: f, Index: i}
		s.index[f] = i
	}

	return s, nil
}

// MustNew is like New but panics on error. It is intended for package-level
// shape declarations.
func MustNew(name string, fields ...string) *Schema {
	s, err := New(name, fields...)
	if err != nil {
		panic(err)
	}

	return s
}

// Name returns the shape name.
func (s *Schema) Name() string { return s.name }

// Len returns the number of fields, the arity N of the shape.
func (s *Schema) Len() int { return len(s.fields) }

// Fields returns the fields in index order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)

	return out
}

// Names returns the field names in index order.
func (s *Schema) Names() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.Name
	}

	return out
}

// Index returns the index of the named field.
func (s *Schema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// FieldName returns the name of the field at index i, or "" when i is out
// of range.
func (s *Schema) FieldName(i int) string {
	if i < 0 || i >= len(s.fields) {
		return ""
	}

	return s.fields[i].Name
}

// LenConst returns the conventional name of the arity constant, e.g. RGB_LEN.
func (s *Schema) LenConst() string {
	return ident.LenConst(s.name)
}

// IndexConst returns the conventional name of a field's index constant,
// e.g. RGB_IDX_R.
func (s *Schema) IndexConst(field string) string {
	return ident.IndexConst(s.name, field)
}

// Equal reports whether two schemas have the same name and field layout.
func (s *Schema) Equal(o *Schema) bool {
	if s == o {
		return true
	}

	if s == nil || o == nil || s.name != o.name || len(s.fields) != len(o.fields) {
		return false
	}

	for i := range s.fields {
		if s.fields[i] != o.fields[i] {
			return false
		}
	}

	return true
}

// String renders the schema as Name{a, b, c}.
func (s *Schema) String() string {
	return s.name + "{" + strings.Join(s.Names(), ", ") + "}"
}
