package record

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

const unsetMarker = "<unset>"

// String renders the record as Shape{field: value, ...}.
func (r Record[S, T]) String() string {
	s := r.Schema()
	if len(r.vals) != s.Len() {
		return s.Name() + "{}"
	}

	parts := make([]string, len(r.vals))
	for i, v := range r.vals {
		parts[i] = s.FieldName(i) + ": " + dumper.Sprint(v)
	}

	return s.Name() + "{" + strings.Join(parts, ", ") + "}"
}

// GoString renders every field with a full dump of its value, for %#v.
func (r Record[S, T]) GoString() string {
	s := r.Schema()

	var b strings.Builder

	b.WriteString(s.Name() + " {\n")

	for i, v := range r.vals {
		b.WriteString(dumper.Indent + s.FieldName(i) + ": ")
		b.WriteString(dumper.Sdump(v))
	}

	b.WriteString("}")

	return b.String()
}

// String renders the builder, showing only the fields that are set.
func (b *Builder[S, T]) String() string {
	s := b.Schema()

	parts := make([]string, s.Len())
	for i := range parts {
		val := unsetMarker
		if b.IsSet(i) {
			val = dumper.Sprint(*b.cells.At(i))
		}

		parts[i] = s.FieldName(i) + ": " + val
	}

	prefix := s.Name() + "Builder"
	if b.spent {
		prefix += "(spent)"
	}

	return prefix + "{" + strings.Join(parts, ", ") + "}"
}

// GoString dumps every set field, for %#v.
func (b *Builder[S, T]) GoString() string {
	s := b.Schema()

	var out strings.Builder

	out.WriteString(s.Name() + "Builder {\n")

	for i := range s.Len() {
		out.WriteString(dumper.Indent + s.FieldName(i) + ": ")

		if !b.IsSet(i) {
			out.WriteString(unsetMarker + "\n")
			continue
		}

		out.WriteString(dumper.Sdump(*b.cells.At(i)))
	}

	out.WriteString("}")

	return out.String()
}
