package record

import (
	"iter"

	"arraystruct/internal/occupancy"
	"arraystruct/schema"
	"arraystruct/slot"
	"arraystruct/utils"
)

// Record is a fully occupied, fixed-arity sequence of values of T laid out
// by shape S. The zero Record holds no cells and is not usable; records come
// from Builder.Build, New, FromSlice, FromFunc, FromView and the
// transforming functions of this package.
type Record[S schema.Shape, T any] struct {
	vals []T
	// held marks the cells still owned by the record. Consuming operations
	// lower it as they move values out. Copies of a record share it.
	held occupancy.Mask
}

// adopt wraps fully occupied cells.
func adopt[S schema.Shape, T any](vals []T) Record[S, T] {
	held := occupancy.New(len(vals))
	held.Fill()

	return Record[S, T]{vals: vals, held: held}
}

// New returns a record holding a copy of vals, one per field in index order.
func New[S schema.Shape, T any](vals ...T) Record[S, T] {
	checkArity[S]("New", len(vals))

	cells := make([]T, len(vals))
	copy(cells, vals)

	return adopt[S](cells)
}

// FromSlice returns a record that takes ownership of vals without copying.
// The caller must not use vals afterwards.
func FromSlice[S schema.Shape, T any](vals []T) Record[S, T] {
	checkArity[S]("FromSlice", len(vals))

	return adopt[S](vals)
}

// FromFunc returns a record whose field i holds f(i).
func FromFunc[S schema.Shape, T any](f func(i int) T) Record[S, T] {
	n := schema.Of[S]().Len()

	cells := make([]T, n)
	for i := range n {
		cells[i] = f(i)
	}

	return adopt[S](cells)
}

func checkArity[S schema.Shape](op string, n int) {
	s := schema.Of[S]()
	if n != s.Len() {
		panic(violation(op, KindArity, s, -1).detail("got %d values, want %d", n, s.Len()))
	}
}

// Schema returns the schema of the record's shape.
func (r Record[S, T]) Schema() *schema.Schema {
	return schema.Of[S]()
}

// Len returns the number of fields.
func (r Record[S, T]) Len() int {
	return r.Schema().Len()
}

// Get returns the value of field i.
func (r Record[S, T]) Get(i int) T {
	return r.vals[r.index("Get", i)]
}

// Ptr returns a pointer to field i for in-place mutation. Storing through
// it does not give the record back ownership of a moved-out field; use Set.
func (r Record[S, T]) Ptr(i int) *T {
	return &r.vals[r.index("Ptr", i)]
}

// Set replaces field i with v and returns the previous value, which the
// caller now owns. The previous value is the zero value when field i was
// moved out by a consuming operation.
func (r Record[S, T]) Set(i int, v T) T {
	old, _ := r.swap("Set", i, v)
	return old
}

// With replaces field i with v, releases the previous value and returns the
// updated record. The cells are shared with r.
func (r Record[S, T]) With(i int, v T) Record[S, T] {
	if old, held := r.swap("With", i, v); held {
		slot.Release(old)
	}

	return r
}

// swap stores v in cell i and reports the previous value and whether the
// record still owned it.
func (r Record[S, T]) swap(op string, i int, v T) (T, bool) {
	i = r.index(op, i)

	old := r.vals[i]
	r.vals[i] = v

	return old, !r.held.Set(i)
}

// Field returns the value of the named field.
func (r Record[S, T]) Field(name string) T {
	return r.vals[r.lookup("Field", name)]
}

// FieldPtr returns a pointer to the named field.
func (r Record[S, T]) FieldPtr(name string) *T {
	return &r.vals[r.lookup("FieldPtr", name)]
}

// SetField is Set by field name.
func (r Record[S, T]) SetField(name string, v T) T {
	return r.Set(r.lookup("SetField", name), v)
}

// WithField is With by field name.
func (r Record[S, T]) WithField(name string, v T) Record[S, T] {
	return r.With(r.lookup("WithField", name), v)
}

// Values returns a copy of the values in index order.
func (r Record[S, T]) Values() []T {
	r.valid("Values")

	out := make([]T, len(r.vals))
	copy(out, r.vals)

	return out
}

// All iterates over index and value pairs in index order.
func (r Record[S, T]) All() iter.Seq2[int, T] {
	r.valid("All")

	return func(yield func(int, T) bool) {
		for i, v := range r.vals {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Fields iterates over field name and value pairs in index order.
func (r Record[S, T]) Fields() iter.Seq2[string, T] {
	s := r.valid("Fields")

	return func(yield func(string, T) bool) {
		for i, v := range r.vals {
			if !yield(s.FieldName(i), v) {
				return
			}
		}
	}
}

// Clone returns an independent record. Values implementing slot.Cloner are
// duplicated through Clone, others are copied by assignment. Cells moved
// out of r stay empty in the clone. If a Clone call panics, the copies
// already made are released.
func (r Record[S, T]) Clone() Record[S, T] {
	r.valid("Clone")

	cells := make([]T, len(r.vals))
	held := occupancy.New(len(r.vals))

	done := false
	defer func() {
		if !done {
			held.Each(func(i int) { slot.Release(cells[i]) })
		}
	}()

	r.held.Each(func(i int) {
		cells[i] = slot.Copy(r.vals[i])
		held.Set(i)
	})

	done = true

	return Record[S, T]{vals: cells, held: held}
}

// Release disposes of every value still held by the record and leaves its
// cells empty. Cells already moved out by a consuming operation are skipped.
func (r Record[S, T]) Release() {
	r.held.Each(func(i int) {
		slot.Release(r.take(i))
	})
}

// Map applies f to every value in index order and returns the results as a
// record of the same shape. r is consumed.
func Map[S schema.Shape, A, B any](r Record[S, A], f func(A) B) Record[S, B] {
	r.valid("Map")

	out := make([]B, len(r.vals))
	for i := range r.vals {
		out[i] = f(r.take(i))
	}

	return adopt[S](out)
}

// Equal reports whether two records hold equal values.
func Equal[S schema.Shape, T comparable](a, b Record[S, T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc reports whether two records hold pairwise equal values under eq.
func EqualFunc[S schema.Shape, A, B any](a Record[S, A], b Record[S, B], eq func(A, B) bool) bool {
	a.valid("EqualFunc")
	b.valid("EqualFunc")

	for i := range a.vals {
		if !eq(a.vals[i], b.vals[i]) {
			return false
		}
	}

	return true
}

// take moves the value of cell i out of the record.
func (r Record[S, T]) take(i int) T {
	v := r.vals[i]

	var zero T
	r.vals[i] = zero
	r.held.Clear(i)

	return v
}

// valid panics unless the record holds one cell per field.
func (r Record[S, T]) valid(op string) *schema.Schema {
	s := schema.Of[S]()
	if len(r.vals) != s.Len() {
		panic(violation(op, KindConsumed, s, -1).detail("record holds no cells"))
	}

	return s
}

func (r Record[S, T]) index(op string, i int) int {
	s := r.valid(op)
	if !utils.InBounds(i, s.Len()) {
		panic(violation(op, KindOutOfRange, s, i).detail("shape has %d fields", s.Len()))
	}

	return i
}

func (r Record[S, T]) lookup(op, name string) int {
	s := r.valid(op)

	i, ok := s.Index(name)
	if !ok {
		panic(violation(op, KindUnknownField, s, -1).detail("%q is not a field of %s", name, s))
	}

	return i
}
