package record

import (
	"strings"

	"go.uber.org/zap"

	"arraystruct/internal/occupancy"
	"arraystruct/schema"
	"arraystruct/slot"
	"arraystruct/utils"
)

// Builder constructs a Record[S, T] one field at a time.
//
// Each field is set exactly once. Build succeeds only when every field is
// set and hands the values to the record without copying them. A builder
// that is abandoned must be closed: Close releases exactly the fields that
// were set. After Build or Close the builder is spent and every further call
// except Close panics.
type Builder[S schema.Shape, T any] struct {
	cells *slot.Storage[T]
	occ   occupancy.Mask
	spent bool
}

// Start returns a builder with no field set.
func Start[S schema.Shape, T any]() *Builder[S, T] {
	n := schema.Of[S]().Len()

	return &Builder[S, T]{
		cells: slot.New[T](n),
		occ:   occupancy.New(n),
	}
}

// Schema returns the schema of the builder's shape.
func (b *Builder[S, T]) Schema() *schema.Schema {
	return schema.Of[S]()
}

// Len returns the number of fields of the shape.
func (b *Builder[S, T]) Len() int {
	return b.Schema().Len()
}

// Set stores v in the unset field i and returns the builder.
func (b *Builder[S, T]) Set(i int, v T) *Builder[S, T] {
	b.checkIndex("Set", i)

	if b.occ.Has(i) {
		panic(violation("Set", KindDoubleSet, b.Schema(), i))
	}

	b.cells.Write(i, v)
	b.occ.Set(i)

	return b
}

// SetField is Set by field name.
func (b *Builder[S, T]) SetField(name string, v T) *Builder[S, T] {
	b.checkLive("SetField")

	i, ok := b.Schema().Index(name)
	if !ok {
		panic(violation("SetField", KindUnknownField, b.Schema(), -1).detail("%q is not a field of %s", name, b.Schema()))
	}

	return b.Set(i, v)
}

// Get returns the value of the set field i.
func (b *Builder[S, T]) Get(i int) T {
	b.checkIndex("Get", i)

	if !b.occ.Has(i) {
		panic(violation("Get", KindUnoccupied, b.Schema(), i))
	}

	return *b.cells.At(i)
}

// IsSet reports whether field i is set.
func (b *Builder[S, T]) IsSet(i int) bool {
	return !b.spent && b.occ.Has(i)
}

// Occupancy returns one flag per field, true when the field is set.
func (b *Builder[S, T]) Occupancy() []bool {
	if b.spent {
		return make([]bool, b.Len())
	}

	return b.occ.Bools()
}

// Occupied returns the indices of the set fields in ascending order.
func (b *Builder[S, T]) Occupied() []int {
	var out []int
	if !b.spent {
		b.occ.Each(func(i int) { out = append(out, i) })
	}

	return out
}

// Missing returns the names of the fields still to be set.
func (b *Builder[S, T]) Missing() []string {
	if b.spent {
		return nil
	}

	s := b.Schema()
	missing := b.occ.Missing()

	out := make([]string, len(missing))
	for k, i := range missing {
		out[k] = s.FieldName(i)
	}

	return out
}

// Complete reports whether every field is set.
func (b *Builder[S, T]) Complete() bool {
	return !b.spent && b.occ.Full()
}

// Spent reports whether Build or Close has been called.
func (b *Builder[S, T]) Spent() bool {
	return b.spent
}

// Build returns the record holding the set values. Every field must be set.
func (b *Builder[S, T]) Build() Record[S, T] {
	b.checkLive("Build")

	if !b.occ.Full() {
		panic(violation("Build", KindIncomplete, b.Schema(), -1).detail("missing %s", strings.Join(b.Missing(), ", ")))
	}

	b.spent = true
	b.occ.Reset()

	return adopt[S](b.cells.Finalize())
}

// Close abandons the builder, releasing every set field exactly once in
// index order. Unset fields are not touched. Close is idempotent and does
// nothing after Build, so it is safe to defer right after Start.
func (b *Builder[S, T]) Close() {
	if b.spent {
		return
	}

	b.spent = true

	released := b.occ.Count()
	b.occ.Each(b.cells.Release)
	b.occ.Reset()

	if released > 0 {
		Logger().Debug("builder abandoned",
			zap.String("shape", b.Schema().Name()),
			zap.Int("released", released),
			zap.Int("fields", b.Len()),
		)
	}
}

// Clone returns an independent builder with the same fields set. Only set
// fields are copied; values implementing slot.Cloner are duplicated through
// Clone. If a Clone call panics, the copies already made are released.
func (b *Builder[S, T]) Clone() *Builder[S, T] {
	b.checkLive("Clone")

	c := Start[S, T]()

	done := false
	defer func() {
		if !done {
			c.Close()
		}
	}()

	b.occ.Each(func(i int) {
		c.cells.Write(i, slot.Copy(*b.cells.At(i)))
		c.occ.Set(i)
	})

	done = true

	return c
}

// BuildWith starts a builder, passes it to fill and builds the record.
// The builder is closed on every exit path, so the fields set before fill
// returns an error or panics are released. fill must set every field.
func BuildWith[S schema.Shape, T any](fill func(b *Builder[S, T]) error) (Record[S, T], error) {
	b := Start[S, T]()
	defer b.Close()

	if err := fill(b); err != nil {
		return Record[S, T]{}, err
	}

	return b.Build(), nil
}

func (b *Builder[S, T]) checkLive(op string) {
	if b.spent {
		panic(violation(op, KindConsumed, b.Schema(), -1).detail("builder already built or closed"))
	}
}

func (b *Builder[S, T]) checkIndex(op string, i int) {
	b.checkLive(op)

	if !utils.InBounds(i, b.Len()) {
		panic(violation(op, KindOutOfRange, b.Schema(), i).detail("shape has %d fields", b.Len()))
	}
}
