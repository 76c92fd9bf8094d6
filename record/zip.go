package record

import (
	"arraystruct/schema"
	"arraystruct/slot"
)

// Pair holds the values of one field of two zipped records.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Release releases both halves of the pair.
func (p Pair[A, B]) Release() {
	slot.Release(p.First)
	slot.Release(p.Second)
}

// Clone duplicates both halves of the pair.
func (p Pair[A, B]) Clone() Pair[A, B] {
	return Pair[A, B]{First: slot.Copy(p.First), Second: slot.Copy(p.Second)}
}

// Zip pairs the fields of a and b positionally. Both records share the shape
// S, so they always have the same arity and field layout. a and b are
// consumed.
func Zip[S schema.Shape, A, B any](a Record[S, A], b Record[S, B]) Record[S, Pair[A, B]] {
	a.valid("Zip")
	b.valid("Zip")

	out := make([]Pair[A, B], len(a.vals))
	for i := range out {
		out[i] = Pair[A, B]{First: a.take(i), Second: b.take(i)}
	}

	return adopt[S](out)
}

// Unzip splits a record of pairs into two records. r is consumed.
func Unzip[S schema.Shape, A, B any](r Record[S, Pair[A, B]]) (Record[S, A], Record[S, B]) {
	r.valid("Unzip")

	as := make([]A, len(r.vals))
	bs := make([]B, len(r.vals))

	for i := range r.vals {
		p := r.take(i)
		as[i], bs[i] = p.First, p.Second
	}

	return adopt[S](as), adopt[S](bs)
}
