package record

import (
	"go.uber.org/zap"

	"arraystruct/schema"
	"arraystruct/slot"
)

// TryMap applies f to every value of r in index order. r is consumed: each
// value is moved out of r before f sees it.
//
// If f fails on field k, the results already produced for fields 0..k-1 are
// released, fields after k stay in r (still owned by the caller), and f's
// error is returned unchanged. The input value passed to the failing call
// belongs to f. A panic in f rolls back the same way before propagating.
func TryMap[S schema.Shape, A, B any](r Record[S, A], f func(A) (B, error)) (Record[S, B], error) {
	var ferr error

	out, ok := tryMap("TryMap", r, func(a A) (B, bool) {
		b, err := f(a)
		if err != nil {
			ferr = err
			return b, false
		}

		return b, true
	})
	if !ok {
		return Record[S, B]{}, ferr
	}

	return out, nil
}

// TryMapOpt is TryMap for functions that report failure without detail.
func TryMapOpt[S schema.Shape, A, B any](r Record[S, A], f func(A) (B, bool)) (Record[S, B], bool) {
	return tryMap("TryMapOpt", r, f)
}

// tryMap fills output storage strictly in index order so that the produced
// results always form the prefix 0..written-1.
func tryMap[S schema.Shape, A, B any](op string, r Record[S, A], f func(A) (B, bool)) (Record[S, B], bool) {
	s := r.valid(op)
	n := s.Len()

	out := slot.New[B](n)
	written := 0

	defer func() {
		if written == n {
			return
		}

		out.ReleasePrefix(written)

		Logger().Debug("try map rolled back",
			zap.String("op", op),
			zap.String("shape", s.Name()),
			zap.Int("failed_index", written),
			zap.Int("released", written),
		)
	}()

	for i := range n {
		b, ok := f(r.take(i))
		if !ok {
			return Record[S, B]{}, false
		}

		out.Write(i, b)
		written++
	}

	return adopt[S](out.Finalize()), true
}
