// Package slot provides ownership-neutral fixed-size cell storage.
//
// A Storage does not record which of its cells hold a value. The owner of
// a Storage tracks occupancy separately and must only read, take or release
// a cell it has proven to be occupied, and only write a cell it has proven
// to be empty. An empty cell holds the zero value of T.
package slot

// Storage is a fixed-size, ordered sequence of cells, each holding either
// nothing or exactly one value of T.
type Storage[T any] struct {
	cells []T
}

// New returns storage with n empty cells.
func New[T any](n int) *Storage[T] {
	return &Storage[T]{cells: make([]T, n)}
}

// Len returns the number of cells. It is zero after Finalize.
func (s *Storage[T]) Len() int {
	return len(s.cells)
}

// Write stores v in the empty cell i.
func (s *Storage[T]) Write(i int, v T) {
	s.cells[i] = v
}

// At returns a pointer to the occupied cell i.
func (s *Storage[T]) At(i int) *T {
	return &s.cells[i]
}

// Take moves the value out of the occupied cell i and leaves it empty.
func (s *Storage[T]) Take(i int) T {
	v := s.cells[i]

	var zero T
	s.cells[i] = zero

	return v
}

// Release disposes of the value in the occupied cell i and leaves it empty.
func (s *Storage[T]) Release(i int) {
	Release(s.Take(i))
}

// ReleasePrefix releases cells 0..n-1, all of which must be occupied.
func (s *Storage[T]) ReleasePrefix(n int) {
	for i := range n {
		s.Release(i)
	}
}

// Finalize hands over the cells, all of which must be occupied, as a plain
// slice. No per-element work is done. The storage is left with no cells.
func (s *Storage[T]) Finalize() []T {
	cells := s.cells
	s.cells = nil

	return cells
}
