// Package occupancy tracks which cells of a fixed-size slot storage
// currently hold a value.
package occupancy

import "math/bits"

const wordBits = 64

// Mask is a fixed-size set of n flags, one per cell index.
// A set flag means the cell is occupied.
type Mask struct {
	words []uint64
	n     int
}

// New returns a mask of n clear flags.
func New(n int) Mask {
	if n < 0 {
		panic("occupancy: negative size")
	}

	return Mask{
		words: make([]uint64, (n+wordBits-1)/wordBits),
		n:     n,
	}
}

// Len returns the number of flags.
func (m Mask) Len() int { return m.n }

// Has reports whether flag i is set. Out of range indices are never set.
func (m Mask) Has(i int) bool {
	if i < 0 || i >= m.n {
		return false
	}

	return m.words[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

// Set raises flag i and reports whether it was previously clear.
func (m Mask) Set(i int) bool {
	w, b := i/wordBits, uint64(1)<<(uint(i)%wordBits)
	if m.words[w]&b != 0 {
		return false
	}

	m.words[w] |= b

	return true
}

// Clear lowers flag i.
func (m Mask) Clear(i int) {
	m.words[i/wordBits] &^= 1 << (uint(i) % wordBits)
}

// Fill raises every flag.
func (m Mask) Fill() {
	for i := range m.words {
		m.words[i] = ^uint64(0)
	}

	if r := m.n % wordBits; r != 0 {
		m.words[len(m.words)-1] = 1<<r - 1
	}
}

// Reset lowers every flag.
func (m Mask) Reset() {
	clear(m.words)
}

// Count returns the number of set flags.
func (m Mask) Count() int {
	c := 0
	for _, w := range m.words {
		c += bits.OnesCount64(w)
	}

	return c
}

// Full reports whether every flag is set.
func (m Mask) Full() bool {
	return m.Count() == m.n
}

// Each calls fn for every set flag in ascending index order.
func (m Mask) Each(fn func(i int)) {
	for wi, w := range m.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			fn(wi*wordBits + tz)
			w &= w - 1
		}
	}
}

// Missing returns the indices of the clear flags in ascending order.
func (m Mask) Missing() []int {
	var out []int
	for i := range m.n {
		if !m.Has(i) {
			out = append(out, i)
		}
	}

	return out
}

// Clone returns an independent copy of m.
func (m Mask) Clone() Mask {
	words := make([]uint64, len(m.words))
	copy(words, m.words)

	return Mask{words: words, n: m.n}
}

// Bools expands the mask into one bool per index.
func (m Mask) Bools() []bool {
	out := make([]bool, m.n)
	m.Each(func(i int) { out[i] = true })

	return out
}
