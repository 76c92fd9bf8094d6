package occupancy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMask_SetOnce(t *testing.T) {
	m := New(3)

	require.True(t, m.Set(1))
	assert.False(t, m.Set(1), "second set must report the flag was already raised")
	assert.True(t, m.Has(1))
	assert.False(t, m.Has(0))
	assert.False(t, m.Has(-1))
	assert.False(t, m.Has(3))
	assert.Equal(t, 1, m.Count())
}

func TestMask_FullAcrossWords(t *testing.T) {
	const n = 130

	m := New(n)
	for i := range n {
		assert.False(t, m.Full())
		m.Set(i)
	}

	assert.True(t, m.Full())
	assert.Empty(t, m.Missing())
}

func TestMask_EachAscending(t *testing.T) {
	m := New(100)
	for _, i := range []int{99, 3, 64, 0, 63} {
		m.Set(i)
	}

	var seen []int
	m.Each(func(i int) { seen = append(seen, i) })

	assert.Equal(t, []int{0, 3, 63, 64, 99}, seen)
}

func TestMask_Missing(t *testing.T) {
	m := New(4)
	m.Set(0)
	m.Set(2)

	assert.Equal(t, []int{1, 3}, m.Missing())
	assert.Equal(t, []bool{true, false, true, false}, m.Bools())
}

func TestMask_CloneIsIndependent(t *testing.T) {
	m := New(2)
	m.Set(0)

	c := m.Clone()
	c.Set(1)
	m.Clear(0)

	assert.Equal(t, 0, m.Count())
	assert.True(t, c.Full())
}

func TestMask_ZeroSize(t *testing.T) {
	m := New(0)

	assert.True(t, m.Full())
	assert.Equal(t, 0, m.Count())
	m.Each(func(int) { t.Fatal("no flags expected") })
}

func TestMask_Reset(t *testing.T) {
	m := New(5)
	m.Set(1)
	m.Set(4)
	m.Reset()

	assert.Equal(t, 0, m.Count())
}

func TestMask_Fill(t *testing.T) {
	for _, n := range []int{1, 3, 64, 65, 130} {
		m := New(n)
		m.Fill()

		assert.True(t, m.Full(), "n=%d", n)
		assert.Equal(t, n, m.Count(), "n=%d", n)
		assert.False(t, m.Has(n), "no flag past the end, n=%d", n)

		m.Clear(n - 1)
		assert.False(t, m.Full())
		assert.Equal(t, []int{n - 1}, m.Missing())
	}
}

func TestMask_CopiesShareFlags(t *testing.T) {
	m := New(4)
	c := m

	c.Set(2)
	assert.True(t, m.Has(2))

	m.Clone().Clear(2)
	assert.True(t, c.Has(2))
}
