package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arraystruct/record"
	"arraystruct/slot/slottest"
)

func TestZip_RoundTrip(t *testing.T) {
	names := record.New[rgbShape]("red", "green", "blue")
	levels := record.New[rgbShape](uint8(255), uint8(128), uint8(0))

	zipped := record.Zip(names, levels)

	assert.Equal(t, record.Pair[string, uint8]{First: "green", Second: 128}, zipped.Get(idxG))
	assert.Equal(t, "", names.Get(idxR), "inputs are consumed")
	assert.Equal(t, uint8(0), levels.Get(idxR))

	a, b := record.Unzip(zipped)

	assert.Equal(t, []string{"red", "green", "blue"}, a.Values())
	assert.Equal(t, []uint8{255, 128, 0}, b.Values())
	assert.Zero(t, zipped.Get(idxB))
}

func TestZip_MovesWithoutRelease(t *testing.T) {
	ledger := slottest.NewLedger()
	left := ledger.Handles("l0", "l1")
	right := ledger.Handles("r0", "r1")

	zipped := record.Zip(record.New[twoShape](left...), record.New[twoShape](right...))

	for i := range 2 {
		p := zipped.Get(i)
		assert.Same(t, left[i], p.First)
		assert.Same(t, right[i], p.Second)
	}

	require.Zero(t, ledger.Total())

	zipped.Release()
	assert.Equal(t, map[string]int{"l0": 1, "l1": 1, "r0": 1, "r1": 1}, ledger.Snapshot())
}

func TestPair_Clone(t *testing.T) {
	ledger := slottest.NewLedger()
	p := record.Pair[*slottest.Handle, int]{First: ledger.Handle("x"), Second: 4}

	c := p.Clone()

	assert.NotSame(t, p.First, c.First)
	assert.Equal(t, "x", c.First.Name)
	assert.Equal(t, 4, c.Second)
	assert.Equal(t, 1, ledger.Clones())

	c.Release()
	assert.Equal(t, 1, ledger.Released("x"))
}

func TestZip_ConsumedInputPanics(t *testing.T) {
	a := record.New[twoShape](1, 2)

	requireViolation(t, record.KindConsumed, func() {
		record.Zip(a, record.Record[twoShape, int]{})
	})
}
