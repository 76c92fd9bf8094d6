package record_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arraystruct/record"
	"arraystruct/slot/slottest"
)

func TestNew_CopiesValues(t *testing.T) {
	vals := []int{1, 2, 3}
	r := record.New[rgbShape](vals...)

	vals[0] = 100
	assert.Equal(t, 1, r.Get(idxR))

	adopted := record.FromSlice[rgbShape](vals)
	vals[1] = 200
	assert.Equal(t, 200, adopted.Get(idxG), "FromSlice adopts the slice")
}

func TestNew_ArityMismatch(t *testing.T) {
	ce := requireViolation(t, record.KindArity, func() { record.New[rgbShape](1, 2) })
	assert.Equal(t, "record: Rgb.New: wrong number of values: got 2 values, want 3", ce.Error())

	requireViolation(t, record.KindArity, func() { record.FromSlice[oneShape]([]string{"a", "b"}) })
	requireViolation(t, record.KindArity, func() { record.New[twoShape, int]() })
}

func TestRecord_Accessors(t *testing.T) {
	r := record.New[rgbShape]("r0", "g0", "b0")

	assert.Equal(t, 3, r.Len())
	assert.Same(t, rgbSchema, r.Schema())
	assert.Equal(t, "g0", r.Field("g"))

	old := r.Set(idxG, "g1")
	assert.Equal(t, "g0", old)
	assert.Equal(t, "g1", r.Get(idxG))

	*r.Ptr(idxB) += "!"
	*r.FieldPtr("r") = "r1"
	assert.Equal(t, "g1", r.SetField("g", "g2"))

	assert.Equal(t, []string{"r1", "g2", "b0!"}, r.Values())

	requireViolation(t, record.KindOutOfRange, func() { r.Get(3) })
	requireViolation(t, record.KindOutOfRange, func() { r.Ptr(-1) })
	requireViolation(t, record.KindUnknownField, func() { r.Field("alpha") })
}

func TestRecord_SharesCellsLikeASlice(t *testing.T) {
	a := record.New[twoShape](1, 2)
	b := a

	b.Set(0, 9)
	assert.Equal(t, 9, a.Get(0))

	c := a.Clone()
	c.Set(1, 8)
	assert.Equal(t, 2, a.Get(1))
}

func TestRecord_WithReleasesReplacedValue(t *testing.T) {
	ledger := slottest.NewLedger()
	r := record.New[rgbShape](ledger.Handles("r", "g", "b")...)

	r = r.With(idxG, ledger.Handle("g2")).WithField("b", ledger.Handle("b2"))

	assert.Equal(t, map[string]int{"g": 1, "b": 1}, ledger.Snapshot())
	assert.Equal(t, "g2", r.Get(idxG).Name)

	old := r.Set(idxR, ledger.Handle("r2"))
	assert.Equal(t, 0, ledger.Released("r"), "Set hands the old value back")
	old.Release()

	r.Release()
	assert.Equal(t, map[string]int{"r": 1, "g": 1, "b": 1, "r2": 1, "g2": 1, "b2": 1}, ledger.Snapshot())
}

func TestRecord_ReleaseSkipsEmptyCells(t *testing.T) {
	ledger := slottest.NewLedger()
	src := record.New[rgbShape](ledger.Handles("a", "b", "c")...)

	_, ok := record.TryMapOpt(src, func(h *slottest.Handle) (*slottest.Handle, bool) {
		h.Release()
		return nil, false
	})
	require.False(t, ok)

	src.Release()
	src.Release()

	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1}, ledger.Snapshot())
}

func TestRecord_CloneUsesCloner(t *testing.T) {
	ledger := slottest.NewLedger()
	r := record.New[twoShape](ledger.Handles("x", "y")...)

	c := r.Clone()
	assert.Equal(t, 2, ledger.Clones())
	assert.NotSame(t, r.Get(0), c.Get(0))

	r.Release()
	c.Release()
	assert.Equal(t, map[string]int{"x": 2, "y": 2}, ledger.Snapshot())
}

func TestMap(t *testing.T) {
	src := record.New[rgbShape]("red", "green", "blue")

	lengths := record.Map(src, func(s string) int { return len(s) })

	if diff := cmp.Diff([]int{3, 5, 4}, lengths.Values()); diff != "" {
		t.Errorf("Map (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"", "", ""}, src.Values()); diff != "" {
		t.Errorf("source not consumed (-want +got):\n%s", diff)
	}
}

func TestFromFunc(t *testing.T) {
	r := record.FromFunc[eightShape](func(i int) string { return strings.Repeat("x", i) })

	assert.Equal(t, "", r.Get(0))
	assert.Equal(t, "xxxxxxx", r.Field("h"))
}

func TestEqual(t *testing.T) {
	a := record.New[rgbShape](1, 2, 3)

	assert.True(t, record.Equal(a, record.New[rgbShape](1, 2, 3)))
	assert.False(t, record.Equal(a, record.New[rgbShape](1, 2, 4)))

	labels := record.New[rgbShape]("1", "2", "3")
	assert.True(t, record.EqualFunc(a, labels, func(n int, s string) bool { return fmt.Sprint(n) == s }))
}

func TestRecord_Iterators(t *testing.T) {
	r := record.New[rgbShape](10, 20, 30)

	var idx []int
	for i, v := range r.All() {
		idx = append(idx, i)
		if v == 20 {
			break
		}
	}

	assert.Equal(t, []int{0, 1}, idx)

	got := map[string]int{}
	for name, v := range r.Fields() {
		got[name] = v
	}

	if diff := cmp.Diff(map[string]int{"r": 10, "g": 20, "b": 30}, got); diff != "" {
		t.Errorf("Fields (-want +got):\n%s", diff)
	}
}

func TestRecord_ZeroValuePanics(t *testing.T) {
	var r record.Record[twoShape, int]

	ce := requireViolation(t, record.KindConsumed, func() { r.Get(0) })
	assert.Equal(t, "Get", ce.Op)

	requireViolation(t, record.KindConsumed, func() { r.Values() })
	requireViolation(t, record.KindConsumed, func() { r.Clone() })
	requireViolation(t, record.KindConsumed, func() { record.Map(r, func(int) int { return 0 }) })

	assert.NotPanics(t, r.Release)
	assert.Equal(t, "Two{}", r.String())
}

func TestRecord_String(t *testing.T) {
	assert.Equal(t, "Rgb{r: 1, g: 2, b: 3}", record.New[rgbShape](1, 2, 3).String())
	assert.Equal(t, "Two{a: x, b: y}", fmt.Sprint(record.New[twoShape]("x", "y")))

	dump := fmt.Sprintf("%#v", record.New[oneShape](5))
	assert.True(t, strings.HasPrefix(dump, "One {\n  a: (int) 5"), dump)
}
