package schema

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rgbView[T any] struct {
	R, G, B T
}

type taggedView struct {
	Red   uint8 `field:"r"`
	Green uint8 `field:"g"`
	Blue  uint8
}

func TestFromType(t *testing.T) {
	s, err := FromType[rgbView[int]]("Rgb")
	require.NoError(t, err)
	assert.Equal(t, []string{"r", "g", "b"}, s.Names())

	s, err = FromType[taggedView]("Tagged")
	require.NoError(t, err)
	assert.Equal(t, []string{"r", "g", "blue"}, s.Names())
}

func TestFromStruct_Errors(t *testing.T) {
	type mixed struct {
		A int
		B string
	}
	type embedded struct {
		rgbView[int]
	}
	type unexported struct {
		A int
		b int
	}
	type empty struct{}

	tests := []struct {
		name string
		typ  reflect.Type
		want error
	}{
		{"not a struct", reflect.TypeFor[[3]int](), ErrNotStruct},
		{"mixed types", reflect.TypeFor[mixed](), ErrMixedTypes},
		{"embedded", reflect.TypeFor[embedded](), ErrEmbedded},
		{"unexported", reflect.TypeFor[unexported](), ErrUnexported},
		{"no fields", reflect.TypeFor[empty](), ErrNoFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromStruct("X", tt.typ)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMustFromType_Panics(t *testing.T) {
	assert.Panics(t, func() { MustFromType[int]("Int") })
}

func TestCheckStruct(t *testing.T) {
	rgb := MustNew("Rgb", "r", "g", "b")
	view := reflect.TypeFor[rgbView[float64]]()

	require.NoError(t, CheckStruct(rgb, view, reflect.TypeFor[float64]()))
	require.ErrorIs(t, CheckStruct(rgb, view, reflect.TypeFor[int]()), ErrMixedTypes)
	require.ErrorIs(t, CheckStruct(MustNew("Bgr", "b", "g", "r"), view, reflect.TypeFor[float64]()), ErrLayout)
	require.ErrorIs(t, CheckStruct(MustNew("Rg", "r", "g"), view, reflect.TypeFor[float64]()), ErrLayout)
	require.ErrorIs(t, CheckStruct(rgb, reflect.TypeFor[string](), reflect.TypeFor[string]()), ErrNotStruct)
}
