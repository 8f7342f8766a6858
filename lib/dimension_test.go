package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModifierLayout(t *testing.T) {
	cases := []struct {
		word   string
		layout ordinateLayout
		dim    Dimension
		stride int
	}{
		{"Z", ordinateLayout{hasZ: true}, DimensionThreeD, 3},
		{"z", ordinateLayout{hasZ: true}, DimensionThreeD, 3},
		{"M", ordinateLayout{hasM: true}, DimensionTwoD, 3},
		{"ZM", ordinateLayout{hasZ: true, hasM: true}, DimensionThreeD, 4},
		{"MZ", ordinateLayout{hasZ: true, hasM: true}, DimensionThreeD, 4},
		{"mz", ordinateLayout{hasZ: true, hasM: true}, DimensionThreeD, 4},
	}

	for _, c := range cases {
		layout, ok := modifierLayout(c.word)
		require.True(t, ok, c.word)
		require.Equal(t, c.layout, layout, c.word)
		require.Equal(t, c.dim, layout.dimension(), c.word)
		require.Equal(t, c.stride, layout.stride(), c.word)
	}
}

func TestModifierLayoutRejects(t *testing.T) {
	for _, word := range []string{"", "EMPTY", "ZZ", "MM", "ZMZ", "X"} {
		_, ok := modifierLayout(word)
		require.False(t, ok, word)
	}
}

func TestNoModifier(t *testing.T) {
	layout := ordinateLayout{}
	require.Equal(t, DimensionTwoD, layout.dimension())
	require.Equal(t, 2, layout.stride())
	require.Equal(t, "no modifier", layout.String())
}

func TestDimensionString(t *testing.T) {
	require.Equal(t, "2D", DimensionTwoD.String())
	require.Equal(t, "3D", DimensionThreeD.String())
}
