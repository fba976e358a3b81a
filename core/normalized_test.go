package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("lowercases and strips diacritics", func(t *testing.T) {
		n := Normalize("Čaj Latté")
		assert.Equal(t, "caj latte", n.Value)
	})

	t.Run("position map points at originating runes", func(t *testing.T) {
		n := Normalize("Café")
		require.Equal(t, "cafe", n.Value)
		// 'é' is two bytes; the normalized 'e' maps to its offset.
		assert.Equal(t, 0, n.MapPosition(0))
		assert.Equal(t, 1, n.MapPosition(1))
		assert.Equal(t, 2, n.MapPosition(2))
		assert.Equal(t, 3, n.MapPosition(3))
	})

	t.Run("out of range positions map to -1", func(t *testing.T) {
		n := Normalize("ab")
		assert.Equal(t, -1, n.MapPosition(-1))
		assert.Equal(t, -1, n.MapPosition(2))
	})

	t.Run("plain ascii is unchanged apart from case", func(t *testing.T) {
		n := Normalize("Terminal")
		assert.Equal(t, "terminal", n.Value)
		assert.Len(t, n.PosMap, 8)
	})
}

func TestNormalizedNameCompare(t *testing.T) {
	a := Normalize("alpha")
	b := Normalize("beta")
	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))
	assert.Zero(t, a.Compare(Normalize("Alpha")))
}
