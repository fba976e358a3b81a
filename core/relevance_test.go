package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scored(id, name string, score int) *AppEntry {
	e := NewAppEntry(id, name, "")
	e.SetRelevance(e.NormalizedName(), MatchInfo{Score: score})
	return e
}

func TestCompareByRelevance(t *testing.T) {
	t.Run("higher score ranks first", func(t *testing.T) {
		low := scored("low", "Low", 10)
		high := scored("high", "High", 20)
		assert.Positive(t, CompareByRelevance(high, low))
		assert.Negative(t, CompareByRelevance(low, high))
	})

	t.Run("tie ranks the earlier normalized name first", func(t *testing.T) {
		a := scored("a", "Ämber", 10)
		b := scored("b", "Zulu", 10)
		assert.Positive(t, CompareByRelevance(a, b))
	})

	t.Run("tie without provenance falls back to display name", func(t *testing.T) {
		a := NewAppEntry("a", "Apple", "")
		b := NewAppEntry("b", "Banana", "")
		assert.Positive(t, CompareByRelevance(a, b))
	})

	t.Run("equal only for identical names", func(t *testing.T) {
		a := scored("a", "Same", 10)
		b := scored("b", "Same", 10)
		assert.Zero(t, CompareByRelevance(a, b))

		c := scored("c", "same", 10)
		assert.NotZero(t, CompareByRelevance(a, c))
	})
}

func TestCompareByName(t *testing.T) {
	t.Run("normalized comparison when both present", func(t *testing.T) {
		a := NewAppEntry("a", "éclair", "")
		b := NewAppEntry("b", "Zebra", "")
		assert.Positive(t, CompareByName(a, b))
	})

	t.Run("display name fallback when normalization missing", func(t *testing.T) {
		a := NewAppEntry("a", "Apple", "")
		a.SetName("Apple", false)
		b := NewAppEntry("b", "Banana", "")
		assert.Positive(t, CompareByName(a, b))
	})
}
