package core

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizedName is a search-friendly transform of a display name.
// Value holds the normalized text; PosMap maps each rune of Value back
// to the byte offset of the rune in the original text it came from, so
// match positions computed against Value can be highlighted in the
// display name.
type NormalizedName struct {
	Value  string
	PosMap []int
}

// Compare orders normalized names lexically by their normalized text.
func (n *NormalizedName) Compare(o *NormalizedName) int {
	return strings.Compare(n.Value, o.Value)
}

// MapPosition translates a rune index in the normalized text to the byte
// offset of the originating rune in the display name. Out-of-range
// indexes return -1.
func (n *NormalizedName) MapPosition(i int) int {
	if i < 0 || i >= len(n.PosMap) {
		return -1
	}
	return n.PosMap[i]
}

// Normalize produces a NormalizedName for the given display text.
// Characters are decomposed (NFD), combining marks are dropped and the
// remainder is lowercased. Every surviving rune records the byte offset
// of the display rune it was derived from.
func Normalize(text string) *NormalizedName {
	var sb strings.Builder
	var pos []int
	for i, r := range text {
		for _, d := range norm.NFD.String(string(r)) {
			if unicode.Is(unicode.Mn, d) {
				continue
			}
			sb.WriteRune(unicode.ToLower(d))
			pos = append(pos, i)
		}
	}
	return &NormalizedName{Value: sb.String(), PosMap: pos}
}

// Scorer matches a normalized query against a normalized name.
// Implementations must not retain or mutate the returned MatchInfo after
// returning; callers copy what they keep.
type Scorer interface {
	// Match reports how well query matches name. The boolean is false
	// when the name does not match at all; the MatchInfo is then
	// meaningless.
	Match(query string, name *NormalizedName) (MatchInfo, bool)
}
