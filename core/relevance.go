package core

import (
	"slices"
	"strings"
)

// MatchInfo describes the outcome of matching a query against a
// normalized name: a comparable score and the rune indexes of the
// normalized text that took part in the match.
type MatchInfo struct {
	Score     int
	Positions []int
}

// clone returns a deep copy so a stored relevance cannot be mutated by
// the scorer reusing its buffers.
func (m MatchInfo) clone() MatchInfo {
	return MatchInfo{Score: m.Score, Positions: slices.Clone(m.Positions)}
}

// CompareByRelevance defines the ranking order of a scored session: the
// entry that displays first compares greater, so the worst survivor sits
// at the root of a min-heap. Higher scores rank first; ties fall back to
// the normalized name the relevance was computed against when both sides
// have one, then to the display name, the alphabetically earlier name
// ranking first. The order is total: two entries compare equal only when
// their names are identical.
func CompareByRelevance(a, b Entry) int {
	if d := a.Relevance() - b.Relevance(); d != 0 {
		return d
	}
	if as, bs := a.RelevanceSource(), b.RelevanceSource(); as != nil && bs != nil {
		if c := bs.Compare(as); c != 0 {
			return c
		}
	}
	return strings.Compare(b.Name(), a.Name())
}

// CompareByName defines the ranking order of a presence-based session:
// the alphabetically earlier name ranks first, comparing greater.
// Normalized names are compared when both sides have one, the raw
// display name otherwise.
func CompareByName(a, b Entry) int {
	if an, bn := a.NormalizedName(), b.NormalizedName(); an != nil && bn != nil {
		if c := bn.Compare(an); c != 0 {
			return c
		}
	}
	return strings.Compare(b.Name(), a.Name())
}
