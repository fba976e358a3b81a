package fuzzy

import (
	"unicode"

	"github.com/poiesic/quicklaunch/core"
)

// Scoring weights. Tuned so a word-start match of a short query beats a
// scattered match inside a long name.
const (
	adjacencyBonus         = 10
	separatorBonus         = 5
	firstLetterBonus       = 15
	leadingLetterPenalty   = -3
	maxLeadingPenalty      = -9
	unmatchedLetterPenalty = -1
	baseScore              = 30
)

// Scorer matches queries against normalized names as an ordered
// subsequence. The zero value is ready to use.
type Scorer struct{}

var _ core.Scorer = (*Scorer)(nil)

// NewScorer returns the default scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Match reports whether every rune of query occurs, in order, in the
// normalized name, and scores the best left-to-right alignment found by
// a greedy scan. Queries are expected in normalized form.
func (s *Scorer) Match(query string, name *core.NormalizedName) (core.MatchInfo, bool) {
	if name == nil {
		return core.MatchInfo{}, false
	}
	q := []rune(query)
	n := []rune(name.Value)
	if len(q) == 0 || len(n) == 0 {
		return core.MatchInfo{}, false
	}

	score := baseScore
	positions := make([]int, 0, len(q))
	qi := 0
	last := -2
	for ni, r := range n {
		if qi >= len(q) {
			score += unmatchedLetterPenalty
			continue
		}
		if r != q[qi] {
			if len(positions) == 0 {
				// Penalty for letters skipped before the first match.
				p := leadingLetterPenalty
				if score+p < baseScore+maxLeadingPenalty {
					p = 0
				}
				score += p
			} else {
				score += unmatchedLetterPenalty
			}
			continue
		}
		if ni == last+1 {
			score += adjacencyBonus
		}
		if ni == 0 {
			score += firstLetterBonus
		} else if isSeparator(n[ni-1]) {
			score += separatorBonus
		}
		positions = append(positions, ni)
		last = ni
		qi++
	}
	if qi < len(q) {
		return core.MatchInfo{}, false
	}
	return core.MatchInfo{Score: score, Positions: positions}, true
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '-' || r == '_' || r == '.' || r == '/'
}
