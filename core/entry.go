package core

// unnamedPlaceholder stands in for entries whose provider supplied no
// display name. Such entries are not searchable by name.
const unnamedPlaceholder = "(unnamed)"

// Entry is the polymorphic unit being searched: an app, a contact, a
// tag, a settings shortcut. Identity is immutable and namespaced by the
// owning provider ("app://...", "contact://..."). The relevance fields
// are owned by the active search session: exactly one session mutates
// them at a time, and a new session resets them before scoring.
type Entry interface {
	// ID returns the globally unique identity of the entry.
	ID() string

	// HistoryID returns the identity used in the launch history.
	// Usually the same as ID, but a kind may redirect history to a
	// canonical record.
	HistoryID() string

	// Name returns the human-readable display name.
	Name() string

	// SetName sets the display name. When normalize is true a
	// search-friendly NormalizedName is derived from the new text;
	// when false the normalized form is cleared, marking the entry as
	// not currently searchable by name. An empty name falls back to a
	// fixed placeholder and clears normalization.
	SetName(name string, normalize bool)

	// NormalizedName returns the derived searchable form, or nil when
	// normalization was skipped.
	NormalizedName() *NormalizedName

	// Relevance returns the current score, or 0 when none is set.
	// Absence and a zero score are deliberately merged for ordering.
	Relevance() int

	// RelevanceSource returns the normalized name the current
	// relevance was computed against, or nil when none is set.
	RelevanceSource() *NormalizedName

	// SetRelevance stores a copy of the match result together with the
	// normalized name it was computed against.
	SetRelevance(source *NormalizedName, match MatchInfo)

	// BoostRelevance adds delta to the stored score. No-op when no
	// relevance is set.
	BoostRelevance(delta int)

	// ResetRelevance clears the score and its provenance.
	ResetRelevance()
}

// EntryBase carries the identity, naming and relevance state shared by
// every entry kind. Concrete kinds embed it by pointer.
type EntryBase struct {
	id              string
	name            string
	normalizedName  *NormalizedName
	relevance       *MatchInfo
	relevanceSource *NormalizedName
}

// NewEntryBase creates the shared state for an entry with the given
// identity and display name. The name is normalized immediately.
func NewEntryBase(id, name string) EntryBase {
	e := EntryBase{id: id}
	e.SetName(name, true)
	return e
}

func (e *EntryBase) ID() string { return e.id }

func (e *EntryBase) HistoryID() string { return e.id }

func (e *EntryBase) Name() string { return e.name }

func (e *EntryBase) SetName(name string, normalize bool) {
	if name == "" {
		e.name = unnamedPlaceholder
		e.normalizedName = nil
		return
	}
	e.name = name
	if normalize {
		e.normalizedName = Normalize(name)
	} else {
		e.normalizedName = nil
	}
}

func (e *EntryBase) NormalizedName() *NormalizedName { return e.normalizedName }

func (e *EntryBase) Relevance() int {
	if e.relevance == nil {
		return 0
	}
	return e.relevance.Score
}

func (e *EntryBase) RelevanceSource() *NormalizedName { return e.relevanceSource }

func (e *EntryBase) SetRelevance(source *NormalizedName, match MatchInfo) {
	copied := match.clone()
	e.relevance = &copied
	e.relevanceSource = source
}

func (e *EntryBase) BoostRelevance(delta int) {
	if e.relevance == nil {
		return
	}
	e.relevance.Score += delta
}

func (e *EntryBase) ResetRelevance() {
	e.relevance = nil
	e.relevanceSource = nil
}

// MatchPositions returns the display-name byte offsets of the current
// match, for highlighting. Nil when no relevance is set or the source
// normalization is gone.
func (e *EntryBase) MatchPositions() []int {
	if e.relevance == nil || e.relevanceSource == nil {
		return nil
	}
	out := make([]int, 0, len(e.relevance.Positions))
	for _, p := range e.relevance.Positions {
		if mapped := e.relevanceSource.MapPosition(p); mapped >= 0 {
			out = append(out, mapped)
		}
	}
	return out
}
