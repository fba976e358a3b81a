package searcher

import (
	"context"

	"github.com/poiesic/quicklaunch/core"
	"github.com/poiesic/quicklaunch/provider"
)

// TagSearcher runs an exact-tag search session: the data layer streams
// every known record, and only entries exposing a tag collection that
// contains the parsed tag are accepted. There is no scoring and no
// history boost; entries rank purely by name.
type TagSearcher struct {
	*Searcher
	data *provider.DataHandler

	// tag is parsed once at construction; the criterion does not change
	// during the session.
	tag core.TagDetails
}

// NewTagSearcher creates a tag search session for the given tag token.
func NewTagSearcher(consumer Consumer, query string, data *provider.DataHandler, dispatcher *Dispatcher, opts ...Option) (*TagSearcher, error) {
	if data == nil {
		return nil, ErrDataHandlerRequired
	}
	if dispatcher == nil {
		return nil, ErrDispatcherRequired
	}

	t := &TagSearcher{
		tag: core.NewTagDetails(query),
	}
	t.Searcher = newSearcher(consumer, query, dispatcher, core.CompareByName, opts...)
	t.Searcher.accept = t.acceptTagged
	t.data = data
	return t, nil
}

// acceptTagged admits only entries that expose the tag capability and
// carry the session's tag. Accepted entries get a presence-based
// relevance: any stale score from an earlier session is cleared so
// ordering falls back entirely to name comparison.
func (t *TagSearcher) acceptTagged(e core.Entry) bool {
	tagged, ok := e.(core.Tagged)
	if !ok || !tagged.HasTag(t.tag) {
		return false
	}
	e.ResetRelevance()
	return true
}

// Run executes the background phase: it requests the full known record
// set from every provider. The "all records" enumeration may yield the
// same identity in several provider batches; the session's dedup set
// keeps the first acceptance.
func (t *TagSearcher) Run(ctx context.Context) {
	defer t.finish()
	if t.Cancelled() {
		return
	}
	if !t.consumerLive() {
		t.Cancel()
		return
	}
	t.markRunning()

	t.data.RequestAllRecords(ctx, t)
	t.Complete()
}
