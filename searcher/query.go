package searcher

import (
	"context"

	"github.com/poiesic/quicklaunch/core"
	"github.com/poiesic/quicklaunch/provider"
	"github.com/poiesic/quicklaunch/storage"
)

// historyBoostFactor scales a past-selection strength into a relevance
// boost: an entry launched s times for this exact query gains 25*s.
const historyBoostFactor = 25

// QuerySearcher runs a free-text search session: every provider is
// asked to evaluate the trimmed query, and candidates that were
// launched for the same query before are boosted from the history
// table loaded at the start of the session.
type QuerySearcher struct {
	*Searcher
	data    *provider.DataHandler
	history storage.HistoryRepository

	// knownIDs is the per-query boost table: identity -> selection
	// strength. Loaded once by Run before enumeration starts, read-only
	// afterwards.
	knownIDs map[string]int
}

// NewQuerySearcher creates a free-text search session for query.
func NewQuerySearcher(consumer Consumer, query string, data *provider.DataHandler, history storage.HistoryRepository, dispatcher *Dispatcher, opts ...Option) (*QuerySearcher, error) {
	if data == nil {
		return nil, ErrDataHandlerRequired
	}
	if history == nil {
		return nil, ErrHistoryRequired
	}
	if dispatcher == nil {
		return nil, ErrDispatcherRequired
	}

	q := &QuerySearcher{
		data:    data,
		history: history,
	}
	q.Searcher = newSearcher(consumer, query, dispatcher, core.CompareByRelevance, opts...)
	q.Searcher.boost = q.boostFromHistory
	return q, nil
}

// boostFromHistory applies the history boost exactly once per accepted
// candidate. It runs inside the session's dedup critical section, so a
// duplicate submission is rejected before a second boost can apply.
func (q *QuerySearcher) boostFromHistory(e core.Entry) {
	if strength := q.knownIDs[e.HistoryID()]; strength != 0 {
		e.BoostRelevance(historyBoostFactor * strength)
	}
}

// Run executes the background phase: it loads the history boost table
// for the trimmed query, then asks the data layer to evaluate the query
// against every registered provider, which stream candidates back
// through AddResult. A history load failure costs the boost, not the
// session.
func (q *QuerySearcher) Run(ctx context.Context) {
	defer q.finish()
	if q.Cancelled() {
		return
	}
	if !q.consumerLive() {
		q.Cancel()
		return
	}
	q.markRunning()

	records, err := q.history.PreviousResultsForQuery(ctx, q.Query())
	if err != nil {
		q.logger.Warn("loading query history failed, searching without boost",
			"query", q.Query(), "err", err)
	}
	q.knownIDs = make(map[string]int, len(records))
	for _, record := range records {
		q.knownIDs[record.Record] = record.Value
	}

	q.data.RequestResults(ctx, q.Query(), q)
	q.Complete()
}
