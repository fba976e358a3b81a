package searcher

import (
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/poiesic/quicklaunch/config"
	"github.com/poiesic/quicklaunch/core"
)

// Session states. Terminal states are final; a session is never reused
// across queries.
const (
	stateCreated int32 = iota
	stateRunning
	stateCompleted
	stateCancelled
)

// sessionSeq issues process-unique session identities, starting above
// the dispatcher's barrier value.
var sessionSeq atomic.Uint64

// Searcher holds the state of one search session: the trimmed query, a
// non-owning consumer handle, the bounded ranked working set and the
// set of identities already accepted this session. Strategy types embed
// it and plug in their boosting and filtering behavior.
//
// AddResult may be called from several provider goroutines at once; the
// working set and the dedup set are guarded by a single mutex.
type Searcher struct {
	session    uint64
	query      string
	consumer   Consumer
	dispatcher *Dispatcher
	settings   *config.Settings
	logger     *slog.Logger

	state    atomic.Int32
	done     chan struct{}
	doneOnce sync.Once

	// accept filters a candidate before it can be boosted or accepted.
	// boost adjusts a candidate's relevance exactly once, inside the
	// same critical section as the dedup check, so concurrent duplicate
	// submissions can never double-boost.
	accept func(core.Entry) bool
	boost  func(core.Entry)

	mu     sync.Mutex
	ranked *RankedSet
	seen   map[string]struct{}
}

// Option configures a search session.
type Option func(*Searcher)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// WithSettings supplies the user settings the session resolves its
// result cap from. Default is the built-in defaults.
func WithSettings(settings *config.Settings) Option {
	return func(s *Searcher) {
		s.settings = settings
	}
}

// newSearcher constructs the shared session state. The query is
// trimmed. A consumer that is absent or already torn down leaves the
// session in a cancellable-but-inert state: every AddResult returns
// false and nothing is ever delivered.
func newSearcher(consumer Consumer, query string, dispatcher *Dispatcher, compare func(a, b core.Entry) int, opts ...Option) *Searcher {
	s := &Searcher{
		session:    sessionSeq.Add(1),
		query:      strings.TrimSpace(query),
		consumer:   consumer,
		dispatcher: dispatcher,
		logger:     slog.Default(),
		done:       make(chan struct{}),
		seen:       make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ranked = NewRankedSet(MaxResultCount(s.settings), compare)
	if consumer == nil || !consumer.Live() {
		s.state.Store(stateCancelled)
	}
	return s
}

// Session returns the identity of this session, used to key stale-
// delivery suppression.
func (s *Searcher) Session() uint64 { return s.session }

// Query returns the trimmed query text.
func (s *Searcher) Query() string { return s.query }

// Cancelled reports whether the session reached the cancelled state.
func (s *Searcher) Cancelled() bool {
	return s.state.Load() == stateCancelled
}

// Cancel transitions the session to its cancelled state. Idempotent;
// subsequent AddResult calls become no-ops and queued deliveries for
// this session identity are suppressed at the dispatcher.
func (s *Searcher) Cancel() {
	for {
		cur := s.state.Load()
		if cur == stateCancelled || cur == stateCompleted {
			return
		}
		if s.state.CompareAndSwap(cur, stateCancelled) {
			break
		}
	}
	s.dispatcher.Retire(s.session)
	s.logger.Debug("search session cancelled", "session", s.session, "query", s.query)
}

// markRunning moves a created session into its running state.
func (s *Searcher) markRunning() {
	s.state.CompareAndSwap(stateCreated, stateRunning)
}

// consumerLive reports whether the UI consumer can still be delivered
// to. A dead consumer is an implicit cancellation, not an error.
func (s *Searcher) consumerLive() bool {
	return s.consumer != nil && s.consumer.Live()
}

// AddResult is the provider-facing ingestion point, called from the
// background execution context as providers stream candidates. It
// returns false when the session is cancelled (the caller should stop
// producing) and true when the working set changed in a way that
// warrants a UI refresh.
func (s *Searcher) AddResult(entries ...core.Entry) bool {
	if s.Cancelled() {
		return false
	}
	if !s.consumerLive() {
		s.Cancel()
		return false
	}

	s.mu.Lock()
	changed := false
	for _, e := range entries {
		if e == nil {
			continue
		}
		if _, dup := s.seen[e.ID()]; dup {
			continue
		}
		if s.accept != nil && !s.accept(e) {
			continue
		}
		if s.boost != nil {
			s.boost(e)
		}
		s.seen[e.ID()] = struct{}{}
		if s.ranked.Insert(e) {
			changed = true
		}
	}
	s.mu.Unlock()

	if changed {
		s.publish()
	}
	return changed
}

// Complete transitions the session to its completed state and delivers
// the final working set. No-op on a cancelled session.
func (s *Searcher) Complete() {
	defer s.finish()
	if !s.state.CompareAndSwap(stateRunning, stateCompleted) &&
		!s.state.CompareAndSwap(stateCreated, stateCompleted) {
		return
	}
	s.publish()
}

// publish hands the current best-first snapshot to the dispatcher. The
// delivery re-checks cancellation and consumer liveness when it runs on
// the dispatcher goroutine, since both may have changed while queued.
func (s *Searcher) publish() {
	s.mu.Lock()
	snapshot := s.ranked.Snapshot()
	s.mu.Unlock()

	s.dispatcher.Post(s.session, func() {
		if s.Cancelled() || !s.consumerLive() {
			return
		}
		s.consumer.DisplayResults(s.session, snapshot)
	})
}

// Done is closed once the background phase of the session has finished,
// whether it completed or was cancelled mid-run.
func (s *Searcher) Done() <-chan struct{} { return s.done }

func (s *Searcher) finish() {
	s.doneOnce.Do(func() { close(s.done) })
}

// Results returns the current best-first snapshot. Intended for tests
// and synchronous callers; UI consumers receive snapshots through the
// dispatcher instead.
func (s *Searcher) Results() []core.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ranked.Snapshot()
}
