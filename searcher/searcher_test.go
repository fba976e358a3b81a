package searcher

import (
	"context"
	"sync"
	"testing"

	"github.com/poiesic/quicklaunch/core"
	"github.com/poiesic/quicklaunch/provider"
	"github.com/poiesic/quicklaunch/storage"
	"github.com/poiesic/quicklaunch/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConsumer records every delivered snapshot and can simulate a torn
// down UI.
type fakeConsumer struct {
	mu        sync.Mutex
	live      bool
	snapshots [][]core.Entry
	sessions  []uint64
}

func newFakeConsumer() *fakeConsumer {
	return &fakeConsumer{live: true}
}

func (c *fakeConsumer) Live() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.live
}

func (c *fakeConsumer) tearDown() {
	c.mu.Lock()
	c.live = false
	c.mu.Unlock()
}

func (c *fakeConsumer) DisplayResults(session uint64, entries []core.Entry) {
	c.mu.Lock()
	c.snapshots = append(c.snapshots, entries)
	c.sessions = append(c.sessions, session)
	c.mu.Unlock()
}

func (c *fakeConsumer) last() []core.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.snapshots) == 0 {
		return nil
	}
	return c.snapshots[len(c.snapshots)-1]
}

func (c *fakeConsumer) deliveries() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.snapshots)
}

// fixedScorer assigns predetermined scores by normalized name.
type fixedScorer struct {
	scores map[string]int
}

func (f fixedScorer) Match(query string, name *core.NormalizedName) (core.MatchInfo, bool) {
	if name == nil {
		return core.MatchInfo{}, false
	}
	score, ok := f.scores[name.Value]
	return core.MatchInfo{Score: score}, ok
}

func newFixedProvider(t *testing.T, scores map[string]int, entries ...core.Entry) *provider.MemoryProvider {
	t.Helper()
	p, err := provider.NewMemoryProvider("fixed", fixedScorer{scores: scores})
	require.NoError(t, err)
	require.NoError(t, p.Add(entries...))
	return p
}

func newMemoryHistory(t *testing.T) storage.HistoryRepository {
	t.Helper()
	historyRepo, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		historyRepo.Close()
		backend.Close()
	})
	return historyRepo
}

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	d := NewDispatcher()
	t.Cleanup(d.Close)
	return d
}

func names(entries []core.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name()
	}
	return out
}

func TestNewQuerySearcher(t *testing.T) {
	t.Cleanup(ClearMaxResultCountCache)
	data := provider.NewDataHandler()
	history := newMemoryHistory(t)
	dispatcher := newTestDispatcher(t)

	t.Run("valid configuration", func(t *testing.T) {
		q, err := NewQuerySearcher(newFakeConsumer(), "cam", data, history, dispatcher)
		require.NoError(t, err)
		assert.NotNil(t, q)
		assert.False(t, q.Cancelled())
	})

	t.Run("query is trimmed", func(t *testing.T) {
		q, err := NewQuerySearcher(newFakeConsumer(), "  cam  ", data, history, dispatcher)
		require.NoError(t, err)
		assert.Equal(t, "cam", q.Query())
	})

	t.Run("nil data handler", func(t *testing.T) {
		_, err := NewQuerySearcher(newFakeConsumer(), "cam", nil, history, dispatcher)
		assert.Equal(t, ErrDataHandlerRequired, err)
	})

	t.Run("nil history repository", func(t *testing.T) {
		_, err := NewQuerySearcher(newFakeConsumer(), "cam", data, nil, dispatcher)
		assert.Equal(t, ErrHistoryRequired, err)
	})

	t.Run("nil dispatcher", func(t *testing.T) {
		_, err := NewQuerySearcher(newFakeConsumer(), "cam", data, history, nil)
		assert.Equal(t, ErrDispatcherRequired, err)
	})

	t.Run("absent consumer constructs inert", func(t *testing.T) {
		q, err := NewQuerySearcher(nil, "cam", data, history, dispatcher)
		require.NoError(t, err)
		assert.True(t, q.Cancelled())
		assert.False(t, q.AddResult(core.NewAppEntry("x", "X", "")))
	})

	t.Run("dead consumer constructs inert", func(t *testing.T) {
		dead := newFakeConsumer()
		dead.tearDown()
		q, err := NewQuerySearcher(dead, "cam", data, history, dispatcher)
		require.NoError(t, err)
		assert.True(t, q.Cancelled())
	})

	t.Run("sessions get distinct identities", func(t *testing.T) {
		a, err := NewQuerySearcher(newFakeConsumer(), "a", data, history, dispatcher)
		require.NoError(t, err)
		b, err := NewQuerySearcher(newFakeConsumer(), "b", data, history, dispatcher)
		require.NoError(t, err)
		assert.NotEqual(t, a.Session(), b.Session())
	})
}

func TestQuerySearcherScenario(t *testing.T) {
	t.Cleanup(ClearMaxResultCountCache)
	ctx := context.Background()

	camera := core.NewAppEntry("camera", "Camera", "")
	camcorder := core.NewAppEntry("camcorder", "Camcorder", "")
	data := provider.NewDataHandler()
	data.Register(newFixedProvider(t, map[string]int{"camera": 80, "camcorder": 60}, camera, camcorder))

	history := newMemoryHistory(t)
	require.NoError(t, history.RecordLaunch(ctx, "cam", "app://camera"))

	dispatcher := newTestDispatcher(t)
	consumer := newFakeConsumer()
	q, err := NewQuerySearcher(consumer, "cam", data, history, dispatcher)
	require.NoError(t, err)
	dispatcher.Activate(q.Session())

	q.Run(ctx)
	dispatcher.Sync()

	// History strength 1 boosts Camera by 25: 80+25 beats 60.
	got := q.Results()
	require.Equal(t, []string{"Camera", "Camcorder"}, names(got))
	assert.Equal(t, 105, got[0].Relevance())
	assert.Equal(t, 60, got[1].Relevance())

	// The consumer saw the same final ordering.
	require.NotEmpty(t, consumer.last())
	assert.Equal(t, []string{"Camera", "Camcorder"}, names(consumer.last()))
}

func TestQuerySearcherHistoryBoostDelta(t *testing.T) {
	t.Cleanup(ClearMaxResultCountCache)
	ctx := context.Background()

	boosted := core.NewAppEntry("boosted", "Boosted", "")
	plain := core.NewAppEntry("plain", "Plain", "")
	data := provider.NewDataHandler()
	data.Register(newFixedProvider(t, map[string]int{"boosted": 40, "plain": 40}, boosted, plain))

	history := newMemoryHistory(t)
	require.NoError(t, history.RecordLaunch(ctx, "b", "app://boosted"))
	require.NoError(t, history.RecordLaunch(ctx, "b", "app://boosted"))

	dispatcher := newTestDispatcher(t)
	q, err := NewQuerySearcher(newFakeConsumer(), "b", data, history, dispatcher)
	require.NoError(t, err)
	dispatcher.Activate(q.Session())
	q.Run(ctx)

	got := q.Results()
	require.Len(t, got, 2)
	// Strength 2 gains exactly +50 over an otherwise identical entry.
	assert.Equal(t, got[1].Relevance()+50, got[0].Relevance())
	assert.Equal(t, "Boosted", got[0].Name())
}

func TestQuerySearcherDeduplication(t *testing.T) {
	t.Cleanup(ClearMaxResultCountCache)
	data := provider.NewDataHandler()
	history := newMemoryHistory(t)
	dispatcher := newTestDispatcher(t)

	submit := func(t *testing.T, first, second core.Entry) []core.Entry {
		t.Helper()
		q, err := NewQuerySearcher(newFakeConsumer(), "x", data, history, dispatcher)
		require.NoError(t, err)
		dispatcher.Activate(q.Session())
		q.AddResult(first)
		q.AddResult(second)
		return q.Results()
	}

	t.Run("higher score first", func(t *testing.T) {
		high := core.NewAppEntry("dup", "High", "")
		high.SetRelevance(high.NormalizedName(), core.MatchInfo{Score: 90})
		low := core.NewAppEntry("dup", "Low", "")
		low.SetRelevance(low.NormalizedName(), core.MatchInfo{Score: 10})

		got := submit(t, high, low)
		require.Len(t, got, 1)
		assert.Equal(t, "High", got[0].Name())
	})

	t.Run("lower score first", func(t *testing.T) {
		high := core.NewAppEntry("dup", "High", "")
		high.SetRelevance(high.NormalizedName(), core.MatchInfo{Score: 90})
		low := core.NewAppEntry("dup", "Low", "")
		low.SetRelevance(low.NormalizedName(), core.MatchInfo{Score: 10})

		got := submit(t, low, high)
		require.Len(t, got, 1)
		assert.Equal(t, "Low", got[0].Name())
	})
}

func TestQuerySearcherCancellation(t *testing.T) {
	t.Cleanup(ClearMaxResultCountCache)
	ctx := context.Background()
	data := provider.NewDataHandler()
	history := newMemoryHistory(t)

	t.Run("addResult after cancel is a rejected no-op", func(t *testing.T) {
		dispatcher := newTestDispatcher(t)
		consumer := newFakeConsumer()
		q, err := NewQuerySearcher(consumer, "cam", data, history, dispatcher)
		require.NoError(t, err)
		dispatcher.Activate(q.Session())

		q.Cancel()
		e := core.NewAppEntry("camera", "Camera", "")
		e.SetRelevance(e.NormalizedName(), core.MatchInfo{Score: 80})

		assert.False(t, q.AddResult(e))
		assert.Empty(t, q.Results())

		dispatcher.Sync()
		assert.Zero(t, consumer.deliveries())
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		dispatcher := newTestDispatcher(t)
		q, err := NewQuerySearcher(newFakeConsumer(), "cam", data, history, dispatcher)
		require.NoError(t, err)
		q.Cancel()
		q.Cancel()
		assert.True(t, q.Cancelled())
	})

	t.Run("queued delivery is suppressed by cancel", func(t *testing.T) {
		dispatcher := newTestDispatcher(t)
		consumer := newFakeConsumer()
		q, err := NewQuerySearcher(consumer, "cam", data, history, dispatcher)
		require.NoError(t, err)
		dispatcher.Activate(q.Session())

		// Hold the dispatcher so the snapshot is still queued when the
		// session cancels; it must then be dropped at execution time.
		gate := make(chan struct{})
		dispatcher.Post(barrierSession, func() { <-gate })

		e := core.NewAppEntry("camera", "Camera", "")
		e.SetRelevance(e.NormalizedName(), core.MatchInfo{Score: 80})
		assert.True(t, q.AddResult(e))

		q.Cancel()
		close(gate)
		dispatcher.Sync()
		assert.Zero(t, consumer.deliveries())
	})

	t.Run("consumer death is an implicit cancellation", func(t *testing.T) {
		dispatcher := newTestDispatcher(t)
		consumer := newFakeConsumer()
		q, err := NewQuerySearcher(consumer, "cam", data, history, dispatcher)
		require.NoError(t, err)
		dispatcher.Activate(q.Session())

		consumer.tearDown()
		e := core.NewAppEntry("camera", "Camera", "")
		assert.False(t, q.AddResult(e))
		assert.True(t, q.Cancelled())
	})

	t.Run("cancelled run does not enumerate", func(t *testing.T) {
		dispatcher := newTestDispatcher(t)
		calls := provider.NewDataHandler()
		entry := core.NewAppEntry("camera", "Camera", "")
		calls.Register(newFixedProvider(t, map[string]int{"camera": 80}, entry))

		q, err := NewQuerySearcher(newFakeConsumer(), "cam", calls, history, dispatcher)
		require.NoError(t, err)
		q.Cancel()
		q.Run(ctx)
		assert.Empty(t, q.Results())
	})
}

func TestQuerySearcherHistoryFailureIsNotFatal(t *testing.T) {
	t.Cleanup(ClearMaxResultCountCache)
	ctx := context.Background()

	historyRepo, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	require.NoError(t, backend.Close()) // force history lookups to fail

	camera := core.NewAppEntry("camera", "Camera", "")
	data := provider.NewDataHandler()
	data.Register(newFixedProvider(t, map[string]int{"camera": 80}, camera))

	dispatcher := newTestDispatcher(t)
	q, err := NewQuerySearcher(newFakeConsumer(), "cam", data, historyRepo, dispatcher)
	require.NoError(t, err)
	dispatcher.Activate(q.Session())
	q.Run(ctx)

	// The session still produced results, just without any boost.
	got := q.Results()
	require.Len(t, got, 1)
	assert.Equal(t, 80, got[0].Relevance())
}
