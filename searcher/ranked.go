package searcher

import (
	"container/heap"

	"github.com/poiesic/quicklaunch/core"
)

// RankedSet is the bounded best-of-N working set of a session: a
// min-heap under the session's comparator, so the lowest-ranked
// survivor is the cheapest to find and evict. It is not internally
// locked; the owning session serializes access.
type RankedSet struct {
	capacity int
	heap     entryHeap
}

// NewRankedSet creates a set holding at most capacity entries, ordered
// by compare (ascending; the minimum is evicted first).
func NewRankedSet(capacity int, compare func(a, b core.Entry) int) *RankedSet {
	if capacity < 1 {
		capacity = 1
	}
	return &RankedSet{
		capacity: capacity,
		heap:     entryHeap{compare: compare},
	}
}

// Len reports the number of entries held.
func (s *RankedSet) Len() int { return len(s.heap.entries) }

// Insert adds an entry under the ordering contract. Once full, an entry
// ranked at or below the current minimum is a no-op and a higher-ranked
// entry evicts the minimum, whose relevance is reset since it no longer
// belongs to any result. Reports whether the set changed.
func (s *RankedSet) Insert(e core.Entry) bool {
	if len(s.heap.entries) < s.capacity {
		heap.Push(&s.heap, e)
		return true
	}
	min := s.heap.entries[0]
	if s.heap.compare(e, min) <= 0 {
		return false
	}
	evicted := s.heap.entries[0]
	s.heap.entries[0] = e
	heap.Fix(&s.heap, 0)
	evicted.ResetRelevance()
	return true
}

// Snapshot returns the entries ordered best-first. The returned slice
// is freshly allocated and safe to hand across goroutines; the entries
// themselves stay shared.
func (s *RankedSet) Snapshot() []core.Entry {
	out := make([]core.Entry, len(s.heap.entries))
	copy(out, s.heap.entries)
	// Heap-sort descending: repeatedly move the minimum to the tail.
	h := entryHeap{entries: out, compare: s.heap.compare}
	sorted := make([]core.Entry, len(out))
	for i := len(sorted) - 1; i >= 0; i-- {
		sorted[i] = heap.Pop(&h).(core.Entry)
	}
	return sorted
}

// entryHeap implements heap.Interface over entries.
type entryHeap struct {
	entries []core.Entry
	compare func(a, b core.Entry) int
}

func (h *entryHeap) Len() int { return len(h.entries) }

func (h *entryHeap) Less(i, j int) bool {
	return h.compare(h.entries[i], h.entries[j]) < 0
}

func (h *entryHeap) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
}

func (h *entryHeap) Push(x any) {
	h.entries = append(h.entries, x.(core.Entry))
}

func (h *entryHeap) Pop() any {
	old := h.entries
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	h.entries = old[:n-1]
	return e
}
