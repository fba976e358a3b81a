package searcher

import (
	"sync"
	"sync/atomic"
)

// Dispatcher serializes result delivery on a single goroutine, standing
// in for the UI thread. Deliveries are tagged with the session identity
// that produced them and dropped when that session is no longer
// current, so a snapshot queued before a cancellation was observed can
// never reach the consumer afterwards.
type Dispatcher struct {
	queue     chan delivery
	current   atomic.Uint64
	done      chan struct{}
	closeOnce sync.Once
}

type delivery struct {
	session uint64
	fn      func()
}

// barrierSession marks deliveries that always run, used by Sync.
const barrierSession = 0

// NewDispatcher creates a dispatcher and starts its delivery goroutine.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		queue: make(chan delivery, 16),
		done:  make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	for {
		select {
		case item := <-d.queue:
			if item.session == barrierSession || item.session == d.current.Load() {
				item.fn()
			}
		case <-d.done:
			return
		}
	}
}

// Activate makes session the current one. Deliveries from any other
// session are dropped from now on.
func (d *Dispatcher) Activate(session uint64) {
	d.current.Store(session)
}

// Retire drops session as the current one, suppressing its queued and
// future deliveries. No-op when another session has already taken over.
func (d *Dispatcher) Retire(session uint64) {
	d.current.CompareAndSwap(session, barrierSession)
}

// Post queues fn for delivery on the dispatcher goroutine. The delivery
// is dropped, now or at execution time, if session is not current.
func (d *Dispatcher) Post(session uint64, fn func()) {
	if session != barrierSession && session != d.current.Load() {
		return
	}
	select {
	case d.queue <- delivery{session: session, fn: fn}:
	case <-d.done:
	}
}

// Sync blocks until every delivery queued before it has been handled.
func (d *Dispatcher) Sync() {
	ran := make(chan struct{})
	d.Post(barrierSession, func() { close(ran) })
	select {
	case <-ran:
	case <-d.done:
	}
}

// Close stops the delivery goroutine. Queued deliveries are discarded.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() { close(d.done) })
}
