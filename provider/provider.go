package provider

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/poiesic/quicklaunch/core"
)

// Sink is the ingestion point a search session exposes to providers.
// AddResult returns false when the session no longer wants results; a
// provider should then stop producing for this session.
type Sink interface {
	AddResult(entries ...core.Entry) bool
}

// sessionState is probed on sinks that can distinguish "cancelled" from
// "batch did not change the working set". Only cancellation stops
// enumeration.
type sessionState interface {
	Cancelled() bool
}

func stopped(sink Sink) bool {
	s, ok := sink.(sessionState)
	return ok && s.Cancelled()
}

// Provider enumerates candidate entries into a sink. Implementations
// must tolerate being called from a background goroutine and must stop
// early when the context is done or the sink reports cancellation.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string

	// RequestResults streams entries matching the free-text query.
	RequestResults(ctx context.Context, query string, sink Sink) error

	// RequestAllRecords streams every known entry, unfiltered.
	RequestAllRecords(ctx context.Context, sink Sink) error
}

// DataHandler fans requests out to the registered providers.
type DataHandler struct {
	mu        sync.RWMutex
	providers []Provider
	logger    *slog.Logger
}

// HandlerOption configures a DataHandler.
type HandlerOption func(*DataHandler)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(h *DataHandler) {
		if logger == nil {
			logger = slog.Default()
		}
		h.logger = logger
	}
}

// NewDataHandler creates a handler with no providers registered.
func NewDataHandler(opts ...HandlerOption) *DataHandler {
	h := &DataHandler{logger: slog.Default()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register adds a provider. Safe to call concurrently with requests;
// in-flight requests keep the provider set they started with.
func (h *DataHandler) Register(p Provider) {
	h.mu.Lock()
	h.providers = append(h.providers, p)
	h.mu.Unlock()
}

// Providers returns a snapshot of the registered providers.
func (h *DataHandler) Providers() []Provider {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Provider, len(h.providers))
	copy(out, h.providers)
	return out
}

// RequestResults asks every provider for entries matching query,
// streaming them into sink. Provider failures are logged and isolated.
func (h *DataHandler) RequestResults(ctx context.Context, query string, sink Sink) {
	h.fanOut(ctx, sink, func(ctx context.Context, p Provider) error {
		return p.RequestResults(ctx, query, sink)
	})
}

// RequestAllRecords asks every provider for its full record set.
func (h *DataHandler) RequestAllRecords(ctx context.Context, sink Sink) {
	h.fanOut(ctx, sink, func(ctx context.Context, p Provider) error {
		return p.RequestAllRecords(ctx, sink)
	})
}

func (h *DataHandler) fanOut(ctx context.Context, sink Sink, call func(context.Context, Provider) error) {
	g, ctx := errgroup.WithContext(ctx)
	for _, p := range h.Providers() {
		g.Go(func() error {
			if err := h.callSafely(ctx, p, call); err != nil {
				h.logger.Error("provider enumeration failed",
					"provider", p.Name(), "err", err)
			}
			// Swallow the error: one provider failing must not cancel
			// the enumeration of its siblings.
			return nil
		})
	}
	g.Wait()
}

func (h *DataHandler) callSafely(ctx context.Context, p Provider, call func(context.Context, Provider) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrProviderPanic, r)
		}
	}()
	return call(ctx, p)
}
