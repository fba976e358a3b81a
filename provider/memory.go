package provider

import (
	"context"
	"log/slog"
	"sync"

	"github.com/poiesic/quicklaunch/core"
)

// MemoryProvider serves a fixed set of entries loaded by the data layer
// (installed apps, contacts, known tags). Entries stay owned by the
// provider across sessions; the active session mutates their relevance
// in place.
type MemoryProvider struct {
	name   string
	scorer core.Scorer
	logger *slog.Logger

	mu      sync.RWMutex
	entries []core.Entry
}

// MemoryOption configures a MemoryProvider.
type MemoryOption func(*MemoryProvider)

// WithMemoryLogger sets a custom logger.
// Default is slog.Default().
func WithMemoryLogger(logger *slog.Logger) MemoryOption {
	return func(p *MemoryProvider) {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
	}
}

// NewMemoryProvider creates a provider scoring its entries with the
// given capability.
func NewMemoryProvider(name string, scorer core.Scorer, opts ...MemoryOption) (*MemoryProvider, error) {
	if scorer == nil {
		return nil, ErrScorerRequired
	}
	p := &MemoryProvider{
		name:   name,
		scorer: scorer,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Name identifies the provider in logs.
func (p *MemoryProvider) Name() string { return p.name }

// Add loads entries into the provider. Invalid entries are rejected.
func (p *MemoryProvider) Add(entries ...core.Entry) error {
	for _, e := range entries {
		if err := core.ValidateEntry(e); err != nil {
			return err
		}
	}
	p.mu.Lock()
	p.entries = append(p.entries, entries...)
	p.mu.Unlock()
	return nil
}

// Len reports the number of loaded entries.
func (p *MemoryProvider) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.entries)
}

// RequestResults scores every entry against the query and streams the
// matches into the sink. Relevance is reset before scoring so values
// from earlier sessions never leak into this one.
func (p *MemoryProvider) RequestResults(ctx context.Context, query string, sink Sink) error {
	normalized := core.Normalize(query).Value
	p.mu.RLock()
	entries := p.entries
	p.mu.RUnlock()

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.ResetRelevance()
		match, ok := p.scorer.Match(normalized, e.NormalizedName())
		if !ok {
			continue
		}
		e.SetRelevance(e.NormalizedName(), match)
		if !sink.AddResult(e) && stopped(sink) {
			p.logger.Debug("session cancelled, stopping enumeration",
				"provider", p.name)
			return nil
		}
	}
	return nil
}

// RequestAllRecords streams every entry into the sink without scoring.
func (p *MemoryProvider) RequestAllRecords(ctx context.Context, sink Sink) error {
	p.mu.RLock()
	entries := p.entries
	p.mu.RUnlock()

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !sink.AddResult(e) && stopped(sink) {
			p.logger.Debug("session cancelled, stopping enumeration",
				"provider", p.name)
			return nil
		}
	}
	return nil
}
