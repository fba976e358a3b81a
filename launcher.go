// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package quicklaunch

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/quicklaunch/config"
	"github.com/poiesic/quicklaunch/core"
	"github.com/poiesic/quicklaunch/icons"
	"github.com/poiesic/quicklaunch/provider"
	"github.com/poiesic/quicklaunch/searcher"
	"github.com/poiesic/quicklaunch/storage"
	"github.com/poiesic/quicklaunch/storage/badger"
)

// Action is something the UI can offer for an entry in a context menu.
type Action string

const (
	ActionLaunch Action = "launch"
	ActionPin    Action = "pin"
	ActionUnpin  Action = "unpin"
)

// activeSession is the slice of a search session the launcher needs to
// supersede it.
type activeSession interface {
	Session() uint64
	Cancel()
	Done() <-chan struct{}
}

// Launcher wires the search experience together: the provider registry,
// the launch history and favorites store, the result dispatcher, the
// icon cache and the worker pool that runs search sessions. At most one
// session is active; starting a new search cancels the previous one.
type Launcher struct {
	backend      *badger.Backend
	historyRepo  storage.HistoryRepository
	favoriteRepo storage.FavoriteRepository
	data         *provider.DataHandler
	dispatcher   *searcher.Dispatcher
	pool         *ants.Pool
	icons        *icons.Cache
	settings     *config.Settings
	logger       *slog.Logger

	mu     sync.Mutex
	active activeSession
}

// LauncherOption configures a Launcher.
type LauncherOption func(*launcherOptions)

type launcherOptions struct {
	settings *config.Settings
	logger   *slog.Logger
	inMemory bool
}

// WithSettings supplies user settings. Default is config.Default().
func WithSettings(settings *config.Settings) LauncherOption {
	return func(o *launcherOptions) {
		if settings != nil {
			o.settings = settings
		}
	}
}

// WithLauncherLogger sets a custom logger.
// Default is slog.Default().
func WithLauncherLogger(logger *slog.Logger) LauncherOption {
	return func(o *launcherOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithInMemoryStorage keeps history and favorites in memory instead of
// on disk. Intended for tests.
func WithInMemoryStorage() LauncherOption {
	return func(o *launcherOptions) {
		o.inMemory = true
	}
}

// NewLauncher opens the storage backend at filePath and assembles the
// search stack around it.
func NewLauncher(filePath string, opts ...LauncherOption) (*Launcher, error) {
	options := &launcherOptions{
		settings: config.Default(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	poolSize := options.settings.PoolSize
	if poolSize < 1 {
		poolSize = runtime.NumCPU() / 2
		if poolSize < 1 {
			poolSize = 1
		}
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		backend.Close()
		return nil, err
	}

	iconCache, err := icons.NewCache(options.settings.IconCacheSize, options.settings.IconCacheEnabled)
	if err != nil {
		pool.Release()
		backend.Close()
		return nil, err
	}

	return &Launcher{
		backend:      backend,
		historyRepo:  badger.NewHistoryRepository(backend),
		favoriteRepo: badger.NewFavoriteRepository(backend),
		data:         provider.NewDataHandler(provider.WithLogger(options.logger)),
		dispatcher:   searcher.NewDispatcher(),
		pool:         pool,
		icons:        iconCache,
		settings:     options.settings,
		logger:       options.logger,
	}, nil
}

// DataHandler returns the provider registry; callers register their
// providers on it before starting searches.
func (l *Launcher) DataHandler() *provider.DataHandler { return l.data }

// Icons returns the icon cache.
func (l *Launcher) Icons() *icons.Cache { return l.icons }

// HistoryRepository returns the launch history store.
func (l *Launcher) HistoryRepository() storage.HistoryRepository { return l.historyRepo }

// FavoriteRepository returns the favorites store.
func (l *Launcher) FavoriteRepository() storage.FavoriteRepository { return l.favoriteRepo }

// Dispatcher returns the result delivery queue. UI hosts call Sync on it
// when they need delivery to settle.
func (l *Launcher) Dispatcher() *searcher.Dispatcher { return l.dispatcher }

// StartQuerySearch begins a free-text search session for query,
// cancelling any session still active. Results stream to the consumer
// through the dispatcher as the session's providers report in.
func (l *Launcher) StartQuerySearch(ctx context.Context, consumer searcher.Consumer, query string) (*searcher.QuerySearcher, error) {
	q, err := searcher.NewQuerySearcher(consumer, query, l.data, l.historyRepo, l.dispatcher,
		searcher.WithSettings(l.currentSettings()), searcher.WithLogger(l.logger))
	if err != nil {
		return nil, err
	}
	if err := l.startSession(ctx, q, q.Run); err != nil {
		return nil, err
	}
	return q, nil
}

// StartTagSearch begins an exact-tag search session for tag, cancelling
// any session still active.
func (l *Launcher) StartTagSearch(ctx context.Context, consumer searcher.Consumer, tag string) (*searcher.TagSearcher, error) {
	t, err := searcher.NewTagSearcher(consumer, tag, l.data, l.dispatcher,
		searcher.WithSettings(l.currentSettings()), searcher.WithLogger(l.logger))
	if err != nil {
		return nil, err
	}
	if err := l.startSession(ctx, t, t.Run); err != nil {
		return nil, err
	}
	return t, nil
}

func (l *Launcher) currentSettings() *config.Settings {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.settings
}

func (l *Launcher) startSession(ctx context.Context, session activeSession, run func(context.Context)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.active != nil {
		l.active.Cancel()
	}
	l.dispatcher.Activate(session.Session())

	if err := l.pool.Submit(func() { run(ctx) }); err != nil {
		session.Cancel()
		return err
	}
	l.active = session
	return nil
}

// CancelSearch cancels the active session, if any.
func (l *Launcher) CancelSearch() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.active != nil {
		l.active.Cancel()
		l.active = nil
	}
}

// Launch starts the entry's launch action and, on success, records the
// selection against the query that surfaced it so future sessions can
// boost it. A history write failure costs the boost, not the launch.
func (l *Launcher) Launch(ctx context.Context, query string, e core.Entry) error {
	if err := core.Launch(ctx, e); err != nil {
		return err
	}
	if err := l.historyRepo.RecordLaunch(ctx, query, e.HistoryID()); err != nil {
		l.logger.Warn("recording launch failed", "entry", e.ID(), "err", err)
	}
	return nil
}

// RecordLaunch records a selection without launching, for entry kinds
// the UI activates itself.
func (l *Launcher) RecordLaunch(ctx context.Context, query string, e core.Entry) error {
	return l.historyRepo.RecordLaunch(ctx, query, e.HistoryID())
}

// Pin adds the entry to the favorites.
func (l *Launcher) Pin(ctx context.Context, e core.Entry) error {
	return l.favoriteRepo.AddFavorite(ctx, e.ID())
}

// Unpin removes the entry from the favorites.
func (l *Launcher) Unpin(ctx context.Context, e core.Entry) error {
	return l.favoriteRepo.RemoveFavorite(ctx, e.ID())
}

// Favorites lists the pinned entry identities.
func (l *Launcher) Favorites(ctx context.Context) ([]core.FavRecord, error) {
	return l.favoriteRepo.Favorites(ctx)
}

// AvailableActions reports what the context menu can offer for the
// entry: a launch action when the kind defines one, and pin or unpin
// depending on whether it is already a favorite.
func (l *Launcher) AvailableActions(ctx context.Context, e core.Entry) ([]Action, error) {
	var actions []Action
	if _, ok := e.(core.Launchable); ok {
		actions = append(actions, ActionLaunch)
	}
	pinned, err := l.favoriteRepo.IsFavorite(ctx, e.ID())
	if err != nil {
		return nil, err
	}
	if pinned {
		actions = append(actions, ActionUnpin)
	} else {
		actions = append(actions, ActionPin)
	}
	return actions, nil
}

// ApplySettings replaces the user settings and invalidates everything
// derived from them: the cached result cap and the icon cache toggle.
func (l *Launcher) ApplySettings(settings *config.Settings) {
	if settings == nil {
		return
	}
	l.mu.Lock()
	l.settings = settings
	l.mu.Unlock()
	searcher.ClearMaxResultCountCache()
	l.icons.SetEnabled(settings.IconCacheEnabled)
}

// Close cancels any active session and releases every owned resource.
func (l *Launcher) Close() error {
	l.CancelSearch()
	l.dispatcher.Close()
	l.pool.Release()

	if err := l.historyRepo.Close(); err != nil {
		l.logger.Error("error closing history repository", "err", err)
		return err
	}
	if err := l.favoriteRepo.Close(); err != nil {
		l.logger.Error("error closing favorite repository", "err", err)
		return err
	}
	if err := l.backend.Close(); err != nil {
		l.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
