package storage

import (
	"context"

	"github.com/poiesic/quicklaunch/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// Close closes the storage backend and releases resources.
	Close() error
}

// HistoryRepository records which entry the user launched for which
// query, and replays that knowledge as a per-query boost table.
type HistoryRepository interface {
	Repository

	// RecordLaunch increments the selection strength of the entry
	// identity for the trimmed query.
	RecordLaunch(ctx context.Context, query, entryID string) error

	// PreviousResultsForQuery returns the identities selected for this
	// query before, each with its selection strength. The result is
	// read-only for the session that loaded it.
	PreviousResultsForQuery(ctx context.Context, query string) ([]core.ValuedRecord, error)
}

// FavoriteRepository stores the identities the user pinned.
type FavoriteRepository interface {
	Repository

	// AddFavorite pins an entry identity. Adding an already-pinned
	// identity refreshes its timestamp.
	AddFavorite(ctx context.Context, entryID string) error

	// RemoveFavorite unpins an entry identity.
	// Returns ErrNotFound when it was not pinned.
	RemoveFavorite(ctx context.Context, entryID string) error

	// Favorites lists the pinned identities.
	Favorites(ctx context.Context) ([]core.FavRecord, error)

	// IsFavorite reports whether the identity is pinned.
	IsFavorite(ctx context.Context, entryID string) (bool, error)
}
