package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/quicklaunch/core"
	"github.com/poiesic/quicklaunch/storage"
)

// FavoriteRepository implements storage.FavoriteRepository for BadgerDB.
type FavoriteRepository struct {
	backend *Backend
}

var _ storage.FavoriteRepository = (*FavoriteRepository)(nil)

// NewFavoriteRepository creates a new FavoriteRepository.
func NewFavoriteRepository(backend *Backend) storage.FavoriteRepository {
	return &FavoriteRepository{backend: backend}
}

// Close releases repository resources. The backend is owned by the
// caller and stays open.
func (r *FavoriteRepository) Close() error {
	return nil
}

// AddFavorite pins an entry identity.
func (r *FavoriteRepository) AddFavorite(ctx context.Context, entryID string) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	record := core.FavRecord{Record: entryID, AddedAt: time.Now().UTC()}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeFavoriteKey(entryID), storage.MarshalFavRecord(record)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// RemoveFavorite unpins an entry identity.
func (r *FavoriteRepository) RemoveFavorite(ctx context.Context, entryID string) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	key := makeFavoriteKey(entryID)
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if _, err := tx.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Favorites lists the pinned identities.
func (r *FavoriteRepository) Favorites(ctx context.Context) ([]core.FavRecord, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	var records []core.FavRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(favoritePrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				record, err := storage.UnmarshalFavRecord(val)
				if err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// IsFavorite reports whether the identity is pinned.
func (r *FavoriteRepository) IsFavorite(ctx context.Context, entryID string) (bool, error) {
	if r.backend.IsClosed() {
		return false, storage.ErrStorageClosed
	}
	found := false
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		_, err := tx.Get(makeFavoriteKey(entryID))
		if err == nil {
			found = true
			return nil
		}
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	}, false)
	return found, err
}
