package badger

import (
	"context"
	"errors"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/quicklaunch/core"
	"github.com/poiesic/quicklaunch/storage"
)

// HistoryRepository implements storage.HistoryRepository for BadgerDB.
type HistoryRepository struct {
	backend *Backend
}

var _ storage.HistoryRepository = (*HistoryRepository)(nil)

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(backend *Backend) storage.HistoryRepository {
	return &HistoryRepository{backend: backend}
}

// Close releases repository resources. The backend is owned by the
// caller and stays open.
func (r *HistoryRepository) Close() error {
	return nil
}

// RecordLaunch increments the selection strength of entryID for the
// trimmed query.
func (r *HistoryRepository) RecordLaunch(ctx context.Context, query, entryID string) error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	queryID := core.IDFromContent(strings.TrimSpace(query))
	key := makeHistoryKey(queryID, entryID)

	return r.backend.WithTx(func(tx *badger.Txn) error {
		record := core.ValuedRecord{Record: entryID}

		item, err := tx.Get(key)
		switch {
		case err == nil:
			err = item.Value(func(val []byte) error {
				record, err = storage.UnmarshalValuedRecord(val)
				return err
			})
			if err != nil {
				return err
			}
		case errors.Is(err, badger.ErrKeyNotFound):
			// First launch for this (query, entry) pair.
		default:
			return err
		}

		record.Value++
		if err := tx.Set(key, storage.MarshalValuedRecord(record)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// PreviousResultsForQuery returns the launch counters recorded for the
// trimmed query.
func (r *HistoryRepository) PreviousResultsForQuery(ctx context.Context, query string) ([]core.ValuedRecord, error) {
	if r.backend.IsClosed() {
		return nil, storage.ErrStorageClosed
	}
	queryID := core.IDFromContent(strings.TrimSpace(query))

	var records []core.ValuedRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialHistoryKey(queryID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				record, err := storage.UnmarshalValuedRecord(val)
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
