package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/notekeeper/internal/client/storage"
)

const (
	keyLastSyncAt = "last_sync_at"
)

// SaveLastSyncAt saves the time of the last successful sync
func (s *Storage) SaveLastSyncAt(ctx context.Context, at time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Храним UnixNano big-endian: так порядок байт совпадает с порядком времени
		tsBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(tsBytes, uint64(at.UnixNano()))

		if err := bucket.Put([]byte(keyLastSyncAt), tsBytes); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}

		return nil
	})

	return wrapErr("save last sync time", err)
}

// GetLastSyncAt retrieves the time of the last successful sync
// Returns zero time if no sync has been performed yet
func (s *Storage) GetLastSyncAt(ctx context.Context) (time.Time, error) {
	if s.db == nil {
		return time.Time{}, storage.ErrStorageClosed
	}

	var at time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		tsBytes := bucket.Get([]byte(keyLastSyncAt))
		if tsBytes == nil {
			// Первая синхронизация
			return nil
		}
		if len(tsBytes) != 8 {
			return fmt.Errorf("corrupted last sync time: %d bytes", len(tsBytes))
		}

		at = time.Unix(0, int64(binary.BigEndian.Uint64(tsBytes))).UTC()
		return nil
	})

	if err != nil {
		return time.Time{}, wrapErr("get last sync time", err)
	}

	return at, nil
}
