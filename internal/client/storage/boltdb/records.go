package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/notekeeper/internal/client/storage"
	"github.com/iudanet/notekeeper/internal/models"
)

// SaveRecord stores a locally mutated record and marks it pending
func (s *Storage) SaveRecord(ctx context.Context, record *models.Record) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := bucketFor(tx, record.Type)
		if err != nil {
			return err
		}

		toSave := record.Clone()
		toSave.PendingSync = true
		toSave.SyncError = ""

		// Базовая ревизия и конфликт принадлежат синхронизации, а не редактору
		existing, err := readRecord(bucket, record.ID)
		if err == nil {
			toSave.ServerVersion = existing.ServerVersion
			toSave.Conflict = existing.Conflict
		}

		return writeRecord(bucket, toSave)
	})

	return wrapErr("save record", err)
}

// GetRecord retrieves a record by type and ID (tombstones included)
func (s *Storage) GetRecord(ctx context.Context, recordType models.RecordType, id string) (*models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var record *models.Record

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := bucketFor(tx, recordType)
		if err != nil {
			return err
		}

		record, err = readRecord(bucket, id)
		return err
	})

	if err != nil {
		return nil, wrapErr("get record", err)
	}

	return record, nil
}

// ListRecords returns all non-deleted records of the type
func (s *Storage) ListRecords(ctx context.Context, recordType models.RecordType) ([]*models.Record, error) {
	return s.filterRecords(recordType, "list records", func(r *models.Record) bool {
		return !r.Deleted
	})
}

// GetPendingRecords returns records with PendingSync == true (tombstones included)
func (s *Storage) GetPendingRecords(ctx context.Context, recordType models.RecordType) ([]*models.Record, error) {
	return s.filterRecords(recordType, "get pending records", func(r *models.Record) bool {
		return r.PendingSync
	})
}

// DeleteRecord turns the record into a pending tombstone
func (s *Storage) DeleteRecord(ctx context.Context, recordType models.RecordType, id string, at time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := bucketFor(tx, recordType)
		if err != nil {
			return err
		}

		record, err := readRecord(bucket, id)
		if err != nil {
			return err
		}

		// Сервер о записи не знает: отправлять нечего
		if record.ServerVersion == 0 {
			return bucket.Delete([]byte(id))
		}

		record.Deleted = true
		record.Data = nil
		record.ContentHash = models.HashData(nil)
		record.UpdatedAt = at
		record.PendingSync = true
		record.SyncError = ""

		return writeRecord(bucket, record)
	})

	return wrapErr("delete record", err)
}

// ApplyRemote writes records pulled from the server
func (s *Storage) ApplyRemote(ctx context.Context, recordType models.RecordType, records []*models.Record) (int, []*models.Record, error) {
	if s.db == nil {
		return 0, nil, storage.ErrStorageClosed
	}
	if len(records) == 0 {
		return 0, nil, nil
	}

	var (
		applied  int
		diverged []*models.Record
	)

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := bucketFor(tx, recordType)
		if err != nil {
			return err
		}

		for _, remote := range records {
			existing, err := readRecord(bucket, remote.ID)
			switch {
			case err == nil:
				if existing.PendingSync {
					// Локальные правки не перетираем, решает push
					diverged = append(diverged, remote.Clone())
					continue
				}
				if remote.ServerVersion <= existing.ServerVersion {
					continue
				}
			case isNotFound(err):
				if remote.Deleted {
					continue
				}
			default:
				return err
			}

			if remote.Deleted {
				if err := bucket.Delete([]byte(remote.ID)); err != nil {
					return fmt.Errorf("failed to delete record %s: %w", remote.ID, err)
				}
				applied++
				continue
			}

			toSave := remote.Clone()
			toSave.Type = recordType
			toSave.PendingSync = false
			toSave.SyncError = ""
			toSave.Conflict = nil
			if existing != nil {
				toSave.Conflict = existing.Conflict
			}

			if err := writeRecord(bucket, toSave); err != nil {
				return err
			}
			applied++
		}

		return nil
	})

	if err != nil {
		return 0, nil, wrapErr("apply remote records", err)
	}

	return applied, diverged, nil
}

// ClearPending drops the pending flag and sync error for acknowledged records
func (s *Storage) ClearPending(ctx context.Context, recordType models.RecordType, acks []models.PushAck) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if len(acks) == 0 {
		return nil
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := bucketFor(tx, recordType)
		if err != nil {
			return err
		}

		for _, ack := range acks {
			record, err := readRecord(bucket, ack.ID)
			if isNotFound(err) {
				continue
			}
			if err != nil {
				return err
			}

			if ack.ServerVersion > record.ServerVersion {
				record.ServerVersion = ack.ServerVersion
			}

			// Запись изменили после формирования батча: остаётся pending
			if !record.UpdatedAt.Equal(ack.UpdatedAt) {
				if err := writeRecord(bucket, record); err != nil {
					return err
				}
				continue
			}

			if record.Deleted {
				if err := bucket.Delete([]byte(record.ID)); err != nil {
					return fmt.Errorf("failed to purge tombstone %s: %w", record.ID, err)
				}
				continue
			}

			record.PendingSync = false
			record.SyncError = ""
			if err := writeRecord(bucket, record); err != nil {
				return err
			}
		}

		return nil
	})

	return wrapErr("clear pending", err)
}

// SetSyncErrors stores per-record push failures, records stay pending
func (s *Storage) SetSyncErrors(ctx context.Context, recordType models.RecordType, failures []models.PushFailure) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if len(failures) == 0 {
		return nil
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := bucketFor(tx, recordType)
		if err != nil {
			return err
		}

		for _, f := range failures {
			record, err := readRecord(bucket, f.ID)
			if isNotFound(err) {
				continue
			}
			if err != nil {
				return err
			}

			record.SyncError = f.Message
			if err := writeRecord(bucket, record); err != nil {
				return err
			}
		}
		return nil
	})

	return wrapErr("set sync errors", err)
}

// SetConflicts attaches detected conflicts to their records.
// The pending flag is dropped when the record still holds the pushed
// content: it waits for ResolveConflict instead of being pushed again.
func (s *Storage) SetConflicts(ctx context.Context, recordType models.RecordType, conflicts []*models.Conflict) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if len(conflicts) == 0 {
		return nil
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := bucketFor(tx, recordType)
		if err != nil {
			return err
		}

		for _, c := range conflicts {
			record, err := readRecord(bucket, c.RecordID)
			if isNotFound(err) {
				continue
			}
			if err != nil {
				return err
			}

			record.Conflict = c.Clone()
			record.SyncError = ""
			if record.UpdatedAt.Equal(c.Local.UpdatedAt) {
				record.PendingSync = false
			}

			if err := writeRecord(bucket, record); err != nil {
				return err
			}
		}
		return nil
	})

	return wrapErr("set conflicts", err)
}

// ListConflicts returns all records with an outstanding conflict
func (s *Storage) ListConflicts(ctx context.Context) ([]*models.Record, error) {
	var out []*models.Record
	for _, t := range models.AllRecordTypes {
		records, err := s.filterRecords(t, "list conflicts", (*models.Record).HasConflict)
		if err != nil {
			return nil, err
		}
		out = append(out, records...)
	}
	return out, nil
}

// FindConflict returns the record carrying conflict conflictID
func (s *Storage) FindConflict(ctx context.Context, conflictID string) (*models.Record, error) {
	records, err := s.ListConflicts(ctx)
	if err != nil {
		return nil, err
	}

	for _, r := range records {
		if r.Conflict.ID == conflictID {
			return r, nil
		}
	}

	return nil, storage.ErrConflictNotFound
}

// ApplyResolved stores the server's result of a conflict resolution
func (s *Storage) ApplyResolved(ctx context.Context, record *models.Record) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := bucketFor(tx, record.Type)
		if err != nil {
			return err
		}

		if record.Deleted {
			return bucket.Delete([]byte(record.ID))
		}

		toSave := record.Clone()
		toSave.PendingSync = false
		toSave.SyncError = ""
		toSave.Conflict = nil

		return writeRecord(bucket, toSave)
	})

	return wrapErr("apply resolved record", err)
}

// filterRecords выбирает записи типа, удовлетворяющие условию
func (s *Storage) filterRecords(recordType models.RecordType, op string, keep func(*models.Record) bool) ([]*models.Record, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var records []*models.Record

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := bucketFor(tx, recordType)
		if err != nil {
			return err
		}

		return bucket.ForEach(func(k, v []byte) error {
			var record models.Record
			if err := json.Unmarshal(v, &record); err != nil {
				return fmt.Errorf("failed to unmarshal record %s: %w", k, err)
			}
			if keep(&record) {
				records = append(records, &record)
			}
			return nil
		})
	})

	if err != nil {
		return nil, wrapErr(op, err)
	}

	return records, nil
}

func readRecord(bucket *bbolt.Bucket, id string) (*models.Record, error) {
	data := bucket.Get([]byte(id))
	if data == nil {
		return nil, storage.ErrRecordNotFound
	}

	record := &models.Record{}
	if err := json.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record %s: %w", id, err)
	}
	return record, nil
}

func writeRecord(bucket *bbolt.Bucket, record *models.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record %s: %w", record.ID, err)
	}

	if err := bucket.Put([]byte(record.ID), data); err != nil {
		return fmt.Errorf("failed to save record %s: %w", record.ID, err)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrRecordNotFound)
}
