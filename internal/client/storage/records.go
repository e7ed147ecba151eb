package storage

import (
	"context"
	"time"

	"github.com/iudanet/notekeeper/internal/models"
)

//go:generate moq -out recordstorage_mock.go . RecordStorage

// RecordStorage defines the offline cache of syncable records on the client
type RecordStorage interface {
	// SaveRecord stores a locally mutated record and marks it pending.
	// ServerVersion and Conflict of an already stored record are kept.
	SaveRecord(ctx context.Context, record *models.Record) error

	// GetRecord retrieves a record by type and ID (tombstones included)
	// Returns ErrRecordNotFound if record doesn't exist
	GetRecord(ctx context.Context, recordType models.RecordType, id string) (*models.Record, error)

	// ListRecords returns all non-deleted records of the type
	ListRecords(ctx context.Context, recordType models.RecordType) ([]*models.Record, error)

	// DeleteRecord turns the record into a pending tombstone.
	// A record the server has never seen is removed right away.
	// Returns ErrRecordNotFound if record doesn't exist
	DeleteRecord(ctx context.Context, recordType models.RecordType, id string, at time.Time) error

	// GetPendingRecords returns records with PendingSync == true (tombstones included)
	GetPendingRecords(ctx context.Context, recordType models.RecordType) ([]*models.Record, error)

	// ApplyRemote writes records pulled from the server and returns how many
	// of them changed the local cache. Records already known at the same or a
	// newer ServerVersion are skipped. Locally pending records are never
	// overwritten; they are returned as diverged.
	ApplyRemote(ctx context.Context, recordType models.RecordType, records []*models.Record) (int, []*models.Record, error)

	// ClearPending drops the pending flag and sync error for acknowledged records.
	// Records changed after the batch was captured keep PendingSync and only
	// get the new ServerVersion.
	ClearPending(ctx context.Context, recordType models.RecordType, acks []models.PushAck) error

	// SetSyncErrors stores per-record push failures, records stay pending
	SetSyncErrors(ctx context.Context, recordType models.RecordType, failures []models.PushFailure) error

	// SetConflicts attaches detected conflicts to their records
	SetConflicts(ctx context.Context, recordType models.RecordType, conflicts []*models.Conflict) error

	// ListConflicts returns all records with an outstanding conflict
	ListConflicts(ctx context.Context) ([]*models.Record, error)

	// FindConflict returns the record carrying conflict conflictID
	// Returns ErrConflictNotFound if no record has it
	FindConflict(ctx context.Context, conflictID string) (*models.Record, error)

	// ApplyResolved stores the server's result of a conflict resolution,
	// clearing both the conflict and the pending flag
	ApplyResolved(ctx context.Context, record *models.Record) error
}
