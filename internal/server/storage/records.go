package storage

import (
	"context"
	"time"

	"github.com/iudanet/notekeeper/internal/models"
)

//go:generate moq -out recordstorage_mock.go . RecordStorage

// RecordStorage defines interface for server-of-record persistence
type RecordStorage interface {
	// ApplyPush applies one pushed record atomically.
	// Decision follows models.DecidePush; on OutcomeConflict the record is left
	// untouched and an outstanding conflict is created or refreshed.
	// Per-record rejections are returned as models.ErrTypeMismatch / models.ErrVersionAhead.
	ApplyPush(ctx context.Context, incoming *models.StoredRecord, baseVersion int64, now time.Time) (*models.PushApplied, error)

	// GetRecord retrieves a record (tombstones included)
	// Returns ErrRecordNotFound if record doesn't exist
	GetRecord(ctx context.Context, userID, id string) (*models.StoredRecord, error)

	// ChangedSince retrieves records (tombstones included) of the given types
	// with ChangedAt strictly after since, ordered by ChangedAt.
	// Zero since returns everything.
	ChangedSince(ctx context.Context, userID string, since time.Time, types []models.RecordType) ([]*models.StoredRecord, error)
}

//go:generate moq -out conflictstorage_mock.go . ConflictStorage

// ConflictStorage defines interface for conflicts registered by push
type ConflictStorage interface {
	// GetConflict retrieves an outstanding conflict of the user
	// Returns ErrConflictNotFound for unknown, resolved or foreign conflicts
	GetConflict(ctx context.Context, userID, id string) (*models.ServerConflict, error)

	// ListConflicts retrieves outstanding conflicts of the user, oldest first
	ListConflicts(ctx context.Context, userID string) ([]*models.ServerConflict, error)

	// ResolveConflict writes the resolved record and closes the conflict in one transaction.
	// local re-applies the stored client snapshot, server keeps the current record,
	// merge applies data. Returns the resulting record.
	ResolveConflict(ctx context.Context, userID, id string, resolution models.Resolution, data []byte, now time.Time) (*models.StoredRecord, error)
}
