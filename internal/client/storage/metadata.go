package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastSyncAt saves the time of the last successful sync
	SaveLastSyncAt(ctx context.Context, at time.Time) error

	// GetLastSyncAt retrieves the time of the last successful sync
	// Returns zero time if no sync has been performed yet
	GetLastSyncAt(ctx context.Context) (time.Time, error)
}
