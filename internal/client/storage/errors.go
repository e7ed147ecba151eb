package storage

import "errors"

// Common client storage errors
var (
	// ErrLocalStore marks failures of the offline cache itself (I/O, corrupted values)
	ErrLocalStore = errors.New("local store error")

	// ErrRecordNotFound indicates that record was not found
	ErrRecordNotFound = errors.New("record not found")

	// ErrConflictNotFound indicates that no record carries the conflict
	ErrConflictNotFound = errors.New("conflict not found")

	// ErrUnknownRecordType indicates that record type has no bucket
	ErrUnknownRecordType = errors.New("unknown record type")

	// ErrSessionNotFound indicates that client is not logged in
	ErrSessionNotFound = errors.New("session not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
