package storage

import "errors"

// Common storage errors
var (
	// ErrRecordNotFound indicates that record was not found in storage
	ErrRecordNotFound = errors.New("record not found")

	// ErrConflictNotFound indicates that there is no outstanding conflict with this id for the user
	ErrConflictNotFound = errors.New("conflict not found")
)
