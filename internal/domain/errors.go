package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrValidation indicates a missing or malformed required field.
	ErrValidation = errors.New("validation failed")
	// ErrRemoteUnavailable indicates the user directory call failed or
	// returned a non-success status. The local mutation is aborted.
	ErrRemoteUnavailable = errors.New("directory unavailable")
	// ErrPersistence indicates a store write failed after the in-memory
	// mutation was applied. The mutation is kept; memory and store diverge
	// until the next successful write.
	ErrPersistence = errors.New("store write failed")
	// ErrConfirmationRequired indicates a destructive operation was invoked
	// without confirmation and nothing was changed.
	ErrConfirmationRequired = errors.New("confirmation required")
)
