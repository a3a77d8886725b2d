package database

import "errors"

var (
	// ErrStorageUnavailable means the store could not be opened or its schema created.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrNotFound is returned by mutations that target a missing activity.
	ErrNotFound = errors.New("activity not found")
)

// ErrEmptyParticipantName rejects a join without a display name.
var ErrEmptyParticipantName = errors.New("participant name is required")
