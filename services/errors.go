package services

import "activity-finder/database"

// Common service-level errors
var (
	// ErrActivityNotFound is the repository's not-found signal, so errors.Is
	// works whichever layer produced it.
	ErrActivityNotFound = database.ErrNotFound
)
