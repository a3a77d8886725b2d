package database

import (
	"activity-finder/observability"
	"time"
)

// track starts timing a store operation; call the result with the
// operation's error before returning.
func track(operation string) func(*error) {
	started := time.Now()
	return func(err *error) {
		observability.RecordStoreOperation(operation, started, *err)
	}
}
