package database

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrHandleClosed is returned by Acquire after Close.
var ErrHandleClosed = errors.New("storage handle closed")

// Handle owns the single connection to the on-device store. It is created
// by the application wiring and shared by every repository. The first
// Acquire opens the file and creates the schema; concurrent first callers
// wait on the same initialization.
type Handle struct {
	path  string
	group singleflight.Group

	mu     sync.Mutex
	db     *DB
	closed bool
}

func NewHandle(path string) *Handle {
	return &Handle{path: path}
}

// Acquire returns the ready connection, opening it on first use. Failures
// wrap ErrStorageUnavailable and are not cached.
func (h *Handle) Acquire(ctx context.Context) (*DB, error) {
	if db, err := h.ready(); db != nil || err != nil {
		return db, err
	}

	// Initialization is shared, so one caller's cancellation must not fail the others
	initCtx := context.WithoutCancel(ctx)

	v, err, _ := h.group.Do("open", func() (interface{}, error) {
		// A previous flight may have finished between ready() and Do
		if db, err := h.ready(); db != nil || err != nil {
			return db, err
		}

		db, err := New(h.path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
		if err := db.PingContext(initCtx); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
		if err := db.Migrate(initCtx); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}

		h.mu.Lock()
		defer h.mu.Unlock()
		if h.closed {
			db.Close()
			return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, ErrHandleClosed)
		}
		h.db = db
		return db, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*DB), nil
}

func (h *Handle) ready() (*DB, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, ErrHandleClosed)
	}
	return h.db, nil
}

// Close releases the connection. It is safe to call more than once.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	if h.db == nil {
		return nil
	}
	err := h.db.Close()
	h.db = nil
	return err
}
