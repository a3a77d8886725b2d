package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// ==================== PARTICIPANT OPERATIONS ====================

// ParticipantRepository manages the participant name list of each activity.
// Names are not unique; the same name may join more than once.
type ParticipantRepository struct {
	handle *Handle
}

func NewParticipantRepository(handle *Handle) *ParticipantRepository {
	return &ParticipantRepository{handle: handle}
}

// List returns participant names in join order
func (r *ParticipantRepository) List(ctx context.Context, activityID string) (names []string, err error) {
	defer track("participants.list")(&err)

	names = make([]string, 0)
	rowID, ok := parseID(activityID)
	if !ok {
		return names, nil
	}

	db, err := r.handle.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT name FROM participants
		WHERE activityId = ?
		ORDER BY id ASC
	`, rowID)
	if err != nil {
		return nil, fmt.Errorf("list participants of %s: %w", activityID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// Join appends name to the activity's participants. The activity must exist.
func (r *ParticipantRepository) Join(ctx context.Context, activityID, name string) (err error) {
	defer track("participants.join")(&err)

	if strings.TrimSpace(name) == "" {
		return ErrEmptyParticipantName
	}

	rowID, ok := parseID(activityID)
	if !ok {
		return ErrNotFound
	}

	db, err := r.handle.Acquire(ctx)
	if err != nil {
		return err
	}

	return inTx(ctx, db, func(tx *sql.Tx) error {
		exists, err := activityExists(ctx, tx, rowID)
		if err != nil {
			return fmt.Errorf("join activity %s: %w", activityID, err)
		}
		if !exists {
			return ErrNotFound
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO participants (activityId, name) VALUES (?, ?)`, rowID, name); err != nil {
			return fmt.Errorf("join activity %s: %w", activityID, err)
		}
		return nil
	})
}

// Leave removes every participant row with exactly this name and returns how many went
func (r *ParticipantRepository) Leave(ctx context.Context, activityID, name string) (removed int64, err error) {
	defer track("participants.leave")(&err)

	rowID, ok := parseID(activityID)
	if !ok {
		return 0, nil
	}

	db, err := r.handle.Acquire(ctx)
	if err != nil {
		return 0, err
	}

	res, err := db.ExecContext(ctx,
		`DELETE FROM participants WHERE activityId = ? AND name = ?`, rowID, name)
	if err != nil {
		return 0, fmt.Errorf("leave activity %s: %w", activityID, err)
	}

	return res.RowsAffected()
}

// ==================== HELPERS ====================

func inTx(ctx context.Context, db *DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func activityExists(ctx context.Context, tx *sql.Tx, rowID int64) (bool, error) {
	var exists bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM activities WHERE id = ?)`, rowID).Scan(&exists)
	return exists, err
}
