package database

import (
	"activity-finder/models"
	"context"
	"database/sql"
	"fmt"
	"strconv"
)

// ==================== FAVORITE OPERATIONS ====================

// FavoriteRepository stores one presence marker per favorited activity.
// There is a single local user, so markers are keyed by activity only.
type FavoriteRepository struct {
	handle *Handle
}

func NewFavoriteRepository(handle *Handle) *FavoriteRepository {
	return &FavoriteRepository{handle: handle}
}

func (r *FavoriteRepository) IsFavorite(ctx context.Context, activityID string) (fav bool, err error) {
	defer track("favorites.get")(&err)

	rowID, ok := parseID(activityID)
	if !ok {
		return false, nil
	}

	db, err := r.handle.Acquire(ctx)
	if err != nil {
		return false, err
	}

	err = db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM favorites WHERE activityId = ?)`, rowID).Scan(&fav)
	if err != nil {
		return false, fmt.Errorf("check favorite %s: %w", activityID, err)
	}
	return fav, nil
}

// Add marks the activity as favorite. Adding twice is a no-op.
func (r *FavoriteRepository) Add(ctx context.Context, activityID string) (err error) {
	defer track("favorites.add")(&err)

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
			return fmt.Errorf("add favorite %s: %w", activityID, err)
		}
		if !exists {
			return ErrNotFound
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO favorites (activityId) VALUES (?)`, rowID); err != nil {
			return fmt.Errorf("add favorite %s: %w", activityID, err)
		}
		return nil
	})
}

// Remove clears the marker. Removing a missing marker is a no-op.
func (r *FavoriteRepository) Remove(ctx context.Context, activityID string) (err error) {
	defer track("favorites.remove")(&err)

	rowID, ok := parseID(activityID)
	if !ok {
		return nil
	}

	db, err := r.handle.Acquire(ctx)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM favorites WHERE activityId = ?`, rowID); err != nil {
		return fmt.Errorf("remove favorite %s: %w", activityID, err)
	}
	return nil
}

// ListFavoriteActivities returns the full activities behind every marker
func (r *FavoriteRepository) ListFavoriteActivities(ctx context.Context) (activities []models.Activity, err error) {
	defer track("favorites.list")(&err)

	db, err := r.handle.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT a.id, a.name, a.description, a.category, a.time, a.latitude, a.longitude, a.creatorId
		FROM favorites f
		JOIN activities a ON a.id = f.activityId
		ORDER BY a.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list favorite activities: %w", err)
	}
	return collectActivities(rows)
}

// FavoriteIDs returns the set of favorited activity ids, used to annotate lists
func (r *FavoriteRepository) FavoriteIDs(ctx context.Context) (ids map[string]bool, err error) {
	defer track("favorites.ids")(&err)

	db, err := r.handle.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT activityId FROM favorites`)
	if err != nil {
		return nil, fmt.Errorf("list favorite ids: %w", err)
	}
	defer rows.Close()

	ids = make(map[string]bool)
	for rows.Next() {
		var rowID int64
		if err := rows.Scan(&rowID); err != nil {
			return nil, err
		}
		ids[strconv.FormatInt(rowID, 10)] = true
	}

	return ids, rows.Err()
}
