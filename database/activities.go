package database

import (
	"activity-finder/models"
	"activity-finder/validator"
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"
)

// ==================== ACTIVITY OPERATIONS ====================

const activityColumns = `id, name, description, category, time, latitude, longitude, creatorId`

// ActivityRepository maps rows of the activities table to models.Activity.
type ActivityRepository struct {
	handle   *Handle
	validate *validator.Validator
}

func NewActivityRepository(handle *Handle) *ActivityRepository {
	return &ActivityRepository{handle: handle, validate: validator.New()}
}

// ListAll returns every activity in insertion order
func (r *ActivityRepository) ListAll(ctx context.Context) (activities []models.Activity, err error) {
	defer track("activities.list")(&err)

	db, err := r.handle.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT `+activityColumns+` FROM activities ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return collectActivities(rows)
}

// ListByCreator returns the activities authored by creatorID
func (r *ActivityRepository) ListByCreator(ctx context.Context, creatorID string) (activities []models.Activity, err error) {
	defer track("activities.list_by_creator")(&err)

	db, err := r.handle.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT `+activityColumns+`
		FROM activities
		WHERE creatorId = ?
		ORDER BY id ASC
	`, creatorID)
	if err != nil {
		return nil, fmt.Errorf("list activities by creator: %w", err)
	}
	return collectActivities(rows)
}

// GetByID returns the activity or nil when no row matches
func (r *ActivityRepository) GetByID(ctx context.Context, id string) (activity *models.Activity, err error) {
	defer track("activities.get")(&err)

	rowID, ok := parseID(id)
	if !ok {
		return nil, nil
	}

	db, err := r.handle.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	a, err := scanActivity(db.QueryRowContext(ctx,
		`SELECT `+activityColumns+` FROM activities WHERE id = ?`, rowID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get activity %s: %w", id, err)
	}

	return &a, nil
}

// Create validates and inserts a new activity, returning its id
func (r *ActivityRepository) Create(ctx context.Context, in models.NewActivity) (id string, err error) {
	defer track("activities.create")(&err)

	if err := r.validate.Validate(in); err != nil {
		return "", err
	}

	db, err := r.handle.Acquire(ctx)
	if err != nil {
		return "", err
	}

	var creatorID sql.NullString
	if in.CreatorID != nil {
		creatorID = sql.NullString{String: *in.CreatorID, Valid: true}
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO activities (name, description, category, time, latitude, longitude, creatorId)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		in.Name, in.Description, in.Category, formatTime(in.Time),
		in.Location.Latitude, in.Location.Longitude, creatorID,
	)
	if err != nil {
		return "", fmt.Errorf("insert activity: %w", err)
	}

	rowID, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("insert activity: %w", err)
	}

	return strconv.FormatInt(rowID, 10), nil
}

// Update replaces the mutable fields of an existing activity.
// Returns ErrNotFound when the id matches no row; id and creatorId are never changed.
func (r *ActivityRepository) Update(ctx context.Context, a models.Activity) (err error) {
	defer track("activities.update")(&err)

	loc := a.Location
	if err := r.validate.Validate(models.ActivityInput{
		Name:        a.Name,
		Description: a.Description,
		Category:    a.Category,
		Time:        a.Time,
		Location:    &loc,
	}); err != nil {
		return err
	}

	rowID, ok := parseID(a.ID)
	if !ok {
		return ErrNotFound
	}

	db, err := r.handle.Acquire(ctx)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `
		UPDATE activities SET
			name = ?,
			description = ?,
			category = ?,
			time = ?,
			latitude = ?,
			longitude = ?
		WHERE id = ?
	`,
		a.Name, a.Description, a.Category, formatTime(a.Time),
		a.Location.Latitude, a.Location.Longitude, rowID,
	)
	if err != nil {
		return fmt.Errorf("update activity %s: %w", a.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update activity %s: %w", a.ID, err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the activity together with its participants and favorite
// marker in one transaction. Deleting a missing id is a no-op.
func (r *ActivityRepository) Delete(ctx context.Context, id string) (err error) {
	defer track("activities.delete")(&err)

	rowID, ok := parseID(id)
	if !ok {
		return nil
	}

	db, err := r.handle.Acquire(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete activity %s: %w", id, err)
	}
	defer tx.Rollback()

	for _, query := range []string{
		`DELETE FROM participants WHERE activityId = ?`,
		`DELETE FROM favorites WHERE activityId = ?`,
		`DELETE FROM activities WHERE id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, query, rowID); err != nil {
			return fmt.Errorf("delete activity %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete activity %s: %w", id, err)
	}
	return nil
}

// ==================== ROW MAPPING ====================

type rowScanner interface {
	Scan(dest ...any) error
}

func scanActivity(s rowScanner) (models.Activity, error) {
	var (
		a         models.Activity
		rowID     int64
		ts        string
		creatorID sql.NullString
	)

	if err := s.Scan(
		&rowID, &a.Name, &a.Description, &a.Category, &ts,
		&a.Location.Latitude, &a.Location.Longitude, &creatorID,
	); err != nil {
		return models.Activity{}, err
	}

	a.ID = strconv.FormatInt(rowID, 10)
	a.Time = parseTime(ts)
	if creatorID.Valid {
		a.CreatorID = &creatorID.String
	}

	return a, nil
}

func collectActivities(rows *sql.Rows) ([]models.Activity, error) {
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	activities := make([]models.Activity, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}

	return activities, rows.Err()
}

// parseID converts the string id surfaced to callers back to the row key.
// Anything that is not a positive integer cannot match a row.
func parseID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime reads a stored timestamp. Rows written by other clients may use
// a different precision; an unreadable value becomes the zero time.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
