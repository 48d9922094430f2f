package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/tlog/internal/ports/secondary"
)

// ActivityRepository implements secondary.ActivityRepository with SQLite.
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new SQLite activity repository.
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// fmtTime renders a timestamp in the storage format. Everything is stored
// as UTC RFC3339 text so string order matches chronological order.
func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// dayStart truncates t to midnight in its own location.
func dayStart(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// Create inserts the activity row and one association per tag ID in a
// single transaction, so a bad tag reference leaves nothing behind.
func (r *ActivityRepository) Create(ctx context.Context, activity *secondary.ActivityRecord, tagIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapErr("failed to begin transaction", err)
	}
	defer tx.Rollback()

	var notes sql.NullString
	if activity.Notes != "" {
		notes = sql.NullString{String: activity.Notes, Valid: true}
	}

	now := fmtTime(time.Now())
	_, err = tx.ExecContext(ctx,
		"INSERT INTO activities (id, start_time, end_time, category_id, notes, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		activity.ID, fmtTime(activity.StartTime), fmtTime(activity.EndTime),
		activity.CategoryID, notes, now, now,
	)
	if err != nil {
		return wrapErr("failed to create activity", err)
	}

	for _, tagID := range tagIDs {
		_, err = tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO activity_tags (activity_id, tag_id) VALUES (?, ?)",
			activity.ID, tagID,
		)
		if err != nil {
			return wrapErr("failed to associate tag", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return wrapErr("failed to commit activity", err)
	}

	return nil
}

// GetByID retrieves a raw activity row.
func (r *ActivityRepository) GetByID(ctx context.Context, id string) (*secondary.ActivityRecord, error) {
	var notes sql.NullString

	record := &secondary.ActivityRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, start_time, end_time, category_id, notes, created_at, updated_at FROM activities WHERE id = ?",
		id,
	).Scan(&record.ID, &record.StartTime, &record.EndTime, &record.CategoryID,
		&notes, &record.CreatedAt, &record.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, notFound("activity", id)
	}
	if err != nil {
		return nil, wrapErr("failed to get activity", err)
	}

	record.Notes = notes.String

	return record, nil
}

const viewSelect = `
	SELECT id, start_time, end_time, category_id, category_name, category_color,
	       notes, duration_minutes, tags, created_at, updated_at
	FROM activities_view`

func scanView(scan func(dest ...any) error) (*secondary.ActivityViewRecord, error) {
	var (
		color     sql.NullString
		notes     sql.NullString
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.ActivityViewRecord{}
	err := scan(&record.ID, &record.StartTime, &record.EndTime, &record.CategoryID,
		&record.CategoryName, &color, &notes, &record.DurationMinutes, &record.Tags,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	record.CategoryColor = color.String
	record.Notes = notes.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// GetView retrieves one activities_view row.
func (r *ActivityRepository) GetView(ctx context.Context, id string) (*secondary.ActivityViewRecord, error) {
	row := r.db.QueryRowContext(ctx, viewSelect+" WHERE id = ?", id)

	record, err := scanView(row.Scan)
	if err == sql.ErrNoRows {
		return nil, notFound("activity", id)
	}
	if err != nil {
		return nil, wrapErr("failed to get activity view", err)
	}

	return record, nil
}

// GetTagIDs returns the tag IDs associated with an activity.
func (r *ActivityRepository) GetTagIDs(ctx context.Context, id string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT tag_id FROM activity_tags WHERE activity_id = ? ORDER BY tag_id", id)
	if err != nil {
		return nil, wrapErr("failed to get activity tags", err)
	}
	defer rows.Close()

	var tagIDs []string
	for rows.Next() {
		var tagID string
		if err := rows.Scan(&tagID); err != nil {
			return nil, wrapErr("failed to scan tag id", err)
		}
		tagIDs = append(tagIDs, tagID)
	}

	return tagIDs, rows.Err()
}

// List retrieves activity views ordered by start time descending.
// Date bounds select whole calendar days in their own time zone: From
// keeps activities starting at or after From's midnight, To keeps
// activities starting before the midnight after To. The comparison runs
// on the stored UTC instants, so a day bound in any zone lines up with
// activities logged near midnight.
func (r *ActivityRepository) List(ctx context.Context, filters secondary.ActivityFilters) ([]*secondary.ActivityViewRecord, error) {
	query := viewSelect
	where := ""
	args := []any{}

	if !filters.From.IsZero() {
		where += " WHERE start_time >= ?"
		args = append(args, fmtTime(dayStart(filters.From)))
	}
	if !filters.To.IsZero() {
		if where == "" {
			where = " WHERE"
		} else {
			where += " AND"
		}
		where += " start_time < ?"
		args = append(args, fmtTime(dayStart(filters.To).AddDate(0, 0, 1)))
	}

	query += where + " ORDER BY start_time DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	return r.queryViews(ctx, query, args...)
}

// FindOverlapping returns activities whose range overlaps [start, end),
// start ascending. Back-to-back activities do not overlap.
func (r *ActivityRepository) FindOverlapping(ctx context.Context, start, end time.Time, excludeID string) ([]*secondary.ActivityViewRecord, error) {
	query := viewSelect + " WHERE start_time < ? AND end_time > ?"
	args := []any{fmtTime(end), fmtTime(start)}

	if excludeID != "" {
		query += " AND id != ?"
		args = append(args, excludeID)
	}

	query += " ORDER BY start_time ASC"

	return r.queryViews(ctx, query, args...)
}

func (r *ActivityRepository) queryViews(ctx context.Context, query string, args ...any) ([]*secondary.ActivityViewRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("failed to list activities", err)
	}
	defer rows.Close()

	var views []*secondary.ActivityViewRecord
	for rows.Next() {
		record, err := scanView(rows.Scan)
		if err != nil {
			return nil, wrapErr("failed to scan activity view", err)
		}
		views = append(views, record)
	}

	return views, rows.Err()
}

// Update writes all mutable fields. updated_at is always set explicitly,
// whichever field actually changed; the schema trigger backs this up for
// writers that bypass the repository.
func (r *ActivityRepository) Update(ctx context.Context, activity *secondary.ActivityRecord) error {
	var notes sql.NullString
	if activity.Notes != "" {
		notes = sql.NullString{String: activity.Notes, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE activities SET start_time = ?, end_time = ?, category_id = ?, notes = ?, updated_at = ? WHERE id = ?",
		fmtTime(activity.StartTime), fmtTime(activity.EndTime), activity.CategoryID,
		notes, fmtTime(time.Now()), activity.ID,
	)
	if err != nil {
		return wrapErr("failed to update activity", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return notFound("activity", activity.ID)
	}

	return nil
}

// ReplaceTags swaps the activity's association set in one transaction.
func (r *ActivityRepository) ReplaceTags(ctx context.Context, id string, tagIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapErr("failed to begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM activity_tags WHERE activity_id = ?", id); err != nil {
		return wrapErr("failed to clear activity tags", err)
	}

	for _, tagID := range tagIDs {
		_, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO activity_tags (activity_id, tag_id) VALUES (?, ?)",
			id, tagID,
		)
		if err != nil {
			return wrapErr("failed to associate tag", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return wrapErr("failed to commit tag replacement", err)
	}

	return nil
}

// Delete removes an activity (cascades to activity_tags).
func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM activities WHERE id = ?", id)
	if err != nil {
		return wrapErr("failed to delete activity", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return notFound("activity", id)
	}

	return nil
}

// GetNextID returns the next available activity ID.
func (r *ActivityRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM activities",
	).Scan(&maxID)
	if err != nil {
		return "", wrapErr("failed to get next activity ID", err)
	}

	return fmt.Sprintf("ACT-%03d", maxID+1), nil
}

// Ensure ActivityRepository implements the interface.
var _ secondary.ActivityRepository = (*ActivityRepository)(nil)
