package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/tlog/internal/ports/secondary"
)

// ReportRepository implements secondary.ReportRepository with SQLite.
// The all-time stats read the category_stats/tag_stats views directly;
// the range reports keep activities whose start_time falls inside the
// bounds' calendar days, each taken in its own time zone.
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new SQLite report repository.
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// CategoryStats returns all-time per-category totals from category_stats.
func (r *ReportRepository) CategoryStats(ctx context.Context) ([]*secondary.CategoryStatRecord, error) {
	return r.queryCategoryStats(ctx,
		"SELECT id, name, color, activity_count, total_minutes FROM category_stats ORDER BY total_minutes DESC")
}

// TagStats returns all-time per-tag totals from tag_stats.
func (r *ReportRepository) TagStats(ctx context.Context) ([]*secondary.TagStatRecord, error) {
	return r.queryTagStats(ctx,
		"SELECT id, name, category_id, category_name, category_color, activity_count, total_minutes FROM tag_stats ORDER BY category_name ASC, total_minutes DESC")
}

// DailyReport returns per-day totals for activities starting on the
// calendar days [from, to]. Days are bucketed in the bounds' time zone,
// so an activity logged at 1am local lands on its local day even though
// it is stored as the previous UTC date.
func (r *ReportRepository) DailyReport(ctx context.Context, from, to time.Time) ([]*secondary.DailyStatRecord, error) {
	lo, hi := dayRange(from, to)
	rows, err := r.db.QueryContext(ctx, `
		SELECT date(start_time, ?), COUNT(*),
		       COALESCE(SUM((unixepoch(end_time) - unixepoch(start_time)) / 60), 0)
		FROM activities
		WHERE start_time >= ? AND start_time < ?
		GROUP BY 1
		ORDER BY 1 DESC`,
		localDayModifier(from, to), lo, hi,
	)
	if err != nil {
		return nil, wrapErr("failed to build daily report", err)
	}
	defer rows.Close()

	var stats []*secondary.DailyStatRecord
	for rows.Next() {
		record := &secondary.DailyStatRecord{}
		if err := rows.Scan(&record.Day, &record.ActivityCount, &record.TotalMinutes); err != nil {
			return nil, wrapErr("failed to scan daily stat", err)
		}
		stats = append(stats, record)
	}

	return stats, rows.Err()
}

// CategoryReport returns per-category totals scoped to the date range.
// Categories without activities in range are omitted.
func (r *ReportRepository) CategoryReport(ctx context.Context, from, to time.Time) ([]*secondary.CategoryStatRecord, error) {
	lo, hi := dayRange(from, to)
	return r.queryCategoryStats(ctx, `
		SELECT c.id, c.name, c.color, COUNT(a.id),
		       COALESCE(SUM((unixepoch(a.end_time) - unixepoch(a.start_time)) / 60), 0)
		FROM categories c
		LEFT JOIN activities a ON a.category_id = c.id
			AND a.start_time >= ? AND a.start_time < ?
		GROUP BY c.id, c.name, c.color
		HAVING COUNT(a.id) > 0
		ORDER BY 5 DESC`,
		lo, hi,
	)
}

// TagReport returns per-tag totals scoped to the date range. Tags without
// activities in range are omitted.
func (r *ReportRepository) TagReport(ctx context.Context, from, to time.Time) ([]*secondary.TagStatRecord, error) {
	lo, hi := dayRange(from, to)
	return r.queryTagStats(ctx, `
		SELECT t.id, t.name, t.category_id, c.name, c.color, COUNT(DISTINCT a.id),
		       COALESCE(SUM((unixepoch(a.end_time) - unixepoch(a.start_time)) / 60), 0)
		FROM tags t
		JOIN categories c ON c.id = t.category_id
		LEFT JOIN activity_tags at ON at.tag_id = t.id
		LEFT JOIN activities a ON a.id = at.activity_id
			AND a.start_time >= ? AND a.start_time < ?
		GROUP BY t.id, t.name, t.category_id, c.name, c.color
		HAVING COUNT(a.id) > 0
		ORDER BY c.name ASC, 7 DESC`,
		lo, hi,
	)
}

// dayRange renders the inclusive calendar-day bounds as a half-open
// range of storage-format instants, each day taken in its own time zone.
// A zero from acts as an unbounded lower edge.
func dayRange(from, to time.Time) (string, string) {
	return fmtTime(dayStart(from)), fmtTime(dayStart(to).AddDate(0, 0, 1))
}

// localDayModifier builds a date() offset modifier that shifts stored
// UTC instants into the range bounds' time zone before bucketing.
func localDayModifier(from, to time.Time) string {
	zone := from
	if zone.IsZero() {
		zone = to
	}
	_, offset := zone.Zone()
	return fmt.Sprintf("%+d seconds", offset)
}

func (r *ReportRepository) queryCategoryStats(ctx context.Context, query string, args ...any) ([]*secondary.CategoryStatRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("failed to query category stats", err)
	}
	defer rows.Close()

	var stats []*secondary.CategoryStatRecord
	for rows.Next() {
		var color sql.NullString

		record := &secondary.CategoryStatRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &color, &record.ActivityCount, &record.TotalMinutes); err != nil {
			return nil, wrapErr("failed to scan category stat", err)
		}

		record.Color = color.String

		stats = append(stats, record)
	}

	return stats, rows.Err()
}

func (r *ReportRepository) queryTagStats(ctx context.Context, query string, args ...any) ([]*secondary.TagStatRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("failed to query tag stats", err)
	}
	defer rows.Close()

	var stats []*secondary.TagStatRecord
	for rows.Next() {
		var color sql.NullString

		record := &secondary.TagStatRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.CategoryID, &record.CategoryName,
			&color, &record.ActivityCount, &record.TotalMinutes); err != nil {
			return nil, wrapErr("failed to scan tag stat", err)
		}

		record.CategoryColor = color.String

		stats = append(stats, record)
	}

	return stats, rows.Err()
}

// Ensure ReportRepository implements the interface.
var _ secondary.ReportRepository = (*ReportRepository)(nil)
