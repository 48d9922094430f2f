package primary

import (
	"context"
	"time"
)

// ReportService defines the primary port for aggregate statistics.
type ReportService interface {
	// CategoryStats returns per-category totals over all activities,
	// ordered by total minutes descending. Categories without activities
	// report zeros.
	CategoryStats(ctx context.Context) ([]*CategoryStat, error)

	// TagStats returns per-tag totals over all activities carrying the
	// tag, ordered by category name then total minutes descending.
	TagStats(ctx context.Context) ([]*TagStat, error)

	// DailyReport returns per-day totals for start dates in [from, to],
	// ordered by day descending. Days without activities are omitted.
	DailyReport(ctx context.Context, from, to time.Time) ([]*DailyStat, error)

	// CategoryReport returns per-category totals scoped to the date
	// range; categories without activities in range are omitted.
	CategoryReport(ctx context.Context, from, to time.Time) ([]*CategoryStat, error)

	// TagReport returns per-tag totals scoped to the date range; tags
	// without activities in range are omitted.
	TagReport(ctx context.Context, from, to time.Time) ([]*TagStat, error)
}

// CategoryStat is a category_stats row at the port boundary.
type CategoryStat struct {
	CategoryID    string
	Name          string
	Color         string
	ActivityCount int
	TotalMinutes  int
}

// TagStat is a tag_stats row at the port boundary.
type TagStat struct {
	TagID         string
	Name          string
	CategoryID    string
	CategoryName  string
	CategoryColor string
	ActivityCount int
	TotalMinutes  int
}

// DailyStat aggregates one calendar day of activity.
type DailyStat struct {
	Day           string // YYYY-MM-DD
	ActivityCount int
	TotalMinutes  int
}
