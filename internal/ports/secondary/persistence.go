// Package secondary defines the driven ports: repository interfaces the
// application services depend on, implemented by the sqlite adapters.
package secondary

import (
	"context"
	"time"
)

// CategoryRecord is the persistence shape of a category.
type CategoryRecord struct {
	ID        string
	Name      string
	Color     string // empty when unset
	CreatedAt string // RFC3339
}

// TagRecord is the persistence shape of a tag.
type TagRecord struct {
	ID           string
	CategoryID   string
	CategoryName string // populated on reads that join categories
	Name         string // stored normalized
	CreatedAt    string // RFC3339
}

// ActivityRecord is the persistence shape of an activity row.
type ActivityRecord struct {
	ID         string
	StartTime  time.Time
	EndTime    time.Time
	CategoryID string
	Notes      string // empty maps to NULL
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ActivityViewRecord is an activities_view row.
type ActivityViewRecord struct {
	ID              string
	StartTime       time.Time
	EndTime         time.Time
	CategoryID      string
	CategoryName    string
	CategoryColor   string
	Notes           string
	DurationMinutes int
	Tags            string // normalized, comma-separated, sorted; "" if none
	CreatedAt       string
	UpdatedAt       string
}

// CategoryStatRecord is a category_stats row (also used by range reports).
type CategoryStatRecord struct {
	ID            string
	Name          string
	Color         string
	ActivityCount int
	TotalMinutes  int
}

// TagStatRecord is a tag_stats row (also used by range reports).
type TagStatRecord struct {
	ID            string
	Name          string
	CategoryID    string
	CategoryName  string
	CategoryColor string
	ActivityCount int
	TotalMinutes  int
}

// DailyStatRecord aggregates one calendar day.
type DailyStatRecord struct {
	Day           string // YYYY-MM-DD
	ActivityCount int
	TotalMinutes  int
}

// TagFilters narrows tag listings.
type TagFilters struct {
	CategoryID string
}

// ActivityFilters narrows activity listings. Zero times are unbounded;
// each bound selects the whole calendar day of start_time in the
// bound's own time zone.
type ActivityFilters struct {
	From  time.Time
	To    time.Time
	Limit int
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *CategoryRecord) error
	GetByID(ctx context.Context, id string) (*CategoryRecord, error)
	// GetByName matches case-insensitively on the trimmed name.
	GetByName(ctx context.Context, name string) (*CategoryRecord, error)
	List(ctx context.Context) ([]*CategoryRecord, error)
	Rename(ctx context.Context, id, name string) error
	// SetColor updates the color; empty stores NULL.
	SetColor(ctx context.Context, id, color string) error
	Delete(ctx context.Context, id string) error
	GetNextID(ctx context.Context) (string, error)
	// ActivityCount returns how many activities reference the category.
	ActivityCount(ctx context.Context, id string) (int, error)
}

// TagRepository defines persistence operations for tags.
type TagRepository interface {
	Create(ctx context.Context, tag *TagRecord) error
	GetByID(ctx context.Context, id string) (*TagRecord, error)
	// GetByName matches case-insensitively within one category.
	GetByName(ctx context.Context, categoryID, name string) (*TagRecord, error)
	List(ctx context.Context, filters TagFilters) ([]*TagRecord, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
	GetNextID(ctx context.Context) (string, error)
}

// ActivityRepository defines persistence operations for activities and
// their tag associations.
type ActivityRepository interface {
	// Create inserts the activity row and one association per tag ID in
	// a single transaction.
	Create(ctx context.Context, activity *ActivityRecord, tagIDs []string) error
	GetByID(ctx context.Context, id string) (*ActivityRecord, error)
	GetView(ctx context.Context, id string) (*ActivityViewRecord, error)
	GetTagIDs(ctx context.Context, id string) ([]string, error)
	List(ctx context.Context, filters ActivityFilters) ([]*ActivityViewRecord, error)
	// Update writes all mutable fields and always touches updated_at.
	Update(ctx context.Context, activity *ActivityRecord) error
	// ReplaceTags swaps the activity's association set in one transaction.
	ReplaceTags(ctx context.Context, id string, tagIDs []string) error
	Delete(ctx context.Context, id string) error
	// FindOverlapping returns rows with start_time < end AND end_time > start,
	// start ascending. excludeID skips one activity.
	FindOverlapping(ctx context.Context, start, end time.Time, excludeID string) ([]*ActivityViewRecord, error)
	GetNextID(ctx context.Context) (string, error)
}

// ReportRepository defines read-only aggregate queries.
type ReportRepository interface {
	CategoryStats(ctx context.Context) ([]*CategoryStatRecord, error)
	TagStats(ctx context.Context) ([]*TagStatRecord, error)
	DailyReport(ctx context.Context, from, to time.Time) ([]*DailyStatRecord, error)
	CategoryReport(ctx context.Context, from, to time.Time) ([]*CategoryStatRecord, error)
	TagReport(ctx context.Context, from, to time.Time) ([]*TagStatRecord, error)
}
