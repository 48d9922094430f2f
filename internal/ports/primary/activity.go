package primary

import (
	"context"
	"time"
)

// ActivityService defines the primary port for activity operations.
type ActivityService interface {
	// LogActivity records a new activity with its tag associations.
	LogActivity(ctx context.Context, req LogActivityRequest) (*LogActivityResponse, error)

	// GetActivity retrieves one activity with category context, computed
	// duration and associated tags.
	GetActivity(ctx context.Context, activityID string) (*ActivityView, error)

	// UpdateActivity applies a partial update. Any time change is
	// re-validated against the stored values; updated_at is always
	// touched, whichever field changed.
	UpdateActivity(ctx context.Context, activityID string, req UpdateActivityRequest) error

	// ReplaceActivityTags replaces the activity's tag set atomically.
	ReplaceActivityTags(ctx context.Context, activityID string, tagIDs []string) error

	// DeleteActivity deletes an activity and cascades to its tag
	// associations. Tags and category are left intact.
	DeleteActivity(ctx context.Context, activityID string) error

	// ListActivities retrieves activity views ordered by start time
	// descending.
	ListActivities(ctx context.Context, filters ActivityFilters) ([]*ActivityView, error)

	// FindOverlapping returns activities whose time range overlaps
	// [start, end), ordered by start time ascending. excludeID skips one
	// activity (used when editing it).
	FindOverlapping(ctx context.Context, start, end time.Time, excludeID string) ([]*ActivityView, error)
}

// LogActivityRequest contains parameters for logging an activity.
type LogActivityRequest struct {
	StartTime  time.Time
	EndTime    time.Time
	CategoryID string
	Notes      string   // optional
	TagIDs     []string // zero or more existing tag IDs
}

// LogActivityResponse contains the result of logging an activity.
type LogActivityResponse struct {
	ActivityID      string
	DurationMinutes int
}

// UpdateActivityRequest carries a partial activity update. Nil fields are
// left unchanged; an empty CategoryID leaves the category alone.
type UpdateActivityRequest struct {
	StartTime  *time.Time
	EndTime    *time.Time
	CategoryID string
	Notes      *string // non-nil empty string clears the notes
}

// ActivityFilters narrows activity listings. Zero times are unbounded.
type ActivityFilters struct {
	From  time.Time // inclusive, whole calendar day in its own zone
	To    time.Time // inclusive, whole calendar day in its own zone
	Limit int       // 0 means no limit
}

// ActivityView is an activities_view row at the port boundary.
type ActivityView struct {
	ID              string
	StartTime       time.Time
	EndTime         time.Time
	CategoryID      string
	CategoryName    string
	CategoryColor   string
	Notes           string
	DurationMinutes int
	Tags            string   // normalized, comma-separated, sorted; "" if none
	TagIDs          []string // populated by GetActivity only
	CreatedAt       string
	UpdatedAt       string
}
