package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates the database with development fixtures.
// Uses realistic IDs and data that exercises the views and reports.
func SeedFixtures(database *sql.DB) error {
	now := time.Now().UTC()

	// Categories
	categories := []struct{ id, name, color string }{
		{"CAT-001", "Work", "#3366FF"},
		{"CAT-002", "Exercise", "#33CC66"},
		{"CAT-003", "Reading", "#FF9933"},
	}
	for _, c := range categories {
		if _, err := database.Exec(
			"INSERT INTO categories (id, name, color, created_at) VALUES (?, ?, ?, ?)",
			c.id, c.name, c.color, now.Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
	}

	// Tags (names already normalized: lowercase, space-separated)
	tags := []struct{ id, categoryID, name string }{
		{"TAG-001", "CAT-001", "deep work"},
		{"TAG-002", "CAT-001", "meetings"},
		{"TAG-003", "CAT-001", "code review"},
		{"TAG-004", "CAT-002", "running"},
		{"TAG-005", "CAT-003", "fiction"},
	}
	for _, t := range tags {
		if _, err := database.Exec(
			"INSERT INTO tags (id, category_id, name, created_at) VALUES (?, ?, ?, ?)",
			t.id, t.categoryID, t.name, now.Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("seed tags: %w", err)
		}
	}

	// Activities spread across the last three days
	day := now.Truncate(24 * time.Hour)
	activities := []struct {
		id         string
		start, end time.Time
		categoryID string
		notes      string
	}{
		{"ACT-001", day.Add(-48*time.Hour + 9*time.Hour), day.Add(-48*time.Hour + 10*time.Hour + 30*time.Minute), "CAT-001", "sprint planning"},
		{"ACT-002", day.Add(-48*time.Hour + 11*time.Hour), day.Add(-48*time.Hour + 12*time.Hour), "CAT-002", ""},
		{"ACT-003", day.Add(-24*time.Hour + 9*time.Hour), day.Add(-24*time.Hour + 11*time.Hour), "CAT-001", "focus block"},
		{"ACT-004", day.Add(-24*time.Hour + 20*time.Hour), day.Add(-24*time.Hour + 21*time.Hour), "CAT-003", ""},
		{"ACT-005", day.Add(8 * time.Hour), day.Add(9 * time.Hour), "CAT-001", "standup and inbox"},
	}
	for _, a := range activities {
		var notes sql.NullString
		if a.notes != "" {
			notes = sql.NullString{String: a.notes, Valid: true}
		}
		if _, err := database.Exec(
			"INSERT INTO activities (id, start_time, end_time, category_id, notes, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			a.id, a.start.Format(time.RFC3339), a.end.Format(time.RFC3339), a.categoryID, notes,
			now.Format(time.RFC3339), now.Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("seed activities: %w", err)
		}
	}

	// Associations
	associations := []struct{ activityID, tagID string }{
		{"ACT-001", "TAG-002"},
		{"ACT-002", "TAG-004"},
		{"ACT-003", "TAG-001"},
		{"ACT-003", "TAG-003"},
		{"ACT-004", "TAG-005"},
	}
	for _, at := range associations {
		if _, err := database.Exec(
			"INSERT INTO activity_tags (activity_id, tag_id) VALUES (?, ?)",
			at.activityID, at.tagID,
		); err != nil {
			return fmt.Errorf("seed activity_tags: %w", err)
		}
	}

	return nil
}
