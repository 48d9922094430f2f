package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/tlog/internal/adapters/sqlite"
	"github.com/example/tlog/internal/ports/primary"
	"github.com/example/tlog/internal/ports/secondary"
)

func TestActivityRepository_CreateAndGetView(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewActivityRepository(db)

	seedCategory(t, db, "CAT-001", "Work", "#3366FF")
	seedTag(t, db, "TAG-001", "CAT-001", "deep work")

	start := mustTime(t, "2024-01-01T09:00:00Z")
	end := mustTime(t, "2024-01-01T10:30:00Z")

	err := repo.Create(ctx, &secondary.ActivityRecord{
		ID:         "ACT-001",
		StartTime:  start,
		EndTime:    end,
		CategoryID: "CAT-001",
		Notes:      "sprint planning",
	}, []string{"TAG-001"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	view, err := repo.GetView(ctx, "ACT-001")
	if err != nil {
		t.Fatalf("GetView failed: %v", err)
	}
	if view.DurationMinutes != 90 {
		t.Errorf("DurationMinutes = %d, want 90", view.DurationMinutes)
	}
	if view.Tags != "deep work" {
		t.Errorf("Tags = %q, want deep work", view.Tags)
	}
	if view.CategoryName != "Work" || view.CategoryColor != "#3366FF" {
		t.Errorf("category context = %q/%q, want Work/#3366FF", view.CategoryName, view.CategoryColor)
	}
	if view.Notes != "sprint planning" {
		t.Errorf("Notes = %q, want sprint planning", view.Notes)
	}
	if !view.StartTime.Equal(start) || !view.EndTime.Equal(end) {
		t.Errorf("times = %v/%v, want %v/%v", view.StartTime, view.EndTime, start, end)
	}
}

func TestActivityRepository_ViewTagsSortedAndEmpty(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewActivityRepository(db)

	seedCategory(t, db, "CAT-001", "Work", "")
	seedTag(t, db, "TAG-001", "CAT-001", "meetings")
	seedTag(t, db, "TAG-002", "CAT-001", "deep work")
	seedTag(t, db, "TAG-003", "CAT-001", "code review")

	start := mustTime(t, "2024-01-01T09:00:00Z")
	seedActivity(t, db, "ACT-001", "CAT-001", start, start.Add(time.Hour))
	seedAssociation(t, db, "ACT-001", "TAG-001")
	seedAssociation(t, db, "ACT-001", "TAG-002")
	seedAssociation(t, db, "ACT-001", "TAG-003")
	seedActivity(t, db, "ACT-002", "CAT-001", start.Add(2*time.Hour), start.Add(3*time.Hour))

	tagged, err := repo.GetView(ctx, "ACT-001")
	if err != nil {
		t.Fatalf("GetView failed: %v", err)
	}
	if tagged.Tags != "code review, deep work, meetings" {
		t.Errorf("Tags = %q, want alphabetical list", tagged.Tags)
	}

	untagged, err := repo.GetView(ctx, "ACT-002")
	if err != nil {
		t.Fatalf("GetView failed: %v", err)
	}
	if untagged.Tags != "" {
		t.Errorf("Tags = %q, want empty string for untagged activity", untagged.Tags)
	}
}

func TestActivityRepository_InvalidRange_RejectedBySchema(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewActivityRepository(db)

	seedCategory(t, db, "CAT-001", "Work", "")

	start := mustTime(t, "2024-01-01T09:00:00Z")
	err := repo.Create(ctx, &secondary.ActivityRecord{
		ID:         "ACT-001",
		StartTime:  start,
		EndTime:    start, // equal times violate the CHECK
		CategoryID: "CAT-001",
	}, nil)
	if !errors.Is(err, primary.ErrValidation) {
		t.Errorf("expected ErrValidation for equal start/end, got %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM activities").Scan(&count); err != nil {
		t.Fatalf("count activities: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no row persisted, found %d", count)
	}
}

func TestActivityRepository_Create_BadTagRollsBack(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewActivityRepository(db)

	seedCategory(t, db, "CAT-001", "Work", "")

	start := mustTime(t, "2024-01-01T09:00:00Z")
	err := repo.Create(ctx, &secondary.ActivityRecord{
		ID:         "ACT-001",
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		CategoryID: "CAT-001",
	}, []string{"TAG-999"})
	if err == nil {
		t.Fatal("expected error for missing tag")
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM activities").Scan(&count); err != nil {
		t.Fatalf("count activities: %v", err)
	}
	if count != 0 {
		t.Errorf("expected transaction rollback, found %d activities", count)
	}
}

func TestActivityRepository_List_OrderFilterLimit(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewActivityRepository(db)

	seedCategory(t, db, "CAT-001", "Work", "")

	day1 := mustTime(t, "2024-01-01T09:00:00Z")
	day2 := mustTime(t, "2024-01-02T09:00:00Z")
	day3 := mustTime(t, "2024-01-03T09:00:00Z")
	seedActivity(t, db, "ACT-001", "CAT-001", day1, day1.Add(time.Hour))
	seedActivity(t, db, "ACT-002", "CAT-001", day2, day2.Add(time.Hour))
	seedActivity(t, db, "ACT-003", "CAT-001", day3, day3.Add(time.Hour))

	all, err := repo.List(ctx, secondary.ActivityFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d activities, want 3", len(all))
	}
	if all[0].ID != "ACT-003" || all[2].ID != "ACT-001" {
		t.Errorf("expected start_time descending, got [%s %s %s]", all[0].ID, all[1].ID, all[2].ID)
	}

	ranged, err := repo.List(ctx, secondary.ActivityFilters{From: day1, To: day2})
	if err != nil {
		t.Fatalf("List ranged failed: %v", err)
	}
	if len(ranged) != 2 {
		t.Fatalf("got %d ranged activities, want 2", len(ranged))
	}

	limited, err := repo.List(ctx, secondary.ActivityFilters{Limit: 1})
	if err != nil {
		t.Fatalf("List limited failed: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != "ACT-003" {
		t.Errorf("expected most recent activity only, got %v", limited)
	}
}

func TestActivityRepository_List_LocalDayBounds(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewActivityRepository(db)

	seedCategory(t, db, "CAT-001", "Work", "")

	// A morning activity in UTC+2 is stored as 2024-03-15T07:00:00Z,
	// the previous UTC date relative to the caller's midnight bound.
	zone := time.FixedZone("UTC+2", 2*60*60)
	morning := time.Date(2024, 3, 15, 9, 0, 0, 0, zone)
	seedActivity(t, db, "ACT-001", "CAT-001", morning, morning.Add(time.Hour))

	// 1am local on the 16th lands on the 15th in UTC; it belongs to the
	// next local day and must stay out of the range.
	late := time.Date(2024, 3, 16, 1, 0, 0, 0, zone)
	seedActivity(t, db, "ACT-002", "CAT-001", late, late.Add(time.Hour))

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, zone)
	got, err := repo.List(ctx, secondary.ActivityFilters{From: day, To: day})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d activities for the local day, want 1", len(got))
	}
	if got[0].ID != "ACT-001" {
		t.Errorf("got %s, want ACT-001", got[0].ID)
	}
}

func TestActivityRepository_FindOverlapping(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewActivityRepository(db)

	seedCategory(t, db, "CAT-001", "Work", "")

	nine := mustTime(t, "2024-01-01T09:00:00Z")
	seedActivity(t, db, "ACT-001", "CAT-001", nine, nine.Add(time.Hour))

	overlapping, err := repo.FindOverlapping(ctx, nine.Add(30*time.Minute), nine.Add(90*time.Minute), "")
	if err != nil {
		t.Fatalf("FindOverlapping failed: %v", err)
	}
	if len(overlapping) != 1 || overlapping[0].ID != "ACT-001" {
		t.Errorf("expected ACT-001 to overlap, got %v", overlapping)
	}

	// Back-to-back is not an overlap.
	backToBack, err := repo.FindOverlapping(ctx, nine.Add(time.Hour), nine.Add(2*time.Hour), "")
	if err != nil {
		t.Fatalf("FindOverlapping failed: %v", err)
	}
	if len(backToBack) != 0 {
		t.Errorf("expected no overlap for back-to-back range, got %v", backToBack)
	}

	// Excluding the activity itself (edit case).
	excluded, err := repo.FindOverlapping(ctx, nine, nine.Add(time.Hour), "ACT-001")
	if err != nil {
		t.Fatalf("FindOverlapping failed: %v", err)
	}
	if len(excluded) != 0 {
		t.Errorf("expected exclusion to skip ACT-001, got %v", excluded)
	}
}

func TestActivityRepository_UpdateTouchesUpdatedAt(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewActivityRepository(db)

	seedCategory(t, db, "CAT-001", "Work", "")

	// Insert with a stale updated_at so the touch is observable.
	stale := "2020-01-01T00:00:00Z"
	_, err := db.Exec(
		"INSERT INTO activities (id, start_time, end_time, category_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		"ACT-001", "2024-01-01T09:00:00Z", "2024-01-01T10:00:00Z", "CAT-001", stale, stale,
	)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	record, err := repo.GetByID(ctx, "ACT-001")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}

	record.Notes = "corrected"
	if err := repo.Update(ctx, record); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	after, err := repo.GetByID(ctx, "ACT-001")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !after.UpdatedAt.After(after.CreatedAt) {
		t.Errorf("expected updated_at (%v) to advance past created_at (%v)", after.UpdatedAt, after.CreatedAt)
	}
	if after.Notes != "corrected" {
		t.Errorf("Notes = %q, want corrected", after.Notes)
	}
}

func TestActivityRepository_TriggerTouchesUpdatedAt(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewActivityRepository(db)

	seedCategory(t, db, "CAT-001", "Work", "")

	stale := "2020-01-01T00:00:00Z"
	_, err := db.Exec(
		"INSERT INTO activities (id, start_time, end_time, category_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		"ACT-001", "2024-01-01T09:00:00Z", "2024-01-01T10:00:00Z", "CAT-001", stale, stale,
	)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	// A raw UPDATE that bypasses the repository still gets touched by the
	// schema trigger.
	if _, err := db.Exec("UPDATE activities SET notes = 'raw write' WHERE id = 'ACT-001'"); err != nil {
		t.Fatalf("raw update: %v", err)
	}

	after, err := repo.GetByID(ctx, "ACT-001")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !after.UpdatedAt.After(after.CreatedAt) {
		t.Errorf("expected trigger to touch updated_at, still %v", after.UpdatedAt)
	}
}

func TestActivityRepository_ReplaceTags(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewActivityRepository(db)

	seedCategory(t, db, "CAT-001", "Work", "")
	seedTag(t, db, "TAG-001", "CAT-001", "deep work")
	seedTag(t, db, "TAG-002", "CAT-001", "meetings")

	start := mustTime(t, "2024-01-01T09:00:00Z")
	seedActivity(t, db, "ACT-001", "CAT-001", start, start.Add(time.Hour))
	seedAssociation(t, db, "ACT-001", "TAG-001")

	if err := repo.ReplaceTags(ctx, "ACT-001", []string{"TAG-002"}); err != nil {
		t.Fatalf("ReplaceTags failed: %v", err)
	}

	tagIDs, err := repo.GetTagIDs(ctx, "ACT-001")
	if err != nil {
		t.Fatalf("GetTagIDs failed: %v", err)
	}
	if len(tagIDs) != 1 || tagIDs[0] != "TAG-002" {
		t.Errorf("tagIDs = %v, want [TAG-002]", tagIDs)
	}

	// Clearing to the empty set works too.
	if err := repo.ReplaceTags(ctx, "ACT-001", nil); err != nil {
		t.Fatalf("ReplaceTags (clear) failed: %v", err)
	}
	tagIDs, err = repo.GetTagIDs(ctx, "ACT-001")
	if err != nil {
		t.Fatalf("GetTagIDs failed: %v", err)
	}
	if len(tagIDs) != 0 {
		t.Errorf("tagIDs = %v, want empty", tagIDs)
	}
}

func TestActivityRepository_DeleteCascadesAssociationsOnly(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewActivityRepository(db)

	seedCategory(t, db, "CAT-001", "Work", "")
	seedTag(t, db, "TAG-001", "CAT-001", "deep work")
	start := mustTime(t, "2024-01-01T09:00:00Z")
	seedActivity(t, db, "ACT-001", "CAT-001", start, start.Add(time.Hour))
	seedAssociation(t, db, "ACT-001", "TAG-001")

	if err := repo.Delete(ctx, "ACT-001"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var associations, tags int
	if err := db.QueryRow("SELECT COUNT(*) FROM activity_tags").Scan(&associations); err != nil {
		t.Fatalf("count associations: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM tags").Scan(&tags); err != nil {
		t.Fatalf("count tags: %v", err)
	}
	if associations != 0 {
		t.Errorf("expected associations to cascade away, %d remain", associations)
	}
	if tags != 1 {
		t.Errorf("expected the tag to survive, found %d", tags)
	}
}

func TestActivityRepository_GetNextID(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewActivityRepository(db)

	seedCategory(t, db, "CAT-001", "Work", "")
	start := mustTime(t, "2024-01-01T09:00:00Z")
	seedActivity(t, db, "ACT-009", "CAT-001", start, start.Add(time.Hour))

	id, err := repo.GetNextID(ctx)
	if err != nil {
		t.Fatalf("GetNextID failed: %v", err)
	}
	if id != "ACT-010" {
		t.Errorf("next ID = %q, want ACT-010", id)
	}
}
