package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/tlog/internal/ports/secondary"
)

// ============================================================================
// ReportService Tests
// ============================================================================

func TestCategoryStats_MapsRecords(t *testing.T) {
	reportRepo := &mockReportRepository{
		categoryStats: []*secondary.CategoryStatRecord{
			{ID: "CAT-001", Name: "Work", Color: "#3366FF", ActivityCount: 2, TotalMinutes: 150},
			{ID: "CAT-002", Name: "Reading", ActivityCount: 0, TotalMinutes: 0},
		},
	}
	service := NewReportService(reportRepo)
	ctx := context.Background()

	stats, err := service.CategoryStats(ctx)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(stats))
	}
	if stats[0].CategoryID != "CAT-001" || stats[0].TotalMinutes != 150 {
		t.Errorf("first row = %+v, want CAT-001 / 150", stats[0])
	}
	if stats[1].ActivityCount != 0 {
		t.Errorf("expected zero-activity row preserved, got %+v", stats[1])
	}
}

func TestTagStats_MapsRecords(t *testing.T) {
	reportRepo := &mockReportRepository{
		tagStats: []*secondary.TagStatRecord{
			{ID: "TAG-001", Name: "deep work", CategoryID: "CAT-001", CategoryName: "Work", ActivityCount: 1, TotalMinutes: 90},
		},
	}
	service := NewReportService(reportRepo)
	ctx := context.Background()

	stats, err := service.TagStats(ctx)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(stats) != 1 || stats[0].TagID != "TAG-001" || stats[0].CategoryName != "Work" {
		t.Errorf("stats = %+v, want one TAG-001 row with category context", stats)
	}
}

func TestDailyReport_MapsRecords(t *testing.T) {
	reportRepo := &mockReportRepository{
		dailyStats: []*secondary.DailyStatRecord{
			{Day: "2024-03-15", ActivityCount: 2, TotalMinutes: 135},
		},
	}
	service := NewReportService(reportRepo)
	ctx := context.Background()

	days, err := service.DailyReport(ctx, time.Time{}, time.Time{})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(days) != 1 || days[0].Day != "2024-03-15" || days[0].TotalMinutes != 135 {
		t.Errorf("days = %+v, want one 2024-03-15 row", days)
	}
}

func TestReports_PropagateErrors(t *testing.T) {
	boom := errors.New("db gone")
	service := NewReportService(&mockReportRepository{statsErr: boom})
	ctx := context.Background()

	if _, err := service.CategoryStats(ctx); !errors.Is(err, boom) {
		t.Errorf("CategoryStats: expected wrapped error, got %v", err)
	}
	if _, err := service.TagReport(ctx, time.Time{}, time.Time{}); !errors.Is(err, boom) {
		t.Errorf("TagReport: expected wrapped error, got %v", err)
	}
}
