package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/tlog/internal/ports/primary"
	"github.com/example/tlog/internal/ports/secondary"
)

// ReportServiceImpl implements the ReportService interface. It is a thin
// mapping layer; the aggregation itself lives in the SQL views.
type ReportServiceImpl struct {
	reportRepo secondary.ReportRepository
}

// NewReportService creates a new ReportService with injected dependencies.
func NewReportService(reportRepo secondary.ReportRepository) *ReportServiceImpl {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
	}
}

// CategoryStats returns per-category totals over all activities.
func (s *ReportServiceImpl) CategoryStats(ctx context.Context) ([]*primary.CategoryStat, error) {
	records, err := s.reportRepo.CategoryStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get category stats: %w", err)
	}
	return s.recordsToCategoryStats(records), nil
}

// TagStats returns per-tag totals over all activities carrying the tag.
func (s *ReportServiceImpl) TagStats(ctx context.Context) ([]*primary.TagStat, error) {
	records, err := s.reportRepo.TagStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tag stats: %w", err)
	}
	return s.recordsToTagStats(records), nil
}

// DailyReport returns per-day totals for start dates in [from, to].
func (s *ReportServiceImpl) DailyReport(ctx context.Context, from, to time.Time) ([]*primary.DailyStat, error) {
	records, err := s.reportRepo.DailyReport(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily report: %w", err)
	}

	days := make([]*primary.DailyStat, len(records))
	for i, r := range records {
		days[i] = &primary.DailyStat{
			Day:           r.Day,
			ActivityCount: r.ActivityCount,
			TotalMinutes:  r.TotalMinutes,
		}
	}
	return days, nil
}

// CategoryReport returns per-category totals scoped to the date range.
func (s *ReportServiceImpl) CategoryReport(ctx context.Context, from, to time.Time) ([]*primary.CategoryStat, error) {
	records, err := s.reportRepo.CategoryReport(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get category report: %w", err)
	}
	return s.recordsToCategoryStats(records), nil
}

// TagReport returns per-tag totals scoped to the date range.
func (s *ReportServiceImpl) TagReport(ctx context.Context, from, to time.Time) ([]*primary.TagStat, error) {
	records, err := s.reportRepo.TagReport(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get tag report: %w", err)
	}
	return s.recordsToTagStats(records), nil
}

// Helper methods

func (s *ReportServiceImpl) recordsToCategoryStats(records []*secondary.CategoryStatRecord) []*primary.CategoryStat {
	stats := make([]*primary.CategoryStat, len(records))
	for i, r := range records {
		stats[i] = &primary.CategoryStat{
			CategoryID:    r.ID,
			Name:          r.Name,
			Color:         r.Color,
			ActivityCount: r.ActivityCount,
			TotalMinutes:  r.TotalMinutes,
		}
	}
	return stats
}

func (s *ReportServiceImpl) recordsToTagStats(records []*secondary.TagStatRecord) []*primary.TagStat {
	stats := make([]*primary.TagStat, len(records))
	for i, r := range records {
		stats[i] = &primary.TagStat{
			TagID:         r.ID,
			Name:          r.Name,
			CategoryID:    r.CategoryID,
			CategoryName:  r.CategoryName,
			CategoryColor: r.CategoryColor,
			ActivityCount: r.ActivityCount,
			TotalMinutes:  r.TotalMinutes,
		}
	}
	return stats
}

// Ensure ReportServiceImpl implements the interface.
var _ primary.ReportService = (*ReportServiceImpl)(nil)
