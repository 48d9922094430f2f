package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/tlog/internal/core/activity"
	"github.com/example/tlog/internal/ports/primary"
	"github.com/example/tlog/internal/ports/secondary"
)

// ActivityServiceImpl implements the ActivityService interface.
type ActivityServiceImpl struct {
	activityRepo secondary.ActivityRepository
	categoryRepo secondary.CategoryRepository
	tagRepo      secondary.TagRepository
}

// NewActivityService creates a new ActivityService with injected dependencies.
func NewActivityService(activityRepo secondary.ActivityRepository, categoryRepo secondary.CategoryRepository, tagRepo secondary.TagRepository) *ActivityServiceImpl {
	return &ActivityServiceImpl{
		activityRepo: activityRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

// LogActivity records a new activity with its tag associations.
func (s *ActivityServiceImpl) LogActivity(ctx context.Context, req primary.LogActivityRequest) (*primary.LogActivityResponse, error) {
	if result := activity.ValidateTimeRange(req.StartTime, req.EndTime); !result.Allowed {
		return nil, fmt.Errorf("%w: %s", primary.ErrValidation, result.Reason)
	}

	// Missing references fail before anything is written.
	if _, err := s.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	for _, tagID := range req.TagIDs {
		if _, err := s.tagRepo.GetByID(ctx, tagID); err != nil {
			return nil, err
		}
	}

	nextID, err := s.activityRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate activity ID: %w", err)
	}

	record := &secondary.ActivityRecord{
		ID:         nextID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		CategoryID: req.CategoryID,
		Notes:      req.Notes,
	}

	if err := s.activityRepo.Create(ctx, record, req.TagIDs); err != nil {
		return nil, fmt.Errorf("failed to log activity: %w", err)
	}

	return &primary.LogActivityResponse{
		ActivityID:      nextID,
		DurationMinutes: activity.DurationMinutes(req.StartTime, req.EndTime),
	}, nil
}

// GetActivity retrieves one activity with category context, computed
// duration and associated tags.
func (s *ActivityServiceImpl) GetActivity(ctx context.Context, activityID string) (*primary.ActivityView, error) {
	record, err := s.activityRepo.GetView(ctx, activityID)
	if err != nil {
		return nil, err
	}

	view := s.recordToView(record)
	view.TagIDs, err = s.activityRepo.GetTagIDs(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity tags: %w", err)
	}

	return view, nil
}

// UpdateActivity applies a partial update. Unset fields keep their
// stored values; any time change is re-validated against the merged
// range before writing.
func (s *ActivityServiceImpl) UpdateActivity(ctx context.Context, activityID string, req primary.UpdateActivityRequest) error {
	record, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return err
	}

	if req.StartTime != nil {
		record.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		record.EndTime = *req.EndTime
	}
	if req.CategoryID != "" {
		if _, err := s.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
			return err
		}
		record.CategoryID = req.CategoryID
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}

	if result := activity.ValidateTimeRange(record.StartTime, record.EndTime); !result.Allowed {
		return fmt.Errorf("%w: %s", primary.ErrValidation, result.Reason)
	}

	return s.activityRepo.Update(ctx, record)
}

// ReplaceActivityTags replaces the activity's tag set atomically.
func (s *ActivityServiceImpl) ReplaceActivityTags(ctx context.Context, activityID string, tagIDs []string) error {
	if _, err := s.activityRepo.GetByID(ctx, activityID); err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		if _, err := s.tagRepo.GetByID(ctx, tagID); err != nil {
			return err
		}
	}

	return s.activityRepo.ReplaceTags(ctx, activityID, tagIDs)
}

// DeleteActivity deletes an activity and cascades to its tag associations.
func (s *ActivityServiceImpl) DeleteActivity(ctx context.Context, activityID string) error {
	return s.activityRepo.Delete(ctx, activityID)
}

// ListActivities retrieves activity views ordered by start time descending.
func (s *ActivityServiceImpl) ListActivities(ctx context.Context, filters primary.ActivityFilters) ([]*primary.ActivityView, error) {
	records, err := s.activityRepo.List(ctx, secondary.ActivityFilters{
		From:  filters.From,
		To:    filters.To,
		Limit: filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	return s.recordsToViews(records), nil
}

// FindOverlapping returns activities whose time range overlaps [start, end).
func (s *ActivityServiceImpl) FindOverlapping(ctx context.Context, start, end time.Time, excludeID string) ([]*primary.ActivityView, error) {
	records, err := s.activityRepo.FindOverlapping(ctx, start, end, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find overlapping activities: %w", err)
	}

	return s.recordsToViews(records), nil
}

// Helper methods

func (s *ActivityServiceImpl) recordToView(r *secondary.ActivityViewRecord) *primary.ActivityView {
	return &primary.ActivityView{
		ID:              r.ID,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		CategoryID:      r.CategoryID,
		CategoryName:    r.CategoryName,
		CategoryColor:   r.CategoryColor,
		Notes:           r.Notes,
		DurationMinutes: r.DurationMinutes,
		Tags:            r.Tags,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (s *ActivityServiceImpl) recordsToViews(records []*secondary.ActivityViewRecord) []*primary.ActivityView {
	views := make([]*primary.ActivityView, len(records))
	for i, r := range records {
		views[i] = s.recordToView(r)
	}
	return views
}

// Ensure ActivityServiceImpl implements the interface.
var _ primary.ActivityService = (*ActivityServiceImpl)(nil)
