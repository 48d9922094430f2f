package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/example/tlog/internal/ports/primary"
	"github.com/example/tlog/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// The mocks classify failures the way the sqlite adapters do, so the
// services' errors.Is checks behave identically against either backend.

func mockNotFound(entity, id string) error {
	return fmt.Errorf("%w: %s %s", primary.ErrNotFound, entity, id)
}

// mockCategoryRepository implements secondary.CategoryRepository for testing.
type mockCategoryRepository struct {
	categories     map[string]*secondary.CategoryRecord
	activityCounts map[string]int
	nextID         int
	createErr      error
	listErr        error
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{
		categories:     make(map[string]*secondary.CategoryRecord),
		activityCounts: make(map[string]int),
	}
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *secondary.CategoryRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.categories {
		if strings.EqualFold(existing.Name, category.Name) {
			return fmt.Errorf("%w: category name %q taken", primary.ErrConflict, category.Name)
		}
	}
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id string) (*secondary.CategoryRecord, error) {
	if category, ok := m.categories[id]; ok {
		return category, nil
	}
	return nil, mockNotFound("category", id)
}

func (m *mockCategoryRepository) GetByName(ctx context.Context, name string) (*secondary.CategoryRecord, error) {
	for _, category := range m.categories {
		if strings.EqualFold(category.Name, name) {
			return category, nil
		}
	}
	return nil, mockNotFound("category", name)
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*secondary.CategoryRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.CategoryRecord
	for _, category := range m.categories {
		result = append(result, category)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockCategoryRepository) Rename(ctx context.Context, id, name string) error {
	category, ok := m.categories[id]
	if !ok {
		return mockNotFound("category", id)
	}
	category.Name = name
	return nil
}

func (m *mockCategoryRepository) SetColor(ctx context.Context, id, color string) error {
	category, ok := m.categories[id]
	if !ok {
		return mockNotFound("category", id)
	}
	category.Color = color
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.categories[id]; !ok {
		return mockNotFound("category", id)
	}
	delete(m.categories, id)
	return nil
}

func (m *mockCategoryRepository) GetNextID(ctx context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("CAT-%03d", m.nextID), nil
}

func (m *mockCategoryRepository) ActivityCount(ctx context.Context, id string) (int, error) {
	return m.activityCounts[id], nil
}

// mockTagRepository implements secondary.TagRepository for testing.
type mockTagRepository struct {
	tags      map[string]*secondary.TagRecord
	nextID    int
	createErr error
}

func newMockTagRepository() *mockTagRepository {
	return &mockTagRepository{
		tags: make(map[string]*secondary.TagRecord),
	}
}

func (m *mockTagRepository) Create(ctx context.Context, tag *secondary.TagRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.tags {
		if existing.CategoryID == tag.CategoryID && existing.Name == tag.Name {
			return fmt.Errorf("%w: tag name %q taken", primary.ErrConflict, tag.Name)
		}
	}
	m.tags[tag.ID] = tag
	return nil
}

func (m *mockTagRepository) GetByID(ctx context.Context, id string) (*secondary.TagRecord, error) {
	if tag, ok := m.tags[id]; ok {
		return tag, nil
	}
	return nil, mockNotFound("tag", id)
}

func (m *mockTagRepository) GetByName(ctx context.Context, categoryID, name string) (*secondary.TagRecord, error) {
	for _, tag := range m.tags {
		if tag.CategoryID == categoryID && tag.Name == name {
			return tag, nil
		}
	}
	return nil, mockNotFound("tag", name)
}

func (m *mockTagRepository) List(ctx context.Context, filters secondary.TagFilters) ([]*secondary.TagRecord, error) {
	var result []*secondary.TagRecord
	for _, tag := range m.tags {
		if filters.CategoryID != "" && tag.CategoryID != filters.CategoryID {
			continue
		}
		result = append(result, tag)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockTagRepository) Rename(ctx context.Context, id, name string) error {
	tag, ok := m.tags[id]
	if !ok {
		return mockNotFound("tag", id)
	}
	tag.Name = name
	return nil
}

func (m *mockTagRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.tags[id]; !ok {
		return mockNotFound("tag", id)
	}
	delete(m.tags, id)
	return nil
}

func (m *mockTagRepository) GetNextID(ctx context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("TAG-%03d", m.nextID), nil
}

// mockActivityRepository implements secondary.ActivityRepository for testing.
type mockActivityRepository struct {
	activities   map[string]*secondary.ActivityRecord
	associations map[string][]string // activityID -> tagIDs
	nextID       int
	createErr    error
	updateErr    error
}

func newMockActivityRepository() *mockActivityRepository {
	return &mockActivityRepository{
		activities:   make(map[string]*secondary.ActivityRecord),
		associations: make(map[string][]string),
	}
}

func (m *mockActivityRepository) Create(ctx context.Context, activity *secondary.ActivityRecord, tagIDs []string) error {
	if m.createErr != nil {
		return m.createErr
	}
	now := time.Now().UTC()
	activity.CreatedAt = now
	activity.UpdatedAt = now
	m.activities[activity.ID] = activity
	m.associations[activity.ID] = append([]string(nil), tagIDs...)
	return nil
}

func (m *mockActivityRepository) GetByID(ctx context.Context, id string) (*secondary.ActivityRecord, error) {
	if activity, ok := m.activities[id]; ok {
		copied := *activity
		return &copied, nil
	}
	return nil, mockNotFound("activity", id)
}

func (m *mockActivityRepository) GetView(ctx context.Context, id string) (*secondary.ActivityViewRecord, error) {
	activity, ok := m.activities[id]
	if !ok {
		return nil, mockNotFound("activity", id)
	}
	return m.toView(activity), nil
}

func (m *mockActivityRepository) GetTagIDs(ctx context.Context, id string) ([]string, error) {
	return m.associations[id], nil
}

func (m *mockActivityRepository) List(ctx context.Context, filters secondary.ActivityFilters) ([]*secondary.ActivityViewRecord, error) {
	var result []*secondary.ActivityViewRecord
	for _, activity := range m.activities {
		result = append(result, m.toView(activity))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime.After(result[j].StartTime) })
	if filters.Limit > 0 && len(result) > filters.Limit {
		result = result[:filters.Limit]
	}
	return result, nil
}

func (m *mockActivityRepository) Update(ctx context.Context, activity *secondary.ActivityRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.activities[activity.ID]; !ok {
		return mockNotFound("activity", activity.ID)
	}
	copied := *activity
	copied.UpdatedAt = time.Now().UTC()
	m.activities[activity.ID] = &copied
	return nil
}

func (m *mockActivityRepository) ReplaceTags(ctx context.Context, id string, tagIDs []string) error {
	m.associations[id] = append([]string(nil), tagIDs...)
	return nil
}

func (m *mockActivityRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.activities[id]; !ok {
		return mockNotFound("activity", id)
	}
	delete(m.activities, id)
	delete(m.associations, id)
	return nil
}

func (m *mockActivityRepository) FindOverlapping(ctx context.Context, start, end time.Time, excludeID string) ([]*secondary.ActivityViewRecord, error) {
	var result []*secondary.ActivityViewRecord
	for _, activity := range m.activities {
		if activity.ID == excludeID {
			continue
		}
		if activity.StartTime.Before(end) && activity.EndTime.After(start) {
			result = append(result, m.toView(activity))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime.Before(result[j].StartTime) })
	return result, nil
}

func (m *mockActivityRepository) GetNextID(ctx context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("ACT-%03d", m.nextID), nil
}

func (m *mockActivityRepository) toView(activity *secondary.ActivityRecord) *secondary.ActivityViewRecord {
	return &secondary.ActivityViewRecord{
		ID:              activity.ID,
		StartTime:       activity.StartTime,
		EndTime:         activity.EndTime,
		CategoryID:      activity.CategoryID,
		Notes:           activity.Notes,
		DurationMinutes: int(activity.EndTime.Sub(activity.StartTime).Minutes()),
		CreatedAt:       activity.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       activity.UpdatedAt.Format(time.RFC3339),
	}
}

// mockReportRepository implements secondary.ReportRepository for testing.
type mockReportRepository struct {
	categoryStats []*secondary.CategoryStatRecord
	tagStats      []*secondary.TagStatRecord
	dailyStats    []*secondary.DailyStatRecord
	statsErr      error
}

func (m *mockReportRepository) CategoryStats(ctx context.Context) ([]*secondary.CategoryStatRecord, error) {
	if m.statsErr != nil {
		return nil, m.statsErr
	}
	return m.categoryStats, nil
}

func (m *mockReportRepository) TagStats(ctx context.Context) ([]*secondary.TagStatRecord, error) {
	if m.statsErr != nil {
		return nil, m.statsErr
	}
	return m.tagStats, nil
}

func (m *mockReportRepository) DailyReport(ctx context.Context, from, to time.Time) ([]*secondary.DailyStatRecord, error) {
	if m.statsErr != nil {
		return nil, m.statsErr
	}
	return m.dailyStats, nil
}

func (m *mockReportRepository) CategoryReport(ctx context.Context, from, to time.Time) ([]*secondary.CategoryStatRecord, error) {
	return m.CategoryStats(ctx)
}

func (m *mockReportRepository) TagReport(ctx context.Context, from, to time.Time) ([]*secondary.TagStatRecord, error) {
	return m.TagStats(ctx)
}

// Interface checks keep the mocks honest.
var (
	_ secondary.CategoryRepository = (*mockCategoryRepository)(nil)
	_ secondary.TagRepository      = (*mockTagRepository)(nil)
	_ secondary.ActivityRepository = (*mockActivityRepository)(nil)
	_ secondary.ReportRepository   = (*mockReportRepository)(nil)
)
