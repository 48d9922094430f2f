package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/tlog/internal/core/tag"
	"github.com/example/tlog/internal/ports/primary"
	"github.com/example/tlog/internal/ports/secondary"
)

// TagServiceImpl implements the TagService interface. Names are
// normalized on the way in, so every spelling of a tag addresses the
// same stored row.
type TagServiceImpl struct {
	tagRepo      secondary.TagRepository
	categoryRepo secondary.CategoryRepository
}

// NewTagService creates a new TagService with injected dependencies.
func NewTagService(tagRepo secondary.TagRepository, categoryRepo secondary.CategoryRepository) *TagServiceImpl {
	return &TagServiceImpl{
		tagRepo:      tagRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateTag creates a new tag under a category.
func (s *TagServiceImpl) CreateTag(ctx context.Context, req primary.CreateTagRequest) (*primary.CreateTagResponse, error) {
	name := tag.Normalize(req.Name)
	if result := tag.ValidateName(name); !result.Allowed {
		return nil, fmt.Errorf("%w: %s", primary.ErrValidation, result.Reason)
	}

	// A missing category is a not-found, not a constraint conflict.
	if _, err := s.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	nextID, err := s.tagRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tag ID: %w", err)
	}

	record := &secondary.TagRecord{
		ID:         nextID,
		CategoryID: req.CategoryID,
		Name:       name,
	}

	if err := s.tagRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	created, err := s.tagRepo.GetByID(ctx, nextID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created tag: %w", err)
	}

	return &primary.CreateTagResponse{
		TagID: created.ID,
		Tag:   s.recordToTag(created),
	}, nil
}

// GetTag retrieves a tag by ID.
func (s *TagServiceImpl) GetTag(ctx context.Context, tagID string) (*primary.Tag, error) {
	record, err := s.tagRepo.GetByID(ctx, tagID)
	if err != nil {
		return nil, err
	}
	return s.recordToTag(record), nil
}

// GetOrCreateTag returns the existing tag with the given normalized name
// under the category or creates it. The bool reports whether a new tag
// was created.
func (s *TagServiceImpl) GetOrCreateTag(ctx context.Context, req primary.CreateTagRequest) (*primary.Tag, bool, error) {
	name := tag.Normalize(req.Name)
	if result := tag.ValidateName(name); !result.Allowed {
		return nil, false, fmt.Errorf("%w: %s", primary.ErrValidation, result.Reason)
	}

	existing, err := s.tagRepo.GetByName(ctx, req.CategoryID, name)
	if err == nil {
		return s.recordToTag(existing), false, nil
	}
	if !errors.Is(err, primary.ErrNotFound) {
		return nil, false, err
	}

	resp, err := s.CreateTag(ctx, req)
	if err != nil {
		return nil, false, err
	}
	return resp.Tag, true, nil
}

// ListTags retrieves tags, optionally scoped to one category, ordered by
// category name then tag name.
func (s *TagServiceImpl) ListTags(ctx context.Context, filters primary.TagFilters) ([]*primary.Tag, error) {
	records, err := s.tagRepo.List(ctx, secondary.TagFilters{CategoryID: filters.CategoryID})
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	tags := make([]*primary.Tag, len(records))
	for i, r := range records {
		tags[i] = s.recordToTag(r)
	}
	return tags, nil
}

// RenameTag changes a tag's name. The new name is normalized first.
func (s *TagServiceImpl) RenameTag(ctx context.Context, tagID, newName string) error {
	name := tag.Normalize(newName)
	if result := tag.ValidateName(name); !result.Allowed {
		return fmt.Errorf("%w: %s", primary.ErrValidation, result.Reason)
	}

	return s.tagRepo.Rename(ctx, tagID, name)
}

// DeleteTag deletes a tag and cascades to its activity associations.
func (s *TagServiceImpl) DeleteTag(ctx context.Context, tagID string) error {
	return s.tagRepo.Delete(ctx, tagID)
}

// Helper methods

func (s *TagServiceImpl) recordToTag(r *secondary.TagRecord) *primary.Tag {
	return &primary.Tag{
		ID:           r.ID,
		CategoryID:   r.CategoryID,
		CategoryName: r.CategoryName,
		Name:         r.Name,
		CreatedAt:    r.CreatedAt,
	}
}

// Ensure TagServiceImpl implements the interface.
var _ primary.TagService = (*TagServiceImpl)(nil)
