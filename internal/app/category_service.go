// Package app implements the application services behind the primary
// ports. Services validate with the core guards before every write; the
// schema constraints back them up underneath.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/tlog/internal/core/category"
	"github.com/example/tlog/internal/ports/primary"
	"github.com/example/tlog/internal/ports/secondary"
)

// CategoryServiceImpl implements the CategoryService interface.
type CategoryServiceImpl struct {
	categoryRepo secondary.CategoryRepository
}

// NewCategoryService creates a new CategoryService with injected dependencies.
func NewCategoryService(categoryRepo secondary.CategoryRepository) *CategoryServiceImpl {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
	}
}

// CreateCategory creates a new category.
func (s *CategoryServiceImpl) CreateCategory(ctx context.Context, req primary.CreateCategoryRequest) (*primary.CreateCategoryResponse, error) {
	name := category.CleanName(req.Name)
	if result := category.ValidateName(name); !result.Allowed {
		return nil, fmt.Errorf("%w: %s", primary.ErrValidation, result.Reason)
	}
	if result := category.ValidateColor(req.Color); !result.Allowed {
		return nil, fmt.Errorf("%w: %s", primary.ErrValidation, result.Reason)
	}

	nextID, err := s.categoryRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate category ID: %w", err)
	}

	record := &secondary.CategoryRecord{
		ID:    nextID,
		Name:  name,
		Color: req.Color,
	}

	if err := s.categoryRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	created, err := s.categoryRepo.GetByID(ctx, nextID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created category: %w", err)
	}

	return &primary.CreateCategoryResponse{
		CategoryID: created.ID,
		Category:   s.recordToCategory(created),
	}, nil
}

// GetCategory retrieves a category by ID.
func (s *CategoryServiceImpl) GetCategory(ctx context.Context, categoryID string) (*primary.Category, error) {
	record, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return s.recordToCategory(record), nil
}

// GetCategoryByName retrieves a category by name (case-insensitive).
func (s *CategoryServiceImpl) GetCategoryByName(ctx context.Context, name string) (*primary.Category, error) {
	record, err := s.categoryRepo.GetByName(ctx, category.CleanName(name))
	if err != nil {
		return nil, err
	}
	return s.recordToCategory(record), nil
}

// GetOrCreateCategory returns the existing category with the given name
// or creates it. The bool reports whether a new category was created.
func (s *CategoryServiceImpl) GetOrCreateCategory(ctx context.Context, req primary.CreateCategoryRequest) (*primary.Category, bool, error) {
	existing, err := s.GetCategoryByName(ctx, req.Name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, primary.ErrNotFound) {
		return nil, false, err
	}

	resp, err := s.CreateCategory(ctx, req)
	if err != nil {
		return nil, false, err
	}
	return resp.Category, true, nil
}

// ListCategories retrieves all categories ordered by name.
func (s *CategoryServiceImpl) ListCategories(ctx context.Context) ([]*primary.Category, error) {
	records, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*primary.Category, len(records))
	for i, r := range records {
		categories[i] = s.recordToCategory(r)
	}
	return categories, nil
}

// RenameCategory changes a category's name.
func (s *CategoryServiceImpl) RenameCategory(ctx context.Context, categoryID, newName string) error {
	name := category.CleanName(newName)
	if result := category.ValidateName(name); !result.Allowed {
		return fmt.Errorf("%w: %s", primary.ErrValidation, result.Reason)
	}

	return s.categoryRepo.Rename(ctx, categoryID, name)
}

// SetCategoryColor changes a category's color. Empty clears it.
func (s *CategoryServiceImpl) SetCategoryColor(ctx context.Context, categoryID, color string) error {
	if result := category.ValidateColor(color); !result.Allowed {
		return fmt.Errorf("%w: %s", primary.ErrValidation, result.Reason)
	}

	return s.categoryRepo.SetColor(ctx, categoryID, color)
}

// DeleteCategory deletes a category and cascades to its tags. The delete
// is refused while any activity still references the category.
func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, categoryID string) error {
	count, err := s.categoryRepo.ActivityCount(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to count activities: %w", err)
	}

	guard := category.CanDelete(category.DeleteContext{
		CategoryID:    categoryID,
		ActivityCount: count,
	})
	if !guard.Allowed {
		return fmt.Errorf("%w: %s", primary.ErrConflict, guard.Reason)
	}

	return s.categoryRepo.Delete(ctx, categoryID)
}

// Helper methods

func (s *CategoryServiceImpl) recordToCategory(r *secondary.CategoryRecord) *primary.Category {
	return &primary.Category{
		ID:        r.ID,
		Name:      r.Name,
		Color:     r.Color,
		CreatedAt: r.CreatedAt,
	}
}

// Ensure CategoryServiceImpl implements the interface.
var _ primary.CategoryService = (*CategoryServiceImpl)(nil)
