package primary

import "context"

// CategoryService defines the primary port for category operations.
type CategoryService interface {
	// CreateCategory creates a new category.
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CreateCategoryResponse, error)

	// GetCategory retrieves a category by ID.
	GetCategory(ctx context.Context, categoryID string) (*Category, error)

	// GetCategoryByName retrieves a category by name (case-insensitive).
	GetCategoryByName(ctx context.Context, name string) (*Category, error)

	// GetOrCreateCategory returns the existing category with the given
	// name or creates it.
	GetOrCreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, bool, error)

	// ListCategories retrieves all categories ordered by name.
	ListCategories(ctx context.Context) ([]*Category, error)

	// RenameCategory changes a category's name.
	RenameCategory(ctx context.Context, categoryID, newName string) error

	// SetCategoryColor changes a category's color. Empty clears it.
	SetCategoryColor(ctx context.Context, categoryID, color string) error

	// DeleteCategory deletes a category and cascades to its tags.
	// Fails while any activity still references the category.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CreateCategoryRequest contains parameters for creating a category.
type CreateCategoryRequest struct {
	Name  string
	Color string // optional, #RRGGBB
}

// CreateCategoryResponse contains the result of creating a category.
type CreateCategoryResponse struct {
	CategoryID string
	Category   *Category
}

// Category represents a category entity at the port boundary.
type Category struct {
	ID        string
	Name      string
	Color     string
	CreatedAt string
}
