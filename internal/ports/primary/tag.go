package primary

import "context"

// TagService defines the primary port for tag operations.
//
// Every name passing through this interface is normalized first (trim,
// lowercase, separator runs collapsed to a single space), so "Deep-Work",
// "deep_work" and " Deep Work " all address the same stored tag.
type TagService interface {
	// CreateTag creates a new tag under a category.
	CreateTag(ctx context.Context, req CreateTagRequest) (*CreateTagResponse, error)

	// GetTag retrieves a tag by ID.
	GetTag(ctx context.Context, tagID string) (*Tag, error)

	// GetOrCreateTag returns the existing tag with the given normalized
	// name under the category or creates it.
	GetOrCreateTag(ctx context.Context, req CreateTagRequest) (*Tag, bool, error)

	// ListTags retrieves tags, optionally scoped to one category,
	// ordered by category name then tag name.
	ListTags(ctx context.Context, filters TagFilters) ([]*Tag, error)

	// RenameTag changes a tag's name (normalized before storing).
	RenameTag(ctx context.Context, tagID, newName string) error

	// DeleteTag deletes a tag and cascades to its activity associations.
	// Owning activities are left intact.
	DeleteTag(ctx context.Context, tagID string) error
}

// CreateTagRequest contains parameters for creating a tag.
type CreateTagRequest struct {
	CategoryID string
	Name       string
}

// CreateTagResponse contains the result of creating a tag.
type CreateTagResponse struct {
	TagID string
	Tag   *Tag
}

// TagFilters narrows tag listings.
type TagFilters struct {
	CategoryID string // empty matches all categories
}

// Tag represents a tag entity at the port boundary.
type Tag struct {
	ID           string
	CategoryID   string
	CategoryName string
	Name         string
	CreatedAt    string
}
