package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/tlog/internal/ports/secondary"
)

// TagRepository implements secondary.TagRepository with SQLite.
type TagRepository struct {
	db *sql.DB
}

// NewTagRepository creates a new SQLite tag repository.
func NewTagRepository(db *sql.DB) *TagRepository {
	return &TagRepository{db: db}
}

// Create persists a new tag. The name is expected to be normalized
// already; UNIQUE(category_id, name) COLLATE NOCASE rejects duplicates
// within the category.
func (r *TagRepository) Create(ctx context.Context, tag *secondary.TagRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO tags (id, category_id, name) VALUES (?, ?, ?)",
		tag.ID, tag.CategoryID, tag.Name,
	)
	if err != nil {
		return wrapErr("failed to create tag", err)
	}

	return nil
}

const tagSelect = `
	SELECT t.id, t.category_id, c.name, t.name, t.created_at
	FROM tags t
	JOIN categories c ON c.id = t.category_id`

// GetByID retrieves a tag by its ID.
func (r *TagRepository) GetByID(ctx context.Context, id string) (*secondary.TagRecord, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, tagSelect+" WHERE t.id = ?", id), id)
}

// GetByName retrieves a tag by name within one category. The name column
// is COLLATE NOCASE, so the match is case-insensitive.
func (r *TagRepository) GetByName(ctx context.Context, categoryID, name string) (*secondary.TagRecord, error) {
	return r.scanOne(
		r.db.QueryRowContext(ctx, tagSelect+" WHERE t.category_id = ? AND t.name = ?", categoryID, name),
		name,
	)
}

func (r *TagRepository) scanOne(row *sql.Row, key string) (*secondary.TagRecord, error) {
	var createdAt time.Time

	record := &secondary.TagRecord{}
	err := row.Scan(&record.ID, &record.CategoryID, &record.CategoryName, &record.Name, &createdAt)

	if err == sql.ErrNoRows {
		return nil, notFound("tag", key)
	}
	if err != nil {
		return nil, wrapErr("failed to get tag", err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// List retrieves tags ordered by category name then tag name, optionally
// scoped to one category.
func (r *TagRepository) List(ctx context.Context, filters secondary.TagFilters) ([]*secondary.TagRecord, error) {
	query := tagSelect
	args := []any{}

	if filters.CategoryID != "" {
		query += " WHERE t.category_id = ?"
		args = append(args, filters.CategoryID)
	}

	query += " ORDER BY c.name ASC, t.name ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("failed to list tags", err)
	}
	defer rows.Close()

	var tags []*secondary.TagRecord
	for rows.Next() {
		var createdAt time.Time

		record := &secondary.TagRecord{}
		if err := rows.Scan(&record.ID, &record.CategoryID, &record.CategoryName, &record.Name, &createdAt); err != nil {
			return nil, wrapErr("failed to scan tag", err)
		}

		record.CreatedAt = createdAt.Format(time.RFC3339)

		tags = append(tags, record)
	}

	return tags, rows.Err()
}

// Rename changes a tag's name. Callers normalize first.
func (r *TagRepository) Rename(ctx context.Context, id, name string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE tags SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return wrapErr("failed to rename tag", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return notFound("tag", id)
	}

	return nil
}

// Delete removes a tag (cascades to activity_tags).
func (r *TagRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tags WHERE id = ?", id)
	if err != nil {
		return wrapErr("failed to delete tag", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return notFound("tag", id)
	}

	return nil
}

// GetNextID returns the next available tag ID.
func (r *TagRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM tags",
	).Scan(&maxID)
	if err != nil {
		return "", wrapErr("failed to get next tag ID", err)
	}

	return fmt.Sprintf("TAG-%03d", maxID+1), nil
}

// Ensure TagRepository implements the interface.
var _ secondary.TagRepository = (*TagRepository)(nil)
