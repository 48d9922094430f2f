package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/tlog/internal/ports/secondary"
)

// CategoryRepository implements secondary.CategoryRepository with SQLite.
type CategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new SQLite category repository.
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create persists a new category.
func (r *CategoryRepository) Create(ctx context.Context, category *secondary.CategoryRecord) error {
	var color sql.NullString
	if category.Color != "" {
		color = sql.NullString{String: category.Color, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO categories (id, name, color) VALUES (?, ?, ?)",
		category.ID, category.Name, color,
	)
	if err != nil {
		return wrapErr("failed to create category", err)
	}

	return nil
}

// GetByID retrieves a category by its ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*secondary.CategoryRecord, error) {
	return r.getOne(ctx,
		"SELECT id, name, color, created_at FROM categories WHERE id = ?", id)
}

// GetByName retrieves a category by name. The name column is COLLATE
// NOCASE, so the match is case-insensitive.
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*secondary.CategoryRecord, error) {
	return r.getOne(ctx,
		"SELECT id, name, color, created_at FROM categories WHERE name = ?", name)
}

func (r *CategoryRepository) getOne(ctx context.Context, query string, arg any) (*secondary.CategoryRecord, error) {
	var (
		color     sql.NullString
		createdAt time.Time
	)

	record := &secondary.CategoryRecord{}
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&record.ID, &record.Name, &color, &createdAt)

	if err == sql.ErrNoRows {
		return nil, notFound("category", fmt.Sprint(arg))
	}
	if err != nil {
		return nil, wrapErr("failed to get category", err)
	}

	record.Color = color.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// List retrieves all categories ordered by name.
func (r *CategoryRepository) List(ctx context.Context) ([]*secondary.CategoryRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, color, created_at FROM categories ORDER BY name ASC",
	)
	if err != nil {
		return nil, wrapErr("failed to list categories", err)
	}
	defer rows.Close()

	var categories []*secondary.CategoryRecord
	for rows.Next() {
		var (
			color     sql.NullString
			createdAt time.Time
		)

		record := &secondary.CategoryRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &color, &createdAt); err != nil {
			return nil, wrapErr("failed to scan category", err)
		}

		record.Color = color.String
		record.CreatedAt = createdAt.Format(time.RFC3339)

		categories = append(categories, record)
	}

	return categories, rows.Err()
}

// Rename changes a category's name.
func (r *CategoryRepository) Rename(ctx context.Context, id, name string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE categories SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return wrapErr("failed to rename category", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return notFound("category", id)
	}

	return nil
}

// SetColor updates a category's color. Empty stores NULL.
func (r *CategoryRepository) SetColor(ctx context.Context, id, color string) error {
	var value sql.NullString
	if color != "" {
		value = sql.NullString{String: color, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE categories SET color = ? WHERE id = ?", value, id)
	if err != nil {
		return wrapErr("failed to set category color", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return notFound("category", id)
	}

	return nil
}

// Delete removes a category. Tags cascade away with their associations;
// the foreign key from activities blocks the delete while any reference
// remains.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return wrapErr("failed to delete category", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return notFound("category", id)
	}

	return nil
}

// GetNextID returns the next available category ID.
func (r *CategoryRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM categories",
	).Scan(&maxID)
	if err != nil {
		return "", wrapErr("failed to get next category ID", err)
	}

	return fmt.Sprintf("CAT-%03d", maxID+1), nil
}

// ActivityCount returns how many activities reference the category.
func (r *CategoryRepository) ActivityCount(ctx context.Context, id string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM activities WHERE category_id = ?", id,
	).Scan(&count)
	if err != nil {
		return 0, wrapErr("failed to count category activities", err)
	}

	return count, nil
}

// Ensure CategoryRepository implements the interface.
var _ secondary.CategoryRepository = (*CategoryRepository)(nil)
