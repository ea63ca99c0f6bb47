package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
)

// PgxCategoryRepository persists categories and sub-categories.
type PgxCategoryRepository struct {
	BaseRepository
}

// NewCategoryRepository creates a new repository for category data.
func NewCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
		INSERT INTO categories (category_id, name, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.CreatedAt,
		category.LastUpdatedAt,
	)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("category %q", category.Name))
	}
	return nil
}

// FindCategoryByID retrieves a category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `
		SELECT category_id, name, created_at, last_updated_at
		FROM categories
		WHERE category_id = $1;
	`
	var c domain.Category
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(
		&c.CategoryID,
		&c.Name,
		&c.CreatedAt,
		&c.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	return &c, nil
}

// ListCategories retrieves all categories ordered by name.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, `SELECT category_id, name, created_at, last_updated_at FROM categories ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.CategoryID, &c.Name, &c.CreatedAt, &c.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}

// UpdateCategory updates an existing category.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
		UPDATE categories SET name = $2, last_updated_at = $3 WHERE category_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, category.CategoryID, category.Name, category.LastUpdatedAt)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("category %s", category.CategoryID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category; its sub-categories cascade with it.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("category %s", categoryID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveSubCategory inserts a new sub-category. A missing parent category
// surfaces as apperrors.ErrRestricted via the FK.
func (r *PgxCategoryRepository) SaveSubCategory(ctx context.Context, sub domain.SubCategory) error {
	query := `
		INSERT INTO sub_categories (sub_category_id, category_id, name, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		sub.SubCategoryID,
		sub.CategoryID,
		sub.Name,
		sub.CreatedAt,
		sub.LastUpdatedAt,
	)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("sub-category %q", sub.Name))
	}
	return nil
}

// ListSubCategories retrieves sub-categories, optionally filtered by parent category.
func (r *PgxCategoryRepository) ListSubCategories(ctx context.Context, categoryID string) ([]domain.SubCategory, error) {
	query := `
		SELECT sub_category_id, category_id, name, created_at, last_updated_at
		FROM sub_categories
		WHERE $1 = '' OR category_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sub-categories: %w", err)
	}
	defer rows.Close()

	subs := []domain.SubCategory{}
	for rows.Next() {
		var s domain.SubCategory
		if err := rows.Scan(&s.SubCategoryID, &s.CategoryID, &s.Name, &s.CreatedAt, &s.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sub-category row: %w", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sub-category rows: %w", err)
	}
	return subs, nil
}

// DeleteSubCategory removes a sub-category.
func (r *PgxCategoryRepository) DeleteSubCategory(ctx context.Context, subCategoryID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM sub_categories WHERE sub_category_id = $1;`, subCategoryID)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("sub-category %s", subCategoryID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
