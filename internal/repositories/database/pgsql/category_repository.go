package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workdevapi-byte/the-reserve-backend/internal/apperrors"
	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
	portsrepo "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/repositories"
)

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// ListCategories returns the owner's categories, name asc.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	query := `
		SELECT category_id, user_id, name, type, created_at
		FROM categories
		WHERE user_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	cats := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.CategoryID, &c.UserID, &c.Name, &c.Type, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return cats, nil
}

// FindCategoriesByIDs resolves categories by id for validation purposes;
// ids that do not exist for this owner are simply absent from the map.
func (r *PgxCategoryRepository) FindCategoriesByIDs(ctx context.Context, categoryIDs []string, userID string) (map[string]domain.Category, error) {
	catsMap := make(map[string]domain.Category)
	if len(categoryIDs) == 0 {
		return catsMap, nil
	}

	query := `
		SELECT category_id, user_id, name, type, created_at
		FROM categories
		WHERE category_id = ANY($1) AND user_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, categoryIDs, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.CategoryID, &c.UserID, &c.Name, &c.Type, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		catsMap[c.CategoryID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return catsMap, nil
}

// SaveCategory inserts a category. The unique index on (user_id, lower(name),
// type) surfaces duplicates as ErrDuplicate.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
		INSERT INTO categories (category_id, user_id, name, type, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID, category.UserID, category.Name, string(category.Type), category.CreatedAt)
	if err != nil {
		return mapPgError(err, "failed to save category "+category.Name)
	}
	return nil
}

// DeleteCategory removes a category. Ledger records keep their category as
// plain text, so nothing else is touched.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID, userID string) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`DELETE FROM categories WHERE category_id = $1 AND user_id = $2;`, categoryID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
