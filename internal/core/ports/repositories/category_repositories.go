package repositories

import (
	"context"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
)

// CategoryRepositoryFacade persists expense/income label categories.
type CategoryRepositoryFacade interface {
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)

	// FindCategoriesByIDs is used to validate allocation references; the map
	// simply omits ids that do not exist for this owner.
	FindCategoriesByIDs(ctx context.Context, categoryIDs []string, userID string) (map[string]domain.Category, error)

	// SaveCategory inserts a category, failing with apperrors.ErrDuplicate on
	// a (name, type) collision for the owner.
	SaveCategory(ctx context.Context, category domain.Category) error

	DeleteCategory(ctx context.Context, categoryID, userID string) error
}
