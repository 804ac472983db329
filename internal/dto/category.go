package dto

import (
	"time"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
)

// CreateCategoryRequest creates an expense/income label category.
type CreateCategoryRequest struct {
	Name string              `json:"name" binding:"required,notblank"`
	Type domain.CategoryType `json:"type" binding:"required,oneof=expense income"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string              `json:"categoryId"`
	Name       string              `json:"name"`
	Type       domain.CategoryType `json:"type"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// ToCategoryResponse converts a domain.Category.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{CategoryID: c.CategoryID, Name: c.Name, Type: c.Type, CreatedAt: c.CreatedAt}
}

// ToListCategoryResponse converts a slice of domain.Category.
func ToListCategoryResponse(cats []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(cats))
	for i, c := range cats {
		res[i] = ToCategoryResponse(&c)
	}
	return res
}
