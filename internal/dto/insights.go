package dto

import (
	"github.com/shopspring/decimal"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
)

// CategoryTotalResponse is one aggregation row.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// TopCategoryResponse is the single highest-spend category; Category is nil
// when the user has no expenses yet.
type TopCategoryResponse struct {
	Category *string         `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Message  string          `json:"message,omitempty"`
}

// ToListCategoryTotalResponse converts aggregation rows.
func ToListCategoryTotalResponse(totals []domain.CategoryTotal) []CategoryTotalResponse {
	res := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		res[i] = CategoryTotalResponse{Category: t.Category, Total: t.Total}
	}
	return res
}
