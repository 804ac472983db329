package repositories

import (
	"context"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
)

// InsightsRepositoryFacade exposes read-only aggregations over already
// consistent expense data.
type InsightsRepositoryFacade interface {
	// CategoryTotals sums expenses per category for the owner, total desc.
	CategoryTotals(ctx context.Context, userID string) ([]domain.CategoryTotal, error)

	// SpendingByCategory sums expenses whose category matches the given name
	// case-insensitively. A category with no spending totals zero.
	SpendingByCategory(ctx context.Context, category, userID string) (*domain.CategoryTotal, error)
}
