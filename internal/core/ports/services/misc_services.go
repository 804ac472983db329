package services

import (
	"context"

	"github.com/workdevapi-byte/the-reserve-backend/internal/dto"
)

// AllocationSvcFacade exposes budget allocation operations.
type AllocationSvcFacade interface {
	GetBankAllocations(ctx context.Context, bankID, userID string) ([]dto.AllocationResponse, error)
	ReplaceBankAllocations(ctx context.Context, bankID string, req dto.ReplaceAllocationsRequest, userID string) ([]dto.AllocationResponse, error)
}

// CategorySvcFacade exposes expense/income label category CRUD.
type CategorySvcFacade interface {
	ListCategories(ctx context.Context, userID string) ([]dto.CategoryResponse, error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, categoryID, userID string) error
}

// InsightsSvcFacade exposes read-only spending aggregations.
type InsightsSvcFacade interface {
	CategoryTotals(ctx context.Context, userID string) ([]dto.CategoryTotalResponse, error)
	TopCategory(ctx context.Context, userID string) (*dto.TopCategoryResponse, error)
	SpendingByCategory(ctx context.Context, category, userID string) (*dto.CategoryTotalResponse, error)
}
