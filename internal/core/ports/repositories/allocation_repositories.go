package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
)

// AllocationRepositoryFacade persists budget allocations. Replacement is
// remove-all then insert, always inside the caller's transaction.
type AllocationRepositoryFacade interface {
	// ListAllocationsByBank returns a bank's allocations with category names.
	ListAllocationsByBank(ctx context.Context, bankID, userID string) ([]domain.Allocation, error)

	ReplaceAllocations(ctx context.Context, tx pgx.Tx, bankID, userID string, allocations []domain.Allocation) error
	DeleteAllocationsByBank(ctx context.Context, tx pgx.Tx, bankID, userID string) error
}
