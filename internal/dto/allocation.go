package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
)

// AllocationItem is one requested (category, amount) pair.
type AllocationItem struct {
	CategoryID string          `json:"categoryId" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
}

// ReplaceAllocationsRequest replaces the full allocation set for a bank.
type ReplaceAllocationsRequest struct {
	Allocations []AllocationItem `json:"allocations" binding:"required"`
}

// AllocationResponse defines the data returned for one allocation.
type AllocationResponse struct {
	AllocationID string          `json:"allocationId"`
	BankID       string          `json:"bankId"`
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ToListAllocationResponse converts a slice of domain.Allocation.
func ToListAllocationResponse(allocations []domain.Allocation) []AllocationResponse {
	res := make([]AllocationResponse, len(allocations))
	for i, a := range allocations {
		res[i] = AllocationResponse{
			AllocationID: a.AllocationID,
			BankID:       a.BankID,
			CategoryID:   a.CategoryID,
			CategoryName: a.CategoryName,
			Amount:       a.Amount,
			UpdatedAt:    a.UpdatedAt,
		}
	}
	return res
}
