package services

import (
	"context"

	"github.com/workdevapi-byte/the-reserve-backend/internal/dto"
)

// InvestmentSvcFacade exposes investment operations, including the
// per-user investment category collection.
type InvestmentSvcFacade interface {
	ListInvestmentCategories(ctx context.Context, userID string) ([]dto.InvestmentCategoryResponse, error)
	CreateInvestmentCategory(ctx context.Context, req dto.CreateInvestmentCategoryRequest, userID string) (*dto.InvestmentCategoryResponse, error)

	// Contribute debits the funding bank and aggregates into the unique
	// (category, bank, owner) investment row.
	Contribute(ctx context.Context, req dto.ContributeInvestmentRequest, userID string) (*dto.InvestmentResponse, error)
	ListInvestments(ctx context.Context, userID string) ([]dto.InvestmentResponse, error)
	ListHistory(ctx context.Context, userID string) ([]dto.InvestmentTransactionResponse, error)

	// Correct overwrites amount/date without touching balances or history.
	Correct(ctx context.Context, investmentID string, req dto.CorrectInvestmentRequest, userID string) (*dto.InvestmentResponse, error)

	// Delete refunds the cumulative amount and removes the investment with
	// its whole history.
	Delete(ctx context.Context, investmentID, userID string) error
}
