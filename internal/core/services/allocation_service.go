package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/workdevapi-byte/the-reserve-backend/internal/apperrors"
	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
	portsrepo "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/repositories"
	portssvc "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/services"
	"github.com/workdevapi-byte/the-reserve-backend/internal/dto"
)

// allocationService manages per-bank budget allocation plans. A plan is
// always replaced as a whole; partial edits are expressed as a full new set.
type allocationService struct {
	ledgerCore
	allocationRepo portsrepo.AllocationRepositoryFacade
	categoryRepo   portsrepo.CategoryRepositoryFacade
}

// NewAllocationService creates a new allocation service.
func NewAllocationService(repos portsrepo.RepositoryProvider) portssvc.AllocationSvcFacade {
	return &allocationService{
		ledgerCore:     ledgerCore{txm: repos.Tx, bankRepo: repos.BankRepo},
		allocationRepo: repos.AllocationRepo,
		categoryRepo:   repos.CategoryRepo,
	}
}

var _ portssvc.AllocationSvcFacade = (*allocationService)(nil)

func (s *allocationService) GetBankAllocations(ctx context.Context, bankID, userID string) ([]dto.AllocationResponse, error) {
	if _, err := s.bankRepo.FindBankByID(ctx, bankID, userID); err != nil {
		return nil, err
	}
	allocs, err := s.allocationRepo.ListAllocationsByBank(ctx, bankID, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to list allocations", "bank_id", bankID)
		return nil, err
	}
	return dto.ToListAllocationResponse(allocs), nil
}

// ReplaceBankAllocations swaps the bank's whole plan. Every category must
// exist for the owner, no category may appear twice, amounts cannot be
// negative, and the sum cannot exceed the bank's current balance. The bank
// row is locked while summing so a concurrent expense cannot slip the
// balance below an already validated plan.
func (s *allocationService) ReplaceBankAllocations(ctx context.Context, bankID string, req dto.ReplaceAllocationsRequest, userID string) ([]dto.AllocationResponse, error) {
	categoryIDs := make([]string, 0, len(req.Allocations))
	seen := map[string]bool{}
	total := decimal.Zero
	for _, item := range req.Allocations {
		if item.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: allocation amounts cannot be negative", apperrors.ErrValidation)
		}
		if seen[item.CategoryID] {
			return nil, fmt.Errorf("%w: category %s allocated twice", apperrors.ErrValidation, item.CategoryID)
		}
		seen[item.CategoryID] = true
		categoryIDs = append(categoryIDs, item.CategoryID)
		total = total.Add(item.Amount)
	}

	categories, err := s.categoryRepo.FindCategoriesByIDs(ctx, categoryIDs, userID)
	if err != nil {
		return nil, err
	}
	for _, id := range categoryIDs {
		if _, ok := categories[id]; !ok {
			return nil, fmt.Errorf("%w: category %s", apperrors.ErrNotFound, id)
		}
	}

	now := time.Now()
	err = s.txm.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		bank, err := s.bankRepo.FindBankByIDForUpdate(ctx, tx, bankID, userID)
		if err != nil {
			return err
		}
		if total.GreaterThan(bank.Balance) {
			return fmt.Errorf("%w: allocations total %s exceeds bank balance %s",
				apperrors.ErrInsufficientFunds, total.String(), bank.Balance.String())
		}

		// Zero-amount items mean "no allocation for this category" and are
		// dropped rather than stored.
		allocs := make([]domain.Allocation, 0, len(req.Allocations))
		for _, item := range req.Allocations {
			if !item.Amount.IsPositive() {
				continue
			}
			allocs = append(allocs, domain.Allocation{
				AllocationID: uuid.NewString(),
				UserID:       userID,
				BankID:       bankID,
				CategoryID:   item.CategoryID,
				Amount:       item.Amount,
				UpdatedAt:    now,
			})
		}
		return s.allocationRepo.ReplaceAllocations(ctx, tx, bankID, userID, allocs)
	})
	if err != nil {
		s.LogError(ctx, err, "failed to replace allocations", "bank_id", bankID)
		return nil, err
	}

	allocs, err := s.allocationRepo.ListAllocationsByBank(ctx, bankID, userID)
	if err != nil {
		return nil, err
	}
	return dto.ToListAllocationResponse(allocs), nil
}
