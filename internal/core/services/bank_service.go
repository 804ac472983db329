package services

import (
	"context"
	"fmt"
	"strings"
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

// bankService manages bank accounts and the deletion cascade.
type bankService struct {
	ledgerCore
	expenseRepo    portsrepo.ExpenseRepositoryFacade
	incomeRepo     portsrepo.IncomeRepositoryFacade
	transferRepo   portsrepo.TransferRepositoryFacade
	investmentRepo portsrepo.InvestmentRepositoryFacade
	allocationRepo portsrepo.AllocationRepositoryFacade
}

// NewBankService creates a new bank service.
func NewBankService(repos portsrepo.RepositoryProvider) portssvc.BankSvcFacade {
	return &bankService{
		ledgerCore:     ledgerCore{txm: repos.Tx, bankRepo: repos.BankRepo},
		expenseRepo:    repos.ExpenseRepo,
		incomeRepo:     repos.IncomeRepo,
		transferRepo:   repos.TransferRepo,
		investmentRepo: repos.InvestmentRepo,
		allocationRepo: repos.AllocationRepo,
	}
}

var _ portssvc.BankSvcFacade = (*bankService)(nil)

func (s *bankService) CreateBank(ctx context.Context, req dto.CreateBankRequest, userID string) (*dto.BankResponse, error) {
	if req.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	bank := domain.Bank{
		BankID:    uuid.NewString(),
		UserID:    userID,
		Name:      strings.TrimSpace(req.Name),
		Balance:   req.Balance,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.bankRepo.SaveBank(ctx, bank); err != nil {
		s.LogError(ctx, err, "failed to create bank", "bank_name", bank.Name)
		return nil, err
	}

	resp := dto.ToBankResponse(&bank)
	return &resp, nil
}

func (s *bankService) ListBanks(ctx context.Context, userID string) ([]dto.BankResponse, error) {
	banks, err := s.bankRepo.ListBanks(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to list banks")
		return nil, err
	}
	return dto.ToListBankResponse(banks), nil
}

// UpdateBank applies a partial update. A balance in the request is a manual
// correction: it overwrites the stored balance directly without producing a
// ledger event.
func (s *bankService) UpdateBank(ctx context.Context, bankID string, req dto.UpdateBankRequest, userID string) (*dto.BankResponse, error) {
	if req.Name == nil && req.Balance == nil {
		return nil, fmt.Errorf("%w: nothing to update", apperrors.ErrValidation)
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be blank", apperrors.ErrValidation)
	}
	if req.Balance != nil && req.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance cannot be set negative", apperrors.ErrValidation)
	}

	// The read-modify-write holds the bank's row lock so a balance change
	// committed by a concurrent ledger event is never overwritten by a
	// name-only update.
	var bank *domain.Bank
	err := s.txm.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		bank, err = s.bankRepo.FindBankByIDForUpdate(ctx, tx, bankID, userID)
		if err != nil {
			return err
		}

		if req.Name != nil {
			bank.Name = strings.TrimSpace(*req.Name)
		}
		if req.Balance != nil {
			bank.Balance = *req.Balance
		}
		bank.UpdatedAt = time.Now()

		return s.bankRepo.UpdateBank(ctx, tx, *bank)
	})
	if err != nil {
		s.LogError(ctx, err, "failed to update bank", "bank_id", bankID)
		return nil, err
	}

	resp := dto.ToBankResponse(bank)
	return &resp, nil
}

// DeleteBank removes the bank and everything referencing it in one
// transaction. Expenses, incomes, investments and allocations vanish with
// the bank; transfers additionally had an effect on another bank, so each
// cascaded transfer's effect on its surviving counterparty is reversed to
// keep that bank's stored balance equal to its event history.
func (s *bankService) DeleteBank(ctx context.Context, bankID, userID string) error {
	return s.txm.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := s.bankRepo.FindBankByIDForUpdate(ctx, tx, bankID, userID); err != nil {
			return err
		}

		transfers, err := s.transferRepo.FindTransfersByBank(ctx, tx, bankID, userID)
		if err != nil {
			return err
		}

		counterparties := []string{}
		seen := map[string]bool{}
		for _, t := range transfers {
			other := t.ToBankID
			if t.ToBankID == bankID {
				other = t.FromBankID
			}
			if !seen[other] {
				seen[other] = true
				counterparties = append(counterparties, other)
			}
		}
		if _, err := s.bankRepo.FindBanksByIDsForUpdate(ctx, tx, counterparties, userID); err != nil {
			return err
		}

		now := time.Now()
		for _, t := range transfers {
			// Outgoing transfer: the counterparty received the amount, take
			// it back. Incoming transfer: the counterparty was debited,
			// refund it. Reversals never gate on sufficiency.
			var other string
			var delta decimal.Decimal
			if t.FromBankID == bankID {
				other, delta = t.ToBankID, t.Amount.Neg()
			} else {
				other, delta = t.FromBankID, t.Amount
			}
			if _, err := s.bankRepo.AdjustBalance(ctx, tx, other, userID, delta, now); err != nil {
				return err
			}
		}

		if err := s.transferRepo.DeleteTransfersByBank(ctx, tx, bankID, userID); err != nil {
			return err
		}
		if err := s.expenseRepo.DeleteExpensesByBank(ctx, tx, bankID, userID); err != nil {
			return err
		}
		if err := s.incomeRepo.DeleteIncomesByBank(ctx, tx, bankID, userID); err != nil {
			return err
		}
		if err := s.investmentRepo.DeleteInvestmentsByBank(ctx, tx, bankID, userID); err != nil {
			return err
		}
		if err := s.allocationRepo.DeleteAllocationsByBank(ctx, tx, bankID, userID); err != nil {
			return err
		}
		return s.bankRepo.DeleteBank(ctx, tx, bankID, userID)
	})
}
