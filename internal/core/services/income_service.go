package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
	portsrepo "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/repositories"
	portssvc "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/services"
	"github.com/workdevapi-byte/the-reserve-backend/internal/dto"
)

// incomeService records income entries, each one crediting its bank. Credits
// never need a sufficiency check; reversing one may drive the balance
// negative and that is accepted.
type incomeService struct {
	ledgerCore
	incomeRepo portsrepo.IncomeRepositoryFacade
}

// NewIncomeService creates a new income service.
func NewIncomeService(repos portsrepo.RepositoryProvider) portssvc.IncomeSvcFacade {
	return &incomeService{
		ledgerCore: ledgerCore{txm: repos.Tx, bankRepo: repos.BankRepo},
		incomeRepo: repos.IncomeRepo,
	}
}

var _ portssvc.IncomeSvcFacade = (*incomeService)(nil)

func (s *incomeService) CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, userID string) (*dto.IncomeResponse, error) {
	if err := checkAmount(req.Amount); err != nil {
		return nil, err
	}

	now := time.Now()
	income := domain.Income{
		IncomeID:  uuid.NewString(),
		UserID:    userID,
		BankID:    req.BankID,
		Name:      req.Name,
		Source:    req.Source,
		Amount:    req.Amount,
		Date:      req.Date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var bank *domain.Bank
	err := s.txm.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		bank, err = s.applyEvent(ctx, tx, req.BankID, userID, domain.Credit, req.Amount, now)
		if err != nil {
			return err
		}
		return s.incomeRepo.SaveIncome(ctx, tx, income)
	})
	if err != nil {
		s.LogError(ctx, err, "failed to create income", "bank_id", req.BankID)
		return nil, err
	}

	resp := dto.ToIncomeResponse(&income, dto.ToBankSummary(bank))
	return &resp, nil
}

func (s *incomeService) ListIncomes(ctx context.Context, userID string) ([]dto.IncomeResponse, error) {
	incomes, err := s.incomeRepo.ListIncomes(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to list incomes")
		return nil, err
	}
	return dto.ToListIncomeResponse(incomes), nil
}

// UpdateIncome reverses the original credit and applies the new one, possibly
// against a different bank.
func (s *incomeService) UpdateIncome(ctx context.Context, incomeID string, req dto.UpdateIncomeRequest, userID string) (*dto.IncomeResponse, error) {
	if err := checkAmount(req.Amount); err != nil {
		return nil, err
	}

	now := time.Now()
	var updated domain.Income
	var bank *domain.Bank
	err := s.txm.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		existing, err := s.incomeRepo.FindIncomeByID(ctx, tx, incomeID, userID)
		if err != nil {
			return err
		}

		bank, err = s.reapplyEvent(ctx, tx, existing.BankID, req.BankID, userID,
			domain.Credit, existing.Amount, req.Amount, now)
		if err != nil {
			return err
		}

		updated = *existing
		updated.BankID = req.BankID
		updated.Name = req.Name
		updated.Source = req.Source
		updated.Amount = req.Amount
		updated.Date = req.Date
		updated.UpdatedAt = now
		return s.incomeRepo.UpdateIncome(ctx, tx, updated)
	})
	if err != nil {
		s.LogError(ctx, err, "failed to update income", "income_id", incomeID)
		return nil, err
	}

	resp := dto.ToIncomeResponse(&updated, dto.ToBankSummary(bank))
	return &resp, nil
}

// DeleteIncome removes the income entry and debits its amount back off the
// bank, without a sufficiency gate.
func (s *incomeService) DeleteIncome(ctx context.Context, incomeID, userID string) error {
	now := time.Now()
	return s.txm.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		existing, err := s.incomeRepo.FindIncomeByID(ctx, tx, incomeID, userID)
		if err != nil {
			return err
		}
		if _, err := s.reverseEvent(ctx, tx, existing.BankID, userID, domain.Credit, existing.Amount, now); err != nil {
			return err
		}
		return s.incomeRepo.DeleteIncome(ctx, tx, incomeID, userID)
	})
}
