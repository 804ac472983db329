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

// expenseService records expenses, each one debiting its bank atomically.
type expenseService struct {
	ledgerCore
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new expense service.
func NewExpenseService(repos portsrepo.RepositoryProvider) portssvc.ExpenseSvcFacade {
	return &expenseService{
		ledgerCore:  ledgerCore{txm: repos.Tx, bankRepo: repos.BankRepo},
		expenseRepo: repos.ExpenseRepo,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*dto.ExpenseResponse, error) {
	if err := checkAmount(req.Amount); err != nil {
		return nil, err
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID: uuid.NewString(),
		UserID:    userID,
		BankID:    req.BankID,
		Name:      req.Name,
		Category:  req.Category,
		Amount:    req.Amount,
		Date:      req.Date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var bank *domain.Bank
	err := s.txm.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		bank, err = s.applyEvent(ctx, tx, req.BankID, userID, domain.Debit, req.Amount, now)
		if err != nil {
			return err
		}
		return s.expenseRepo.SaveExpense(ctx, tx, expense)
	})
	if err != nil {
		s.LogError(ctx, err, "failed to create expense", "bank_id", req.BankID)
		return nil, err
	}

	resp := dto.ToExpenseResponse(&expense, dto.ToBankSummary(bank))
	return &resp, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, userID string) ([]dto.ExpenseResponse, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to list expenses")
		return nil, err
	}
	return dto.ToListExpenseResponse(expenses), nil
}

// UpdateExpense replaces every field of an existing expense. The original
// debit is reversed first and the new one applied against the post-reversal
// balance, so the update is equivalent to delete-then-create but atomic.
func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (*dto.ExpenseResponse, error) {
	if err := checkAmount(req.Amount); err != nil {
		return nil, err
	}

	now := time.Now()
	var updated domain.Expense
	var bank *domain.Bank
	err := s.txm.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		existing, err := s.expenseRepo.FindExpenseByID(ctx, tx, expenseID, userID)
		if err != nil {
			return err
		}

		bank, err = s.reapplyEvent(ctx, tx, existing.BankID, req.BankID, userID,
			domain.Debit, existing.Amount, req.Amount, now)
		if err != nil {
			return err
		}

		updated = *existing
		updated.BankID = req.BankID
		updated.Name = req.Name
		updated.Category = req.Category
		updated.Amount = req.Amount
		updated.Date = req.Date
		updated.UpdatedAt = now
		return s.expenseRepo.UpdateExpense(ctx, tx, updated)
	})
	if err != nil {
		s.LogError(ctx, err, "failed to update expense", "expense_id", expenseID)
		return nil, err
	}

	resp := dto.ToExpenseResponse(&updated, dto.ToBankSummary(bank))
	return &resp, nil
}

// DeleteExpense removes the expense and credits its amount back to the bank.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID, userID string) error {
	now := time.Now()
	return s.txm.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		existing, err := s.expenseRepo.FindExpenseByID(ctx, tx, expenseID, userID)
		if err != nil {
			return err
		}
		if _, err := s.reverseEvent(ctx, tx, existing.BankID, userID, domain.Debit, existing.Amount, now); err != nil {
			return err
		}
		return s.expenseRepo.DeleteExpense(ctx, tx, expenseID, userID)
	})
}
