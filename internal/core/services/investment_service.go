package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/workdevapi-byte/the-reserve-backend/internal/apperrors"
	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
	portsrepo "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/repositories"
	portssvc "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/services"
	"github.com/workdevapi-byte/the-reserve-backend/internal/dto"
)

// investmentService manages investment categories, contributions and the
// contribution history. Contributions aggregate into one row per
// (category, bank, owner) triple rather than creating a row each.
type investmentService struct {
	ledgerCore
	investmentRepo portsrepo.InvestmentRepositoryFacade
}

// NewInvestmentService creates a new investment service.
func NewInvestmentService(repos portsrepo.RepositoryProvider) portssvc.InvestmentSvcFacade {
	return &investmentService{
		ledgerCore:     ledgerCore{txm: repos.Tx, bankRepo: repos.BankRepo},
		investmentRepo: repos.InvestmentRepo,
	}
}

var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

func (s *investmentService) ListInvestmentCategories(ctx context.Context, userID string) ([]dto.InvestmentCategoryResponse, error) {
	cats, err := s.investmentRepo.ListInvestmentCategories(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to list investment categories")
		return nil, err
	}
	return dto.ToListInvestmentCategoryResponse(cats), nil
}

// CreateInvestmentCategory adds a named category, rejecting a name already
// taken case-insensitively.
func (s *investmentService) CreateInvestmentCategory(ctx context.Context, req dto.CreateInvestmentCategoryRequest, userID string) (*dto.InvestmentCategoryResponse, error) {
	name := strings.TrimSpace(req.Name)

	var category domain.InvestmentCategory
	err := s.txm.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		existing, err := s.investmentRepo.FindInvestmentCategoryByName(ctx, tx, name, userID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: category %q already exists", apperrors.ErrDuplicate, existing.Name)
		}

		category = domain.InvestmentCategory{
			CategoryID: uuid.NewString(),
			UserID:     userID,
			Name:       name,
			CreatedAt:  time.Now(),
		}
		return s.investmentRepo.SaveInvestmentCategory(ctx, tx, category)
	})
	if err != nil {
		s.LogError(ctx, err, "failed to create investment category", "name", name)
		return nil, err
	}

	resp := dto.ToInvestmentCategoryResponse(&category)
	return &resp, nil
}

// resolveCategory turns the request's category reference into a concrete
// category, creating one when a new name has no case-insensitive match.
func (s *investmentService) resolveCategory(ctx context.Context, tx pgx.Tx, req dto.ContributeInvestmentRequest, userID string) (*domain.InvestmentCategory, error) {
	switch {
	case req.CategoryID != "" && req.NewCategoryName != "":
		return nil, fmt.Errorf("%w: provide either categoryId or newCategoryName, not both", apperrors.ErrValidation)
	case req.CategoryID != "":
		return s.investmentRepo.FindInvestmentCategoryByID(ctx, tx, req.CategoryID, userID)
	case strings.TrimSpace(req.NewCategoryName) != "":
		name := strings.TrimSpace(req.NewCategoryName)
		existing, err := s.investmentRepo.FindInvestmentCategoryByName(ctx, tx, name, userID)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		category := domain.InvestmentCategory{
			CategoryID: uuid.NewString(),
			UserID:     userID,
			Name:       name,
			CreatedAt:  time.Now(),
		}
		if err := s.investmentRepo.SaveInvestmentCategory(ctx, tx, category); err != nil {
			return nil, err
		}
		return &category, nil
	default:
		return nil, fmt.Errorf("%w: either categoryId or newCategoryName is required", apperrors.ErrValidation)
	}
}

// Contribute debits the funding bank and folds the amount into the unique
// (category, bank, owner) investment row, creating it on first contribution.
// Every contribution also appends a history record, so the cumulative row
// stays explainable.
func (s *investmentService) Contribute(ctx context.Context, req dto.ContributeInvestmentRequest, userID string) (*dto.InvestmentResponse, error) {
	if err := checkAmount(req.Amount); err != nil {
		return nil, err
	}

	now := time.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}

	var result domain.Investment
	var bank *domain.Bank
	err := s.txm.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		category, err := s.resolveCategory(ctx, tx, req, userID)
		if err != nil {
			return err
		}

		bank, err = s.applyEvent(ctx, tx, req.BankID, userID, domain.Debit, req.Amount, now)
		if err != nil {
			return err
		}

		existing, err := s.investmentRepo.FindInvestmentForUpdate(ctx, tx, category.CategoryID, req.BankID, userID)
		switch {
		case err == nil:
			if err := s.investmentRepo.AddToInvestment(ctx, tx, existing.InvestmentID, req.Amount, date); err != nil {
				return err
			}
			result = *existing
			result.Amount = existing.Amount.Add(req.Amount)
			result.Date = date
		case errors.Is(err, apperrors.ErrNotFound):
			result = domain.Investment{
				InvestmentID: uuid.NewString(),
				UserID:       userID,
				CategoryID:   category.CategoryID,
				BankID:       req.BankID,
				Amount:       req.Amount,
				Date:         date,
				CreatedAt:    now,
				CategoryName: category.Name,
				BankName:     bank.Name,
			}
			if err := s.investmentRepo.SaveInvestment(ctx, tx, result); err != nil {
				return err
			}
		default:
			return err
		}

		txn := domain.InvestmentTransaction{
			TransactionID: uuid.NewString(),
			InvestmentID:  result.InvestmentID,
			UserID:        userID,
			BankID:        req.BankID,
			Amount:        req.Amount,
			Name:          req.Name,
			Notes:         req.Notes,
			Date:          date,
			CreatedAt:     now,
		}
		return s.investmentRepo.SaveInvestmentTransaction(ctx, tx, txn)
	})
	if err != nil {
		s.LogError(ctx, err, "failed to contribute to investment", "bank_id", req.BankID)
		return nil, err
	}

	result.BankName = bank.Name
	result.BankBalance = bank.Balance
	resp := dto.ToInvestmentResponse(&result)
	return &resp, nil
}

func (s *investmentService) ListInvestments(ctx context.Context, userID string) ([]dto.InvestmentResponse, error) {
	invs, err := s.investmentRepo.ListInvestments(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to list investments")
		return nil, err
	}
	return dto.ToListInvestmentResponse(invs), nil
}

func (s *investmentService) ListHistory(ctx context.Context, userID string) ([]dto.InvestmentTransactionResponse, error) {
	txns, err := s.investmentRepo.ListInvestmentHistory(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to list investment history")
		return nil, err
	}
	return dto.ToListInvestmentHistoryResponse(txns), nil
}

// Correct overwrites the cumulative amount and/or date in place. No balance
// moves and no history record is written; this is the explicit escape hatch
// for fixing records that drifted from reality.
func (s *investmentService) Correct(ctx context.Context, investmentID string, req dto.CorrectInvestmentRequest, userID string) (*dto.InvestmentResponse, error) {
	if req.Amount == nil && req.Date == nil {
		return nil, fmt.Errorf("%w: nothing to correct", apperrors.ErrValidation)
	}
	if req.Amount != nil && req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: corrected amount cannot be negative", apperrors.ErrValidation)
	}

	var updated domain.Investment
	err := s.txm.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		existing, err := s.investmentRepo.FindInvestmentByID(ctx, tx, investmentID, userID)
		if err != nil {
			return err
		}

		updated = *existing
		if req.Amount != nil {
			updated.Amount = *req.Amount
		}
		if req.Date != nil {
			updated.Date = *req.Date
		}
		return s.investmentRepo.UpdateInvestment(ctx, tx, updated)
	})
	if err != nil {
		s.LogError(ctx, err, "failed to correct investment", "investment_id", investmentID)
		return nil, err
	}

	resp := dto.ToInvestmentResponse(&updated)
	return &resp, nil
}

// Delete refunds the cumulative amount to the funding bank and removes the
// investment together with its whole history.
func (s *investmentService) Delete(ctx context.Context, investmentID, userID string) error {
	now := time.Now()
	return s.txm.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		existing, err := s.investmentRepo.FindInvestmentByID(ctx, tx, investmentID, userID)
		if err != nil {
			return err
		}

		if existing.Amount.IsPositive() {
			if _, err := s.reverseEvent(ctx, tx, existing.BankID, userID, domain.Debit, existing.Amount, now); err != nil {
				return err
			}
		}
		if err := s.investmentRepo.DeleteInvestmentTransactions(ctx, tx, investmentID, userID); err != nil {
			return err
		}
		return s.investmentRepo.DeleteInvestment(ctx, tx, investmentID, userID)
	})
}
