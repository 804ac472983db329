package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/workdevapi-byte/the-reserve-backend/internal/apperrors"
	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
	portsrepo "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/repositories"
)

// ledgerCore is the shared machinery behind every money event service:
// the sufficiency gate and the single balance mutation path. Expense,
// income, transfer and investment services all embed it so applying and
// reversing an event is written exactly once.
type ledgerCore struct {
	BaseService
	txm      portsrepo.TxManager
	bankRepo portsrepo.BankRepositoryFacade
}

// checkAmount rejects non-positive event amounts.
func checkAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, amount.String())
	}
	return nil
}

// applyEvent locks the target bank, gates on sufficiency when the direction
// debits, and applies the signed delta. Returns the bank with its post-update
// balance.
func (c *ledgerCore) applyEvent(ctx context.Context, tx pgx.Tx, bankID, userID string, dir domain.Direction, amount decimal.Decimal, now time.Time) (*domain.Bank, error) {
	bank, err := c.bankRepo.FindBankByIDForUpdate(ctx, tx, bankID, userID)
	if err != nil {
		return nil, err
	}
	if dir.RequiresFunds() && bank.Balance.LessThan(amount) {
		return nil, fmt.Errorf("%w: bank %s holds %s, event needs %s",
			apperrors.ErrInsufficientFunds, bank.Name, bank.Balance.String(), amount.String())
	}
	return c.bankRepo.AdjustBalance(ctx, tx, bankID, userID, dir.Delta(amount), now)
}

// reverseEvent undoes a previously applied event. Reversal never checks
// sufficiency: restoring the pre-event state must always succeed, even when
// it drives the balance negative.
func (c *ledgerCore) reverseEvent(ctx context.Context, tx pgx.Tx, bankID, userID string, dir domain.Direction, amount decimal.Decimal, now time.Time) (*domain.Bank, error) {
	return c.bankRepo.AdjustBalance(ctx, tx, bankID, userID, dir.Delta(amount).Neg(), now)
}

// reapplyEvent is the update path: reverse the old event, then apply the new
// one, both inside the caller's transaction. Both banks are locked up front
// in one ordered statement so two concurrent updates cannot deadlock. The
// sufficiency check runs against the post-reversal balance, so shrinking an
// expense on an empty bank still works.
func (c *ledgerCore) reapplyEvent(ctx context.Context, tx pgx.Tx, oldBankID, newBankID, userID string, dir domain.Direction, oldAmount, newAmount decimal.Decimal, now time.Time) (*domain.Bank, error) {
	bankIDs := []string{oldBankID}
	if newBankID != oldBankID {
		bankIDs = append(bankIDs, newBankID)
	}
	if _, err := c.bankRepo.FindBanksByIDsForUpdate(ctx, tx, bankIDs, userID); err != nil {
		return nil, err
	}

	reversed, err := c.bankRepo.AdjustBalance(ctx, tx, oldBankID, userID, dir.Delta(oldAmount).Neg(), now)
	if err != nil {
		return nil, err
	}

	if dir.RequiresFunds() {
		available := reversed.Balance
		if newBankID != oldBankID {
			target, err := c.bankRepo.FindBankByIDForUpdate(ctx, tx, newBankID, userID)
			if err != nil {
				return nil, err
			}
			available = target.Balance
		}
		if available.LessThan(newAmount) {
			return nil, fmt.Errorf("%w: available balance %s cannot cover %s",
				apperrors.ErrInsufficientFunds, available.String(), newAmount.String())
		}
	}

	return c.bankRepo.AdjustBalance(ctx, tx, newBankID, userID, dir.Delta(newAmount), now)
}
