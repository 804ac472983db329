package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
)

// BankReader defines read operations for bank data. Every lookup is scoped
// by the owning user id; a bank owned by someone else reads as not found.
type BankReader interface {
	// FindBankByID retrieves a bank by id for the given owner.
	FindBankByID(ctx context.Context, bankID, userID string) (*domain.Bank, error)

	// ListBanks retrieves all banks for the owner, newest first.
	ListBanks(ctx context.Context, userID string) ([]domain.Bank, error)
}

// BankWriter defines write operations for bank data.
type BankWriter interface {
	// SaveBank persists a new bank.
	SaveBank(ctx context.Context, bank domain.Bank) error

	// UpdateBank updates name and/or balance of an existing bank. It runs
	// inside a transaction so the caller can hold the bank's row lock and
	// a concurrent balance mutation cannot be overwritten.
	UpdateBank(ctx context.Context, tx pgx.Tx, bank domain.Bank) error
}

// BankTransactionSupport defines the balance mutator and the lock/cascade
// primitives; all of these require an open transaction.
type BankTransactionSupport interface {
	// FindBankByIDForUpdate selects a bank and locks its row for update.
	FindBankByIDForUpdate(ctx context.Context, tx pgx.Tx, bankID, userID string) (*domain.Bank, error)

	// FindBanksByIDsForUpdate locks several bank rows in one statement,
	// failing with apperrors.ErrNotFound if any is missing or foreign.
	FindBanksByIDsForUpdate(ctx context.Context, tx pgx.Tx, bankIDs []string, userID string) (map[string]domain.Bank, error)

	// AdjustBalance atomically applies a signed delta to a bank's stored
	// balance and returns the bank with its post-update balance. It is the
	// only code path that mutates balances.
	AdjustBalance(ctx context.Context, tx pgx.Tx, bankID, userID string, delta decimal.Decimal, now time.Time) (*domain.Bank, error)

	// DeleteBank removes the bank row itself; event cascades are driven by
	// the service inside the same transaction.
	DeleteBank(ctx context.Context, tx pgx.Tx, bankID, userID string) error
}

// BankRepositoryFacade combines all bank-related repository interfaces.
type BankRepositoryFacade interface {
	BankReader
	BankWriter
	BankTransactionSupport
}
