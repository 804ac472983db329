package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
)

// InvestmentCategorySupport covers the per-user investment category
// collection (unique by case-insensitive name).
type InvestmentCategorySupport interface {
	ListInvestmentCategories(ctx context.Context, userID string) ([]domain.InvestmentCategory, error)
	FindInvestmentCategoryByID(ctx context.Context, tx pgx.Tx, categoryID, userID string) (*domain.InvestmentCategory, error)

	// FindInvestmentCategoryByName matches case-insensitively.
	FindInvestmentCategoryByName(ctx context.Context, tx pgx.Tx, name, userID string) (*domain.InvestmentCategory, error)

	SaveInvestmentCategory(ctx context.Context, tx pgx.Tx, category domain.InvestmentCategory) error
}

// InvestmentRepositoryFacade persists investments and their contribution
// history.
type InvestmentRepositoryFacade interface {
	InvestmentCategorySupport

	// ListInvestments returns the owner's investments, date desc, with
	// category and bank names populated.
	ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error)

	// ListInvestmentHistory returns all contribution records, date desc,
	// populated the same way.
	ListInvestmentHistory(ctx context.Context, userID string) ([]domain.InvestmentTransaction, error)

	FindInvestmentByID(ctx context.Context, tx pgx.Tx, investmentID, userID string) (*domain.Investment, error)

	// FindInvestmentForUpdate locks the unique (category, bank, owner) row so
	// concurrent contributions serialize instead of overwriting each other.
	// Returns apperrors.ErrNotFound when no row exists yet.
	FindInvestmentForUpdate(ctx context.Context, tx pgx.Tx, categoryID, bankID, userID string) (*domain.Investment, error)

	SaveInvestment(ctx context.Context, tx pgx.Tx, investment domain.Investment) error

	// AddToInvestment adds a contribution to the cumulative amount and moves
	// the investment date forward.
	AddToInvestment(ctx context.Context, tx pgx.Tx, investmentID string, amount decimal.Decimal, date time.Time) error

	// UpdateInvestment overwrites amount/date directly (manual correction).
	UpdateInvestment(ctx context.Context, tx pgx.Tx, investment domain.Investment) error

	DeleteInvestment(ctx context.Context, tx pgx.Tx, investmentID, userID string) error
	DeleteInvestmentsByBank(ctx context.Context, tx pgx.Tx, bankID, userID string) error

	SaveInvestmentTransaction(ctx context.Context, tx pgx.Tx, txn domain.InvestmentTransaction) error
	DeleteInvestmentTransactions(ctx context.Context, tx pgx.Tx, investmentID, userID string) error
}
