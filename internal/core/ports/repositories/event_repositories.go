package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
)

// ExpenseRepositoryFacade persists expense events. All money-moving writes
// take the enclosing transaction explicitly.
type ExpenseRepositoryFacade interface {
	// ListExpenses returns the owner's expenses, date desc then amount desc.
	ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error)

	// FindExpenseByID retrieves one expense for the owner, within the
	// transaction so the row stays stable while its effect is reversed.
	FindExpenseByID(ctx context.Context, tx pgx.Tx, expenseID, userID string) (*domain.Expense, error)

	SaveExpense(ctx context.Context, tx pgx.Tx, expense domain.Expense) error
	UpdateExpense(ctx context.Context, tx pgx.Tx, expense domain.Expense) error
	DeleteExpense(ctx context.Context, tx pgx.Tx, expenseID, userID string) error

	// DeleteExpensesByBank removes all expenses referencing a bank (cascade).
	DeleteExpensesByBank(ctx context.Context, tx pgx.Tx, bankID, userID string) error
}

// IncomeRepositoryFacade persists income events, mirroring the expense shape.
type IncomeRepositoryFacade interface {
	ListIncomes(ctx context.Context, userID string) ([]domain.Income, error)
	FindIncomeByID(ctx context.Context, tx pgx.Tx, incomeID, userID string) (*domain.Income, error)

	SaveIncome(ctx context.Context, tx pgx.Tx, income domain.Income) error
	UpdateIncome(ctx context.Context, tx pgx.Tx, income domain.Income) error
	DeleteIncome(ctx context.Context, tx pgx.Tx, incomeID, userID string) error

	DeleteIncomesByBank(ctx context.Context, tx pgx.Tx, bankID, userID string) error
}
