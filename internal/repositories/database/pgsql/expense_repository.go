package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/workdevapi-byte/the-reserve-backend/internal/apperrors"
	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
	portsrepo "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/repositories"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense events.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// ListExpenses returns the owner's expenses with the referencing bank
// populated, sorted by date desc then amount desc.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	query := `
		SELECT e.expense_id, e.user_id, e.bank_id, e.name, e.category, e.amount, e.date,
		       e.created_at, e.updated_at, b.name, b.balance
		FROM expenses e
		JOIN banks b ON b.bank_id = e.bank_id
		WHERE e.user_id = $1
		ORDER BY e.date DESC, e.amount DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for user %s: %w", userID, err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		var e domain.Expense
		err := rows.Scan(
			&e.ExpenseID, &e.UserID, &e.BankID, &e.Name, &e.Category, &e.Amount, &e.Date,
			&e.CreatedAt, &e.UpdatedAt, &e.BankName, &e.BankBalance,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return expenses, nil
}

// FindExpenseByID retrieves one expense for the owner within the
// transaction, locking it so a concurrent update or delete of the same
// event serializes and never reverses a stale amount.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, tx pgx.Tx, expenseID, userID string) (*domain.Expense, error) {
	query := `
		SELECT expense_id, user_id, bank_id, name, category, amount, date, created_at, updated_at
		FROM expenses
		WHERE expense_id = $1 AND user_id = $2
		FOR UPDATE;
	`
	var e domain.Expense
	err := tx.QueryRow(ctx, query, expenseID, userID).Scan(
		&e.ExpenseID, &e.UserID, &e.BankID, &e.Name, &e.Category, &e.Amount, &e.Date,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	return &e, nil
}

// SaveExpense inserts the event record inside the caller's transaction.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, tx pgx.Tx, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (expense_id, user_id, bank_id, name, category, amount, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := tx.Exec(ctx, query,
		expense.ExpenseID, expense.UserID, expense.BankID, expense.Name, expense.Category,
		expense.Amount, expense.Date, expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return mapPgError(err, "failed to save expense "+expense.ExpenseID)
	}
	return nil
}

// UpdateExpense rewrites all mutable fields of the event record.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, tx pgx.Tx, expense domain.Expense) error {
	query := `
		UPDATE expenses
		SET bank_id = $3, name = $4, category = $5, amount = $6, date = $7, updated_at = $8
		WHERE expense_id = $1 AND user_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		expense.ExpenseID, expense.UserID, expense.BankID, expense.Name, expense.Category,
		expense.Amount, expense.Date, expense.UpdatedAt,
	)
	if err != nil {
		return mapPgError(err, "failed to update expense "+expense.ExpenseID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpense removes the event record inside the caller's transaction.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, tx pgx.Tx, expenseID, userID string) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1 AND user_id = $2;`, expenseID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpensesByBank removes every expense referencing the bank (cascade).
func (r *PgxExpenseRepository) DeleteExpensesByBank(ctx context.Context, tx pgx.Tx, bankID, userID string) error {
	_, err := tx.Exec(ctx, `DELETE FROM expenses WHERE bank_id = $1 AND user_id = $2;`, bankID, userID)
	if err != nil {
		return fmt.Errorf("failed to cascade expenses for bank %s: %w", bankID, err)
	}
	return nil
}
