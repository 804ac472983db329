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

type PgxIncomeRepository struct {
	BaseRepository
}

// newPgxIncomeRepository creates a new repository for income events.
func newPgxIncomeRepository(pool *pgxpool.Pool) portsrepo.IncomeRepositoryFacade {
	return &PgxIncomeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.IncomeRepositoryFacade = (*PgxIncomeRepository)(nil)

// ListIncomes returns the owner's income entries with the referencing bank
// populated, sorted by date desc then amount desc.
func (r *PgxIncomeRepository) ListIncomes(ctx context.Context, userID string) ([]domain.Income, error) {
	query := `
		SELECT i.income_id, i.user_id, i.bank_id, i.name, i.source, i.amount, i.date,
		       i.created_at, i.updated_at, b.name, b.balance
		FROM incomes i
		JOIN banks b ON b.bank_id = i.bank_id
		WHERE i.user_id = $1
		ORDER BY i.date DESC, i.amount DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query incomes for user %s: %w", userID, err)
	}
	defer rows.Close()

	incomes := []domain.Income{}
	for rows.Next() {
		var in domain.Income
		err := rows.Scan(
			&in.IncomeID, &in.UserID, &in.BankID, &in.Name, &in.Source, &in.Amount, &in.Date,
			&in.CreatedAt, &in.UpdatedAt, &in.BankName, &in.BankBalance,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan income row: %w", err)
		}
		incomes = append(incomes, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating income rows: %w", err)
	}
	return incomes, nil
}

// FindIncomeByID retrieves one income entry for the owner within the
// transaction, locking it so a concurrent update or delete of the same
// event serializes and never reverses a stale amount.
func (r *PgxIncomeRepository) FindIncomeByID(ctx context.Context, tx pgx.Tx, incomeID, userID string) (*domain.Income, error) {
	query := `
		SELECT income_id, user_id, bank_id, name, source, amount, date, created_at, updated_at
		FROM incomes
		WHERE income_id = $1 AND user_id = $2
		FOR UPDATE;
	`
	var in domain.Income
	err := tx.QueryRow(ctx, query, incomeID, userID).Scan(
		&in.IncomeID, &in.UserID, &in.BankID, &in.Name, &in.Source, &in.Amount, &in.Date,
		&in.CreatedAt, &in.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find income %s: %w", incomeID, err)
	}
	return &in, nil
}

// SaveIncome inserts the event record inside the caller's transaction.
func (r *PgxIncomeRepository) SaveIncome(ctx context.Context, tx pgx.Tx, income domain.Income) error {
	query := `
		INSERT INTO incomes (income_id, user_id, bank_id, name, source, amount, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := tx.Exec(ctx, query,
		income.IncomeID, income.UserID, income.BankID, income.Name, income.Source,
		income.Amount, income.Date, income.CreatedAt, income.UpdatedAt,
	)
	if err != nil {
		return mapPgError(err, "failed to save income "+income.IncomeID)
	}
	return nil
}

// UpdateIncome rewrites all mutable fields of the event record.
func (r *PgxIncomeRepository) UpdateIncome(ctx context.Context, tx pgx.Tx, income domain.Income) error {
	query := `
		UPDATE incomes
		SET bank_id = $3, name = $4, source = $5, amount = $6, date = $7, updated_at = $8
		WHERE income_id = $1 AND user_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		income.IncomeID, income.UserID, income.BankID, income.Name, income.Source,
		income.Amount, income.Date, income.UpdatedAt,
	)
	if err != nil {
		return mapPgError(err, "failed to update income "+income.IncomeID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteIncome removes the event record inside the caller's transaction.
func (r *PgxIncomeRepository) DeleteIncome(ctx context.Context, tx pgx.Tx, incomeID, userID string) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM incomes WHERE income_id = $1 AND user_id = $2;`, incomeID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete income %s: %w", incomeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteIncomesByBank removes every income entry referencing the bank (cascade).
func (r *PgxIncomeRepository) DeleteIncomesByBank(ctx context.Context, tx pgx.Tx, bankID, userID string) error {
	_, err := tx.Exec(ctx, `DELETE FROM incomes WHERE bank_id = $1 AND user_id = $2;`, bankID, userID)
	if err != nil {
		return fmt.Errorf("failed to cascade incomes for bank %s: %w", bankID, err)
	}
	return nil
}
