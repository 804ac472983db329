package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/workdevapi-byte/the-reserve-backend/internal/apperrors"
	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
	portsrepo "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/repositories"
)

type PgxBankRepository struct {
	BaseRepository
}

// newPgxBankRepository creates a new repository for bank account data.
func newPgxBankRepository(pool *pgxpool.Pool) portsrepo.BankRepositoryFacade {
	return &PgxBankRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BankRepositoryFacade = (*PgxBankRepository)(nil)

const bankColumns = `bank_id, user_id, name, balance, created_at, updated_at`

func scanBank(row pgx.Row) (*domain.Bank, error) {
	var b domain.Bank
	err := row.Scan(&b.BankID, &b.UserID, &b.Name, &b.Balance, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan bank row: %w", err)
	}
	return &b, nil
}

// SaveBank inserts a new bank.
func (r *PgxBankRepository) SaveBank(ctx context.Context, bank domain.Bank) error {
	query := `
		INSERT INTO banks (bank_id, user_id, name, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		bank.BankID, bank.UserID, bank.Name, bank.Balance, bank.CreatedAt, bank.UpdatedAt,
	)
	if err != nil {
		return mapPgError(err, "failed to save bank "+bank.BankID)
	}
	return nil
}

// FindBankByID retrieves a bank by id, scoped to its owner.
func (r *PgxBankRepository) FindBankByID(ctx context.Context, bankID, userID string) (*domain.Bank, error) {
	query := `SELECT ` + bankColumns + ` FROM banks WHERE bank_id = $1 AND user_id = $2;`
	return scanBank(r.Pool.QueryRow(ctx, query, bankID, userID))
}

// ListBanks retrieves all banks for the owner, newest first.
func (r *PgxBankRepository) ListBanks(ctx context.Context, userID string) ([]domain.Bank, error) {
	query := `SELECT ` + bankColumns + ` FROM banks WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query banks for user %s: %w", userID, err)
	}
	defer rows.Close()

	banks := []domain.Bank{}
	for rows.Next() {
		var b domain.Bank
		if err := rows.Scan(&b.BankID, &b.UserID, &b.Name, &b.Balance, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bank row: %w", err)
		}
		banks = append(banks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank rows: %w", err)
	}
	return banks, nil
}

// UpdateBank updates name and balance of an existing bank. Callers hold the
// row lock via FindBankByIDForUpdate in the same transaction.
func (r *PgxBankRepository) UpdateBank(ctx context.Context, tx pgx.Tx, bank domain.Bank) error {
	query := `
		UPDATE banks
		SET name = $3, balance = $4, updated_at = $5
		WHERE bank_id = $1 AND user_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, query,
		bank.BankID, bank.UserID, bank.Name, bank.Balance, bank.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update bank %s: %w", bank.BankID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindBankByIDForUpdate selects a bank and locks its row for update.
// Must be called within a transaction.
func (r *PgxBankRepository) FindBankByIDForUpdate(ctx context.Context, tx pgx.Tx, bankID, userID string) (*domain.Bank, error) {
	query := `SELECT ` + bankColumns + ` FROM banks WHERE bank_id = $1 AND user_id = $2 FOR UPDATE;`
	return scanBank(tx.QueryRow(ctx, query, bankID, userID))
}

// FindBanksByIDsForUpdate locks several bank rows in one statement. Rows are
// locked in a consistent order by the database, and the method fails with
// ErrNotFound when any requested bank is missing or owned by someone else.
func (r *PgxBankRepository) FindBanksByIDsForUpdate(ctx context.Context, tx pgx.Tx, bankIDs []string, userID string) (map[string]domain.Bank, error) {
	if len(bankIDs) == 0 {
		return map[string]domain.Bank{}, nil
	}

	query := `
		SELECT ` + bankColumns + `
		FROM banks
		WHERE bank_id = ANY($1) AND user_id = $2
		ORDER BY bank_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, bankIDs, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query banks for update: %w", err)
	}
	defer rows.Close()

	banksMap := make(map[string]domain.Bank)
	for rows.Next() {
		var b domain.Bank
		if err := rows.Scan(&b.BankID, &b.UserID, &b.Name, &b.Balance, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan locked bank row: %w", err)
		}
		banksMap[b.BankID] = b
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked bank rows: %w", err)
	}

	requested := make(map[string]struct{}, len(bankIDs))
	for _, id := range bankIDs {
		requested[id] = struct{}{}
	}
	if len(banksMap) != len(requested) {
		missing := []string{}
		for id := range requested {
			if _, found := banksMap[id]; !found {
				missing = append(missing, id)
			}
		}
		return nil, fmt.Errorf("%w: could not lock banks %v", apperrors.ErrNotFound, missing)
	}
	return banksMap, nil
}

// AdjustBalance applies a signed delta to a bank's stored balance as a single
// atomic read-modify-write, returning the post-update bank. Sufficiency is
// the caller's concern; the rules differ per operation.
func (r *PgxBankRepository) AdjustBalance(ctx context.Context, tx pgx.Tx, bankID, userID string, delta decimal.Decimal, now time.Time) (*domain.Bank, error) {
	query := `
		UPDATE banks
		SET balance = balance + $3, updated_at = $4
		WHERE bank_id = $1 AND user_id = $2
		RETURNING ` + bankColumns + `;
	`
	return scanBank(tx.QueryRow(ctx, query, bankID, userID, delta, now))
}

// DeleteBank removes the bank row. Event cascades run before this in the
// same transaction.
func (r *PgxBankRepository) DeleteBank(ctx context.Context, tx pgx.Tx, bankID, userID string) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM banks WHERE bank_id = $1 AND user_id = $2;`, bankID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete bank %s: %w", bankID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
