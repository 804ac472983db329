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

type PgxTransferRepository struct {
	BaseRepository
}

// newPgxTransferRepository creates a new repository for transfer events.
func newPgxTransferRepository(pool *pgxpool.Pool) portsrepo.TransferRepositoryFacade {
	return &PgxTransferRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

const transferSelect = `
	SELECT t.transfer_id, t.user_id, t.from_bank_id, t.to_bank_id, t.amount, t.notes, t.date,
	       t.created_at, fb.name, tb.name
	FROM transfers t
	JOIN banks fb ON fb.bank_id = t.from_bank_id
	JOIN banks tb ON tb.bank_id = t.to_bank_id
`

func scanTransfer(row pgx.Row) (*domain.Transfer, error) {
	var t domain.Transfer
	err := row.Scan(
		&t.TransferID, &t.UserID, &t.FromBankID, &t.ToBankID, &t.Amount, &t.Notes, &t.Date,
		&t.CreatedAt, &t.FromBankName, &t.ToBankName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan transfer row: %w", err)
	}
	return &t, nil
}

// ListTransfers returns the owner's transfers with both bank names, date desc.
func (r *PgxTransferRepository) ListTransfers(ctx context.Context, userID string) ([]domain.Transfer, error) {
	query := transferSelect + ` WHERE t.user_id = $1 ORDER BY t.date DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers for user %s: %w", userID, err)
	}
	defer rows.Close()

	transfers := []domain.Transfer{}
	for rows.Next() {
		var t domain.Transfer
		err := rows.Scan(
			&t.TransferID, &t.UserID, &t.FromBankID, &t.ToBankID, &t.Amount, &t.Notes, &t.Date,
			&t.CreatedAt, &t.FromBankName, &t.ToBankName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer row: %w", err)
		}
		transfers = append(transfers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transfer rows: %w", err)
	}
	return transfers, nil
}

// FindTransferByID retrieves one transfer for the owner within the transaction.
func (r *PgxTransferRepository) FindTransferByID(ctx context.Context, tx pgx.Tx, transferID, userID string) (*domain.Transfer, error) {
	query := transferSelect + ` WHERE t.transfer_id = $1 AND t.user_id = $2;`
	return scanTransfer(tx.QueryRow(ctx, query, transferID, userID))
}

// FindTransfersByBank returns every transfer touching the bank on either
// side, for the bank-deletion cascade.
func (r *PgxTransferRepository) FindTransfersByBank(ctx context.Context, tx pgx.Tx, bankID, userID string) ([]domain.Transfer, error) {
	query := transferSelect + ` WHERE (t.from_bank_id = $1 OR t.to_bank_id = $1) AND t.user_id = $2;`
	rows, err := tx.Query(ctx, query, bankID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers for bank %s: %w", bankID, err)
	}
	defer rows.Close()

	transfers := []domain.Transfer{}
	for rows.Next() {
		var t domain.Transfer
		err := rows.Scan(
			&t.TransferID, &t.UserID, &t.FromBankID, &t.ToBankID, &t.Amount, &t.Notes, &t.Date,
			&t.CreatedAt, &t.FromBankName, &t.ToBankName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer row: %w", err)
		}
		transfers = append(transfers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transfer rows: %w", err)
	}
	return transfers, nil
}

// SaveTransfer inserts the transfer record inside the caller's transaction.
func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, tx pgx.Tx, transfer domain.Transfer) error {
	query := `
		INSERT INTO transfers (transfer_id, user_id, from_bank_id, to_bank_id, amount, notes, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		transfer.TransferID, transfer.UserID, transfer.FromBankID, transfer.ToBankID,
		transfer.Amount, transfer.Notes, transfer.Date, transfer.CreatedAt,
	)
	if err != nil {
		return mapPgError(err, "failed to save transfer "+transfer.TransferID)
	}
	return nil
}

// DeleteTransfer removes the transfer record inside the caller's transaction.
func (r *PgxTransferRepository) DeleteTransfer(ctx context.Context, tx pgx.Tx, transferID, userID string) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM transfers WHERE transfer_id = $1 AND user_id = $2;`, transferID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transfer %s: %w", transferID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransfersByBank removes every transfer touching the bank (cascade).
func (r *PgxTransferRepository) DeleteTransfersByBank(ctx context.Context, tx pgx.Tx, bankID, userID string) error {
	_, err := tx.Exec(ctx,
		`DELETE FROM transfers WHERE (from_bank_id = $1 OR to_bank_id = $1) AND user_id = $2;`,
		bankID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to cascade transfers for bank %s: %w", bankID, err)
	}
	return nil
}
