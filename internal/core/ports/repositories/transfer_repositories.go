package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
)

// TransferRepositoryFacade persists transfer events.
type TransferRepositoryFacade interface {
	// ListTransfers returns the owner's transfers, date desc, with both bank
	// names populated.
	ListTransfers(ctx context.Context, userID string) ([]domain.Transfer, error)

	FindTransferByID(ctx context.Context, tx pgx.Tx, transferID, userID string) (*domain.Transfer, error)

	// FindTransfersByBank returns every transfer with the bank on either
	// side, for the bank-deletion cascade.
	FindTransfersByBank(ctx context.Context, tx pgx.Tx, bankID, userID string) ([]domain.Transfer, error)

	SaveTransfer(ctx context.Context, tx pgx.Tx, transfer domain.Transfer) error
	DeleteTransfer(ctx context.Context, tx pgx.Tx, transferID, userID string) error
	DeleteTransfersByBank(ctx context.Context, tx pgx.Tx, bankID, userID string) error
}
