package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/workdevapi-byte/the-reserve-backend/internal/apperrors"
	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
	portsrepo "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/repositories"
	portssvc "github.com/workdevapi-byte/the-reserve-backend/internal/core/ports/services"
	"github.com/workdevapi-byte/the-reserve-backend/internal/dto"
)

// transferService moves money between two banks owned by the same user.
type transferService struct {
	ledgerCore
	transferRepo portsrepo.TransferRepositoryFacade
}

// NewTransferService creates a new transfer service.
func NewTransferService(repos portsrepo.RepositoryProvider) portssvc.TransferSvcFacade {
	return &transferService{
		ledgerCore:   ledgerCore{txm: repos.Tx, bankRepo: repos.BankRepo},
		transferRepo: repos.TransferRepo,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// CreateTransfer debits the source and credits the destination atomically.
// Both rows are locked in one ordered statement, so two opposing transfers
// running concurrently serialize instead of deadlocking.
func (s *transferService) CreateTransfer(ctx context.Context, req dto.CreateTransferRequest, userID string) (*dto.TransferCreateResponse, error) {
	if err := checkAmount(req.Amount); err != nil {
		return nil, err
	}
	if req.FromBankID == req.ToBankID {
		return nil, fmt.Errorf("%w: source and destination banks must differ", apperrors.ErrValidation)
	}

	now := time.Now()
	transfer := domain.Transfer{
		TransferID: uuid.NewString(),
		UserID:     userID,
		FromBankID: req.FromBankID,
		ToBankID:   req.ToBankID,
		Amount:     req.Amount,
		Notes:      req.Notes,
		Date:       req.Date,
		CreatedAt:  now,
	}

	var fromBank, toBank *domain.Bank
	err := s.txm.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		banks, err := s.bankRepo.FindBanksByIDsForUpdate(ctx, tx, []string{req.FromBankID, req.ToBankID}, userID)
		if err != nil {
			return err
		}

		source := banks[req.FromBankID]
		if source.Balance.LessThan(req.Amount) {
			return fmt.Errorf("%w: bank %s holds %s, transfer needs %s",
				apperrors.ErrInsufficientFunds, source.Name, source.Balance.String(), req.Amount.String())
		}

		if fromBank, err = s.bankRepo.AdjustBalance(ctx, tx, req.FromBankID, userID, req.Amount.Neg(), now); err != nil {
			return err
		}
		if toBank, err = s.bankRepo.AdjustBalance(ctx, tx, req.ToBankID, userID, req.Amount, now); err != nil {
			return err
		}
		return s.transferRepo.SaveTransfer(ctx, tx, transfer)
	})
	if err != nil {
		s.LogError(ctx, err, "failed to create transfer",
			"from_bank_id", req.FromBankID, "to_bank_id", req.ToBankID)
		return nil, err
	}

	transfer.FromBankName = fromBank.Name
	transfer.ToBankName = toBank.Name
	return &dto.TransferCreateResponse{
		TransferResponse: dto.ToTransferResponse(&transfer),
		FromBankBalance:  fromBank.Balance,
		ToBankBalance:    toBank.Balance,
	}, nil
}

func (s *transferService) ListTransfers(ctx context.Context, userID string) ([]dto.TransferResponse, error) {
	transfers, err := s.transferRepo.ListTransfers(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to list transfers")
		return nil, err
	}
	return dto.ToListTransferResponse(transfers), nil
}

// DeleteTransfer reverses the movement: the source gets its money back and
// the destination gives it up, even if that leaves the destination negative.
func (s *transferService) DeleteTransfer(ctx context.Context, transferID, userID string) error {
	now := time.Now()
	return s.txm.RunInTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		existing, err := s.transferRepo.FindTransferByID(ctx, tx, transferID, userID)
		if err != nil {
			return err
		}

		if _, err := s.bankRepo.FindBanksByIDsForUpdate(ctx, tx, []string{existing.FromBankID, existing.ToBankID}, userID); err != nil {
			return err
		}
		if _, err := s.bankRepo.AdjustBalance(ctx, tx, existing.FromBankID, userID, existing.Amount, now); err != nil {
			return err
		}
		if _, err := s.bankRepo.AdjustBalance(ctx, tx, existing.ToBankID, userID, existing.Amount.Neg(), now); err != nil {
			return err
		}
		return s.transferRepo.DeleteTransfer(ctx, tx, transferID, userID)
	})
}
