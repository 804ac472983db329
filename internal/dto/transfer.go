package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
)

// CreateTransferRequest defines the data needed to move money between banks.
type CreateTransferRequest struct {
	FromBankID string          `json:"fromBankId" binding:"required"`
	ToBankID   string          `json:"toBankId" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Notes      string          `json:"notes"`
	Date       time.Time       `json:"date" binding:"required"`
}

// TransferBankRef names one side of a transfer.
type TransferBankRef struct {
	BankID string `json:"bankId"`
	Name   string `json:"name"`
}

// TransferResponse defines the data returned for a transfer.
type TransferResponse struct {
	TransferID string          `json:"transferId"`
	FromBank   TransferBankRef `json:"fromBank"`
	ToBank     TransferBankRef `json:"toBank"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes"`
	Date       time.Time       `json:"date"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// TransferCreateResponse additionally carries both post-update balances.
type TransferCreateResponse struct {
	TransferResponse
	FromBankBalance decimal.Decimal `json:"fromBankBalance"`
	ToBankBalance   decimal.Decimal `json:"toBankBalance"`
}

// ToTransferResponse converts a domain.Transfer to its response DTO.
func ToTransferResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		TransferID: t.TransferID,
		FromBank:   TransferBankRef{BankID: t.FromBankID, Name: t.FromBankName},
		ToBank:     TransferBankRef{BankID: t.ToBankID, Name: t.ToBankName},
		Amount:     t.Amount,
		Notes:      t.Notes,
		Date:       t.Date,
		CreatedAt:  t.CreatedAt,
	}
}

// ToListTransferResponse converts a slice of transfers.
func ToListTransferResponse(transfers []domain.Transfer) []TransferResponse {
	res := make([]TransferResponse, len(transfers))
	for i, t := range transfers {
		res[i] = ToTransferResponse(&t)
	}
	return res
}
