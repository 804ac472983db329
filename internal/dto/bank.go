package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
)

// CreateBankRequest defines the data needed to create a new bank account.
type CreateBankRequest struct {
	Name    string          `json:"name" binding:"required,notblank"`
	Balance decimal.Decimal `json:"balance"` // optional opening balance, defaults to zero
}

// UpdateBankRequest is a partial update; nil fields are left untouched.
type UpdateBankRequest struct {
	Name    *string          `json:"name"`
	Balance *decimal.Decimal `json:"balance"`
}

// BankResponse defines the data returned for a bank.
type BankResponse struct {
	BankID    string          `json:"bankId"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// BankSummary is the linked-account shape attached to money events:
// id, name, and post-update balance.
type BankSummary struct {
	BankID  string          `json:"bankId"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// ToBankResponse converts a domain.Bank to BankResponse.
func ToBankResponse(b *domain.Bank) BankResponse {
	return BankResponse{
		BankID:    b.BankID,
		Name:      b.Name,
		Balance:   b.Balance,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToListBankResponse converts a slice of domain.Bank to BankResponse DTOs.
func ToListBankResponse(banks []domain.Bank) []BankResponse {
	res := make([]BankResponse, len(banks))
	for i, b := range banks {
		res[i] = ToBankResponse(&b)
	}
	return res
}

// ToBankSummary converts a domain.Bank to its summary shape.
func ToBankSummary(b *domain.Bank) BankSummary {
	return BankSummary{BankID: b.BankID, Name: b.Name, Balance: b.Balance}
}
