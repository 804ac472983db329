package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
)

// CreateIncomeRequest defines the data needed to record an income entry.
type CreateIncomeRequest struct {
	Name   string          `json:"name" binding:"required,notblank"`
	Source string          `json:"source" binding:"required,notblank"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	BankID string          `json:"bankId" binding:"required"`
	Date   time.Time       `json:"date" binding:"required"`
}

// UpdateIncomeRequest replaces every field of an existing income entry.
type UpdateIncomeRequest struct {
	Name   string          `json:"name" binding:"required,notblank"`
	Source string          `json:"source" binding:"required,notblank"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	BankID string          `json:"bankId" binding:"required"`
	Date   time.Time       `json:"date" binding:"required"`
}

// IncomeResponse is an income entry with its bank's post-update state attached.
type IncomeResponse struct {
	IncomeID  string          `json:"incomeId"`
	Name      string          `json:"name"`
	Source    string          `json:"source"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Bank      BankSummary     `json:"bank"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ToIncomeResponse converts a domain.Income plus its bank to the response DTO.
func ToIncomeResponse(in *domain.Income, bank BankSummary) IncomeResponse {
	return IncomeResponse{
		IncomeID:  in.IncomeID,
		Name:      in.Name,
		Source:    in.Source,
		Amount:    in.Amount,
		Date:      in.Date,
		Bank:      bank,
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
	}
}

// ToListIncomeResponse converts listed income entries with their populated
// bank fields.
func ToListIncomeResponse(incomes []domain.Income) []IncomeResponse {
	res := make([]IncomeResponse, len(incomes))
	for i, in := range incomes {
		res[i] = ToIncomeResponse(&in, BankSummary{
			BankID:  in.BankID,
			Name:    in.BankName,
			Balance: in.BankBalance,
		})
	}
	return res
}
