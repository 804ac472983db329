package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Name     string          `json:"name" binding:"required,notblank"`
	Category string          `json:"category" binding:"required,notblank"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	BankID   string          `json:"bankId" binding:"required"`
	Date     time.Time       `json:"date" binding:"required"`
}

// UpdateExpenseRequest replaces every field of an existing expense; the
// balance effect of the original is reversed before the new one is applied.
type UpdateExpenseRequest struct {
	Name     string          `json:"name" binding:"required,notblank"`
	Category string          `json:"category" binding:"required,notblank"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	BankID   string          `json:"bankId" binding:"required"`
	Date     time.Time       `json:"date" binding:"required"`
}

// ExpenseResponse is an expense with its bank's post-update state attached.
type ExpenseResponse struct {
	ExpenseID string          `json:"expenseId"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Bank      BankSummary     `json:"bank"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ToExpenseResponse converts a domain.Expense plus its bank to the response DTO.
func ToExpenseResponse(e *domain.Expense, bank BankSummary) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID: e.ExpenseID,
		Name:      e.Name,
		Category:  e.Category,
		Amount:    e.Amount,
		Date:      e.Date,
		Bank:      bank,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ToListExpenseResponse converts listed expenses, using the bank fields the
// repository populated on each row.
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = ToExpenseResponse(&e, BankSummary{
			BankID:  e.BankID,
			Name:    e.BankName,
			Balance: e.BankBalance,
		})
	}
	return res
}
