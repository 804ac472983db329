package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/workdevapi-byte/the-reserve-backend/internal/core/domain"
)

// ContributeInvestmentRequest records a contribution. Exactly one of
// CategoryID / NewCategoryName must be provided; a new name is matched
// case-insensitively against existing categories before creating one.
type ContributeInvestmentRequest struct {
	CategoryID      string          `json:"categoryId"`
	NewCategoryName string          `json:"newCategoryName"`
	BankID          string          `json:"bankId" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Name            string          `json:"name" binding:"required,notblank"`
	Notes           string          `json:"notes"`
	Date            *time.Time      `json:"date"`
}

// CorrectInvestmentRequest is the manual-correction escape hatch: it
// overwrites the cumulative amount and/or date without moving money.
type CorrectInvestmentRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Date   *time.Time       `json:"date"`
}

// CreateInvestmentCategoryRequest creates a named investment category.
type CreateInvestmentCategoryRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

// InvestmentCategoryResponse defines the data returned for a category.
type InvestmentCategoryResponse struct {
	CategoryID string    `json:"categoryId"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
}

// InvestmentResponse is an investment with category and bank populated.
type InvestmentResponse struct {
	InvestmentID string          `json:"investmentId"`
	Category     struct {
		CategoryID string `json:"categoryId"`
		Name       string `json:"name"`
	} `json:"category"`
	Bank      BankSummary     `json:"bank"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}

// InvestmentTransactionResponse is one history row.
type InvestmentTransactionResponse struct {
	TransactionID string          `json:"transactionId"`
	InvestmentID  string          `json:"investmentId"`
	Category      string          `json:"category"`
	BankID        string          `json:"bankId"`
	BankName      string          `json:"bankName"`
	Amount        decimal.Decimal `json:"amount"`
	Name          string          `json:"name"`
	Notes         string          `json:"notes"`
	Date          time.Time       `json:"date"`
}

// ToInvestmentCategoryResponse converts a domain category.
func ToInvestmentCategoryResponse(c *domain.InvestmentCategory) InvestmentCategoryResponse {
	return InvestmentCategoryResponse{CategoryID: c.CategoryID, Name: c.Name, CreatedAt: c.CreatedAt}
}

// ToListInvestmentCategoryResponse converts a slice of categories.
func ToListInvestmentCategoryResponse(cats []domain.InvestmentCategory) []InvestmentCategoryResponse {
	res := make([]InvestmentCategoryResponse, len(cats))
	for i, c := range cats {
		res[i] = ToInvestmentCategoryResponse(&c)
	}
	return res
}

// ToInvestmentResponse converts a populated domain.Investment. BankBalance
// comes from the joined bank row on reads; mutating paths overwrite it with
// the post-update balance before converting.
func ToInvestmentResponse(inv *domain.Investment) InvestmentResponse {
	resp := InvestmentResponse{
		InvestmentID: inv.InvestmentID,
		Bank:         BankSummary{BankID: inv.BankID, Name: inv.BankName, Balance: inv.BankBalance},
		Amount:       inv.Amount,
		Date:         inv.Date,
		CreatedAt:    inv.CreatedAt,
	}
	resp.Category.CategoryID = inv.CategoryID
	resp.Category.Name = inv.CategoryName
	return resp
}

// ToListInvestmentResponse converts listed investments.
func ToListInvestmentResponse(invs []domain.Investment) []InvestmentResponse {
	res := make([]InvestmentResponse, len(invs))
	for i, inv := range invs {
		res[i] = ToInvestmentResponse(&inv)
	}
	return res
}

// ToListInvestmentHistoryResponse converts listed history rows.
func ToListInvestmentHistoryResponse(txns []domain.InvestmentTransaction) []InvestmentTransactionResponse {
	res := make([]InvestmentTransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = InvestmentTransactionResponse{
			TransactionID: t.TransactionID,
			InvestmentID:  t.InvestmentID,
			Category:      t.CategoryName,
			BankID:        t.BankID,
			BankName:      t.BankName,
			Amount:        t.Amount,
			Name:          t.Name,
			Notes:         t.Notes,
			Date:          t.Date,
		}
	}
	return res
}
