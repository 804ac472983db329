package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentCategory groups investments by name, unique per user
// (case-insensitive).
type InvestmentCategory struct {
	CategoryID string
	UserID     string
	Name       string
	CreatedAt  time.Time
}

// Investment is the cumulative position per (user, category, bank).
// Contributions aggregate into the existing row; they never create a second
// row for the same triple.
type Investment struct {
	InvestmentID string
	UserID       string
	CategoryID   string
	BankID       string
	Amount       decimal.Decimal
	Date         time.Time
	CreatedAt    time.Time

	// Populated on reads.
	CategoryName string
	BankName     string
	BankBalance  decimal.Decimal
}

// InvestmentTransaction is the append-only history of individual
// contributions composing an Investment's cumulative amount.
type InvestmentTransaction struct {
	TransactionID string
	InvestmentID  string
	UserID        string
	BankID        string
	Amount        decimal.Decimal
	Name          string
	Notes         string
	Date          time.Time
	CreatedAt     time.Time

	// Populated on reads.
	CategoryName string
	BankName     string
}
