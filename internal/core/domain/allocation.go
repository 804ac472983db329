package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Allocation is an advisory budget marker: a planned amount of a bank's
// balance earmarked for a category. Unique per (user, bank, category).
// Allocations never touch bank balances.
type Allocation struct {
	AllocationID string
	UserID       string
	BankID       string
	CategoryID   string
	Amount       decimal.Decimal
	UpdatedAt    time.Time

	// Populated on reads.
	CategoryName string
}
