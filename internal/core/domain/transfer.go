package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer moves Amount from one bank to another as one atomic pair.
// Invariant: FromBankID != ToBankID.
type Transfer struct {
	TransferID string
	UserID     string
	FromBankID string
	ToBankID   string
	Amount     decimal.Decimal
	Notes      string
	Date       time.Time
	CreatedAt  time.Time

	// Populated on reads for display.
	FromBankName string
	ToBankName   string
}
