package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bank is a named balance-holding account owned by one user. Its balance is
// only ever mutated through BankRepository.AdjustBalance inside a transaction
// scope, never by a bare field write.
type Bank struct {
	BankID    string
	UserID    string
	Name      string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
