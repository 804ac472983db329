package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction is the sign a money event applies to its bank balance when the
// event is created. Reversal is always the negation, so expense and income
// share one apply/reverse sequence instead of duplicating it per entity.
type Direction int

const (
	// Debit decreases the bank balance (expenses, investment contributions).
	Debit Direction = iota
	// Credit increases the bank balance (income).
	Credit
)

// Delta returns the signed balance change for applying an event of the given
// amount in this direction.
func (d Direction) Delta(amount decimal.Decimal) decimal.Decimal {
	if d == Debit {
		return amount.Neg()
	}
	return amount
}

// RequiresFunds reports whether applying an event in this direction needs a
// sufficiency check on the target bank. Credits and reversals never do.
func (d Direction) RequiresFunds() bool {
	return d == Debit
}

// Expense is a money event that decreases its bank's balance by Amount.
type Expense struct {
	ExpenseID string
	UserID    string
	BankID    string
	Name      string
	Category  string
	Amount    decimal.Decimal
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// Populated on reads.
	BankName    string
	BankBalance decimal.Decimal
}

// Income is a money event that increases its bank's balance by Amount.
// Source mirrors Expense.Category (the original data model names it so).
type Income struct {
	IncomeID  string
	UserID    string
	BankID    string
	Name      string
	Source    string
	Amount    decimal.Decimal
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// Populated on reads.
	BankName    string
	BankBalance decimal.Decimal
}
