package domain

import "github.com/shopspring/decimal"

// CategoryTotal is an aggregation row: total expense amount per category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}
