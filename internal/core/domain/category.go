package domain

import "time"

// CategoryType distinguishes expense labels from income labels.
type CategoryType string

const (
	CategoryExpense CategoryType = "expense"
	CategoryIncome  CategoryType = "income"
)

// Category is a user-defined label for expenses or income. Expense.Category
// and Income.Source remain opaque strings; this collection only backs the
// label picker and the allocation references.
type Category struct {
	CategoryID string
	UserID     string
	Name       string
	Type       CategoryType
	CreatedAt  time.Time
}
