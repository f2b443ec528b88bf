package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Type        TransactionType `db:"type"`
	Amount      float64         `db:"amount"`
	Category    string          `db:"category"`
	Date        time.Time       `db:"date"` // day granularity, stored as DATE
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// Suggested categories per type. Category is free text; these are not
// enforced anywhere.
var (
	IncomeCategories = []string{
		"Salary", "Freelance", "Business", "Investment", "Gift", "Other",
	}
	ExpenseCategories = []string{
		"Food & Dining", "Transportation", "Shopping", "Entertainment",
		"Bills & Utilities", "Healthcare", "Education", "Travel", "Other",
	}
)
