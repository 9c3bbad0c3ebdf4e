package domain

import "time"

// ExpenseType distinguishes money coming in from money going out.
type ExpenseType string

const (
	TypeIncome  ExpenseType = "INCOME"
	TypeExpense ExpenseType = "EXPENSE"
)

// Valid reports whether t is one of the known expense types.
func (t ExpenseType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Category groups expenses. Categories are namespaced per owning user; two
// users can each have a "Groceries" category.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Expense is a single dated money movement belonging to one user.
type Expense struct {
	ID          string      `json:"id"`
	Date        string      `json:"date"` // YYYY-MM-DD
	CategoryID  string      `json:"category_id"`
	Description string      `json:"description,omitempty"`
	Amount      float64     `json:"amount"`
	Type        ExpenseType `json:"type"`
	CreditCard  bool        `json:"credit_card"`
	UserID      string      `json:"-"`
	CreatedAt   time.Time   `json:"created_at"`
}

// CreditCardSummary reports how much of the user's credit-card limit is
// consumed by credit-card expenses.
type CreditCardSummary struct {
	Limit float64 `json:"limit"`
	Spent float64 `json:"spent"`
	Left  float64 `json:"left"`
}
