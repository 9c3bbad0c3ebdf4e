package ports

import (
	"context"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// CreateExpenseInput carries all data needed to record an expense. Exactly
// one of CategoryID or CategoryName must be set; a CategoryName that does not
// exist yet is created for the user on the fly.
type CreateExpenseInput struct {
	Date         string
	CategoryID   string
	CategoryName string
	Description  string
	Amount       float64
	Type         string
	CreditCard   bool
}

// ExpenseService exposes the expense operations available to an
// authenticated user, identified by username.
type ExpenseService interface {
	List(ctx context.Context, username string) ([]domain.Expense, error)
	Create(ctx context.Context, username string, input CreateExpenseInput) (*domain.Expense, error)
	CreditCardSummary(ctx context.Context, username string) (*domain.CreditCardSummary, error)
	SetCreditCardLimit(ctx context.Context, username string, limit float64) error
}
