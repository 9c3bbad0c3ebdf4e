package ports

import (
	"context"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// ExpenseRepository persists expenses scoped to their owning user.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) (*domain.Expense, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Expense, error)
	// SumCreditCardSpent totals the amounts of the user's credit-card
	// expenses of type EXPENSE.
	SumCreditCardSpent(ctx context.Context, userID string) (float64, error)
}
