package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

// ExpenseService implements user-scoped expense operations and the
// credit-card spending summary.
type ExpenseService struct {
	expenses   ports.ExpenseRepository
	categories ports.CategoryRepository
	users      ports.UserRepository
	logger     zerolog.Logger
}

func NewExpenseService(expenses ports.ExpenseRepository, categories ports.CategoryRepository, users ports.UserRepository, logger zerolog.Logger) *ExpenseService {
	return &ExpenseService{expenses: expenses, categories: categories, users: users, logger: logger}
}

func (s *ExpenseService) List(ctx context.Context, username string) ([]domain.Expense, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.expenses.FindByUser(ctx, user.ID)
}

func (s *ExpenseService) Create(ctx context.Context, username string, input ports.CreateExpenseInput) (*domain.Expense, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	expenseType := domain.ExpenseType(input.Type)
	if !expenseType.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, domain.ErrInvalidInput
	}

	category, err := s.resolveCategory(ctx, user, input)
	if err != nil {
		return nil, err
	}

	expense := &domain.Expense{
		Date:        input.Date,
		CategoryID:  category.ID,
		Description: input.Description,
		Amount:      input.Amount,
		Type:        expenseType,
		CreditCard:  input.CreditCard,
		UserID:      user.ID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.expenses.Create(ctx, expense)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("username", username).
		Str("category", category.Name).
		Float64("amount", created.Amount).
		Str("type", string(created.Type)).
		Msg("expense recorded")

	return created, nil
}

// resolveCategory finds the category referenced by the input. A CategoryID
// must name an existing category owned by the user; a CategoryName that does
// not exist yet is created on the fly.
func (s *ExpenseService) resolveCategory(ctx context.Context, user *domain.User, input ports.CreateExpenseInput) (*domain.Category, error) {
	switch {
	case input.CategoryID != "":
		category, err := s.categories.FindByID(ctx, input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category.UserID != user.ID {
			return nil, domain.ErrForbidden
		}
		return category, nil

	case strings.TrimSpace(input.CategoryName) != "":
		name := strings.TrimSpace(input.CategoryName)
		category, err := s.categories.FindByName(ctx, user.ID, name)
		if err == nil {
			return category, nil
		}
		if !errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, err
		}
		return s.categories.Create(ctx, &domain.Category{
			Name:      name,
			UserID:    user.ID,
			CreatedAt: time.Now().UTC(),
		})

	default:
		return nil, domain.ErrInvalidInput
	}
}

func (s *ExpenseService) CreditCardSummary(ctx context.Context, username string) (*domain.CreditCardSummary, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	spent, err := s.expenses.SumCreditCardSpent(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	var limit float64
	if user.CreditCardLimit != nil {
		limit = *user.CreditCardLimit
	}

	return &domain.CreditCardSummary{
		Limit: limit,
		Spent: spent,
		Left:  limit - spent,
	}, nil
}

func (s *ExpenseService) SetCreditCardLimit(ctx context.Context, username string, limit float64) error {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.users.UpdateCreditCardLimit(ctx, user.ID, limit)
}
