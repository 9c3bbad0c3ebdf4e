package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

// CategoryService implements per-user category operations. Category names
// are namespaced by owner: two users can each have a "Groceries" category.
type CategoryService struct {
	categories ports.CategoryRepository
	users      ports.UserRepository
	logger     zerolog.Logger
}

func NewCategoryService(categories ports.CategoryRepository, users ports.UserRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, users: users, logger: logger}
}

func (s *CategoryService) List(ctx context.Context, username string) ([]domain.Category, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.categories.FindByUser(ctx, user.ID)
}

func (s *CategoryService) Create(ctx context.Context, username, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	category := &domain.Category{
		Name:      name,
		UserID:    user.ID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.categories.Create(ctx, category)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Str("category", name).Msg("category created")
	return created, nil
}
