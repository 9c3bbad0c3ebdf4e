package ports

import (
	"context"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// CategoryRepository persists expense categories. All lookups are scoped to
// the owning user.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindByName(ctx context.Context, userID, name string) (*domain.Category, error)
}
