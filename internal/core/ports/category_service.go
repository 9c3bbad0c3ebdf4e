package ports

import (
	"context"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// CategoryService exposes the category operations available to an
// authenticated user, identified by username.
type CategoryService interface {
	List(ctx context.Context, username string) ([]domain.Category, error)
	Create(ctx context.Context, username, name string) (*domain.Category, error)
}
