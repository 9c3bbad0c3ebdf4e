package ports

import (
	"context"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateCreditCardLimit(ctx context.Context, userID string, limit float64) error
}

// RoleRepository persists roles. GetOrCreate must be idempotent so that
// concurrent registrations cannot create duplicate roles.
type RoleRepository interface {
	GetOrCreate(ctx context.Context, name string) (*domain.Role, error)
}
