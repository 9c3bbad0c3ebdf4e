package ports

import (
	"context"

	"github.com/fintrack/finance-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login accepts a username or an email as identifier and returns a
	// signed bearer token on success.
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
}
