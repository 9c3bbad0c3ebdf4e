package ports

import "context"

// LoginThrottle limits repeated login attempts per identifier.
type LoginThrottle interface {
	// Allow records an attempt and reports whether it is within the
	// configured window budget.
	Allow(ctx context.Context, identifier string) (bool, error)
	// Reset clears the attempt counter, called after a successful login.
	Reset(ctx context.Context, identifier string) error
}
