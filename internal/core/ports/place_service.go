package ports

import (
	"context"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// CreatePlaceInput carries all data needed to plan a place.
type CreatePlaceInput struct {
	Name          string
	Description   string
	EstimatedCost float64
}

// PlaceService exposes the place operations available to an authenticated
// user, identified by username.
type PlaceService interface {
	List(ctx context.Context, username string) ([]domain.Place, error)
	Create(ctx context.Context, username string, input CreatePlaceInput) (*domain.Place, error)
	// Delete removes the place when it belongs to the user; a place owned
	// by someone else yields domain.ErrForbidden.
	Delete(ctx context.Context, username, id string) error
}
