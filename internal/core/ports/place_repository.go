package ports

import (
	"context"

	"github.com/fintrack/finance-system/internal/core/domain"
)

// PlaceRepository persists planned places.
type PlaceRepository interface {
	Create(ctx context.Context, place *domain.Place) (*domain.Place, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Place, error)
	FindByID(ctx context.Context, id string) (*domain.Place, error)
	Delete(ctx context.Context, id string) error
}
