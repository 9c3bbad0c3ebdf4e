package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

// PlaceService implements user-scoped place planning.
type PlaceService struct {
	places ports.PlaceRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewPlaceService(places ports.PlaceRepository, users ports.UserRepository, logger zerolog.Logger) *PlaceService {
	return &PlaceService{places: places, users: users, logger: logger}
}

func (s *PlaceService) List(ctx context.Context, username string) ([]domain.Place, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.places.FindByUser(ctx, user.ID)
}

func (s *PlaceService) Create(ctx context.Context, username string, input ports.CreatePlaceInput) (*domain.Place, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	place := &domain.Place{
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		EstimatedCost: input.EstimatedCost,
		UserID:        user.ID,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.places.Create(ctx, place)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Str("place", created.Name).Msg("place planned")
	return created, nil
}

// Delete removes a place the user owns. Deleting someone else's place is
// forbidden, not a not-found, so ownership violations stay visible in logs.
func (s *PlaceService) Delete(ctx context.Context, username, id string) error {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	place, err := s.places.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if place.UserID != user.ID {
		s.logger.Warn().
			Str("username", username).
			Str("place_id", id).
			Msg("cross-user place delete rejected")
		return domain.ErrForbidden
	}

	return s.places.Delete(ctx, id)
}
