package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fintrack/finance-system/internal/api/metrics"
	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

// PlaceHandler handles HTTP requests for planned places.
type PlaceHandler struct {
	service ports.PlaceService
}

func NewPlaceHandler(service ports.PlaceService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

type createPlaceRequest struct {
	Name          string  `json:"name"           validate:"required"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimated_cost" validate:"gte=0"`
}

// List returns the authenticated user's places.
func (h *PlaceHandler) List(c echo.Context) error {
	p, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	places, err := h.service.List(c.Request().Context(), p.Username)
	if err != nil {
		return err
	}
	if places == nil {
		places = []domain.Place{}
	}
	return c.JSON(http.StatusOK, places)
}

// Create plans a place for the authenticated user.
func (h *PlaceHandler) Create(c echo.Context) error {
	p, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req createPlaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	place, err := h.service.Create(c.Request().Context(), p.Username, ports.CreatePlaceInput{
		Name:          req.Name,
		Description:   req.Description,
		EstimatedCost: req.EstimatedCost,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, place)
}

// Delete removes one of the authenticated user's places. Attempting to
// delete another user's place yields 403.
func (h *PlaceHandler) Delete(c echo.Context) error {
	p, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p.Username, c.Param("id")); err != nil {
		return err
	}

	metrics.PlacesDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
