package handler

import (
	"log/slog"
	"net/http"

	"inmomarket/internal/delivery/http/middleware"
	"inmomarket/internal/delivery/http/response"
	"inmomarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for favorite-related handlers.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

type addFavoriteRequest struct {
	PublicationID uuid.UUID `json:"publicationId" validate:"required"`
}

// Add saves a publication to the user's favorites.
func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	var req addFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	favorite, err := h.uc.Add(c.Request().Context(), userID, req.PublicationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, favorite, "Favorite added")
}

// Remove deletes a publication from the user's favorites.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	publicationID, err := uuid.Parse(c.Param("publicationId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid publication ID")
	}

	if err := h.uc.Remove(c.Request().Context(), userID, publicationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Favorite removed")
}

// ListMine returns a page of the user's favorites.
func (h *FavoriteHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	page, size := parsePageParams(c)

	favorites, err := h.uc.ListByUser(c.Request().Context(), userID, page, size)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "")
}
