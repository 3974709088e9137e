package handler

import (
	"log/slog"
	"net/http"

	"inmomarket/internal/delivery/http/middleware"
	"inmomarket/internal/delivery/http/response"
	"inmomarket/internal/domain/entity"
	"inmomarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PublicationHandler holds dependencies for listing-related handlers.
type PublicationHandler struct {
	uc     usecase.PublicationUsecase
	logger *slog.Logger
}

// NewPublicationHandler is the constructor for PublicationHandler, injected by Fx.
func NewPublicationHandler(uc usecase.PublicationUsecase, logger *slog.Logger) *PublicationHandler {
	return &PublicationHandler{
		uc:     uc,
		logger: logger,
	}
}

type availabilityWindowRequest struct {
	DayOfWeek int    `json:"dayOfWeek" validate:"required,min=1,max=7"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

type createPublicationRequest struct {
	Title          string                      `json:"title" validate:"required"`
	Description    string                      `json:"description"`
	Address        string                      `json:"address" validate:"required"`
	Neighborhood   string                      `json:"neighborhood"`
	Municipality   string                      `json:"municipality"`
	Department     string                      `json:"department"`
	Price          int64                       `json:"price" validate:"required,min=0"`
	Bedrooms       int                         `json:"bedrooms"`
	Floors         int                         `json:"floors"`
	Size           float64                     `json:"size"`
	Parking        bool                        `json:"parking"`
	Furnished      bool                        `json:"furnished"`
	Latitude       float64                     `json:"latitude"`
	Longitude      float64                     `json:"longitude"`
	ImageURLs      []string                    `json:"imageUrls"`
	AvailableTimes []availabilityWindowRequest `json:"availableTimes"`
}

// Create handles publishing a new listing.
func (h *PublicationHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	var req createPublicationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid publication input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	windows := make([]entity.AvailabilityWindow, 0, len(req.AvailableTimes))
	for _, w := range req.AvailableTimes {
		windows = append(windows, entity.AvailabilityWindow{
			DayOfWeek: w.DayOfWeek,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		})
	}

	publication, err := h.uc.Create(c.Request().Context(), userID, &usecase.CreatePublicationInput{
		Title:          req.Title,
		Description:    req.Description,
		Address:        req.Address,
		Neighborhood:   req.Neighborhood,
		Municipality:   req.Municipality,
		Department:     req.Department,
		Price:          req.Price,
		Bedrooms:       req.Bedrooms,
		Floors:         req.Floors,
		Size:           req.Size,
		Parking:        req.Parking,
		Furnished:      req.Furnished,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		ImageURLs:      req.ImageURLs,
		AvailableTimes: windows,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, publication, "Publication created successfully")
}

// GetByID returns a single listing with its availability windows.
func (h *PublicationHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid publication ID")
	}

	publication, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, publication, "")
}

// ListHome returns a page of the public home feed.
func (h *PublicationHandler) ListHome(c echo.Context) error {
	page, size := parsePageParams(c)

	publications, err := h.uc.ListHome(c.Request().Context(), page, size)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, publications, "")
}

// ListMine returns a page of the authenticated user's listings.
func (h *PublicationHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	page, size := parsePageParams(c)

	publications, err := h.uc.ListByOwner(c.Request().Context(), userID, page, size)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, publications, "")
}
