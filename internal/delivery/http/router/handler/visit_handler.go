// Package handler contains the HTTP handlers for the application.
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

// VisitHandler holds dependencies for visit-related handlers.
type VisitHandler struct {
	visitUC        usecase.VisitUsecase
	notificationUC usecase.VisitNotificationUsecase
	logger         *slog.Logger
}

// NewVisitHandler is the constructor for VisitHandler, injected by Fx.
func NewVisitHandler(visitUC usecase.VisitUsecase, notificationUC usecase.VisitNotificationUsecase, logger *slog.Logger) *VisitHandler {
	return &VisitHandler{
		visitUC:        visitUC,
		notificationUC: notificationUC,
		logger:         logger,
	}
}

type scheduleVisitRequest struct {
	PublicationID uuid.UUID `json:"publicationId" validate:"required"`
	VisitDate     string    `json:"visitDate" validate:"required"`
	VisitTime     string    `json:"visitTime" validate:"required"`
	UserMessage   string    `json:"userMessage"`
}

type acceptVisitRequest struct {
	MeetingLocation   string `json:"meetingLocation" validate:"required"`
	AdditionalMessage string `json:"additionalMessage"`
}

type rejectVisitRequest struct {
	RejectionReason string `json:"rejectionReason" validate:"required"`
}

// Schedule handles the visit request creation.
func (h *VisitHandler) Schedule(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	var req scheduleVisitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visit request input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	visit, err := h.visitUC.Schedule(c.Request().Context(), userID, &usecase.ScheduleVisitInput{
		PublicationID: req.PublicationID,
		VisitDate:     req.VisitDate,
		VisitTime:     req.VisitTime,
		UserMessage:   req.UserMessage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, visit, "Visit requested successfully")
}

// ListRequested handles the visitor projection listing.
func (h *VisitHandler) ListRequested(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	page, size := parsePageParams(c)

	visits, err := h.visitUC.ListRequested(c.Request().Context(), userID, page, size)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, visits, "")
}

// ListReceived handles the owner projection listing.
func (h *VisitHandler) ListReceived(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	page, size := parsePageParams(c)

	visits, err := h.visitUC.ListReceived(c.Request().Context(), userID, page, size)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, visits, "")
}

// Accept handles the owner accepting a pending visit request.
func (h *VisitHandler) Accept(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid visit ID")
	}

	var req acceptVisitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid accept input")
	}

	visit, err := h.visitUC.Accept(c.Request().Context(), userID, visitID, &usecase.AcceptVisitInput{
		MeetingLocation: req.MeetingLocation,
		OwnerResponse:   req.AdditionalMessage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, visit, "Visit accepted")
}

// Reject handles the owner rejecting a pending visit request.
func (h *VisitHandler) Reject(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid visit ID")
	}

	var req rejectVisitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reject input")
	}

	visit, err := h.visitUC.Reject(c.Request().Context(), userID, visitID, req.RejectionReason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, visit, "Visit rejected")
}

// Cancel handles the visitor withdrawing a pending request.
func (h *VisitHandler) Cancel(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	visitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid visit ID")
	}

	visit, err := h.visitUC.Cancel(c.Request().Context(), userID, visitID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, visit, "Visit cancelled")
}

// Notifications returns the aggregated visit inbox with unread counters.
func (h *VisitHandler) Notifications(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	notifications, err := h.notificationUC.Notifications(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "")
}

// MarkNotificationsRead resets one unread counter kind.
func (h *VisitHandler) MarkNotificationsRead(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	kind := usecase.NotificationKind(c.QueryParam("type"))

	if err := h.notificationUC.MarkRead(c.Request().Context(), userID, kind); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notifications marked read")
}
