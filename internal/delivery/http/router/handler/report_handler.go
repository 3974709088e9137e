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

// ReportHandler holds dependencies for report-related handlers.
type ReportHandler struct {
	uc     usecase.ReportUsecase
	logger *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		logger: logger,
	}
}

type submitReportRequest struct {
	PublicationID uuid.UUID `json:"publicationId" validate:"required"`
	Reason        string    `json:"reason" validate:"required"`
	Description   string    `json:"description"`
}

type resolveReportRequest struct {
	Status        string `json:"status" validate:"required,oneof=RESOLVED DISMISSED"`
	AdminFeedback string `json:"adminFeedback"`
}

// Submit files a new report against a publication.
func (h *ReportHandler) Submit(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	var req submitReportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.uc.Submit(c.Request().Context(), userID, &usecase.SubmitReportInput{
		PublicationID: req.PublicationID,
		Reason:        req.Reason,
		Description:   req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, report, "Report submitted")
}

// ListAll pages through every report for the admin console.
func (h *ReportHandler) ListAll(c echo.Context) error {
	page, size := parsePageParams(c)

	reports, err := h.uc.ListAll(c.Request().Context(), page, size)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reports, "")
}

// Resolve records an administrator's decision on a pending report.
func (h *ReportHandler) Resolve(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid report ID")
	}

	var req resolveReportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resolve input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	report, err := h.uc.Resolve(c.Request().Context(), adminID, reportID, &usecase.ResolveReportInput{
		Status:        entity.ReportStatus(req.Status),
		AdminFeedback: req.AdminFeedback,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Report reviewed")
}
