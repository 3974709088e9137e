// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"inmomarket/config"
	deliverycontext "inmomarket/internal/delivery/context"
	"inmomarket/internal/domain/entity"
	domainerrors "inmomarket/internal/domain/errors"
	"inmomarket/internal/domain/repository"
	"inmomarket/internal/domain/schedule"
	"inmomarket/internal/domain/service"
	"inmomarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// visitService implements the VisitUsecase interface.
type visitService struct {
	visitRepo       repository.VisitRepository
	publicationRepo repository.PublicationRepository
	userRepo        repository.UserRepository
	publisher       service.EventPublisher
	minDetailLen    int
	sweepBatchSize  int
	logger          *slog.Logger
}

// VisitServiceParams holds dependencies for VisitService, injected by Fx.
type VisitServiceParams struct {
	fx.In

	VisitRepo       repository.VisitRepository
	PublicationRepo repository.PublicationRepository
	UserRepo        repository.UserRepository
	Publisher       service.EventPublisher
	Config          *config.Config
	Logger          *slog.Logger
}

// NewVisitService is the constructor for visitService.
func NewVisitService(params VisitServiceParams) usecase.VisitUsecase {
	minDetailLen := 10
	sweepBatchSize := 200
	if params.Config != nil && params.Config.Visits != nil {
		if params.Config.Visits.MinResponseDetailLength > 0 {
			minDetailLen = params.Config.Visits.MinResponseDetailLength
		}
		if params.Config.Visits.CompletionBatchSize > 0 {
			sweepBatchSize = params.Config.Visits.CompletionBatchSize
		}
	}

	return &visitService{
		visitRepo:       params.VisitRepo,
		publicationRepo: params.PublicationRepo,
		userRepo:        params.UserRepo,
		publisher:       params.Publisher,
		minDetailLen:    minDetailLen,
		sweepBatchSize:  sweepBatchSize,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls
// back to the service's logger.
func (srv *visitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Schedule creates a PENDING visit request on behalf of the visitor.
func (srv *visitService) Schedule(ctx context.Context, visitorID uuid.UUID, input *usecase.ScheduleVisitInput) (*entity.VisitRequest, error) {
	if input.VisitDate == "" || input.VisitTime == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a visit date and time must be selected")
	}

	publication, err := srv.publicationRepo.FindByID(ctx, input.PublicationID)
	if err != nil {
		if errors.Is(err, repository.ErrPublicationNotFound) {
			return nil, domainerrors.ErrPublicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find publication for visit request")
	}

	if publication.OwnerID == visitorID {
		return nil, domainerrors.ErrVisitOwnPublication
	}

	// The publication's availability windows are the source of truth:
	// a request outside every window never reaches the record.
	if !schedule.Covers(publication.AvailableTimes, input.VisitDate, input.VisitTime) {
		return nil, domainerrors.ErrScheduleUnavailable
	}

	visitor, err := srv.userRepo.FindByID(ctx, visitorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find visitor for visit request")
	}

	now := time.Now()
	visit := &entity.VisitRequest{
		ID:                 uuid.New(),
		PublicationID:      publication.ID,
		PublicationTitle:   publication.Title,
		PublicationAddress: publication.Address,
		VisitorID:          visitor.ID,
		VisitorName:        visitor.Name,
		VisitorEmail:       visitor.Email,
		OwnerID:            publication.OwnerID,
		OwnerName:          publication.OwnerName,
		VisitDate:          input.VisitDate,
		VisitTime:          normalizeTimeOfDay(input.VisitTime),
		UserMessage:        strings.TrimSpace(input.UserMessage),
		Status:             entity.VisitStatusPending,
		OwnerRead:          false,
		VisitorRead:        true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := srv.visitRepo.Create(ctx, visit); err != nil {
		return nil, errors.Wrap(err, "failed to create visit request")
	}

	srv.publishEvent(ctx, service.VisitEventRequested, visit)
	srv.log(ctx).Info("Visit request scheduled",
		slog.Any("visitID", visit.ID),
		slog.Any("publicationID", visit.PublicationID),
	)

	return visit, nil
}

// ListRequested pages through the visits the user requested.
func (srv *visitService) ListRequested(ctx context.Context, visitorID uuid.UUID, page, size int) (*usecase.Page[*entity.VisitRequest], error) {
	visits, total, err := srv.visitRepo.PageByVisitor(ctx, visitorID, page, size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to page visits by visitor")
	}

	return usecase.NewPage(visits, total, page, size), nil
}

// ListReceived pages through the visits requested on the user's publications.
func (srv *visitService) ListReceived(ctx context.Context, ownerID uuid.UUID, page, size int) (*usecase.Page[*entity.VisitRequest], error) {
	visits, total, err := srv.visitRepo.PageByOwner(ctx, ownerID, page, size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to page visits by owner")
	}

	return usecase.NewPage(visits, total, page, size), nil
}

// Accept transitions a PENDING request to ACCEPTED.
func (srv *visitService) Accept(ctx context.Context, ownerID, visitID uuid.UUID, input *usecase.AcceptVisitInput) (*entity.VisitRequest, error) {
	meetingLocation := strings.TrimSpace(input.MeetingLocation)
	if len(meetingLocation) < srv.minDetailLen {
		return nil, domainerrors.ErrValidationFailed.WithDetails("meeting location must be at least 10 characters")
	}

	visit, err := srv.loadForTransition(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit.OwnerID != ownerID {
		return nil, domainerrors.ErrNotVisitOwner
	}

	now := time.Now()
	visit.Status = entity.VisitStatusAccepted
	visit.MeetingLocation = meetingLocation
	visit.OwnerResponse = strings.TrimSpace(input.OwnerResponse)
	visit.ResponseDate = &now
	visit.VisitorRead = false
	visit.UpdatedAt = now

	if err := srv.applyTransition(ctx, visit, entity.VisitStatusPending); err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, service.VisitEventAccepted, visit)

	return visit, nil
}

// Reject transitions a PENDING request to REJECTED.
func (srv *visitService) Reject(ctx context.Context, ownerID, visitID uuid.UUID, rejectionReason string) (*entity.VisitRequest, error) {
	rejectionReason = strings.TrimSpace(rejectionReason)
	if len(rejectionReason) < srv.minDetailLen {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rejection reason must be at least 10 characters")
	}

	visit, err := srv.loadForTransition(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit.OwnerID != ownerID {
		return nil, domainerrors.ErrNotVisitOwner
	}

	now := time.Now()
	visit.Status = entity.VisitStatusRejected
	visit.RejectionReason = rejectionReason
	visit.ResponseDate = &now
	visit.VisitorRead = false
	visit.UpdatedAt = now

	if err := srv.applyTransition(ctx, visit, entity.VisitStatusPending); err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, service.VisitEventRejected, visit)

	return visit, nil
}

// Cancel transitions a PENDING request to CANCELLED.
func (srv *visitService) Cancel(ctx context.Context, visitorID, visitID uuid.UUID) (*entity.VisitRequest, error) {
	visit, err := srv.loadForTransition(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit.VisitorID != visitorID {
		return nil, domainerrors.ErrNotVisitRequester
	}

	now := time.Now()
	visit.Status = entity.VisitStatusCancelled
	visit.UpdatedAt = now

	if err := srv.applyTransition(ctx, visit, entity.VisitStatusPending); err != nil {
		return nil, err
	}

	srv.publishEvent(ctx, service.VisitEventCancelled, visit)

	return visit, nil
}

// CompleteElapsed sweeps ACCEPTED visits whose scheduled moment has
// passed into COMPLETED.
func (srv *visitService) CompleteElapsed(ctx context.Context, now time.Time) (int, error) {
	visits, err := srv.visitRepo.FindElapsedAccepted(ctx, now, srv.sweepBatchSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find elapsed accepted visits")
	}

	completed := 0
	for _, visit := range visits {
		visit.Status = entity.VisitStatusCompleted
		visit.UpdatedAt = now

		if err := srv.visitRepo.UpdateTransition(ctx, visit, entity.VisitStatusAccepted); err != nil {
			// A concurrent sweep already moved this one on. Skip it.
			if errors.Is(err, repository.ErrVisitConflict) {
				continue
			}

			return completed, errors.Wrap(err, "failed to complete elapsed visit")
		}

		srv.publishEvent(ctx, service.VisitEventCompleted, visit)
		completed++
	}

	return completed, nil
}

// loadForTransition fetches the visit and verifies it is still PENDING.
func (srv *visitService) loadForTransition(ctx context.Context, visitID uuid.UUID) (*entity.VisitRequest, error) {
	visit, err := srv.visitRepo.FindByID(ctx, visitID)
	if err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			return nil, domainerrors.ErrVisitNotFound
		}

		return nil, errors.Wrap(err, "failed to find visit request")
	}

	if visit.Status != entity.VisitStatusPending {
		return nil, domainerrors.ErrInvalidTransition.WithDetails("current status: " + string(visit.Status))
	}

	return visit, nil
}

// applyTransition persists the mutated record, mapping a lost
// compare-and-swap race to the invalid-transition error so callers can
// refetch and re-render the now-current state.
func (srv *visitService) applyTransition(ctx context.Context, visit *entity.VisitRequest, from entity.VisitStatus) error {
	if err := srv.visitRepo.UpdateTransition(ctx, visit, from); err != nil {
		if errors.Is(err, repository.ErrVisitConflict) {
			return domainerrors.ErrInvalidTransition.WithDetails("the request was responded to concurrently")
		}

		return errors.Wrap(err, "failed to update visit request")
	}

	return nil
}

// publishEvent emits a lifecycle event. Publish failures are logged
// and never fail the transition itself.
func (srv *visitService) publishEvent(ctx context.Context, eventType string, visit *entity.VisitRequest) {
	if srv.publisher == nil {
		return
	}

	event := &service.VisitEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		EventType:     eventType,
		VisitID:       visit.ID.String(),
		PublicationID: visit.PublicationID.String(),
		VisitorID:     visit.VisitorID.String(),
		OwnerID:       visit.OwnerID.String(),
		Status:        string(visit.Status),
		OccurredAt:    time.Now(),
	}

	if err := srv.publisher.PublishVisitEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish visit event",
			slog.String("eventType", eventType),
			slog.Any("visitID", visit.ID),
			slog.Any("error", err),
		)
	}
}

// normalizeTimeOfDay pads "15:04" submissions to seconds precision.
func normalizeTimeOfDay(t string) string {
	if len(strings.Split(t, ":")) == 2 {
		return t + ":00"
	}

	return t
}
