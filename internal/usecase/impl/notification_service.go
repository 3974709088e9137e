package impl

import (
	"context"
	"log/slog"

	deliverycontext "inmomarket/internal/delivery/context"
	"inmomarket/internal/domain/entity"
	domainerrors "inmomarket/internal/domain/errors"
	"inmomarket/internal/domain/repository"
	"inmomarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// visitNotificationService implements the VisitNotificationUsecase interface.
type visitNotificationService struct {
	visitRepo repository.VisitRepository
	logger    *slog.Logger
}

// VisitNotificationServiceParams holds dependencies for the aggregator.
type VisitNotificationServiceParams struct {
	fx.In

	VisitRepo repository.VisitRepository
	Logger    *slog.Logger
}

// NewVisitNotificationService is the constructor for visitNotificationService.
func NewVisitNotificationService(params VisitNotificationServiceParams) usecase.VisitNotificationUsecase {
	return &visitNotificationService{
		visitRepo: params.VisitRepo,
		logger:    params.Logger,
	}
}

// Notifications gathers both sides of the user's visit inbox in one
// round trip: pending requests on their publications, responses to
// their own requests, and the unread counter for each list.
func (srv *visitNotificationService) Notifications(ctx context.Context, userID uuid.UUID) (*usecase.VisitNotifications, error) {
	result := &usecase.VisitNotifications{}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		visits, err := srv.visitRepo.FindPendingByOwner(groupCtx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find pending visits")
		}
		result.PendingVisits = newItems(visits)

		return nil
	})
	group.Go(func() error {
		visits, err := srv.visitRepo.FindRespondedByVisitor(groupCtx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find responded visits")
		}
		result.RespondedVisits = newItems(visits)

		return nil
	})
	group.Go(func() error {
		count, err := srv.visitRepo.CountUnreadRequests(groupCtx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count unread requests")
		}
		result.NewVisitRequests = count

		return nil
	})
	group.Go(func() error {
		count, err := srv.visitRepo.CountUnreadResponses(groupCtx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count unread responses")
		}
		result.NewVisitResponses = count

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// MarkRead clears the unread flag for one side of the inbox.
func (srv *visitNotificationService) MarkRead(ctx context.Context, userID uuid.UUID, kind usecase.NotificationKind) error {
	if !kind.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown notification type: " + string(kind))
	}

	var err error
	switch kind {
	case usecase.NotificationKindRequest:
		err = srv.visitRepo.MarkRequestsRead(ctx, userID)
	case usecase.NotificationKindResponses:
		err = srv.visitRepo.MarkResponsesRead(ctx, userID)
	}
	if err != nil {
		return errors.Wrap(err, "failed to mark notifications read")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Notifications marked read",
		slog.Any("userID", userID),
		slog.String("kind", string(kind)),
	)

	return nil
}

// newItems annotates raw visit records with the transient read flags
// the feed renders.
func newItems(visits []*entity.VisitRequest) []*usecase.VisitNotificationItem {
	items := make([]*usecase.VisitNotificationItem, 0, len(visits))
	for _, visit := range visits {
		items = append(items, &usecase.VisitNotificationItem{
			VisitRequest:   visit,
			IsNewRequest:   visit.IsNewRequest(),
			HasNewResponse: visit.HasNewResponse(),
		})
	}

	return items
}
