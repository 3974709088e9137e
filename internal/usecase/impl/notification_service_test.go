package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"inmomarket/internal/domain/entity"
	domainerrors "inmomarket/internal/domain/errors"
	mockRepo "inmomarket/internal/mocks/repository"
	"inmomarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestNotificationService(t *testing.T) (usecase.VisitNotificationUsecase, *mockRepo.MockVisitRepository) {
	t.Helper()

	visitRepo := mockRepo.NewMockVisitRepository(t)
	service := NewVisitNotificationService(VisitNotificationServiceParams{
		VisitRepo: visitRepo,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, visitRepo
}

func TestNotificationService_Notifications_AggregatesBothSides(t *testing.T) {
	service, visitRepo := newTestNotificationService(t)
	userID := uuid.New()

	pending := &entity.VisitRequest{
		ID:        uuid.New(),
		OwnerID:   userID,
		Status:    entity.VisitStatusPending,
		OwnerRead: false,
	}
	responded := &entity.VisitRequest{
		ID:          uuid.New(),
		VisitorID:   userID,
		Status:      entity.VisitStatusAccepted,
		VisitorRead: false,
	}

	// The four aggregation calls run concurrently on a derived context.
	visitRepo.EXPECT().
		FindPendingByOwner(mock.Anything, userID).
		Return([]*entity.VisitRequest{pending}, nil)
	visitRepo.EXPECT().
		FindRespondedByVisitor(mock.Anything, userID).
		Return([]*entity.VisitRequest{responded}, nil)
	visitRepo.EXPECT().
		CountUnreadRequests(mock.Anything, userID).
		Return(int64(1), nil)
	visitRepo.EXPECT().
		CountUnreadResponses(mock.Anything, userID).
		Return(int64(1), nil)

	notifications, err := service.Notifications(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, notifications.PendingVisits, 1)
	require.Len(t, notifications.RespondedVisits, 1)
	assert.True(t, notifications.PendingVisits[0].IsNewRequest)
	assert.True(t, notifications.RespondedVisits[0].HasNewResponse)
	assert.Equal(t, int64(1), notifications.NewVisitRequests)
	assert.Equal(t, int64(1), notifications.NewVisitResponses)
}

func TestNotificationService_Notifications_ReadItemsAreNotNew(t *testing.T) {
	service, visitRepo := newTestNotificationService(t)
	userID := uuid.New()

	seen := &entity.VisitRequest{
		ID:        uuid.New(),
		OwnerID:   userID,
		Status:    entity.VisitStatusPending,
		OwnerRead: true,
	}

	visitRepo.EXPECT().
		FindPendingByOwner(mock.Anything, userID).
		Return([]*entity.VisitRequest{seen}, nil)
	visitRepo.EXPECT().
		FindRespondedByVisitor(mock.Anything, userID).
		Return(nil, nil)
	visitRepo.EXPECT().
		CountUnreadRequests(mock.Anything, userID).
		Return(int64(0), nil)
	visitRepo.EXPECT().
		CountUnreadResponses(mock.Anything, userID).
		Return(int64(0), nil)

	notifications, err := service.Notifications(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, notifications.PendingVisits, 1)
	assert.False(t, notifications.PendingVisits[0].IsNewRequest)
	assert.Empty(t, notifications.RespondedVisits)
}

func TestNotificationService_Notifications_RepositoryError(t *testing.T) {
	service, visitRepo := newTestNotificationService(t)
	userID := uuid.New()

	visitRepo.EXPECT().
		FindPendingByOwner(mock.Anything, userID).
		Return(nil, errors.New("connection reset")).
		Maybe()
	visitRepo.EXPECT().
		FindRespondedByVisitor(mock.Anything, userID).
		Return(nil, nil).
		Maybe()
	visitRepo.EXPECT().
		CountUnreadRequests(mock.Anything, userID).
		Return(int64(0), nil).
		Maybe()
	visitRepo.EXPECT().
		CountUnreadResponses(mock.Anything, userID).
		Return(int64(0), nil).
		Maybe()

	_, err := service.Notifications(context.Background(), userID)
	require.Error(t, err)
}

func TestNotificationService_MarkRead_Requests(t *testing.T) {
	service, visitRepo := newTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	visitRepo.EXPECT().
		MarkRequestsRead(ctx, userID).
		Return(nil)

	require.NoError(t, service.MarkRead(ctx, userID, usecase.NotificationKindRequest))
}

func TestNotificationService_MarkRead_Responses(t *testing.T) {
	service, visitRepo := newTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	visitRepo.EXPECT().
		MarkResponsesRead(ctx, userID).
		Return(nil)

	require.NoError(t, service.MarkRead(ctx, userID, usecase.NotificationKindResponses))
}

func TestNotificationService_MarkRead_UnknownKind(t *testing.T) {
	service, _ := newTestNotificationService(t)

	err := service.MarkRead(context.Background(), uuid.New(), usecase.NotificationKind("everything"))
	requireAppError(t, err, domainerrors.ErrValidationFailed)
}
