package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"inmomarket/config"
	"inmomarket/internal/domain/entity"
	domainerrors "inmomarket/internal/domain/errors"
	"inmomarket/internal/domain/repository"
	mockRepo "inmomarket/internal/mocks/repository"
	mockSvc "inmomarket/internal/mocks/service"
	"inmomarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type visitServiceMocks struct {
	visitRepo       *mockRepo.MockVisitRepository
	publicationRepo *mockRepo.MockPublicationRepository
	userRepo        *mockRepo.MockUserRepository
	publisher       *mockSvc.MockEventPublisher
}

func newTestVisitService(t *testing.T) (usecase.VisitUsecase, *visitServiceMocks) {
	t.Helper()

	mocks := &visitServiceMocks{
		visitRepo:       mockRepo.NewMockVisitRepository(t),
		publicationRepo: mockRepo.NewMockPublicationRepository(t),
		userRepo:        mockRepo.NewMockUserRepository(t),
		publisher:       mockSvc.NewMockEventPublisher(t),
	}
	cfg := &config.Config{
		Visits: &config.VisitsConfig{
			MinResponseDetailLength: 10,
			CompletionBatchSize:     200,
		},
	}

	service := NewVisitService(VisitServiceParams{
		VisitRepo:       mocks.visitRepo,
		PublicationRepo: mocks.publicationRepo,
		UserRepo:        mocks.userRepo,
		Publisher:       mocks.publisher,
		Config:          cfg,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, mocks
}

// requireAppError asserts that err carries the expected business error code.
func requireAppError(t *testing.T, err error, expected domainerrors.AppError) {
	t.Helper()

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expected.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, expected.HTTPCode(), appErr.HTTPCode())
}

func testPublication(ownerID uuid.UUID) *entity.Publication {
	return &entity.Publication{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		OwnerName: "Maria Lopez",
		Title:     "Apartment in San Benito",
		Address:   "Calle La Reforma 123",
		Status:    entity.PublicationStatusActive,
		AvailableTimes: []entity.AvailabilityWindow{
			// 2026-03-02 is a Monday.
			{DayOfWeek: 1, StartTime: "09:00:00", EndTime: "17:00:00"},
		},
	}
}

func TestVisitService_Schedule_CreatesPendingRequest(t *testing.T) {
	service, mocks := newTestVisitService(t)
	ctx := context.Background()
	visitorID := uuid.New()
	ownerID := uuid.New()
	publication := testPublication(ownerID)

	mocks.publicationRepo.EXPECT().
		FindByID(ctx, publication.ID).
		Return(publication, nil)

	mocks.userRepo.EXPECT().
		FindByID(ctx, visitorID).
		Return(&entity.User{ID: visitorID, Name: "Carlos Mejia", Email: "carlos@example.com"}, nil)

	mocks.visitRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.VisitRequest")).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishVisitEvent(ctx, mock.AnythingOfType("*service.VisitEvent")).
		Return(nil)

	visit, err := service.Schedule(ctx, visitorID, &usecase.ScheduleVisitInput{
		PublicationID: publication.ID,
		VisitDate:     "2026-03-02",
		VisitTime:     "10:00",
		UserMessage:   "  I would like to see the kitchen.  ",
	})
	require.NoError(t, err)
	require.NotNil(t, visit)
	assert.Equal(t, entity.VisitStatusPending, visit.Status)
	assert.Equal(t, "10:00:00", visit.VisitTime)
	assert.Equal(t, "I would like to see the kitchen.", visit.UserMessage)
	assert.Equal(t, publication.Title, visit.PublicationTitle)
	assert.Equal(t, ownerID, visit.OwnerID)
	assert.False(t, visit.OwnerRead)
	assert.True(t, visit.VisitorRead)
}

func TestVisitService_Schedule_MissingDateOrTime(t *testing.T) {
	service, _ := newTestVisitService(t)

	_, err := service.Schedule(context.Background(), uuid.New(), &usecase.ScheduleVisitInput{
		PublicationID: uuid.New(),
		VisitDate:     "",
		VisitTime:     "10:00",
	})
	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestVisitService_Schedule_OwnPublication(t *testing.T) {
	service, mocks := newTestVisitService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	publication := testPublication(ownerID)

	mocks.publicationRepo.EXPECT().
		FindByID(ctx, publication.ID).
		Return(publication, nil)

	_, err := service.Schedule(ctx, ownerID, &usecase.ScheduleVisitInput{
		PublicationID: publication.ID,
		VisitDate:     "2026-03-02",
		VisitTime:     "10:00",
	})
	requireAppError(t, err, domainerrors.ErrVisitOwnPublication)
}

func TestVisitService_Schedule_OutsideAvailability(t *testing.T) {
	service, mocks := newTestVisitService(t)
	ctx := context.Background()
	publication := testPublication(uuid.New())

	mocks.publicationRepo.EXPECT().
		FindByID(ctx, publication.ID).
		Return(publication, nil)

	// 2026-03-03 is a Tuesday, the only window is on Monday.
	_, err := service.Schedule(ctx, uuid.New(), &usecase.ScheduleVisitInput{
		PublicationID: publication.ID,
		VisitDate:     "2026-03-03",
		VisitTime:     "10:00",
	})
	requireAppError(t, err, domainerrors.ErrScheduleUnavailable)
}

func TestVisitService_Schedule_PublicationNotFound(t *testing.T) {
	service, mocks := newTestVisitService(t)
	ctx := context.Background()
	publicationID := uuid.New()

	mocks.publicationRepo.EXPECT().
		FindByID(ctx, publicationID).
		Return(nil, repository.ErrPublicationNotFound)

	_, err := service.Schedule(ctx, uuid.New(), &usecase.ScheduleVisitInput{
		PublicationID: publicationID,
		VisitDate:     "2026-03-02",
		VisitTime:     "10:00",
	})
	requireAppError(t, err, domainerrors.ErrPublicationNotFound)
}

func TestVisitService_Schedule_PublishFailureDoesNotFail(t *testing.T) {
	service, mocks := newTestVisitService(t)
	ctx := context.Background()
	visitorID := uuid.New()
	publication := testPublication(uuid.New())

	mocks.publicationRepo.EXPECT().
		FindByID(ctx, publication.ID).
		Return(publication, nil)
	mocks.userRepo.EXPECT().
		FindByID(ctx, visitorID).
		Return(&entity.User{ID: visitorID, Name: "Carlos Mejia", Email: "carlos@example.com"}, nil)
	mocks.visitRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.VisitRequest")).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishVisitEvent(ctx, mock.AnythingOfType("*service.VisitEvent")).
		Return(errors.New("broker unavailable"))

	visit, err := service.Schedule(ctx, visitorID, &usecase.ScheduleVisitInput{
		PublicationID: publication.ID,
		VisitDate:     "2026-03-02",
		VisitTime:     "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusPending, visit.Status)
}

func pendingVisit(ownerID, visitorID uuid.UUID) *entity.VisitRequest {
	return &entity.VisitRequest{
		ID:            uuid.New(),
		PublicationID: uuid.New(),
		VisitorID:     visitorID,
		OwnerID:       ownerID,
		VisitDate:     "2026-03-02",
		VisitTime:     "10:00:00",
		Status:        entity.VisitStatusPending,
		OwnerRead:     false,
		VisitorRead:   true,
	}
}

func TestVisitService_Accept_TransitionsToAccepted(t *testing.T) {
	service, mocks := newTestVisitService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	visit := pendingVisit(ownerID, uuid.New())

	mocks.visitRepo.EXPECT().
		FindByID(ctx, visit.ID).
		Return(visit, nil)
	mocks.visitRepo.EXPECT().
		UpdateTransition(ctx, mock.AnythingOfType("*entity.VisitRequest"), entity.VisitStatusPending).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishVisitEvent(ctx, mock.AnythingOfType("*service.VisitEvent")).
		Return(nil)

	accepted, err := service.Accept(ctx, ownerID, visit.ID, &usecase.AcceptVisitInput{
		MeetingLocation: "Front desk of the building",
		OwnerResponse:   "Looking forward to it.",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusAccepted, accepted.Status)
	assert.Equal(t, "Front desk of the building", accepted.MeetingLocation)
	assert.NotNil(t, accepted.ResponseDate)
	assert.False(t, accepted.VisitorRead)
}

func TestVisitService_Accept_ShortMeetingLocation(t *testing.T) {
	service, _ := newTestVisitService(t)

	// Nine characters after trimming. No repository call may happen.
	_, err := service.Accept(context.Background(), uuid.New(), uuid.New(), &usecase.AcceptVisitInput{
		MeetingLocation: " 123456789 ",
	})
	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestVisitService_Accept_NotOwner(t *testing.T) {
	service, mocks := newTestVisitService(t)
	ctx := context.Background()
	visit := pendingVisit(uuid.New(), uuid.New())

	mocks.visitRepo.EXPECT().
		FindByID(ctx, visit.ID).
		Return(visit, nil)

	_, err := service.Accept(ctx, uuid.New(), visit.ID, &usecase.AcceptVisitInput{
		MeetingLocation: "Front desk of the building",
	})
	requireAppError(t, err, domainerrors.ErrNotVisitOwner)
}

func TestVisitService_Accept_AlreadyResponded(t *testing.T) {
	service, mocks := newTestVisitService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	visit := pendingVisit(ownerID, uuid.New())
	visit.Status = entity.VisitStatusRejected

	mocks.visitRepo.EXPECT().
		FindByID(ctx, visit.ID).
		Return(visit, nil)

	_, err := service.Accept(ctx, ownerID, visit.ID, &usecase.AcceptVisitInput{
		MeetingLocation: "Front desk of the building",
	})
	requireAppError(t, err, domainerrors.ErrInvalidTransition)
}

func TestVisitService_Accept_LostRace(t *testing.T) {
	service, mocks := newTestVisitService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	visit := pendingVisit(ownerID, uuid.New())

	mocks.visitRepo.EXPECT().
		FindByID(ctx, visit.ID).
		Return(visit, nil)
	mocks.visitRepo.EXPECT().
		UpdateTransition(ctx, mock.AnythingOfType("*entity.VisitRequest"), entity.VisitStatusPending).
		Return(repository.ErrVisitConflict)

	_, err := service.Accept(ctx, ownerID, visit.ID, &usecase.AcceptVisitInput{
		MeetingLocation: "Front desk of the building",
	})
	requireAppError(t, err, domainerrors.ErrInvalidTransition)
}

func TestVisitService_Reject_TransitionsToRejected(t *testing.T) {
	service, mocks := newTestVisitService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	visit := pendingVisit(ownerID, uuid.New())

	mocks.visitRepo.EXPECT().
		FindByID(ctx, visit.ID).
		Return(visit, nil)
	mocks.visitRepo.EXPECT().
		UpdateTransition(ctx, mock.AnythingOfType("*entity.VisitRequest"), entity.VisitStatusPending).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishVisitEvent(ctx, mock.AnythingOfType("*service.VisitEvent")).
		Return(nil)

	rejected, err := service.Reject(ctx, ownerID, visit.ID, "The property is under renovation")
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusRejected, rejected.Status)
	assert.Equal(t, "The property is under renovation", rejected.RejectionReason)
	assert.False(t, rejected.VisitorRead)
}

func TestVisitService_Reject_ShortReason(t *testing.T) {
	service, _ := newTestVisitService(t)

	_, err := service.Reject(context.Background(), uuid.New(), uuid.New(), "too short")
	requireAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestVisitService_Cancel_TransitionsToCancelled(t *testing.T) {
	service, mocks := newTestVisitService(t)
	ctx := context.Background()
	visitorID := uuid.New()
	visit := pendingVisit(uuid.New(), visitorID)

	mocks.visitRepo.EXPECT().
		FindByID(ctx, visit.ID).
		Return(visit, nil)
	mocks.visitRepo.EXPECT().
		UpdateTransition(ctx, mock.AnythingOfType("*entity.VisitRequest"), entity.VisitStatusPending).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishVisitEvent(ctx, mock.AnythingOfType("*service.VisitEvent")).
		Return(nil)

	cancelled, err := service.Cancel(ctx, visitorID, visit.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusCancelled, cancelled.Status)
}

func TestVisitService_Cancel_NotRequester(t *testing.T) {
	service, mocks := newTestVisitService(t)
	ctx := context.Background()
	visit := pendingVisit(uuid.New(), uuid.New())

	mocks.visitRepo.EXPECT().
		FindByID(ctx, visit.ID).
		Return(visit, nil)

	_, err := service.Cancel(ctx, uuid.New(), visit.ID)
	requireAppError(t, err, domainerrors.ErrNotVisitRequester)
}

func TestVisitService_Cancel_NotFound(t *testing.T) {
	service, mocks := newTestVisitService(t)
	ctx := context.Background()
	visitID := uuid.New()

	mocks.visitRepo.EXPECT().
		FindByID(ctx, visitID).
		Return(nil, repository.ErrVisitNotFound)

	_, err := service.Cancel(ctx, uuid.New(), visitID)
	requireAppError(t, err, domainerrors.ErrVisitNotFound)
}

func TestVisitService_CompleteElapsed_SkipsLostRaces(t *testing.T) {
	service, mocks := newTestVisitService(t)
	ctx := context.Background()
	now := time.Now()

	first := pendingVisit(uuid.New(), uuid.New())
	first.Status = entity.VisitStatusAccepted
	second := pendingVisit(uuid.New(), uuid.New())
	second.Status = entity.VisitStatusAccepted

	mocks.visitRepo.EXPECT().
		FindElapsedAccepted(ctx, now, 200).
		Return([]*entity.VisitRequest{first, second}, nil)
	mocks.visitRepo.EXPECT().
		UpdateTransition(ctx, first, entity.VisitStatusAccepted).
		Return(repository.ErrVisitConflict)
	mocks.visitRepo.EXPECT().
		UpdateTransition(ctx, second, entity.VisitStatusAccepted).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishVisitEvent(ctx, mock.AnythingOfType("*service.VisitEvent")).
		Return(nil)

	completed, err := service.CompleteElapsed(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, completed)
	assert.Equal(t, entity.VisitStatusCompleted, second.Status)
}

func TestVisitService_CompleteElapsed_NothingDue(t *testing.T) {
	service, mocks := newTestVisitService(t)
	ctx := context.Background()
	now := time.Now()

	mocks.visitRepo.EXPECT().
		FindElapsedAccepted(ctx, now, 200).
		Return(nil, nil)

	completed, err := service.CompleteElapsed(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, completed)
}
