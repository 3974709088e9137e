package visits

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"inmomarket/internal/domain/entity"
	"inmomarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	*httptest.Server
	requests atomic.Int64

	mux *http.ServeMux
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()

	fake := &fakeServer{mux: http.NewServeMux()}
	fake.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fake.requests.Add(1)
		fake.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(fake.Close)

	return fake
}

func (f *fakeServer) respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"code":    status,
		"message": "Success",
		"data":    data,
	})
}

func (f *fakeServer) fail(w http.ResponseWriter, status int, code, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"code":    status,
		"message": "error",
		"error":   map[string]string{"code": code, "details": details},
	})
}

func emptyPage() *usecase.Page[*entity.VisitRequest] {
	return usecase.NewPage([]*entity.VisitRequest{}, 0, 0, 10)
}

func availablePublication() *entity.Publication {
	return &entity.Publication{
		ID: uuid.New(),
		AvailableTimes: []entity.AvailabilityWindow{
			// 2026-03-02 is a Monday.
			{DayOfWeek: 1, StartTime: "09:00:00", EndTime: "17:00:00"},
		},
	}
}

func TestStore_Reject_ShortReasonMakesNoNetworkCall(t *testing.T) {
	fake := newFakeServer(t)
	store := NewStore(NewClient(fake.URL, "token"))

	err := store.Reject(context.Background(), uuid.New(), "too short")
	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, fake.requests.Load(), "a locally rejected input must never reach the server")
}

func TestStore_Accept_ShortLocationMakesNoNetworkCall(t *testing.T) {
	fake := newFakeServer(t)
	store := NewStore(NewClient(fake.URL, "token"))

	// Nine characters after trimming.
	err := store.Accept(context.Background(), uuid.New(), " 123456789 ", "")
	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, fake.requests.Load())
}

func TestStore_Accept_RefetchesReceivedPage(t *testing.T) {
	fake := newFakeServer(t)
	visitID := uuid.New()
	var refetches atomic.Int64

	fake.mux.HandleFunc("PUT /visits/"+visitID.String()+"/accept", func(w http.ResponseWriter, r *http.Request) {
		fake.respond(w, http.StatusOK, &entity.VisitRequest{ID: visitID, Status: entity.VisitStatusAccepted})
	})
	fake.mux.HandleFunc("GET /visits/my-property-visits", func(w http.ResponseWriter, r *http.Request) {
		refetches.Add(1)
		fake.respond(w, http.StatusOK, emptyPage())
	})

	store := NewStore(NewClient(fake.URL, "token"))

	err := store.Accept(context.Background(), visitID, "Front desk of the building", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), refetches.Load(), "a successful write refetches the owner projection")
}

func TestStore_Cancel_RefetchesRequestedPage(t *testing.T) {
	fake := newFakeServer(t)
	visitID := uuid.New()
	var refetches atomic.Int64

	fake.mux.HandleFunc("PUT /visits/"+visitID.String()+"/cancel", func(w http.ResponseWriter, r *http.Request) {
		fake.respond(w, http.StatusOK, &entity.VisitRequest{ID: visitID, Status: entity.VisitStatusCancelled})
	})
	fake.mux.HandleFunc("GET /visits/my-visits", func(w http.ResponseWriter, r *http.Request) {
		refetches.Add(1)
		fake.respond(w, http.StatusOK, emptyPage())
	})

	store := NewStore(NewClient(fake.URL, "token"))

	require.NoError(t, store.Cancel(context.Background(), visitID))
	assert.Equal(t, int64(1), refetches.Load())
}

func TestStore_Accept_LostRaceMapsToInvalidTransition(t *testing.T) {
	fake := newFakeServer(t)
	visitID := uuid.New()

	fake.mux.HandleFunc("PUT /visits/"+visitID.String()+"/accept", func(w http.ResponseWriter, r *http.Request) {
		fake.fail(w, http.StatusConflict, "INVALID_TRANSITION", "the request was responded to concurrently")
	})

	store := NewStore(NewClient(fake.URL, "token"))

	err := store.Accept(context.Background(), visitID, "Front desk of the building", "")
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestStore_Schedule_OutsideAvailabilityFailsLocally(t *testing.T) {
	fake := newFakeServer(t)
	store := NewStore(NewClient(fake.URL, "token"))

	// Tuesday, but the only window is on Monday.
	_, err := store.Schedule(context.Background(), availablePublication(), "2026-03-03", "10:00:00", "")
	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, fake.requests.Load())
}

func TestStore_Schedule_NoWindowsNeverSchedulable(t *testing.T) {
	fake := newFakeServer(t)
	store := NewStore(NewClient(fake.URL, "token"))

	_, err := store.Schedule(context.Background(), &entity.Publication{ID: uuid.New()}, "2026-03-02", "10:00:00", "")
	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, fake.requests.Load())

	assert.False(t, CanSchedule(&entity.Publication{}))
	assert.False(t, CanSchedule(nil))
	assert.True(t, CanSchedule(availablePublication()))
}

func TestStore_Schedule_SubmitsAndRefetches(t *testing.T) {
	fake := newFakeServer(t)
	publication := availablePublication()
	var refetches atomic.Int64

	fake.mux.HandleFunc("POST /visits/request", func(w http.ResponseWriter, r *http.Request) {
		var input ScheduleVisitInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, publication.ID, input.PublicationID)
		fake.respond(w, http.StatusCreated, &entity.VisitRequest{
			ID:            uuid.New(),
			PublicationID: input.PublicationID,
			Status:        entity.VisitStatusPending,
		})
	})
	fake.mux.HandleFunc("GET /visits/my-visits", func(w http.ResponseWriter, r *http.Request) {
		refetches.Add(1)
		fake.respond(w, http.StatusOK, emptyPage())
	})

	store := NewStore(NewClient(fake.URL, "token"))

	visit, err := store.Schedule(context.Background(), publication, "2026-03-02", "10:00:00", "see the kitchen")
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusPending, visit.Status)
	assert.Equal(t, int64(1), refetches.Load())
}

func TestStore_FetchFailureKeepsPreviousPage(t *testing.T) {
	fake := newFakeServer(t)
	var healthy atomic.Bool
	healthy.Store(true)

	item := &entity.VisitRequest{ID: uuid.New(), Status: entity.VisitStatusPending}
	fake.mux.HandleFunc("GET /visits/my-visits", func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			fake.fail(w, http.StatusInternalServerError, "DATABASE_ERROR", "")
			return
		}
		fake.respond(w, http.StatusOK, usecase.NewPage([]*entity.VisitRequest{item}, 1, 0, 10))
	})

	store := NewStore(NewClient(fake.URL, "token"))
	require.NoError(t, store.FetchRequested(context.Background(), 0, 10))
	require.Len(t, store.Requested().Items, 1)

	healthy.Store(false)
	require.Error(t, store.FetchRequested(context.Background(), 0, 10))

	// The stale page stays rendered until a fetch succeeds again.
	snapshot := store.Requested()
	assert.Len(t, snapshot.Items, 1)
	assert.False(t, snapshot.Loading)
}

func TestStore_MarkAsRead_RefetchesInbox(t *testing.T) {
	fake := newFakeServer(t)
	var inboxFetches atomic.Int64

	fake.mux.HandleFunc("PUT /visits/notifications/mark-read", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "request", r.URL.Query().Get("type"))
		fake.respond(w, http.StatusOK, nil)
	})
	fake.mux.HandleFunc("GET /visits/notifications", func(w http.ResponseWriter, r *http.Request) {
		inboxFetches.Add(1)
		fake.respond(w, http.StatusOK, &usecase.VisitNotifications{})
	})

	store := NewStore(NewClient(fake.URL, "token"))

	require.NoError(t, store.MarkAsRead(context.Background(), usecase.NotificationKindRequest))
	assert.Equal(t, int64(1), inboxFetches.Load(), "counters come from the server, never zeroed locally")
	require.NotNil(t, store.Notifications())
}

func TestStore_MarkAsRead_UnknownKind(t *testing.T) {
	fake := newFakeServer(t)
	store := NewStore(NewClient(fake.URL, "token"))

	err := store.MarkAsRead(context.Background(), usecase.NotificationKind("everything"))
	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, fake.requests.Load())
}

func TestStore_InFlightGuardBlocksDoubleSubmission(t *testing.T) {
	fake := newFakeServer(t)
	visitID := uuid.New()

	release := make(chan struct{})
	firstDone := make(chan error, 1)

	fake.mux.HandleFunc("PUT /visits/"+visitID.String()+"/accept", func(w http.ResponseWriter, r *http.Request) {
		<-release
		fake.respond(w, http.StatusOK, &entity.VisitRequest{ID: visitID, Status: entity.VisitStatusAccepted})
	})
	fake.mux.HandleFunc("GET /visits/my-property-visits", func(w http.ResponseWriter, r *http.Request) {
		fake.respond(w, http.StatusOK, emptyPage())
	})

	store := NewStore(NewClient(fake.URL, "token"))

	go func() {
		firstDone <- store.Accept(context.Background(), visitID, "Front desk of the building", "")
	}()

	// Wait until the first call is parked inside the handler.
	require.Eventually(t, func() bool {
		return fake.requests.Load() >= 1
	}, 2*time.Second, time.Millisecond)

	err := store.Accept(context.Background(), visitID, "Front desk of the building", "")
	require.ErrorIs(t, err, ErrValidation)

	close(release)
	require.NoError(t, <-firstDone)
}

func TestClient_NoTokenFailsBeforeNetwork(t *testing.T) {
	fake := newFakeServer(t)
	client := NewClient(fake.URL, "")

	_, err := client.MyVisits(context.Background(), 0, 10)
	require.ErrorIs(t, err, ErrNoSession)
	assert.Zero(t, fake.requests.Load())
}

func TestClient_UnauthorizedMapsToNoSession(t *testing.T) {
	fake := newFakeServer(t)
	fake.mux.HandleFunc("GET /visits/my-visits", func(w http.ResponseWriter, r *http.Request) {
		fake.fail(w, http.StatusUnauthorized, "AUTH_REQUIRED", "")
	})

	client := NewClient(fake.URL, "expired")

	_, err := client.MyVisits(context.Background(), 0, 10)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestClient_APIErrorCarriesDetails(t *testing.T) {
	fake := newFakeServer(t)
	fake.mux.HandleFunc("GET /visits/my-visits", func(w http.ResponseWriter, r *http.Request) {
		fake.fail(w, http.StatusBadRequest, "VALIDATION_FAILED", "page must not be negative")
	})

	client := NewClient(fake.URL, "token")

	_, err := client.MyVisits(context.Background(), 0, 10)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", apiErr.Code)
	assert.Equal(t, "page must not be negative", apiErr.Message)
}
