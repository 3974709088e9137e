package visits

import (
	"context"
	"strings"
	"sync"

	"inmomarket/internal/domain/entity"
	"inmomarket/internal/domain/schedule"
	"inmomarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const minResponseDetailLength = 10

// Collection is one paginated visit listing as last fetched from the
// server. Items always hold exactly the current page.
type Collection struct {
	Items         []*entity.VisitRequest
	Page          int
	Size          int
	TotalPages    int
	TotalElements int64
	Loading       bool
}

// Store keeps the client-side visit state: the visitor and owner
// projections plus the notification inbox. All mutations are
// pessimistic, a successful write is followed by a refetch of the
// affected collection so the store always renders server truth.
//
// Store is safe for concurrent use.
type Store struct {
	client *Client

	mu            sync.Mutex
	requested     Collection
	received      Collection
	notifications *usecase.VisitNotifications
	inFlight      map[string]bool
}

// NewStore creates a Store over the given client.
func NewStore(client *Client) *Store {
	return &Store{
		client: client,
		requested: Collection{
			Size: 10,
		},
		received: Collection{
			Size: 10,
		},
		inFlight: make(map[string]bool),
	}
}

// Requested returns a snapshot of the visitor projection.
func (s *Store) Requested() Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshot(s.requested)
}

// Received returns a snapshot of the owner projection.
func (s *Store) Received() Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshot(s.received)
}

// Notifications returns the last fetched inbox state, or nil before
// the first fetch.
func (s *Store) Notifications() *usecase.VisitNotifications {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.notifications
}

// FetchRequested replaces the visitor projection with the given page.
func (s *Store) FetchRequested(ctx context.Context, page, size int) error {
	return s.fetch(ctx, &s.requested, s.client.MyVisits, page, size)
}

// FetchReceived replaces the owner projection with the given page.
func (s *Store) FetchReceived(ctx context.Context, page, size int) error {
	return s.fetch(ctx, &s.received, s.client.MyPropertyVisits, page, size)
}

func (s *Store) fetch(ctx context.Context, col *Collection, call func(context.Context, int, int) (*usecase.Page[*entity.VisitRequest], error), page, size int) error {
	s.mu.Lock()
	col.Loading = true
	s.mu.Unlock()

	result, err := call(ctx, page, size)

	s.mu.Lock()
	defer s.mu.Unlock()
	col.Loading = false
	if err != nil {
		// The previous page stays rendered, the caller may retry.
		return err
	}

	col.Items = result.Content
	col.Page = result.Number
	col.Size = size
	col.TotalPages = result.TotalPages
	col.TotalElements = result.TotalElements

	return nil
}

// CanSchedule reports whether the publication accepts visit requests
// at all. A publication with no availability windows can never host a
// visit.
func CanSchedule(publication *entity.Publication) bool {
	return publication != nil && len(publication.AvailableTimes) > 0
}

// Schedule validates the requested slot against the publication's
// availability windows and submits the request. The requested
// collection's current page is refetched on success.
func (s *Store) Schedule(ctx context.Context, publication *entity.Publication, visitDate, visitTime, message string) (*entity.VisitRequest, error) {
	if !CanSchedule(publication) {
		return nil, errors.Wrap(ErrValidation, "this publication does not accept visits")
	}
	if visitDate == "" || visitTime == "" {
		return nil, errors.Wrap(ErrValidation, "a visit date and time must be selected")
	}
	if !schedule.Covers(publication.AvailableTimes, visitDate, visitTime) {
		return nil, errors.Wrap(ErrValidation, "the selected slot is outside the publication's availability")
	}

	release, err := s.acquire("schedule")
	if err != nil {
		return nil, err
	}
	defer release()

	visit, err := s.client.ScheduleVisit(ctx, &ScheduleVisitInput{
		PublicationID: publication.ID,
		VisitDate:     visitDate,
		VisitTime:     visitTime,
		UserMessage:   message,
	})
	if err != nil {
		return nil, err
	}

	s.refetchRequested(ctx)

	return visit, nil
}

// Accept accepts a pending request. The meeting location must carry at
// least 10 characters, shorter input fails locally without a network
// call. The received collection's current page is refetched on success.
func (s *Store) Accept(ctx context.Context, visitID uuid.UUID, meetingLocation, additionalMessage string) error {
	if len(strings.TrimSpace(meetingLocation)) < minResponseDetailLength {
		return errors.Wrap(ErrValidation, "meeting location must be at least 10 characters")
	}

	release, err := s.acquire("accept:" + visitID.String())
	if err != nil {
		return err
	}
	defer release()

	if _, err := s.client.Accept(ctx, visitID, meetingLocation, additionalMessage); err != nil {
		return err
	}

	s.refetchReceived(ctx)

	return nil
}

// Reject rejects a pending request. The rejection reason must carry at
// least 10 characters, shorter input fails locally without a network
// call. The received collection's current page is refetched on success.
func (s *Store) Reject(ctx context.Context, visitID uuid.UUID, rejectionReason string) error {
	if len(strings.TrimSpace(rejectionReason)) < minResponseDetailLength {
		return errors.Wrap(ErrValidation, "rejection reason must be at least 10 characters")
	}

	release, err := s.acquire("reject:" + visitID.String())
	if err != nil {
		return err
	}
	defer release()

	if _, err := s.client.Reject(ctx, visitID, rejectionReason); err != nil {
		return err
	}

	s.refetchReceived(ctx)

	return nil
}

// Cancel withdraws a pending request. The requested collection's
// current page is refetched on success.
func (s *Store) Cancel(ctx context.Context, visitID uuid.UUID) error {
	release, err := s.acquire("cancel:" + visitID.String())
	if err != nil {
		return err
	}
	defer release()

	if _, err := s.client.Cancel(ctx, visitID); err != nil {
		return err
	}

	s.refetchRequested(ctx)

	return nil
}

// FetchNotifications replaces the inbox state.
func (s *Store) FetchNotifications(ctx context.Context) error {
	notifications, err := s.client.Notifications(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.notifications = notifications
	s.mu.Unlock()

	return nil
}

// MarkAsRead resets one unread counter kind and refetches the inbox so
// the counters always reflect server state.
func (s *Store) MarkAsRead(ctx context.Context, kind usecase.NotificationKind) error {
	if !kind.IsValid() {
		return errors.Wrap(ErrValidation, "unknown notification type")
	}

	release, err := s.acquire("mark-read:" + string(kind))
	if err != nil {
		return err
	}
	defer release()

	if err := s.client.MarkNotificationsRead(ctx, kind); err != nil {
		return err
	}

	return s.FetchNotifications(ctx)
}

// acquire guards against double submission of the same action. It
// returns ErrValidation while a previous call is still in flight.
func (s *Store) acquire(action string) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight[action] {
		return nil, errors.Wrap(ErrValidation, "action already in progress")
	}
	s.inFlight[action] = true

	return func() {
		s.mu.Lock()
		delete(s.inFlight, action)
		s.mu.Unlock()
	}, nil
}

// refetchRequested reloads the current page of the visitor projection.
// A refetch failure leaves the stale page in place, the next fetch
// heals it.
func (s *Store) refetchRequested(ctx context.Context) {
	s.mu.Lock()
	page, size := s.requested.Page, s.requested.Size
	s.mu.Unlock()

	_ = s.FetchRequested(ctx, page, size)
}

func (s *Store) refetchReceived(ctx context.Context) {
	s.mu.Lock()
	page, size := s.received.Page, s.received.Size
	s.mu.Unlock()

	_ = s.FetchReceived(ctx, page, size)
}

func snapshot(col Collection) Collection {
	items := make([]*entity.VisitRequest, len(col.Items))
	copy(items, col.Items)
	col.Items = items

	return col
}
