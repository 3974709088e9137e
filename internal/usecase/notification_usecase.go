package usecase

import (
	"context"

	"inmomarket/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationKind selects which unread counter a mark-read call resets.
type NotificationKind string

const (
	// NotificationKindRequest covers pending requests addressed to the
	// user as owner.
	NotificationKindRequest NotificationKind = "request"
	// NotificationKindResponses covers responses to the user's own
	// requests.
	NotificationKindResponses NotificationKind = "responses"
)

// IsValid reports whether the kind is one of the two known values.
func (k NotificationKind) IsValid() bool {
	return k == NotificationKindRequest || k == NotificationKindResponses
}

// VisitNotificationItem is a visit request annotated with the
// per-viewer transient read flags the notification feed renders.
type VisitNotificationItem struct {
	*entity.VisitRequest
	IsNewRequest   bool `json:"isNewRequest"`
	HasNewResponse bool `json:"hasNewResponse"`
}

// VisitNotifications is the aggregated badge state for one user: the
// pending requests on their listings, the responses to their own
// requests, and the unread count of each.
type VisitNotifications struct {
	PendingVisits     []*VisitNotificationItem `json:"pendingVisits"`
	RespondedVisits   []*VisitNotificationItem `json:"respondedVisits"`
	NewVisitRequests  int64                    `json:"newVisitRequests"`
	NewVisitResponses int64                    `json:"newVisitResponses"`
}

// VisitNotificationUsecase computes and maintains the unread visit
// counters. The read state is server-authoritative: clients refetch
// after mark-read instead of zeroing counters locally.
type VisitNotificationUsecase interface {
	// Notifications aggregates the user's pending requests, responded
	// requests and unread counters.
	Notifications(ctx context.Context, userID uuid.UUID) (*VisitNotifications, error)

	// MarkRead resets the unread state behind one counter kind.
	MarkRead(ctx context.Context, userID uuid.UUID, kind NotificationKind) error
}
