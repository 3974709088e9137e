package entity

import (
	"time"

	"github.com/google/uuid"
)

// VisitStatus is the closed set of visit request states.
type VisitStatus string

const (
	// VisitStatusPending is the initial state of every visit request.
	VisitStatusPending VisitStatus = "PENDING"
	// VisitStatusAccepted means the owner confirmed the visit and set a
	// meeting location.
	VisitStatusAccepted VisitStatus = "ACCEPTED"
	// VisitStatusRejected means the owner declined with a reason. Terminal.
	VisitStatusRejected VisitStatus = "REJECTED"
	// VisitStatusCancelled means the visitor withdrew the request. Terminal.
	VisitStatusCancelled VisitStatus = "CANCELLED"
	// VisitStatusCompleted means the accepted visit date has passed. Terminal.
	VisitStatusCompleted VisitStatus = "COMPLETED"
)

// IsValid reports whether the status is one of the known states.
func (s VisitStatus) IsValid() bool {
	switch s {
	case VisitStatusPending, VisitStatusAccepted, VisitStatusRejected,
		VisitStatusCancelled, VisitStatusCompleted:
		return true
	}

	return false
}

// IsTerminal reports whether no further transition may occur.
func (s VisitStatus) IsTerminal() bool {
	switch s {
	case VisitStatusRejected, VisitStatusCancelled, VisitStatusCompleted:
		return true
	}

	return false
}

// CanTransitionTo reports whether the state machine allows moving from
// s to next. Transitions are monotonic: PENDING may move to ACCEPTED,
// REJECTED or CANCELLED, ACCEPTED may move to COMPLETED, terminal
// states admit nothing.
func (s VisitStatus) CanTransitionTo(next VisitStatus) bool {
	switch s {
	case VisitStatusPending:
		return next == VisitStatusAccepted || next == VisitStatusRejected || next == VisitStatusCancelled
	case VisitStatusAccepted:
		return next == VisitStatusCompleted
	default:
		return false
	}
}

// VisitRequest is a scheduling proposal from a visitor to the owner of
// a publication. It belongs to the (visitor, owner, publication)
// triple and is never deleted, only transitioned.
//
// Publication title and address are denormalized onto the record so
// that both parties' listings stay readable even if the publication is
// later removed.
type VisitRequest struct {
	ID                 uuid.UUID   `json:"id"`
	PublicationID      uuid.UUID   `json:"publicationId"`
	PublicationTitle   string      `json:"publicationTitle"`
	PublicationAddress string      `json:"publicationAddress"`
	VisitorID          uuid.UUID   `json:"visitorId"`
	VisitorName        string      `json:"visitorName"`
	VisitorEmail       string      `json:"visitorEmail"`
	OwnerID            uuid.UUID   `json:"ownerId"`
	OwnerName          string      `json:"ownerName"`
	VisitDate          string      `json:"visitDate"` // calendar date, "2006-01-02"
	VisitTime          string      `json:"visitTime"` // time of day, "15:04:05"
	UserMessage        string      `json:"userMessage,omitempty"`
	Status             VisitStatus `json:"status"`
	MeetingLocation    string      `json:"meetingLocation,omitempty"` // set only on ACCEPTED
	OwnerResponse      string      `json:"ownerResponse,omitempty"`   // set only on ACCEPTED
	RejectionReason    string      `json:"rejectionReason,omitempty"` // set only on REJECTED
	ResponseDate       *time.Time  `json:"responseDate,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`

	// Server-tracked read state. OwnerRead starts false when the
	// request is created, VisitorRead is reset to false when the owner
	// responds. The transient per-viewer flags of the notification
	// feed are derived from these, they are not serialized themselves.
	OwnerRead   bool `json:"-"`
	VisitorRead bool `json:"-"`
}

// IsNewRequest reports whether the request should count as "new" for
// the owner: still pending and not yet seen.
func (v *VisitRequest) IsNewRequest() bool {
	return v.Status == VisitStatusPending && !v.OwnerRead
}

// HasNewResponse reports whether the owner's response should count as
// "new" for the visitor.
func (v *VisitRequest) HasNewResponse() bool {
	return v.Status != VisitStatusPending && !v.VisitorRead
}

// VisitAt returns the concrete moment the visit is scheduled for,
// interpreted in loc.
func (v *VisitRequest) VisitAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04:05", v.VisitDate+" "+v.VisitTime, loc)
}
