// Package visits provides the typed client and paginated store the
// companion applications use against the visit endpoints.
package visits

import (
	"fmt"

	"inmomarket/internal/errors"
)

var (
	// ErrValidation is returned when an input fails client-side
	// validation. No network call is made.
	ErrValidation = errors.New("validation failed")

	// ErrNoSession is returned when the client has no bearer token.
	ErrNoSession = errors.New("no active session")

	// ErrInvalidTransition is returned when the server rejects a state
	// change with 409, meaning another actor responded first. Callers
	// should refetch and re-render the current state.
	ErrInvalidTransition = errors.New("visit request was already responded to")
)

// APIError carries a non-409 server failure with the server's message.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}

	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}
