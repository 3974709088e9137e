// Package errors defines the application error taxonomy shared by the
// usecase and delivery layers.
package errors

import (
	"net/http"

	"inmomarket/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User and session errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"this email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"a valid session is required for this action",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"you are not allowed to perform this action",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Publication errors
	ErrPublicationNotFound = NewBaseError(
		http.StatusNotFound,
		"PUBLICATION_NOT_FOUND",
		"publication not found",
		"",
	)

	// Visit scheduling errors
	ErrVisitNotFound = NewBaseError(
		http.StatusNotFound,
		"VISIT_NOT_FOUND",
		"visit request not found",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"the visit request was already responded to",
		"",
	)

	ErrNotVisitOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_VISIT_OWNER",
		"only the property owner may respond to this visit request",
		"",
	)

	ErrNotVisitRequester = NewBaseError(
		http.StatusForbidden,
		"NOT_VISIT_REQUESTER",
		"only the requesting visitor may cancel this visit request",
		"",
	)

	ErrVisitOwnPublication = NewBaseError(
		http.StatusBadRequest,
		"VISIT_OWN_PUBLICATION",
		"you cannot request a visit to your own publication",
		"",
	)

	ErrScheduleUnavailable = NewBaseError(
		http.StatusBadRequest,
		"SCHEDULE_UNAVAILABLE",
		"the requested date and time are outside the publication's availability",
		"",
	)

	// Favorite errors
	ErrFavoriteNotFound = NewBaseError(
		http.StatusNotFound,
		"FAVORITE_NOT_FOUND",
		"favorite not found",
		"",
	)

	ErrFavoriteAlreadyExists = NewBaseError(
		http.StatusConflict,
		"FAVORITE_ALREADY_EXISTS",
		"publication is already in favorites",
		"",
	)

	// Report errors
	ErrReportNotFound = NewBaseError(
		http.StatusNotFound,
		"REPORT_NOT_FOUND",
		"report not found",
		"",
	)

	ErrReportAlreadyReviewed = NewBaseError(
		http.StatusConflict,
		"REPORT_ALREADY_REVIEWED",
		"report was already reviewed",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected database failure as a
// generic internal error while preserving the cause for logging.
func NewDatabaseExecuteError(cause error, details string) error {
	base := NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		"a storage error occurred",
		details,
	)

	return errors.Wrap(base, cause.Error())
}
