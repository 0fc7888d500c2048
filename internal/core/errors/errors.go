package errors

import (
	"errors"
)

// Domain errors - these represent request and upstream failures
var (
	// Request validation
	ErrUserRequired = errors.New("user is required")
	ErrInvalidDate  = errors.New("date must be formatted as YYYY-MM-DD")

	// Upstream (GitHub) failures
	ErrUserNotFound = errors.New("github user not found")
	ErrUpstream     = errors.New("github request failed")
	ErrTooManyPages = errors.New("pagination exceeded the page limit")

	// Rendering
	ErrRender = errors.New("graph rendering failed")

	// Generic
	ErrInternal    = errors.New("internal server error")
	ErrBadRequest  = errors.New("bad request")
	ErrRateLimited = errors.New("rate limit exceeded")
)

// AppError wraps errors with additional context for HTTP responses
type AppError struct {
	Err        error  // The underlying error
	Message    string // User-friendly message
	Code       string // Machine-readable error code
	StatusCode int    // HTTP status code
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Error constructors for common cases
func NewBadRequestError(err error, message string) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		Code:       "BAD_REQUEST",
		StatusCode: 400,
	}
}

func NewNotFoundError(err error, message string) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		Code:       "NOT_FOUND",
		StatusCode: 404,
	}
}

func NewUpstreamError(err error, message string) *AppError {
	return &AppError{
		Err:        err,
		Message:    message,
		Code:       "UPSTREAM_ERROR",
		StatusCode: 502,
	}
}

func NewRateLimitError() *AppError {
	return &AppError{
		Err:        ErrRateLimited,
		Message:    "Too many requests. Please try again later.",
		Code:       "RATE_LIMITED",
		StatusCode: 429,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Err:        err,
		Message:    "An unexpected error occurred",
		Code:       "INTERNAL_ERROR",
		StatusCode: 500,
	}
}
