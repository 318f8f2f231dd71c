package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents the classification of a failed API access
type ErrorType string

const (
	// ErrorTypeUnauthenticated indicates no access token was present locally
	ErrorTypeUnauthenticated ErrorType = "UNAUTHENTICATED"

	// ErrorTypeSessionExpired indicates the server rejected the access token
	ErrorTypeSessionExpired ErrorType = "SESSION_EXPIRED"

	// ErrorTypeAPI indicates any other non-success HTTP status
	ErrorTypeAPI ErrorType = "API"

	// ErrorTypeTransport indicates a network or decoding failure
	ErrorTypeTransport ErrorType = "TRANSPORT"

	// ErrorTypeValidation indicates a request could not be built from the given arguments
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeInternal indicates a local failure, e.g. an unreadable session store
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewUnauthenticatedError creates an error for a call made without a local token
func NewUnauthenticatedError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeUnauthenticated,
		Message: message,
	}
}

// NewSessionExpiredError creates an error for a token the server rejected
func NewSessionExpiredError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeSessionExpired,
		Message:    message,
		StatusCode: 401,
	}
}

// NewAPIError creates an error for a non-success response.
// An empty message falls back to "API error <status>".
func NewAPIError(statusCode int, message, body string) *AppError {
	if message == "" {
		message = fmt.Sprintf("API error %d", statusCode)
	}
	return &AppError{
		Type:       ErrorTypeAPI,
		Message:    message,
		StatusCode: statusCode,
		Body:       body,
	}
}

// NewTransportError creates a new transport error
func NewTransportError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeTransport,
		Message: message,
		Err:     err,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// IsType reports whether err, or any error it wraps, is an AppError of type t
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// StatusCode returns the HTTP status carried by err, or 0
func StatusCode(err error) int {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return 0
}
