package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
)

// Custom error types for the application
var (
	ErrNotFound       = errors.New("resource not found")
	ErrBadRequest     = errors.New(constants.ErrorBadRequest)
	ErrInternalServer = errors.New(constants.ErrorInternalServer)
	ErrValidation     = errors.New(constants.ErrorValidation)
	ErrUpstream       = errors.New(constants.ErrorUpstream)
)

// AppError represents an application error with additional context
type AppError struct {
	Err        error  // The underlying error
	StatusCode int    // HTTP status code
	Message    string // User-friendly error message
	DevInfo    string // Additional information for developers
	Field      string // Field related to the error (for validation errors)
	Details    map[string]any
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the given error and status code
func New(err error, statusCode int, message string) *AppError {
	return &AppError{
		Err:        err,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewValidationError creates a new validation error for a specific field
func NewValidationError(field, message string) *AppError {
	return &AppError{
		Err:        ErrValidation,
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Field:      field,
	}
}

// NewFieldValidationError creates a validation error carrying one message per field.
// The first field in sorted order becomes the primary Field of the error.
func NewFieldValidationError(fields map[string]string) *AppError {
	details := make(map[string]any, len(fields))
	primary, message := "", constants.MsgValidationFailed
	for field, msg := range fields {
		details[field] = msg
		if primary == "" || field < primary {
			primary, message = field, msg
		}
	}
	return &AppError{
		Err:        ErrValidation,
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Field:      primary,
		Details:    details,
	}
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Err:        ErrBadRequest,
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resourceType string, identifier interface{}) *AppError {
	return &AppError{
		Err:        ErrNotFound,
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("%s with identifier '%v' not found", resourceType, identifier),
	}
}

// NewUpstreamError creates an error for a failed collaborator call.
// The message is passed through unchanged so callers can show it to the user;
// an empty message falls back to the generic one.
func NewUpstreamError(message string, err error) *AppError {
	if message == "" {
		message = constants.DefaultErrorMessage
	}
	devInfo := ""
	if err != nil {
		devInfo = err.Error()
	}
	return &AppError{
		Err:        ErrUpstream,
		StatusCode: http.StatusBadGateway,
		Message:    message,
		DevInfo:    devInfo,
	}
}

// NewInternalServerError creates a new internal server error
func NewInternalServerError(err error) *AppError {
	devInfo := ""
	if err != nil {
		devInfo = err.Error()
	}
	return &AppError{
		Err:        ErrInternalServer,
		StatusCode: http.StatusInternalServerError,
		Message:    constants.MsgInternalServerError,
		DevInfo:    devInfo,
	}
}

// ParseError attempts to parse various types of errors into an AppError
func ParseError(err error) *AppError {
	// If it's already an AppError, return it
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	// Check for specific error types
	switch {
	case errors.Is(err, ErrNotFound):
		return NewNotFoundError("Resource", "")
	case errors.Is(err, ErrBadRequest):
		return NewBadRequestError(err.Error())
	case errors.Is(err, ErrValidation):
		return NewValidationError("", err.Error())
	case errors.Is(err, ErrUpstream):
		return NewUpstreamError(strings.TrimPrefix(err.Error(), ErrUpstream.Error()+": "), err)
	}

	// Default to internal server error
	return NewInternalServerError(err)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return errors.Is(appErr.Err, ErrValidation)
	}
	return errors.Is(err, ErrValidation)
}

// IsUpstreamError checks if an error came from a collaborator call
func IsUpstreamError(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return errors.Is(appErr.Err, ErrUpstream)
	}
	return errors.Is(err, ErrUpstream)
}

// StatusCode returns the HTTP status code for an error
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
