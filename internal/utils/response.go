// Package utils provides utility functions and helpers for the application.
// This file implements a standardized API response system that ensures
// consistent response formats across all API endpoints.
//
// The response system includes:
//   - A standard Response structure for all API responses
//   - Convenience functions for common error responses
//   - Plain writers for rendered pages and text bodies
//
// This ensures that all API responses follow the same format, making it easier
// for clients to parse and handle responses predictably.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/Hideme_Auth/internal/constants"
)

// Response represents a standardized API response.
// All API endpoints return responses in this format for consistency.
type Response struct {
	Success bool        `json:"success"`         // Whether the request was successful
	Data    interface{} `json:"data,omitempty"`  // The response data (omitted for error responses)
	Error   *ErrorInfo  `json:"error,omitempty"` // Error information (omitted for successful responses)
}

// ErrorInfo represents error information in the response.
// This provides structured error information to clients.
type ErrorInfo struct {
	Code    string            `json:"code"`              // A machine-readable error code
	Message string            `json:"message"`           // A human-readable error message
	Details map[string]string `json:"details,omitempty"` // Additional details about the error (e.g., validation errors)
}

// JSON sends a JSON response with the given status code and data.
// This is the primary function for sending successful responses.
//
// Parameters:
//   - w: The HTTP response writer
//   - statusCode: The HTTP status code
//   - data: The data to include in the response
//
// The function automatically sets the success flag based on the status code.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	// Create a successful response
	response := Response{
		Success: statusCode >= 200 && statusCode < 300,
		Data:    data,
	}

	SendJSON(w, statusCode, response)
}

// Error sends an error response with the given status code and error information.
// This is the primary function for sending error responses.
//
// Parameters:
//   - w: The HTTP response writer
//   - statusCode: The HTTP status code
//   - code: A machine-readable error code
//   - message: A human-readable error message
//   - details: Additional details about the error (e.g., validation errors)
func Error(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	// Create an error response
	response := Response{
		Success: constants.ResponseFailure,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
	}

	SendJSON(w, statusCode, response)
}

// ErrorFromAppError sends an error response based on an AppError.
// This provides a convenient way to convert application errors to API responses.
//
// Parameters:
//   - w: The HTTP response writer
//   - err: The application error
//
// The function extracts the error code, message, and details from the AppError
// and sends an appropriate error response.
func ErrorFromAppError(w http.ResponseWriter, err *AppError) {
	// Extract error code from the underlying error
	errCode := constants.CodeInternalError
	switch err.Err {
	case ErrNotFound:
		errCode = constants.CodeNotFound
	case ErrBadRequest:
		errCode = constants.CodeBadRequest
	case ErrValidation:
		errCode = constants.CodeValidationError
	case ErrUpstream:
		errCode = constants.CodeBadGateway
	}

	// Create error details from the field and any extra details
	var details map[string]string
	if err.Field != "" || len(err.Details) > 0 {
		details = make(map[string]string, len(err.Details)+1)
		for key, value := range err.Details {
			details[key] = fmt.Sprint(value)
		}
		if err.Field != "" {
			details[err.Field] = err.Message
		}
	}

	// Send the error response
	Error(w, err.StatusCode, errCode, err.Message, details)
}

// SendJSON is a helper function to send JSON data with proper headers.
// This handles JSON marshaling and error handling for all response types.
//
// Parameters:
//   - w: The HTTP response writer
//   - statusCode: The HTTP status code
//   - data: The data to marshal to JSON and send
func SendJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	// Marshal the data to JSON before any header is written
	jsonData, err := json.Marshal(data)
	if err != nil {
		// If marshaling fails, log the error and send a simple error response
		log.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		if _, err := w.Write([]byte(`{"success":false,"error":{"code":"internal_error","message":"Failed to generate response"}}`)); err != nil {
			log.Error().Err(err).Msg("Failed to write error response")
		}
		return
	}

	// Set headers
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)

	// Write the JSON data to the response
	_, err = w.Write(jsonData)
	if err != nil {
		// Log write errors but don't try to recover
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// RawJSON writes data as a bare JSON document without the response envelope.
// It is used by endpoints whose wire format is fixed by their callers.
func RawJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal JSON body")
		statusCode = http.StatusInternalServerError
		jsonData = []byte(`{"error":"Failed to generate response"}`)
	}

	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if _, err := w.Write(jsonData); err != nil {
		log.Error().Err(err).Msg("Failed to write JSON body")
	}
}

// HTML writes an already rendered HTML document.
//
// Parameters:
//   - w: The HTTP response writer
//   - statusCode: The HTTP status code
//   - body: The rendered document
func HTML(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeHTML)
	w.Header().Set(constants.HeaderCacheControl, constants.CacheControlNoStore)
	w.WriteHeader(statusCode)

	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("Failed to write HTML response")
	}
}

// Text writes a plain text body.
func Text(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeText)
	w.WriteHeader(statusCode)

	if _, err := w.Write([]byte(body)); err != nil {
		log.Error().Err(err).Msg("Failed to write text response")
	}
}

// NoContent sends a 204 No Content response.
// This is used for successful operations that don't return any data.
//
// Parameters:
//   - w: The HTTP response writer
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(constants.StatusNoContent)
}

// BadRequest sends a 400 Bad Request response with the given message.
// This is a convenience function for sending bad request errors.
//
// Parameters:
//   - w: The HTTP response writer
//   - message: A human-readable error message
//   - details: Additional details about the error
func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	Error(w, constants.StatusBadRequest, constants.CodeBadRequest, message, details)
}

// NotFound sends a 404 Not Found response with the given message.
// This is a convenience function for sending not found errors.
//
// Parameters:
//   - w: The HTTP response writer
//   - message: A human-readable error message (falls back to a default message if empty)
func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = constants.MsgResourceNotFound
	}
	Error(w, constants.StatusNotFound, constants.CodeNotFound, message, nil)
}

// MethodNotAllowed sends a 405 Method Not Allowed response.
// This is a convenience function for sending method not allowed errors.
//
// Parameters:
//   - w: The HTTP response writer
func MethodNotAllowed(w http.ResponseWriter) {
	Error(w, constants.StatusMethodNotAllowed, constants.CodeMethodNotAllowed, constants.MsgMethodNotAllowed, nil)
}

// InternalServerError sends a 500 Internal Server Error response.
// This is a convenience function for sending internal server errors.
//
// Parameters:
//   - w: The HTTP response writer
//   - err: The error that occurred (logged but not exposed to the client)
func InternalServerError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("Internal server error")
	Error(w, constants.StatusInternalServerError, constants.CodeInternalError, constants.MsgInternalServerError, nil)
}

// ValidationError sends a 400 Bad Request response with validation error details.
// This is a convenience function for sending validation errors.
//
// Parameters:
//   - w: The HTTP response writer
//   - errors: A map of field names to error messages
func ValidationError(w http.ResponseWriter, errors map[string]string) {
	Error(w, constants.StatusBadRequest, constants.CodeValidationError, constants.MsgValidationFailed, errors)
}
