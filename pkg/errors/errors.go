package errors

import (
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeMissingParameter ErrorType = "missing_parameter"
	ErrorTypeUpstreamFetch    ErrorType = "upstream_fetch"
	ErrorTypeFetchFailed      ErrorType = "fetch_failed"
	ErrorTypeExtraction       ErrorType = "extraction"
	ErrorTypeInternal         ErrorType = "internal"
)

// AppError represents a structured application error. Message is the text
// surfaced to the caller in the error envelope.
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewMissingParameterError creates the fixed client error for an absent fileURL
func NewMissingParameterError() *AppError {
	return &AppError{
		Type:       ErrorTypeMissingParameter,
		Message:    "Missing fileURL parameter",
		StatusCode: http.StatusBadRequest,
	}
}

// NewUpstreamStatusError creates the fixed client error for a non-success
// response from the remote file host. All upstream HTTP failures collapse
// into this one message.
func NewUpstreamStatusError(statusCode int) *AppError {
	return &AppError{
		Type:       ErrorTypeUpstreamFetch,
		Message:    "Unable to fetch file from provided URL",
		StatusCode: http.StatusBadRequest,
		Cause:      fmt.Errorf("upstream returned status %d", statusCode),
	}
}

// NewFetchFailedError creates a server error for a fetch that failed before
// an upstream status was observed (DNS failure, connection reset, read error)
func NewFetchFailedError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeFetchFailed,
		Message:    messageOf(cause),
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewExtractionError creates a server error for a failed text extraction
func NewExtractionError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeExtraction,
		Message:    messageOf(cause),
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	if appErr, ok := err.(*AppError); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the text to surface in the error envelope
func PublicMessage(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Message
	}
	return messageOf(err)
}

func messageOf(err error) string {
	if err == nil {
		return "unknown error"
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fmt.Sprintf("%v", err)
}
