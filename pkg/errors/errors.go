package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// Error codes returned in the "error" field of a response body.
const (
	CodeValidation        = "ValidationError"
	CodeInvalidIdentifier = "InvalidIdentifier"
	CodeNotFound          = "NotFound"
	CodeInternal          = "InternalError"
)

// StandardError represents a standardized error response
type StandardError struct {
	Code    string   `json:"error"`            // Error code/type (e.g., "ValidationError", "NotFound")
	Message string   `json:"message"`          // Human-readable error message
	Details string   `json:"details"`          // Additional details (identifier, field list, ...)
	Fields  []string `json:"fields,omitempty"` // Offending fields, for validation errors
}

// Error implements the error interface
func (e *StandardError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case CodeValidation, CodeInvalidIdentifier:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Is reports whether target carries the same code, so callers can write
// errors.Is(err, errors.ErrNotFound).
func (e *StandardError) Is(target error) bool {
	t, ok := target.(*StandardError)
	if !ok {
		return false
	}
	return t.Code == e.Code && t.Message == ""
}

// Sentinels for errors.Is comparisons against a code.
var (
	ErrValidation        = &StandardError{Code: CodeValidation}
	ErrInvalidIdentifier = &StandardError{Code: CodeInvalidIdentifier}
	ErrNotFound          = &StandardError{Code: CodeNotFound}
	ErrInternal          = &StandardError{Code: CodeInternal}
)

// NewStandardError creates a new StandardError
func NewStandardError(errorCode, message, details string) *StandardError {
	return &StandardError{
		Code:    errorCode,
		Message: message,
		Details: details,
	}
}

// NewValidationError reports one or more offending fields. Every field is
// listed so a caller can fix the whole request at once.
func NewValidationError(message string, fields ...string) *StandardError {
	e := NewStandardError(CodeValidation, message, "")
	if len(fields) > 0 {
		e.Fields = fields
		e.Details = fmt.Sprintf("Fields: %s", strings.Join(fields, ", "))
	}
	return e
}

// NewMissingFields is the validation error for absent or null required fields.
func NewMissingFields(fields ...string) *StandardError {
	return NewValidationError(fmt.Sprintf("missing fields: %s", strings.Join(fields, ", ")), fields...)
}

func NewInvalidIdentifier(resource, id string) *StandardError {
	return NewStandardError(CodeInvalidIdentifier, fmt.Sprintf("invalid %s id", resource), fmt.Sprintf("ID: %s", id))
}

func NewNotFound(resource, id string) *StandardError {
	return NewStandardError(CodeNotFound, fmt.Sprintf("%s not found", resource), fmt.Sprintf("ID: %s", id))
}

// NewInternalError never carries the underlying cause; it is logged, not returned.
func NewInternalError(message string) *StandardError {
	return NewStandardError(CodeInternal, message, "")
}
