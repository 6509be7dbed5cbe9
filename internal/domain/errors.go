package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	// ErrCredentials means the Google credential is missing or malformed.
	// It is fatal at startup; it never originates from a request.
	ErrCredentials = errors.New("credentials error")

	// ErrSheetAccess means the remote spreadsheet call was rejected:
	// bad spreadsheet id, sheet not shared with the service account,
	// network failure, quota, or a fetch timeout.
	ErrSheetAccess = errors.New("sheet access error")

	// ErrNotFound is reserved for per-id lookups. An out-of-range lesson
	// is an empty result, not this error.
	ErrNotFound = errors.New("not found")

	ErrValidation = errors.New("validation error")
)

// FieldError describes a validation error for a specific parameter.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
