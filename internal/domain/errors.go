package domain

import (
	"errors"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when client-supplied data violates field constraints.
	// Concrete failures are reported as *ValidationError, which wraps this sentinel.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidPriority is returned when a priority is not one of the enumerated values.
	ErrInvalidPriority = errors.New("invalid task priority")

	// ErrInvalidStatus is returned when a status is not one of the enumerated values.
	ErrInvalidStatus = errors.New("invalid task status")
)

// FieldError describes a single constraint violation on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field violation found in a single input,
// so callers can report all of them at once rather than stopping at the first.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError creates a ValidationError holding a single field violation.
func NewValidationError(field, message string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, message)
	return v
}

// Add records another field violation.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasField reports whether a violation was recorded for the named field.
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Empty reports whether no violations were recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// Error joins every field message into one string, in the order they were recorded.
func (e *ValidationError) Error() string {
	if e.Empty() {
		return ErrValidation.Error()
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, ", ")
}

// Unwrap allows errors.Is(err, ErrValidation) to match any ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
