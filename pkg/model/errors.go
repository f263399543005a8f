package model

import (
	"fmt"
	"strings"
)

// FieldError describes a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationError collects field errors found while validating a request
// before it is sent to the backend.
type ValidationError struct {
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, fmt.Sprintf("%s %s", d.Field, d.Message))
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(parts, "; "))
}

// NewValidationError creates a ValidationError with details.
func NewValidationError(msg string, details ...FieldError) *ValidationError {
	return &ValidationError{Message: msg, Details: details}
}

// InvalidTransitionError is returned when a rental status transition is invalid.
type InvalidTransitionError struct {
	ID   int64
	From RentalStatus
	To   RentalStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid rental status transition: %s → %s (rental %d)", e.From, e.To, e.ID)
}
