package errors

import (
	"fmt"
	"net/http"
)

// FieldValidationError reports a single profile field that violated its
// domain constraint. It implements the AppError interface so the HTTP error
// middleware can map it to a 400 response without special-casing.
type FieldValidationError struct {
	field      string
	constraint string
}

// NewFieldValidationError creates a validation error for the given field
// and the human-readable constraint it violated.
func NewFieldValidationError(field, constraint string) *FieldValidationError {
	return &FieldValidationError{
		field:      field,
		constraint: constraint,
	}
}

// Field returns the identifier of the offending field, e.g. "age".
func (e *FieldValidationError) Field() string {
	return e.field
}

// Error implements the error interface
func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.field, e.constraint)
}

// HTTPCode returns the HTTP status code
func (e *FieldValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *FieldValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *FieldValidationError) Message() string {
	return e.constraint
}

// Details returns the offending field identifier
func (e *FieldValidationError) Details() string {
	return e.field
}
