// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "advisor/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates bound request structs against their validate tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator for use as echo.Echo.Validator.
func New() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Failures surface as the shared
// validation error so the error middleware renders the unified envelope.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
