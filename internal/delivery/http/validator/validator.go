// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "vitrina/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a go-playground validator instance for echo.
type Validator struct {
	validate *validator.Validate
}

// New creates the request validator used by the HTTP server.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as the domain's
// validation error so the error handler renders the standard envelope.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
