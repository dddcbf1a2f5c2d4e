// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	domainerrors "elyukal/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a shared validate instance.
type Validator struct {
	validate *playground.Validate
}

// New builds the validator used by the echo server.
func New() *Validator {
	return &Validator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and maps failures onto the validation error.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
