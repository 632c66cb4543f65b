package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"freight/internal/pkg/errs"
)

var _ echo.Validator = (*RequestValidator)(nil)

// RequestValidator checks bound request bodies against their validate tags.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate returns an errs.ValueIsInvalidError so the failure maps to 400 like
// any other invalid argument.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}
