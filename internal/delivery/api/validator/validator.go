// Package validator adapts go-playground/validator to echo's Validator.
package validator

import (
	"reflect"
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator validates request DTOs through their validate tags
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their json names
func New() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &RequestValidator{validate: validate}
}

// Validate implements echo.Validator. Tag failures become ErrValidationFailed
// with one "field: problem" entry per failing field.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		problems = append(problems, fieldErr.Field()+": "+describe(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "required_with":
		return "is required with " + strings.ToLower(fieldErr.Param())
	case "max":
		return "must be at most " + fieldErr.Param() + " characters"
	case "min":
		return "must be at least " + fieldErr.Param() + " characters"
	case "gte":
		return "must be at least " + fieldErr.Param()
	case "latitude", "longitude":
		return "must be a valid " + fieldErr.Tag()
	case "url":
		return "must be a valid URL"
	default:
		return "failed " + fieldErr.Tag() + " check"
	}
}
