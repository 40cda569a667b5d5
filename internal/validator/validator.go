package validator

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("future", validateFuture)
	validator.RegisterValidation("rate_coeff", validateRateCoeff)

	return validator
}

func validateFuture(fl validator.FieldLevel) bool {
	start, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}

	return start.After(time.Now())
}

func validateRateCoeff(fl validator.FieldLevel) bool {
	coefficient, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	return coefficient.IsPositive()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "unique":
		return "must not contain duplicates"
	case "future":
		return "must be in the future"
	case "rate_coeff":
		return "must be a positive coefficient"
	default:
		return "is invalid"
	}
}
