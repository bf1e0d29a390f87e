package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterCustomValidations attaches the decimal amount rules to the binding
// engine so struct tags can use them. Safe to call once at startup.
func RegisterCustomValidations() error {
	vld, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	// positive_decimal rejects zero and negative decimal.Decimal fields.
	// Bounds and precision are enforced again in the domain layer.
	return vld.RegisterValidation("positive_decimal", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(decimal.Decimal)
		if !ok {
			return false
		}
		return value.IsPositive()
	})
}
