package validator

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/seat-booking/api"
	"github.com/metinatakli/seat-booking/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	ErrRequired    = "is required"
	ErrMinValue    = "must be at least %s"
	ErrMaxValue    = "must be at most %s"
	ErrMinLength   = "must be at least %s characters long"
	ErrMaxLength   = "must be at most %s characters long"
	ErrMinItems    = "must contain at least %s items"
	ErrMaxItems    = "must contain at most %s items"
	ErrGteValue    = "must be greater than or equal to %s"
	ErrUnique      = "must not contain duplicate values"
	ErrSeatLayout  = "must map row numbers 1-100 to seat counts 1-100, with at most 2000 seats in total"
	ErrPrice       = "must be below 100000000 with at most 2 decimal places"
	ErrInvalidData = "is invalid"
)

var maxPrice = decimal.New(1, 8)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seat_layout", validateSeatLayout)
	validator.RegisterValidation("price", validatePrice)

	// Prices are validated by value with the numeric tags (gte, lte...).
	validator.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	return validator
}

func validateSeatLayout(fl validator.FieldLevel) bool {
	layout, ok := fl.Field().Interface().(api.HallLayout)
	if !ok {
		return false
	}

	return domain.HallLayout(layout).Validate() == nil
}

// validatePrice accepts amounts that fit a numeric(10, 2) column. The field
// arrives as float64 through decimalValue.
func validatePrice(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.Float64 {
		return false
	}

	price := decimal.NewFromFloat(fl.Field().Float())

	return price.LessThan(maxPrice) && price.Exponent() >= -2
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}

	return nil
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		switch err.Kind() {
		case reflect.String:
			return fmt.Sprintf(ErrMinLength, err.Param())
		case reflect.Slice, reflect.Map:
			return fmt.Sprintf(ErrMinItems, err.Param())
		default:
			return fmt.Sprintf(ErrMinValue, err.Param())
		}
	case "max":
		switch err.Kind() {
		case reflect.String:
			return fmt.Sprintf(ErrMaxLength, err.Param())
		case reflect.Slice, reflect.Map:
			return fmt.Sprintf(ErrMaxItems, err.Param())
		default:
			return fmt.Sprintf(ErrMaxValue, err.Param())
		}
	case "gte":
		return fmt.Sprintf(ErrGteValue, err.Param())
	case "unique":
		return ErrUnique
	case "seat_layout":
		return ErrSeatLayout
	case "price":
		return ErrPrice
	default:
		return ErrInvalidData
	}
}
