package service

import (
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/apperror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Amounts are checked as plain numbers so that "required" rejects zero.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if amount, ok := field.Interface().(decimal.Decimal); ok {
			return amount.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// requireAll reports a single fixed validation message when any required
// field of input is missing or zero.
func requireAll(input interface{}, message string) error {
	if err := validate.Struct(input); err != nil {
		return apperror.Validation(message)
	}
	return nil
}

func parseDate(raw string, field string) (datatypes.Date, error) {
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return datatypes.Date{}, apperror.Validation(field + " must be in YYYY-MM-DD format")
	}
	return datatypes.Date(parsed), nil
}

func formatDate(date datatypes.Date) string {
	return time.Time(date).Format(dateLayout)
}
