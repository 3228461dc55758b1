package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "billing-service/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the calendar date format used by invoices and statement filters.
const DateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)
	return v
}

// validateStruct runs the struct's validate tags and reports every failing
// attribute by its JSON name.
func validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate %T: %w", v, err)
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}
	return apperrors.NewValidationError("invalid fields: "+strings.Join(fields, ", "), fields...)
}

// ParseDate checks value is a YYYY-MM-DD calendar date.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(
			fmt.Sprintf("invalid %s format. Use YYYY-MM-DD", field), field)
	}
	return t, nil
}
