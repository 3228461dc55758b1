package middleware

import (
	"errors"
	"reflect"
	"strings"

	apperrors "billing-service/pkg/errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator makes binding errors name fields by their JSON tag
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// BindingError converts a ShouldBind failure into a ValidationError.
func BindingError(err error) *apperrors.StandardError {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field())
		}
		return apperrors.NewValidationError("invalid fields: "+strings.Join(fields, ", "), fields...)
	}
	return apperrors.NewValidationError("request body must be a valid JSON object")
}
