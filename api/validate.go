package api

import (
	"fmt"
	"reflect"
	"strings"

	"devfolio/errs"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report violations under the JSON name the client submitted.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct checks v against its schema tags and converts any
// violations into a 400 with per-field detail.
func validateStruct(v any) *errs.ApiErr {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.NewBadRequestError("malformed request body")
	}

	fields := make([]errs.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, errs.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return errs.NewValidationError(fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
