package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"foodorder/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// requestValidator checks request bodies against their validate tags and
// reports failures as validation errors, which map to 400.
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &requestValidator{validate: v}
}

func (v *requestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.NewValueIsInvalidErrorWithCause("request", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, fieldMessage(fieldErr))
	}
	return errs.NewValueIsInvalidErrorWithCause("request", errors.New(strings.Join(messages, "; ")))
}

func fieldMessage(fieldErr validator.FieldError) string {
	// Namespace is "NewOrder.items[0].quantity"; drop the type name.
	field := fieldErr.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param())
	default:
		return field + " is invalid"
	}
}
