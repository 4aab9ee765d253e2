// Package validator wires go-playground/validator into echo's request validation.
package validator

import (
	"reflect"
	"strings"

	domainerrors "excerpta/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates an echo.Validator backed by validator/v10.
// Field names in error messages come from json tags.
func New() echo.Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		if idx := strings.Index(name, ","); idx != -1 {
			name = name[:idx]
		}

		return name
	})

	return &echoValidator{validate: v}
}

// Validate checks a bound request struct against its validate tags.
// Failures surface as the validation domain error so the error handler
// renders them as 400 responses.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			failed := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				failed = append(failed, fe.Field())
			}

			return errors.Wrapf(domainerrors.ErrValidationFailed, "invalid fields: %s", strings.Join(failed, ", "))
		}

		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	return nil
}
