package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/careercharma/learnhub-api/internal/core/domain"
)

// requestValidator plugs go-playground/validator into echo. Field names in
// failures are the JSON names the client sent.
type requestValidator struct {
	v *validator.Validate
}

// NewValidator returns the validator assigned to echo.Echo.Validator.
func NewValidator() echo.Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &requestValidator{v: v}
}

// Validate returns the list of failing fields, e.g. "missing: email, dob".
func (rv *requestValidator) Validate(i any) error {
	err := rv.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	missing := make([]string, 0, len(ve))
	for _, fe := range ve {
		missing = append(missing, fe.Field())
	}
	return errors.New("missing: " + strings.Join(missing, ", "))
}

// bindValid binds the request into req and checks its required fields.
// The failing field list is kept as the cause for logs; the client only
// sees msg.
func bindValid(c echo.Context, req any, msg string) error {
	if err := c.Bind(req); err != nil {
		return domain.Wrap(domain.KindValidation, err, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return domain.Wrap(domain.KindValidation, err, msg)
	}
	return nil
}
