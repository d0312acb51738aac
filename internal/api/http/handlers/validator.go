package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/barbershop-service/pkg/util"
)

// Validator wraps go-playground/validator and reports failures keyed by
// the JSON field name.
type Validator struct {
	v *validator.Validate
}

// NewValidator returns a Validator ready for use by every handler.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Validate returns a VALIDATION_FAILED DomainError with one detail per field.
func (val *Validator) Validate(i any) error {
	err := val.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	details := make(map[string]any, len(ve))
	for _, fe := range ve {
		details[fe.Field()] = fieldError(fe)
	}
	return apperrors.NewValidationError("invalid payload", details)
}

// Bind parses the request body into dst and validates it.
func (val *Validator) Bind(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return val.Validate(dst)
}

func fieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "numeric":
		return "must contain digits only"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "datetime":
		return "must be a date formatted as YYYY-MM-DD"
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}

// paramID reads a positive integer path parameter.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid path parameter", map[string]any{name: "must be a positive integer"})
	}
	return id, nil
}
