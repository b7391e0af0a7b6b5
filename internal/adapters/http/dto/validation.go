package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/rastro/internal/domain"
	"github.com/jsamuelsen/rastro/internal/units"
)

var (
	// ErrValidation wraps struct tag failures.
	ErrValidation = errors.New("validation failed")

	// ErrBinding wraps JSON or query decoding failures.
	ErrBinding = errors.New("binding failed")
)

// Validator returns the shared validator. Field errors are named after the
// json tag, falling back to the form tag, and two extra tags are known:
// unitexpr (parses as a unit expression) and notempty (not blank).
var Validator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	for tag, fn := range map[string]validator.Func{
		"unitexpr": isUnitExpr,
		"notempty": isNotBlank,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("dto: registering %s: %v", tag, err))
		}
	}

	return v
})

func fieldName(f reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")

		switch name {
		case "":
			continue
		case "-":
			return ""
		default:
			return name
		}
	}

	return f.Name
}

// Validate checks the validate tags of v.
func Validate(v any) error {
	if err := Validator().Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

// BindAndValidate decodes the JSON body into v and validates it.
func BindAndValidate(c *gin.Context, v any) error {
	return bindThenValidate(c.ShouldBindJSON, v)
}

// BindQueryAndValidate decodes the query string into v and validates it.
func BindQueryAndValidate(c *gin.Context, v any) error {
	return bindThenValidate(c.ShouldBindQuery, v)
}

func bindThenValidate(bind func(any) error, v any) error {
	if err := bind(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

// IsValidationError reports whether err carries field-level tag failures.
func IsValidationError(err error) bool {
	var fieldErrs validator.ValidationErrors
	return errors.As(err, &fieldErrs)
}

// ValidationErrors maps each failing field to a readable message. It is
// empty for errors that are not tag failures.
func ValidationErrors(err error) map[string]string {
	out := map[string]string{}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return out
	}

	for _, fe := range fieldErrs {
		out[fe.Field()] = validationMessage(fe)
	}

	return out
}

func validationMessage(fe validator.FieldError) string {
	p := fe.Param()

	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "unitexpr":
		return "must be a unit expression such as km/s or kg m s-2"
	case "notempty":
		return "must not be empty"
	case "oneof":
		return "must be one of: " + p
	case "gt":
		return "must be greater than " + p
	case "gte":
		return "must be greater than or equal to " + p
	case "lt":
		return "must be less than " + p
	case "lte":
		return "must be less than or equal to " + p
	case "min":
		return "must be at least " + p + lengthSuffix(fe.Kind())
	case "max":
		return "must be at most " + p + lengthSuffix(fe.Kind())
	default:
		return "failed validation: " + fe.Tag()
	}
}

func lengthSuffix(kind reflect.Kind) string {
	if kind == reflect.String {
		return " characters"
	}

	return ""
}

// isUnitExpr accepts blanks and anything that parses against the built-in
// systems. Unknown symbols pass so that handlers can answer 404 for them.
func isUnitExpr(fl validator.FieldLevel) bool {
	expr := fl.Field().String()
	if expr == "" {
		return true
	}

	_, err := units.Default().Parse(expr)

	return !domain.IsValidation(err)
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
