package config

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate names fields after their koanf keys so messages match the YAML.
var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name, _, _ := strings.Cut(f.Tag.Get("koanf"), ","); name != "" && name != "-" {
			return name
		}

		return f.Name
	})

	return v
}()

// Validate reports every invalid field at once, one per line.
func (c *Config) Validate() error {
	err := validate.Struct(c)

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	lines := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		lines[i] = fieldPath(fe.Namespace()) + " " + problem(fe)
	}

	return errors.New("config validation failed:\n  " + strings.Join(lines, "\n  "))
}

func problem(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_if":
		return "is required when " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "url":
		return "must be a valid URL"
	default:
		return "failed validation: " + fe.Tag()
	}
}

// fieldPath drops the root struct: "Config.server.port" is "server.port".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		namespace = rest
	}

	return strings.ToLower(namespace)
}
