package validation

import (
	"reflect"
	"strings"

	"github.com/blaisecz/sleep-journal/pkg/problem"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return toSnakeCase(fld.Name)
		}
		return name
	})

	_ = validate.RegisterValidation("notblank", validators.NotBlank)
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []problem.FieldError{{Field: "body", Message: "is invalid"}}
	}

	fieldErrors := make([]problem.FieldError, 0, len(validationErrors))
	for _, err := range validationErrors {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   err.Field(),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "min":
		if err.Kind() == reflect.String {
			return "must be at least " + err.Param() + " characters"
		}
		return "must be at least " + err.Param()
	case "max":
		if err.Kind() == reflect.String {
			return "must be at most " + err.Param() + " characters"
		}
		return "must be at most " + err.Param()
	case "gtfield":
		return "must be after " + toSnakeCase(err.Param())
	default:
		return "is invalid"
	}
}

func toSnakeCase(s string) string {
	var result []byte
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				result = append(result, '_')
			}
			result = append(result, byte(c+'a'-'A'))
		} else {
			result = append(result, byte(c))
		}
	}
	return string(result)
}
