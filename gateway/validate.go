package gateway

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/viant/n8n-mcp/n8n"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	ret := validator.New(validator.WithRequiredStructEnabled())
	ret.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	_ = ret.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return ret
}

// check validates input and reports the first violation as an
// n8n.InvalidArgumentError.
func check(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return n8n.NewInvalidArgument("", err.Error())
	}
	fieldErr := validationErrors[0]
	return n8n.NewInvalidArgument(fieldErr.Field(), reason(fieldErr))
}

func reason(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "min":
		if fieldErr.Kind() == reflect.Map || fieldErr.Kind() == reflect.Slice {
			return "must have at least " + fieldErr.Param() + " entries"
		}
		return "must be at least " + fieldErr.Param()
	case "max":
		return "must be at most " + fieldErr.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fieldErr.Param(), " ", ", ")
	}
	return "failed " + fieldErr.Tag() + " validation"
}
