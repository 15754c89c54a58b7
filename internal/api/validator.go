package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator adapts go-playground/validator to echo's Validator interface.
// Validation failures surface as a 400 whose body maps each offending json
// field name to its list of error messages.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return echo.NewHTTPError(http.StatusBadRequest, fieldErrors(verrs))
	}

	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

func fieldErrors(verrs validator.ValidationErrors) map[string][]string {
	messages := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		messages[fe.Field()] = append(messages[fe.Field()], fieldMessage(fe))
	}
	return messages
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Missing data for required field."
	case "email":
		return "Not a valid email address."
	case "min":
		return fmt.Sprintf("Shorter than minimum length %s.", fe.Param())
	default:
		return fmt.Sprintf("Invalid value for field %s.", fe.Field())
	}
}
