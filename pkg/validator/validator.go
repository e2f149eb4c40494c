package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

// Message renders the failure in a form suitable for a client response.
func (e *ErrorResponse) Message() string {
	field := e.FailedField
	if i := strings.LastIndex(field, "."); i >= 0 {
		field = field[i+1:]
	}
	if e.Value != "" {
		return fmt.Sprintf("Field '%s' failed on rule '%s=%s'", field, e.Tag, e.Value)
	}
	return fmt.Sprintf("Field '%s' failed on rule '%s'", field, e.Tag)
}

var validate = validator.New()

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}
