package web

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// GetErrorMsg converts validation errors into a human readable message.
func GetErrorMsg(ve validator.ValidationErrors) string {
	msgs := make([]string, 0, len(ve))

	for _, fe := range ve {
		msgs = append(msgs, fe.Field()+getErrorMsg(fe))
	}

	return strings.Join(msgs, "; ")
}

func getErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "email":
		return " field must be a valid email address"
	case "alphanum":
		return " field must contain only alphanumeric characters"
	case "min":
		return fmt.Sprintf(" field must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf(" field must be at most %s characters", fe.Param())
	case "datetime":
		return fmt.Sprintf(" field must match the %s format", fe.Param())
	}

	return " field is invalid"
}
