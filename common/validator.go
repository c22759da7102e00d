package common

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// The waitlist form only promises a "local@domain" shape, deliberately far
// short of full RFC email validation.
var basicEmailPattern = regexp.MustCompile(`^\S+@\S+$`)

func init() {
	validate.RegisterValidation("basic_email", validateBasicEmail)
}

func validateBasicEmail(fl validator.FieldLevel) bool {
	return basicEmailPattern.MatchString(fl.Field().String())
}

// FieldError is one failed rule on one form field. The pair (Field, Rule)
// is stable for programmatic checks; Message is what gets rendered inline.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidateStruct runs the declarative rules bound to the payload's fields
// and returns one entry per failure. A nil result means the payload is
// valid. The result is independent of any UI binding, so both the HTML form
// layer and the JSON API share it.
func ValidateStruct(payload interface{}) []FieldError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Rule: "invalid", Message: err.Error()}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Rule:    fe.Tag(),
			Message: fieldMessage(fe),
		})
	}
	return fieldErrors
}

// fieldMessage formats a single rule failure into a user-facing message.
func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "basic_email":
		return "a valid email is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
