package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Phone numbers: digits with optional leading +, spaces, dashes and parentheses.
	PhonePattern = `^\+?[0-9 ()\-]{7,20}$`

	// Short codes such as subject or department codes.
	CodePattern = `^[A-Za-z0-9_\-]{1,20}$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Phone *regexp.Regexp
	Code  *regexp.Regexp
}{
	Phone: regexp.MustCompile(PhonePattern),
	Code:  regexp.MustCompile(CodePattern),
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.Phone.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("code", func(fl validator.FieldLevel) bool {
		return CompiledPatterns.Code.MatchString(fl.Field().String())
	})
	return v
}

// Validator exposes the shared instance so callers can register it elsewhere (e.g. gin binding).
func Validator() *validator.Validate {
	return validate
}

// Check validates a single value against a validator tag such as "required,email" and
// returns a user-facing message, or "" when the value passes.
func Check(label string, value interface{}, tag string) string {
	if tag == "" {
		return ""
	}
	err := validate.Var(value, tag)
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Sprintf("%s is invalid.", label)
	}
	return Message(label, verrs[0])
}

// Message turns one validator failure into display text.
func Message(label string, fe validator.FieldError) string {
	isString := fe.Kind().String() == "string"
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", label)
	case "email":
		return "Enter a valid email address."
	case "url", "http_url":
		return "Enter a valid URL."
	case "phone":
		return "Enter a valid phone number."
	case "code":
		return fmt.Sprintf("%s may only contain letters, digits, dashes and underscores.", label)
	case "numeric", "number":
		return fmt.Sprintf("%s must be a number.", label)
	case "datetime":
		return fmt.Sprintf("%s must be a valid date.", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", label, strings.Join(strings.Fields(fe.Param()), ", "))
	case "min", "gte":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "max", "lte":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s.", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}
