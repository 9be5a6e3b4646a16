package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// HasTag reports whether any field failed the given validation tag.
func HasTag(err error, tag string) bool {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return false
	}
	for _, e := range validationErrors {
		if e.Tag() == tag {
			return true
		}
	}
	return false
}

// FormatValidationErrors converts validator.ValidationErrors to short log-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: required", e.Field())
	case "contact_email":
		return fmt.Sprintf("%s: invalid email format", e.Field())
	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: failed %s", e.Field(), e.Tag())
	}
}
