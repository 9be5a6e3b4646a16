package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// local@domain.tld with no whitespace and exactly one @ per segment.
	// Whitespace is the full Unicode set, not just RE2's ASCII \s.
	contactEmailRegex = regexp.MustCompile(`^` + emailPart + `+@` + emailPart + `+\.` + emailPart + `+$`)
)

const (
	unicodeSpace = `\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`
	emailPart    = `[^` + unicodeSpace + `@]`
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("contact_email", ContactEmail)
}

// New returns a validator with the custom tags already registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// ContactEmail validates the loose address shape accepted by the contact form.
// The stock "email" tag is stricter and would reject addresses the form accepts.
func ContactEmail(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return IsContactEmail(val)
}

func IsContactEmail(s string) bool {
	return contactEmailRegex.MatchString(s)
}
