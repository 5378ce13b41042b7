// Package form sanitizes and validates contact form fields. Sanitization runs
// on every field change so stored form state is always within bounds;
// validation re-derives pass/fail at submit time so injected state cannot
// bypass the per-change clamp.
package form

import (
	"errors"
	"regexp"
)

// FieldLimits maps field names to their maximum length in characters.
var FieldLimits = map[string]int{
	"name":    100,
	"email":   100,
	"phone":   20,
	"message": 2000,
}

// defaultFieldLimit clamps unrecognized fields.
const defaultFieldLimit = 1000

// phoneDisallowed matches every character not valid in a phone number.
var phoneDisallowed = regexp.MustCompile(`[^0-9+\-\s()]`)

// emailPattern is a deliberately loose local@domain.tld check.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validation failures. Messages shown to the user stay category-level, not
// per-field; see Message.
var (
	ErrMissingRequired = errors.New("form: required field empty")
	ErrFieldTooLong    = errors.New("form: field exceeds maximum length")
	ErrInvalidEmail    = errors.New("form: malformed email")
)

// Sanitize cleans a single field value. The phone field is stripped to its
// allow-list (digits, spaces, +, -, parentheses) before the length clamp;
// every other field only gets the clamp. Sanitize is idempotent.
func Sanitize(field, value string) string {
	if field == "phone" {
		value = phoneDisallowed.ReplaceAllString(value, "")
	}
	limit, ok := FieldLimits[field]
	if !ok {
		limit = defaultFieldLimit
	}
	runes := []rune(value)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return value
}

// Form is the contact form state at submit time.
type Form struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Validate checks the form against the submission rules, short-circuiting at
// the first failure: required fields, length bounds, then email shape.
func Validate(f Form) error {
	if f.Name == "" || f.Email == "" || f.Message == "" {
		return ErrMissingRequired
	}
	if len([]rune(f.Name)) > FieldLimits["name"] ||
		len([]rune(f.Email)) > FieldLimits["email"] ||
		len([]rune(f.Phone)) > FieldLimits["phone"] ||
		len([]rune(f.Message)) > FieldLimits["message"] {
		return ErrFieldTooLong
	}
	if !emailPattern.MatchString(f.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// Message returns the user-facing text for a validation failure. The site is
// Spanish-language and the messages intentionally name the problem category
// rather than the offending field.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrMissingRequired):
		return "Por favor completa todos los campos requeridos."
	case errors.Is(err, ErrFieldTooLong):
		return "Uno o más campos exceden la longitud máxima permitida."
	case errors.Is(err, ErrInvalidEmail):
		return "Por favor ingresa un email válido."
	default:
		return ""
	}
}
