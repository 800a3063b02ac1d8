package valueobject

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is an immutable, validated e-mail address.
type Email struct {
	value string
}

// NewEmail trims and validates the raw input. The zero Email is never
// returned alongside a nil error.
func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Email{}, newValidationError("Email is required")
	}
	if !emailRegex.MatchString(trimmed) {
		return Email{}, newValidationError("Please provide a valid e-mail")
	}
	return Email{value: trimmed}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

func (e Email) String() string {
	return e.value
}
