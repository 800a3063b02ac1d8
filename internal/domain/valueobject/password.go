package valueobject

import "strings"

const passwordMinLength = 6

// Password is a validated plaintext password. It only lives between the
// request boundary and the hasher; the value itself is never persisted.
type Password struct {
	value string
}

func NewPassword(raw string) (Password, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Password{}, newValidationError("Password is required")
	}
	if len(trimmed) < passwordMinLength {
		return Password{}, newValidationError("Password must have at least 6 characters")
	}
	return Password{value: trimmed}, nil
}

func (p Password) Value() string {
	return p.value
}

// String masks the value so a Password can never leak through logging.
func (p Password) String() string {
	return "[REDACTED]"
}
