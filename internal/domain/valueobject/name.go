package valueobject

import "strings"

const nameMinLength = 2

// Name is a validated display name.
type Name struct {
	value string
}

func NewName(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Name{}, newValidationError("Name is required")
	}
	if len([]rune(trimmed)) < nameMinLength {
		return Name{}, newValidationError("Name must have at least 2 characters")
	}
	return Name{value: trimmed}, nil
}

func (n Name) Value() string {
	return n.value
}

func (n Name) String() string {
	return n.value
}
