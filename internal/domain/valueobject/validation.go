package valueobject

// ValidationError carries the user-facing message for a rejected input.
// Message texts are part of the API contract and must not be reworded.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
