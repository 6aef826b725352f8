package subscription

import "fmt"

// ValidationError is raised when the submission adapter finds required
// configuration missing or inconsistent. The wizard keeps its session open
// and points the user at the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// NotFoundError indicates the requested subscription does not exist.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("subscription %s not found", e.ID)
}
