package resources

import (
	"errors"
	"fmt"
)

// ErrValidation matches any *ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError reports a bad argument caught before any request is sent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// RequireID fails with a ValidationError naming field when id is empty.
func RequireID(field, id string) error {
	if id == "" {
		return &ValidationError{Field: field, Reason: "is required"}
	}
	return nil
}
