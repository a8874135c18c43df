package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the service layer. Handlers map these to
// HTTP status codes; callers test them with errors.Is.
var (
	// ErrNotFound: the requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists: a uniqueness constraint rejected the write.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput: the request failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrActiveSession: the recall set already has an in-progress session.
	ErrActiveSession = errors.New("recall set already has an active session")

	// ErrNoDuePoints: a session was requested but nothing in the set is due.
	ErrNoDuePoints = errors.New("recall set has no due points")

	// ErrSessionEnded: the session is completed or abandoned and cannot change.
	ErrSessionEnded = errors.New("session already ended")
)

// ValidationError reports which field failed validation and why.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
