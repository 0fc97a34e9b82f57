package models

import "errors"

// ErrNotFound is matched by errors.Is on every NotFoundError.
var ErrNotFound = errors.New("not found")

// NotFoundError carries the message shown to API callers.
type NotFoundError struct {
	Message string
}

// NotFound returns an error matching ErrNotFound.
func NotFound(message string) error {
	return &NotFoundError{Message: message}
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ErrTeamNotFound is returned when a referenced team name does not resolve.
var ErrTeamNotFound = &NotFoundError{Message: "Domaćin ili gost nije pronađen"}

// ValidationError is a client error that is reported verbatim and never retried.
type ValidationError struct {
	Message string
}

// Invalid returns a ValidationError.
func Invalid(message string) error {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string { return e.Message }

// IsValidation reports whether err wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
