package domain

import (
	"errors"
	"strings"
)

// ErrOrderNotFound is returned when the targeted order no longer exists.
var ErrOrderNotFound = errors.New("order not found")

// ValidationError blocks a submission before any store call is made.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, ", ")
}

// IsValidationError reports whether err is a submission validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
