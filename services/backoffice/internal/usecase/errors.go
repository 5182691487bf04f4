package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("invalid username or password")
)

// ValidationError reports missing or malformed input fields.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// MissingFields builds the error returned when required fields are absent.
func MissingFields(fields ...string) *ValidationError {
	return &ValidationError{
		Message: fmt.Sprintf("Missing required fields: %s.", strings.Join(fields, ", ")),
		Fields:  fields,
	}
}

// InvalidFields builds the error returned when fields cannot be parsed.
func InvalidFields(fields ...string) *ValidationError {
	return &ValidationError{
		Message: fmt.Sprintf("Invalid value for: %s.", strings.Join(fields, ", ")),
		Fields:  fields,
	}
}
