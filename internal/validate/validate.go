// Package validate collects per-field input failures so the HTTP layer
// can return them as a 422 with one message per rejected field.
package validate

import (
	"fmt"
	"strings"
)

// FieldError describes a single rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error aggregates field errors for one request.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a failure for a field.
func (e *Error) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// OrNil returns the error when any field failed, nil otherwise.
func (e *Error) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Length adds an error unless min <= len(value) <= max.
func (e *Error) Length(field, value string, min, max int) {
	if n := len(value); n < min || n > max {
		e.Add(field, fmt.Sprintf("must be between %d and %d characters", min, max))
	}
}
