package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for the failure taxonomy. Repositories and services wrap
// these with context; handlers match them with errors.Is.
var (
	// ErrItemNotFound signals an operation targeting a nonexistent item ID.
	ErrItemNotFound = errors.New("item not found")
	// ErrExportEmpty signals an export invoked with zero eligible items.
	ErrExportEmpty = errors.New("nothing to export")
	// ErrUserExists signals a registration colliding with an existing
	// username or email.
	ErrUserExists = errors.New("user already exists")
)

// ValidationError reports malformed or out-of-range input, keyed by field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// WrapValidationError converts validator.ValidationErrors into a
// ValidationError. Other errors pass through unchanged.
func WrapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fmt.Sprintf("failed on the '%s' tag", fe.Tag())
	}
	return &ValidationError{Fields: fields}
}
