package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
)

// ErrorKind classifies a fatal statement-construction failure.
type ErrorKind string

const (
	// KindStructural marks a missing required field or sub-object.
	KindStructural ErrorKind = "structural"
	// KindFormat marks a malformed value (mbox, sha1sum, URI, language tag).
	KindFormat ErrorKind = "format"
	// KindInvariant marks a cross-field rule violation (IFI absence, score
	// bounds, unknown object type).
	KindInvariant ErrorKind = "invariant"
)

// Error is a single fatal validation failure in the statement pipeline.
// It carries a machine-checkable kind, the offending field, and (for
// format errors) the offending value.
type Error struct {
	Kind    ErrorKind
	Field   string
	Value   string
	Message string
}

func (e *Error) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s %q: %s", e.Kind, e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
}

func (e *Error) Unwrap() error { return ErrValidation }

// NewStructuralError reports a missing required field or object.
func NewStructuralError(field, message string) *Error {
	return &Error{Kind: KindStructural, Field: field, Message: message}
}

// NewFormatError reports a malformed value; the error text names the value.
func NewFormatError(field, value, message string) *Error {
	return &Error{Kind: KindFormat, Field: field, Value: value, Message: message}
}

// NewInvariantError reports a cross-field rule violation.
func NewInvariantError(field, value, message string) *Error {
	return &Error{Kind: KindInvariant, Field: field, Value: value, Message: message}
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates several field-level failures into one error.
// The result required-keys check reports all offending keys this way.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	fields := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		fields[i] = fe.Field
	}
	return fmt.Sprintf("validation: missing values or invalid types: %s", strings.Join(fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// DurationError reports an unparseable ISO 8601 duration. It is a distinct
// kind from Error and ValidationError so callers can handle it separately.
type DurationError struct {
	Value string
	Err   error
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("invalid ISO 8601 duration: %q", e.Value)
}

func (e *DurationError) Unwrap() error { return e.Err }
