package errors

import "fmt"

// ValidationError describes why an input was rejected before any request
// was made. It unwraps to the Error of the matching Kind.
type ValidationError struct {
	Field string
	Value string
	Kind  Kind
	Err   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("docdb: invalid %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("docdb: invalid %s %q", e.Field, e.Value)
}

// Unwrap returns an *Error so that errors.Is(err, ErrInvalidURL) and
// friends work on validation failures.
func (e *ValidationError) Unwrap() error {
	return &Error{Kind: e.Kind, Message: e.message(), Err: e.Err}
}

func (e *ValidationError) message() string {
	switch e.Kind {
	case KindInvalidVerb:
		return InvalidVerbDescription
	case KindInvalidURL:
		return "Invalid or unparsable URI: " + e.Value
	case KindInvalidResourcePath:
		return "Invalid or unparsable resource path: " + e.Value
	case KindInvalidKey:
		return "Invalid shared key: not valid base64"
	default:
		return fmt.Sprintf("invalid %s", e.Field)
	}
}

// NewValidationError creates a new validation error.
func NewValidationError(kind Kind, field, value string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Value: value}
}

// NewValidationErrorWithCause creates a validation error with an underlying cause.
func NewValidationErrorWithCause(kind Kind, field, value string, cause error) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Value: value, Err: cause}
}
