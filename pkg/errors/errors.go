package errors

import (
	"errors"
	"fmt"
)

// Kind represents a category of failure.
type Kind string

// Failure kinds.
const (
	KindInvalidVerb         Kind = "INVALID_VERB"
	KindInvalidURL          Kind = "INVALID_URL"
	KindInvalidResourcePath Kind = "INVALID_RESOURCE_PATH"
	KindInvalidKey          Kind = "INVALID_KEY"
	KindTransport           Kind = "TRANSPORT"
	KindRemote              Kind = "REMOTE"
)

// Envelope status codes. Zero means success.
const (
	StatusOK                  = 0
	StatusInvalidVerb         = -1
	StatusInvalidURL          = -2
	StatusInvalidResourcePath = -3
	StatusInvalidKey          = -4
	StatusTransportFailure    = -5
	StatusRemoteError         = -6
	StatusUnknown             = -99
)

// InvalidVerbDescription is the envelope description for a rejected verb.
const InvalidVerbDescription = "Invalid verb, options are GET, POST, PUT and DEL"

// Sentinel errors for use with errors.Is. They match on Kind only.
var (
	ErrInvalidVerb         = &Error{Kind: KindInvalidVerb}
	ErrInvalidURL          = &Error{Kind: KindInvalidURL}
	ErrInvalidResourcePath = &Error{Kind: KindInvalidResourcePath}
	ErrInvalidKey          = &Error{Kind: KindInvalidKey}
	ErrTransport           = &Error{Kind: KindTransport}
	ErrRemote              = &Error{Kind: KindRemote}
)

// Error is the single error type reported by the helper.
type Error struct {
	Kind    Kind
	Message string
	// HTTPStatus is the server status for KindRemote, zero otherwise.
	HTTPStatus int
	Err        error
}

// New creates an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error that wraps cause. The message defaults to the
// cause's text when empty.
func Wrap(kind Kind, message string, cause error) *Error {
	if message == "" && cause != nil {
		message = cause.Error()
	}
	return &Error{Kind: kind, Message: message, Err: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("docdb: %s", e.Kind)
	}
	if e.HTTPStatus != 0 {
		return fmt.Sprintf("docdb: %s (status %d): %s", e.Kind, e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("docdb: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind, allowing comparisons like errors.Is(err, ErrInvalidURL).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// StatusCode returns the envelope status code for the error's kind.
func (e *Error) StatusCode() int {
	return StatusCodeFor(e.Kind)
}

// Description returns the text placed in the envelope's errorDescription.
func (e *Error) Description() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Kind == KindInvalidVerb {
		return InvalidVerbDescription
	}
	return string(e.Kind)
}

// StatusCodeFor maps a Kind to its envelope status code.
func StatusCodeFor(kind Kind) int {
	switch kind {
	case KindInvalidVerb:
		return StatusInvalidVerb
	case KindInvalidURL:
		return StatusInvalidURL
	case KindInvalidResourcePath:
		return StatusInvalidResourcePath
	case KindInvalidKey:
		return StatusInvalidKey
	case KindTransport:
		return StatusTransportFailure
	case KindRemote:
		return StatusRemoteError
	default:
		return StatusUnknown
	}
}

// KindOf returns the Kind of err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
