package docdb

import (
	pkgerrors "github.com/jdziat/docdb-go/pkg/errors"
)

// Kind categorizes failures. See pkg/errors for details.
type Kind = pkgerrors.Kind

// Error is the error type carried by Result.Err.
type Error = pkgerrors.Error

// ValidationError describes an input rejected before dispatch.
type ValidationError = pkgerrors.ValidationError

// Failure kinds.
const (
	KindInvalidVerb         = pkgerrors.KindInvalidVerb
	KindInvalidURL          = pkgerrors.KindInvalidURL
	KindInvalidResourcePath = pkgerrors.KindInvalidResourcePath
	KindInvalidKey          = pkgerrors.KindInvalidKey
	KindTransport           = pkgerrors.KindTransport
	KindRemote              = pkgerrors.KindRemote
)

// Envelope status codes.
const (
	StatusOK                  = pkgerrors.StatusOK
	StatusInvalidVerb         = pkgerrors.StatusInvalidVerb
	StatusInvalidURL          = pkgerrors.StatusInvalidURL
	StatusInvalidResourcePath = pkgerrors.StatusInvalidResourcePath
	StatusInvalidKey          = pkgerrors.StatusInvalidKey
	StatusTransportFailure    = pkgerrors.StatusTransportFailure
	StatusRemoteError         = pkgerrors.StatusRemoteError
)

// Sentinel errors for use with errors.Is.
var (
	ErrInvalidVerb         = pkgerrors.ErrInvalidVerb
	ErrInvalidURL          = pkgerrors.ErrInvalidURL
	ErrInvalidResourcePath = pkgerrors.ErrInvalidResourcePath
	ErrInvalidKey          = pkgerrors.ErrInvalidKey
	ErrTransport           = pkgerrors.ErrTransport
	ErrRemote              = pkgerrors.ErrRemote
)

// IsNotFound returns true if err is a remote 404.
func IsNotFound(err error) bool {
	return pkgerrors.IsNotFound(err)
}

// IsUnauthorized returns true if err is a remote 401. For master-key
// requests this almost always means the signature did not match.
func IsUnauthorized(err error) bool {
	return pkgerrors.IsUnauthorized(err)
}

// IsConflict returns true if err is a remote 409.
func IsConflict(err error) bool {
	return pkgerrors.IsConflict(err)
}
