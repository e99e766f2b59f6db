// Package errors provides the error taxonomy for the docdb client helper.
//
// Every failure the helper can report belongs to one Kind:
//
//   - KindInvalidVerb: the HTTP verb is not GET, POST, PUT or DELETE
//   - KindInvalidURL: the endpoint URL does not match the expected grammar
//   - KindInvalidResourcePath: the REST path cannot be split into type and id
//   - KindInvalidKey: the shared key is not valid base64
//   - KindTransport: network, DNS or TLS failure while dispatching
//   - KindRemote: the server answered with a non-2xx status
//
// Each Kind maps to a fixed, non-zero envelope status code (see StatusCode).
// Errors are comparable with errors.Is against the sentinel values:
//
//	if stdErrors.Is(err, errors.ErrInvalidVerb) {
//	    // reject before any network call
//	}
//
// and carry details through *Error:
//
//	var docErr *errors.Error
//	if stdErrors.As(err, &docErr) {
//	    log.Printf("kind=%s status=%d", docErr.Kind, docErr.HTTPStatus)
//	}
package errors
