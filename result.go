package docdb

import (
	"encoding/json"

	pkgerrors "github.com/jdziat/docdb-go/pkg/errors"
)

// Result is the envelope returned by every public operation.
type Result struct {
	// StatusCode is 0 on success and a negative Status* constant on failure.
	StatusCode int `json:"statusCode"`
	// ErrorDescription is empty on success.
	ErrorDescription string `json:"errorDescription"`
	// JSONResponse is the raw response body, or {} when no response was read.
	// It may be empty or not JSON at all; MarshalJSON copes with both.
	JSONResponse json.RawMessage `json:"jsonResponse"`

	// HTTPStatus is the server's status code when a response was received.
	HTTPStatus int `json:"httpStatus,omitempty"`
	// ActivityID is the x-ms-activity-id sent with the request.
	ActivityID string `json:"activityId,omitempty"`

	err error
}

// OK reports whether the operation succeeded.
func (r *Result) OK() bool {
	return r.StatusCode == StatusOK
}

// Err returns the failure as a Go error, or nil on success.
func (r *Result) Err() error {
	if r.OK() {
		return nil
	}
	if r.err != nil {
		return r.err
	}
	return &Error{Kind: kindForStatus(r.StatusCode), Message: r.ErrorDescription, HTTPStatus: r.HTTPStatus}
}

// MarshalJSON encodes the envelope. A body that is not valid JSON, such as
// the empty body of a 204 or an HTML error page, is encoded as a string.
func (r Result) MarshalJSON() ([]byte, error) {
	var body any = r.JSONResponse
	if !json.Valid(r.JSONResponse) {
		body = string(r.JSONResponse)
	}
	return json.Marshal(struct {
		StatusCode       int    `json:"statusCode"`
		ErrorDescription string `json:"errorDescription"`
		JSONResponse     any    `json:"jsonResponse"`
		HTTPStatus       int    `json:"httpStatus,omitempty"`
		ActivityID       string `json:"activityId,omitempty"`
	}{r.StatusCode, r.ErrorDescription, body, r.HTTPStatus, r.ActivityID})
}

func success(body []byte) *Result {
	if body == nil {
		body = []byte{}
	}
	return &Result{StatusCode: StatusOK, JSONResponse: body}
}

// failure converts err into an envelope. Errors that are not *Error are
// reported as transport failures.
func failure(err error) *Result {
	e, ok := pkgerrors.AsError(err)
	if !ok {
		e = pkgerrors.Wrap(KindTransport, "", err)
	}
	return &Result{
		StatusCode:       e.StatusCode(),
		ErrorDescription: e.Description(),
		JSONResponse:     []byte("{}"),
		HTTPStatus:       e.HTTPStatus,
		err:              err,
	}
}

// remoteFailure reports a non-2xx response, passing the body through.
func remoteFailure(status int, body []byte) *Result {
	e := pkgerrors.NewRemoteError(status, body)
	if body == nil {
		body = []byte{}
	}
	return &Result{
		StatusCode:       e.StatusCode(),
		ErrorDescription: e.Description(),
		JSONResponse:     body,
		HTTPStatus:       status,
		err:              e,
	}
}

func kindForStatus(status int) Kind {
	for _, k := range []Kind{KindInvalidVerb, KindInvalidURL, KindInvalidResourcePath, KindInvalidKey, KindTransport, KindRemote} {
		if pkgerrors.StatusCodeFor(k) == status {
			return k
		}
	}
	return ""
}
