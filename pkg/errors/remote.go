package errors

import (
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// NewRemoteError builds a KindRemote error from a non-2xx response. The
// message is taken from the service's JSON error body when present.
func NewRemoteError(status int, body []byte) *Error {
	return &Error{
		Kind:       KindRemote,
		Message:    DescribeRemote(status, body),
		HTTPStatus: status,
	}
}

// DescribeRemote extracts a human readable description from an error body
// of the form {"code": "...", "message": "..."}. It falls back to the
// status text when the body carries neither field.
func DescribeRemote(status int, body []byte) string {
	if len(body) > 0 && gjson.ValidBytes(body) {
		res := gjson.GetManyBytes(body, "code", "message")
		code, msg := res[0].String(), firstLine(res[1].String())
		switch {
		case code != "" && msg != "":
			return code + ": " + msg
		case msg != "":
			return msg
		case code != "":
			return code
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "unexpected response status"
}

// firstLine trims the multi-line diagnostics some services append to
// error messages.
func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return strings.TrimSpace(s)
}

// IsNotFound returns true if err is a remote 404.
func IsNotFound(err error) bool {
	return remoteStatus(err) == http.StatusNotFound
}

// IsUnauthorized returns true if err is a remote 401, typically a signature
// mismatch.
func IsUnauthorized(err error) bool {
	return remoteStatus(err) == http.StatusUnauthorized
}

// IsConflict returns true if err is a remote 409.
func IsConflict(err error) bool {
	return remoteStatus(err) == http.StatusConflict
}

func remoteStatus(err error) int {
	if e, ok := AsError(err); ok && e.Kind == KindRemote {
		return e.HTTPStatus
	}
	return 0
}
