package docdbtest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/jdziat/docdb-go/pkg/auth"
	pkghttp "github.com/jdziat/docdb-go/pkg/http"
	"github.com/jdziat/docdb-go/pkg/resource"
)

// MockServer is a test HTTP server that records requests for verification.
type MockServer struct {
	*httptest.Server

	key string

	mu       sync.Mutex
	requests []*RecordedRequest

	// ResponseFunc allows customizing responses. If nil, the server echoes
	// the resource it was asked for.
	ResponseFunc func(r *http.Request) (int, any)
}

// RecordedRequest represents a recorded HTTP request.
type RecordedRequest struct {
	Method      string
	Path        string
	Query       string
	Body        []byte
	ContentType string
	Header      http.Header
	// SignatureValid is true when the Authorization header matched the
	// token recomputed from the method, path and x-ms-date.
	SignatureValid bool
}

// NewMockServer creates a plain HTTP mock server. When key is non-empty
// every request's signature is verified against it.
func NewMockServer(key string) *MockServer {
	ms := newMockServer(key)
	ms.Server = httptest.NewServer(http.HandlerFunc(ms.handle))
	return ms
}

// NewTLSMockServer creates an HTTPS mock server. Use its Client() to talk
// to it.
func NewTLSMockServer(key string) *MockServer {
	ms := newMockServer(key)
	ms.Server = httptest.NewTLSServer(http.HandlerFunc(ms.handle))
	return ms
}

func newMockServer(key string) *MockServer {
	return &MockServer{
		key:      key,
		requests: make([]*RecordedRequest, 0),
	}
}

func (ms *MockServer) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	rec := &RecordedRequest{
		Method:      r.Method,
		Path:        r.URL.Path,
		Query:       r.URL.RawQuery,
		Body:        body,
		ContentType: r.Header.Get(pkghttp.HeaderContentType),
		Header:      r.Header.Clone(),
	}
	rec.SignatureValid = ms.verify(r)

	ms.mu.Lock()
	ms.requests = append(ms.requests, rec)
	fn := ms.ResponseFunc
	ms.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(pkghttp.HeaderMSActivityID, r.Header.Get(pkghttp.HeaderMSActivityID))

	if ms.key != "" && !rec.SignatureValid {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{
			"code":    "Unauthorized",
			"message": "The input authorization token can't serve the request. Please check that the expected payload is built as per the protocol, and check the key being used.",
		})
		return
	}

	status := http.StatusOK
	var response any
	if fn != nil {
		status, response = fn(r)
	} else {
		response = defaultResponse(r)
	}

	w.WriteHeader(status)
	if raw, ok := response.(RawBody); ok {
		w.Write([]byte(raw))
		return
	}
	if response != nil {
		json.NewEncoder(w).Encode(response)
	}
}

// verify recomputes the expected token for r.
func (ms *MockServer) verify(r *http.Request) bool {
	if ms.key == "" {
		return true
	}
	info, err := resource.ParsePath(r.URL.Path)
	if err != nil {
		return false
	}
	signed, err := auth.SignAt(ms.key, r.Method, info, r.Header.Get(pkghttp.HeaderMSDate))
	if err != nil {
		return false
	}
	return signed.Authorization == r.Header.Get(pkghttp.HeaderAuthorization)
}

// defaultResponse describes the addressed resource, loosely shaped like
// the service's resource bodies.
func defaultResponse(r *http.Request) map[string]any {
	info, _ := resource.ParsePath(r.URL.Path)
	if info.Feed {
		body := map[string]any{"_rid": "", "_count": 0}
		body[resourceListKey(info)] = []any{}
		return body
	}
	return map[string]any{
		"id":    lastSegment(r.URL.Path),
		"_rid":  "mock",
		"_self": info.ResourceID,
	}
}

// resourceListKey maps a feed type to the array field the service uses.
func resourceListKey(info resource.Info) string {
	switch info.ResourceType {
	case "dbs":
		return "Databases"
	case "colls":
		return "DocumentCollections"
	case "docs":
		return "Documents"
	case "users":
		return "Users"
	case "permissions":
		return "Permissions"
	default:
		return info.ResourceType
	}
}

func lastSegment(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}

// RawBody is written to the response as-is instead of being JSON encoded.
type RawBody string

// Endpoint returns the full URL for a REST path on this server.
func (ms *MockServer) Endpoint(path string) string {
	return ms.URL + path
}

// Requests returns all recorded requests.
func (ms *MockServer) Requests() []*RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([]*RecordedRequest{}, ms.requests...)
}

// RequestCount returns the number of recorded requests.
func (ms *MockServer) RequestCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.requests)
}

// Reset clears all recorded requests.
func (ms *MockServer) Reset() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.requests = make([]*RecordedRequest, 0)
}

// LastRequest returns the most recent request, or nil if none.
func (ms *MockServer) LastRequest() *RecordedRequest {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if len(ms.requests) == 0 {
		return nil
	}
	return ms.requests[len(ms.requests)-1]
}

// SetResponseFunc sets the response function for customizing responses.
func (ms *MockServer) SetResponseFunc(fn func(r *http.Request) (int, any)) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.ResponseFunc = fn
}

// Response scenarios

// RespondWith configures the server to respond with a custom status and body.
func (ms *MockServer) RespondWith(statusCode int, body any) {
	ms.SetResponseFunc(func(r *http.Request) (int, any) {
		return statusCode, body
	})
}

// RespondWithError configures the server to respond with a service-style
// error body.
func (ms *MockServer) RespondWithError(statusCode int, code, message string) {
	ms.RespondWith(statusCode, map[string]string{
		"code":    code,
		"message": message,
	})
}

// RespondWithNotFound configures the server to respond with 404.
func (ms *MockServer) RespondWithNotFound() {
	ms.RespondWithError(http.StatusNotFound, "NotFound", "Entity with the specified id does not exist in the system.")
}

// RespondWithConflict configures the server to respond with 409.
func (ms *MockServer) RespondWithConflict() {
	ms.RespondWithError(http.StatusConflict, "Conflict", "Entity with the specified id already exists in the system.")
}

// HasRequestWithPath returns true if any request matched the given path.
func (ms *MockServer) HasRequestWithPath(path string) bool {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for _, req := range ms.requests {
		if req.Path == path {
			return true
		}
	}
	return false
}
