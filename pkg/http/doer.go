// Package http provides HTTP plumbing for the docdb client helper: header
// names, the Doer abstraction and request/response hooks.
package http

import "net/http"

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Ensure *http.Client implements Doer.
var _ Doer = (*http.Client)(nil)
