package resource

import (
	"regexp"
	"strings"

	docerrors "github.com/jdziat/docdb-go/pkg/errors"
)

// urlPattern matches [protocol://]host[:port]path/file[?query][#hash].
var urlPattern = regexp.MustCompile(`^(?:(?i:(https?))://)?([^:/\s?#]+)(?::(\d*))?((?:/[^/?#\s]+)*/)([^/?#\s]*)(?:\?([^#\s]*))?(?:#(\S*))?$`)

const (
	groupProtocol = iota + 1
	groupHost
	groupPort
	groupPath
	groupFile
	groupQuery
	groupFragment
)

// URLParts is an endpoint URL decomposed for dispatch and signing.
type URLParts struct {
	Protocol string
	Host     string
	Port     string
	// Path is the directory component, always ending in "/".
	Path string
	// File is the last path segment.
	File     string
	Query    string
	Fragment string
}

// ParseURL decomposes raw with a single match against the endpoint grammar.
// Input that does not match returns an error of kind KindInvalidURL.
func ParseURL(raw string) (URLParts, error) {
	m := urlPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return URLParts{}, docerrors.NewValidationError(docerrors.KindInvalidURL, "url", raw)
	}
	return URLParts{
		Protocol: strings.ToLower(m[groupProtocol]),
		Host:     m[groupHost],
		Port:     m[groupPort],
		Path:     m[groupPath],
		File:     m[groupFile],
		Query:    m[groupQuery],
		Fragment: m[groupFragment],
	}, nil
}

// ResourcePath returns the REST path addressed by the URL.
func (p URLParts) ResourcePath() string {
	return p.Path + p.File
}

// Scheme returns the protocol, defaulting to https.
func (p URLParts) Scheme() string {
	if p.Protocol == "" {
		return "https"
	}
	return p.Protocol
}

// HostPort returns host, or host:port when a port was given.
func (p URLParts) HostPort() string {
	if p.Port == "" {
		return p.Host
	}
	return p.Host + ":" + p.Port
}

// RequestURI returns the path, file and query as sent on the wire.
func (p URLParts) RequestURI() string {
	uri := p.ResourcePath()
	if p.Query != "" {
		uri += "?" + p.Query
	}
	return uri
}

// String reassembles the URL used for dispatch. The fragment is dropped.
func (p URLParts) String() string {
	return p.Scheme() + "://" + p.HostPort() + p.RequestURI()
}
