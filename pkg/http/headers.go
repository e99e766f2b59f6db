package http

// Header names and values sent with every request.
const (
	// HeaderAccept is the Accept header.
	HeaderAccept = "Accept"

	// HeaderAuthorization carries the percent-encoded master token.
	HeaderAuthorization = "Authorization"

	// HeaderCacheControl is the Cache-Control header.
	HeaderCacheControl = "Cache-Control"

	// HeaderContentType is the Content-Type header, set for POST and PUT.
	HeaderContentType = "Content-Type"

	// HeaderMSDate is the request timestamp. It must match the date used
	// in the signature.
	HeaderMSDate = "x-ms-date"

	// HeaderMSVersion selects the REST API version.
	HeaderMSVersion = "x-ms-version"

	// HeaderMSActivityID correlates a request with server-side diagnostics.
	HeaderMSActivityID = "x-ms-activity-id"

	// ContentTypeJSON is used for Accept and for request bodies.
	ContentTypeJSON = "application/json"

	// NoCache is the Cache-Control value.
	NoCache = "no-cache"

	// DefaultAPIVersion is the x-ms-version sent unless overridden.
	DefaultAPIVersion = "2015-12-16"
)
