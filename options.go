package docdb

import (
	"net/http"
	"time"

	"github.com/jdziat/docdb-go/pkg/auth"
	pkghttp "github.com/jdziat/docdb-go/pkg/http"
)

// Option adjusts a single IssueRequest call.
type Option func(*options)

// options holds the per-call configuration.
type options struct {
	doer       pkghttp.Doer
	timeout    time.Duration
	apiVersion string
	headers    http.Header
	logger     StructuredLogger
	metrics    Metrics
	hooks      []HTTPHook
	classified []ClassifiedHook
	clock      auth.Clock
	maxBody    int64
}

func defaultOptions() *options {
	return &options{
		doer:       http.DefaultClient,
		apiVersion: pkghttp.DefaultAPIVersion,
		headers:    make(http.Header),
		logger:     NopLogger{},
		clock:      auth.SystemClock,
		maxBody:    maxResponseSize,
	}
}

func newOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithHTTPClient sets the HTTP client used for the request.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		if client != nil {
			o.doer = client
		}
	}
}

// WithDoer sets a custom request executor, such as a test double.
func WithDoer(doer pkghttp.Doer) Option {
	return func(o *options) {
		if doer != nil {
			o.doer = doer
		}
	}
}

// WithTimeout bounds the whole call, including reading the body. Zero, the
// default, means no timeout beyond the caller's context.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithAPIVersion overrides the x-ms-version header.
func WithAPIVersion(version string) Option {
	return func(o *options) {
		if version != "" {
			o.apiVersion = version
		}
	}
}

// WithHeader adds an extra request header, e.g. x-ms-documentdb-is-upsert.
// Headers that carry the signature cannot be overridden this way.
func WithHeader(key, value string) Option {
	return func(o *options) {
		o.headers.Add(key, value)
	}
}

// WithLogger sets a printf-style logger.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = WrapPrintfLogger(logger)
		}
	}
}

// WithStructuredLogger sets a structured logger.
func WithStructuredLogger(logger StructuredLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(metrics Metrics) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

// WithHTTPHooks adds hooks that run around the request. Hooks added this
// way are critical: an error from BeforeRequest aborts the call.
//
//	res := docdb.IssueRequest(ctx, endpoint, key, "GET", "",
//	    docdb.WithHTTPHooks(docdb.HTTPHookFunc{
//	        Before: func(ctx context.Context, req *http.Request) error {
//	            req.Header.Set("x-ms-consistency-level", "Session")
//	            return nil
//	        },
//	    }),
//	)
func WithHTTPHooks(hooks ...HTTPHook) Option {
	return func(o *options) {
		o.hooks = append(o.hooks, hooks...)
	}
}

// WithClassifiedHooks adds hooks with explicit priorities. Observational
// hook failures are logged and ignored.
func WithClassifiedHooks(hooks ...ClassifiedHook) Option {
	return func(o *options) {
		o.classified = append(o.classified, hooks...)
	}
}

// WithClock sets the clock used for the x-ms-date header and signature.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithMaxResponseSize caps the number of response bytes read.
func WithMaxResponseSize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBody = n
		}
	}
}
