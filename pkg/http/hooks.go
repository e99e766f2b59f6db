package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// HookPriority decides what a hook failure does to the request.
type HookPriority int

const (
	// HookPriorityObservational hooks may fail or panic without affecting
	// the request. The failure is logged and counted.
	HookPriorityObservational HookPriority = iota

	// HookPriorityCritical hooks abort the request before it is sent when
	// BeforeRequest fails or panics.
	HookPriorityCritical
)

func (p HookPriority) String() string {
	switch p {
	case HookPriorityObservational:
		return "observational"
	case HookPriorityCritical:
		return "critical"
	}
	return "unknown"
}

// HTTPHook runs around the single round trip of a call.
type HTTPHook interface {
	// BeforeRequest sees the fully signed request and may add headers.
	// The signature headers must not be changed.
	BeforeRequest(ctx context.Context, req *http.Request) error

	// AfterResponse sees the response (nil on transport failure) before its
	// body is read.
	AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error)
}

// HTTPHookFunc builds an HTTPHook from optional functions.
type HTTPHookFunc struct {
	Before func(ctx context.Context, req *http.Request) error
	After  func(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error)
}

// BeforeRequest implements HTTPHook.
func (f HTTPHookFunc) BeforeRequest(ctx context.Context, req *http.Request) error {
	if f.Before == nil {
		return nil
	}
	return f.Before(ctx, req)
}

// AfterResponse implements HTTPHook.
func (f HTTPHookFunc) AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
	if f.After != nil {
		f.After(ctx, req, resp, duration, err)
	}
}

// ClassifiedHook is a named hook with a priority.
type ClassifiedHook struct {
	Hook     HTTPHook
	Priority HookPriority
	Name     string
}

// Logger is the subset of docdb.StructuredLogger the hooks need.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Metrics is the subset of docdb.Metrics the hooks need.
type Metrics interface {
	IncrementCounter(name string, value int64)
	RecordDuration(name string, duration time.Duration)
}

// Hook failure counters.
const (
	MetricHookFailures = "docdb.hooks.failures"
	MetricHookPanics   = "docdb.hooks.panics"
)

// Chain runs classified hooks in order before the request and in reverse
// order after it.
type Chain struct {
	hooks   []ClassifiedHook
	logger  Logger
	metrics Metrics
}

// NewChain creates an empty chain. logger and metrics may be nil.
func NewChain(logger Logger, metrics Metrics) *Chain {
	return &Chain{logger: logger, metrics: metrics}
}

// Add appends h. Entries without a Hook are ignored.
func (c *Chain) Add(h ClassifiedHook) {
	if h.Hook == nil {
		return
	}
	c.hooks = append(c.hooks, h)
}

// Len returns the number of hooks in the chain.
func (c *Chain) Len() int {
	return len(c.hooks)
}

// BeforeRequest runs every hook's BeforeRequest and stops at the first
// critical failure.
func (c *Chain) BeforeRequest(ctx context.Context, req *http.Request) error {
	for _, h := range c.hooks {
		if err := c.before(ctx, req, h); err != nil {
			return err
		}
	}
	return nil
}

func (c *Chain) before(ctx context.Context, req *http.Request, h ClassifiedHook) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		c.report(MetricHookPanics, "hook panicked", h, r)
		if h.Priority != HookPriorityObservational {
			err = fmt.Errorf("docdb: hook %q panicked: %v", h.Name, r)
		}
	}()

	if err = h.Hook.BeforeRequest(ctx, req); err == nil {
		return nil
	}
	c.report(MetricHookFailures, "hook failed", h, err)
	if h.Priority == HookPriorityObservational {
		return nil
	}
	return fmt.Errorf("docdb: hook %q failed: %w", h.Name, err)
}

// AfterResponse runs every hook's AfterResponse, last hook first. Panics
// are recovered and reported.
func (c *Chain) AfterResponse(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
	for i := len(c.hooks) - 1; i >= 0; i-- {
		c.after(ctx, req, resp, duration, err, c.hooks[i])
	}
}

func (c *Chain) after(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error, h ClassifiedHook) {
	defer func() {
		if r := recover(); r != nil {
			c.report(MetricHookPanics, "hook panicked", h, r)
		}
	}()
	h.Hook.AfterResponse(ctx, req, resp, duration, err)
}

func (c *Chain) report(metric, msg string, h ClassifiedHook, cause any) {
	if c.metrics != nil {
		c.metrics.IncrementCounter(metric, 1)
	}
	if c.logger != nil {
		c.logger.Warn(msg, "hook", h.Name, "priority", h.Priority, "error", cause)
	}
}

// LoggingHook logs each round trip at debug level and transport failures
// at warn level.
func LoggingHook(logger Logger) ClassifiedHook {
	return ClassifiedHook{
		Name:     "logging",
		Priority: HookPriorityObservational,
		Hook: HTTPHookFunc{
			Before: func(ctx context.Context, req *http.Request) error {
				logger.Debug("sending request", "method", req.Method, "url", req.URL.Redacted(),
					"activity_id", req.Header.Get(HeaderMSActivityID))
				return nil
			},
			After: func(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
				switch {
				case err != nil:
					logger.Warn("round trip failed", "method", req.Method, "path", req.URL.Path, "duration", duration, "error", err)
				case resp != nil:
					logger.Debug("response received", "method", req.Method, "path", req.URL.Path, "duration", duration, "status", resp.StatusCode)
				}
			},
		},
	}
}

// MetricsHook records per-round-trip counters:
//
//	docdb.http.requests, docdb.http.errors, docdb.http.status.<code>
//
// and the docdb.http.duration timing. A nil m gives a hook that does nothing.
func MetricsHook(m Metrics) ClassifiedHook {
	h := ClassifiedHook{Name: "metrics", Priority: HookPriorityObservational, Hook: HTTPHookFunc{}}
	if m == nil {
		return h
	}
	h.Hook = HTTPHookFunc{
		After: func(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
			m.IncrementCounter("docdb.http.requests", 1)
			m.RecordDuration("docdb.http.duration", duration)
			if err != nil {
				m.IncrementCounter("docdb.http.errors", 1)
				return
			}
			if resp != nil {
				m.IncrementCounter("docdb.http.status."+strconv.Itoa(resp.StatusCode), 1)
			}
		},
	}
	return h
}

// DebugHook logs every request and response header except Authorization.
func DebugHook(logger Logger) ClassifiedHook {
	return ClassifiedHook{
		Name:     "debug",
		Priority: HookPriorityObservational,
		Hook: HTTPHookFunc{
			Before: func(ctx context.Context, req *http.Request) error {
				for name, values := range req.Header {
					if http.CanonicalHeaderKey(name) != HeaderAuthorization {
						logger.Debug("request header", "name", name, "value", values)
					}
				}
				return nil
			},
			After: func(ctx context.Context, req *http.Request, resp *http.Response, duration time.Duration, err error) {
				if resp == nil {
					return
				}
				for name, values := range resp.Header {
					logger.Debug("response header", "name", name, "value", values)
				}
			},
		},
	}
}
