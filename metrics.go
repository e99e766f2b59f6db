package docdb

import (
	"strings"
	"time"
)

// Metrics is an optional interface for request telemetry.
// pkg/metrics provides a Prometheus implementation.
type Metrics interface {
	// IncrementCounter increments a counter metric.
	IncrementCounter(name string, value int64)
	// RecordDuration records a duration metric.
	RecordDuration(name string, duration time.Duration)
	// SetGauge sets a gauge metric.
	SetGauge(name string, value float64)
}

// Metric names recorded by IssueRequest.
const (
	MetricRequests        = "docdb.requests"
	MetricRequestFailures = "docdb.requests.failed"
	MetricRequestDuration = "docdb.request.duration"
	MetricResponseBytes   = "docdb.response.bytes"
)

// metricsRecorder wraps Metrics so callers need not nil-check.
type metricsRecorder struct {
	metrics Metrics
}

func (r metricsRecorder) request() {
	if r.metrics != nil {
		r.metrics.IncrementCounter(MetricRequests, 1)
	}
}

func (r metricsRecorder) finished(res *Result, d time.Duration) {
	if r.metrics == nil {
		return
	}
	r.metrics.RecordDuration(MetricRequestDuration, d)
	if res.OK() {
		r.metrics.SetGauge(MetricResponseBytes, float64(len(res.JSONResponse)))
		return
	}
	r.metrics.IncrementCounter(MetricRequestFailures, 1)
	if k := kindForStatus(res.StatusCode); k != "" {
		r.metrics.IncrementCounter(MetricRequestFailures+"."+strings.ToLower(string(k)), 1)
	}
}
