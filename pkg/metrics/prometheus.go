// Package metrics provides a Prometheus implementation of the docdb
// Metrics interface.
package metrics

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus records docdb metrics as Prometheus collectors. Collectors are
// created on first use and registered with the given Registerer.
//
// Dotted names are converted to Prometheus form: "docdb.http.requests"
// becomes the counter "docdb_http_requests_total", "docdb.request.duration"
// becomes the histogram "docdb_request_duration_seconds".
//
// A collector the registry rejects still records locally but is never
// exported. Rejections are counted in docdb_metrics_registration_errors_total
// and returned by Err.
type Prometheus struct {
	reg prometheus.Registerer

	mu         sync.Mutex
	counters   map[string]prometheus.Counter
	histograms map[string]prometheus.Histogram
	gauges     map[string]prometheus.Gauge
	failed     prometheus.Counter
	errs       []error
}

// NewPrometheus creates a Prometheus recorder. A nil Registerer uses
// prometheus.DefaultRegisterer.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	p := &Prometheus{
		reg:        reg,
		counters:   make(map[string]prometheus.Counter),
		histograms: make(map[string]prometheus.Histogram),
		gauges:     make(map[string]prometheus.Gauge),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "docdb_metrics_registration_errors_total",
			Help: "Collectors the registry refused to register.",
		}),
	}
	p.failed = register(p, p.failed)
	return p
}

// Err returns the registration failures seen so far, or nil.
func (p *Prometheus) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}

// IncrementCounter adds value to the named counter.
func (p *Prometheus) IncrementCounter(name string, value int64) {
	if value < 0 {
		return
	}
	p.mu.Lock()
	c, ok := p.counters[name]
	if !ok {
		c = register(p, prometheus.NewCounter(prometheus.CounterOpts{
			Name: Sanitize(name) + "_total",
			Help: "docdb counter " + name,
		}))
		p.counters[name] = c
	}
	p.mu.Unlock()
	c.Add(float64(value))
}

// RecordDuration observes d in seconds on the named histogram.
func (p *Prometheus) RecordDuration(name string, d time.Duration) {
	p.mu.Lock()
	h, ok := p.histograms[name]
	if !ok {
		h = register(p, prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    Sanitize(name) + "_seconds",
			Help:    "docdb duration " + name,
			Buckets: prometheus.DefBuckets,
		}))
		p.histograms[name] = h
	}
	p.mu.Unlock()
	h.Observe(d.Seconds())
}

// SetGauge sets the named gauge.
func (p *Prometheus) SetGauge(name string, value float64) {
	p.mu.Lock()
	g, ok := p.gauges[name]
	if !ok {
		g = register(p, prometheus.NewGauge(prometheus.GaugeOpts{
			Name: Sanitize(name),
			Help: "docdb gauge " + name,
		}))
		p.gauges[name] = g
	}
	p.mu.Unlock()
	g.Set(value)
}

// register registers c, reusing an identical collector that is already
// registered (for example by another Prometheus recorder on the same
// registry). Other failures are recorded and c is returned unregistered.
func register[T prometheus.Collector](p *Prometheus, c T) T {
	err := p.reg.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing
		}
	}
	p.failed.Inc()
	p.errs = append(p.errs, err)
	return c
}

// Sanitize converts a dotted metric name into a valid Prometheus name.
func Sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == ':':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
