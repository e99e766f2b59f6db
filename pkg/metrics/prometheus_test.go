package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"docdb.requests", "docdb_requests"},
		{"docdb.http.status.201", "docdb_http_status_201"},
		{"docdb.requests.INVALID_URL", "docdb_requests_INVALID_URL"},
		{"5xx-errors", "_5xx_errors"},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrometheus_Counter(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg)

	p.IncrementCounter("docdb.requests", 1)
	p.IncrementCounter("docdb.requests", 2)
	p.IncrementCounter("docdb.requests", -5)

	if got := testutil.ToFloat64(p.counters["docdb.requests"]); got != 3 {
		t.Errorf("counter = %v, want 3", got)
	}

	expected := `
# HELP docdb_requests_total docdb counter docdb.requests
# TYPE docdb_requests_total counter
docdb_requests_total 3
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "docdb_requests_total"); err != nil {
		t.Errorf("GatherAndCompare() error = %v", err)
	}
}

func TestPrometheus_HistogramAndGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg)

	p.RecordDuration("docdb.request.duration", 150*time.Millisecond)
	p.RecordDuration("docdb.request.duration", 50*time.Millisecond)
	p.SetGauge("docdb.inflight", 1)
	p.SetGauge("docdb.inflight", 0)

	count, err := testutil.GatherAndCount(reg, "docdb_request_duration_seconds", "docdb_inflight")
	if err != nil {
		t.Fatalf("GatherAndCount() error = %v", err)
	}
	if count != 2 {
		t.Errorf("series = %d, want 2", count)
	}
	if got := testutil.ToFloat64(p.gauges["docdb.inflight"]); got != 0 {
		t.Errorf("gauge = %v, want 0", got)
	}
}

func TestPrometheus_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := NewPrometheus(reg)
	b := NewPrometheus(reg)

	a.IncrementCounter("docdb.requests", 1)
	b.IncrementCounter("docdb.requests", 1)

	if got := testutil.ToFloat64(a.counters["docdb.requests"]); got != 2 {
		t.Errorf("shared counter = %v, want 2", got)
	}
	if a.Err() != nil || b.Err() != nil {
		t.Errorf("unexpected registration errors: %v, %v", a.Err(), b.Err())
	}
}

func TestPrometheus_RegistrationConflict(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "docdb_requests_total",
		Help: "someone else's gauge",
	}))
	p := NewPrometheus(reg)

	p.IncrementCounter("docdb.requests", 1)
	p.IncrementCounter("docdb.requests", 1)

	err := p.Err()
	if err == nil || !strings.Contains(err.Error(), "docdb_requests_total") {
		t.Fatalf("Err() = %v, want a docdb_requests_total conflict", err)
	}
	if got := testutil.ToFloat64(p.counters["docdb.requests"]); got != 2 {
		t.Errorf("local counter = %v, want 2", got)
	}

	expected := `
# HELP docdb_metrics_registration_errors_total Collectors the registry refused to register.
# TYPE docdb_metrics_registration_errors_total counter
docdb_metrics_registration_errors_total 1
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "docdb_metrics_registration_errors_total"); err != nil {
		t.Errorf("GatherAndCompare() error = %v", err)
	}
}
