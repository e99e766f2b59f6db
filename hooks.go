package docdb

import (
	"strconv"

	pkghttp "github.com/jdziat/docdb-go/pkg/http"
)

// HTTPHook allows customizing request/response handling.
// See pkg/http for the predefined hooks.
type HTTPHook = pkghttp.HTTPHook

// HTTPHookFunc adapts plain functions to HTTPHook.
type HTTPHookFunc = pkghttp.HTTPHookFunc

// ClassifiedHook wraps an HTTPHook with a priority.
type ClassifiedHook = pkghttp.ClassifiedHook

// HookPriority determines how hook failures are handled.
type HookPriority = pkghttp.HookPriority

// Hook priorities.
const (
	HookPriorityObservational = pkghttp.HookPriorityObservational
	HookPriorityCritical      = pkghttp.HookPriorityCritical
)

// LoggingHook returns an observational hook that logs each round trip
// through logger.
func LoggingHook(logger StructuredLogger) ClassifiedHook {
	return pkghttp.LoggingHook(logger)
}

// MetricsHook returns an observational hook that records HTTP-level
// metrics (per-status counters) through m.
func MetricsHook(m Metrics) ClassifiedHook {
	return pkghttp.MetricsHook(m)
}

// DebugHook returns an observational hook that logs request and response
// headers. The Authorization header is never logged.
func DebugHook(logger StructuredLogger) ClassifiedHook {
	return pkghttp.DebugHook(logger)
}

// buildHookChain assembles the hooks configured for one call. Plain hooks
// are critical, classified hooks keep their priority.
func buildHookChain(o *options) *pkghttp.Chain {
	chain := pkghttp.NewChain(o.logger, o.metrics)
	for i, h := range o.hooks {
		chain.Add(ClassifiedHook{Hook: h, Priority: HookPriorityCritical, Name: "hook-" + strconv.Itoa(i)})
	}
	for _, ch := range o.classified {
		chain.Add(ch)
	}
	return chain
}
