// Package docdbtest provides test helpers for code that uses docdb.
//
// # Mock Server
//
// MockServer records every request and, when created with a key, checks
// the master-key signature the same way the real service does. Requests
// with a bad signature get a 401 with a service-style error body.
//
//	server := docdbtest.NewTestServer(t)
//	res := docdb.IssueRequest(ctx, server.Endpoint("/dbs/mydb"), docdbtest.TestKey, "GET", "")
//	if !res.OK() {
//	    t.Fatal(res.ErrorDescription)
//	}
//	if server.RequestCount() != 1 {
//	    t.Error("expected 1 request")
//	}
//
// # Mock Metrics and Logger
//
// MockMetrics and MockLogger capture what IssueRequest records:
//
//	metrics := docdbtest.NewMockMetrics()
//	docdb.IssueRequest(ctx, endpoint, key, "GET", "", docdb.WithMetrics(metrics))
//	if metrics.GetCounter(docdb.MetricRequests) != 1 { ... }
package docdbtest
