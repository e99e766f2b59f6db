package docdbtest

// TestingT is an interface that matches *testing.T and *testing.B.
type TestingT interface {
	Fatalf(format string, args ...any)
	Cleanup(func())
	Helper()
}

// TestKey is a valid base64 master key for tests:
// base64("docdb-test-master-key-0123456789").
const TestKey = "ZG9jZGItdGVzdC1tYXN0ZXIta2V5LTAxMjM0NTY3ODk="

// NewTestServer starts a signature-checking mock server for TestKey and
// closes it when the test ends.
func NewTestServer(t TestingT) *MockServer {
	t.Helper()
	server := NewMockServer(TestKey)
	t.Cleanup(server.Close)
	return server
}

// NewTLSTestServer is NewTestServer over HTTPS.
func NewTLSTestServer(t TestingT) *MockServer {
	t.Helper()
	server := NewTLSMockServer(TestKey)
	t.Cleanup(server.Close)
	return server
}
