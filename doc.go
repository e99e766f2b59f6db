// Package docdb signs and issues a single request against a document-database
// REST API and returns a uniform result envelope.
//
// # Quick Start
//
//	res := docdb.IssueRequest(ctx,
//	    "https://myaccount.documents.azure.com:443/dbs/mydb",
//	    os.Getenv("DOCDB_KEY"),
//	    "GET",
//	    "",
//	)
//	if !res.OK() {
//	    log.Fatalf("request failed (%d): %s", res.StatusCode, res.ErrorDescription)
//	}
//	fmt.Println(string(res.JSONResponse))
//
// # Result Envelope
//
// IssueRequest never panics and never returns a Go error. Every outcome is
// reported through *Result:
//
//   - StatusCode 0: success, JSONResponse holds the raw response body
//   - StatusInvalidVerb: verb is not GET, POST, PUT or DELETE
//   - StatusInvalidURL: the endpoint does not match [protocol://]host[:port]path/file
//   - StatusInvalidResourcePath: the path cannot be split into type and id
//   - StatusInvalidKey: the shared key is not base64
//   - StatusTransportFailure: network, DNS or TLS failure, or cancellation
//   - StatusRemoteError: the server answered with a non-2xx status; the raw
//     body is passed through in JSONResponse
//
// Callers that prefer Go errors can use Result.Err with errors.Is:
//
//	if errors.Is(res.Err(), docdb.ErrRemote) { ... }
//
// # Configuration
//
// There is no client or session object. Per-call behavior is adjusted with
// options:
//
//	res := docdb.IssueRequest(ctx, endpoint, key, "POST", body,
//	    docdb.WithTimeout(10*time.Second),
//	    docdb.WithHeader("x-ms-documentdb-is-upsert", "true"),
//	    docdb.WithStructuredLogger(docdb.NewSlogAdapter(slog.Default())),
//	)
//
// The library reads no environment variables; the endpoint and key are
// always supplied by the caller.
//
// # Concurrency
//
// IssueRequest performs exactly one round trip and returns only after the
// whole response body has been read or the call has failed. It keeps no
// shared state and starts no goroutines, so it is safe to call concurrently.
package docdb
