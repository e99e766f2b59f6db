package docdb

import (
	"context"
	"time"

	"github.com/jdziat/docdb-go/pkg/auth"
	"github.com/jdziat/docdb-go/pkg/resource"
)

// IssueRequest signs and sends one request to endpointURL and returns the
// result envelope.
//
// The stages run in order and the first failure is returned immediately:
// verb check, URL parse, resource path parse, key decode, dispatch. Nothing
// is sent unless every local check passes. jsonBody is sent for POST and
// PUT and ignored otherwise.
func IssueRequest(ctx context.Context, endpointURL, sharedKey, verb, jsonBody string, opts ...Option) *Result {
	if ctx == nil {
		ctx = context.Background()
	}
	o := newOptions(opts)

	if err := validateVerb(verb); err != nil {
		o.logger.Warn("rejected request", "verb", verb, "error", err)
		return failure(err)
	}

	parts, err := resource.ParseURL(endpointURL)
	if err != nil {
		o.logger.Warn("rejected request", "url", endpointURL, "error", err)
		return failure(err)
	}

	info, err := resource.ParsePath(parts.ResourcePath())
	if err != nil {
		o.logger.Warn("rejected request", "path", parts.ResourcePath(), "error", err)
		return failure(err)
	}

	signed, err := auth.SignAt(sharedKey, verb, info, auth.Now(o.clock))
	if err != nil {
		o.logger.Warn("rejected request", "key", MaskCredential(sharedKey), "error", err)
		return failure(err)
	}

	d := &dispatch{
		verb:       verb,
		parts:      parts,
		signed:     signed,
		body:       jsonBody,
		activityID: newActivityID(),
	}

	rec := metricsRecorder{metrics: o.metrics}
	rec.request()
	start := time.Now()

	res := send(ctx, d, o)
	res.ActivityID = d.activityID

	elapsed := time.Since(start)
	rec.finished(res, elapsed)

	if res.OK() {
		o.logger.Debug("request completed",
			"request", describeRequest(d),
			"resource_type", info.ResourceType,
			"resource_id", info.ResourceID,
			"activity_id", d.activityID,
			"status", res.HTTPStatus,
			"duration", elapsed,
		)
	} else {
		o.logger.Warn("request failed",
			"request", describeRequest(d),
			"activity_id", d.activityID,
			"status_code", res.StatusCode,
			"http_status", res.HTTPStatus,
			"error", res.ErrorDescription,
			"duration", elapsed,
		)
	}
	return res
}

// Sign computes the x-ms-date and Authorization header values for verb on
// the REST path resourcePath (for example "/dbs/mydb/colls") without
// sending anything. It is useful for callers that issue the request with
// their own client.
func Sign(sharedKey, verb, resourcePath string, at time.Time) (*auth.Signed, *Result) {
	if err := validateVerb(verb); err != nil {
		return nil, failure(err)
	}
	info, err := resource.ParsePath(resourcePath)
	if err != nil {
		return nil, failure(err)
	}
	signed, err := auth.SignAt(sharedKey, verb, info, auth.FormatDate(at))
	if err != nil {
		return nil, failure(err)
	}
	return signed, success(nil)
}
