package docdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jdziat/docdb-go/pkg/auth"
	pkgerrors "github.com/jdziat/docdb-go/pkg/errors"
	pkghttp "github.com/jdziat/docdb-go/pkg/http"
	"github.com/jdziat/docdb-go/pkg/resource"
)

// maxResponseSize limits the size of response bodies to prevent OOM.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// dispatch describes one signed request ready to be sent.
type dispatch struct {
	verb       string
	parts      resource.URLParts
	signed     *auth.Signed
	body       string
	activityID string
}

// newHTTPRequest builds the outbound request with the signature headers.
func newHTTPRequest(ctx context.Context, d *dispatch, o *options) (*http.Request, error) {
	var bodyReader io.Reader
	if hasBody(d.verb) {
		bodyReader = strings.NewReader(d.body)
	}

	req, err := http.NewRequestWithContext(ctx, d.verb, d.parts.String(), bodyReader)
	if err != nil {
		return nil, pkgerrors.Wrap(KindInvalidURL, "Invalid or unparsable URI: "+d.parts.String(), err)
	}

	for k, vs := range o.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	req.Header.Set(pkghttp.HeaderAccept, pkghttp.ContentTypeJSON)
	req.Header.Set(pkghttp.HeaderMSVersion, o.apiVersion)
	req.Header.Set(pkghttp.HeaderAuthorization, d.signed.Authorization)
	req.Header.Set(pkghttp.HeaderMSDate, d.signed.Date)
	req.Header.Set(pkghttp.HeaderCacheControl, pkghttp.NoCache)
	req.Header.Set(pkghttp.HeaderMSActivityID, d.activityID)
	if bodyReader != nil {
		req.Header.Set(pkghttp.HeaderContentType, pkghttp.ContentTypeJSON)
	}

	return req, nil
}

// send issues the request and reads the whole response body. The response
// body is always closed before send returns.
func send(ctx context.Context, d *dispatch, o *options) *Result {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	req, err := newHTTPRequest(ctx, d, o)
	if err != nil {
		return failure(err)
	}

	chain := buildHookChain(o)
	if err := chain.BeforeRequest(ctx, req); err != nil {
		return failure(pkgerrors.Wrap(KindTransport, "", err))
	}

	start := time.Now()
	resp, err := o.doer.Do(req)
	if err != nil {
		chain.AfterResponse(ctx, req, nil, time.Since(start), err)
		return failure(pkgerrors.Wrap(KindTransport, "", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, o.maxBody+1))
	chain.AfterResponse(ctx, req, resp, time.Since(start), err)
	if err != nil {
		return failure(pkgerrors.Wrap(KindTransport, "failed to read response body: "+err.Error(), err))
	}
	if int64(len(body)) > o.maxBody {
		return failure(pkgerrors.Newf(KindTransport, "response body exceeds %d bytes", o.maxBody))
	}

	var res *Result
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		res = remoteFailure(resp.StatusCode, body)
	} else {
		res = success(body)
	}
	res.HTTPStatus = resp.StatusCode
	return res
}

// newActivityID returns a fresh x-ms-activity-id.
func newActivityID() string {
	return uuid.NewString()
}

func describeRequest(d *dispatch) string {
	return fmt.Sprintf("%s %s%s", d.verb, d.parts.HostPort(), d.parts.RequestURI())
}
