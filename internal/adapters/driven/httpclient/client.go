// Package httpclient implements driven.Transport on net/http.
//
// The client never follows redirects itself: the retrieval policy in
// core owns the redirect loop. A token bucket throttles outbound
// requests so an agent loop cannot hammer a host.
package httpclient

import (
	"context"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/quill-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.Transport = (*Client)(nil)

// RequestsPerSecond is the proactive throttle rate for outbound
// fetches.
const RequestsPerSecond = 2

// Client is an HTTP transport with redirects disabled and proactive
// throttling.
type Client struct {
	http   *http.Client
	bucket *rate.Limiter
}

// New creates a transport. Timeouts are driven by request contexts,
// not by the underlying client.
func New() *Client {
	return &Client{
		http: &http.Client{
			CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		bucket: rate.NewLimiter(rate.Limit(RequestsPerSecond), 1),
	}
}

// Do waits for the throttle, then executes one round trip. Redirect
// responses are returned as-is.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := c.bucket.Wait(ctx); err != nil {
		return nil, err
	}
	return c.http.Do(req.WithContext(ctx))
}
