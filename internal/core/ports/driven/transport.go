package driven

import (
	"context"
	"net/http"
)

// Transport performs a single HTTP round trip.
//
// Implementations must NOT follow redirects: the retrieval policy in
// core owns the redirect loop so the hop cap can be enforced as a loop
// bound. Cancellation and timeout arrive through the request context.
type Transport interface {
	// Do executes the request and returns the raw response. The caller
	// owns the response body and must close it.
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}
