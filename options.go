package client

import (
	"net/http"
	"time"
)

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Coordinator) { c.httpClient = httpClient }
}

// WithTimeout bounds each request. On expiry the pending message resolves
// to error like any transport failure. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Coordinator) { c.timeout = d }
}

// WithStreaming selects between the streaming transport (default) and the
// single-shot JSON transport.
func WithStreaming(streaming bool) Option {
	return func(c *Coordinator) { c.streaming = streaming }
}

// WithStatusListener registers a callback for incremental status updates
// observed on a stream. Purely advisory; the conversation log is not
// touched by progress frames.
func WithStatusListener(fn func(message string)) Option {
	return func(c *Coordinator) { c.statusFn = fn }
}
