package client

import "errors"

// Usage errors, surfaced synchronously before any network activity.
var (
	ErrEmptyQuery      = errors.New("query must not be empty")
	ErrRequestInFlight = errors.New("a request is already in flight")
)

// genericErrorText is shown to the end user whenever a request fails.
// Server and transport error details are logged, never displayed verbatim.
const genericErrorText = "Sorry, something went wrong while processing your request. Please try again."
