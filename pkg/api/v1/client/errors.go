package client

import (
	"fmt"
	"time"
)

// HTTPError is returned for any non-2xx response. Body carries the raw
// response payload for callers that want the server's error detail.
type HTTPError struct {
	Status int
	Body   []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.Status, string(e.Body))
}

// SessionExpiredError is the specific 401 case. It unwraps to the underlying
// HTTPError so callers that don't need the distinction can treat it uniformly.
type SessionExpiredError struct {
	cause *HTTPError
}

func (e *SessionExpiredError) Error() string {
	return "session expired or token invalid"
}

// Unwrap exposes the underlying HTTPError with status 401
func (e *SessionExpiredError) Unwrap() error {
	return e.cause
}

// TimeoutError is returned when a request exceeds its configured timeout.
// The underlying transport call is not necessarily aborted; its result is
// simply never processed.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %s", e.Timeout)
}

// CancelledError is returned when a request is cancelled, either individually
// through its context or by a session-wide cancel-all.
type CancelledError struct{}

func (e *CancelledError) Error() string {
	return "request cancelled"
}
