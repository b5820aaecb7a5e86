package airly

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for client operations. Every error returned by this
// package wraps exactly one of these, so callers can branch on the failure
// category with errors.Is.
var (
	// ErrInvalidConfig indicates the client configuration is unusable,
	// for example an API key of the wrong length.
	ErrInvalidConfig = errors.New("airly: invalid client configuration")
	// ErrInvalidParam indicates a request parameter failed validation
	// before any network traffic was attempted.
	ErrInvalidParam = errors.New("airly: invalid request parameter")
	// ErrTransport indicates the HTTP exchange failed: the request could
	// not be built or sent, the response body could not be read, or the
	// API answered with a non-success status.
	ErrTransport = errors.New("airly: transport failure")
	// ErrDecode indicates the API answered successfully but the response
	// body could not be decoded into the expected shape.
	ErrDecode = errors.New("airly: decoding failure")
)

// StatusError reports a non-success HTTP status returned by the Airly API.
// It wraps ErrTransport and retains the raw response body for diagnostics.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *StatusError) Unwrap() error { return ErrTransport }
