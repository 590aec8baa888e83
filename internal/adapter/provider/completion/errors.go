package completion

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	ErrNotConfigured = errors.New("completion: not configured")
	ErrUnauthorized  = errors.New("completion: unauthorized")
	ErrRateLimited   = errors.New("completion: rate limited")
	ErrServer        = errors.New("completion: server error")
	ErrBadRequest    = errors.New("completion: bad request")
	ErrTimeout       = errors.New("completion: timeout")
	ErrEmptyResponse = errors.New("completion: empty response")
)

const maxErrorBody = 500

// StatusError is a non-2xx answer from the backend, wrapping one of
// ErrUnauthorized, ErrRateLimited, ErrServer or ErrBadRequest.
type StatusError struct {
	StatusCode int
	Body       string
	Attempts   int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: status %d after %d attempt(s): %s", e.Err, e.StatusCode, e.Attempts, e.Body)
}

func (e *StatusError) Unwrap() error { return e.Err }

// httpError is how transports report a non-2xx response.
type httpError struct {
	status int
	body   string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("http status %d: %s", e.status, e.body)
}

type failureKind int

const (
	kindTransport failureKind = iota
	kindUnauthorized
	kindRateLimited
	kindServer
	kindBadRequest
	kindTimeout
)

func (k failureKind) String() string {
	switch k {
	case kindUnauthorized:
		return "unauthorized"
	case kindRateLimited:
		return "rate_limited"
	case kindServer:
		return "server_error"
	case kindBadRequest:
		return "bad_request"
	case kindTimeout:
		return "timeout"
	default:
		return "transport_error"
	}
}

func (k failureKind) retryable() bool {
	return k == kindRateLimited || k == kindServer || k == kindTimeout
}

// failure is a classified attempt error.
type failure struct {
	kind   failureKind
	status int
	body   string
	cause  error
}

func classify(err error) failure {
	var he *httpError
	if errors.As(err, &he) {
		f := failure{status: he.status, body: truncate(he.body, maxErrorBody), cause: err}
		switch {
		case he.status == 401:
			f.kind = kindUnauthorized
		case he.status == 429:
			f.kind = kindRateLimited
		case he.status >= 500:
			f.kind = kindServer
		default:
			f.kind = kindBadRequest
		}
		return f
	}

	if isTimeout(err) {
		return failure{kind: kindTimeout, cause: err}
	}
	return failure{kind: kindTransport, cause: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// toError converts the final failure into the error returned to callers.
func (f failure) toError(attempts int) error {
	switch f.kind {
	case kindUnauthorized:
		return &StatusError{StatusCode: f.status, Body: f.body, Attempts: attempts, Err: ErrUnauthorized}
	case kindRateLimited:
		return &StatusError{StatusCode: f.status, Body: f.body, Attempts: attempts, Err: ErrRateLimited}
	case kindServer:
		return &StatusError{StatusCode: f.status, Body: f.body, Attempts: attempts, Err: ErrServer}
	case kindBadRequest:
		return &StatusError{StatusCode: f.status, Body: f.body, Attempts: attempts, Err: ErrBadRequest}
	case kindTimeout:
		return fmt.Errorf("%w after %d attempt(s): %v", ErrTimeout, attempts, f.cause)
	default:
		if errors.Is(f.cause, ErrEmptyResponse) {
			return f.cause
		}
		return fmt.Errorf("completion: transport: %w", f.cause)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// Back off to a rune boundary.
	for n > 0 && (s[n]&0xC0) == 0x80 {
		n--
	}
	return s[:n] + "..."
}
