package upstream

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout and ErrUnavailable are transport failures reaching the
	// campus backend.
	ErrTimeout     = errors.New("upstream_timeout")
	ErrUnavailable = errors.New("upstream_unavailable")

	ErrNotFound = errors.New("resource_not_found")

	// ErrInvalidShape marks a 200 response without the expected {data: ...}
	// envelope. Callers treat it exactly like a transport failure.
	ErrInvalidShape = errors.New("invalid_api_response_format")

	// ErrNoDownload means the document has no resolvable file URL. This is
	// the one failure surfaced hard to the user.
	ErrNoDownload = errors.New("download_unavailable")
)

// StatusError carries a non-2xx backend response.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream error [%d] %s: %s", e.StatusCode, e.Code, e.Message)
}

// FetchError wraps any failure of a resource operation with the resource
// and operation that produced it. The resource client always fails with a
// FetchError and never substitutes fallback data; that policy belongs to
// the page controller.
type FetchError struct {
	Resource string
	Op       string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s/%s: %v", e.Resource, e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func fetchErr(resource, op string, err error) error {
	return &FetchError{Resource: resource, Op: op, Err: err}
}
