package upstream

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/campusconnect/portal-bff/internal/logger"
	"github.com/campusconnect/portal-bff/middleware"
)

// ClientConfig holds configuration for the HTTP client wrapper.
type ClientConfig struct {
	// ReadTimeout is used for GET requests.
	ReadTimeout time.Duration
	// WriteTimeout is used for POST, PUT, PATCH, DELETE requests.
	WriteTimeout time.Duration
	// DownloadTimeout is used when streaming files from the backend.
	DownloadTimeout time.Duration
}

// DefaultClientConfig returns sensible defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		ReadTimeout:     2 * time.Second,
		WriteTimeout:    5 * time.Second,
		DownloadTimeout: 30 * time.Second,
	}
}

// Client is the centralized HTTP wrapper for the campus backend:
// 1. Injects X-Request-ID from context
// 2. Forwards the caller's bearer token when present
// 3. Enforces timeouts based on HTTP method (read vs write)
// 4. Maps low-level failures to ErrTimeout / ErrUnavailable
// 5. Logs requests with correlation ID
type Client struct {
	baseClient *http.Client
	config     ClientConfig
}

func NewClient(config ClientConfig) *Client {
	return &Client{
		baseClient: &http.Client{
			// No global timeout, per-request timeouts below.
			Timeout: 0,
		},
		config: config,
	}
}

// Do executes a request against the backend. Download requests pass
// stream=true: the body stays open past Do's return, so the download
// deadline travels with the body and is released when it is closed.
func (c *Client) Do(ctx context.Context, req *http.Request, stream bool) (*http.Response, error) {
	if reqID := middleware.GetRequestID(ctx); reqID != "" {
		req.Header.Set("X-Request-ID", reqID)
	}
	if token := middleware.GetBearerToken(ctx); token != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", token)
	}

	timeout := c.config.ReadTimeout
	if isWriteMethod(req.Method) {
		timeout = c.config.WriteTimeout
	}
	if stream {
		timeout = c.config.DownloadTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	if !stream {
		defer cancel()
	}
	req = req.WithContext(ctx)

	log := logger.Log.With().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("request_id", middleware.GetRequestID(ctx)).
		Logger()

	start := time.Now()
	resp, err := c.baseClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		if stream {
			cancel()
		}
		log.Warn().
			Err(err).
			Dur("duration", duration).
			Msg("backend_request_failed")
		return nil, c.mapError(err)
	}

	if stream {
		resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", duration).
		Msg("backend_request_completed")

	return resp, nil
}

// cancelOnClose ties a stream's deadline to the body: closing the body
// releases the download context.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelOnClose) Close() error {
	b.cancel()
	return b.ReadCloser.Close()
}

// mapError converts low-level errors to domain errors.
func (c *Client) mapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	if errors.Is(err, context.Canceled) {
		return ErrTimeout
	}
	// Connection refused, DNS errors, etc.
	return ErrUnavailable
}

func isWriteMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
