package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/campusconnect/portal-bff/internal/domain"
)

// Filters is the resource-specific filter set for a list call. Keys are
// frontend filter names; Spec.FilterKeys maps them to backend query
// params. Unrecognized keys are dropped.
type Filters map[string]string

// Spec binds one backend resource to its mapper, endpoints and filter
// vocabulary. The six portal resources differ only in these values, so
// a single generic client replaces six copy-pasted ones.
type Spec[R any, T any] struct {
	// Name is the path segment: /{Name}/get-{Name} etc.
	Name string
	// Plural is the key used for the item list in BFF responses.
	Plural string
	// Map converts one raw backend document into its view model.
	Map func(R) T
	// FilterKeys maps recognized filter names to backend query params.
	FilterKeys map[string]string
	// DefaultLimit is the page size when the caller passes none.
	DefaultLimit int
	// FileURL extracts the downloadable asset URL, empty when none.
	// Nil for resources without downloads.
	FileURL func(T) string
}

// Resource is the generic client for one backend resource type. All
// operations fail with a *FetchError wrapping the cause; fallback data
// is the controller's business, never the client's.
type Resource[R any, T any] struct {
	client  *Client
	baseURL string
	spec    Spec[R, T]
}

func NewResource[R any, T any](client *Client, baseURL string, spec Spec[R, T]) *Resource[R, T] {
	return &Resource[R, T]{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		spec:    spec,
	}
}

func (r *Resource[R, T]) Name() string   { return r.spec.Name }
func (r *Resource[R, T]) Plural() string { return r.spec.Plural }

// DefaultLimit reports the page size the portal page uses for this
// resource (3 for card-style pages, 6 for grids).
func (r *Resource[R, T]) DefaultLimit() int { return r.spec.DefaultLimit }

func (r *Resource[R, T]) normalize(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = r.spec.DefaultLimit
	}
	return page, limit
}

// List fetches one page of documents through the filter endpoint and
// estimates pagination from the returned count. When the requested page
// overshoots the end of the data the fetch is retried once at page-1,
// so the caller never sees an empty page. The retry is bounded: it
// cannot recurse below page 1 and never cascades further back.
func (r *Resource[R, T]) List(ctx context.Context, filters Filters, page, limit int) (domain.PagedResult[T], error) {
	page, limit = r.normalize(page, limit)

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	for name, key := range r.spec.FilterKeys {
		if v, ok := filters[name]; ok && v != "" {
			q.Set(key, v)
		}
	}

	endpoint := fmt.Sprintf("%s/%s/get-%s", r.baseURL, r.spec.Name, r.spec.Name)
	return r.fetchPage(ctx, "list", endpoint, q, page, limit)
}

// Search fetches one page through the free-text search endpoint. Same
// response contract as List.
func (r *Resource[R, T]) Search(ctx context.Context, query string, page, limit int) (domain.PagedResult[T], error) {
	page, limit = r.normalize(page, limit)

	q := url.Values{}
	q.Set("q", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	endpoint := fmt.Sprintf("%s/%s/search-%s", r.baseURL, r.spec.Name, r.spec.Name)
	return r.fetchPage(ctx, "search", endpoint, q, page, limit)
}

func (r *Resource[R, T]) fetchPage(ctx context.Context, op, endpoint string, q url.Values, page, limit int) (domain.PagedResult[T], error) {
	items, err := r.fetchList(ctx, op, endpoint, q)
	if err != nil {
		return domain.PagedResult[T]{}, err
	}

	pagination, retryPrev := Estimate(len(items), page, limit)
	if retryPrev {
		q.Set("page", strconv.Itoa(page-1))
		items, err = r.fetchList(ctx, op, endpoint, q)
		if err != nil {
			return domain.PagedResult[T]{}, err
		}
		// Second estimate may signal another overshoot; it is ignored.
		pagination, _ = Estimate(len(items), page-1, limit)
	}

	return domain.PagedResult[T]{Items: items, Pagination: pagination}, nil
}

func (r *Resource[R, T]) fetchList(ctx context.Context, op, endpoint string, q url.Values) (_ []T, err error) {
	start := time.Now()
	defer func() { observe(r.spec.Name, op, start, err) }()

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if reqErr != nil {
		return nil, fetchErr(r.spec.Name, op, reqErr)
	}

	resp, doErr := r.client.Do(ctx, req, false)
	if doErr != nil {
		return nil, fetchErr(r.spec.Name, op, doErr)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fetchErr(r.spec.Name, op, decodeError(resp))
	}

	var env struct {
		Data *[]R `json:"data"`
	}
	if decErr := json.NewDecoder(resp.Body).Decode(&env); decErr != nil {
		return nil, fetchErr(r.spec.Name, op, ErrInvalidShape)
	}
	if env.Data == nil {
		return nil, fetchErr(r.spec.Name, op, ErrInvalidShape)
	}

	items := make([]T, 0, len(*env.Data))
	for _, raw := range *env.Data {
		items = append(items, r.spec.Map(raw))
	}
	return items, nil
}

// Get fetches and maps a single document.
func (r *Resource[R, T]) Get(ctx context.Context, id string) (T, error) {
	endpoint := fmt.Sprintf("%s/%s/get-%s/%s", r.baseURL, r.spec.Name, r.spec.Name, url.PathEscape(id))
	return r.fetchOne(ctx, "get", http.MethodGet, endpoint, nil)
}

// Create submits a new document and maps the stored result.
func (r *Resource[R, T]) Create(ctx context.Context, doc any) (T, error) {
	endpoint := fmt.Sprintf("%s/%s/add-%s", r.baseURL, r.spec.Name, r.spec.Name)
	return r.fetchOne(ctx, "create", http.MethodPost, endpoint, doc)
}

// Update applies a partial document and maps the stored result.
func (r *Resource[R, T]) Update(ctx context.Context, id string, partial any) (T, error) {
	endpoint := fmt.Sprintf("%s/%s/edit-%s/%s", r.baseURL, r.spec.Name, r.spec.Name, url.PathEscape(id))
	return r.fetchOne(ctx, "update", http.MethodPut, endpoint, partial)
}

// Delete removes a document.
func (r *Resource[R, T]) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { observe(r.spec.Name, "delete", start, err) }()

	endpoint := fmt.Sprintf("%s/%s/delete-%s/%s", r.baseURL, r.spec.Name, r.spec.Name, url.PathEscape(id))
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if reqErr != nil {
		return fetchErr(r.spec.Name, "delete", reqErr)
	}

	resp, doErr := r.client.Do(ctx, req, false)
	if doErr != nil {
		return fetchErr(r.spec.Name, "delete", doErr)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fetchErr(r.spec.Name, "delete", decodeError(resp))
	}
	return nil
}

func (r *Resource[R, T]) fetchOne(ctx context.Context, op, method, endpoint string, body any) (_ T, err error) {
	var zero T

	start := time.Now()
	defer func() { observe(r.spec.Name, op, start, err) }()

	var reader io.Reader
	if body != nil {
		jsonBody, mErr := json.Marshal(body)
		if mErr != nil {
			return zero, fetchErr(r.spec.Name, op, mErr)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, reqErr := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if reqErr != nil {
		return zero, fetchErr(r.spec.Name, op, reqErr)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, doErr := r.client.Do(ctx, req, false)
	if doErr != nil {
		return zero, fetchErr(r.spec.Name, op, doErr)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return zero, fetchErr(r.spec.Name, op, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return zero, fetchErr(r.spec.Name, op, decodeError(resp))
	}

	var env struct {
		Data *R `json:"data"`
	}
	if decErr := json.NewDecoder(resp.Body).Decode(&env); decErr != nil {
		return zero, fetchErr(r.spec.Name, op, ErrInvalidShape)
	}
	if env.Data == nil {
		return zero, fetchErr(r.spec.Name, op, ErrInvalidShape)
	}

	return r.spec.Map(*env.Data), nil
}

// DownloadResult is either an external URL the browser should open, or
// a stream proxied from the backend. Exactly one of the two is set.
type DownloadResult struct {
	ExternalURL string
	Stream      io.ReadCloser
	ContentType string
	Filename    string
}

// Download resolves the document's asset. External http(s) URLs are
// returned for redirection; backend-relative paths are streamed through
// GET /{resource}/download/{id}. A document without a resolvable URL
// fails with ErrNoDownload. The call always resolves or fails; it never
// leaves the caller in an indeterminate state.
func (r *Resource[R, T]) Download(ctx context.Context, id string) (_ *DownloadResult, err error) {
	if r.spec.FileURL == nil {
		return nil, fetchErr(r.spec.Name, "download", ErrNoDownload)
	}

	item, getErr := r.Get(ctx, id)
	if getErr != nil {
		return nil, getErr
	}

	fileURL := strings.TrimSpace(r.spec.FileURL(item))
	if fileURL == "" || fileURL == domain.NA {
		return nil, fetchErr(r.spec.Name, "download", ErrNoDownload)
	}

	if strings.HasPrefix(fileURL, "http://") || strings.HasPrefix(fileURL, "https://") {
		return &DownloadResult{ExternalURL: fileURL}, nil
	}

	start := time.Now()
	defer func() { observe(r.spec.Name, "download", start, err) }()

	endpoint := fmt.Sprintf("%s/%s/download/%s", r.baseURL, r.spec.Name, url.PathEscape(id))
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if reqErr != nil {
		return nil, fetchErr(r.spec.Name, "download", reqErr)
	}

	resp, doErr := r.client.Do(ctx, req, true)
	if doErr != nil {
		return nil, fetchErr(r.spec.Name, "download", doErr)
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, fetchErr(r.spec.Name, "download", ErrNoDownload)
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, fetchErr(r.spec.Name, "download", decodeError(resp))
	}

	return &DownloadResult{
		Stream:      resp.Body,
		ContentType: resp.Header.Get("Content-Type"),
		Filename:    filenameFrom(resp.Header.Get("Content-Disposition"), id),
	}, nil
}

func filenameFrom(disposition, fallback string) string {
	const marker = `filename="`
	if i := strings.Index(disposition, marker); i >= 0 {
		rest := disposition[i+len(marker):]
		if j := strings.Index(rest, `"`); j > 0 {
			return rest[:j]
		}
	}
	return fallback
}

func decodeError(resp *http.Response) error {
	var apiErr domain.APIError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Code != "" {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Code:       apiErr.Error.Code,
			Message:    apiErr.Error.Message,
		}
	}
	return &StatusError{
		StatusCode: resp.StatusCode,
		Code:       "backend_error",
		Message:    fmt.Sprintf("unexpected status: %d", resp.StatusCode),
	}
}
