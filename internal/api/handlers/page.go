package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/campusconnect/portal-bff/internal/cache"
	"github.com/campusconnect/portal-bff/internal/controller"
	"github.com/campusconnect/portal-bff/internal/logger"
	"github.com/campusconnect/portal-bff/internal/upstream"
)

const maxPageLimit = 24

// Page serves one portal list page over one backend resource. A fresh
// ListController per request carries the fetch lifecycle: fallback on
// failure, client-side re-filtering, pagination estimation.
type Page[R any, T any] struct {
	res      *upstream.Resource[R, T]
	fallback []T
	match    func(T, string, upstream.Filters) bool
	id       func(T) string
	group    func(a, b T) bool
	like     func(T) T

	// filterKeys are the request query params forwarded as filters.
	filterKeys []string

	cache    *cache.Client
	cacheTTL time.Duration
}

func (p *Page[R, T]) newController(limit int) *controller.ListController[T] {
	return controller.New(controller.Config[T]{
		Resource:  p.res.Name(),
		List:      p.res.List,
		Search:    p.res.Search,
		Fallback:  p.fallback,
		Match:     p.match,
		ID:        p.id,
		SameGroup: p.group,
		Like:      p.like,
		Limit:     limit,
	})
}

func (p *Page[R, T]) filtersFrom(r *http.Request) upstream.Filters {
	f := upstream.Filters{}
	for _, k := range p.filterKeys {
		if v := r.URL.Query().Get(k); v != "" {
			f[k] = v
		}
	}
	return f
}

// List handles GET /api/{resource}.
func (p *Page[R, T]) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 0)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	filters := p.filtersFrom(r)

	// First pages without search text are hot and cacheable; degraded
	// responses never are.
	cacheable := p.cache != nil && page == 1 && q == ""
	cacheKey := "list:" + p.res.Name() + ":" + r.URL.RawQuery

	if cacheable {
		var cached json.RawMessage
		found, err := p.cache.Get(r.Context(), cacheKey, &cached)
		if err != nil {
			logger.Ctx(r.Context()).Warn().Err(err).Str("key", cacheKey).Msg("cache_get_failed")
		} else if found {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}
	}

	ctrl := p.newController(limit)
	defer ctrl.Close()
	ctrl.Init(q, filters, page)
	ctrl.Load(r.Context())
	snap := ctrl.Snapshot()

	resp := map[string]any{
		p.res.Plural(): snap.Items,
		"pagination":   snap.Pagination,
		"degraded":     snap.Degraded,
	}

	if cacheable && !snap.Degraded {
		if err := p.cache.Set(r.Context(), cacheKey, resp, p.cacheTTL); err != nil {
			logger.Ctx(r.Context()).Warn().Err(err).Str("key", cacheKey).Msg("cache_set_failed")
		}
	}

	sendJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/{resource}/{id}.
func (p *Page[R, T]) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := p.res.Get(r.Context(), id)
	if err != nil {
		handleFetchError(w, r, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]any{"data": item})
}

// Download handles GET /api/{resource}/{id}/download: 302 for
// externally hosted assets, a proxied stream for backend-hosted ones,
// and a hard 404 when nothing is downloadable.
func (p *Page[R, T]) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	dl, err := p.res.Download(r.Context(), id)
	if err != nil {
		handleFetchError(w, r, err)
		return
	}

	if dl.ExternalURL != "" {
		http.Redirect(w, r, dl.ExternalURL, http.StatusFound)
		return
	}

	defer dl.Stream.Close()
	if dl.ContentType != "" {
		w.Header().Set("Content-Type", dl.ContentType)
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+dl.Filename+`"`)
	if _, err := io.Copy(w, dl.Stream); err != nil {
		logger.Ctx(r.Context()).Warn().Err(err).Str("resource", p.res.Name()).Msg("download_stream_interrupted")
	}
}
