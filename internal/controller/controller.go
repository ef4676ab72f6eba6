// Package controller owns the per-page fetch lifecycle: query state,
// pagination, the fallback policy when the backend is down, and the
// stale-response guard that keeps a slow earlier fetch from clobbering
// a newer one.
package controller

import (
	"context"
	"sync"

	"github.com/campusconnect/portal-bff/internal/domain"
	"github.com/campusconnect/portal-bff/internal/logger"
	"github.com/campusconnect/portal-bff/internal/upstream"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
)

// Config wires one resource into a ListController.
type Config[T any] struct {
	// Resource names the list for logs.
	Resource string

	// List and Search are the two resource-client entry points.
	List   func(ctx context.Context, filters upstream.Filters, page, limit int) (domain.PagedResult[T], error)
	Search func(ctx context.Context, query string, page, limit int) (domain.PagedResult[T], error)

	// Fallback is the bundled dataset rendered when a fetch fails. It is
	// shown unmodified, with pagination collapsed to a single page.
	Fallback []T

	// Match is the client-side filter predicate, re-applied after every
	// fetch on top of whatever the backend already filtered. The
	// intersection is deliberate defense in depth: if the backend ignored
	// a filter param the page still narrows correctly. Do not remove it
	// as redundant.
	Match func(item T, query string, filters upstream.Filters) bool

	// ID extracts the item id, used by Related and OptimisticLike.
	ID func(item T) string

	// SameGroup reports whether two items share a category, for Related.
	// Optional.
	SameGroup func(a, b T) bool

	// Like returns a copy of the item with its like counter bumped.
	// Optional; enables OptimisticLike.
	Like func(item T) T

	// Limit is the page size. Zero means the resource client's default.
	Limit int
}

// Snapshot is the view state a page renders from.
type Snapshot[T any] struct {
	State      State
	Items      []T
	Pagination domain.Pagination
	Query      string
	Filters    upstream.Filters
	// Degraded is the error-banner signal: the items shown are fallback
	// data because the last fetch failed.
	Degraded bool
	Err      error
}

// ListController is the page-level orchestrator. Every mutation
// (search text, filter change, page navigation) issues a fresh fetch;
// page transitions are never served from a cached slice. The most
// recently issued fetch is the one whose result renders: completions
// of older fetches are discarded, and after Close every completion is
// a no-op.
type ListController[T any] struct {
	cfg Config[T]

	mu         sync.Mutex
	state      State
	items      []T
	pagination domain.Pagination
	query      string
	filters    upstream.Filters
	page       int
	degraded   bool
	err        error

	seq      uint64
	inflight context.CancelFunc
	closed   bool
}

func New[T any](cfg Config[T]) *ListController[T] {
	return &ListController[T]{
		cfg:     cfg,
		state:   StateIdle,
		filters: upstream.Filters{},
		page:    1,
	}
}

// Init seeds the query state without fetching, for callers that arrive
// with search text, filters and a page number already decided (the BFF
// reads them off the request). Load then runs the fetch.
func (c *ListController[T]) Init(query string, filters upstream.Filters, page int) {
	if filters == nil {
		filters = upstream.Filters{}
	}
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.query = query
	c.filters = filters
	c.page = page
	c.mu.Unlock()
}

// Load fetches at the current query state (on mount, page 1 unless
// Init said otherwise).
func (c *ListController[T]) Load(ctx context.Context) {
	c.refresh(ctx)
}

// SetSearch replaces the search text, resets to page 1 and refetches.
func (c *ListController[T]) SetSearch(ctx context.Context, query string) {
	c.mu.Lock()
	c.query = query
	c.page = 1
	c.mu.Unlock()
	c.refresh(ctx)
}

// SetFilters replaces the active filter set, resets to page 1 and
// refetches.
func (c *ListController[T]) SetFilters(ctx context.Context, filters upstream.Filters) {
	if filters == nil {
		filters = upstream.Filters{}
	}
	c.mu.Lock()
	c.filters = filters
	c.page = 1
	c.mu.Unlock()
	c.refresh(ctx)
}

// SetPage jumps straight to a page, as the BFF does when the page
// number arrives in the request query.
func (c *ListController[T]) SetPage(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.page = page
	c.mu.Unlock()
	c.refresh(ctx)
}

// NextPage advances one page. It is a no-op unless the current
// pagination says more pages exist.
func (c *ListController[T]) NextPage(ctx context.Context) {
	c.mu.Lock()
	if !c.pagination.HasMore {
		c.mu.Unlock()
		return
	}
	c.page++
	c.mu.Unlock()
	c.refresh(ctx)
}

// PrevPage goes back one page, never below page 1.
func (c *ListController[T]) PrevPage(ctx context.Context) {
	c.mu.Lock()
	if c.page <= 1 {
		c.mu.Unlock()
		return
	}
	c.page--
	c.mu.Unlock()
	c.refresh(ctx)
}

// refresh issues a fetch for the current query state. The sequence
// number taken under the lock is the stale guard: only the fetch that
// is still the newest when it completes may apply its result.
func (c *ListController[T]) refresh(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.seq++
	mySeq := c.seq
	c.state = StateLoading
	query := c.query
	filters := c.filters
	page := c.page

	fetchCtx, cancel := context.WithCancel(ctx)
	c.inflight = cancel
	c.mu.Unlock()

	var res domain.PagedResult[T]
	var err error
	if query != "" {
		res, err = c.cfg.Search(fetchCtx, query, page, c.cfg.Limit)
	} else {
		res, err = c.cfg.List(fetchCtx, filters, page, c.cfg.Limit)
	}
	cancel()

	c.apply(mySeq, query, filters, res, err)
}

func (c *ListController[T]) apply(mySeq uint64, query string, filters upstream.Filters, res domain.PagedResult[T], err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Stale or post-unmount completion: drop it.
	if c.closed || mySeq != c.seq {
		return
	}

	if err != nil {
		logger.Log.Error().
			Err(err).
			Str("resource", c.cfg.Resource).
			Msg("list_fetch_failed_using_fallback")

		c.items = c.cfg.Fallback
		c.pagination = domain.SinglePage(len(c.cfg.Fallback))
		c.degraded = true
		c.err = err
		c.state = StateReady
		return
	}

	items := res.Items
	if c.cfg.Match != nil {
		filtered := make([]T, 0, len(items))
		for _, it := range items {
			if c.cfg.Match(it, query, filters) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	c.items = items
	c.pagination = res.Pagination
	// The client may have served an earlier page than requested (its
	// page-back hop past the end of the data). Track the page actually
	// served so NextPage/PrevPage step from it, not from the overshoot.
	if res.Pagination.CurrentPage > 0 {
		c.page = res.Pagination.CurrentPage
	}
	c.degraded = false
	c.err = nil
	c.state = StateReady
}

// Snapshot returns the current view state. The items slice is shared;
// callers must not mutate it.
func (c *ListController[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot[T]{
		State:      c.state,
		Items:      c.items,
		Pagination: c.pagination,
		Query:      c.query,
		Filters:    c.filters,
		Degraded:   c.degraded,
		Err:        c.err,
	}
}

// Related returns up to k items sharing the given item's group,
// excluding the item itself. Cross-references in the portal are ad hoc;
// nothing at this layer enforces foreign keys.
func (c *ListController[T]) Related(of T, k int) []T {
	if c.cfg.SameGroup == nil || c.cfg.ID == nil {
		return nil
	}
	selfID := c.cfg.ID(of)

	c.mu.Lock()
	defer c.mu.Unlock()

	related := make([]T, 0, k)
	for _, it := range c.items {
		if len(related) >= k {
			break
		}
		if c.cfg.ID(it) == selfID {
			continue
		}
		if c.cfg.SameGroup(of, it) {
			related = append(related, it)
		}
	}
	return related
}

// OptimisticLike bumps the local copy of the item's like counter
// immediately, independent of server confirmation. Reports whether the
// item was present.
func (c *ListController[T]) OptimisticLike(id string) bool {
	if c.cfg.Like == nil || c.cfg.ID == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, it := range c.items {
		if c.cfg.ID(it) == id {
			c.items[i] = c.cfg.Like(it)
			return true
		}
	}
	return false
}

// Close marks the page unmounted: the in-flight fetch is cancelled and
// any late completion is discarded rather than applied. A leaked update
// after unmount is a defect, not an optimization target.
func (c *ListController[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.inflight != nil {
		c.inflight()
		c.inflight = nil
	}
}
