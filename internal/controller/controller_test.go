package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect/portal-bff/internal/domain"
	"github.com/campusconnect/portal-bff/internal/logger"
	"github.com/campusconnect/portal-bff/internal/upstream"
)

func TestMain(m *testing.M) {
	logger.InitWithWriter(io.Discard)
	os.Exit(m.Run())
}

type doc struct {
	ID    string
	Name  string
	Group string
	Likes int
}

func docs(ids ...string) []doc {
	out := make([]doc, 0, len(ids))
	for _, id := range ids {
		out = append(out, doc{ID: id, Name: "Doc " + id})
	}
	return out
}

func matchDoc(d doc, q string, f upstream.Filters) bool {
	if q != "" && d.Name != q && d.ID != q {
		return false
	}
	if g := f["group"]; g != "" && d.Group != g {
		return false
	}
	return true
}

func docConfig(list func(ctx context.Context, filters upstream.Filters, page, limit int) (domain.PagedResult[doc], error)) Config[doc] {
	return Config[doc]{
		Resource: "doc",
		List:     list,
		Search: func(ctx context.Context, query string, page, limit int) (domain.PagedResult[doc], error) {
			return list(ctx, upstream.Filters{}, page, limit)
		},
		Fallback: []doc{{ID: "fb1"}, {ID: "fb2"}},
		Match:    matchDoc,
		ID:       func(d doc) string { return d.ID },
		Limit:    6,
	}
}

func listOK(items []doc, pagination domain.Pagination) func(context.Context, upstream.Filters, int, int) (domain.PagedResult[doc], error) {
	return func(context.Context, upstream.Filters, int, int) (domain.PagedResult[doc], error) {
		return domain.PagedResult[doc]{Items: items, Pagination: pagination}, nil
	}
}

func TestLoadAppliesFetchedItems(t *testing.T) {
	c := New(docConfig(listOK(docs("a", "b"), domain.Pagination{TotalCount: 2, CurrentPage: 1, TotalPages: 1})))
	defer c.Close()

	c.Load(context.Background())
	snap := c.Snapshot()

	assert.Equal(t, StateReady, snap.State)
	assert.Len(t, snap.Items, 2)
	assert.False(t, snap.Degraded)
	assert.NoError(t, snap.Err)
}

// A failed fetch renders the bundled dataset exactly as shipped: no
// search or filter narrowing, pagination collapsed to one page, and the
// degraded flag raised for the banner.
func TestFetchFailureRendersFallbackUnmodified(t *testing.T) {
	fetchErr := errors.New("connection refused")
	cfg := docConfig(func(context.Context, upstream.Filters, int, int) (domain.PagedResult[doc], error) {
		return domain.PagedResult[doc]{}, fetchErr
	})
	c := New(cfg)
	defer c.Close()

	// A filter that matches no fallback item must not narrow it.
	c.Init("", upstream.Filters{"group": "nomatch"}, 1)
	c.Load(context.Background())
	snap := c.Snapshot()

	assert.True(t, snap.Degraded)
	assert.Equal(t, cfg.Fallback, snap.Items)
	assert.Equal(t, domain.SinglePage(2), snap.Pagination)
	assert.ErrorIs(t, snap.Err, fetchErr)
	assert.Equal(t, StateReady, snap.State)
}

func TestRecoveryClearsDegraded(t *testing.T) {
	var fail bool
	c := New(docConfig(func(context.Context, upstream.Filters, int, int) (domain.PagedResult[doc], error) {
		if fail {
			return domain.PagedResult[doc]{}, errors.New("down")
		}
		return domain.PagedResult[doc]{Items: docs("a"), Pagination: domain.SinglePage(1)}, nil
	}))
	defer c.Close()

	fail = true
	c.Load(context.Background())
	assert.True(t, c.Snapshot().Degraded)

	fail = false
	c.Load(context.Background())
	snap := c.Snapshot()
	assert.False(t, snap.Degraded)
	assert.NoError(t, snap.Err)
	assert.Equal(t, docs("a"), snap.Items)
}

// Client-side filtering runs on top of whatever the backend returned.
// A backend that ignores its filter params still yields a correctly
// narrowed page.
func TestMatchReAppliedAfterFetch(t *testing.T) {
	items := []doc{
		{ID: "a", Group: "x"},
		{ID: "b", Group: "y"},
		{ID: "c", Group: "x"},
	}
	c := New(docConfig(listOK(items, domain.SinglePage(3))))
	defer c.Close()

	c.SetFilters(context.Background(), upstream.Filters{"group": "x"})
	snap := c.Snapshot()

	require.Len(t, snap.Items, 2)
	assert.Equal(t, "a", snap.Items[0].ID)
	assert.Equal(t, "c", snap.Items[1].ID)
}

// Filtering an already-filtered slice again must not change it.
func TestMatchFilterIsIdempotent(t *testing.T) {
	items := []doc{{ID: "a", Group: "x"}, {ID: "b", Group: "y"}}
	f := upstream.Filters{"group": "x"}

	once := make([]doc, 0)
	for _, d := range items {
		if matchDoc(d, "", f) {
			once = append(once, d)
		}
	}
	twice := make([]doc, 0)
	for _, d := range once {
		if matchDoc(d, "", f) {
			twice = append(twice, d)
		}
	}

	assert.Equal(t, once, twice)
}

func TestSetSearchResetsPage(t *testing.T) {
	var gotPage int
	c := New(docConfig(func(_ context.Context, _ upstream.Filters, page, _ int) (domain.PagedResult[doc], error) {
		gotPage = page
		return domain.PagedResult[doc]{Items: docs("a"), Pagination: domain.SinglePage(1)}, nil
	}))
	defer c.Close()

	c.Init("", nil, 4)
	c.SetSearch(context.Background(), "Doc a")

	assert.Equal(t, 1, gotPage)
	assert.Equal(t, "Doc a", c.Snapshot().Query)
}

func TestNextPageGatedByHasMore(t *testing.T) {
	var pages []int
	c := New(docConfig(func(_ context.Context, _ upstream.Filters, page, _ int) (domain.PagedResult[doc], error) {
		pages = append(pages, page)
		return domain.PagedResult[doc]{
			Items:      docs("a"),
			Pagination: domain.Pagination{TotalCount: 1, CurrentPage: page, TotalPages: 1, HasMore: false},
		}, nil
	}))
	defer c.Close()

	c.Load(context.Background())
	c.NextPage(context.Background())

	assert.Equal(t, []int{1}, pages)
}

func TestNextPageAdvancesWhenMoreExist(t *testing.T) {
	var pages []int
	c := New(docConfig(func(_ context.Context, _ upstream.Filters, page, _ int) (domain.PagedResult[doc], error) {
		pages = append(pages, page)
		return domain.PagedResult[doc]{
			Items:      docs("a", "b", "c", "d", "e", "f"),
			Pagination: domain.Pagination{TotalCount: 12, CurrentPage: page, TotalPages: 2, HasMore: true},
		}, nil
	}))
	defer c.Close()

	c.Load(context.Background())
	c.NextPage(context.Background())

	assert.Equal(t, []int{1, 2}, pages)
}

// When the requested page overshoots the end of the data the resource
// client re-serves the previous page. The controller must track the
// page actually served, so stepping back lands on served-1 instead of
// re-fetching the page already on screen.
func TestPrevPageStepsFromServedPageAfterOvershoot(t *testing.T) {
	var requested []int
	c := New(docConfig(func(_ context.Context, _ upstream.Filters, page, _ int) (domain.PagedResult[doc], error) {
		requested = append(requested, page)
		served := page
		if served >= 5 {
			served = 4
		}
		return domain.PagedResult[doc]{
			Items:      docs("a", "b", "c"),
			Pagination: domain.Pagination{TotalCount: 21, CurrentPage: served, TotalPages: 4, HasMore: served < 4},
		}, nil
	}))
	defer c.Close()

	c.Init("", nil, 5)
	c.Load(context.Background())
	assert.Equal(t, 4, c.Snapshot().Pagination.CurrentPage)

	c.PrevPage(context.Background())

	assert.Equal(t, []int{5, 3}, requested)
	assert.Equal(t, 3, c.Snapshot().Pagination.CurrentPage)
}

func TestPrevPageNeverGoesBelowOne(t *testing.T) {
	var pages []int
	c := New(docConfig(func(_ context.Context, _ upstream.Filters, page, _ int) (domain.PagedResult[doc], error) {
		pages = append(pages, page)
		return domain.PagedResult[doc]{Items: docs("a"), Pagination: domain.SinglePage(1)}, nil
	}))
	defer c.Close()

	c.Load(context.Background())
	c.PrevPage(context.Background())

	assert.Equal(t, []int{1}, pages)
}

// Two fetches race; the one issued last wins no matter which returns
// first. The first fetch parks on a channel until the second has been
// fully applied, then completes and must be discarded.
func TestStaleResponseIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	var calls int
	var mu sync.Mutex

	c := New(docConfig(func(ctx context.Context, _ upstream.Filters, _, _ int) (domain.PagedResult[doc], error) {
		mu.Lock()
		calls++
		mine := calls
		mu.Unlock()

		if mine == 1 {
			<-release
			return domain.PagedResult[doc]{Items: docs("stale"), Pagination: domain.SinglePage(1)}, nil
		}
		return domain.PagedResult[doc]{Items: docs("fresh"), Pagination: domain.SinglePage(1)}, nil
	}))
	defer c.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Load(context.Background())
	}()

	// Make sure the first fetch is in flight before issuing the second.
	for {
		mu.Lock()
		started := calls >= 1
		mu.Unlock()
		if started {
			break
		}
	}

	c.SetSearch(context.Background(), "fresh")
	close(release)
	wg.Wait()

	snap := c.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "fresh", snap.Items[0].ID)
}

// After Close, a completion of an in-flight fetch is a no-op and the
// fetch context is cancelled.
func TestCloseDiscardsLateCompletion(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var sawCancel bool

	c := New(docConfig(func(ctx context.Context, _ upstream.Filters, _, _ int) (domain.PagedResult[doc], error) {
		close(started)
		<-release
		sawCancel = ctx.Err() != nil
		return domain.PagedResult[doc]{Items: docs("late"), Pagination: domain.SinglePage(1)}, nil
	}))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Load(context.Background())
	}()

	<-started
	c.Close()
	close(release)
	wg.Wait()

	snap := c.Snapshot()
	assert.Empty(t, snap.Items)
	assert.True(t, sawCancel)
}

func TestRefreshAfterCloseIsNoOp(t *testing.T) {
	var calls int
	c := New(docConfig(func(context.Context, upstream.Filters, int, int) (domain.PagedResult[doc], error) {
		calls++
		return domain.PagedResult[doc]{Items: docs("a"), Pagination: domain.SinglePage(1)}, nil
	}))

	c.Close()
	c.Load(context.Background())

	assert.Equal(t, 0, calls)
}

func TestRelated(t *testing.T) {
	items := []doc{
		{ID: "self", Group: "tech"},
		{ID: "r1", Group: "tech"},
		{ID: "r2", Group: "sports"},
		{ID: "r3", Group: "tech"},
		{ID: "r4", Group: "tech"},
	}
	cfg := docConfig(listOK(items, domain.SinglePage(5)))
	cfg.SameGroup = func(a, b doc) bool { return a.Group == b.Group }
	c := New(cfg)
	defer c.Close()

	c.Load(context.Background())
	related := c.Related(doc{ID: "self", Group: "tech"}, 2)

	require.Len(t, related, 2)
	assert.Equal(t, "r1", related[0].ID)
	assert.Equal(t, "r3", related[1].ID)
}

func TestRelatedWithoutGroupFunc(t *testing.T) {
	c := New(docConfig(listOK(docs("a"), domain.SinglePage(1))))
	defer c.Close()

	c.Load(context.Background())
	assert.Nil(t, c.Related(doc{ID: "a"}, 3))
}

func TestOptimisticLike(t *testing.T) {
	cfg := docConfig(listOK([]doc{{ID: "a", Likes: 7}}, domain.SinglePage(1)))
	cfg.Like = func(d doc) doc {
		d.Likes++
		return d
	}
	c := New(cfg)
	defer c.Close()

	c.Load(context.Background())

	assert.True(t, c.OptimisticLike("a"))
	assert.Equal(t, 8, c.Snapshot().Items[0].Likes)

	assert.False(t, c.OptimisticLike("missing"))
}

func TestSearchTakesPrecedenceOverList(t *testing.T) {
	var usedSearch bool
	cfg := Config[doc]{
		Resource: "doc",
		List: func(context.Context, upstream.Filters, int, int) (domain.PagedResult[doc], error) {
			return domain.PagedResult[doc]{Items: docs("from-list"), Pagination: domain.SinglePage(1)}, nil
		},
		Search: func(_ context.Context, query string, _, _ int) (domain.PagedResult[doc], error) {
			usedSearch = true
			return domain.PagedResult[doc]{Items: []doc{{ID: "s1", Name: query}}, Pagination: domain.SinglePage(1)}, nil
		},
		Fallback: docs("fb"),
		Match:    matchDoc,
		ID:       func(d doc) string { return d.ID },
	}
	c := New(cfg)
	defer c.Close()

	c.Init("needle", nil, 1)
	c.Load(context.Background())

	assert.True(t, usedSearch)
	require.Len(t, c.Snapshot().Items, 1)
	assert.Equal(t, "needle", c.Snapshot().Items[0].Name)
}

func TestSnapshotReflectsQueryState(t *testing.T) {
	c := New(docConfig(listOK(nil, domain.SinglePage(0))))
	defer c.Close()

	c.Init("q", upstream.Filters{"group": "x"}, 2)
	snap := c.Snapshot()

	assert.Equal(t, "q", snap.Query)
	assert.Equal(t, upstream.Filters{"group": "x"}, snap.Filters)
	assert.Equal(t, StateIdle, snap.State)
}

func ExampleListController_Snapshot() {
	c := New(docConfig(listOK(docs("a"), domain.SinglePage(1))))
	defer c.Close()

	c.Load(context.Background())
	fmt.Println(c.Snapshot().State)
	// Output: ready
}
