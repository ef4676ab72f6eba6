package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	c, err := New("redis://" + srv.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, srv
}

func TestGetMiss(t *testing.T) {
	c, _ := newTestCache(t)

	var out string
	found, err := c.Get(context.Background(), "absent", &out)

	require.NoError(t, err)
	assert.False(t, found)
}

func TestSetGetRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)

	type page struct {
		Items []string `json:"items"`
	}
	require.NoError(t, c.Set(context.Background(), "list:events:page=1", page{Items: []string{"a", "b"}}, time.Minute))

	var out page
	found, err := c.Get(context.Background(), "list:events:page=1", &out)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, out.Items)
}

func TestEntryExpires(t *testing.T) {
	c, srv := newTestCache(t)

	require.NoError(t, c.Set(context.Background(), "k", "v", time.Minute))
	srv.FastForward(2 * time.Minute)

	var out string
	found, err := c.Get(context.Background(), "k", &out)

	require.NoError(t, err)
	assert.False(t, found)
}

// Redis failures surface as errors so callers can log and carry on;
// they must never look like a cache hit.
func TestRedisDownSurfacesErrors(t *testing.T) {
	c, srv := newTestCache(t)
	srv.Close()

	var out string
	found, err := c.Get(context.Background(), "k", &out)
	assert.Error(t, err)
	assert.False(t, found)

	assert.Error(t, c.Set(context.Background(), "k", "v", time.Minute))
}

func TestCorruptPayloadIsAnError(t *testing.T) {
	c, srv := newTestCache(t)
	require.NoError(t, srv.Set("k", "{not json"))

	var out map[string]any
	found, err := c.Get(context.Background(), "k", &out)

	assert.Error(t, err)
	assert.False(t, found)
}

func TestNewRejectsBadURL(t *testing.T) {
	_, err := New("not-a-redis-url")
	assert.Error(t, err)
}

func TestNewRequiresReachableServer(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	_, err := New("redis://" + addr)
	assert.Error(t, err)
}
