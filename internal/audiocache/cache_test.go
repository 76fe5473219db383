package audiocache

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func TestMemoryCache_ExpiryBoundary(t *testing.T) {
	ctx := context.Background()
	clk := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	c := NewMemoryCache(DefaultTTL, WithClock(clk.Now))

	require.NoError(t, c.Put(ctx, "a", []byte("mp3")))

	clk.Advance(DefaultTTL - time.Millisecond)
	b, err := c.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, []byte("mp3"), b)

	clk.Advance(time.Millisecond)
	_, err = c.Get(ctx, "a")
	require.NoError(t, err, "entry is live at exactly the ttl")

	clk.Advance(time.Millisecond)
	_, err = c.Get(ctx, "a")
	require.ErrorIs(t, err, ErrNotFound)
	require.Zero(t, c.Len(), "expired entry is dropped on read")
}

func TestMemoryCache_PutPurgesExpired(t *testing.T) {
	ctx := context.Background()
	clk := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	c := NewMemoryCache(10*time.Second, WithClock(clk.Now))

	require.NoError(t, c.Put(ctx, "old1", []byte{1}))
	require.NoError(t, c.Put(ctx, "old2", []byte{2}))
	clk.Advance(11 * time.Second)
	require.NoError(t, c.Put(ctx, "new", []byte{3}))

	require.Equal(t, 1, c.Len())
	_, err := c.Get(ctx, "old1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCache_PurgeExpiredAndReset(t *testing.T) {
	ctx := context.Background()
	clk := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	c := NewMemoryCache(5*time.Second, WithClock(clk.Now))

	require.NoError(t, c.Put(ctx, "a", []byte{1}))
	clk.Advance(3 * time.Second)
	require.NoError(t, c.Put(ctx, "b", []byte{2}))
	clk.Advance(3 * time.Second)

	n, err := c.PurgeExpired(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 1, c.Len())

	require.NoError(t, c.Reset(ctx))
	require.Zero(t, c.Len())
}

func TestMemoryCache_Unknown(t *testing.T) {
	_, err := NewMemoryCache(0).Get(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	c := NewRedisCache(rdb, "", 300*time.Second)
	require.NoError(t, c.Put(ctx, "x", []byte("ID3data")))

	b, err := c.Get(ctx, "x")
	require.NoError(t, err)
	require.Equal(t, []byte("ID3data"), b)
	require.Equal(t, 300*time.Second, mr.TTL(DefaultRedisPrefix+"x"))

	mr.FastForward(301 * time.Second)
	_, err = c.Get(ctx, "x")
	require.ErrorIs(t, err, ErrNotFound)

	n, err := c.PurgeExpired(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	require.NoError(t, c.Put(ctx, "y", []byte{1}))
	require.NoError(t, c.Reset(ctx))
	_, err = c.Get(ctx, "y")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNewIDAndURL(t *testing.T) {
	id := NewID()
	_, err := ulid.ParseStrict(id)
	require.NoError(t, err)
	require.NotEqual(t, id, NewID())
	require.True(t, strings.HasPrefix(URL(id), "/audio/"))
}
