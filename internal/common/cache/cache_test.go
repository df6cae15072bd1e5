// internal/common/cache/cache_test.go
package cache

import (
	"context"
	"testing"
	"time"

	"edupath-server/internal/common/database"
	"edupath-server/internal/common/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	return New(client, time.Minute, logger.NewTestLogger(t)), mr
}

func TestCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	var miss payload
	assert.False(t, c.GetJSON(ctx, "stats", &miss))

	c.SetJSON(ctx, "stats", payload{Name: "leads", Count: 7})

	var hit payload
	require.True(t, c.GetJSON(ctx, "stats", &hit))
	assert.Equal(t, payload{Name: "leads", Count: 7}, hit)
}

func TestCache_ExpiredEntryMisses(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.SetJSON(ctx, "stats", payload{Count: 1})
	mr.FastForward(2 * time.Minute)

	var out payload
	assert.False(t, c.GetJSON(ctx, "stats", &out))
}

func TestCache_CorruptEntryEvicted(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("stats", "not json"))

	var out payload
	assert.False(t, c.GetJSON(ctx, "stats", &out))
	assert.False(t, mr.Exists("stats"))
}

func TestCache_NilClientDisabled(t *testing.T) {
	c := New(nil, time.Minute, logger.NewTestLogger(t))
	ctx := context.Background()

	c.SetJSON(ctx, "stats", payload{Count: 1})
	var out payload
	assert.False(t, c.GetJSON(ctx, "stats", &out))
	c.Invalidate(ctx, "stats")
}

func TestCache_Invalidate(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.SetJSON(ctx, "a", payload{Count: 1})
	c.SetJSON(ctx, "b", payload{Count: 2})
	c.Invalidate(ctx, "a", "b")

	assert.False(t, mr.Exists("a"))
	assert.False(t, mr.Exists("b"))
}
