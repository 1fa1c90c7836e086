package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// Points at a port nothing listens on; only argument checks are exercised.
func offlineCache() *Cache {
	return NewWithClient(redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	}))
}

func TestEmptyKeysRejected(t *testing.T) {
	c := offlineCache()
	defer c.Close()
	ctx := context.Background()

	var dest []string
	assert.ErrorIs(t, c.Set(ctx, "", []string{"x"}, time.Minute), ErrCacheKeyEmpty)
	assert.ErrorIs(t, c.Get(ctx, "", &dest), ErrCacheKeyEmpty)
	assert.ErrorIs(t, c.DeleteByPattern(ctx, ""), ErrCacheKeyEmpty)
	assert.NoError(t, c.Delete(ctx))
}

func TestSet_UnserializableValue(t *testing.T) {
	c := offlineCache()
	defer c.Close()

	err := c.Set(context.Background(), "catalog:bad", make(chan int), time.Minute)
	assert.ErrorIs(t, err, ErrCacheSerialization)
}

func TestNewCache_Unreachable(t *testing.T) {
	_, err := NewCache(Config{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond})
	assert.ErrorIs(t, err, ErrCacheConnection)
}
