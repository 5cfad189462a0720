package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger
}

func setupRedisCache(t *testing.T, ttl time.Duration) (*CacheService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewCacheService(client, ttl, "cnpj:", newTestLogger()), mr
}

func TestCacheService_Redis(t *testing.T) {
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		cache, mr := setupRedisCache(t, time.Minute)

		require.NoError(t, cache.Set(ctx, "validate:11222333000181", `{"valid":true}`))

		value, err := cache.Get(ctx, "validate:11222333000181")
		require.NoError(t, err)
		assert.Equal(t, `{"valid":true}`, value)

		// stored under the prefix in Redis, not in memory
		assert.True(t, mr.Exists("cnpj:validate:11222333000181"))
		assert.Empty(t, cache.memCache)
	})

	t.Run("missing key is a cache miss", func(t *testing.T) {
		cache, _ := setupRedisCache(t, time.Minute)

		_, err := cache.Get(ctx, "absent")
		assert.True(t, IsCacheMiss(err))
	})

	t.Run("ttl expiration", func(t *testing.T) {
		cache, mr := setupRedisCache(t, time.Minute)

		require.NoError(t, cache.Set(ctx, "k", "v"))
		mr.FastForward(2 * time.Minute)

		_, err := cache.Get(ctx, "k")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("exists and delete", func(t *testing.T) {
		cache, _ := setupRedisCache(t, time.Minute)

		require.NoError(t, cache.Set(ctx, "k", "v"))
		exists, err := cache.Exists(ctx, "k")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, cache.Delete(ctx, "k"))
		exists, err = cache.Exists(ctx, "k")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("clear only removes prefixed keys", func(t *testing.T) {
		cache, mr := setupRedisCache(t, time.Minute)

		require.NoError(t, mr.Set("other:key", "keep"))
		for _, key := range []string{"a", "b", "c"} {
			require.NoError(t, cache.Set(ctx, key, key))
		}

		require.NoError(t, cache.Clear(ctx))

		assert.False(t, mr.Exists("cnpj:a"))
		assert.False(t, mr.Exists("cnpj:b"))
		assert.False(t, mr.Exists("cnpj:c"))
		assert.True(t, mr.Exists("other:key"))
	})

	t.Run("stats and health", func(t *testing.T) {
		cache, _ := setupRedisCache(t, time.Minute)

		require.NoError(t, cache.Set(ctx, "a", "1"))
		require.NoError(t, cache.Set(ctx, "b", "2"))

		stats, err := cache.GetStats(ctx)
		require.NoError(t, err)
		redisStats := stats["redis"].(map[string]interface{})
		assert.Equal(t, true, redisStats["available"])
		assert.Equal(t, 2, redisStats["keys"])
		assert.Equal(t, "cnpj:", stats["prefix"])

		health := cache.Health()
		assert.Equal(t, "healthy", health["status"])
		assert.Equal(t, "healthy", health["redis"])
	})
}

func TestCacheService_RedisDownFallsBackToMemory(t *testing.T) {
	ctx := context.Background()
	cache, mr := setupRedisCache(t, time.Minute)
	mr.Close()

	require.NoError(t, cache.Set(ctx, "k", "v"))

	value, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)

	health := cache.Health()
	assert.Equal(t, "degraded", health["status"])
	assert.Equal(t, "unhealthy", health["redis"])
}

func TestCacheService_Memory(t *testing.T) {
	ctx := context.Background()

	t.Run("set get delete", func(t *testing.T) {
		cache := NewCacheService(nil, time.Minute, "cnpj:", newTestLogger())

		require.NoError(t, cache.Set(ctx, "k", "v"))
		value, err := cache.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "v", value)

		require.NoError(t, cache.Delete(ctx, "k"))
		_, err = cache.Get(ctx, "k")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("expired entries are misses", func(t *testing.T) {
		cache := NewCacheService(nil, time.Millisecond, "cnpj:", newTestLogger())

		require.NoError(t, cache.Set(ctx, "k", "v"))
		time.Sleep(5 * time.Millisecond)

		_, err := cache.Get(ctx, "k")
		assert.ErrorIs(t, err, ErrCacheMiss)

		exists, err := cache.Exists(ctx, "k")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("cleanup removes expired entries", func(t *testing.T) {
		cache := NewCacheService(nil, time.Millisecond, "cnpj:", newTestLogger())

		require.NoError(t, cache.Set(ctx, "a", "1"))
		require.NoError(t, cache.Set(ctx, "b", "2"))
		time.Sleep(5 * time.Millisecond)

		assert.Equal(t, 2, cache.cleanupExpired())
		assert.Empty(t, cache.memCache)
	})

	t.Run("cleanup routine stops with context", func(t *testing.T) {
		cache := NewCacheService(nil, time.Millisecond, "cnpj:", newTestLogger())
		require.NoError(t, cache.Set(ctx, "a", "1"))

		cleanupCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		cache.StartCleanupRoutine(cleanupCtx, 2*time.Millisecond)

		assert.Eventually(t, func() bool {
			cache.memMutex.RLock()
			defer cache.memMutex.RUnlock()
			return len(cache.memCache) == 0
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("clear and stats", func(t *testing.T) {
		cache := NewCacheService(nil, time.Minute, "cnpj:", newTestLogger())

		require.NoError(t, cache.Set(ctx, "a", "1"))
		stats, err := cache.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats["memory"].(map[string]interface{})["size"])
		assert.Equal(t, false, stats["redis"].(map[string]interface{})["available"])

		require.NoError(t, cache.Clear(ctx))
		stats, err = cache.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, stats["memory"].(map[string]interface{})["size"])

		assert.Equal(t, "disabled", cache.Health()["redis"])
	})
}
