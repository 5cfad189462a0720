package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// CacheService implements caching functionality
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	logger *logrus.Logger

	// In-memory fallback cache when Redis is not available
	memCache map[string]cacheItem
	memMutex sync.RWMutex
}

type cacheItem struct {
	value     string
	expiresAt time.Time
}

// NewCacheService creates a new cache service. A nil client runs on the
// in-memory cache only.
func NewCacheService(client *redis.Client, ttl time.Duration, prefix string, logger *logrus.Logger) *CacheService {
	return &CacheService{
		client:   client,
		ttl:      ttl,
		prefix:   prefix,
		logger:   logger,
		memCache: make(map[string]cacheItem),
	}
}

func (c *CacheService) key(key string) string {
	return c.prefix + key
}

// Get retrieves a value from cache
func (c *CacheService) Get(ctx context.Context, key string) (string, error) {
	fullKey := c.key(key)

	// Try Redis first if available
	if c.client != nil {
		val, err := c.client.Get(ctx, fullKey).Result()
		if err == nil {
			c.logger.WithField("key", fullKey).Debug("Cache hit (Redis)")
			return val, nil
		}
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		c.logger.WithFields(logrus.Fields{
			"key":   fullKey,
			"error": err.Error(),
		}).Warn("Redis get error, falling back to memory cache")
	}

	// Fallback to memory cache
	c.memMutex.RLock()
	item, exists := c.memCache[fullKey]
	c.memMutex.RUnlock()

	if !exists {
		return "", ErrCacheMiss
	}

	if time.Now().After(item.expiresAt) {
		c.memMutex.Lock()
		delete(c.memCache, fullKey)
		c.memMutex.Unlock()
		return "", ErrCacheMiss
	}

	c.logger.WithField("key", fullKey).Debug("Cache hit (memory)")
	return item.value, nil
}

// Set stores a value in cache with TTL
func (c *CacheService) Set(ctx context.Context, key string, value string) error {
	fullKey := c.key(key)

	if c.client != nil {
		err := c.client.Set(ctx, fullKey, value, c.ttl).Err()
		if err == nil {
			c.logger.WithField("key", fullKey).Debug("Cache set (Redis)")
			return nil
		}
		c.logger.WithFields(logrus.Fields{
			"key":   fullKey,
			"error": err.Error(),
		}).Warn("Redis set error, falling back to memory cache")
	}

	c.memMutex.Lock()
	c.memCache[fullKey] = cacheItem{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.memMutex.Unlock()

	c.logger.WithField("key", fullKey).Debug("Cache set (memory)")
	return nil
}

// Delete removes a value from cache
func (c *CacheService) Delete(ctx context.Context, key string) error {
	fullKey := c.key(key)

	if c.client != nil {
		if err := c.client.Del(ctx, fullKey).Err(); err != nil {
			c.logger.WithFields(logrus.Fields{
				"key":   fullKey,
				"error": err.Error(),
			}).Warn("Redis delete error")
		}
	}

	// Also remove from memory cache
	c.memMutex.Lock()
	delete(c.memCache, fullKey)
	c.memMutex.Unlock()

	c.logger.WithField("key", fullKey).Debug("Cache delete")
	return nil
}

// Clear removes all entries under the key prefix. Other keys in the Redis
// database are left alone.
func (c *CacheService) Clear(ctx context.Context) error {
	if c.client != nil {
		if err := c.deletePrefixed(ctx); err != nil {
			c.logger.WithField("error", err.Error()).Warn("Redis clear error")
		}
	}

	c.memMutex.Lock()
	c.memCache = make(map[string]cacheItem)
	c.memMutex.Unlock()

	c.logger.Info("Cache cleared")
	return nil
}

func (c *CacheService) deletePrefixed(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()

	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == 100 {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return c.client.Del(ctx, batch...).Err()
	}
	return nil
}

// Exists checks if a key exists in cache
func (c *CacheService) Exists(ctx context.Context, key string) (bool, error) {
	fullKey := c.key(key)

	if c.client != nil {
		count, err := c.client.Exists(ctx, fullKey).Result()
		if err == nil && count > 0 {
			return true, nil
		}
		if err != nil {
			c.logger.WithFields(logrus.Fields{
				"key":   fullKey,
				"error": err.Error(),
			}).Warn("Redis exists error, checking memory cache")
		}
	}

	c.memMutex.RLock()
	item, exists := c.memCache[fullKey]
	c.memMutex.RUnlock()

	if !exists {
		return false, nil
	}

	if time.Now().After(item.expiresAt) {
		c.memMutex.Lock()
		delete(c.memCache, fullKey)
		c.memMutex.Unlock()
		return false, nil
	}

	return true, nil
}

// GetStats returns cache statistics
func (c *CacheService) GetStats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	if c.client != nil {
		keys, err := c.countPrefixed(ctx)
		if err == nil {
			stats["redis"] = map[string]interface{}{
				"available": true,
				"keys":      keys,
			}
		} else {
			stats["redis"] = map[string]interface{}{
				"available": false,
				"error":     err.Error(),
			}
		}
	} else {
		stats["redis"] = map[string]interface{}{
			"available": false,
		}
	}

	c.memMutex.RLock()
	memSize := len(c.memCache)
	c.memMutex.RUnlock()

	stats["memory"] = map[string]interface{}{
		"size": memSize,
		"ttl":  c.ttl.String(),
	}
	stats["prefix"] = c.prefix

	return stats, nil
}

func (c *CacheService) countPrefixed(ctx context.Context) (int, error) {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()

	count := 0
	for iter.Next(ctx) {
		count++
	}
	return count, iter.Err()
}

// Health returns cache service health status
func (c *CacheService) Health() map[string]interface{} {
	health := make(map[string]interface{})

	if c.client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := c.client.Ping(ctx).Err(); err != nil {
			health["status"] = "degraded"
			health["redis"] = "unhealthy"
			health["error"] = err.Error()
		} else {
			health["status"] = "healthy"
			health["redis"] = "healthy"
		}
	} else {
		health["status"] = "healthy"
		health["redis"] = "disabled"
	}
	health["memory"] = "healthy"

	return health
}

// cleanupExpired removes expired items from memory cache
func (c *CacheService) cleanupExpired() int {
	c.memMutex.Lock()
	defer c.memMutex.Unlock()

	removed := 0
	now := time.Now()
	for key, item := range c.memCache {
		if now.After(item.expiresAt) {
			delete(c.memCache, key)
			removed++
		}
	}
	return removed
}

// StartCleanupRoutine periodically removes expired memory entries until ctx
// is done
func (c *CacheService) StartCleanupRoutine(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := c.cleanupExpired(); removed > 0 {
					c.logger.WithField("removed", removed).Debug("Expired cache entries removed")
				}
			}
		}
	}()
}

// IsCacheMiss reports whether err means the key was not cached
func IsCacheMiss(err error) bool {
	return errors.Is(err, ErrCacheMiss)
}
