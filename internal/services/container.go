package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nexconsult/cnpj-dv/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Container holds all service dependencies
type Container struct {
	config       *config.Config
	logger       *logrus.Logger
	redisClient  *redis.Client
	cancel       context.CancelFunc
	CNPJService  CNPJServiceInterface
	CacheService CacheServiceInterface
	Metrics      *Metrics
}

// NewContainer creates a new service container
func NewContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	container := &Container{
		config: cfg,
		logger: logger,
	}

	container.initRedis()

	if err := container.initServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return container, nil
}

// initRedis initializes the Redis client. An unreachable server leaves the
// container on the memory cache.
func (c *Container) initRedis() {
	if !c.config.Redis.Enabled {
		c.logger.Info("Redis disabled, using memory cache")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:         c.config.Redis.Addr(),
		Password:     c.config.Redis.Password,
		DB:           c.config.Redis.DB,
		PoolSize:     c.config.Redis.PoolSize,
		DialTimeout:  c.config.Redis.DialTimeout,
		ReadTimeout:  c.config.Redis.ReadTimeout,
		WriteTimeout: c.config.Redis.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), c.config.Redis.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		c.logger.WithFields(logrus.Fields{
			"addr":  c.config.Redis.Addr(),
			"error": err.Error(),
		}).Warn("Redis connection failed, using memory cache")
		_ = client.Close()
		return
	}

	c.logger.WithField("addr", c.config.Redis.Addr()).Info("Redis connection established")
	c.redisClient = client
}

// initServices initializes all services
func (c *Container) initServices() error {
	if c.config.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got %s", c.config.Cache.TTL)
	}

	c.Metrics = NewMetrics()

	cache := NewCacheService(c.redisClient, c.config.Cache.TTL, c.config.Cache.KeyPrefix, c.logger)
	ctx, cancel := context.WithCancel(context.Background())
	cache.StartCleanupRoutine(ctx, c.config.Cache.CleanupInterval)
	c.cancel = cancel
	c.CacheService = cache

	c.CNPJService = NewCNPJService(c.CacheService, c.Metrics, c.logger)

	return nil
}

// Close closes all service connections
func (c *Container) Close() error {
	if c.cancel != nil {
		c.cancel()
	}

	var errs []error
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Health checks the health of all services
func (c *Container) Health() map[string]interface{} {
	health := make(map[string]interface{})

	if c.CacheService != nil {
		health["cache"] = c.CacheService.Health()
	}

	if c.CNPJService != nil {
		health["cnpj"] = c.CNPJService.Health()
	}

	return health
}

// GetRedisClient returns the Redis client, nil when running on memory cache
func (c *Container) GetRedisClient() *redis.Client {
	return c.redisClient
}
