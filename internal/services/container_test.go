package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/nexconsult/cnpj-dv/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Redis: config.RedisConfig{
			Host:         "localhost",
			Port:         6379,
			PoolSize:     2,
			DialTimeout:  time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
		Cache: config.CacheConfig{
			TTL:             time.Minute,
			KeyPrefix:       "cnpj:",
			CleanupInterval: time.Minute,
		},
	}
}

func TestNewContainer_MemoryCache(t *testing.T) {
	container, err := NewContainer(testConfig(), newTestLogger())
	require.NoError(t, err)
	defer container.Close()

	assert.Nil(t, container.GetRedisClient())
	assert.NotNil(t, container.CNPJService)
	assert.NotNil(t, container.Metrics)

	result, err := container.CNPJService.Validate(context.Background(), "11.222.333/0001-81")
	require.NoError(t, err)
	assert.True(t, result.Valid)

	health := container.Health()
	assert.Contains(t, health, "cache")
	assert.Contains(t, health, "cnpj")
}

func TestNewContainer_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Redis.Enabled = true
	cfg.Redis.Host = mr.Host()
	cfg.Redis.Port = port

	container, err := NewContainer(cfg, newTestLogger())
	require.NoError(t, err)

	require.NotNil(t, container.GetRedisClient())

	_, err = container.CNPJService.Generate(context.Background(), "11.222.333/0001")
	require.NoError(t, err)
	assert.True(t, mr.Exists("cnpj:generate:112223330001"))

	assert.NoError(t, container.Close())
}

func TestNewContainer_UnreachableRedisFallsBack(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	mr.Close()

	cfg := testConfig()
	cfg.Redis.Enabled = true
	cfg.Redis.Host = "127.0.0.1"
	cfg.Redis.Port = port
	cfg.Redis.DialTimeout = 200 * time.Millisecond

	container, err := NewContainer(cfg, newTestLogger())
	require.NoError(t, err)
	defer container.Close()

	assert.Nil(t, container.GetRedisClient())
	assert.Equal(t, "disabled", container.CacheService.Health()["redis"])
}

func TestNewContainer_InvalidTTL(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.TTL = 0

	_, err := NewContainer(cfg, newTestLogger())
	assert.Error(t, err)
}
