package services

import (
	"context"
	"errors"
	"time"

	"github.com/nexconsult/cnpj-dv/internal/models"
)

// ErrCacheMiss is returned by CacheServiceInterface.Get for absent or
// expired keys
var ErrCacheMiss = errors.New("cache miss")

// CNPJServiceInterface defines the interface for CNPJ service
type CNPJServiceInterface interface {
	// Validate parses raw and checks it against its own check digits
	Validate(ctx context.Context, raw string) (*models.ValidationResult, error)

	// Generate parses raw and computes the check digits of its root
	Generate(ctx context.Context, raw string) (*models.GenerationResult, error)

	// Health returns service health status
	Health() map[string]interface{}
}

// CacheServiceInterface defines the interface for cache service
type CacheServiceInterface interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) (string, error)

	// Set stores a value in cache with TTL
	Set(ctx context.Context, key string, value string) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error

	// Clear removes every entry under the cache key prefix
	Clear(ctx context.Context) error

	// Exists checks if a key exists in cache
	Exists(ctx context.Context, key string) (bool, error)

	// GetStats returns cache statistics
	GetStats(ctx context.Context) (map[string]interface{}, error)

	// Health returns cache service health status
	Health() map[string]interface{}
}

// MetricsServiceInterface defines the interface for metrics service
type MetricsServiceInterface interface {
	// RecordRequest records a request metric
	RecordRequest(method, endpoint string, statusCode int, duration time.Duration)

	// RecordOperation records the outcome of a validate or generate call
	RecordOperation(operation, outcome string)

	// RecordCacheHit records a cache lookup
	RecordCacheHit(hit bool)
}
