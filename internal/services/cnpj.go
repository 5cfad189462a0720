package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nexconsult/cnpj-dv/internal/cnpj"
	"github.com/nexconsult/cnpj-dv/internal/logger"
	"github.com/nexconsult/cnpj-dv/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	OperationValidate = "validate"
	OperationGenerate = "generate"
)

// healthCheckCNPJ is a known valid CNPJ validated by Health
var healthCheckCNPJ = "11.222.333/0001-81"

// CNPJService validates CNPJs and generates check digits, caching results
type CNPJService struct {
	cache   CacheServiceInterface
	metrics MetricsServiceInterface
	logger  *logrus.Logger
}

// NewCNPJService creates a new CNPJ service
func NewCNPJService(cache CacheServiceInterface, metrics MetricsServiceInterface, logger *logrus.Logger) *CNPJService {
	return &CNPJService{
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

// ValidationKey is the cache key of a validation result
func ValidationKey(c cnpj.CNPJ) string {
	return OperationValidate + ":" + c.String()
}

// GenerationKey is the cache key of the check digits of c's root
func GenerationKey(c cnpj.CNPJ) string {
	root := c.String()
	if len(root) > cnpj.RootLength {
		root = root[:cnpj.RootLength]
	}
	return OperationGenerate + ":" + root
}

// CacheKeys returns every cache key that can hold a result for c
func CacheKeys(c cnpj.CNPJ) []string {
	return []string{ValidationKey(c), GenerationKey(c)}
}

// Validate parses raw and checks it against its own check digits. Parse and
// length errors are returned wrapped; errors.Is(err, cnpj.ErrFormat) and
// errors.Is(err, cnpj.ErrLength) identify them.
func (s *CNPJService) Validate(ctx context.Context, raw string) (*models.ValidationResult, error) {
	log := s.entry(ctx).WithField("input", raw)

	parsed, err := cnpj.Parse(raw)
	if err != nil {
		s.metrics.RecordOperation(OperationValidate, outcome(err))
		log.WithError(err).Debug("Rejected CNPJ input")
		return nil, fmt.Errorf("parse CNPJ: %w", err)
	}

	key := ValidationKey(parsed)
	var result models.ValidationResult
	if s.lookup(ctx, log, key, &result) {
		result.Input = raw
		result.Cache = true
		result.Timestamp = time.Now()
		s.metrics.RecordOperation(OperationValidate, validOutcome(result.Valid))
		return &result, nil
	}

	digits, err := parsed.CheckDigits()
	if err != nil {
		s.metrics.RecordOperation(OperationValidate, outcome(err))
		return nil, fmt.Errorf("compute check digits: %w", err)
	}

	// a root-only value never validates
	hasDigits := parsed.HasCheckDigits()
	valid := hasDigits && parsed.String()[cnpj.RootLength:] == digits

	result = models.ValidationResult{
		Input:          raw,
		CNPJ:           parsed.String(),
		Formatted:      parsed.Formatted(),
		Valid:          valid,
		HasCheckDigits: hasDigits,
		CheckDigits:    digits,
		Root:           parsed.Root(),
		Branch:         parsed.Branch(),
		Type:           string(parsed.Kind()),
		Timestamp:      time.Now(),
	}

	s.store(ctx, log, key, result)
	s.metrics.RecordOperation(OperationValidate, validOutcome(valid))

	log.WithFields(logrus.Fields{
		"cnpj":  parsed.String(),
		"valid": valid,
	}).Debug("CNPJ validated")

	return &result, nil
}

// Generate parses raw and computes the check digits of its root
func (s *CNPJService) Generate(ctx context.Context, raw string) (*models.GenerationResult, error) {
	log := s.entry(ctx).WithField("input", raw)

	parsed, err := cnpj.Parse(raw)
	if err != nil {
		s.metrics.RecordOperation(OperationGenerate, outcome(err))
		log.WithError(err).Debug("Rejected CNPJ input")
		return nil, fmt.Errorf("parse CNPJ: %w", err)
	}

	key := GenerationKey(parsed)
	var result models.GenerationResult
	if s.lookup(ctx, log, key, &result) {
		result.Input = raw
		result.Cache = true
		result.Timestamp = time.Now()
		s.metrics.RecordOperation(OperationGenerate, "generated")
		return &result, nil
	}

	complete, err := parsed.Complete()
	if err != nil {
		s.metrics.RecordOperation(OperationGenerate, outcome(err))
		return nil, fmt.Errorf("generate check digits: %w", err)
	}

	full := complete.String()
	result = models.GenerationResult{
		Input:       raw,
		Root:        full[:cnpj.RootLength],
		CheckDigits: full[cnpj.RootLength:],
		CNPJ:        full,
		Formatted:   complete.Formatted(),
		Timestamp:   time.Now(),
	}

	s.store(ctx, log, key, result)
	s.metrics.RecordOperation(OperationGenerate, "generated")

	log.WithFields(logrus.Fields{
		"root":         result.Root,
		"check_digits": result.CheckDigits,
	}).Debug("Check digits generated")

	return &result, nil
}

// Health returns service health status
func (s *CNPJService) Health() map[string]interface{} {
	// A known CNPJ must still validate
	known, err := cnpj.Parse(healthCheckCNPJ)
	if err != nil {
		return map[string]interface{}{
			"status": "unhealthy",
			"error":  err.Error(),
		}
	}
	if !known.IsValid() {
		return map[string]interface{}{
			"status": "unhealthy",
			"error":  "check digits of " + healthCheckCNPJ + " no longer validate",
		}
	}

	return map[string]interface{}{
		"status": "healthy",
	}
}

func (s *CNPJService) entry(ctx context.Context) *logrus.Entry {
	return logger.WithRequest(s.logger, logger.RequestIDFromContext(ctx))
}

// lookup decodes the cached value of key into dst and reports a hit
func (s *CNPJService) lookup(ctx context.Context, log *logrus.Entry, key string, dst interface{}) bool {
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		if !IsCacheMiss(err) {
			log.WithError(err).Warn("Cache lookup failed")
		}
		s.metrics.RecordCacheHit(false)
		return false
	}

	if err := json.Unmarshal([]byte(cached), dst); err != nil {
		log.WithError(err).Warn("Failed to unmarshal cached result")
		s.metrics.RecordCacheHit(false)
		return false
	}

	s.metrics.RecordCacheHit(true)
	return true
}

func (s *CNPJService) store(ctx context.Context, log *logrus.Entry, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		log.WithError(err).Warn("Failed to marshal result for cache")
		return
	}
	if err := s.cache.Set(ctx, key, string(data)); err != nil {
		log.WithError(err).Warn("Failed to cache result")
	}
}

func outcome(err error) string {
	switch {
	case errors.Is(err, cnpj.ErrFormat):
		return "format_error"
	case errors.Is(err, cnpj.ErrLength):
		return "length_error"
	default:
		return "error"
	}
}

func validOutcome(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}
