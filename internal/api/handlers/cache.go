package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/cnpj-dv/internal/cnpj"
	"github.com/nexconsult/cnpj-dv/internal/models"
	"github.com/nexconsult/cnpj-dv/internal/services"
	"github.com/sirupsen/logrus"
)

// CacheHandler handles cache management requests
type CacheHandler struct {
	cacheService services.CacheServiceInterface
	logger       *logrus.Logger
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(cacheService services.CacheServiceInterface, logger *logrus.Logger) *CacheHandler {
	return &CacheHandler{
		cacheService: cacheService,
		logger:       logger,
	}
}

// GetStats handles cache statistics request
// @Summary Get cache statistics
// @Description Get result cache statistics and backend health
// @Tags Cache
// @Produce json
// @Security AdminToken
// @Success 200 {object} models.CacheStatsResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /cache/stats [get]
func (h *CacheHandler) GetStats(c *gin.Context) {
	requestID := c.GetString("request_id")

	stats, err := h.cacheService.GetStats(c.Request.Context())
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get cache statistics")

		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:     "Internal server error",
			Message:   "Failed to retrieve cache statistics",
			Code:      "CACHE_STATS_ERROR",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	c.JSON(http.StatusOK, models.CacheStatsResponse{
		Stats:     stats,
		Health:    h.cacheService.Health(),
		Timestamp: time.Now(),
	})
}

// Clear handles cache clear request
// @Summary Clear all cache
// @Description Remove every cached validation and generation result
// @Tags Cache
// @Produce json
// @Security AdminToken
// @Success 200 {object} models.MessageResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /cache/clear [delete]
func (h *CacheHandler) Clear(c *gin.Context) {
	requestID := c.GetString("request_id")

	if err := h.cacheService.Clear(c.Request.Context()); err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to clear cache")

		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:     "Internal server error",
			Message:   "Failed to clear cache",
			Code:      "CACHE_CLEAR_ERROR",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	h.logger.WithField("request_id", requestID).Info("Cache cleared")

	c.JSON(http.StatusOK, models.MessageResponse{
		Success:   true,
		Message:   "Cache cleared successfully",
		Timestamp: time.Now(),
	})
}

// Delete handles deletion of the cached results of one CNPJ
// @Summary Delete a CNPJ from cache
// @Description Delete the cached validation and generation results of a CNPJ
// @Tags Cache
// @Produce json
// @Security AdminToken
// @Param cnpj path string true "CNPJ, masked or bare" example(11222333000181)
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /cache/{cnpj} [delete]
func (h *CacheHandler) Delete(c *gin.Context) {
	requestID := c.GetString("request_id")
	param := c.Param("cnpj")

	parsed, err := cnpj.Parse(PathInput(param))
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"cnpj":       param,
		}).Warn("Invalid CNPJ format for cache deletion")

		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "Invalid CNPJ format",
			Message:   err.Error(),
			Code:      "INVALID_CNPJ_FORMAT",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	log := h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"cnpj":       parsed.String(),
	})

	deleted := 0
	for _, key := range services.CacheKeys(parsed) {
		exists, err := h.cacheService.Exists(c.Request.Context(), key)
		if err != nil {
			log.WithError(err).Error("Failed to check cache key existence")

			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "Internal server error",
				Message:   "Failed to check cache",
				Code:      "CACHE_CHECK_ERROR",
				Timestamp: time.Now(),
				Path:      c.Request.URL.Path,
			})
			return
		}
		if !exists {
			continue
		}

		if err := h.cacheService.Delete(c.Request.Context(), key); err != nil {
			log.WithError(err).Error("Failed to delete CNPJ from cache")

			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:     "Internal server error",
				Message:   "Failed to delete from cache",
				Code:      "CACHE_DELETE_ERROR",
				Timestamp: time.Now(),
				Path:      c.Request.URL.Path,
			})
			return
		}
		deleted++
	}

	if deleted == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:     "Not found",
			Message:   "CNPJ not found in cache",
			Code:      "CNPJ_NOT_IN_CACHE",
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
		return
	}

	log.WithField("keys", deleted).Info("CNPJ deleted from cache")

	c.JSON(http.StatusOK, models.MessageResponse{
		Success:   true,
		Message:   "CNPJ deleted from cache successfully",
		CNPJ:      parsed.Formatted(),
		Timestamp: time.Now(),
	})
}
