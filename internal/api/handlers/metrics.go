package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MetricsHandler serves Prometheus metrics
type MetricsHandler struct {
	handler http.Handler
}

// NewMetricsHandler wraps a Prometheus exposition handler
func NewMetricsHandler(handler http.Handler) *MetricsHandler {
	return &MetricsHandler{handler: handler}
}

// GetMetrics handles metrics request
// @Summary Get application metrics
// @Description Request, validation and cache metrics in the Prometheus text format
// @Tags Metrics
// @Produce plain
// @Success 200 {string} string
// @Router /metrics [get]
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	h.handler.ServeHTTP(c.Writer, c.Request)
}
