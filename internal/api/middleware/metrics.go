package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nexconsult/cnpj-dv/internal/services"
)

// Metrics records the method, route template, status and duration of every
// request. Unmatched routes share one label to keep cardinality bounded.
func Metrics(recorder services.MetricsServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		recorder.RecordRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
