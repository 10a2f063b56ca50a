package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"aura-server/internal/infrastructure/metrics"
)

// MetricsMiddleware records request count and duration per route
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		// The route template keeps label cardinality bounded; raw paths only
		// appear for unmatched routes.
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		metrics.RecordRequest(c.Request.Method, endpoint, status, duration)
	}
}
