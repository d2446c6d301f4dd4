package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"cardwallet.backend/pkg/logger"
	"cardwallet.backend/pkg/metrics"
)

// LoggerMiddleware logs HTTP requests using the structured logger and feeds
// the per-route request counter.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestCount.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()

		logger.LogRequest(c.Request.Context(), c.Request.Method, path, c.Writer.Status(), latency, c.ClientIP())
	}
}
