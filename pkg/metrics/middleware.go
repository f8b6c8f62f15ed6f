package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GinMiddleware records request latency and counts per handler. Probe
// and scrape endpoints are excluded, they would dominate the series
// without telling anything about POS traffic.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "/metrics" || path == "/health/live" || path == "/health/ready" {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		handler := path
		if handler == "" {
			handler = "unknown"
		}

		HTTPRequestDuration.WithLabelValues(handler, c.Request.Method, status).Observe(duration)
		HTTPRequestsTotal.WithLabelValues(handler, c.Request.Method, status).Inc()
	}
}
