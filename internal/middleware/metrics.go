package middleware

import (
	"strconv"
	"time"

	"siteadmin/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency keyed by the matched route pattern.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
