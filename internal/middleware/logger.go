package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yashvi-parmar/freethrows-backend-go/internal/metrics"
)

// Logger middleware logs HTTP requests with structured fields and records
// the request metrics.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		method := c.Request.Method

		metrics.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		metrics.RequestDuration.WithLabelValues(method, path).Observe(latency.Seconds())

		if raw != "" {
			path = path + "?" + raw
		}

		logger.Info("request",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("request_id", RequestIDFrom(c)),
			zap.String("errors", c.Errors.String()),
		)
	}
}
