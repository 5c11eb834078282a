package middleware

import (
	"strconv"
	"time"

	"github.com/decluttit/trade-service/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Observe logs every request and records its latency. The metrics
// receiver may be nil, Record* methods tolerate that.
func Observe(logger *zap.Logger, tradeMetrics *metrics.TradeMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		elapsed := time.Since(start)
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := c.Writer.Status()

		if tradeMetrics != nil {
			tradeMetrics.RequestDuration.
				WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).
				Observe(elapsed.Seconds())
		}

		logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("elapsed", elapsed),
		)
	}
}
