package middleware

import (
	"strconv"
	"time"

	"medicare/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// RequestContext tags every request with an id, echoed in X-Request-ID, and a
// child logger carrying it.
func RequestContext(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(utils.ContextRequestIDKey, requestID)
		c.Set(utils.ContextLoggerKey, logger.With(zap.String("requestId", requestID)))
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

// Observe records request count and latency per route, and logs the request.
func Observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		utils.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
		utils.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(elapsed.Seconds())

		logger := zap.L()
		if l, ok := c.Get(utils.ContextLoggerKey); ok {
			if rl, ok := l.(*zap.Logger); ok {
				logger = rl
			}
		}
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", elapsed),
			zap.String("ip", getClientIP(c)),
		)
	}
}
