package middleware

import (
	"time"

	"github.com/chillgamer/chill-gamer-server/src/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags every request with an id, echoed back in the
// X-Request-ID header, and logs one line once the handler returns.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		details := logger.Fields(
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"ip", c.ClientIP(),
		)

		switch {
		case status >= 500:
			logger.Error(logger.EventHTTPRequest, "Request failed", details)
		case status >= 400:
			logger.Warn(logger.EventHTTPRequest, "Request rejected", details)
		default:
			logger.Info(logger.EventHTTPRequest, "Request handled", details)
		}
	}
}
