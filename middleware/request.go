package middleware

import (
	"time"

	"popcornhour/logger"
	"popcornhour/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID keeps an incoming X-Request-ID or mints a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RequestLogger records one log line and the request metrics per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)

		metrics.IncRequest(c.Request.Method, route, status)
		metrics.ObserveDuration(c.Request.Method, route, elapsed)

		logger.Infof("[%s] %s %s %d %dms", GetRequestID(c), c.Request.Method, c.Request.URL.Path, status, elapsed.Milliseconds())
	}
}
