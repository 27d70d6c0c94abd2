package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/doeshing/coach-go/internal/ports"
)

// AccessLog writes one entry per request.
func AccessLog(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": GetRequestID(c),
			"client_ip":  c.ClientIP(),
		}
		if c.Writer.Status() >= 500 {
			log.Warn("request failed", fields)
			return
		}
		log.Info("request", fields)
	}
}
