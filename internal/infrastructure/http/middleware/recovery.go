package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/doeshing/coach-go/internal/domain"
	"github.com/doeshing/coach-go/internal/ports"
)

// Recovery turns a panic into the generic failure body.
func Recovery(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("panic recovered", fmt.Errorf("%v", err), map[string]interface{}{
					"stack":      string(debug.Stack()),
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"request_id": GetRequestID(c),
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": domain.GenericFailureMessage})
			}
		}()

		c.Next()
	}
}
