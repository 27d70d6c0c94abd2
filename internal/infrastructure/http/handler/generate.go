package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/doeshing/coach-go/internal/domain"
	"github.com/doeshing/coach-go/internal/infrastructure/http/middleware"
	"github.com/doeshing/coach-go/internal/ports"
)

// GenerateHandler serves POST /api/generate.
type GenerateHandler struct {
	generator ports.Generator
	logger    ports.Logger
}

// NewGenerateHandler returns a handler backed by generator.
func NewGenerateHandler(generator ports.Generator, logger ports.Logger) *GenerateHandler {
	return &GenerateHandler{generator: generator, logger: logger}
}

// Generate answers {"output": ...} with 200, or {"error": ...} with 429 or 500.
// An undecodable body is reported like any other failure.
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req domain.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid generate body", map[string]interface{}{
			"error":      err.Error(),
			"request_id": middleware.GetRequestID(c),
		})
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: domain.GenericFailureMessage})
		return
	}

	result := h.generator.Generate(c.Request.Context(), req)
	if !result.OK() {
		if retry := result.Failure.RetryAfter; retry > 0 {
			c.Header("Retry-After", strconv.Itoa(int((retry+time.Second-1)/time.Second)))
		}
		c.JSON(result.Failure.StatusCode(), ErrorResponse{Error: result.Failure.Message})
		return
	}

	c.JSON(http.StatusOK, OutputResponse{Output: result.Output})
}
