package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IndexHandler serves the embedded single-page client.
type IndexHandler struct {
	page []byte
}

// NewIndexHandler returns a handler serving page.
func NewIndexHandler(page []byte) *IndexHandler {
	return &IndexHandler{page: page}
}

func (h *IndexHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.page)
}
