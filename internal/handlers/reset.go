package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResetStore - POST /api/reset
// Drop all state. Test and ops helper.
func (h *Handlers) ResetStore(c *gin.Context) {
	h.services.Reset.ResetStore(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Store reset successfully"})
}
