package handlers

import (
	"net/http"

	"afisha/internal/models"

	"github.com/gin-gonic/gin"
)

// Stats handlers

// PerCinemaStats - GET /api/stats
func (h *Handlers) PerCinemaStats(c *gin.Context) {
	lines := h.services.Stats.PerCinemaStats(c.Request.Context())
	c.JSON(http.StatusOK, models.StatsResponse{Lines: lines})
}
