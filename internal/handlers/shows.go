package handlers

import (
	"net/http"

	"afisha/internal/models"

	"github.com/gin-gonic/gin"
)

// Shows handlers

// RegisterShow - POST /api/shows
func (h *Handlers) RegisterShow(c *gin.Context) {
	var req models.RegisterShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	showID, err := h.services.Shows.Register(c.Request.Context(), req.Cinema, req.Movie, req.When, req.Price, req.Capacity)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.RegisterShowResponse{ID: showID})
}

// UpdatePrice - PATCH /api/shows/price
func (h *Handlers) UpdatePrice(c *gin.Context) {
	var req models.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.services.Shows.UpdatePrice(c.Request.Context(), req.ShowID, req.Price); err != nil {
		renderError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// StartShow - PATCH /api/shows/start
func (h *Handlers) StartShow(c *gin.Context) {
	var req models.ShowLifecycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.services.Shows.Start(c.Request.Context(), req.ShowID); err != nil {
		renderError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// EndShow - PATCH /api/shows/end
func (h *Handlers) EndShow(c *gin.Context) {
	var req models.ShowLifecycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.services.Shows.End(c.Request.Context(), req.ShowID); err != nil {
		renderError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
