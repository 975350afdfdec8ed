package handlers

import (
	"net/http"

	"afisha/internal/models"

	"github.com/gin-gonic/gin"
)

// Bookings handlers

// OrderTicket - POST /api/bookings
// A placed booking answers 201; a business refusal (sold out, show already
// started, nothing matching) answers 200 with the explanatory message.
func (h *Handlers) OrderTicket(c *gin.Context) {
	var req models.OrderTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Bookings.OrderTicket(c.Request.Context(), req.Movie, req.When, req.Tickets)
	if err != nil {
		renderError(c, err)
		return
	}

	if response.BookingID != "" {
		c.JSON(http.StatusCreated, response)
		return
	}
	c.JSON(http.StatusOK, response)
}

// CancelBooking - PATCH /api/bookings/cancel
func (h *Handlers) CancelBooking(c *gin.Context) {
	var req models.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Bookings.CancelBooking(c.Request.Context(), req.BookingID)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
