package handlers

import (
	"errors"
	"net/http"

	apperrors "afisha/internal/errors"
	"afisha/internal/service"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	services *service.Services
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		services: services,
	}
}

// renderError maps the domain error taxonomy onto HTTP status codes:
// unknown ids are 404, lifecycle violations are 422, anything else 500.
func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrShowNotFound), errors.Is(err, apperrors.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidOperation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
