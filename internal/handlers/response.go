package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Omar1Ach/-shahd-beekeeping/internal/repository"
	"github.com/Omar1Ach/-shahd-beekeeping/internal/services"
	"github.com/gin-gonic/gin"
)

// respondError maps the service and repository error taxonomy onto HTTP
// statuses. Everything unknown is an infrastructure failure.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrInsufficientStock), errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format: " + err.Error()})
}
