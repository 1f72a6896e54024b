package handlers

import (
	"errors"
	"log"
	"net/http"

	"jobboard-api/internal/services"

	"github.com/gin-gonic/gin"
)

// Every response uses the same envelope: success, message, and optionally
// data. Error responses carry success=false and no data.

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{"success": true, "message": message, "data": data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Validation failed",
		"errors":  FormatValidationErrors(err),
	})
}

// respondError translates service sentinel errors into HTTP statuses. Anything
// unmapped becomes a 500 with a generic message; the real error is logged, not
// leaked.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Resource not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied"})
	case errors.Is(err, services.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Email is already registered"})
	case errors.Is(err, services.ErrDuplicateApplication):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "You have already applied to this job"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
	case errors.Is(err, services.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	default:
		log.Printf("Handler error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": fallback})
	}
}
