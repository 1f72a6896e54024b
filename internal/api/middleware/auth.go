// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"jobboard-api/internal/auth"
	"jobboard-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "userID"    // Key to store user ID in context
	userRoleCtx         = "userRole"  // Key to store user role in context
	userEmailCtx        = "userEmail" // Key to store user email in context
)

// JWTAuthMiddleware creates a Gin middleware that verifies the bearer access
// token and stores the caller's identity claims in the request context.
func JWTAuthMiddleware(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			log.Println("Auth middleware: Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization header required"})
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			log.Println("Auth middleware: Invalid Authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid Authorization header format"})
			return
		}

		claims, err := issuer.VerifyAccess(headerParts[1])
		if err != nil {
			log.Printf("Auth middleware: Token verification failed: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			return
		}

		// Store identity claims in context for downstream handlers
		c.Set(userCtx, claims.UserID)
		c.Set(userRoleCtx, claims.Role)
		c.Set(userEmailCtx, claims.Email)
		c.Next()
	}
}

// RequireRole creates a Gin middleware that rejects callers whose role does
// not match. It must run after JWTAuthMiddleware.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerRole, err := GetUserRoleFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		if callerRole != role {
			log.Printf("RequireRole: %s route rejected caller with role %s", role, callerRole)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Access denied: requires " + string(role) + " role"})
			return
		}
		c.Next()
	}
}

// GetUserIDFromContext returns the authenticated user's ID set by JWTAuthMiddleware.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	userIDAny, exists := c.Get(userCtx)
	if !exists {
		return uuid.Nil, errors.New("user ID not found in context")
	}

	userID, ok := userIDAny.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user ID in context is of invalid type")
	}

	return userID, nil
}

// GetUserRoleFromContext returns the authenticated user's role set by JWTAuthMiddleware.
func GetUserRoleFromContext(c *gin.Context) (models.Role, error) {
	roleAny, exists := c.Get(userRoleCtx)
	if !exists {
		return "", errors.New("user role not found in context")
	}

	role, ok := roleAny.(models.Role)
	if !ok {
		return "", errors.New("user role in context is of invalid type")
	}

	return role, nil
}
