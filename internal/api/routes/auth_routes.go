package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers all account and session routes
func RegisterAuthRoutes(rg *gin.RouterGroup, authHandler handlers.AuthHandlerInterface, authMiddleware gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		// Public routes
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)

		// Routes requiring a valid access token
		protected := auth.Group("")
		protected.Use(authMiddleware)
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/me", authHandler.GetMe)
			protected.PUT("/update-email", authHandler.UpdateEmail)
			protected.PUT("/update-profile", authHandler.UpdateProfile)
			protected.PUT("/change-password", authHandler.ChangePassword)
			protected.DELETE("/delete-account", authHandler.DeleteAccount)
		}
	}
}
