package routes

import (
	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers all routes related to job applications
func RegisterApplicationRoutes(rg *gin.RouterGroup, appHandler handlers.ApplicationHandlerInterface, authMiddleware gin.HandlerFunc) {
	applications := rg.Group("/applications")
	applications.Use(authMiddleware)
	{
		// Both roles: scoped stats
		applications.GET("/stats", appHandler.GetStats)

		// Seeker-only routes
		seeker := applications.Group("")
		seeker.Use(middleware.RequireRole(models.RoleJobSeeker))
		{
			seeker.POST("", appHandler.SubmitApplication)
			seeker.GET("/me", appHandler.ListMyApplications)
		}

		// Employer-only routes
		employer := applications.Group("")
		employer.Use(middleware.RequireRole(models.RoleEmployer))
		{
			employer.GET("/job/:jobId", appHandler.ListJobApplications)
			employer.PUT("/:id/status", appHandler.UpdateApplicationStatus)
		}
	}
}
