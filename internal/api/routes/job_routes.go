package routes

import (
	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to job postings
func RegisterJobRoutes(rg *gin.RouterGroup, jobHandler handlers.JobHandlerInterface, authMiddleware gin.HandlerFunc) {
	jobs := rg.Group("/jobs")
	{
		// Public browsing routes
		jobs.GET("", jobHandler.ListJobs)

		// Employer-only routes. The static /employer prefix takes priority
		// over the :id wildcard in the router tree.
		employer := jobs.Group("")
		employer.Use(authMiddleware, middleware.RequireRole(models.RoleEmployer))
		{
			employer.GET("/employer/my-jobs", jobHandler.ListMyJobs)
			employer.POST("", jobHandler.CreateJob)
			employer.PUT("/:id", jobHandler.UpdateJob)
			employer.DELETE("/:id", jobHandler.DeleteJob)
		}

		jobs.GET("/:id", jobHandler.GetJob)
	}
}
