// internal/api/routes/routes.go
package routes

import (
	"log"

	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/app"
	"jobboard-api/internal/auth"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage/postgres"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// --- Wire repositories, token issuer and services ---
	userRepo := postgres.NewUserRepo(app.DBPool)
	jobRepo := postgres.NewJobRepo(app.DBPool)
	appRepo := postgres.NewApplicationRepo(app.DBPool)

	issuer := auth.NewTokenIssuer(app.Config.JWT)

	userService := services.NewUserService(userRepo, jobRepo, appRepo, issuer, app.DBPool)
	jobService := services.NewJobService(jobRepo, appRepo, app.DBPool)
	applicationService := services.NewApplicationService(appRepo, jobRepo)

	// --- Create handlers ---
	authHandler := handlers.NewAuthHandler(userService, app.Validator)
	jobHandler := handlers.NewJobHandler(jobService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(applicationService, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(issuer)

	// --- Register Resource Routes ---
	RegisterAuthRoutes(apiV1, authHandler, authMiddleware)
	RegisterJobRoutes(apiV1, jobHandler, authMiddleware)
	RegisterApplicationRoutes(apiV1, applicationHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
