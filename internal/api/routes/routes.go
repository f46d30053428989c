package routes

import (
	"pc-builder-backend/internal/api/handlers"
	"pc-builder-backend/internal/api/middleware"
	"pc-builder-backend/internal/auth"
	"pc-builder-backend/internal/config"
	"pc-builder-backend/internal/repository"
	"pc-builder-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	partRepo := repository.NewPartRepository(db)
	buildRepo := repository.NewBuildRepository(db)
	buildItemRepo := repository.NewBuildItemRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	partService := service.NewPartService(partRepo, validator)
	buildService := service.NewBuildService(buildRepo, buildItemRepo, partRepo, cfg.WattageScope, validator)
	shareService := service.NewShareService(buildRepo, cfg.ShareSecret, cfg.ShareBaseURL, cfg.WattageScope)

	// Initialize auth service and middleware
	authService := auth.NewAuthService(userRepo, cfg.JWTSecret, validator)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	partHandler := handlers.NewPartHandler(partService)
	buildHandler := handlers.NewBuildHandler(buildService)
	shareHandler := handlers.NewShareHandler(shareService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Part catalog routes
		parts := v1.Group("/parts")
		{
			parts.GET("", partHandler.ListParts)
			parts.GET("/:id", partHandler.GetPart)
			parts.POST("", authMiddleware.RequireAuth(), partHandler.CreatePart)
		}

		// Build routes. Mutations run under OptionalAuth so the service can
		// distinguish a missing session (401) from a wrong owner (403).
		builds := v1.Group("/builds")
		{
			builds.GET("", buildHandler.ListBuilds)
			builds.POST("", authMiddleware.OptionalAuth(), buildHandler.CreateBuild)
			builds.GET("/:id", buildHandler.GetBuild)
			builds.DELETE("/:id", authMiddleware.OptionalAuth(), buildHandler.DeleteBuild)
			builds.GET("/:id/summary", buildHandler.GetSummary)

			builds.POST("/:id/items", authMiddleware.OptionalAuth(), buildHandler.AddPart)
			builds.DELETE("/:id/items/:item_id", authMiddleware.OptionalAuth(), buildHandler.RemovePart)

			builds.POST("/:id/share", authMiddleware.OptionalAuth(), shareHandler.ShareBuild)
			builds.DELETE("/:id/share", authMiddleware.OptionalAuth(), shareHandler.UnshareBuild)
			builds.GET("/:id/shared", shareHandler.GetSharedBuild)
		}
	}

	return router
}
