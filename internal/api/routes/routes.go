package routes

import (
	"fund-reporting-backend/internal/api/handlers"
	"fund-reporting-backend/internal/api/middleware"
	"fund-reporting-backend/internal/config"
	"fund-reporting-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, notifier service.Notifier) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize services
	projectService := service.NewProjectService(db, validate)
	transitionService := service.NewTransitionService(db, notifier)
	metaProjectService := service.NewMetaProjectService(db)
	associationService := service.NewAssociationService(db, validate)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	projectHandler := handlers.NewProjectHandler(projectService, transitionService)
	metaProjectHandler := handlers.NewMetaProjectHandler(metaProjectService, associationService)
	catalogHandler := handlers.NewCatalogHandler(db)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Project routes
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.POST("/associate_projects", metaProjectHandler.AssociateProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/versions", projectHandler.ListVersions)
			projects.GET("/:id/history", projectHandler.GetHistory)
			projects.GET("/:id/previous_tranches", projectHandler.PreviousTranches)

			// Workflow transitions
			projects.POST("/:id/submit", projectHandler.SubmitProject)
			projects.POST("/:id/recommend", projectHandler.RecommendProject)
			projects.POST("/:id/approve", projectHandler.ApproveProject)
			projects.POST("/:id/reject", projectHandler.RejectProject)
			projects.POST("/:id/withdraw", projectHandler.WithdrawProject)
			projects.POST("/:id/send_back_to_draft", projectHandler.SendBackToDraft)

			// Child collections
			projects.GET("/:id/ods_odp", projectHandler.ListOdsOdp)
			projects.POST("/:id/ods_odp", projectHandler.AddOdsOdp)
			projects.PUT("/:id/ods_odp/:rowId", projectHandler.UpdateOdsOdp)
			projects.DELETE("/:id/ods_odp/:rowId", projectHandler.DeleteOdsOdp)
			projects.GET("/:id/comments", projectHandler.ListComments)
			projects.POST("/:id/comments", projectHandler.AddComment)
			projects.GET("/:id/files", projectHandler.ListFiles)
			projects.POST("/:id/files", projectHandler.AttachFile)
			projects.DELETE("/:id/files/:fileId", projectHandler.DeleteFile)
		}

		// Meta project routes
		metaProjects := v1.Group("/meta_projects")
		{
			metaProjects.GET("", metaProjectHandler.ListMetaProjects)
			metaProjects.GET("/:id", metaProjectHandler.GetMetaProject)
		}

		// Catalog routes
		v1.GET("/countries", catalogHandler.ListCountries)
		v1.GET("/agencies", catalogHandler.ListAgencies)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
