package routes

import (
	"net/http"

	"mailops-backend/internal/api/handlers"
	"mailops-backend/internal/api/middleware"
	"mailops-backend/internal/auth"
	"mailops-backend/internal/cache"
	"mailops-backend/internal/config"
	"mailops-backend/internal/repository"
	"mailops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application.
// views may be cache.Noop{} when Redis is not configured.
func SetupRoutes(db *gorm.DB, cfg *config.Config, views cache.ViewCache) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)

	// Initialize services
	callers := service.NewCallerResolver(profileRepo)
	userService := service.NewUserService(callers, profileRepo, teamRepo, validator)
	teamService := service.NewTeamService(callers, teamRepo, profileRepo, validator)
	resourceService := service.NewResourceService(callers, resourceRepo, views, validator)
	lifecycleService := service.NewLifecycleService(callers, resourceRepo, views)
	importService := service.NewImportService(callers, resourceRepo, views, validator, cfg.ImportMaxRows)
	revenueService := service.NewRevenueService(callers, revenueRepo, validator)

	authService, err := auth.NewAuthService(cfg.JWTSecret, cfg.SessionTTL)
	if err != nil {
		return nil, err
	}
	authHandler := auth.NewAuthHandler(userService, authService, cfg.SecureCookies)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	cachePinger, _ := views.(handlers.Pinger)
	healthHandler := handlers.NewHealthHandler(db, cachePinger)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	resourceHandler := handlers.NewResourceHandler(resourceService)
	lifecycleHandler := handlers.NewLifecycleHandler(lifecycleService)
	importHandler := handlers.NewImportHandler(importService)
	revenueHandler := handlers.NewRevenueHandler(revenueService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Public auth routes
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/logout", authHandler.Logout)
	}

	// Everything below requires a session. Role and team checks happen in the services
	// against the stored profile, never against the token.
	protected := v1.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/me", userHandler.GetMe)
		protected.PATCH("/me", userHandler.UpdateMe)

		resources := protected.Group("/resources/:kind")
		{
			resources.GET("", resourceHandler.ListResources)
			resources.POST("", resourceHandler.CreateResource)
			resources.POST("/import", importHandler.ImportResources)
			resources.GET("/export", importHandler.ExportResources)
			resources.GET("/:id", resourceHandler.GetResource)
			resources.PATCH("/:id", resourceHandler.UpdateResource)
			resources.DELETE("/:id", resourceHandler.DeleteResource)

			// Lifecycle engine
			resources.POST("/:id/return", lifecycleHandler.RequestReturn)
			resources.POST("/:id/approve-return", lifecycleHandler.ApproveReturn)
			resources.POST("/:id/reject-return", lifecycleHandler.RejectReturn)
			resources.POST("/:id/status", lifecycleHandler.SetStatus)
		}

		protected.GET("/returns/pending", lifecycleHandler.ListPendingReturns)
		protected.GET("/teams/mine/members", userHandler.ListTeamMembers)

		revenue := protected.Group("/revenue")
		{
			revenue.GET("", revenueHandler.ListRevenue)
			revenue.POST("", revenueHandler.LogRevenue)
			revenue.GET("/summary", revenueHandler.RevenueSummary)
		}

		admin := protected.Group("/admin")
		{
			teams := admin.Group("/teams")
			{
				teams.GET("", teamHandler.ListTeams)
				teams.POST("", teamHandler.CreateTeam)
				teams.GET("/:id", teamHandler.GetTeam)
				teams.PATCH("/:id", teamHandler.UpdateTeam)
				teams.DELETE("/:id", teamHandler.DeleteTeam)
			}

			users := admin.Group("/users")
			{
				users.GET("", userHandler.ListUsers)
				users.POST("/:id/approve", userHandler.ApproveUser)
				users.PATCH("/:id", userHandler.UpdateUser)
				users.DELETE("/:id", userHandler.DeleteUser)
			}
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "route not found"})
	})

	return router, nil
}
