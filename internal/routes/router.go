package routes

import (
	"context"
	"net/http"
	"time"

	"taskboard/internal/config"
	"taskboard/internal/delivery/http/handler"
	domainTask "taskboard/internal/domain/task"
	"taskboard/internal/infrastructure/database/postgres"
	"taskboard/internal/logger"
	"taskboard/internal/middleware"
	"taskboard/internal/usecase/auth"
	"taskboard/internal/usecase/task"
	"taskboard/internal/usecase/user"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB, images domainTask.ImageStore) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	// Stored images are served publicly; the base URL in config must point
	// at this route.
	router.Static("/uploads", cfg.Storage.UploadDir)

	userRepository := postgres.NewUserRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)
	taskRepository := postgres.NewTaskRepository(db)

	authService := auth.NewService(userRepository, refreshTokenRepo, cfg)
	authHandler := handler.NewAuthHandler(authService)

	userService := user.NewService(userRepository, taskRepository, images)
	userHandler := handler.NewUserHandler(userService)

	taskService := task.NewService(taskRepository, images, cfg)
	taskHandler := handler.NewTaskHandler(taskService)

	go authService.StartTokenCleanupJob(context.Background(), 1*time.Hour)

	api := router.Group("/api")
	{
		authHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			taskHandler.RegisterRoutes(protected)
			userHandler.RegisterRoutes(protected)
		}
	}

	logger.Info("All routes initialized")
	return router
}
