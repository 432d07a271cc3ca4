package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mailops-backend/internal/api/routes"
	"mailops-backend/internal/cache"
	"mailops-backend/internal/config"
	"mailops-backend/internal/database"
	"mailops-backend/internal/jobs"
	"mailops-backend/internal/logger"
	"mailops-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	_ "mailops-backend/docs" // This is needed for swag
)

//	@title			MailOps Back Office API
//	@version		1.0
//	@description	Role-based back office for bulk-email operations: shared servers, proxies, RDPs and seed mailboxes, their return workflow, and daily revenue.

//	@contact.name	Operations Support
//	@contact.email	ops@mailops.local

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{Driver: cfg.DatabaseDriver})
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	redisClient, views := setupViewCache(cfg)

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg, views)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	// Background jobs
	sweeper := jobs.NewStaleReturnSweeper(repository.NewResourceRepository(db), cfg.PendingReturnStaleAfter)
	scheduler := jobs.NewScheduler(sweeper, cfg.StaleReturnSweepCron)
	if err := scheduler.Start(); err != nil {
		logrus.Fatal("Failed to start background jobs:", err)
	}

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logrus.WithField("signal", sig.String()).Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := shutdown(ctx, server, scheduler, redisClient, db); err != nil {
		logrus.WithError(err).Error("Shutdown finished with errors")
		os.Exit(1)
	}
	logrus.Info("Server stopped")
}

// setupViewCache connects to Redis when configured; otherwise views are computed on every request
func setupViewCache(cfg *config.Config) (*redis.Client, cache.ViewCache) {
	if cfg.RedisAddr == "" {
		logrus.Info("REDIS_ADDR not set, view cache disabled")
		return nil, cache.Noop{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		// The cache only speeds up reads; start without it
		logrus.WithError(err).Warn("Redis unavailable, view cache disabled")
		return nil, cache.Noop{}
	}
	return client, cache.NewRedisViewCache(client, cfg.ViewCacheTTL)
}

func shutdown(ctx context.Context, server *http.Server, scheduler *jobs.Scheduler, redisClient *redis.Client, db *gorm.DB) error {
	err := server.Shutdown(ctx)

	select {
	case <-scheduler.Stop().Done():
	case <-ctx.Done():
		err = multierr.Append(err, ctx.Err())
	}

	if redisClient != nil {
		err = multierr.Append(err, redisClient.Close())
	}
	if sqlDB, dbErr := db.DB(); dbErr != nil {
		err = multierr.Append(err, dbErr)
	} else {
		err = multierr.Append(err, sqlDB.Close())
	}
	return err
}
