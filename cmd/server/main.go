package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pcrims/finpath-backend/internal/config"
	"github.com/pcrims/finpath-backend/internal/database"
	"github.com/pcrims/finpath-backend/internal/middleware"
	"github.com/pcrims/finpath-backend/internal/migrations"
	"github.com/pcrims/finpath-backend/internal/models"
	"github.com/pcrims/finpath-backend/internal/routes"
	"github.com/pcrims/finpath-backend/pkg/logger"
)

func main() {
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting FinPath Backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database.Connect()
	database.InitRedis()

	logger.Info().Msg("Running database migrations (stage 1: tables)...")
	tableModels := []interface{}{
		&models.User{},
		&models.Track{},
		&models.Chapter{},
		&models.Lesson{},
		&models.Question{},
		&models.GameState{},
		&models.Badge{},
		&models.UserBadge{},
		&models.Certificate{},
		&models.LessonProgress{},
		&models.UserActivity{},
	}
	for _, m := range tableModels {
		if err := database.DB.AutoMigrate(m); err != nil {
			logger.Fatal().Err(err).Msgf("Failed to migrate table for %T", m)
		}
	}

	logger.Info().Msg("Running database migrations (stage 2: versioned)...")
	if err := migrations.NewMigrator(database.DB).Run(); err != nil {
		logger.Fatal().Err(err).Msg("Versioned migrations failed")
	}
	logger.Info().Msg("Database migrations complete")

	r := gin.New()

	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.GeneralRateLimit())

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		routes.RegisterAuthRoutes(auth)

		routes.RegisterContentRoutes(api)
		routes.RegisterGameRoutes(api)
		routes.RegisterProgressRoutes(api)
		routes.RegisterPracticeRoutes(api)
		routes.RegisterSocialRoutes(api)
		routes.RegisterAdminRoutes(api)
	}

	// Health check with DB and Redis status
	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		redisStatus := "ok"

		sqlDB, err := database.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
		}

		if database.Redis != nil {
			if _, err := database.Redis.Ping(context.Background()).Result(); err != nil {
				redisStatus = "error"
			}
		} else {
			redisStatus = "not configured"
		}

		status := "ok"
		if dbStatus != "ok" || (redisStatus != "ok" && redisStatus != "not configured") {
			status = "degraded"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  status,
			"message": "FinPath Backend is running",
			"checks": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	})

	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Str("env", env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited gracefully")
}
