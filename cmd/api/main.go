// @title           CRUDBoard API
// @version         1.0
// @description     Bulletin board backend with users, boards, posts and comments

// @contact.name   API Support

// @license.name  MIT

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/kim0hyeon/CRUDBoard/docs" // Swagger docs import

	"github.com/kim0hyeon/CRUDBoard/internal/client"
	"github.com/kim0hyeon/CRUDBoard/internal/config"
	"github.com/kim0hyeon/CRUDBoard/internal/database"
	"github.com/kim0hyeon/CRUDBoard/internal/job"
	"github.com/kim0hyeon/CRUDBoard/internal/metrics"
	"github.com/kim0hyeon/CRUDBoard/internal/router"
	"github.com/kim0hyeon/CRUDBoard/internal/service"
)

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Server.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting CRUDBoard",
		zap.Int("port", cfg.Server.Port),
		zap.String("env", cfg.Server.Env),
		zap.String("base_path", cfg.Server.BasePath),
	)

	db, err := database.New(database.Config{
		DSN:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Minute,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.Info("Database migrations completed")

	m := metrics.NewWithLogger(logger)
	database.RegisterMetricsCallbacks(db, m)
	statsDone := database.StartDBStatsCollector(db, m)
	defer close(statsDone)

	collector := metrics.NewBusinessMetricsCollector(db, m, logger)
	collector.Start()
	defer collector.Stop()

	// Redis is optional. Without it rate limiting is disabled.
	redisClient, err := database.NewRedis(cfg.Redis, logger)
	if err != nil {
		logger.Warn("Failed to connect to Redis, rate limiting disabled", zap.Error(err))
		redisClient = nil
	}

	// Image storage is optional. Without it image endpoints return errors.
	var imageClient service.ImageClient
	if cfg.S3.Bucket != "" && cfg.S3.Region != "" {
		store, err := client.NewImageStore(&cfg.S3)
		if err != nil {
			logger.Warn("Failed to initialize image store, image features disabled", zap.Error(err))
		} else {
			imageClient = store.WithMetrics(m)
			logger.Info("Image store initialized",
				zap.String("bucket", cfg.S3.Bucket),
				zap.String("region", cfg.S3.Region),
			)
		}
	} else {
		logger.Warn("Image store configuration incomplete, image features disabled")
	}

	scheduler := cron.New()
	cleanup := job.NewCleanupJob(db, imageClient, cfg.Cleanup.RetentionDays, logger)
	if _, err := scheduler.AddJob(cfg.Cleanup.Schedule, cleanup); err != nil {
		logger.Warn("Failed to schedule cleanup job", zap.Error(err))
	} else {
		scheduler.Start()
		defer scheduler.Stop()
		logger.Info("Cleanup job scheduled",
			zap.String("schedule", cfg.Cleanup.Schedule),
			zap.Int("retention_days", cfg.Cleanup.RetentionDays),
		)
	}

	r := router.Setup(router.Config{
		DB:          db,
		Redis:       redisClient,
		Logger:      logger,
		Metrics:     m,
		ImageClient: imageClient,
		JWTSecret:   cfg.Auth.SecretKey,
		TokenTTL:    time.Duration(cfg.Auth.TokenTTLHours) * time.Hour,
		BcryptCost:  cfg.Auth.BcryptCost,
		BasePath:    cfg.Server.BasePath,
		Env:         cfg.Server.Env,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("CRUDBoard started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%d%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
