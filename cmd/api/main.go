package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/MarkChukwuebuka/invoice-etl/internal/core/services"
	"github.com/MarkChukwuebuka/invoice-etl/internal/handlers"
	"github.com/MarkChukwuebuka/invoice-etl/internal/middleware"
	"github.com/MarkChukwuebuka/invoice-etl/internal/repositories/database/pgsql"
	"github.com/MarkChukwuebuka/invoice-etl/pkg/config"
	"github.com/MarkChukwuebuka/invoice-etl/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database migrations applied.")

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting).
	// The API is read-only and open, matching the source system.
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rateLimiter := limiter.New(memory.NewStore(), limiter.Rate{
		Period: time.Minute,
		Limit:  cfg.RateLimitPerMinute,
	})
	r.Use(middleware.RateLimit(rateLimiter))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	invoiceRepo := pgsql.NewInvoiceRepository(dbPool)
	lineItemRepo := pgsql.NewLineItemRepository(dbPool)
	reportingRepo := pgsql.NewReportingRepository(dbPool)

	invoiceService := services.NewInvoiceService(invoiceRepo, lineItemRepo)
	reportingService := services.NewReportingService(reportingRepo)

	handlers.RegisterRoutes(r, invoiceService, reportingService)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
