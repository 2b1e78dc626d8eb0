package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/docs"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/auth"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/config"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/database"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/http/handler"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/http/middleware"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/http/router"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/logger"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/metrics"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/repository"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/service"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/storage"
)

// @title King Tire Inventory API
// @version 1.0
// @description Inventory management API for tracking tire stock, images and exports.

// @contact.name KT Road Rescue

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token (only required when auth is enabled)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	// Swagger serves from the same origin outside local development
	switch basicCfg.App.Environment {
	case "development", "local", "":
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	default:
		docs.SwaggerInfo.Host = ""
	}

	// Load full configuration with secrets
	// In development: uses environment variables
	// In staging/production: fetches from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	metrics.InitMetrics(&cfg.Metrics)

	// Connect to database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Development convenience; deployed environments run cmd/migrate
	if cfg.App.Environment == "development" || cfg.App.Environment == "local" {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to run auto-migrations: %w", err)
		}
	}

	// Initialize blob storage
	fileStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Initialize repositories and services
	tireRepo := repository.NewTireRepository(db)
	inventoryService := service.NewInventoryService(tireRepo, fileStorage, log)

	// Initialize middleware
	authMiddleware := auth.NewMiddleware(cfg, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	tireHandler := handler.NewTireHandler(inventoryService, log)
	imageHandler := handler.NewImageHandler(inventoryService, fileStorage, cfg.Storage.MaxUploadSizeMB, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		authMiddleware,
		rateLimiter,
		tireHandler,
		imageHandler,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
