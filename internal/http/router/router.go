package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/auth"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/config"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/database"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/http/handler"
	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/http/middleware"

	_ "github.com/KTRoadRescue/KING-TIRE-INVENTORY/docs" // Import generated swagger docs
)

type Router struct {
	cfg            *config.Config
	logger         *zap.Logger
	db             *gorm.DB
	authMiddleware *auth.Middleware
	rateLimiter    *middleware.RateLimiter
	tireHandler    *handler.TireHandler
	imageHandler   *handler.ImageHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	tireHandler *handler.TireHandler,
	imageHandler *handler.ImageHandler,
) *Router {
	return &Router{
		cfg:            cfg,
		logger:         logger,
		db:             db,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
		tireHandler:    tireHandler,
		imageHandler:   imageHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	if rt.cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
	}
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)
	r.Use(chimiddleware.Timeout(rt.cfg.Server.RequestTimeoutDuration()))

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with pool stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
			},
		})
	})

	// Combined readiness check
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		status := "healthy"
		code := http.StatusOK
		if !allHealthy {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": status,
			"checks": checks,
		})
	})

	// Prometheus metrics
	if rt.cfg.Metrics.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// Locally stored images; cloud modes serve blobs from their own URLs
	if rt.cfg.Storage.Mode == "local" {
		r.Get("/media/{name}", rt.imageHandler.Serve)
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rt.authMiddleware.Authenticate)

		r.Route("/tires", func(r chi.Router) {
			r.Get("/", rt.tireHandler.List)
			r.Post("/", rt.tireHandler.Create)
			r.Get("/stats", rt.tireHandler.Stats)
			r.Get("/export", rt.tireHandler.Export)
			r.Get("/{id}", rt.tireHandler.GetByID)
			r.Put("/{id}", rt.tireHandler.Update)
			r.Delete("/{id}", rt.tireHandler.Delete)
		})

		r.Post("/images", rt.imageHandler.Upload)
	})

	return r
}
