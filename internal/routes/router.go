package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/javicatax/vuelos-kiu-api/internal/api"
	"github.com/javicatax/vuelos-kiu-api/internal/db"
	"github.com/javicatax/vuelos-kiu-api/internal/jobs"
	"github.com/javicatax/vuelos-kiu-api/internal/logging"
	"github.com/javicatax/vuelos-kiu-api/internal/metrics"
	"github.com/javicatax/vuelos-kiu-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func RegisterRoutes(upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")
	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	// Initialize dependencies using DI pattern
	deps, err := api.InitDependencies(metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// Setup scheduled jobs (feed sync runs every hour)
	feedSyncJob := jobs.InitializeJobs(
		context.Background(),
		deps.Services.Ingest,
		metricsReg,
	)

	// Register API routes
	RegisterAPIRoutes(r, deps, feedSyncJob)

	return r
}
