package routes

import (
	"github.com/javicatax/vuelos-kiu-api/internal/api"
	"github.com/javicatax/vuelos-kiu-api/internal/jobs"
	"github.com/javicatax/vuelos-kiu-api/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, feedSyncJob *jobs.FeedSyncJob) {

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.RateLimitMiddleware)

		// Journey search
		v1.Get("/journeys/search", api.JourneySearchHandler(deps))
		v1.Get("/journeys/destinations", api.DestinationsHandler(deps))
		v1.Get("/journeys/departures", api.DepartureTimesHandler(deps))

		// Ingestion
		v1.Post("/flights/events", api.IngestFlightEventsHandler(deps))

		// Admin / reporting
		v1.Get("/admin/flights", api.AdminFlightsHandler(deps))
		v1.Get("/admin/flights/stats", api.AdminFlightStatsHandler(deps))
		v1.Post("/admin/feed/sync", api.TriggerFeedSyncHandler(feedSyncJob))
	})
}
