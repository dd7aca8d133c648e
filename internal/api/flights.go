package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/javicatax/vuelos-kiu-api/internal/jobs"
	"github.com/javicatax/vuelos-kiu-api/internal/logging"
	"github.com/javicatax/vuelos-kiu-api/internal/models/dtos"
)

// IngestFlightEventsHandler handles POST /api/v1/flights/events with a JSON
// array of raw flight event records. Invalid records are skipped and reported
// in the batch summary; a storage fault fails the whole batch.
func IngestFlightEventsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var events []dtos.RawFlightEvent
		if err := json.NewDecoder(r.Body).Decode(&events); err != nil {
			respondWithError(w, http.StatusBadRequest, "request body must be a JSON array of flight events")
			return
		}

		summary, err := deps.Services.Ingest.SaveFlightEvents(r.Context(), events)
		if err != nil {
			logging.Error("Flight event batch failed", "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		deps.Metrics.EventsIngestedTotal.Add(float64(summary.Created + summary.Updated))
		deps.Metrics.EventsRejectedTotal.Add(float64(summary.Rejected))

		respondWithSuccess(w, http.StatusOK, summary)
	}
}

// TriggerFeedSyncHandler handles POST /api/v1/admin/feed/sync, running one
// feed fetch-and-ingest cycle on demand.
func TriggerFeedSyncHandler(job *jobs.FeedSyncJob) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := job.Run(r.Context()); err != nil {
			respondWithError(w, http.StatusBadGateway, "feed sync failed")
			return
		}

		msg := "feed sync completed"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// AdminFlightsHandler handles GET /api/v1/admin/flights with optional
// departure_city, arrival_city, search and limit query parameters.
func AdminFlightsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := dtos.FlightEventFilter{
			DepartureCity: r.URL.Query().Get("departure_city"),
			ArrivalCity:   r.URL.Query().Get("arrival_city"),
			Search:        r.URL.Query().Get("search"),
		}

		if qs := r.URL.Query().Get("limit"); qs != "" {
			limit, err := strconv.Atoi(qs)
			if err != nil || limit <= 0 {
				respondWithError(w, http.StatusBadRequest, "Invalid limit parameter")
				return
			}
			filter.Limit = limit
		}

		rows, err := deps.Repo.FlightStats.ListEvents(r.Context(), filter)
		if err != nil {
			logging.Error("Error listing flight events", "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondWithSuccess(w, http.StatusOK, &rows)
	}
}

// AdminFlightStatsHandler handles GET /api/v1/admin/flights/stats
func AdminFlightStatsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := deps.Repo.FlightStats.GetStats(r.Context())
		if err != nil {
			logging.Error("Error fetching flight stats", "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondWithSuccess(w, http.StatusOK, stats)
	}
}
