package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/javicatax/vuelos-kiu-api/internal/apperrors"
	"github.com/javicatax/vuelos-kiu-api/internal/common"
	"github.com/javicatax/vuelos-kiu-api/internal/logging"
	"github.com/javicatax/vuelos-kiu-api/internal/models/dtos"
	"github.com/javicatax/vuelos-kiu-api/internal/services"
)

const searchCacheTTL = 15 * time.Minute

// JourneySearchHandler handles GET /api/v1/journeys/search?date=&from=&to=
//
// Results are cached for 15 minutes per (date, from, to). InvalidInput from
// the engine maps to 400 with the engine's message; anything else maps to a
// generic 500.
func JourneySearchHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dateStr := r.URL.Query().Get("date")
		fromCity := r.URL.Query().Get("from")
		toCity := r.URL.Query().Get("to")

		if dateStr == "" || fromCity == "" || toCity == "" {
			respondWithError(w, http.StatusBadRequest, "date, from city and to city are required")
			return
		}

		deps.Metrics.JourneysSearchedTotal.Inc()

		cacheKey := fmt.Sprintf("journeys:search:%s:%s:%s", dateStr, strings.ToUpper(fromCity), strings.ToUpper(toCity))
		if journeys, found := cachedJourneys(deps.Services.Cache, cacheKey); found {
			deps.Metrics.CacheHitsTotal.WithLabelValues("journeys:search").Inc()
			respondWithSuccess(w, http.StatusOK, &journeys)
			return
		}
		deps.Metrics.CacheMissesTotal.WithLabelValues("journeys:search").Inc()

		journeys, err := deps.Services.Search.Search(r.Context(), dateStr, fromCity, toCity)
		if err != nil {
			if apperrors.IsInvalidInput(err) {
				respondWithError(w, http.StatusBadRequest, err.Error())
				return
			}
			logging.Error("Error searching journeys", "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		deps.Metrics.JourneySearchResults.Observe(float64(len(journeys)))

		if data, err := json.Marshal(journeys); err == nil {
			deps.Services.Cache.Set(cacheKey, string(data), searchCacheTTL)
		}

		respondWithSuccess(w, http.StatusOK, &journeys)
	}
}

// cachedJourneys decodes a cached search result. Both cache backends store
// the marshaled JSON as a string.
func cachedJourneys(cache common.CacheInterface, key string) ([]dtos.Journey, bool) {
	val, found := cache.Get(key)
	if !found {
		return nil, false
	}

	data, ok := val.(string)
	if !ok {
		return nil, false
	}

	var journeys []dtos.Journey
	if err := json.Unmarshal([]byte(data), &journeys); err != nil {
		return nil, false
	}

	return journeys, true
}

// DestinationsHandler handles GET /api/v1/journeys/destinations?from=&date=
//
// Results are cached with the same TTL as the search endpoint. The cached
// value is the marshaled JSON string, so both cache backends round-trip it.
func DestinationsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fromCity := r.URL.Query().Get("from")
		dateStr := r.URL.Query().Get("date")

		if fromCity == "" || dateStr == "" {
			respondWithError(w, http.StatusBadRequest, "from city and date are required")
			return
		}

		cacheKey := fmt.Sprintf("journeys:destinations:%s:%s", strings.ToUpper(fromCity), dateStr)
		val, err := deps.Services.Cache.GetOrSet(cacheKey, searchCacheTTL, func() (any, error) {
			destinations, err := deps.Services.Search.AvailableDestinations(r.Context(), fromCity, dateStr)
			if err != nil {
				return nil, err
			}
			data, err := json.Marshal(destinations)
			if err != nil {
				return nil, err
			}
			return string(data), nil
		})
		if err != nil {
			logging.Error("Error fetching destinations", "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		destinations := []string{}
		if data, ok := val.(string); ok {
			if err := json.Unmarshal([]byte(data), &destinations); err != nil {
				logging.Error("Error decoding cached destinations", "error", err.Error())
				respondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
		}

		respondWithSuccess(w, http.StatusOK, &destinations)
	}
}

// DepartureTimesHandler handles GET /api/v1/journeys/departures?from=&to=&date=
func DepartureTimesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fromCity := r.URL.Query().Get("from")
		toCity := r.URL.Query().Get("to")
		dateStr := r.URL.Query().Get("date")

		if fromCity == "" || toCity == "" || dateStr == "" {
			respondWithError(w, http.StatusBadRequest, "from city, to city and date are required")
			return
		}

		times, err := deps.Services.Search.DepartureTimes(r.Context(), fromCity, toCity, dateStr)
		if err != nil {
			logging.Error("Error fetching departure times", "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		formatted := make([]string, 0, len(times))
		for _, t := range times {
			formatted = append(formatted, services.FormatEventDatetime(t))
		}

		respondWithSuccess(w, http.StatusOK, &formatted)
	}
}
