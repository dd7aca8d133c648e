package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the flight events service
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  prometheus.CounterVec
	DBQueryDuration prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	JourneysSearchedTotal prometheus.Counter
	JourneySearchResults  prometheus.Histogram
	EventsIngestedTotal   prometheus.Counter
	EventsRejectedTotal   prometheus.Counter
	FeedSyncDuration      prometheus.Histogram
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vuelos_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vuelos_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "vuelos_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Database Metrics
		DBQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vuelos_db_queries_total",
				Help: "Total database queries by operation type",
			},
			[]string{"query_type"},
		),
		DBQueryDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vuelos_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"query_type"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vuelos_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vuelos_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Business Metrics
		JourneysSearchedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "vuelos_journeys_searched_total",
				Help: "Total journey search requests served",
			},
		),
		JourneySearchResults: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "vuelos_journey_search_results",
				Help:    "Distribution of result counts per journey search",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
			},
		),
		EventsIngestedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "vuelos_flight_events_ingested_total",
				Help: "Total flight events created or updated by ingestion",
			},
		),
		EventsRejectedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "vuelos_flight_events_rejected_total",
				Help: "Total flight events rejected by validation",
			},
		),
		FeedSyncDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "vuelos_feed_sync_duration_seconds",
				Help:    "Duration of upstream feed sync runs in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
		),
	}
}
