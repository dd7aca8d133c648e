package jobs

import (
	"context"
	"time"

	"github.com/javicatax/vuelos-kiu-api/internal/metrics"
	"github.com/javicatax/vuelos-kiu-api/internal/providers"
	"github.com/javicatax/vuelos-kiu-api/internal/services"
)

// InitializeJobs initializes and starts all background jobs
func InitializeJobs(
	ctx context.Context,
	ingestSvc *services.FlightIngestService,
	metricsReg *metrics.MetricsRegistry,
) *FeedSyncJob {
	// Feed sync pulls the upstream flight events feed every hour
	feedSyncJob := NewFeedSyncJob(
		providers.NewFlightFeedProvider(),
		ingestSvc,
		metricsReg,
	)

	go feedSyncJob.RunScheduled(ctx, 1*time.Hour)

	return feedSyncJob
}
