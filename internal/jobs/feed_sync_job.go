package jobs

import (
	"context"
	"time"

	"github.com/javicatax/vuelos-kiu-api/internal/logging"
	"github.com/javicatax/vuelos-kiu-api/internal/metrics"
	"github.com/javicatax/vuelos-kiu-api/internal/providers"
	"github.com/javicatax/vuelos-kiu-api/internal/services"
)

// FeedSyncJob periodically pulls the upstream flight events feed into the store
type FeedSyncJob struct {
	provider  *providers.FlightFeedProvider
	ingestSvc *services.FlightIngestService
	metrics   *metrics.MetricsRegistry
}

func NewFeedSyncJob(provider *providers.FlightFeedProvider, ingestSvc *services.FlightIngestService, metricsReg *metrics.MetricsRegistry) *FeedSyncJob {
	return &FeedSyncJob{
		provider:  provider,
		ingestSvc: ingestSvc,
		metrics:   metricsReg,
	}
}

// Run executes one fetch-and-ingest cycle
func (j *FeedSyncJob) Run(ctx context.Context) error {
	start := time.Now()

	events, status, err := j.provider.FetchEvents(ctx)
	if err != nil {
		logging.Error("Feed fetch failed",
			"status", status,
			"error", err.Error(),
		)
		return err
	}

	summary, err := j.ingestSvc.SaveFlightEvents(ctx, events)
	if err != nil {
		logging.Error("Feed ingest failed", "error", err.Error())
		return err
	}

	j.metrics.EventsIngestedTotal.Add(float64(summary.Created + summary.Updated))
	j.metrics.EventsRejectedTotal.Add(float64(summary.Rejected))
	j.metrics.FeedSyncDuration.Observe(time.Since(start).Seconds())

	logging.Info("Feed sync completed",
		"received", summary.Received,
		"created", summary.Created,
		"updated", summary.Updated,
		"rejected", summary.Rejected,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return nil
}

// RunScheduled runs the job every interval until ctx is cancelled
func (j *FeedSyncJob) RunScheduled(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info("Feed sync job stopped")
			return
		case <-ticker.C:
			if err := j.Run(ctx); err != nil {
				logging.Warn("Scheduled feed sync failed, will retry next tick", "error", err.Error())
			}
		}
	}
}
