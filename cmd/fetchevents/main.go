package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/javicatax/vuelos-kiu-api/internal/db"
	"github.com/javicatax/vuelos-kiu-api/internal/db/repositories"
	"github.com/javicatax/vuelos-kiu-api/internal/logging"
	"github.com/javicatax/vuelos-kiu-api/internal/providers"
	"github.com/javicatax/vuelos-kiu-api/internal/services"
)

// One-shot loader: fetches the upstream flight events feed and upserts the
// valid records, then exits. Useful for seeding and cron-style runs.
func main() {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}
	if err := logging.Init(appEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	gormDB, err := db.InitPostgresORM(db.PostgresDSN())
	if err != nil {
		logging.Fatal("Failed to connect to Postgres", "error", err.Error())
	}

	provider := providers.NewFlightFeedProvider()
	ingestSvc := services.NewFlightIngestService(repositories.NewFlightEventRepository(gormDB))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	events, status, err := provider.FetchEvents(ctx)
	if err != nil {
		logging.Fatal("Feed fetch failed", "status", status, "error", err.Error())
	}

	summary, err := ingestSvc.SaveFlightEvents(ctx, events)
	if err != nil {
		logging.Fatal("Feed ingest failed", "error", err.Error())
	}

	logging.Info("Flight data successfully uploaded",
		"received", summary.Received,
		"created", summary.Created,
		"updated", summary.Updated,
		"rejected", summary.Rejected,
	)
}
