package api

import (
	"github.com/javicatax/vuelos-kiu-api/internal/common"
	"github.com/javicatax/vuelos-kiu-api/internal/db"
	"github.com/javicatax/vuelos-kiu-api/internal/db/repositories"
	"github.com/javicatax/vuelos-kiu-api/internal/metrics"
	"github.com/javicatax/vuelos-kiu-api/internal/services"
)

type Repositories struct {
	FlightEvents *repositories.FlightEventRepository
	FlightStats  *repositories.FlightStatsRepository
}

type Services struct {
	Search *services.JourneySearchService
	Ingest *services.FlightIngestService
	Cache  common.CacheInterface
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		FlightEvents: repositories.NewFlightEventRepository(db.PgDB),
		FlightStats:  repositories.NewFlightStatsRepository(db.DB),
	}

	svcs := &Services{
		Search: services.NewJourneySearchService(repos.FlightEvents),
		Ingest: services.NewFlightIngestService(repos.FlightEvents),
		Cache:  common.NewCacheFromEnv(),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
	}, nil
}
