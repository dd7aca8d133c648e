package services

import (
	"context"
	"time"

	"github.com/javicatax/vuelos-kiu-api/internal/models/entities"
)

// FlightStore is the narrow query contract the journey engine consumes.
// The production implementation is the GORM flight event repository; tests
// substitute an in-memory fake.
type FlightStore interface {
	// FindDepartures returns events departing from city within
	// [windowStart, windowEnd), ascending by departure time.
	FindDepartures(ctx context.Context, city string, windowStart, windowEnd time.Time) ([]entities.FlightEvent, error)

	// FindConnections returns events from city to destination departing within
	// [windowStart, windowEnd], both ends inclusive, ascending by departure time.
	FindConnections(ctx context.Context, city, destination string, windowStart, windowEnd time.Time) ([]entities.FlightEvent, error)

	// Upsert creates or updates the event keyed by (flightNumber, departure)
	// and reports whether a row was created.
	Upsert(ctx context.Context, flightNumber string, departure time.Time, departureCity, arrivalCity string, arrival time.Time) (*entities.FlightEvent, bool, error)
}
