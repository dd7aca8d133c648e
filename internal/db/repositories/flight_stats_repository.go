package repositories

import (
	"context"

	"github.com/javicatax/vuelos-kiu-api/internal/apperrors"
	"github.com/javicatax/vuelos-kiu-api/internal/models/dtos"

	"github.com/jmoiron/sqlx"
)

// FlightStatsRepository serves the reporting view with raw SQL
type FlightStatsRepository struct {
	db *sqlx.DB
}

func NewFlightStatsRepository(db *sqlx.DB) *FlightStatsRepository {
	return &FlightStatsRepository{db}
}

// GetStats returns event totals and per-city breakdowns
func (r *FlightStatsRepository) GetStats(ctx context.Context) (*dtos.FlightStats, error) {
	stats := &dtos.FlightStats{}

	if err := r.db.GetContext(ctx, &stats.TotalEvents,
		`SELECT COUNT(*) FROM flight_event`); err != nil {
		return nil, apperrors.NewStorageFault("stats total", err)
	}

	if err := r.db.GetContext(ctx, &stats.DistinctFlights,
		`SELECT COUNT(DISTINCT flight_number) FROM flight_event`); err != nil {
		return nil, apperrors.NewStorageFault("stats distinct flights", err)
	}

	if err := r.db.SelectContext(ctx, &stats.DeparturesByCity, `
		SELECT departure_city AS city, COUNT(*) AS count
		FROM flight_event
		GROUP BY departure_city
		ORDER BY count DESC, city ASC`); err != nil {
		return nil, apperrors.NewStorageFault("stats departures by city", err)
	}

	if err := r.db.SelectContext(ctx, &stats.ArrivalsByCity, `
		SELECT arrival_city AS city, COUNT(*) AS count
		FROM flight_event
		GROUP BY arrival_city
		ORDER BY count DESC, city ASC`); err != nil {
		return nil, apperrors.NewStorageFault("stats arrivals by city", err)
	}

	return stats, nil
}

// ListEvents returns recent events, optionally narrowed by city filters and a
// flight number search term, newest departures first.
func (r *FlightStatsRepository) ListEvents(ctx context.Context, filter dtos.FlightEventFilter) ([]dtos.FlightEventRow, error) {
	query := `
		SELECT flight_number, departure_city, arrival_city, departure_datetime, arrival_datetime
		FROM flight_event
		WHERE 1 = 1`
	args := []interface{}{}

	if filter.DepartureCity != "" {
		query += ` AND departure_city = UPPER(?)`
		args = append(args, filter.DepartureCity)
	}
	if filter.ArrivalCity != "" {
		query += ` AND arrival_city = UPPER(?)`
		args = append(args, filter.ArrivalCity)
	}
	if filter.Search != "" {
		query += ` AND UPPER(flight_number) LIKE '%' || UPPER(?) || '%'`
		args = append(args, filter.Search)
	}

	query += ` ORDER BY departure_datetime DESC`

	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	rows := []dtos.FlightEventRow{}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, apperrors.NewStorageFault("list events", err)
	}

	return rows, nil
}
