package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/javicatax/vuelos-kiu-api/internal/apperrors"
	"github.com/javicatax/vuelos-kiu-api/internal/models/entities"

	"gorm.io/gorm"
)

// FlightEventRepository handles flight_event table operations
type FlightEventRepository struct {
	db *gorm.DB
}

// NewFlightEventRepository creates a new flight event repository
func NewFlightEventRepository(db *gorm.DB) *FlightEventRepository {
	return &FlightEventRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle
func (r *FlightEventRepository) WithTx(tx *gorm.DB) *FlightEventRepository {
	return &FlightEventRepository{db: tx}
}

// FindDepartures returns events departing from city within [windowStart, windowEnd),
// ascending by departure time.
func (r *FlightEventRepository) FindDepartures(ctx context.Context, city string, windowStart, windowEnd time.Time) ([]entities.FlightEvent, error) {
	var events []entities.FlightEvent

	err := r.db.WithContext(ctx).
		Where("departure_city = ?", strings.ToUpper(city)).
		Where("departure_datetime >= ? AND departure_datetime < ?", windowStart, windowEnd).
		Order("departure_datetime asc").
		Find(&events).Error

	if err != nil {
		return nil, apperrors.NewStorageFault("find departures", err)
	}

	return events, nil
}

// FindConnections returns events from city to destination departing within
// [windowStart, windowEnd], both ends inclusive, ascending by departure time.
func (r *FlightEventRepository) FindConnections(ctx context.Context, city, destination string, windowStart, windowEnd time.Time) ([]entities.FlightEvent, error) {
	var events []entities.FlightEvent

	err := r.db.WithContext(ctx).
		Where("departure_city = ?", strings.ToUpper(city)).
		Where("arrival_city = ?", strings.ToUpper(destination)).
		Where("departure_datetime >= ? AND departure_datetime <= ?", windowStart, windowEnd).
		Order("departure_datetime asc").
		Find(&events).Error

	if err != nil {
		return nil, apperrors.NewStorageFault("find connections", err)
	}

	return events, nil
}

// Upsert creates or updates the event identified by (flightNumber, departure).
// City codes are uppercased on write. The bool reports whether a row was created.
func (r *FlightEventRepository) Upsert(ctx context.Context, flightNumber string, departure time.Time, departureCity, arrivalCity string, arrival time.Time) (*entities.FlightEvent, bool, error) {
	var event entities.FlightEvent

	err := r.db.WithContext(ctx).
		Where("flight_number = ? AND departure_datetime = ?", flightNumber, departure).
		First(&event).Error

	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperrors.NewStorageFault("upsert lookup", err)
		}

		event = entities.FlightEvent{
			FlightNumber:      flightNumber,
			DepartureCity:     strings.ToUpper(departureCity),
			ArrivalCity:       strings.ToUpper(arrivalCity),
			DepartureDatetime: departure,
			ArrivalDatetime:   arrival,
		}
		if err := r.db.WithContext(ctx).Create(&event).Error; err != nil {
			return nil, false, apperrors.NewStorageFault("upsert create", err)
		}
		return &event, true, nil
	}

	event.DepartureCity = strings.ToUpper(departureCity)
	event.ArrivalCity = strings.ToUpper(arrivalCity)
	event.ArrivalDatetime = arrival
	if err := r.db.WithContext(ctx).Save(&event).Error; err != nil {
		return nil, false, apperrors.NewStorageFault("upsert update", err)
	}

	return &event, false, nil
}

// Transaction runs fn against a repository bound to one database transaction
func (r *FlightEventRepository) Transaction(ctx context.Context, fn func(txRepo *FlightEventRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
