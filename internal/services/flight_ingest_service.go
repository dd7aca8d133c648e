package services

import (
	"context"
	"fmt"
	"time"

	"github.com/javicatax/vuelos-kiu-api/internal/db/repositories"
	"github.com/javicatax/vuelos-kiu-api/internal/logging"
	"github.com/javicatax/vuelos-kiu-api/internal/models/dtos"
)

const datetimeLayoutNoZone = "2006-01-02T15:04:05"

// ParseEventDatetime parses a feed timestamp. RFC 3339 (with or without the
// trailing Z) is tried first, then the plain "YYYY-MM-DD HH:MM:SS" fallback.
// Results are normalized to UTC.
func ParseEventDatetime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(datetimeLayoutNoZone, value, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(datetimeLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable datetime %q", value)
	}
	return t, nil
}

// ValidateFlightEvent checks one raw record against the domain invariants the
// search engine relies on. It returns nil when the record is acceptable and a
// rejection reason otherwise. Pure; no side effects.
func ValidateFlightEvent(raw dtos.RawFlightEvent) error {
	if raw.FlightNumber == "" || raw.DepartureCity == "" || raw.ArrivalCity == "" ||
		raw.DepartureDatetime == "" || raw.ArrivalDatetime == "" {
		return fmt.Errorf("missing required field")
	}

	departure, err := ParseEventDatetime(raw.DepartureDatetime)
	if err != nil {
		return fmt.Errorf("invalid departure_datetime")
	}
	arrival, err := ParseEventDatetime(raw.ArrivalDatetime)
	if err != nil {
		return fmt.Errorf("invalid arrival_datetime")
	}

	if !arrival.After(departure) {
		return fmt.Errorf("arrival must be after departure")
	}

	if len(raw.DepartureCity) != 3 || len(raw.ArrivalCity) != 3 {
		return fmt.Errorf("city codes must be 3 letters")
	}

	return nil
}

// FlightIngestService validates and persists batches of raw flight events
type FlightIngestService struct {
	repo *repositories.FlightEventRepository
}

func NewFlightIngestService(repo *repositories.FlightEventRepository) *FlightIngestService {
	return &FlightIngestService{repo: repo}
}

// Validate reports whether one raw record would be accepted by SaveFlightEvents
func (s *FlightIngestService) Validate(raw dtos.RawFlightEvent) bool {
	return ValidateFlightEvent(raw) == nil
}

// SaveFlightEvents upserts the valid subset of a batch inside one transaction.
// Invalid records are skipped with a per-record outcome; a record-level store
// error is logged and counted as rejected without aborting the remainder. Each
// upsert runs in its own savepoint: on Postgres a failed statement aborts the
// surrounding transaction, so the per-record rollback is what keeps the rest
// of the batch alive.
func (s *FlightIngestService) SaveFlightEvents(ctx context.Context, events []dtos.RawFlightEvent) (*dtos.IngestSummary, error) {
	summary := &dtos.IngestSummary{
		Received: len(events),
		Outcomes: make([]dtos.IngestOutcome, 0, len(events)),
	}

	err := s.repo.Transaction(ctx, func(tx *repositories.FlightEventRepository) error {
		for _, raw := range events {
			if vErr := ValidateFlightEvent(raw); vErr != nil {
				summary.Rejected++
				summary.Outcomes = append(summary.Outcomes, dtos.IngestOutcome{
					FlightNumber: raw.FlightNumber,
					Outcome:      dtos.IngestOutcomeRejected,
					Reason:       vErr.Error(),
				})
				logging.Warn("Flight event rejected",
					"flight_number", raw.FlightNumber,
					"reason", vErr.Error(),
				)
				continue
			}

			departure, _ := ParseEventDatetime(raw.DepartureDatetime)
			arrival, _ := ParseEventDatetime(raw.ArrivalDatetime)

			var created bool
			err := tx.Transaction(ctx, func(inner *repositories.FlightEventRepository) error {
				var upsertErr error
				_, created, upsertErr = inner.Upsert(ctx, raw.FlightNumber, departure, raw.DepartureCity, raw.ArrivalCity, arrival)
				return upsertErr
			})
			if err != nil {
				summary.Rejected++
				summary.Outcomes = append(summary.Outcomes, dtos.IngestOutcome{
					FlightNumber: raw.FlightNumber,
					Outcome:      dtos.IngestOutcomeRejected,
					Reason:       "storage error",
				})
				logging.Error("Error saving flight event",
					"flight_number", raw.FlightNumber,
					"error", err.Error(),
				)
				continue
			}

			if created {
				summary.Created++
				summary.Outcomes = append(summary.Outcomes, dtos.IngestOutcome{
					FlightNumber: raw.FlightNumber,
					Outcome:      dtos.IngestOutcomeCreated,
				})
			} else {
				summary.Updated++
				summary.Outcomes = append(summary.Outcomes, dtos.IngestOutcome{
					FlightNumber: raw.FlightNumber,
					Outcome:      dtos.IngestOutcomeUpdated,
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}
