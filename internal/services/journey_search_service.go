package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/javicatax/vuelos-kiu-api/internal/apperrors"
	"github.com/javicatax/vuelos-kiu-api/internal/models/dtos"
	"github.com/javicatax/vuelos-kiu-api/internal/models/entities"
)

// Fixed search policy: a connecting leg must depart within MaxConnection of the
// first leg's arrival, and a journey's total span (first departure to last
// arrival) must not exceed MaxTotal. Both bounds are inclusive.
const (
	MaxConnection = 4 * time.Hour
	MaxTotal      = 24 * time.Hour

	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02 15:04:05"
)

// JourneySearchService enumerates direct and single-connection itineraries
// over the flight store. It is stateless and safe for concurrent use.
type JourneySearchService struct {
	store FlightStore
}

func NewJourneySearchService(store FlightStore) *JourneySearchService {
	return &JourneySearchService{store: store}
}

// Search returns all valid journeys from origin to destination on the given
// UTC date, ordered by first-leg departure time. No matches is an empty
// slice, not an error.
func (s *JourneySearchService) Search(ctx context.Context, dateStr, fromCity, toCity string) ([]dtos.Journey, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, apperrors.NewInvalidInput("Invalid date format. Use YYYY-MM-DD")
	}

	if len(fromCity) != 3 || len(toCity) != 3 {
		return nil, apperrors.NewInvalidInput("City codes must be 3 letters")
	}

	origin := strings.ToUpper(fromCity)
	destination := strings.ToUpper(toCity)

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	firstLegs, err := s.store.FindDepartures(ctx, origin, start, end)
	if err != nil {
		return nil, err
	}

	results := make([]dtos.Journey, 0)

	for _, firstLeg := range firstLegs {
		// Direct flight
		if firstLeg.ArrivalCity == destination {
			if firstLeg.ArrivalDatetime.Sub(firstLeg.DepartureDatetime) <= MaxTotal {
				results = append(results, journeyResponse([]entities.FlightEvent{firstLeg}, 0))
			}
		}

		// Connecting flights
		connecting, err := s.findConnectingJourneys(ctx, firstLeg, destination)
		if err != nil {
			return nil, err
		}
		results = append(results, connecting...)
	}

	// Timestamps render zero-padded, so the lexicographic order of the
	// formatted first-leg departure matches chronological order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Path[0].DepartureTime < results[j].Path[0].DepartureTime
	})

	return results, nil
}

func (s *JourneySearchService) findConnectingJourneys(ctx context.Context, firstLeg entities.FlightEvent, destination string) ([]dtos.Journey, error) {
	connectionStart := firstLeg.ArrivalDatetime
	connectionEnd := connectionStart.Add(MaxConnection)

	secondLegs, err := s.store.FindConnections(ctx, firstLeg.ArrivalCity, destination, connectionStart, connectionEnd)
	if err != nil {
		return nil, err
	}

	journeys := make([]dtos.Journey, 0, len(secondLegs))
	for _, secondLeg := range secondLegs {
		if secondLeg.ArrivalDatetime.Sub(firstLeg.DepartureDatetime) <= MaxTotal {
			journeys = append(journeys, journeyResponse([]entities.FlightEvent{firstLeg, secondLeg}, 1))
		}
	}

	return journeys, nil
}

// AvailableDestinations returns the distinct cities reachable non-stop from
// fromCity on the given date. An unparseable date yields an empty list.
func (s *JourneySearchService) AvailableDestinations(ctx context.Context, fromCity, dateStr string) ([]string, error) {
	start, ok := dayWindowStart(dateStr)
	if !ok {
		return []string{}, nil
	}

	departures, err := s.store.FindDepartures(ctx, strings.ToUpper(fromCity), start, start.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	destinations := make([]string, 0)
	for _, event := range departures {
		if _, dup := seen[event.ArrivalCity]; dup {
			continue
		}
		seen[event.ArrivalCity] = struct{}{}
		destinations = append(destinations, event.ArrivalCity)
	}

	return destinations, nil
}

// DepartureTimes returns the departure times for a city pair on the given
// date, ascending. An unparseable date yields an empty list.
func (s *JourneySearchService) DepartureTimes(ctx context.Context, fromCity, toCity, dateStr string) ([]time.Time, error) {
	start, ok := dayWindowStart(dateStr)
	if !ok {
		return []time.Time{}, nil
	}

	departures, err := s.store.FindDepartures(ctx, strings.ToUpper(fromCity), start, start.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	toCity = strings.ToUpper(toCity)
	times := make([]time.Time, 0)
	for _, event := range departures {
		if event.ArrivalCity == toCity {
			times = append(times, event.DepartureDatetime)
		}
	}

	return times, nil
}

// FormatEventDatetime renders a timestamp in the fixed wire format, UTC,
// no timezone suffix.
func FormatEventDatetime(t time.Time) string {
	return t.UTC().Format(datetimeLayout)
}

func dayWindowStart(dateStr string) (time.Time, bool) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC), true
}

func journeyResponse(legs []entities.FlightEvent, connections int) dtos.Journey {
	path := make([]dtos.JourneyLeg, 0, len(legs))
	for _, leg := range legs {
		path = append(path, dtos.JourneyLeg{
			FlightNumber:  leg.FlightNumber,
			From:          leg.DepartureCity,
			To:            leg.ArrivalCity,
			DepartureTime: leg.DepartureDatetime.UTC().Format(datetimeLayout),
			ArrivalTime:   leg.ArrivalDatetime.UTC().Format(datetimeLayout),
		})
	}

	return dtos.Journey{
		Connections: connections,
		Path:        path,
	}
}
