package dtos

import "time"

// CityCount is a per-city event count for the reporting view
type CityCount struct {
	City  string `db:"city" json:"city"`
	Count int64  `db:"count" json:"count"`
}

// FlightStats is the payload for the admin stats endpoint
type FlightStats struct {
	TotalEvents      int64       `json:"total_events"`
	DistinctFlights  int64       `json:"distinct_flights"`
	DeparturesByCity []CityCount `json:"departures_by_city"`
	ArrivalsByCity   []CityCount `json:"arrivals_by_city"`
}

// FlightEventRow is one row of the admin event listing
type FlightEventRow struct {
	FlightNumber      string    `db:"flight_number" json:"flight_number"`
	DepartureCity     string    `db:"departure_city" json:"departure_city"`
	ArrivalCity       string    `db:"arrival_city" json:"arrival_city"`
	DepartureDatetime time.Time `db:"departure_datetime" json:"departure_datetime"`
	ArrivalDatetime   time.Time `db:"arrival_datetime" json:"arrival_datetime"`
}

// FlightEventFilter narrows the admin event listing, all fields optional
type FlightEventFilter struct {
	DepartureCity string
	ArrivalCity   string
	Search        string
	Limit         int
}
