package dtos

// JourneyLeg is one flight segment of a journey, timestamps rendered as
// "YYYY-MM-DD HH:MM:SS" in UTC regardless of storage representation.
type JourneyLeg struct {
	FlightNumber  string `json:"flight_number"`
	From          string `json:"from"`
	To            string `json:"to"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
}

// Journey is a direct or single-connection itinerary, legs in travel order
type Journey struct {
	Connections int          `json:"connections"`
	Path        []JourneyLeg `json:"path"`
}
