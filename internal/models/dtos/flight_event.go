package dtos

// RawFlightEvent is a flight event as received from the upstream feed or the
// ingest endpoint, datetimes still unparsed strings.
type RawFlightEvent struct {
	FlightNumber      string `json:"flight_number"`
	DepartureCity     string `json:"departure_city"`
	ArrivalCity       string `json:"arrival_city"`
	DepartureDatetime string `json:"departure_datetime"`
	ArrivalDatetime   string `json:"arrival_datetime"`
}

// Ingest outcome codes for a single record
const (
	IngestOutcomeCreated  = "created"
	IngestOutcomeUpdated  = "updated"
	IngestOutcomeRejected = "rejected"
)

// IngestOutcome records what happened to one record of an ingest batch
type IngestOutcome struct {
	FlightNumber string `json:"flight_number"`
	Outcome      string `json:"outcome"`
	Reason       string `json:"reason,omitempty"`
}

// IngestSummary aggregates per-record outcomes for one ingest batch
type IngestSummary struct {
	Received int             `json:"received"`
	Created  int             `json:"created"`
	Updated  int             `json:"updated"`
	Rejected int             `json:"rejected"`
	Outcomes []IngestOutcome `json:"outcomes"`
}
