package entities

import "time"

// FlightEvent is one scheduled flight leg. The same flight number recurs on
// different dates, so identity is the (flight_number, departure_datetime) pair.
type FlightEvent struct {
	ID                uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FlightNumber      string    `gorm:"column:flight_number;type:varchar(10);not null;uniqueIndex:idx_flight_departure" json:"flight_number"`
	DepartureCity     string    `gorm:"column:departure_city;type:varchar(3);not null;index" json:"departure_city"`
	ArrivalCity       string    `gorm:"column:arrival_city;type:varchar(3);not null;index" json:"arrival_city"`
	DepartureDatetime time.Time `gorm:"column:departure_datetime;not null;uniqueIndex:idx_flight_departure;index" json:"departure_datetime"`
	ArrivalDatetime   time.Time `gorm:"column:arrival_datetime;not null" json:"arrival_datetime"`
}

// TableName specifies the table name for GORM
func (FlightEvent) TableName() string {
	return "flight_event"
}
