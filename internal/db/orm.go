package db

import (
	"fmt"

	"github.com/javicatax/vuelos-kiu-api/internal/models/entities"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var PgDB *gorm.DB

// InitPostgresORM opens the GORM handle and migrates the flight_event table
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := db.AutoMigrate(&entities.FlightEvent{}); err != nil {
		return nil, fmt.Errorf("failed to migrate flight_event: %w", err)
	}

	PgDB = db
	return db, nil
}
