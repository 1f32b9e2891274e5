package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Sentinel errors for non-retriable conditions
var (
	ErrFlightNotFound    = errors.New("flight not found")
	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrAirlineNotFound   = errors.New("airline not found")
	ErrAirportNotFound   = errors.New("airport not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmailTaken        = errors.New("email already registered")
)

type DB struct {
	*sql.DB
}

func NewDB(dsn string) (*DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
