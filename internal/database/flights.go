package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"techtravel/internal/models"
)

const flightColumns = `
	f.id, f.flight_number, f.airline_id, f.origin_iata, f.destination_iata,
	f.departure_datetime, f.arrival_datetime, f.frequency,
	COALESCE(a.iata_code, '')
`

func scanFlight(scanner interface{ Scan(...any) error }) (models.Flight, error) {
	var f models.Flight
	var frequency []byte
	err := scanner.Scan(
		&f.ID, &f.FlightNumber, &f.AirlineID, &f.OriginIATA, &f.DestinationIATA,
		&f.DepartureDatetime, &f.ArrivalDatetime, &frequency, &f.AirlineIATACode,
	)
	if err != nil {
		return f, err
	}
	if len(frequency) > 0 {
		if err := json.Unmarshal(frequency, &f.Frequency); err != nil {
			return f, fmt.Errorf("failed to decode flight frequency: %w", err)
		}
	}
	return f, nil
}

// FindAllFlights returns every flight with its airline code attached.
func (db *DB) FindAllFlights(ctx context.Context) ([]models.Flight, error) {
	query := `
		SELECT` + flightColumns + `
		FROM flights f
		LEFT JOIN airlines a ON a.id = f.airline_id
		ORDER BY f.departure_datetime
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights: %w", err)
	}
	defer rows.Close()

	var flights []models.Flight
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flight: %w", err)
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

// GetFlight returns one flight by id.
func (db *DB) GetFlight(ctx context.Context, id string) (*models.Flight, error) {
	query := `
		SELECT` + flightColumns + `
		FROM flights f
		LEFT JOIN airlines a ON a.id = f.airline_id
		WHERE f.id = ?
	`

	f, err := scanFlight(db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrFlightNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}
	return &f, nil
}

// CreateFlight inserts a new flight.
func (db *DB) CreateFlight(ctx context.Context, f *models.Flight) error {
	frequency, err := json.Marshal(f.Frequency)
	if err != nil {
		return fmt.Errorf("failed to encode flight frequency: %w", err)
	}

	query := `
		INSERT INTO flights (id, flight_number, airline_id, origin_iata, destination_iata,
			departure_datetime, arrival_datetime, frequency)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = db.ExecContext(ctx, query,
		f.ID, f.FlightNumber, f.AirlineID, f.OriginIATA, f.DestinationIATA,
		f.DepartureDatetime, f.ArrivalDatetime, frequency,
	)
	if err != nil {
		return fmt.Errorf("failed to create flight: %w", err)
	}
	return nil
}

// UpdateFlight applies the non-nil fields of req to a flight.
func (db *DB) UpdateFlight(ctx context.Context, id string, req *models.UpdateFlightRequest) (*models.Flight, error) {
	query := `
		UPDATE flights
		SET flight_number = COALESCE(?, flight_number),
			origin_iata = COALESCE(?, origin_iata),
			destination_iata = COALESCE(?, destination_iata),
			departure_datetime = COALESCE(?, departure_datetime),
			arrival_datetime = COALESCE(?, arrival_datetime)
		WHERE id = ?
	`

	res, err := db.ExecContext(ctx, query,
		req.FlightNumber, req.OriginIATA, req.DestinationIATA,
		req.DepartureDatetime, req.ArrivalDatetime, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update flight: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// MySQL reports zero rows for a no-op update too; confirm existence.
		if _, err := db.GetFlight(ctx, id); err != nil {
			return nil, err
		}
	}
	return db.GetFlight(ctx, id)
}

// DeleteFlight removes a flight by id.
func (db *DB) DeleteFlight(ctx context.Context, id string) error {
	res, err := db.ExecContext(ctx, `DELETE FROM flights WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete flight: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete flight: %w", err)
	}
	if n == 0 {
		return ErrFlightNotFound
	}
	return nil
}
