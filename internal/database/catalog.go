package database

import (
	"context"
	"database/sql"
	"fmt"

	"techtravel/internal/models"
)

// Airline and airport reference data.

func (db *DB) FindAllAirlines(ctx context.Context) ([]models.Airline, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, name, iata_code FROM airlines ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query airlines: %w", err)
	}
	defer rows.Close()

	var airlines []models.Airline
	for rows.Next() {
		var a models.Airline
		if err := rows.Scan(&a.ID, &a.Name, &a.IATACode); err != nil {
			return nil, fmt.Errorf("failed to scan airline: %w", err)
		}
		airlines = append(airlines, a)
	}
	return airlines, rows.Err()
}

func (db *DB) GetAirline(ctx context.Context, id string) (*models.Airline, error) {
	var a models.Airline
	err := db.QueryRowContext(ctx,
		`SELECT id, name, iata_code FROM airlines WHERE id = ?`, id,
	).Scan(&a.ID, &a.Name, &a.IATACode)
	if err == sql.ErrNoRows {
		return nil, ErrAirlineNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get airline: %w", err)
	}
	return &a, nil
}

func (db *DB) CreateAirline(ctx context.Context, a *models.Airline) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO airlines (id, name, iata_code) VALUES (?, ?, ?)`,
		a.ID, a.Name, a.IATACode,
	)
	if err != nil {
		return fmt.Errorf("failed to create airline: %w", err)
	}
	return nil
}

func (db *DB) DeleteAirline(ctx context.Context, id string) error {
	res, err := db.ExecContext(ctx, `DELETE FROM airlines WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete airline: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete airline: %w", err)
	}
	if n == 0 {
		return ErrAirlineNotFound
	}
	return nil
}

func (db *DB) FindAllAirports(ctx context.Context) ([]models.Airport, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, name, iata_code FROM airports ORDER BY iata_code`)
	if err != nil {
		return nil, fmt.Errorf("failed to query airports: %w", err)
	}
	defer rows.Close()

	var airports []models.Airport
	for rows.Next() {
		var a models.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.IATACode); err != nil {
			return nil, fmt.Errorf("failed to scan airport: %w", err)
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (db *DB) GetAirport(ctx context.Context, id string) (*models.Airport, error) {
	var a models.Airport
	err := db.QueryRowContext(ctx,
		`SELECT id, name, iata_code FROM airports WHERE id = ?`, id,
	).Scan(&a.ID, &a.Name, &a.IATACode)
	if err == sql.ErrNoRows {
		return nil, ErrAirportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get airport: %w", err)
	}
	return &a, nil
}

func (db *DB) CreateAirport(ctx context.Context, a *models.Airport) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO airports (id, name, iata_code) VALUES (?, ?, ?)`,
		a.ID, a.Name, a.IATACode,
	)
	if err != nil {
		return fmt.Errorf("failed to create airport: %w", err)
	}
	return nil
}

func (db *DB) DeleteAirport(ctx context.Context, id string) error {
	res, err := db.ExecContext(ctx, `DELETE FROM airports WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete airport: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete airport: %w", err)
	}
	if n == 0 {
		return ErrAirportNotFound
	}
	return nil
}
