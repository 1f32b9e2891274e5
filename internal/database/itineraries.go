package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"techtravel/internal/models"
)

const itineraryFlightQuery = `
	SELECT i.id,` + flightColumns + `
	FROM itineraries i
	JOIN itinerary_flights link ON link.itinerary_id = i.id
	JOIN flights f ON f.id = link.flight_id
	LEFT JOIN airlines a ON a.id = f.airline_id
`

// summarize recomputes the derived itinerary fields from its flight sequence.
// Flights must already be in travel order.
func summarize(it *models.Itinerary) {
	if len(it.Flights) == 0 {
		return
	}
	first := it.Flights[0]
	last := it.Flights[len(it.Flights)-1]
	it.OriginIATA = first.OriginIATA
	it.DestinationIATA = last.DestinationIATA
	it.DepartureDatetime = first.DepartureDatetime
	it.ArrivalDatetime = last.ArrivalDatetime
	it.TotalDurationMinutes = int(last.ArrivalDatetime.Sub(first.DepartureDatetime) / time.Minute)
	it.Stops = len(it.Flights) - 1
}

// FindAllItineraries returns the full itinerary corpus with flights in stored
// link order and summary fields derived from them.
func (db *DB) FindAllItineraries(ctx context.Context) ([]models.Itinerary, error) {
	query := itineraryFlightQuery + `ORDER BY i.created_at, i.id, link.position`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query itineraries: %w", err)
	}
	defer rows.Close()

	var itineraries []models.Itinerary
	index := make(map[string]int)
	for rows.Next() {
		var itineraryID string
		var f models.Flight
		var frequency []byte
		err := rows.Scan(
			&itineraryID,
			&f.ID, &f.FlightNumber, &f.AirlineID, &f.OriginIATA, &f.DestinationIATA,
			&f.DepartureDatetime, &f.ArrivalDatetime, &frequency, &f.AirlineIATACode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan itinerary flight: %w", err)
		}
		if len(frequency) > 0 {
			if err := json.Unmarshal(frequency, &f.Frequency); err != nil {
				return nil, fmt.Errorf("failed to decode flight frequency: %w", err)
			}
		}

		pos, ok := index[itineraryID]
		if !ok {
			pos = len(itineraries)
			index[itineraryID] = pos
			itineraries = append(itineraries, models.Itinerary{ID: itineraryID})
		}
		itineraries[pos].Flights = append(itineraries[pos].Flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range itineraries {
		summarize(&itineraries[i])
	}
	return itineraries, nil
}

// GetItinerary returns one itinerary by id.
func (db *DB) GetItinerary(ctx context.Context, id string) (*models.Itinerary, error) {
	query := itineraryFlightQuery + `WHERE i.id = ? ORDER BY link.position`

	rows, err := db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query itinerary: %w", err)
	}
	defer rows.Close()

	it := models.Itinerary{ID: id}
	for rows.Next() {
		var itineraryID string
		var f models.Flight
		var frequency []byte
		err := rows.Scan(
			&itineraryID,
			&f.ID, &f.FlightNumber, &f.AirlineID, &f.OriginIATA, &f.DestinationIATA,
			&f.DepartureDatetime, &f.ArrivalDatetime, &frequency, &f.AirlineIATACode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan itinerary flight: %w", err)
		}
		if len(frequency) > 0 {
			if err := json.Unmarshal(frequency, &f.Frequency); err != nil {
				return nil, fmt.Errorf("failed to decode flight frequency: %w", err)
			}
		}
		it.Flights = append(it.Flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(it.Flights) == 0 {
		return nil, ErrItineraryNotFound
	}

	summarize(&it)
	return &it, nil
}

// CreateItinerary persists the flight linkage in the given order and returns
// the itinerary with its derived summary. The whole write is one transaction
// so a failed insert leaves nothing behind.
func (db *DB) CreateItinerary(ctx context.Context, flightIDs []string) (*models.Itinerary, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id := uuid.New().String()
	if _, err := tx.ExecContext(ctx, `INSERT INTO itineraries (id) VALUES (?)`, id); err != nil {
		return nil, fmt.Errorf("failed to create itinerary: %w", err)
	}

	for position, flightID := range flightIDs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO itinerary_flights (itinerary_id, flight_id, position)
			VALUES (?, ?, ?)
		`, id, flightID, position)
		if err != nil {
			return nil, fmt.Errorf("failed to link flight %s: %w", flightID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit itinerary: %w", err)
	}

	return db.GetItinerary(ctx, id)
}

// DeleteItinerary removes an itinerary and its flight links.
func (db *DB) DeleteItinerary(ctx context.Context, id string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM itinerary_flights WHERE itinerary_id = ?`, id); err != nil {
		return fmt.Errorf("failed to unlink itinerary flights: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM itineraries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete itinerary: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete itinerary: %w", err)
	}
	if n == 0 {
		return ErrItineraryNotFound
	}

	return tx.Commit()
}
