package database

import (
	"context"
	"database/sql"
	"fmt"

	"techtravel/internal/models"
)

func (db *DB) CreateBooking(ctx context.Context, b *models.Booking) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO bookings (id, user_id, itinerary_id, status)
		VALUES (?, ?, ?, ?)
	`, b.ID, b.UserID, b.ItineraryID, b.Status)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (db *DB) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	err := db.QueryRowContext(ctx, `
		SELECT id, user_id, itinerary_id, status, created_at, updated_at
		FROM bookings WHERE id = ?
	`, id).Scan(&b.ID, &b.UserID, &b.ItineraryID, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &b, nil
}

func (db *DB) GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, user_id, itinerary_id, status, created_at, updated_at
		FROM bookings WHERE user_id = ?
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		err := rows.Scan(&b.ID, &b.UserID, &b.ItineraryID, &b.Status, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (db *DB) UpdateBookingStatus(ctx context.Context, id, status string) error {
	res, err := db.ExecContext(ctx, `
		UPDATE bookings SET status = ?, updated_at = NOW() WHERE id = ?
	`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if n == 0 {
		return ErrBookingNotFound
	}
	return nil
}
