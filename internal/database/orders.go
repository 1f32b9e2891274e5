package database

import (
	"context"
	"fmt"

	"techtravel/internal/models"
)

// Orders are written by the notification pipeline worker, not by request
// handlers.

func (db *DB) CreateOrder(ctx context.Context, o *models.Order) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO orders (order_id, booking_id, email, amount, status, workflow_id, run_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, o.OrderID, o.BookingID, o.Email, o.Amount, o.Status, o.WorkflowID, o.RunID)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (db *DB) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	res, err := db.ExecContext(ctx, `
		UPDATE orders SET status = ?, updated_at = NOW() WHERE order_id = ?
	`, status, orderID)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}
