package activities

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"techtravel/internal/database"
	"techtravel/internal/models"
)

type OrderActivities struct {
	DB *database.DB
}

func NewOrderActivities(db *database.DB) *OrderActivities {
	return &OrderActivities{DB: db}
}

// RecordOrder inserts the order row with its workflow identity.
func (a *OrderActivities) RecordOrder(ctx context.Context, input models.OrderInput) error {
	execution := activity.GetInfo(ctx).WorkflowExecution

	order := &models.Order{
		OrderID:    input.OrderID,
		BookingID:  input.BookingID,
		Email:      input.Email,
		Amount:     input.Amount,
		Status:     models.OrderPlaced,
		WorkflowID: execution.ID,
		RunID:      execution.RunID,
	}
	if err := a.DB.CreateOrder(ctx, order); err != nil {
		return fmt.Errorf("failed to record order: %w", err)
	}
	return nil
}

// MarkOrderNotified flips the order status once notifications are out.
func (a *OrderActivities) MarkOrderNotified(ctx context.Context, orderID string) error {
	err := a.DB.UpdateOrderStatus(ctx, orderID, models.OrderNotified)
	if err != nil {
		// Order not found is a permanent error - don't retry
		if errors.Is(err, database.ErrOrderNotFound) {
			return temporal.NewNonRetryableApplicationError(
				err.Error(),
				"OrderNotFound",
				err,
			)
		}
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}
