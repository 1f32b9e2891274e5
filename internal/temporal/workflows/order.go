package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"techtravel/internal/models"
	"techtravel/internal/temporal/activities"
)

const OrderTaskQueue = "order-task-queue"

// OrderWorkflow runs the post-booking pipeline: record the order, publish the
// placed event and email the customer, then mark the order notified.
func OrderWorkflow(ctx workflow.Context, input models.OrderInput) (*models.OrderResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("OrderWorkflow started", "orderID", input.OrderID, "bookingID", input.BookingID)

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval: time.Second,
			MaximumAttempts: 3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var orderActivities *activities.OrderActivities
	if err := workflow.ExecuteActivity(ctx, orderActivities.RecordOrder, input).Get(ctx, nil); err != nil {
		logger.Error("Failed to record order", "error", err)
		return nil, err
	}

	var notifyActivities *activities.NotifyActivities
	if err := workflow.ExecuteActivity(ctx, notifyActivities.PublishOrderPlaced, input).Get(ctx, nil); err != nil {
		logger.Error("Failed to publish order event", "error", err)
		return nil, err
	}

	if err := workflow.ExecuteActivity(ctx, notifyActivities.SendOrderConfirmation, input).Get(ctx, nil); err != nil {
		logger.Error("Failed to send confirmation", "error", err)
		return nil, err
	}

	if err := workflow.ExecuteActivity(ctx, orderActivities.MarkOrderNotified, input.OrderID).Get(ctx, nil); err != nil {
		logger.Error("Failed to mark order notified", "error", err)
		return nil, err
	}

	logger.Info("OrderWorkflow completed", "orderID", input.OrderID)
	return &models.OrderResult{OrderID: input.OrderID, Status: models.OrderNotified}, nil
}
