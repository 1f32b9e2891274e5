package activities

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"techtravel/internal/models"
)

type NotifyActivities struct{}

func NewNotifyActivities() *NotifyActivities {
	return &NotifyActivities{}
}

// PublishOrderPlaced emits the order-placed event for downstream consumers.
func (a *NotifyActivities) PublishOrderPlaced(ctx context.Context, input models.OrderInput) error {
	payload, err := json.Marshal(map[string]string{"orderId": input.OrderID})
	if err != nil {
		return fmt.Errorf("failed to encode order event: %w", err)
	}
	// In production, this would publish to the order queue
	log.Printf("Publishing order event: %s", payload)
	return nil
}

// SendOrderConfirmation emails the customer about the confirmed order.
func (a *NotifyActivities) SendOrderConfirmation(ctx context.Context, input models.OrderInput) error {
	// In production, this would go through the mail gateway
	log.Printf("Sending confirmation for order %s to %s", input.OrderID, input.Email)
	return nil
}
