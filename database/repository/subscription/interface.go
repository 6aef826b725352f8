package subscriptionRepo

import (
	"context"

	"nestcare/models"
)

// SubscriptionRepository is the data access contract for stored
// subscriptions.
type SubscriptionRepository interface {
	Insert(ctx context.Context, sub models.Subscription) error
	// GetByID returns one subscription, or nil when absent.
	GetByID(ctx context.Context, id string) (*models.Subscription, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Subscription, error)
	UpdateStatus(ctx context.Context, id string, status models.SubscriptionStatus) error
}
