package subscription

import (
	"context"

	"nestcare/models"

	subscriptionRepo "nestcare/database/repository/subscription"
)

// SubscriptionService creates and manages stored subscriptions. Creation is
// the external collaborator the wizard submits to; the wizard itself never
// touches persistence.
type SubscriptionService interface {
	Create(ctx context.Context, req models.SubscriptionRequest) (*models.Subscription, error)
	GetByID(ctx context.Context, id string) (*models.Subscription, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Subscription, error)
	Cancel(ctx context.Context, id string) error
}

// DefaultSubscriptionService implements SubscriptionService over the
// subscription repository.
type DefaultSubscriptionService struct {
	Repo subscriptionRepo.SubscriptionRepository
}
