package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nestcare/models"
	"nestcare/utils"
)

// Create persists a subscription from a fully validated request. Callers are
// expected to have gone through BuildRequest; a request handed in directly
// is validated the same way.
func (s *DefaultSubscriptionService) Create(ctx context.Context, req models.SubscriptionRequest) (*models.Subscription, error) {
	logger := utils.GetLogger()

	now := time.Now().UTC()
	sub := models.Subscription{
		ID:           uuid.New().String(),
		CustomerID:   req.CustomerID,
		BillingCycle: req.BillingCycle,
		Duration:     req.Duration,
		StartDate:    req.StartDate,
		AutoRenew:    req.AutoRenew,
		Services:     req.Services,
		Subtotal:     req.Plan.Subtotal,
		Discount:     req.Plan.Discount,
		Total:        req.Plan.Total,
		PerPeriod:    req.Plan.PerPeriod,
		Status:       models.SubscriptionActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Insert(ctx, sub); err != nil {
		logger.Error("Create: failed to persist subscription",
			zap.String("customerID", req.CustomerID), zap.Error(err))
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	logger.Info("Create: subscription stored",
		zap.String("subscriptionID", sub.ID),
		zap.String("customerID", sub.CustomerID),
		zap.Int("total", sub.Total))
	return &sub, nil
}

// GetByID fetches one subscription.
func (s *DefaultSubscriptionService) GetByID(ctx context.Context, id string) (*models.Subscription, error) {
	sub, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, &NotFoundError{ID: id}
	}
	return sub, nil
}

// ListByCustomer returns all subscriptions belonging to a customer.
func (s *DefaultSubscriptionService) ListByCustomer(ctx context.Context, customerID string) ([]models.Subscription, error) {
	return s.Repo.ListByCustomer(ctx, customerID)
}

// Cancel marks a subscription cancelled. Cancelling twice is a no-op.
func (s *DefaultSubscriptionService) Cancel(ctx context.Context, id string) error {
	sub, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if sub.Status == models.SubscriptionCancelled {
		return nil
	}
	return s.Repo.UpdateStatus(ctx, id, models.SubscriptionCancelled)
}
