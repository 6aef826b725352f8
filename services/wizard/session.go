package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nestcare/models"
	"nestcare/services/subscription"
	"nestcare/utils"
)

const defaultSessionTTL = 30 * time.Minute

func (s *DefaultWizardService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return defaultSessionTTL
}

// StartSession creates a fresh wizard session and returns it together with
// the active service catalog for the selection step.
func (s *DefaultWizardService) StartSession(customerID string) (*models.WizardSession, []models.Service, error) {
	logger := utils.GetLogger()
	if customerID == "" {
		return nil, nil, NewConfigError("customerId is required")
	}

	ctx := context.Background()
	services, err := s.CatalogSvc.ListServices(ctx)
	if err != nil {
		logger.Error("StartSession: failed to load service catalog", zap.Error(err))
		return nil, nil, fmt.Errorf("failed to load service catalog: %w", err)
	}

	session := models.WizardSession{
		SessionID:   uuid.New().String(),
		CustomerID:  customerID,
		Step:        models.StepServiceSelect,
		ActiveIndex: -1,
		Terms: models.PlanTerms{
			BillingCycle: models.CycleMonthly,
			Duration:     1,
			AutoRenew:    true,
		},
	}
	reprice(&session)

	if err := s.saveSession(ctx, &session); err != nil {
		return nil, nil, err
	}

	logger.Info("StartSession: initiated wizard session",
		zap.String("sessionID", session.SessionID),
		zap.String("customerID", customerID))
	return &session, services, nil
}

// GetSession returns the current session state.
func (s *DefaultWizardService) GetSession(sessionID string) (*models.WizardSession, error) {
	return s.loadSession(context.Background(), sessionID)
}

// CancelSession discards the in-progress configuration.
func (s *DefaultWizardService) CancelSession(sessionID string) error {
	if sessionID == "" {
		return NewSessionError("session not initialized")
	}
	return s.Cache.Del(context.Background(), sessionKey(sessionID))
}

// SelectService sets the active service slot; services with option tiers
// route through the option sub-step.
func (s *DefaultWizardService) SelectService(sessionID, serviceID string) (*models.WizardSession, error) {
	return s.mutate(sessionID, func(session *models.WizardSession) error {
		svc, err := s.CatalogSvc.GetServiceByID(context.Background(), serviceID)
		if err != nil {
			return NewConfigError(fmt.Sprintf("service %q not found", serviceID))
		}
		applySelectService(session, *svc)
		return nil
	})
}

// SelectOption records the option pick for the active service.
func (s *DefaultWizardService) SelectOption(sessionID, optionID string) (*models.WizardSession, error) {
	return s.mutate(sessionID, func(session *models.WizardSession) error {
		return applySelectOption(session, optionID)
	})
}

// ToggleScheduleDay adds or removes a weekday from the active schedule.
func (s *DefaultWizardService) ToggleScheduleDay(sessionID string, day models.Weekday) (*models.WizardSession, error) {
	return s.mutate(sessionID, func(session *models.WizardSession) error {
		return applyToggleScheduleDay(session, day)
	})
}

// SetTimeSlot sets the preferred time slot for the active service.
func (s *DefaultWizardService) SetTimeSlot(sessionID string, slot models.TimeSlot) (*models.WizardSession, error) {
	return s.mutate(sessionID, func(session *models.WizardSession) error {
		return applySetTimeSlot(session, slot)
	})
}

// AdjustRoomQuantity changes a cleaning room count by delta.
func (s *DefaultWizardService) AdjustRoomQuantity(sessionID, room string, delta int) (*models.WizardSession, error) {
	return s.mutate(sessionID, func(session *models.WizardSession) error {
		return applyAdjustRoomQuantity(session, room, delta)
	})
}

// AdjustBagCount changes the laundry bag count by delta.
func (s *DefaultWizardService) AdjustBagCount(sessionID string, delta int) (*models.WizardSession, error) {
	return s.mutate(sessionID, func(session *models.WizardSession) error {
		return applyAdjustBagCount(session, delta)
	})
}

// AdjustMealCount changes a scheduled day's meal count by delta.
func (s *DefaultWizardService) AdjustMealCount(sessionID string, day models.Weekday, delta int) (*models.WizardSession, error) {
	return s.mutate(sessionID, func(session *models.WizardSession) error {
		return applyAdjustMealCount(session, day, delta)
	})
}

// SetPropertyType records the dwelling type for a cleaning service.
func (s *DefaultWizardService) SetPropertyType(sessionID string, property models.PropertyType) (*models.WizardSession, error) {
	return s.mutate(sessionID, func(session *models.WizardSession) error {
		return applySetPropertyType(session, property)
	})
}

// SetLaundryType records the handling tier for a laundry service.
func (s *DefaultWizardService) SetLaundryType(sessionID string, t models.LaundryType) (*models.WizardSession, error) {
	return s.mutate(sessionID, func(session *models.WizardSession) error {
		return applySetLaundryType(session, t)
	})
}

// SetMealType records the cooking tier.
func (s *DefaultWizardService) SetMealType(sessionID string, t models.MealType) (*models.WizardSession, error) {
	return s.mutate(sessionID, func(session *models.WizardSession) error {
		return applySetMealType(session, t)
	})
}

// SetPestControlDetails records the treatment configuration.
func (s *DefaultWizardService) SetPestControlDetails(sessionID, treatment, severity string, areas []string) (*models.WizardSession, error) {
	return s.mutate(sessionID, func(session *models.WizardSession) error {
		return applySetPestControlDetails(session, treatment, severity, areas)
	})
}

// SetPlanTerms records the billing cycle, duration, start date and renewal.
func (s *DefaultWizardService) SetPlanTerms(sessionID string, terms models.PlanTerms) (*models.WizardSession, error) {
	return s.mutate(sessionID, func(session *models.WizardSession) error {
		return applySetPlanTerms(session, terms)
	})
}

// RequestStep moves the session to the requested wizard step. Unreachable
// forward moves are ignored; the returned session reflects whatever step the
// machine actually landed on.
func (s *DefaultWizardService) RequestStep(sessionID string, step models.WizardStep) (*models.WizardSession, error) {
	return s.mutate(sessionID, func(session *models.WizardSession) error {
		applyStepRequest(session, step)
		return nil
	})
}

// Confirm builds the subscription request from the session and hands it to
// the creation service. The session is discarded only after a successful
// create, so a failed submission can be retried without data loss.
func (s *DefaultWizardService) Confirm(sessionID string) (*models.Subscription, error) {
	logger := utils.GetLogger()
	ctx := context.Background()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	req, err := subscription.BuildRequest(
		session.CustomerID,
		session.Terms,
		session.Services,
	)
	if err != nil {
		logger.Warn("Confirm: submission blocked by validation",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, err
	}

	created, err := s.SubscriptionSvc.Create(ctx, *req)
	if err != nil {
		logger.Error("Confirm: subscription creation failed",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, err
	}

	if err := s.Cache.Del(ctx, sessionKey(sessionID)); err != nil {
		logger.Warn("Confirm: failed to discard submitted session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	logger.Info("Confirm: subscription created",
		zap.String("sessionID", sessionID),
		zap.String("subscriptionID", created.ID))
	return created, nil
}

// mutate is the shared load-apply-reprice-save cycle behind every session
// mutation. Recomputation is serialized after the mutation by construction.
func (s *DefaultWizardService) mutate(sessionID string, apply func(*models.WizardSession) error) (*models.WizardSession, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := apply(session); err != nil {
		return nil, err
	}
	reprice(session)
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func sessionKey(sessionID string) string {
	return "wizard:session:" + sessionID
}

func (s *DefaultWizardService) loadSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	if sessionID == "" {
		return nil, NewSessionError("session not initialized")
	}
	data, err := s.Cache.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, NewSessionError("wizard session not found or expired")
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session %s: %w", sessionID, err)
	}
	return &session, nil
}

func (s *DefaultWizardService) saveSession(ctx context.Context, session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(session.SessionID), string(data), s.ttl()); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}
