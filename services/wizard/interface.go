package wizard

import (
	"time"

	"nestcare/models"
	"nestcare/services/catalog"
	"nestcare/services/subscription"
)

// WizardService manages stateful subscription-configuration sessions: one
// session per customer walk-through, mutated step by step and submitted once.
type WizardService interface {
	StartSession(customerID string) (*models.WizardSession, []models.Service, error)
	GetSession(sessionID string) (*models.WizardSession, error)
	CancelSession(sessionID string) error

	SelectService(sessionID, serviceID string) (*models.WizardSession, error)
	SelectOption(sessionID, optionID string) (*models.WizardSession, error)
	ToggleScheduleDay(sessionID string, day models.Weekday) (*models.WizardSession, error)
	SetTimeSlot(sessionID string, slot models.TimeSlot) (*models.WizardSession, error)
	AdjustRoomQuantity(sessionID, room string, delta int) (*models.WizardSession, error)
	AdjustBagCount(sessionID string, delta int) (*models.WizardSession, error)
	AdjustMealCount(sessionID string, day models.Weekday, delta int) (*models.WizardSession, error)
	SetPropertyType(sessionID string, property models.PropertyType) (*models.WizardSession, error)
	SetLaundryType(sessionID string, t models.LaundryType) (*models.WizardSession, error)
	SetMealType(sessionID string, t models.MealType) (*models.WizardSession, error)
	SetPestControlDetails(sessionID, treatment, severity string, areas []string) (*models.WizardSession, error)
	SetPlanTerms(sessionID string, terms models.PlanTerms) (*models.WizardSession, error)
	RequestStep(sessionID string, step models.WizardStep) (*models.WizardSession, error)

	Confirm(sessionID string) (*models.Subscription, error)
}

// DefaultWizardService implements WizardService on top of the Redis session
// cache, the service catalog, and the subscription creation service.
type DefaultWizardService struct {
	CatalogSvc      catalog.CatalogService
	SubscriptionSvc subscription.SubscriptionService
	Cache           SessionCache
	SessionTTL      time.Duration
}
