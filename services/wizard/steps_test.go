package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nestcare/models"
)

func optionedService() models.Service {
	return models.Service{
		ID:        "svc-cleaning",
		Category:  models.CategoryCleaning,
		BasePrice: 10000,
		Options: []models.ServiceOption{
			{ID: "opt-standard", Label: "Standard Clean", Price: 15000},
		},
		Active: true,
	}
}

func plainService() models.Service {
	return models.Service{
		ID:        "svc-pest-control",
		Category:  models.CategoryPestControl,
		BasePrice: 20000,
		Active:    true,
	}
}

func newSession() *models.WizardSession {
	return &models.WizardSession{
		SessionID:   "test-session",
		CustomerID:  "cust-1",
		Step:        models.StepServiceSelect,
		ActiveIndex: -1,
		Terms:       models.PlanTerms{BillingCycle: models.CycleMonthly, Duration: 1},
	}
}

func TestNoStepBeyondSelectionWithoutService(t *testing.T) {
	s := newSession()

	assert.True(t, IsStepAccessible(s, models.StepServiceSelect))
	assert.False(t, IsStepAccessible(s, models.StepOptionSelect))
	assert.False(t, IsStepAccessible(s, models.StepDetails))
	assert.False(t, IsStepAccessible(s, models.StepReview))
}

func TestOptionedServiceRoutesThroughOptionSelect(t *testing.T) {
	s := newSession()
	applySelectService(s, optionedService())

	assert.Equal(t, models.StepOptionSelect, s.Step)
	assert.True(t, IsStepAccessible(s, models.StepOptionSelect))
	// Details stays gated until an option is picked.
	assert.False(t, IsStepAccessible(s, models.StepDetails))

	assert.NoError(t, applySelectOption(s, "opt-standard"))
	assert.Equal(t, models.StepDetails, s.Step)
	assert.True(t, IsStepAccessible(s, models.StepDetails))
}

func TestPlainServiceSkipsOptionSelect(t *testing.T) {
	s := newSession()
	applySelectService(s, plainService())

	assert.Equal(t, models.StepDetails, s.Step)
	assert.True(t, IsStepAccessible(s, models.StepDetails))
}

func TestReviewGatedOnScheduleCompleteness(t *testing.T) {
	s := newSession()
	applySelectService(s, plainService())

	// No days, no slot.
	assert.False(t, IsStepAccessible(s, models.StepReview))

	// Days but no slot: still gated.
	assert.NoError(t, applyToggleScheduleDay(s, models.Monday))
	assert.False(t, IsStepAccessible(s, models.StepReview))

	// Day and slot together unlock review.
	assert.NoError(t, applySetTimeSlot(s, models.TimeSlotMorning))
	assert.True(t, IsStepAccessible(s, models.StepReview))

	// Removing the only day re-gates it regardless of the slot.
	assert.NoError(t, applyToggleScheduleDay(s, models.Monday))
	assert.False(t, IsStepAccessible(s, models.StepReview))
}

func TestMorningIsARealChoiceNotASentinel(t *testing.T) {
	s := newSession()
	applySelectService(s, plainService())
	assert.NoError(t, applyToggleScheduleDay(s, models.Wednesday))
	assert.NoError(t, applySetTimeSlot(s, models.TimeSlotMorning))

	assert.True(t, IsStepAccessible(s, models.StepReview))
}

func TestForwardMoveIntoUnreachableStepIsIgnored(t *testing.T) {
	s := newSession()
	applySelectService(s, plainService())

	applyStepRequest(s, models.StepReview)
	assert.Equal(t, models.StepDetails, s.Step)
}

func TestBackNavigationIsNeverGated(t *testing.T) {
	s := newSession()
	applySelectService(s, plainService())
	assert.NoError(t, applyToggleScheduleDay(s, models.Monday))
	assert.NoError(t, applySetTimeSlot(s, models.TimeSlotEvening))

	applyStepRequest(s, models.StepReview)
	assert.Equal(t, models.StepReview, s.Step)

	applyStepRequest(s, models.StepServiceSelect)
	assert.Equal(t, models.StepServiceSelect, s.Step)
}

func TestInactiveServiceIsIgnored(t *testing.T) {
	s := newSession()
	svc := plainService()
	svc.Active = false

	applySelectService(s, svc)
	assert.Empty(t, s.Services)
	assert.Equal(t, models.StepServiceSelect, s.Step)
}

func TestReselectingServiceReactivatesSlot(t *testing.T) {
	s := newSession()
	applySelectService(s, plainService())
	applySelectService(s, optionedService())
	assert.NoError(t, applySelectOption(s, "opt-standard"))

	applySelectService(s, plainService())
	assert.Len(t, s.Services, 2)
	assert.Equal(t, 0, s.ActiveIndex)
	assert.Equal(t, models.StepDetails, s.Step)

	// The optioned slot keeps its pick and skips the option sub-step.
	applySelectService(s, optionedService())
	assert.Equal(t, 1, s.ActiveIndex)
	assert.Equal(t, models.StepDetails, s.Step)
}
