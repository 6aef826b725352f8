package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestcare/models"
)

func validTerms() models.PlanTerms {
	return models.PlanTerms{
		BillingCycle: models.CycleMonthly,
		Duration:     3,
		StartDate:    "2026-09-01",
		AutoRenew:    true,
	}
}

func cleaningSlot() models.SelectedService {
	svc := models.Service{
		ID:        "svc-cleaning",
		Category:  models.CategoryCleaning,
		BasePrice: 10000,
		Options: []models.ServiceOption{
			{ID: "opt-standard", Label: "Standard Clean", Price: 15000},
		},
		Active: true,
	}
	details := models.NewCleaningDetails(models.PropertyApartment)
	details.Cleaning.Rooms.Bedroom = 2
	details.Cleaning.Rooms.Bathroom = 1

	return models.SelectedService{
		Service:  svc,
		OptionID: "opt-standard",
		Schedule: models.ServiceSchedule{
			Days: []models.Weekday{models.Wednesday, models.Monday},
			Slot: models.TimeSlotAfternoon,
		},
		Details: details,
	}
}

func TestBuildRequestCleaningRoundTrip(t *testing.T) {
	req, err := BuildRequest("cust-1", validTerms(), []models.SelectedService{cleaningSlot()})
	require.NoError(t, err)
	require.Len(t, req.Services, 1)

	entry := req.Services[0]
	assert.Equal(t, "svc-cleaning", entry.ServiceID)
	assert.Equal(t, "weekly", entry.Frequency)
	assert.Equal(t, models.TimeSlotAfternoon, entry.PreferredTimeSlot)

	// Days are capitalized and keep the order the user toggled them in.
	assert.Equal(t, []string{"Wednesday", "Monday"}, entry.ScheduledDays)

	// Rooms come through zero-filled, never omitted.
	require.NotNil(t, entry.ServiceDetails.Cleaning)
	assert.Equal(t, models.RoomQuantities{
		Bedroom:    2,
		LivingRoom: 0,
		Bathroom:   1,
		Kitchen:    0,
		Balcony:    0,
		StudyRoom:  0,
	}, entry.ServiceDetails.Cleaning.Rooms)

	// Only the matching category detail is populated.
	assert.Nil(t, entry.ServiceDetails.Laundry)
	assert.Nil(t, entry.ServiceDetails.Cooking)
	assert.Nil(t, entry.ServiceDetails.PestControl)
}

func TestBuildRequestRederivesPrices(t *testing.T) {
	slot := cleaningSlot()
	slot.Price = 999999 // stale session value must not be trusted

	req, err := BuildRequest("cust-1", validTerms(), []models.SelectedService{slot})
	require.NoError(t, err)

	assert.Equal(t, 15000+2*5000+4000, req.Services[0].Price)
	assert.Equal(t, req.Services[0].Price, req.Plan.Subtotal)
	assert.Equal(t, req.Plan.Subtotal-req.Plan.Discount, req.Plan.Total)
}

func TestBuildRequestMissingScheduleDays(t *testing.T) {
	slot := cleaningSlot()
	slot.Schedule.Days = nil

	_, err := BuildRequest("cust-1", validTerms(), []models.SelectedService{slot})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "scheduledDays", vErr.Field)
}

func TestBuildRequestMissingTimeSlot(t *testing.T) {
	slot := cleaningSlot()
	slot.Schedule.Slot = models.TimeSlotUnselected

	_, err := BuildRequest("cust-1", validTerms(), []models.SelectedService{slot})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "preferredTimeSlot", vErr.Field)
}

func TestBuildRequestMissingOption(t *testing.T) {
	slot := cleaningSlot()
	slot.OptionID = ""

	_, err := BuildRequest("cust-1", validTerms(), []models.SelectedService{slot})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "optionId", vErr.Field)
}

func TestBuildRequestPlanLevelValidation(t *testing.T) {
	slots := []models.SelectedService{cleaningSlot()}

	cases := []struct {
		name  string
		mod   func(*models.PlanTerms)
		cust  string
		field string
	}{
		{"missing customer", func(tm *models.PlanTerms) {}, "", "customerId"},
		{"bad cycle", func(tm *models.PlanTerms) { tm.BillingCycle = "DAILY" }, "cust-1", "billingCycle"},
		{"zero duration", func(tm *models.PlanTerms) { tm.Duration = 0 }, "cust-1", "duration"},
		{"missing start", func(tm *models.PlanTerms) { tm.StartDate = "" }, "cust-1", "startDate"},
		{"bad start", func(tm *models.PlanTerms) { tm.StartDate = "01/09/2026" }, "cust-1", "startDate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			terms := validTerms()
			tc.mod(&terms)
			_, err := BuildRequest(tc.cust, terms, slots)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestBuildRequestRequiresAtLeastOneService(t *testing.T) {
	_, err := BuildRequest("cust-1", validTerms(), nil)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "services", vErr.Field)
}

func TestBuildRequestDoesNotAliasSessionState(t *testing.T) {
	svc := models.Service{
		ID:        "svc-cooking",
		Category:  models.CategoryCooking,
		BasePrice: 1500,
		Active:    true,
	}
	details := models.NewCookingDetails(models.MealBasic)
	details.Cooking.MealsPerDay[models.Monday] = 2

	slot := models.SelectedService{
		Service: svc,
		Schedule: models.ServiceSchedule{
			Days: []models.Weekday{models.Monday},
			Slot: models.TimeSlotMorning,
		},
		Details: details,
	}

	req, err := BuildRequest("cust-1", validTerms(), []models.SelectedService{slot})
	require.NoError(t, err)

	// Mutating the live session afterwards must not change the request.
	details.Cooking.MealsPerDay[models.Monday] = 9
	assert.Equal(t, 2, req.Services[0].ServiceDetails.Cooking.MealsPerDay[models.Monday])
}

func TestBuildRequestDetailShapeMismatchPanics(t *testing.T) {
	slot := cleaningSlot()
	slot.Details = models.NewLaundryDetails(models.WashAndFold)

	assert.Panics(t, func() {
		_, _ = BuildRequest("cust-1", validTerms(), []models.SelectedService{slot})
	})
}
