package subscription

import (
	"fmt"
	"time"

	"nestcare/models"
	"nestcare/services/pricing"
)

// Every service line bills weekly regardless of schedule density; the
// frequency field is fixed rather than derived.
const fixedFrequency = "weekly"

// BuildRequest converts the configured service slots and plan terms into a
// SubscriptionRequest. It never submits incomplete data: any missing
// required field fails with a ValidationError naming the field. Prices and
// the plan aggregate are re-derived here rather than trusted from the
// session.
func BuildRequest(customerID string, terms models.PlanTerms, services []models.SelectedService) (*models.SubscriptionRequest, error) {
	if customerID == "" {
		return nil, NewValidationError("customerId", "customer reference is required")
	}
	if !terms.BillingCycle.IsValid() {
		return nil, NewValidationError("billingCycle", "billing cycle must be one of WEEKLY, MONTHLY, QUARTERLY, YEARLY")
	}
	if terms.Duration < 1 {
		return nil, NewValidationError("duration", "duration must be at least one period")
	}
	if terms.StartDate == "" {
		return nil, NewValidationError("startDate", "start date is required")
	}
	if _, err := time.Parse("2006-01-02", terms.StartDate); err != nil {
		return nil, NewValidationError("startDate", "start date must be an ISO-8601 date")
	}
	if len(services) == 0 {
		return nil, NewValidationError("services", "at least one service must be selected")
	}

	entries := make([]models.SubscriptionServiceEntry, 0, len(services))
	for _, slot := range services {
		entry, err := buildServiceEntry(slot)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	priced := make([]models.SelectedService, len(services))
	copy(priced, services)
	for i := range priced {
		priced[i].Price = entries[i].Price
	}

	return &models.SubscriptionRequest{
		CustomerID:   customerID,
		BillingCycle: terms.BillingCycle,
		Duration:     terms.Duration,
		StartDate:    terms.StartDate,
		AutoRenew:    terms.AutoRenew,
		Services:     entries,
		Plan:         pricing.ComputeAggregate(priced, terms),
	}, nil
}

func buildServiceEntry(slot models.SelectedService) (models.SubscriptionServiceEntry, error) {
	var entry models.SubscriptionServiceEntry

	if len(slot.Schedule.Days) == 0 {
		return entry, NewValidationError("scheduledDays", fmt.Sprintf("service %q has no scheduled days", slot.Service.ID))
	}
	if !slot.Schedule.Slot.IsValid() {
		return entry, NewValidationError("preferredTimeSlot", fmt.Sprintf("service %q has no time slot selected", slot.Service.ID))
	}
	if slot.Service.HasOptions() && slot.Option() == nil {
		return entry, NewValidationError("optionId", fmt.Sprintf("service %q requires an option selection", slot.Service.ID))
	}
	if !slot.Details.Matches(slot.Service.Category) {
		// Detail shape diverging from the service category can only happen
		// through a construction bug, never through user input.
		panic(fmt.Sprintf("detail shape does not match category %q for service %q",
			slot.Service.Category, slot.Service.ID))
	}

	// Insertion order is preserved: not contractually meaningful downstream,
	// but deterministic.
	days := make([]string, 0, len(slot.Schedule.Days))
	for _, d := range slot.Schedule.Days {
		days = append(days, d.Wire())
	}

	return models.SubscriptionServiceEntry{
		ServiceID:         slot.Service.ID,
		Frequency:         fixedFrequency,
		ScheduledDays:     days,
		PreferredTimeSlot: slot.Schedule.Slot,
		ServiceDetails:    copyDetails(slot.Details),
		Price:             pricing.Quote(slot.Service, slot.Option(), slot.Details, slot.Schedule),
	}, nil
}

// copyDetails deep-copies the detail union so the request never aliases
// live session state.
func copyDetails(d models.ServiceDetails) models.ServiceDetails {
	var out models.ServiceDetails
	if d.Cleaning != nil {
		c := *d.Cleaning
		out.Cleaning = &c
	}
	if d.Laundry != nil {
		l := *d.Laundry
		out.Laundry = &l
	}
	if d.Cooking != nil {
		c := *d.Cooking
		c.MealsPerDay = make(map[models.Weekday]int, len(d.Cooking.MealsPerDay))
		for k, v := range d.Cooking.MealsPerDay {
			c.MealsPerDay[k] = v
		}
		out.Cooking = &c
	}
	if d.PestControl != nil {
		p := *d.PestControl
		p.TargetAreas = append([]string(nil), d.PestControl.TargetAreas...)
		out.PestControl = &p
	}
	return out
}
