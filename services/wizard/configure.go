package wizard

import (
	"fmt"

	"nestcare/models"
	"nestcare/services/pricing"
)

// reprice recomputes the active service's derived price and the plan
// aggregate. Called after every mutation, before the session is saved.
func reprice(s *models.WizardSession) {
	for i := range s.Services {
		svc := &s.Services[i]
		svc.Price = pricing.Quote(svc.Service, svc.Option(), svc.Details, svc.Schedule)
	}
	s.Plan = pricing.ComputeAggregate(s.Services, s.Terms)
}

// applySelectService adds the service as the active slot. Services that
// expose option tiers route through the option sub-step instead of advancing
// straight to details.
func applySelectService(s *models.WizardSession, svc models.Service) {
	if !svc.Active {
		return
	}
	slot := models.SelectedService{
		Service: svc,
		Details: models.DefaultDetailsFor(svc.Category),
	}
	// Re-selecting a service already in the plan re-activates its slot.
	for i := range s.Services {
		if s.Services[i].Service.ID == svc.ID {
			s.ActiveIndex = i
			if svc.HasOptions() && s.Services[i].OptionID == "" {
				s.Step = models.StepOptionSelect
			} else {
				s.Step = models.StepDetails
			}
			return
		}
	}
	s.Services = append(s.Services, slot)
	s.ActiveIndex = len(s.Services) - 1
	if svc.HasOptions() {
		s.Step = models.StepOptionSelect
	} else {
		s.Step = models.StepDetails
	}
}

// applySelectOption records the option pick and advances to details.
func applySelectOption(s *models.WizardSession, optionID string) error {
	active := s.Active()
	if active == nil {
		return NewConfigError("no service selected")
	}
	if active.Service.OptionByID(optionID) == nil {
		return NewConfigError(fmt.Sprintf("option %q does not belong to service %q", optionID, active.Service.ID))
	}
	active.OptionID = optionID
	s.Step = models.StepDetails
	return nil
}

// applyToggleScheduleDay adds or removes a weekday from the active schedule.
// Cooking keeps its meal map in step: scheduling a day seeds one meal,
// unscheduling removes the entry, and the last day with assigned meals
// cannot be removed.
func applyToggleScheduleDay(s *models.WizardSession, day models.Weekday) error {
	active := s.Active()
	if active == nil {
		return NewConfigError("no service selected")
	}
	if !day.IsValid() {
		return NewConfigError(fmt.Sprintf("unknown weekday %q", day))
	}

	cooking := active.Details.Cooking

	if active.Schedule.HasDay(day) {
		if cooking != nil && len(active.Schedule.Days) == 1 && len(cooking.MealsPerDay) > 0 {
			// Removing the only scheduled day would strand the assigned
			// meals; ignore the toggle.
			return nil
		}
		days := active.Schedule.Days[:0]
		for _, d := range active.Schedule.Days {
			if d != day {
				days = append(days, d)
			}
		}
		active.Schedule.Days = days
		if cooking != nil {
			delete(cooking.MealsPerDay, day)
		}
		return nil
	}

	active.Schedule.Days = append(active.Schedule.Days, day)
	if cooking != nil {
		cooking.MealsPerDay[day] = 1
	}
	return nil
}

// applySetTimeSlot is single-select: the new slot replaces the previous one.
func applySetTimeSlot(s *models.WizardSession, slot models.TimeSlot) error {
	active := s.Active()
	if active == nil {
		return NewConfigError("no service selected")
	}
	if !slot.IsValid() {
		return NewConfigError(fmt.Sprintf("unknown time slot %q", slot))
	}
	active.Schedule.Slot = slot
	return nil
}

// applyAdjustRoomQuantity changes one room count by delta, clamped at zero.
func applyAdjustRoomQuantity(s *models.WizardSession, room string, delta int) error {
	active := s.Active()
	if active == nil {
		return NewConfigError("no service selected")
	}
	d := active.Details.Cleaning
	if d == nil {
		return NewConfigError("room quantities only apply to cleaning services")
	}

	var count *int
	switch room {
	case "bedroom":
		count = &d.Rooms.Bedroom
	case "livingRoom":
		count = &d.Rooms.LivingRoom
	case "bathroom":
		count = &d.Rooms.Bathroom
	case "kitchen":
		count = &d.Rooms.Kitchen
	case "balcony":
		count = &d.Rooms.Balcony
	case "studyRoom":
		count = &d.Rooms.StudyRoom
	default:
		return NewConfigError(fmt.Sprintf("unknown room type %q", room))
	}

	*count += delta
	if *count < 0 {
		*count = 0
	}
	return nil
}

// applyAdjustBagCount changes the laundry bag count by delta, clamped at one.
func applyAdjustBagCount(s *models.WizardSession, delta int) error {
	active := s.Active()
	if active == nil {
		return NewConfigError("no service selected")
	}
	d := active.Details.Laundry
	if d == nil {
		return NewConfigError("bag count only applies to laundry services")
	}
	d.Bags += delta
	if d.Bags < 1 {
		d.Bags = 1
	}
	return nil
}

// applyAdjustMealCount changes a scheduled day's meal count by delta, clamped
// at one. Zero meals on a scheduled day is not representable.
func applyAdjustMealCount(s *models.WizardSession, day models.Weekday, delta int) error {
	active := s.Active()
	if active == nil {
		return NewConfigError("no service selected")
	}
	d := active.Details.Cooking
	if d == nil {
		return NewConfigError("meal counts only apply to cooking services")
	}
	if !active.Schedule.HasDay(day) {
		return NewConfigError(fmt.Sprintf("day %q is not scheduled", day))
	}
	n := d.MealsPerDay[day] + delta
	if n < 1 {
		n = 1
	}
	d.MealsPerDay[day] = n
	return nil
}

// applySetPropertyType records the dwelling type for a cleaning service.
func applySetPropertyType(s *models.WizardSession, property models.PropertyType) error {
	active := s.Active()
	if active == nil {
		return NewConfigError("no service selected")
	}
	d := active.Details.Cleaning
	if d == nil {
		return NewConfigError("property type only applies to cleaning services")
	}
	switch property {
	case models.PropertyFlat, models.PropertyApartment, models.PropertyHouse, models.PropertyStudio:
	default:
		return NewConfigError(fmt.Sprintf("unknown property type %q", property))
	}
	d.PropertyType = property
	return nil
}

// applySetLaundryType records the handling tier for a laundry service.
func applySetLaundryType(s *models.WizardSession, t models.LaundryType) error {
	active := s.Active()
	if active == nil {
		return NewConfigError("no service selected")
	}
	d := active.Details.Laundry
	if d == nil {
		return NewConfigError("laundry type only applies to laundry services")
	}
	switch t {
	case models.WashAndFold, models.WashAndIron, models.DryClean:
	default:
		return NewConfigError(fmt.Sprintf("unknown laundry type %q", t))
	}
	d.LaundryType = t
	return nil
}

// applySetMealType records the cooking tier.
func applySetMealType(s *models.WizardSession, t models.MealType) error {
	active := s.Active()
	if active == nil {
		return NewConfigError("no service selected")
	}
	d := active.Details.Cooking
	if d == nil {
		return NewConfigError("meal type only applies to cooking services")
	}
	switch t {
	case models.MealBasic, models.MealStandard:
	default:
		return NewConfigError(fmt.Sprintf("unknown meal type %q", t))
	}
	d.MealType = t
	return nil
}

// applySetPestControlDetails records the treatment configuration.
func applySetPestControlDetails(s *models.WizardSession, treatment, severity string, areas []string) error {
	active := s.Active()
	if active == nil {
		return NewConfigError("no service selected")
	}
	d := active.Details.PestControl
	if d == nil {
		return NewConfigError("treatment details only apply to pest control services")
	}
	if treatment == "" {
		return NewConfigError("treatment type is required")
	}
	d.TreatmentType = treatment
	d.Severity = severity
	d.TargetAreas = areas
	return nil
}

// applySetPlanTerms records the subscription-level choices.
func applySetPlanTerms(s *models.WizardSession, terms models.PlanTerms) error {
	if !terms.BillingCycle.IsValid() {
		return NewConfigError(fmt.Sprintf("unknown billing cycle %q", terms.BillingCycle))
	}
	if terms.Duration < 1 {
		return NewConfigError("duration must be at least one period")
	}
	s.Terms = terms
	return nil
}
