package wizard

import "nestcare/models"

// stepRank orders the steps for back-navigation checks. OPTION_SELECT is a
// sub-state of service selection and shares its rank.
func stepRank(step models.WizardStep) int {
	switch step {
	case models.StepDetails:
		return 1
	case models.StepReview:
		return 2
	default:
		return 0
	}
}

// IsStepAccessible is the single reachability predicate for the wizard. Both
// the progress indicator and the step-change action must gate on it so the
// two can never diverge.
func IsStepAccessible(s *models.WizardSession, step models.WizardStep) bool {
	active := s.Active()
	switch step {
	case models.StepServiceSelect:
		return true
	case models.StepOptionSelect:
		return active != nil && active.Service.HasOptions()
	case models.StepDetails:
		if active == nil {
			return false
		}
		return !active.Service.HasOptions() || active.OptionID != ""
	case models.StepReview:
		if !IsStepAccessible(s, models.StepDetails) {
			return false
		}
		return active.Schedule.Complete()
	}
	return false
}

// applyStepRequest moves the session to the requested step. Back navigation
// is never gated; forward moves into unreachable steps are ignored rather
// than rejected.
func applyStepRequest(s *models.WizardSession, step models.WizardStep) {
	if stepRank(step) <= stepRank(s.Step) {
		s.Step = step
		return
	}
	if IsStepAccessible(s, step) {
		s.Step = step
	}
}
