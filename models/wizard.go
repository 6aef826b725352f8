package models

// WizardStep identifies where in the configuration flow a session is.
type WizardStep string

const (
	StepServiceSelect WizardStep = "SERVICE_SELECT"
	// StepOptionSelect is a transient sub-state of service selection, entered
	// only when the chosen service exposes options.
	StepOptionSelect WizardStep = "OPTION_SELECT"
	StepDetails      WizardStep = "DETAILS"
	StepReview       WizardStep = "REVIEW"
)

// SelectedService is the per-slot aggregate the wizard configures: the chosen
// catalog service, its option (if any), the recurrence schedule, the
// category-specific details, and the derived price.
type SelectedService struct {
	Service  Service          `bson:"service" json:"service"`
	OptionID string           `bson:"optionId" json:"optionId,omitempty"`
	Schedule ServiceSchedule  `bson:"schedule" json:"schedule"`
	Details  ServiceDetails   `bson:"details" json:"details"`
	// Price is derived from the configuration by the pricing model. It is
	// recomputed after every mutation and never trusted as input.
	Price int `bson:"price" json:"price"`
}

// Option resolves the selected option against the service catalog entry.
func (s SelectedService) Option() *ServiceOption {
	if s.OptionID == "" {
		return nil
	}
	return s.Service.OptionByID(s.OptionID)
}

// WizardSession holds the full in-progress configuration between requests.
// It lives in the session cache under SessionID and is discarded on cancel
// or successful submission.
type WizardSession struct {
	SessionID  string            `json:"sessionId"`
	CustomerID string            `json:"customerId"`
	Step       WizardStep        `json:"step"`
	Services   []SelectedService `json:"services"`
	// ActiveIndex points at the service currently being configured.
	ActiveIndex int           `json:"activeIndex"`
	Terms       PlanTerms     `json:"terms"`
	Plan        PlanAggregate `json:"plan"`
}

// Active returns the service slot currently being configured, or nil when no
// service has been selected yet.
func (w *WizardSession) Active() *SelectedService {
	if w.ActiveIndex < 0 || w.ActiveIndex >= len(w.Services) {
		return nil
	}
	return &w.Services[w.ActiveIndex]
}
