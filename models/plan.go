package models

// BillingCycle is the recurring-payment period of a subscription plan.
type BillingCycle string

const (
	CycleWeekly    BillingCycle = "WEEKLY"
	CycleMonthly   BillingCycle = "MONTHLY"
	CycleQuarterly BillingCycle = "QUARTERLY"
	CycleYearly    BillingCycle = "YEARLY"
)

// IsValid reports whether the cycle is one of the supported values.
func (b BillingCycle) IsValid() bool {
	switch b {
	case CycleWeekly, CycleMonthly, CycleQuarterly, CycleYearly:
		return true
	}
	return false
}

// PlanTerms are the subscription-level choices made in the wizard: how the
// plan bills, for how many periods, when it starts, and whether it renews.
type PlanTerms struct {
	BillingCycle BillingCycle `bson:"billingCycle" json:"billingCycle"`
	Duration     int          `bson:"duration" json:"duration"`
	StartDate    string       `bson:"startDate" json:"startDate"`
	AutoRenew    bool         `bson:"autoRenew" json:"autoRenew"`
}

// PlanAggregate is the derived price breakdown across all selected services.
// It is recomputed from scratch on every configuration change and never
// stored authoritatively.
type PlanAggregate struct {
	Subtotal  int `json:"subtotal"`
	Discount  int `json:"discount"`
	Total     int `json:"total"`
	PerPeriod int `json:"perPeriod"`

	SubtotalDisplay  string `json:"subtotalDisplay,omitempty"`
	DiscountDisplay  string `json:"discountDisplay,omitempty"`
	TotalDisplay     string `json:"totalDisplay,omitempty"`
	PerPeriodDisplay string `json:"perPeriodDisplay,omitempty"`
}
