package pricing

import (
	"nestcare/models"
	"nestcare/utils"
)

// Duration-based discount brackets, in subscription periods.
const (
	discountTierOne     = 3
	discountTierTwo     = 6
	discountRateTierOne = 0.05
	discountRateTierTwo = 0.10
	weeksPerMonth       = 4 // billing approximation: 4 weeks ~ 1 month
	monthsPerQuarter    = 3
	monthsPerYear       = 12
)

// DurationDiscount returns the discount amount for a subtotal at the given
// duration: 0% below 3 periods, 5% for 3-5, 10% for 6 and above.
func DurationDiscount(duration, subtotal int) int {
	switch {
	case duration >= discountTierTwo:
		return roundInt(float64(subtotal) * discountRateTierTwo)
	case duration >= discountTierOne:
		return roundInt(float64(subtotal) * discountRateTierOne)
	default:
		return 0
	}
}

// PerPeriodAmount normalizes a monthly total to the billing cycle.
func PerPeriodAmount(total int, cycle models.BillingCycle) int {
	switch cycle {
	case models.CycleWeekly:
		return roundInt(float64(total) / weeksPerMonth)
	case models.CycleQuarterly:
		return total * monthsPerQuarter
	case models.CycleYearly:
		return total * monthsPerYear
	default:
		return total
	}
}

// ComputeAggregate folds all selected-service prices into the plan breakdown.
// It recomputes everything from scratch; with a handful of services per plan
// there is nothing worth caching.
func ComputeAggregate(services []models.SelectedService, terms models.PlanTerms) models.PlanAggregate {
	subtotal := 0
	for _, s := range services {
		subtotal += s.Price
	}

	discount := DurationDiscount(terms.Duration, subtotal)
	total := subtotal - discount

	agg := models.PlanAggregate{
		Subtotal:  subtotal,
		Discount:  discount,
		Total:     total,
		PerPeriod: PerPeriodAmount(total, terms.BillingCycle),
	}
	agg.SubtotalDisplay = utils.FormatNaira(agg.Subtotal)
	agg.DiscountDisplay = utils.FormatNaira(agg.Discount)
	agg.TotalDisplay = utils.FormatNaira(agg.Total)
	agg.PerPeriodDisplay = utils.FormatNaira(agg.PerPeriod)
	return agg
}
