package pricing

import (
	"math"

	"nestcare/models"
)

// ItemsPerBag is the assumed number of laundry items in one bag.
const ItemsPerBag = 30

// recurringLaundryDiscount is the flat discount applied when laundry is
// scheduled on more than one day per week.
const recurringLaundryDiscount = 0.10

// roomRates is the canonical per-room rate table in naira. Two divergent
// tables existed historically; this one is the authoritative schedule.
var roomRates = map[string]int{
	"bedroom":    5000,
	"livingRoom": 4500,
	"bathroom":   4000,
	"kitchen":    5500,
	"balcony":    4000,
	"studyRoom":  4500,
}

// frequencyMultipliers maps times-per-week to a price multiplier for
// cleaning services without option tiers. Each additional weekly occurrence
// costs less than the first.
var frequencyMultipliers = map[int]float64{
	1: 1.0,
	2: 1.9,
	3: 2.7,
	4: 3.4,
	5: 4.0,
	6: 4.55,
	7: 5.0,
}

// RoomRate returns the weekly rate for one room of the given type.
func RoomRate(room string) int {
	return roomRates[room]
}

// FrequencyMultiplier returns the multiplier for the given times-per-week.
// Out-of-range inputs clamp to the single-occurrence multiplier.
func FrequencyMultiplier(timesPerWeek int) float64 {
	if m, ok := frequencyMultipliers[timesPerWeek]; ok {
		return m
	}
	if timesPerWeek > 7 {
		return frequencyMultipliers[7]
	}
	return 1.0
}

// Quote computes the monthly price for one configured service. It is pure:
// the same configuration always yields the same integer amount, so callers
// may recompute at any time instead of persisting the result.
func Quote(svc models.Service, opt *models.ServiceOption, details models.ServiceDetails, schedule models.ServiceSchedule) int {
	switch svc.Category {
	case models.CategoryCleaning:
		if details.Cleaning == nil {
			return svc.BasePrice
		}
		return cleaningPrice(svc, opt, *details.Cleaning, schedule)
	case models.CategoryLaundry:
		if details.Laundry == nil {
			return svc.BasePrice
		}
		return laundryPrice(svc, opt, *details.Laundry, schedule)
	case models.CategoryCooking:
		if details.Cooking == nil {
			return svc.BasePrice
		}
		return cookingPrice(svc, opt, *details.Cooking)
	default:
		return svc.BasePrice
	}
}

func cleaningPrice(svc models.Service, opt *models.ServiceOption, d models.CleaningDetails, schedule models.ServiceSchedule) int {
	base := svc.BasePrice
	if opt != nil {
		base = opt.Price
	}

	rooms := base +
		roomRates["bedroom"]*d.Rooms.Bedroom +
		roomRates["livingRoom"]*d.Rooms.LivingRoom +
		roomRates["bathroom"]*d.Rooms.Bathroom +
		roomRates["kitchen"]*d.Rooms.Kitchen +
		roomRates["balcony"]*d.Rooms.Balcony +
		roomRates["studyRoom"]*d.Rooms.StudyRoom

	// Services without option tiers price by schedule density instead.
	if !svc.HasOptions() && len(schedule.Days) > 0 {
		return roundInt(float64(rooms) * FrequencyMultiplier(len(schedule.Days)))
	}
	return rooms
}

func laundryPrice(svc models.Service, opt *models.ServiceOption, d models.LaundryDetails, schedule models.ServiceSchedule) int {
	perItem := svc.BasePrice
	if opt != nil {
		perItem = opt.Price
	}

	bags := d.Bags
	if bags < 1 {
		bags = 1
	}
	total := float64(bags * ItemsPerBag * perItem)

	// Recurring pickups get a flat discount.
	if len(schedule.Days) > 1 {
		total *= 1 - recurringLaundryDiscount
	}
	return roundInt(total)
}

func cookingPrice(svc models.Service, opt *models.ServiceOption, d models.CookingDetails) int {
	perMeal := svc.BasePrice
	if opt != nil {
		perMeal = opt.Price
	}
	return d.TotalMeals() * perMeal
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
