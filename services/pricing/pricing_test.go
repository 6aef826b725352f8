package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestcare/models"
)

func cleaningService(withOptions bool) models.Service {
	svc := models.Service{
		ID:        "svc-cleaning",
		Label:     "Home Cleaning",
		Category:  models.CategoryCleaning,
		BasePrice: 10000,
		Active:    true,
	}
	if withOptions {
		svc.Options = []models.ServiceOption{
			{ID: "opt-standard", Label: "Standard Clean", Price: 15000},
			{ID: "opt-deep", Label: "Deep Clean", Price: 25000},
		}
	}
	return svc
}

func laundryService() models.Service {
	return models.Service{
		ID:        "svc-laundry",
		Label:     "Laundry",
		Category:  models.CategoryLaundry,
		BasePrice: 430,
		Options: []models.ServiceOption{
			{ID: "opt-wash-fold", Label: "Wash & Fold", Price: 430},
			{ID: "opt-wash-iron", Label: "Wash & Iron", Price: 600},
		},
		Active: true,
	}
}

func TestCleaningPriceWithOption(t *testing.T) {
	svc := cleaningService(true)
	svc.Options[0].Price = 50

	details := models.NewCleaningDetails(models.PropertyFlat)
	details.Cleaning.Rooms.Bedroom = 1

	schedule := models.ServiceSchedule{Days: []models.Weekday{models.Monday}, Slot: models.TimeSlotMorning}
	price := Quote(svc, &svc.Options[0], details, schedule)

	// option price + one bedroom at the canonical rate
	assert.Equal(t, 50+5000, price)
}

func TestCleaningPriceSumsRoomRates(t *testing.T) {
	svc := cleaningService(true)
	details := models.NewCleaningDetails(models.PropertyHouse)
	details.Cleaning.Rooms = models.RoomQuantities{
		Bedroom:    2,
		LivingRoom: 1,
		Bathroom:   2,
		Kitchen:    1,
	}

	price := Quote(svc, &svc.Options[1], details, models.ServiceSchedule{Days: []models.Weekday{models.Friday}})
	expected := 25000 + 2*5000 + 4500 + 2*4000 + 5500
	assert.Equal(t, expected, price)
}

func TestCleaningFrequencyMultiplierWithoutOptions(t *testing.T) {
	svc := cleaningService(false)
	details := models.NewCleaningDetails(models.PropertyFlat)
	details.Cleaning.Rooms.Bedroom = 1

	once := Quote(svc, nil, details, models.ServiceSchedule{Days: []models.Weekday{models.Monday}})
	assert.Equal(t, 15000, once)

	twice := Quote(svc, nil, details, models.ServiceSchedule{Days: []models.Weekday{models.Monday, models.Thursday}})
	assert.Equal(t, 28500, twice) // 15000 * 1.9

	// Each additional weekly occurrence costs less than the first.
	daily := Quote(svc, nil, details, models.ServiceSchedule{Days: models.AllWeekdays})
	assert.Equal(t, 75000, daily) // 15000 * 5.0
}

func TestCleaningPriceMonotonicInRoomCounts(t *testing.T) {
	svc := cleaningService(true)
	details := models.NewCleaningDetails(models.PropertyFlat)
	schedule := models.ServiceSchedule{Days: []models.Weekday{models.Monday}}

	prev := Quote(svc, &svc.Options[0], details, schedule)
	for i := 1; i <= 5; i++ {
		details.Cleaning.Rooms.Bathroom = i
		price := Quote(svc, &svc.Options[0], details, schedule)
		assert.GreaterOrEqual(t, price, prev)
		prev = price
	}
}

func TestLaundrySingleDayPrice(t *testing.T) {
	svc := laundryService()
	details := models.NewLaundryDetails(models.WashAndFold)

	schedule := models.ServiceSchedule{Days: []models.Weekday{models.Monday}, Slot: models.TimeSlotMorning}
	price := Quote(svc, &svc.Options[0], details, schedule)

	// one bag, 30 items at 430/item, no recurring discount
	assert.Equal(t, 12900, price)
}

func TestLaundryRecurringDiscount(t *testing.T) {
	svc := laundryService()
	details := models.NewLaundryDetails(models.WashAndFold)

	single := models.ServiceSchedule{Days: []models.Weekday{models.Monday}}
	double := models.ServiceSchedule{Days: []models.Weekday{models.Monday, models.Thursday}}

	base := Quote(svc, &svc.Options[0], details, single)
	discounted := Quote(svc, &svc.Options[0], details, double)

	require.Equal(t, 12900, base)
	assert.Equal(t, 11610, discounted) // exactly 90% of the single-day price
}

func TestLaundryPriceMonotonicInBags(t *testing.T) {
	svc := laundryService()
	details := models.NewLaundryDetails(models.WashAndIron)
	schedule := models.ServiceSchedule{Days: []models.Weekday{models.Saturday}}

	prev := 0
	for bags := 1; bags <= 4; bags++ {
		details.Laundry.Bags = bags
		price := Quote(svc, &svc.Options[1], details, schedule)
		assert.Greater(t, price, prev)
		prev = price
	}
}

func TestCookingPriceSumsMealsOverScheduledDays(t *testing.T) {
	svc := models.Service{
		ID:        "svc-cooking",
		Category:  models.CategoryCooking,
		BasePrice: 1500,
		Active:    true,
	}
	details := models.NewCookingDetails(models.MealStandard)
	details.Cooking.MealsPerDay = map[models.Weekday]int{
		models.Monday:   2,
		models.Thursday: 1,
	}

	schedule := models.ServiceSchedule{Days: []models.Weekday{models.Monday, models.Thursday}}
	assert.Equal(t, 4500, Quote(svc, nil, details, schedule))
}

func TestFallbackPriceForUnruledCategories(t *testing.T) {
	svc := models.Service{
		ID:        "svc-pest-control",
		Category:  models.CategoryPestControl,
		BasePrice: 20000,
		Active:    true,
	}
	details := models.NewPestControlDetails("fumigation", "severe", []string{"kitchen"})
	assert.Equal(t, 20000, Quote(svc, nil, details, models.ServiceSchedule{}))
}

func TestQuoteIsIdempotent(t *testing.T) {
	svc := laundryService()
	details := models.NewLaundryDetails(models.WashAndFold)
	details.Laundry.Bags = 3
	schedule := models.ServiceSchedule{Days: []models.Weekday{models.Monday, models.Friday}}

	first := Quote(svc, &svc.Options[0], details, schedule)
	second := Quote(svc, &svc.Options[0], details, schedule)
	assert.Equal(t, first, second)
}

func TestFrequencyMultiplierClamps(t *testing.T) {
	assert.Equal(t, 1.0, FrequencyMultiplier(0))
	assert.Equal(t, 1.0, FrequencyMultiplier(1))
	assert.Equal(t, 5.0, FrequencyMultiplier(7))
	assert.Equal(t, 5.0, FrequencyMultiplier(9))
}
