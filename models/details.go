package models

// PropertyType describes the dwelling a cleaning service covers.
type PropertyType string

const (
	PropertyFlat      PropertyType = "flat"
	PropertyApartment PropertyType = "apartment"
	PropertyHouse     PropertyType = "house"
	PropertyStudio    PropertyType = "studio"
)

// LaundryType selects the handling tier for a laundry service.
type LaundryType string

const (
	WashAndFold LaundryType = "wash_and_fold"
	WashAndIron LaundryType = "wash_and_iron"
	DryClean    LaundryType = "dry_clean"
)

// MealType selects the cooking tier.
type MealType string

const (
	MealBasic    MealType = "basic"
	MealStandard MealType = "standard"
)

// RoomQuantities holds the per-room counts for a cleaning configuration.
// All counts are >= 0; zero counts are kept, never omitted.
type RoomQuantities struct {
	Bedroom    int `bson:"bedroom" json:"bedroom"`
	LivingRoom int `bson:"livingRoom" json:"livingRoom"`
	Bathroom   int `bson:"bathroom" json:"bathroom"`
	Kitchen    int `bson:"kitchen" json:"kitchen"`
	Balcony    int `bson:"balcony" json:"balcony"`
	StudyRoom  int `bson:"studyRoom" json:"studyRoom"`
}

// CleaningDetails is the cleaning-specific configuration.
type CleaningDetails struct {
	PropertyType PropertyType   `bson:"propertyType" json:"propertyType"`
	Rooms        RoomQuantities `bson:"rooms" json:"rooms"`
}

// LaundryDetails is the laundry-specific configuration. Bags is always >= 1.
type LaundryDetails struct {
	Bags        int         `bson:"bags" json:"bags"`
	LaundryType LaundryType `bson:"laundryType" json:"laundryType"`
}

// CookingDetails is the cooking-specific configuration. MealsPerDay maps each
// scheduled weekday to a meal count >= 1; unscheduled days carry no entry.
type CookingDetails struct {
	MealType    MealType        `bson:"mealType" json:"mealType"`
	MealsPerDay map[Weekday]int `bson:"mealsPerDay" json:"mealsPerDay"`
}

// PestControlDetails is the pest-control-specific configuration.
type PestControlDetails struct {
	TreatmentType string   `bson:"treatmentType" json:"treatmentType"`
	Severity      string   `bson:"severity" json:"severity"`
	TargetAreas   []string `bson:"targetAreas" json:"targetAreas"`
}

// ServiceDetails is the category-tagged configuration union. Exactly one
// variant is non-nil, matching the category of the service it is attached
// to; the New*Details constructors are the only intended way to build one.
type ServiceDetails struct {
	Cleaning    *CleaningDetails    `bson:"cleaning,omitempty" json:"cleaning,omitempty"`
	Laundry     *LaundryDetails     `bson:"laundry,omitempty" json:"laundry,omitempty"`
	Cooking     *CookingDetails     `bson:"cooking,omitempty" json:"cooking,omitempty"`
	PestControl *PestControlDetails `bson:"pestControl,omitempty" json:"pestControl,omitempty"`
}

// NewCleaningDetails builds the cleaning variant.
func NewCleaningDetails(property PropertyType) ServiceDetails {
	return ServiceDetails{Cleaning: &CleaningDetails{PropertyType: property}}
}

// NewLaundryDetails builds the laundry variant with the minimum one bag.
func NewLaundryDetails(t LaundryType) ServiceDetails {
	return ServiceDetails{Laundry: &LaundryDetails{Bags: 1, LaundryType: t}}
}

// NewCookingDetails builds the cooking variant with an empty meal map.
func NewCookingDetails(t MealType) ServiceDetails {
	return ServiceDetails{Cooking: &CookingDetails{MealType: t, MealsPerDay: map[Weekday]int{}}}
}

// NewPestControlDetails builds the pest-control variant.
func NewPestControlDetails(treatment, severity string, areas []string) ServiceDetails {
	return ServiceDetails{PestControl: &PestControlDetails{
		TreatmentType: treatment,
		Severity:      severity,
		TargetAreas:   areas,
	}}
}

// DefaultDetailsFor builds the zero-state details variant for a category.
// Categories without a specific configuration (errands) get an empty union.
func DefaultDetailsFor(cat Category) ServiceDetails {
	switch cat {
	case CategoryCleaning:
		return NewCleaningDetails(PropertyFlat)
	case CategoryLaundry:
		return NewLaundryDetails(WashAndFold)
	case CategoryCooking:
		return NewCookingDetails(MealBasic)
	case CategoryPestControl:
		return NewPestControlDetails("general", "mild", nil)
	}
	return ServiceDetails{}
}

// Matches reports whether the populated variant corresponds to the category.
// A mismatch is a programmer error, surfaced by callers as a hard failure.
func (d ServiceDetails) Matches(cat Category) bool {
	switch cat {
	case CategoryCleaning:
		return d.Cleaning != nil
	case CategoryLaundry:
		return d.Laundry != nil
	case CategoryCooking:
		return d.Cooking != nil
	case CategoryPestControl:
		return d.PestControl != nil
	}
	return d.Cleaning == nil && d.Laundry == nil && d.Cooking == nil && d.PestControl == nil
}

// TotalMeals sums the per-day meal counts over the scheduled days.
func (c CookingDetails) TotalMeals() int {
	total := 0
	for _, n := range c.MealsPerDay {
		total += n
	}
	return total
}
