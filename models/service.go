package models

// Category identifies the kind of home service a catalog entry provides.
type Category string

const (
	CategoryCleaning    Category = "cleaning"
	CategoryLaundry     Category = "laundry"
	CategoryCooking     Category = "cooking"
	CategoryPestControl Category = "pest_control"
	CategoryErrands     Category = "errands"
)

// Service is an immutable catalog offering (cleaning, laundry, cooking, ...).
// Loaded once from the catalog repository; never mutated by the wizard.
type Service struct {
	ID         string          `bson:"id" json:"id"`
	Label      string          `bson:"label" json:"label"`
	Icon       string          `bson:"icon" json:"icon,omitempty"`
	Category   Category        `bson:"category" json:"category"`
	BasePrice  int             `bson:"basePrice" json:"basePrice"`
	Options    []ServiceOption `bson:"options" json:"options,omitempty"`
	Inclusions []string        `bson:"inclusions" json:"inclusions,omitempty"`
	Active     bool            `bson:"active" json:"active"`
}

// ServiceOption is a sub-tier of a Service (e.g., Standard vs Deep cleaning).
type ServiceOption struct {
	ID          string      `bson:"id" json:"id"`
	Label       string      `bson:"label" json:"label"`
	Description string      `bson:"description" json:"description,omitempty"`
	Price       int         `bson:"price" json:"price"`
	ExtraItems  []ExtraItem `bson:"extraItems" json:"extraItems,omitempty"`
}

// ExtraItem is informational extra-pricing display data (laundry only).
type ExtraItem struct {
	Name  string `bson:"name" json:"name"`
	Count int    `bson:"count" json:"count"`
	Cost  int    `bson:"cost" json:"cost"`
}

// HasOptions reports whether selecting this service requires an option pick.
func (s Service) HasOptions() bool {
	return len(s.Options) > 0
}

// OptionByID returns the option with the given id, or nil.
func (s Service) OptionByID(id string) *ServiceOption {
	for i := range s.Options {
		if s.Options[i].ID == id {
			return &s.Options[i]
		}
	}
	return nil
}
