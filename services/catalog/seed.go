package catalog

import "nestcare/models"

// DefaultServices returns the built-in catalog. Prices are integer naira;
// laundry option prices are per item, cooking base price is per meal.
func DefaultServices() []models.Service {
	return []models.Service{
		{
			ID:        "svc-cleaning",
			Label:     "Home Cleaning",
			Icon:      "broom",
			Category:  models.CategoryCleaning,
			BasePrice: 10000,
			Options: []models.ServiceOption{
				{
					ID:          "opt-standard-clean",
					Label:       "Standard Clean",
					Description: "Sweeping, mopping, dusting and surface wipe-down.",
					Price:       15000,
				},
				{
					ID:          "opt-deep-clean",
					Label:       "Deep Clean",
					Description: "Standard clean plus appliances, grout and under-furniture.",
					Price:       25000,
				},
			},
			Inclusions: []string{
				"All cleaning materials provided",
				"Vetted and trained cleaners",
				"Same cleaner on every visit",
			},
			Active: true,
		},
		{
			ID:        "svc-laundry",
			Label:     "Laundry & Dry Cleaning",
			Icon:      "washing-machine",
			Category:  models.CategoryLaundry,
			BasePrice: 430,
			Options: []models.ServiceOption{
				{
					ID:          "opt-wash-fold",
					Label:       "Wash & Fold",
					Description: "Machine wash, tumble dry and neat folding.",
					Price:       430,
					ExtraItems: []models.ExtraItem{
						{Name: "Duvet", Count: 1, Cost: 3500},
						{Name: "Bedsheet set", Count: 1, Cost: 2000},
					},
				},
				{
					ID:          "opt-wash-iron",
					Label:       "Wash & Iron",
					Description: "Wash & fold plus pressing.",
					Price:       600,
					ExtraItems: []models.ExtraItem{
						{Name: "Duvet", Count: 1, Cost: 4000},
						{Name: "Curtain panel", Count: 1, Cost: 2500},
					},
				},
				{
					ID:          "opt-dry-clean",
					Label:       "Dry Clean",
					Description: "Professional dry cleaning for delicate garments.",
					Price:       900,
				},
			},
			Inclusions: []string{
				"Free pickup and delivery",
				"48-hour turnaround",
			},
			Active: true,
		},
		{
			ID:        "svc-cooking",
			Label:     "Meal Prep & Cooking",
			Icon:      "chef-hat",
			Category:  models.CategoryCooking,
			BasePrice: 1500,
			Inclusions: []string{
				"Menu planned around your preferences",
				"Groceries billed at cost",
			},
			Active: true,
		},
		{
			ID:        "svc-pest-control",
			Label:     "Pest Control",
			Icon:      "bug",
			Category:  models.CategoryPestControl,
			BasePrice: 20000,
			Inclusions: []string{
				"Child and pet safe treatments",
				"Free re-treatment within 30 days",
			},
			Active: true,
		},
	}
}
