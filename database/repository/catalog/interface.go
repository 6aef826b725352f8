package catalogRepo

import (
	"context"

	"nestcare/models"
)

// CatalogRepository is the data access contract for the service catalog.
type CatalogRepository interface {
	// ListActive returns all active catalog entries.
	ListActive(ctx context.Context) ([]models.Service, error)
	// GetByID returns one catalog entry, or nil when absent.
	GetByID(ctx context.Context, id string) (*models.Service, error)
	// Upsert inserts or replaces a catalog entry by id.
	Upsert(ctx context.Context, svc models.Service) error
	// Count returns the number of catalog entries.
	Count(ctx context.Context) (int64, error)
}
