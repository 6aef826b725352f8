package catalog

import (
	"context"

	catalogRepo "nestcare/database/repository/catalog"
	"nestcare/models"
)

// CatalogService exposes the immutable service catalog to the wizard and the
// public API.
type CatalogService interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	GetServiceByID(ctx context.Context, id string) (*models.Service, error)
	// SeedDefaults loads the built-in offerings when the catalog is empty.
	SeedDefaults(ctx context.Context) error
}

// DefaultCatalogService implements CatalogService over the catalog
// repository.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}
