package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"nestcare/models"
	"nestcare/utils"
)

// ListServices returns the active catalog entries.
func (s *DefaultCatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	services, err := s.Repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service catalog: %w", err)
	}
	return services, nil
}

// GetServiceByID returns one active catalog entry.
func (s *DefaultCatalogService) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil || !svc.Active {
		return nil, fmt.Errorf("service with id %s not found", id)
	}
	return svc, nil
}

// SeedDefaults loads the built-in offerings into an empty catalog. Existing
// entries are never overwritten.
func (s *DefaultCatalogService) SeedDefaults(ctx context.Context) error {
	logger := utils.GetLogger()

	count, err := s.Repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check catalog state: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, svc := range DefaultServices() {
		if err := s.Repo.Upsert(ctx, svc); err != nil {
			return fmt.Errorf("failed to seed service %s: %w", svc.ID, err)
		}
	}
	logger.Info("SeedDefaults: seeded service catalog",
		zap.Int("services", len(DefaultServices())))
	return nil
}
