package service

import (
	"context"

	"gear-rental/internal/domain"
	"gear-rental/internal/repository"
)

// CatalogService defines the interface for the gear catalog.
type CatalogService interface {
	CreateGear(ctx context.Context, params domain.GearParams) (string, error)
	ListGear(ctx context.Context, category string, limit int64) ([]domain.Gear, error)
}

type catalogService struct {
	gearRepo repository.GearRepository
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(gearRepo repository.GearRepository) CatalogService {
	return &catalogService{gearRepo: gearRepo}
}

// CreateGear validates the supplied fields and persists a new catalog entry.
func (s *catalogService) CreateGear(ctx context.Context, params domain.GearParams) (string, error) {
	gear, err := domain.NewGear(params)
	if err != nil {
		return "", err
	}
	return s.gearRepo.Create(ctx, gear)
}

// ListGear returns up to limit catalog entries, optionally filtered by
// category.
func (s *catalogService) ListGear(ctx context.Context, category string, limit int64) ([]domain.Gear, error) {
	return s.gearRepo.List(ctx, category, limit)
}
