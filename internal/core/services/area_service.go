package services

import (
	"context"

	"permitdesk/internal/adapters/persistence/models"
	"permitdesk/internal/adapters/persistence/repositories"
)

// AreaService exposes the area catalog. Areas have no lifecycle of
// their own beyond seeding.
type AreaService struct {
	areaRepo repositories.AreaRepository
}

// NewAreaService creates a new area service
func NewAreaService(areaRepo repositories.AreaRepository) *AreaService {
	return &AreaService{areaRepo: areaRepo}
}

// List lists all areas ordered by name
func (s *AreaService) List(ctx context.Context) ([]*models.Area, error) {
	return s.areaRepo.List(ctx)
}
