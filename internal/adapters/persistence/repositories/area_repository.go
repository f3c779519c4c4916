package repositories

import (
	"context"

	"permitdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// areaRepository implements AreaRepository
type areaRepository struct {
	db *gorm.DB
}

// NewAreaRepository creates a new area repository
func NewAreaRepository(db *gorm.DB) AreaRepository {
	return &areaRepository{db: db}
}

// List lists all areas ordered by name
func (r *areaRepository) List(ctx context.Context) ([]*models.Area, error) {
	var areas []*models.Area
	err := r.db.WithContext(ctx).Order("name asc").Find(&areas).Error
	return areas, err
}

// GetByID gets an area by ID
func (r *areaRepository) GetByID(ctx context.Context, id uint) (*models.Area, error) {
	var area models.Area
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&area).Error
	if err != nil {
		return nil, err
	}
	return &area, nil
}

// GetByName gets an area by its unique name
func (r *areaRepository) GetByName(ctx context.Context, name string) (*models.Area, error) {
	var area models.Area
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&area).Error
	if err != nil {
		return nil, err
	}
	return &area, nil
}

// Create creates a new area (used by the seeder)
func (r *areaRepository) Create(ctx context.Context, area *models.Area) error {
	return r.db.WithContext(ctx).Create(area).Error
}
