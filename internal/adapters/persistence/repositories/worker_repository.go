package repositories

import (
	"context"

	"permitdesk/internal/adapters/persistence/models"
	"permitdesk/internal/core/domain"

	"gorm.io/gorm"
)

// workerRepository implements WorkerRepository
type workerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository creates a new worker repository
func NewWorkerRepository(db *gorm.DB) WorkerRepository {
	return &workerRepository{db: db}
}

// Create creates a new worker
func (r *workerRepository) Create(ctx context.Context, worker *models.Worker) error {
	return r.db.WithContext(ctx).Create(worker).Error
}

// GetByID gets a worker by ID with its area preloaded
func (r *workerRepository) GetByID(ctx context.Context, id uint) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.WithContext(ctx).Preload("Area").Where("id = ?", id).First(&worker).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

// GetByEmail gets a worker by email
func (r *workerRepository) GetByEmail(ctx context.Context, email string) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.WithContext(ctx).Preload("Area").Where("email = ?", email).First(&worker).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

// GetCoordinatorByArea gets the coordinator of an area, if any
func (r *workerRepository) GetCoordinatorByArea(ctx context.Context, areaID uint) (*models.Worker, error) {
	var worker models.Worker
	err := r.db.WithContext(ctx).
		Where("area_id = ? AND role = ?", areaID, domain.RoleCoordinator).
		First(&worker).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

// Update updates a worker
func (r *workerRepository) Update(ctx context.Context, worker *models.Worker) error {
	return r.db.WithContext(ctx).Save(worker).Error
}

// Delete soft deletes a worker
func (r *workerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Worker{}, id).Error
}

// List lists all workers ordered by full name
func (r *workerRepository) List(ctx context.Context) ([]*models.Worker, error) {
	var workers []*models.Worker
	err := r.db.WithContext(ctx).
		Preload("Area").
		Order("full_name asc").
		Find(&workers).Error
	return workers, err
}

// ExistsByEmail checks if an email is already registered
func (r *workerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Worker{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// CountAdmins counts workers with the ADMIN role
func (r *workerRepository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Worker{}).
		Where("role = ?", domain.RoleAdmin).Count(&count).Error
	return count, err
}
