package repositories

import (
	"context"
	"errors"

	"permitdesk/internal/adapters/persistence/models"
	"permitdesk/internal/core/domain"

	"gorm.io/gorm"
)

// leaveRequestRepository implements LeaveRequestRepository
type leaveRequestRepository struct {
	db *gorm.DB
}

// NewLeaveRequestRepository creates a new leave request repository
func NewLeaveRequestRepository(db *gorm.DB) LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create creates a new leave request
func (r *leaveRequestRepository) Create(ctx context.Context, request *models.LeaveRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// GetByID gets a request with worker, area and approver preloaded
func (r *leaveRequestRepository) GetByID(ctx context.Context, id uint) (*models.LeaveRequest, error) {
	var request models.LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("Worker").
		Preload("Worker.Area").
		Preload("Approver").
		Where("id = ?", id).
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// ListByWorker lists a worker's own requests, newest start date first
func (r *leaveRequestRepository) ListByWorker(ctx context.Context, workerID uint) ([]*models.LeaveRequest, error) {
	var requests []*models.LeaveRequest
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("start_date desc").
		Find(&requests).Error
	return requests, err
}

// ListByArea lists requests whose owner belongs to the given area,
// oldest start date first, with pagination
func (r *leaveRequestRepository) ListByArea(ctx context.Context, areaID uint, offset, limit int) ([]*models.LeaveRequest, int64, error) {
	var requests []*models.LeaveRequest
	var total int64

	base := r.db.WithContext(ctx).Model(&models.LeaveRequest{}).
		Joins("JOIN workers ON workers.id = leave_requests.worker_id").
		Where("workers.area_id = ?", areaID)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.
		Preload("Worker").
		Preload("Worker.Area").
		Order("leave_requests.start_date asc").
		Offset(offset).Limit(limit).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// ListAll lists every request regardless of area (admin view)
func (r *leaveRequestRepository) ListAll(ctx context.Context, offset, limit int) ([]*models.LeaveRequest, int64, error) {
	var requests []*models.LeaveRequest
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.LeaveRequest{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Worker").
		Preload("Worker.Area").
		Order("start_date asc").
		Offset(offset).Limit(limit).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// CountByWorker counts requests owned by a worker
func (r *leaveRequestRepository) CountByWorker(ctx context.Context, workerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.LeaveRequest{}).
		Where("worker_id = ?", workerID).Count(&count).Error
	return count, err
}

// Decide applies a decision to a PENDING request. When deduct > 0 the
// worker's balance is decremented in the same transaction; both writes
// commit together or not at all. Guarded updates (WHERE status/balance)
// make concurrent decisions safe: the loser of a race sees zero affected
// rows and the whole transaction rolls back.
func (r *leaveRequestRepository) Decide(ctx context.Context, id uint, status string, approverID uint, deduct float64) (*models.LeaveRequest, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var request models.LeaveRequest
		if err := tx.Where("id = ?", id).First(&request).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRequestNotFound
			}
			return err
		}

		if request.Status != domain.StatusPending {
			return domain.ErrAlreadyDecided
		}

		if deduct > 0 {
			res := tx.Model(&models.Worker{}).
				Where("id = ? AND leave_balance >= ?", request.WorkerID, deduct).
				UpdateColumn("leave_balance", gorm.Expr("leave_balance - ?", deduct))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return domain.ErrInsufficientDays
			}
		}

		res := tx.Model(&models.LeaveRequest{}).
			Where("id = ? AND status = ?", id, domain.StatusPending).
			Updates(map[string]interface{}{
				"status":      status,
				"approver_id": approverID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAlreadyDecided
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}
