package repositories

import (
	"context"

	"permitdesk/internal/adapters/persistence/models"
)

// WorkerRepository defines worker persistence operations
type WorkerRepository interface {
	Create(ctx context.Context, worker *models.Worker) error
	GetByID(ctx context.Context, id uint) (*models.Worker, error)
	GetByEmail(ctx context.Context, email string) (*models.Worker, error)
	GetCoordinatorByArea(ctx context.Context, areaID uint) (*models.Worker, error)
	Update(ctx context.Context, worker *models.Worker) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.Worker, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountAdmins(ctx context.Context) (int64, error)
}

// AreaRepository defines area persistence operations
type AreaRepository interface {
	List(ctx context.Context) ([]*models.Area, error)
	GetByID(ctx context.Context, id uint) (*models.Area, error)
	GetByName(ctx context.Context, name string) (*models.Area, error)
	Create(ctx context.Context, area *models.Area) error
}

// LeaveRequestRepository defines request persistence operations.
// Decide is the only multi-record write: it scopes the PENDING check,
// the balance check-and-decrement and the status/approver update in a
// single database transaction.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request *models.LeaveRequest) error
	GetByID(ctx context.Context, id uint) (*models.LeaveRequest, error)
	ListByWorker(ctx context.Context, workerID uint) ([]*models.LeaveRequest, error)
	ListByArea(ctx context.Context, areaID uint, offset, limit int) ([]*models.LeaveRequest, int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]*models.LeaveRequest, int64, error)
	CountByWorker(ctx context.Context, workerID uint) (int64, error)
	Decide(ctx context.Context, id uint, status string, approverID uint, deduct float64) (*models.LeaveRequest, error)
}

// RefreshTokenRepository defines refresh token persistence operations
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByWorkerID(ctx context.Context, workerID uint) error
	DeleteExpired(ctx context.Context) error
}
