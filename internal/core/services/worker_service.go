package services

import (
	"context"
	"errors"
	"strings"

	"permitdesk/internal/adapters/persistence/models"
	"permitdesk/internal/adapters/persistence/repositories"
	"permitdesk/internal/config"
	"permitdesk/internal/core/domain"
	"permitdesk/internal/pkg/password"

	"gorm.io/gorm"
)

// Worker service errors
var (
	ErrWeakPassword     = errors.New("password must be at least 8 characters")
	ErrMissingFields    = errors.New("email, full name, password, role and area are required")
	ErrUnknownRole      = errors.New("unknown role")
	ErrAreaNotFound     = errors.New("area not found")
	ErrCannotDeleteSelf = errors.New("cannot delete your own account")
)

// WorkerService handles worker account management (admin only)
type WorkerService struct {
	workerRepo  repositories.WorkerRepository
	areaRepo    repositories.AreaRepository
	requestRepo repositories.LeaveRequestRepository
	cfg         *config.Config
}

// NewWorkerService creates a new worker service
func NewWorkerService(
	workerRepo repositories.WorkerRepository,
	areaRepo repositories.AreaRepository,
	requestRepo repositories.LeaveRequestRepository,
	cfg *config.Config,
) *WorkerService {
	return &WorkerService{
		workerRepo:  workerRepo,
		areaRepo:    areaRepo,
		requestRepo: requestRepo,
		cfg:         cfg,
	}
}

// CreateWorkerInput represents worker creation input
type CreateWorkerInput struct {
	Email        string   `json:"email"`
	FullName     string   `json:"full_name"`
	Password     string   `json:"password"`
	Role         string   `json:"role"`
	AreaID       uint     `json:"area_id"`
	LeaveBalance *float64 `json:"leave_balance"`
}

// UpdateWorkerInput represents worker update input; nil fields are left
// untouched
type UpdateWorkerInput struct {
	Email        *string  `json:"email"`
	FullName     *string  `json:"full_name"`
	Password     *string  `json:"password"`
	Role         *string  `json:"role"`
	AreaID       *uint    `json:"area_id"`
	LeaveBalance *float64 `json:"leave_balance"`
}

// List lists all workers with their areas
func (s *WorkerService) List(ctx context.Context) ([]*models.WorkerResponse, error) {
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.WorkerResponse, len(workers))
	for i, worker := range workers {
		responses[i] = worker.ToResponse()
	}
	return responses, nil
}

// Create creates a new worker. The leave balance falls back to the
// configured policy default when the admin does not provide one.
func (s *WorkerService) Create(ctx context.Context, input *CreateWorkerInput) (*models.WorkerResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.FullName == "" || input.Password == "" || input.Role == "" || input.AreaID == 0 {
		return nil, ErrMissingFields
	}
	if !domain.ValidRole(input.Role) {
		return nil, ErrUnknownRole
	}
	if !password.Acceptable(input.Password) {
		return nil, ErrWeakPassword
	}

	if _, err := s.areaRepo.GetByID(ctx, input.AreaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAreaNotFound
		}
		return nil, err
	}

	exists, err := s.workerRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyInUse
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	balance := s.cfg.Leave.DefaultDays
	if input.LeaveBalance != nil && *input.LeaveBalance >= 0 {
		balance = *input.LeaveBalance
	}

	worker := &models.Worker{
		Email:        email,
		FullName:     input.FullName,
		Password:     hashed,
		Role:         input.Role,
		AreaID:       input.AreaID,
		LeaveBalance: balance,
	}

	if err := s.workerRepo.Create(ctx, worker); err != nil {
		return nil, err
	}

	created, err := s.workerRepo.GetByID(ctx, worker.ID)
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}

// Update updates an existing worker
func (s *WorkerService) Update(ctx context.Context, id uint, input *UpdateWorkerInput) (*models.WorkerResponse, error) {
	worker, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWorkerNotFound
		}
		return nil, err
	}

	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != worker.Email {
			exists, err := s.workerRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, domain.ErrEmailAlreadyInUse
			}
			worker.Email = email
		}
	}

	if input.FullName != nil && *input.FullName != "" {
		worker.FullName = *input.FullName
	}

	// An empty password in the payload means "leave it alone"
	if input.Password != nil && *input.Password != "" {
		if !password.Acceptable(*input.Password) {
			return nil, ErrWeakPassword
		}
		hashed, err := password.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		worker.Password = hashed
	}

	if input.Role != nil {
		if !domain.ValidRole(*input.Role) {
			return nil, ErrUnknownRole
		}
		worker.Role = *input.Role
	}

	if input.AreaID != nil {
		if _, err := s.areaRepo.GetByID(ctx, *input.AreaID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAreaNotFound
			}
			return nil, err
		}
		worker.AreaID = *input.AreaID
	}

	if input.LeaveBalance != nil && *input.LeaveBalance >= 0 {
		worker.LeaveBalance = *input.LeaveBalance
	}

	if err := s.workerRepo.Update(ctx, worker); err != nil {
		return nil, err
	}

	updated, err := s.workerRepo.GetByID(ctx, worker.ID)
	if err != nil {
		return nil, err
	}
	return updated.ToResponse(), nil
}

// Delete removes a worker. Workers with requests on record are kept for
// the audit trail and cannot be deleted.
func (s *WorkerService) Delete(ctx context.Context, id uint, adminID uint) error {
	if id == adminID {
		return ErrCannotDeleteSelf
	}

	if _, err := s.workerRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrWorkerNotFound
		}
		return err
	}

	count, err := s.requestRepo.CountByWorker(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrWorkerHasRequests
	}

	return s.workerRepo.Delete(ctx, id)
}
