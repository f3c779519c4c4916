package services

import (
	"context"
	"errors"
	"time"

	"permitdesk/internal/adapters/persistence/models"
	"permitdesk/internal/adapters/persistence/repositories"
	"permitdesk/internal/core/domain"
	"permitdesk/internal/pkg/workdays"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ApprovalNotifier dispatches the coordinator notice for an approved
// request. Implementations must treat delivery as best effort; the
// request service never inspects the outcome beyond logging it.
type ApprovalNotifier interface {
	NotifyApproval(coordinator *models.Worker, request *models.LeaveRequest) error
}

// RequestService handles the leave request lifecycle: validation,
// creation, the decision transaction and the notification trigger.
type RequestService struct {
	requestRepo repositories.LeaveRequestRepository
	workerRepo  repositories.WorkerRepository
	notifier    ApprovalNotifier
	now         func() time.Time
}

// NewRequestService creates a new request service
func NewRequestService(
	requestRepo repositories.LeaveRequestRepository,
	workerRepo repositories.WorkerRepository,
	notifier ApprovalNotifier,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		workerRepo:  workerRepo,
		notifier:    notifier,
		now:         time.Now,
	}
}

// CreateRequestInput represents creation input
type CreateRequestInput struct {
	Type      string    `json:"type"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Shift     string    `json:"shift"`
	Reason    string    `json:"reason"`
}

// ValidateCreate enforces the creation rules in order; the first failing
// rule wins and nothing is persisted. balance is the submitting worker's
// current administrative-leave balance, read by Create.
func ValidateCreate(input *CreateRequestInput, balance float64, now time.Time) error {
	if !domain.ValidRequestType(input.Type) {
		return domain.ErrInvalidRequestType
	}
	if !domain.ValidShift(input.Shift) {
		return domain.ErrInvalidShift
	}
	if input.EndDate.Before(input.StartDate) {
		return domain.ErrEndBeforeStart
	}

	if input.Type == domain.TypeAdministrative {
		if workdays.AdvanceNotice(input.StartDate, now) < domain.MinAdvanceNotice {
			return domain.ErrAdvanceNotice
		}
		if input.Reason == "" {
			return domain.ErrReasonRequired
		}
		if !domain.ValidReason(input.Reason) {
			return domain.ErrReasonNotInCatalog
		}
		if !input.StartDate.Equal(input.EndDate) {
			return domain.ErrAdminMultiDay
		}
		if domain.DayCost(input.Shift) > balance {
			return domain.ErrInsufficientDays
		}
	}

	if !input.StartDate.Equal(input.EndDate) && input.Shift != domain.ShiftFull {
		return domain.ErrMultiDayNotFull
	}

	return nil
}

// Create validates and persists a new PENDING request for workerID.
// No notification is sent at creation time.
func (s *RequestService) Create(ctx context.Context, workerID uint, input *CreateRequestInput) (*models.LeaveRequest, error) {
	worker, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWorkerNotFound
		}
		return nil, err
	}

	if err := ValidateCreate(input, worker.LeaveBalance, s.now()); err != nil {
		return nil, err
	}

	request := &models.LeaveRequest{
		Type:      input.Type,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Shift:     input.Shift,
		Status:    domain.StatusPending,
		WorkerID:  worker.ID,
	}
	if input.Reason != "" {
		reason := input.Reason
		request.Reason = &reason
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"request_id": request.ID,
		"worker_id":  worker.ID,
		"type":       request.Type,
	}).Info("leave request created")

	return request, nil
}

// ListMine returns the worker's own requests, newest start date first
func (s *RequestService) ListMine(ctx context.Context, workerID uint) ([]*models.LeaveRequest, error) {
	return s.requestRepo.ListByWorker(ctx, workerID)
}

// ListArea returns the requests visible to viewerID: the viewer's area
// for coordinators, every area for admins.
func (s *RequestService) ListArea(ctx context.Context, viewerID uint, offset, limit int) ([]*models.LeaveRequest, int64, error) {
	viewer, err := s.workerRepo.GetByID(ctx, viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, domain.ErrWorkerNotFound
		}
		return nil, 0, err
	}

	if viewer.Role == domain.RoleAdmin {
		return s.requestRepo.ListAll(ctx, offset, limit)
	}
	return s.requestRepo.ListByArea(ctx, viewer.AreaID, offset, limit)
}

// Get returns a single request with its relations
func (s *RequestService) Get(ctx context.Context, id uint) (*models.LeaveRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return request, nil
}

// Decide applies an APPROVED or REJECTED decision to a PENDING request
// on behalf of approverID. Administrative approvals re-check and
// decrement the owner's balance atomically with the status change; the
// coordinator notice goes out asynchronously after a successful
// approval and never blocks or fails the decision.
func (s *RequestService) Decide(ctx context.Context, requestID uint, status string, approverID uint) (*models.LeaveRequest, error) {
	if !domain.DecisionStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	request, err := s.Get(ctx, requestID)
	if err != nil {
		return nil, err
	}

	var deduct float64
	if request.Type == domain.TypeAdministrative && status == domain.StatusApproved {
		deduct = domain.DayCost(request.Shift)
	}

	updated, err := s.requestRepo.Decide(ctx, requestID, status, approverID, deduct)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"request_id":  updated.ID,
		"status":      updated.Status,
		"approver_id": approverID,
		"deducted":    deduct,
	}).Info("leave request decided")

	if status == domain.StatusApproved {
		go s.dispatchApprovalNotice(updated)
	}

	return updated, nil
}

// dispatchApprovalNotice looks up the coordinator of the requester's
// area and sends the approval notice. Runs detached from the decision:
// a missing coordinator or a delivery failure is only logged.
func (s *RequestService) dispatchApprovalNotice(request *models.LeaveRequest) {
	if s.notifier == nil || request.Worker == nil {
		return
	}

	ctx := context.Background()
	coordinator, err := s.workerRepo.GetCoordinatorByArea(ctx, request.Worker.AreaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithField("area_id", request.Worker.AreaID).
				Info("no coordinator for area, approval notice skipped")
			return
		}
		logrus.WithError(err).Error("coordinator lookup failed, approval notice skipped")
		return
	}

	if coordinator.Email == "" {
		logrus.WithField("coordinator_id", coordinator.ID).
			Info("coordinator has no email, approval notice skipped")
		return
	}

	if err := s.notifier.NotifyApproval(coordinator, request); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"request_id": request.ID,
			"recipient":  coordinator.Email,
		}).Error("approval notice delivery failed")
	}
}
