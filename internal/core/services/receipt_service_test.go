package services

import (
	"context"
	"fmt"
	"testing"

	"permitdesk/internal/adapters/persistence/models"
	"permitdesk/internal/adapters/persistence/repositories"
	"permitdesk/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func approvedRequest(t *testing.T, db *gorm.DB) *models.LeaveRequest {
	t.Helper()

	area := seedArea(t, db, "Formación")
	worker := seedWorker(t, db, domain.RoleWorker, area.ID, 5.0)
	admin := seedWorker(t, db, domain.RoleAdmin, area.ID, 5.0)

	svc := newRequestService(db, newCapturingNotifier())
	created, err := svc.Create(context.Background(), worker.ID, adminInput("Matrimonio"))
	require.NoError(t, err)

	decided, err := svc.Decide(context.Background(), created.ID, domain.StatusApproved, admin.ID)
	require.NoError(t, err)
	return decided
}

func TestGenerateReceipt(t *testing.T) {
	db := newTestDB(t)
	request := approvedRequest(t, db)

	svc := NewReceiptService(repositories.NewLeaveRequestRepository(db))
	pdfBytes, filename, err := svc.Generate(context.Background(), request.ID)
	require.NoError(t, err)

	require.Greater(t, len(pdfBytes), 4)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
	assert.Equal(t, fmt.Sprintf("Comprobante-Permiso-%d-Ana.pdf", request.ID), filename)
}

func TestGenerateReceiptRejectsPending(t *testing.T) {
	db := newTestDB(t)
	area := seedArea(t, db, "Formación")
	worker := seedWorker(t, db, domain.RoleWorker, area.ID, 5.0)

	reqSvc := newRequestService(db, newCapturingNotifier())
	created, err := reqSvc.Create(context.Background(), worker.ID, adminInput("Matrimonio"))
	require.NoError(t, err)

	svc := NewReceiptService(repositories.NewLeaveRequestRepository(db))
	_, _, err = svc.Generate(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrReceiptNotApproved)
}

func TestGenerateReceiptRequiresApprover(t *testing.T) {
	db := newTestDB(t)
	area := seedArea(t, db, "Formación")
	worker := seedWorker(t, db, domain.RoleWorker, area.ID, 5.0)

	reqSvc := newRequestService(db, newCapturingNotifier())
	created, err := reqSvc.Create(context.Background(), worker.ID, adminInput("Matrimonio"))
	require.NoError(t, err)

	// An approved row without an approver should never exist, but the
	// renderer must still refuse it
	require.NoError(t, db.Model(&models.LeaveRequest{}).
		Where("id = ?", created.ID).
		UpdateColumn("status", domain.StatusApproved).Error)

	svc := NewReceiptService(repositories.NewLeaveRequestRepository(db))
	_, _, err = svc.Generate(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrReceiptNoApprover)
}

func TestGenerateReceiptUnknownRequest(t *testing.T) {
	db := newTestDB(t)

	svc := NewReceiptService(repositories.NewLeaveRequestRepository(db))
	_, _, err := svc.Generate(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}
