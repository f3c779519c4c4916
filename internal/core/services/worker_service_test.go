package services

import (
	"context"
	"testing"

	"permitdesk/internal/adapters/persistence/models"
	"permitdesk/internal/adapters/persistence/repositories"
	"permitdesk/internal/core/domain"
	"permitdesk/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newWorkerService(db *gorm.DB) *WorkerService {
	return NewWorkerService(
		repositories.NewWorkerRepository(db),
		repositories.NewAreaRepository(db),
		repositories.NewLeaveRequestRepository(db),
		testConfig(),
	)
}

func TestCreateWorker(t *testing.T) {
	db := newTestDB(t)
	area := seedArea(t, db, "Informática")
	svc := newWorkerService(db)

	created, err := svc.Create(context.Background(), &CreateWorkerInput{
		Email:    "Nuevo@Permisos.CL",
		FullName: "Pedro Rojas",
		Password: "super-secret-1",
		Role:     domain.RoleWorker,
		AreaID:   area.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "nuevo@permisos.cl", created.Email)
	assert.Equal(t, "Informática", created.AreaName)
	// Balance falls back to the configured default
	assert.Equal(t, 5.0, created.LeaveBalance)

	var stored models.Worker
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.True(t, password.Verify("super-secret-1", stored.Password))
}

func TestCreateWorkerExplicitBalance(t *testing.T) {
	db := newTestDB(t)
	area := seedArea(t, db, "Informática")
	svc := newWorkerService(db)

	balance := 2.5
	created, err := svc.Create(context.Background(), &CreateWorkerInput{
		Email:        "nuevo@permisos.cl",
		FullName:     "Pedro Rojas",
		Password:     "super-secret-1",
		Role:         domain.RoleCoordinator,
		AreaID:       area.ID,
		LeaveBalance: &balance,
	})
	require.NoError(t, err)
	assert.Equal(t, 2.5, created.LeaveBalance)
}

func TestCreateWorkerValidation(t *testing.T) {
	db := newTestDB(t)
	area := seedArea(t, db, "Informática")
	seedPlainWorker(t, db, area.ID, "taken@permisos.cl")
	svc := newWorkerService(db)

	valid := func() *CreateWorkerInput {
		return &CreateWorkerInput{
			Email:    "nuevo@permisos.cl",
			FullName: "Pedro Rojas",
			Password: "super-secret-1",
			Role:     domain.RoleWorker,
			AreaID:   area.ID,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*CreateWorkerInput)
		wantErr error
	}{
		{"missing email", func(in *CreateWorkerInput) { in.Email = "" }, ErrMissingFields},
		{"missing name", func(in *CreateWorkerInput) { in.FullName = "" }, ErrMissingFields},
		{"missing area", func(in *CreateWorkerInput) { in.AreaID = 0 }, ErrMissingFields},
		{"unknown role", func(in *CreateWorkerInput) { in.Role = "GERENTE" }, ErrUnknownRole},
		{"short password", func(in *CreateWorkerInput) { in.Password = "corta" }, ErrWeakPassword},
		{"unknown area", func(in *CreateWorkerInput) { in.AreaID = 999 }, ErrAreaNotFound},
		{"duplicate email", func(in *CreateWorkerInput) { in.Email = "TAKEN@permisos.cl" }, domain.ErrEmailAlreadyInUse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid()
			tt.mutate(input)
			_, err := svc.Create(context.Background(), input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func seedPlainWorker(t *testing.T, db *gorm.DB, areaID uint, email string) *models.Worker {
	t.Helper()
	worker := &models.Worker{
		Email:        email,
		FullName:     "Ana Soto",
		Password:     "irrelevant-hash",
		Role:         domain.RoleWorker,
		AreaID:       areaID,
		LeaveBalance: 5.0,
	}
	require.NoError(t, db.Create(worker).Error)
	return worker
}

func TestUpdateWorker(t *testing.T) {
	db := newTestDB(t)
	area := seedArea(t, db, "Informática")
	other := seedArea(t, db, "Formación")
	worker := seedPlainWorker(t, db, area.ID, "ana@permisos.cl")
	svc := newWorkerService(db)

	name := "Ana Soto Vera"
	role := domain.RoleCoordinator
	balance := 3.5
	updated, err := svc.Update(context.Background(), worker.ID, &UpdateWorkerInput{
		FullName:     &name,
		Role:         &role,
		AreaID:       &other.ID,
		LeaveBalance: &balance,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Soto Vera", updated.FullName)
	assert.Equal(t, domain.RoleCoordinator, updated.Role)
	assert.Equal(t, other.ID, updated.AreaID)
	assert.Equal(t, 3.5, updated.LeaveBalance)
}

func TestUpdateWorkerEmptyPasswordKeepsOld(t *testing.T) {
	db := newTestDB(t)
	area := seedArea(t, db, "Informática")

	hash, err := password.Hash("super-secret-1")
	require.NoError(t, err)
	worker := &models.Worker{
		Email:        "ana@permisos.cl",
		FullName:     "Ana Soto",
		Password:     hash,
		Role:         domain.RoleWorker,
		AreaID:       area.ID,
		LeaveBalance: 5.0,
	}
	require.NoError(t, db.Create(worker).Error)

	svc := newWorkerService(db)
	empty := ""
	_, err = svc.Update(context.Background(), worker.ID, &UpdateWorkerInput{Password: &empty})
	require.NoError(t, err)

	var stored models.Worker
	require.NoError(t, db.First(&stored, worker.ID).Error)
	assert.True(t, password.Verify("super-secret-1", stored.Password))
}

func TestUpdateWorkerDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	area := seedArea(t, db, "Informática")
	seedPlainWorker(t, db, area.ID, "taken@permisos.cl")
	worker := seedPlainWorker(t, db, area.ID, "ana@permisos.cl")
	svc := newWorkerService(db)

	taken := "taken@permisos.cl"
	_, err := svc.Update(context.Background(), worker.ID, &UpdateWorkerInput{Email: &taken})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyInUse)
}

func TestUpdateWorkerNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newWorkerService(db)

	_, err := svc.Update(context.Background(), 999, &UpdateWorkerInput{})
	assert.ErrorIs(t, err, domain.ErrWorkerNotFound)
}

func TestDeleteWorker(t *testing.T) {
	db := newTestDB(t)
	area := seedArea(t, db, "Informática")
	admin := seedWorker(t, db, domain.RoleAdmin, area.ID, 5.0)
	worker := seedPlainWorker(t, db, area.ID, "ana@permisos.cl")
	svc := newWorkerService(db)

	require.NoError(t, svc.Delete(context.Background(), worker.ID, admin.ID))

	// Soft deleted: gone from queries, still on disk
	var count int64
	require.NoError(t, db.Model(&models.Worker{}).Where("id = ?", worker.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Unscoped().Model(&models.Worker{}).Where("id = ?", worker.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteWorkerGuards(t *testing.T) {
	db := newTestDB(t)
	area := seedArea(t, db, "Informática")
	admin := seedWorker(t, db, domain.RoleAdmin, area.ID, 5.0)
	worker := seedPlainWorker(t, db, area.ID, "ana@permisos.cl")
	svc := newWorkerService(db)

	// Self deletion
	assert.ErrorIs(t, svc.Delete(context.Background(), admin.ID, admin.ID), ErrCannotDeleteSelf)

	// Unknown worker
	assert.ErrorIs(t, svc.Delete(context.Background(), 999, admin.ID), domain.ErrWorkerNotFound)

	// Workers with requests stay for the audit trail
	reqSvc := newRequestService(db, newCapturingNotifier())
	_, err := reqSvc.Create(context.Background(), worker.ID, adminInput("Matrimonio"))
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Delete(context.Background(), worker.ID, admin.ID), domain.ErrWorkerHasRequests)
}

func TestListWorkers(t *testing.T) {
	db := newTestDB(t)
	area := seedArea(t, db, "Informática")
	seedPlainWorker(t, db, area.ID, "ana@permisos.cl")
	seedPlainWorker(t, db, area.ID, "pedro@permisos.cl")
	svc := newWorkerService(db)

	workers, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, workers, 2)
	assert.Equal(t, "Informática", workers[0].AreaName)
}
