package services

import (
	"context"
	"testing"

	"permitdesk/internal/adapters/persistence/models"
	"permitdesk/internal/adapters/persistence/repositories"
	"permitdesk/internal/config"
	"permitdesk/internal/core/domain"
	"permitdesk/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
		Leave: config.LeaveConfig{DefaultDays: 5.0},
	}
}

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(
		repositories.NewWorkerRepository(db),
		repositories.NewRefreshTokenRepository(db),
		testConfig(),
	)
}

func seedCredentialedWorker(t *testing.T, db *gorm.DB, email, plain string) *models.Worker {
	t.Helper()

	area := seedArea(t, db, "Informática")
	hash, err := password.Hash(plain)
	require.NoError(t, err)

	worker := &models.Worker{
		Email:        email,
		FullName:     "Ana Soto",
		Password:     hash,
		Role:         domain.RoleWorker,
		AreaID:       area.ID,
		LeaveBalance: 5.0,
	}
	require.NoError(t, db.Create(worker).Error)
	return worker
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	worker := seedCredentialedWorker(t, db, "ana@permisos.cl", "correct-horse-1")
	svc := newAuthService(db)

	resp, err := svc.Login(context.Background(), &LoginInput{
		Email:    "ana@permisos.cl",
		Password: "correct-horse-1",
	})
	require.NoError(t, err)

	assert.Equal(t, worker.ID, resp.Worker.ID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	// The refresh token is persisted hashed, never in the clear
	var stored models.RefreshToken
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, worker.ID, stored.WorkerID)
	assert.Equal(t, password.HashToken(resp.RefreshToken), stored.TokenHash)
}

func TestLoginNormalizesEmail(t *testing.T) {
	db := newTestDB(t)
	seedCredentialedWorker(t, db, "ana@permisos.cl", "correct-horse-1")
	svc := newAuthService(db)

	_, err := svc.Login(context.Background(), &LoginInput{
		Email:    "  ANA@Permisos.CL ",
		Password: "correct-horse-1",
	})
	assert.NoError(t, err)
}

func TestLoginBadCredentials(t *testing.T) {
	db := newTestDB(t)
	seedCredentialedWorker(t, db, "ana@permisos.cl", "correct-horse-1")
	svc := newAuthService(db)

	tests := []struct {
		name  string
		input *LoginInput
	}{
		{"wrong password", &LoginInput{Email: "ana@permisos.cl", Password: "wrong-horse-1"}},
		{"unknown email", &LoginInput{Email: "nadie@permisos.cl", Password: "correct-horse-1"}},
		{"empty email", &LoginInput{Email: "", Password: "correct-horse-1"}},
		{"empty password", &LoginInput{Email: "ana@permisos.cl", Password: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	db := newTestDB(t)
	seedCredentialedWorker(t, db, "ana@permisos.cl", "correct-horse-1")
	svc := newAuthService(db)

	login, err := svc.Login(context.Background(), &LoginInput{
		Email:    "ana@permisos.cl",
		Password: "correct-horse-1",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The presented token was single use
	_, err = svc.RefreshToken(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	// The rotated token still works
	_, err = svc.RefreshToken(context.Background(), refreshed.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshTokenGarbage(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.RefreshToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesToken(t *testing.T) {
	db := newTestDB(t)
	seedCredentialedWorker(t, db, "ana@permisos.cl", "correct-horse-1")
	svc := newAuthService(db)

	login, err := svc.Login(context.Background(), &LoginInput{
		Email:    "ana@permisos.cl",
		Password: "correct-horse-1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.RefreshToken))

	_, err = svc.RefreshToken(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestLogoutAllRevokesEverySession(t *testing.T) {
	db := newTestDB(t)
	worker := seedCredentialedWorker(t, db, "ana@permisos.cl", "correct-horse-1")
	svc := newAuthService(db)

	first, err := svc.Login(context.Background(), &LoginInput{
		Email: "ana@permisos.cl", Password: "correct-horse-1",
	})
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), &LoginInput{
		Email: "ana@permisos.cl", Password: "correct-horse-1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.LogoutAll(context.Background(), worker.ID))

	_, err = svc.RefreshToken(context.Background(), first.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
	_, err = svc.RefreshToken(context.Background(), second.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestGetProfile(t *testing.T) {
	db := newTestDB(t)
	worker := seedCredentialedWorker(t, db, "ana@permisos.cl", "correct-horse-1")
	svc := newAuthService(db)

	profile, err := svc.GetProfile(context.Background(), worker.ID)
	require.NoError(t, err)
	assert.Equal(t, worker.Email, profile.Email)
	assert.Equal(t, "Informática", profile.AreaName)

	_, err = svc.GetProfile(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrWorkerNotFound)
}
