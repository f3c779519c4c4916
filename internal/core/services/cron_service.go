package services

import (
	"context"

	"permitdesk/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CronService owns the recurring maintenance jobs. Currently a single
// entry: the nightly purge of expired refresh tokens.
type CronService struct {
	cron             *cron.Cron
	refreshTokenRepo repositories.RefreshTokenRepository
}

// NewCronService creates a new cron service
func NewCronService(db *gorm.DB) *CronService {
	return &CronService{
		cron:             cron.New(),
		refreshTokenRepo: repositories.NewRefreshTokenRepository(db),
	}
}

// Start registers the jobs and launches the scheduler
func (s *CronService) Start() {
	// Purge expired refresh tokens at 03:30 daily
	if _, err := s.cron.AddFunc("30 3 * * *", s.purgeExpiredTokens); err != nil {
		logrus.WithError(err).Error("failed to register token purge job")
	}

	s.cron.Start()
	logrus.Info("cron service started")
}

// Stop stops the scheduler; a job already running finishes on its own
func (s *CronService) Stop() {
	s.cron.Stop()
	logrus.Info("cron service stopped")
}

// purgeExpiredTokens drops refresh tokens past their expiry. Revoked
// rows inside their window are kept so rotation reuse stays detectable.
func (s *CronService) purgeExpiredTokens() {
	if err := s.refreshTokenRepo.DeleteExpired(context.Background()); err != nil {
		logrus.WithError(err).Error("expired refresh token purge failed")
		return
	}
	logrus.Info("expired refresh tokens purged")
}
