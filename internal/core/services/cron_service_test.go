package services

import (
	"testing"
	"time"

	"permitdesk/internal/adapters/persistence/models"
	"permitdesk/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurgeExpiredTokens(t *testing.T) {
	db := newTestDB(t)
	area := seedArea(t, db, "Informática")
	worker := seedWorker(t, db, domain.RoleWorker, area.ID, 5.0)

	expired := &models.RefreshToken{
		WorkerID:  worker.ID,
		TokenHash: "expired-hash",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	active := &models.RefreshToken{
		WorkerID:  worker.ID,
		TokenHash: "active-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(expired).Error)
	require.NoError(t, db.Create(active).Error)

	svc := NewCronService(db)
	svc.purgeExpiredTokens()

	var remaining []models.RefreshToken
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "active-hash", remaining[0].TokenHash)
}

func TestCronServiceSchedulesPurge(t *testing.T) {
	svc := NewCronService(newTestDB(t))

	svc.Start()
	defer svc.Stop()

	assert.Len(t, svc.cron.Entries(), 1)
}
