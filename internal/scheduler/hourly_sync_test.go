package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/retail-dashboard-api/internal/config"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	syncmocks "github.com/vfg2006/retail-dashboard-api/internal/usecases/syncing/mocks"
)

func newTestService(t *testing.T, enabled bool) (*HourlySyncService, *syncmocks.MockSyncer) {
	ctrl := gomock.NewController(t)
	syncer := syncmocks.NewMockSyncer(ctrl)
	cfg := &config.Config{
		HourlySync: config.HourlySync{CronSchedule: "5 * * * *", Enabled: enabled},
		Sync:       config.Sync{Days: 90},
	}
	s := NewHourlySyncService(syncer, cfg)
	s.now = func() time.Time { return time.Date(2026, 3, 15, 10, 5, 0, 0, time.UTC) }
	return s, syncer
}

func TestHourlySyncService_StartDisabled(t *testing.T) {
	s, _ := newTestService(t, false)

	require.NoError(t, s.Start(context.Background()))
	assert.Empty(t, s.scheduler.Jobs())
}

func TestHourlySyncService_StartInvalidCron(t *testing.T) {
	s, _ := newTestService(t, true)
	s.config.CronSchedule = "not a cron"

	assert.Error(t, s.Start(context.Background()))
}

func TestHourlySyncService_SingleFlight(t *testing.T) {
	s, syncer := newTestService(t, true)

	release := make(chan struct{})
	done := make(chan struct{})
	syncer.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.SyncSummary, error) {
		<-release
		return &domain.SyncSummary{OK: true, RunID: "abc"}, nil
	}).Times(1)

	require.True(t, s.TriggerManualSync(context.Background()))
	assert.False(t, s.TriggerManualSync(context.Background()))
	assert.True(t, s.GetStatus().Running)

	s.runSync(context.Background())

	go func() {
		close(release)
		for s.GetStatus().Running {
			time.Sleep(time.Millisecond)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sync não terminou")
	}

	status := s.GetStatus()
	assert.False(t, status.Running)
	assert.Nil(t, status.LastError)
	require.NotNil(t, status.LastSummary)
	assert.Equal(t, "abc", status.LastSummary.RunID)
	assert.Equal(t, "2026-03-15T10:05:00.000Z", *status.LastSyncCompletedAt)
}

func TestHourlySyncService_RecordsError(t *testing.T) {
	s, syncer := newTestService(t, true)
	syncer.EXPECT().Run(gomock.Any()).Return(nil, errors.New("boom"))

	s.runSync(context.Background())

	status := s.GetStatus()
	assert.False(t, status.Running)
	require.NotNil(t, status.LastError)
	assert.Equal(t, "boom", *status.LastError)
	assert.Nil(t, status.LastSummary)
	assert.Equal(t, 90, status.SyncDays)
}

func TestHourlySyncService_RecoversPanic(t *testing.T) {
	s, syncer := newTestService(t, true)
	syncer.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.SyncSummary, error) {
		panic("shopify payload inesperado")
	})

	s.runSync(context.Background())

	status := s.GetStatus()
	assert.False(t, status.Running)
	require.NotNil(t, status.LastError)
	assert.Contains(t, *status.LastError, "shopify payload inesperado")
}
