package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/retail-dashboard-api/internal/config"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/syncing"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

// Limite de uma execução disparada pelo cron ou manualmente
const syncTimeout = 15 * time.Minute

type HourlySyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Days         int
}

// SyncStatus é o retrato do agendador exposto em /api/admin/sync/status
type SyncStatus struct {
	SyncEnabled         bool                `json:"sync_enabled"`
	SyncCron            string              `json:"sync_cron"`
	SyncDays            int                 `json:"sync_days"`
	Running             bool                `json:"running"`
	LastSyncStartedAt   *string             `json:"last_sync_started_at"`
	LastSyncCompletedAt *string             `json:"last_sync_completed_at"`
	LastError           *string             `json:"last_error"`
	LastSummary         *domain.SyncSummary `json:"last_summary"`
}

// HourlySyncService agenda o sync horário e garante uma execução por vez
type HourlySyncService struct {
	scheduler           *gocron.Scheduler
	config              HourlySyncConfig
	syncer              syncing.Syncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           error
	lastSummary         *domain.SyncSummary
	now                 func() time.Time
}

func NewHourlySyncService(syncer syncing.Syncer, appConfig *config.Config) *HourlySyncService {
	syncConfig := HourlySyncConfig{
		CronSchedule: appConfig.HourlySync.CronSchedule,
		SyncEnabled:  appConfig.HourlySync.Enabled,
		Days:         appConfig.Sync.Days,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_days":     syncConfig.Days,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do sync horário carregada")

	return &HourlySyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    syncConfig,
		syncer:    syncer,
		now:       time.Now,
	}
}

// Start agenda o job; com o sync desabilitado nada é agendado
func (s *HourlySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sync horário desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do sync horário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sync horário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do sync horário")
		s.scheduler.Stop()
	}()

	return nil
}

// tryAcquire marca o sync como em andamento; falso se já havia um rodando
func (s *HourlySyncService) tryAcquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *HourlySyncService) runSync(ctx context.Context) {
	if !s.tryAcquire() {
		logrus.Info("Sync horário já em andamento, ignorando")
		return
	}
	s.execute(ctx)
}

func (s *HourlySyncService) execute(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), syncTimeout)
	defer cancel()

	startTime := s.now()
	var summary *domain.SyncSummary
	err := utils.Recover(func() (err error) {
		summary, err = s.syncer.Run(ctx)
		return err
	})()

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastError = err
	if err != nil {
		logrus.WithError(err).Error("Erro no sync horário")
		return
	}
	s.lastSummary = summary

	logrus.WithFields(logrus.Fields{
		"duration": s.lastSyncCompletedAt.Sub(startTime).String(),
		"run_id":   summary.RunID,
	}).Info("Sync horário concluído")
}

// TriggerManualSync dispara o sync em background. Retorna falso se já havia um em andamento.
func (s *HourlySyncService) TriggerManualSync(ctx context.Context) bool {
	if !s.tryAcquire() {
		logrus.Info("Sync horário já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sync horário manual")
	go s.execute(ctx)
	return true
}

func (s *HourlySyncService) GetStatus() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SyncStatus{
		SyncEnabled:         s.config.SyncEnabled,
		SyncCron:            s.config.CronSchedule,
		SyncDays:            s.config.Days,
		Running:             s.syncRunning,
		LastSyncStartedAt:   isoOrNil(s.lastSyncStartedAt),
		LastSyncCompletedAt: isoOrNil(s.lastSyncCompletedAt),
		LastSummary:         s.lastSummary,
	}
	if s.lastError != nil {
		msg := s.lastError.Error()
		status.LastError = &msg
	}
	return status
}

func isoOrNil(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	v := utils.ISO(t)
	return &v
}
