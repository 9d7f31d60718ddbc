package syncing

import (
	"context"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

// Syncer executa uma rodada completa do sync horário
type Syncer interface {
	Run(ctx context.Context) (*domain.SyncSummary, error)
}
