package syncing

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/appscript"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/shopify"
	shopifydomain "github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/retail-dashboard-api/internal/config"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

var _ Syncer = (*Service)(nil)

type Service struct {
	cfg       *config.Config
	marketing appscript.MarketingIntegrator
	shopify   shopify.ShopifyIntegrator
	hourly    repository.HourlyMetricRepository
	orders    repository.OrderRepository
	lines     repository.OrderLineRepository
	now       func() time.Time
	newRunID  func() string
}

func NewService(
	cfg *config.Config,
	marketing appscript.MarketingIntegrator,
	shopifyIntegrator shopify.ShopifyIntegrator,
	hourlyRepo repository.HourlyMetricRepository,
	orderRepo repository.OrderRepository,
	lineRepo repository.OrderLineRepository,
) *Service {
	return &Service{
		cfg:       cfg,
		marketing: marketing,
		shopify:   shopifyIntegrator,
		hourly:    hourlyRepo,
		orders:    orderRepo,
		lines:     lineRepo,
		now:       func() time.Time { return time.Now().UTC() },
		newRunID:  utils.GenerateRunID,
	}
}

// WithClock troca o relógio e o gerador de run_id, usado nos testes
func (s *Service) WithClock(now func() time.Time, runID func() string) *Service {
	s.now = now
	s.newRunID = runID
	return s
}

// Run busca marketing, pedidos e a série já gravada em paralelo, monta as linhas e
// grava tudo. Rodar de novo com os mesmos dados produz as mesmas linhas.
func (s *Service) Run(ctx context.Context) (*domain.SyncSummary, error) {
	if s.cfg.AppsScript.URL == "" || !s.shopify.IsConfigured() {
		return nil, ErrSyncNotConfigured
	}

	runID := s.newRunID()
	now := s.now()
	start := now.Add(-time.Duration(s.cfg.Sync.Days) * 24 * time.Hour)
	logger := logrus.WithField("run_id", runID)

	logger.WithFields(logrus.Fields{
		"start": utils.ISO(start),
		"end":   utils.ISO(now),
	}).Info("sync: iniciando")

	var (
		marketing map[string]domain.MarketingPoint
		feed      *shopifydomain.OrdersFeed
		existing  []domain.HourlyMetric
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(utils.Recover(func() error {
		var err error
		if marketing, err = s.marketing.FetchMarketing(gctx); err != nil {
			return fmt.Errorf("%w: %w", ErrFetchMarketing, err)
		}
		return nil
	}))
	g.Go(utils.Recover(func() error {
		var err error
		if feed, err = s.shopify.FetchOrders(gctx, start, now); err != nil {
			return fmt.Errorf("%w: %w", ErrFetchOrders, err)
		}
		return nil
	}))
	g.Go(utils.Recover(func() error {
		var err error
		if existing, err = s.hourly.ListSince(gctx, start); err != nil {
			return fmt.Errorf("%w: %w", ErrFetchExisting, err)
		}
		return nil
	}))
	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("sync: falha ao buscar dados")
		return nil, err
	}
	if feed == nil {
		feed = &shopifydomain.OrdersFeed{}
	}

	structures := BuildShopifyStructures(feed.Orders, now)
	merged := MergeHourlyRows(marketing, structures.Hourly, existing, now)

	hourlyAffected, err := s.hourly.Upsert(ctx, merged)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpsertHourly, err)
	}
	ordersAffected, err := s.orders.Upsert(ctx, structures.OrderRows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpsertOrders, err)
	}
	linesAffected, err := s.lines.Upsert(ctx, structures.LineRows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpsertLines, err)
	}

	summary := &domain.SyncSummary{
		OK:    true,
		RunID: runID,
		SyncWindow: domain.SyncWindow{
			Days:     s.cfg.Sync.Days,
			StartUTC: utils.ISO(start),
			EndUTC:   utils.ISO(now),
		},
		AppsScript: domain.AppsScriptSyncStats{MarketingHours: len(marketing)},
		Shopify: domain.ShopifySyncStats{
			OrdersFetched:     len(feed.Orders),
			PagesFetched:      feed.PagesFetched,
			HourlyPoints:      len(structures.Hourly),
			OrderRowsUpserted: len(structures.OrderRows),
			LineRowsUpserted:  len(structures.LineRows),
		},
		Store: domain.StoreSyncStats{
			HourlyRowsInput:    len(merged),
			HourlyRowsReturned: hourlyAffected,
			OrderRowsReturned:  ordersAffected,
			LineRowsReturned:   linesAffected,
		},
	}

	logger.WithFields(logrus.Fields{
		"orders": summary.Shopify.OrdersFetched,
		"hours":  summary.Store.HourlyRowsInput,
		"lines":  summary.Shopify.LineRowsUpserted,
	}).Info("sync: concluído")

	return summary, nil
}
