package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/shopify"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/retail-dashboard-api/internal/config"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/snapshotting"
	"github.com/vfg2006/retail-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

var _ Reporter = (*Service)(nil)

type Service struct {
	cfg       *config.Config
	calendar  *utils.Calendar
	snapshots snapshotting.Snapshotter
	shopify   shopify.ShopifyIntegrator
	hourly    repository.HourlyMetricRepository
	orders    repository.OrderRepository
	lines     repository.OrderLineRepository
	targets   repository.MonthlyTargetRepository
	now       func() time.Time
}

func NewService(
	cfg *config.Config,
	calendar *utils.Calendar,
	snapshots snapshotting.Snapshotter,
	shopifyIntegrator shopify.ShopifyIntegrator,
	hourlyRepo repository.HourlyMetricRepository,
	orderRepo repository.OrderRepository,
	lineRepo repository.OrderLineRepository,
	targetRepo repository.MonthlyTargetRepository,
) *Service {
	return &Service{
		cfg:       cfg,
		calendar:  calendar,
		snapshots: snapshots,
		shopify:   shopifyIntegrator,
		hourly:    hourlyRepo,
		orders:    orderRepo,
		lines:     lineRepo,
		targets:   targetRepo,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock troca o relógio usado pelos relatórios
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) fetchOrders(ctx context.Context, window domain.TimeRange) ([]domain.OrderRow, error) {
	rows, err := s.orders.ListCreatedBetween(ctx, window)
	if err != nil {
		return nil, wrapFetch(ErrFetchOrders, apiErrors.ErrDatabaseOperation, err)
	}
	return rows, nil
}

func (s *Service) fetchLines(ctx context.Context, window domain.TimeRange) ([]domain.OrderLineRow, error) {
	rows, err := s.lines.ListCreatedBetween(ctx, window)
	if err != nil {
		return nil, wrapFetch(ErrFetchLines, apiErrors.ErrDatabaseOperation, err)
	}
	return rows, nil
}

func (s *Service) fetchHourly(ctx context.Context, since time.Time) ([]domain.HourlyMetric, error) {
	rows, err := s.hourly.ListSince(ctx, since)
	if err != nil {
		return nil, wrapFetch(ErrFetchHourly, apiErrors.ErrDatabaseOperation, err)
	}
	return rows, nil
}

// monthWindow devolve o início do mês corrente e a janela [início, now]
func (s *Service) monthWindow(now time.Time) (time.Time, domain.TimeRange) {
	start := s.calendar.StartOfMonth(now)
	return start, domain.TimeRange{Start: start, End: now}
}

func period(window domain.TimeRange) domain.Period {
	return domain.Period{
		StartUTC: utils.ISO(window.Start),
		EndUTC:   utils.ISO(window.End),
	}
}

// field lê um campo de um snapshot opcional
func field[S any](snapshot *S, get func(*S) float64) *float64 {
	if snapshot == nil {
		return nil
	}
	v := get(snapshot)
	return &v
}

// pctOf devolve part/total*100 com 2 casas, ou nil quando total <= 0
func pctOf(part, total float64) *float64 {
	if total <= 0 {
		return nil
	}
	return utils.Round(part/total*100, 2)
}
