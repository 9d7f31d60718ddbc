package reporting

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

// scopedLines busca as linhas da janela restritas aos pedidos reportáveis da mesma janela
func (s *Service) scopedLines(ctx context.Context, window domain.TimeRange) ([]domain.OrderLineRow, error) {
	var (
		lines  []domain.OrderLineRow
		orders []domain.OrderRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(utils.Recover(func() error {
		var err error
		lines, err = s.fetchLines(gctx, window)
		return err
	}))
	g.Go(utils.Recover(func() error {
		var err error
		orders, err = s.fetchOrders(gctx, window)
		return err
	}))
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ids := aggregating.ReportableOrderIDs(aggregating.OrdersWithin(orders, window))
	return aggregating.FilterLinesByOrderIDs(aggregating.LinesWithin(lines, window), ids), nil
}

// rankProducts ordena de forma estável pela métrica, desempatando pela chave
func rankProducts(products []domain.ProductTotals, metric func(domain.ProductTotals) float64) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := metric(products[i]), metric(products[j])
		if a != b {
			return a > b
		}
		return products[i].ProductKey < products[j].ProductKey
	})
}

func limitOf[T any](items []T, limit int) []T {
	if limit >= 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func (s *Service) TopProductsByUnits(ctx context.Context, limit int) (*domain.TopUnitsReport, error) {
	now := s.now()
	_, window := s.monthWindow(now)

	lines, err := s.scopedLines(ctx, window)
	if err != nil {
		return nil, err
	}

	products := aggregating.AggregateProducts(lines)
	totalUnits := 0.0
	for _, p := range products {
		totalUnits += p.Units
	}
	rankProducts(products, func(p domain.ProductTotals) float64 { return p.Units })

	entries := make([]domain.TopUnitsEntry, 0)
	for i, p := range limitOf(products, limit) {
		entries = append(entries, domain.TopUnitsEntry{
			Rank:         i + 1,
			ProductKey:   p.ProductKey,
			ProductID:    p.ProductID,
			Title:        p.Title,
			Units:        utils.Round(p.Units, 2),
			Revenue:      utils.Round(p.Revenue, 2),
			UnitSharePct: pctOf(p.Units, totalUnits),
		})
	}

	return &domain.TopUnitsReport{
		UpdatedAt:  utils.ISO(now),
		Period:     period(window),
		TotalUnits: utils.Round(totalUnits, 2),
		Products:   entries,
	}, nil
}

func (s *Service) TopProductsByRevenue(ctx context.Context, limit int) (*domain.TopRevenueReport, error) {
	now := s.now()
	_, window := s.monthWindow(now)

	lines, err := s.scopedLines(ctx, window)
	if err != nil {
		return nil, err
	}

	products := aggregating.AggregateProducts(lines)
	totalRevenue := 0.0
	for _, p := range products {
		totalRevenue += p.Revenue
	}
	rankProducts(products, func(p domain.ProductTotals) float64 { return p.Revenue })

	entries := make([]domain.TopRevenueEntry, 0)
	for i, p := range limitOf(products, limit) {
		entries = append(entries, domain.TopRevenueEntry{
			Rank:            i + 1,
			ProductKey:      p.ProductKey,
			ProductID:       p.ProductID,
			Title:           p.Title,
			Revenue:         utils.Round(p.Revenue, 2),
			Units:           utils.Round(p.Units, 2),
			RevenueSharePct: pctOf(p.Revenue, totalRevenue),
		})
	}

	return &domain.TopRevenueReport{
		UpdatedAt:    utils.ISO(now),
		Period:       period(window),
		TotalRevenue: utils.Round(totalRevenue, 2),
		Products:     entries,
	}, nil
}

// ProductMomentum compara os últimos 7 dias com os 7 anteriores.
// Só entram produtos vendidos na semana corrente.
func (s *Service) ProductMomentum(ctx context.Context, limit int, metric domain.MomentumMetric) (*domain.MomentumReport, error) {
	if metric != domain.MomentumMetricUnits {
		metric = domain.MomentumMetricRevenue
	}

	now := s.now()
	todayStart := s.calendar.StartOfDay(now)
	thisWeekStart := s.calendar.AddDays(todayStart, -6)
	prevWeekStart := s.calendar.AddDays(thisWeekStart, -7)
	prevWeekEnd := thisWeekStart.Add(-time.Second)

	lines, err := s.scopedLines(ctx, domain.TimeRange{Start: prevWeekStart, End: now})
	if err != nil {
		return nil, err
	}

	current := aggregating.AggregateProducts(aggregating.LinesWithin(lines, domain.TimeRange{Start: thisWeekStart, End: now}))
	previous := aggregating.ProductsByKey(aggregating.AggregateProducts(aggregating.LinesWithin(lines, domain.TimeRange{Start: prevWeekStart, End: prevWeekEnd})))

	value := func(p domain.ProductTotals) float64 {
		if metric == domain.MomentumMetricUnits {
			return p.Units
		}
		return p.Revenue
	}

	entries := make([]domain.MomentumEntry, 0, len(current))
	deltas := make(map[string]float64, len(current))
	for _, p := range current {
		cur := value(p)
		prev := value(previous[p.ProductKey])
		deltas[p.ProductKey] = cur - prev
		entries = append(entries, domain.MomentumEntry{
			ProductKey:    p.ProductKey,
			Title:         p.Title,
			Metric:        metric,
			CurrentValue:  utils.Round(cur, 2),
			PreviousValue: utils.Round(prev, 2),
			Delta:         utils.Round(cur-prev, 2),
			DeltaPct:      utils.PctChange(&cur, &prev),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return deltas[entries[i].ProductKey] > deltas[entries[j].ProductKey]
	})

	return &domain.MomentumReport{
		UpdatedAt: utils.ISO(now),
		Metric:    metric,
		Windows: domain.MomentumWindows{
			ThisWeekStartUTC: utils.ISO(thisWeekStart),
			ThisWeekEndUTC:   utils.ISO(now),
			PrevWeekStartUTC: utils.ISO(prevWeekStart),
			PrevWeekEndUTC:   utils.ISO(prevWeekEnd),
		},
		Products: limitOf(entries, limit),
	}, nil
}

// RefundWatchlist lista os produtos do mês com devolução, maior taxa primeiro
func (s *Service) RefundWatchlist(ctx context.Context, limit int) (*domain.RefundWatchlistReport, error) {
	now := s.now()
	_, window := s.monthWindow(now)

	lines, err := s.scopedLines(ctx, window)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.RefundWatchEntry, 0)
	for _, p := range aggregating.AggregateProducts(lines) {
		if p.ReturnedUnits <= 0 {
			continue
		}
		sold := p.Units + p.ReturnedUnits
		var rate *float64
		if sold > 0 {
			rate = utils.Round(p.ReturnedUnits/sold*100, 2)
		}
		entries = append(entries, domain.RefundWatchEntry{
			ProductKey:      p.ProductKey,
			ProductID:       p.ProductID,
			Title:           p.Title,
			SoldUnits:       utils.Round(sold, 2),
			ReturnedUnits:   utils.Round(p.ReturnedUnits, 2),
			ReturnRatePct:   rate,
			ReturnedRevenue: utils.Round(p.ReturnedRevenue, 2),
		})
	}

	rateOf := func(e domain.RefundWatchEntry) float64 {
		if e.ReturnRatePct == nil {
			return -1
		}
		return *e.ReturnRatePct
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := rateOf(entries[i]), rateOf(entries[j])
		if a != b {
			return a > b
		}
		return utils.Value(entries[i].ReturnedRevenue) > utils.Value(entries[j].ReturnedRevenue)
	})

	return &domain.RefundWatchlistReport{
		UpdatedAt: utils.ISO(now),
		Period:    period(window),
		Products:  limitOf(entries, limit),
	}, nil
}
