package snapshotting

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/shopify"
	shopifydomain "github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

type Service struct {
	shopify  shopify.ShopifyIntegrator
	ga4      GA4Sessions
	calendar *utils.Calendar
}

// GA4Sessions é a parte do cliente GA4 usada como fallback de sessões
type GA4Sessions interface {
	IsEnabled() bool
	Sessions(ctx context.Context, startDate, endDate string) (*float64, error)
}

func NewService(shopifyIntegrator shopify.ShopifyIntegrator, ga4 GA4Sessions, calendar *utils.Calendar) Snapshotter {
	return &Service{
		shopify:  shopifyIntegrator,
		ga4:      ga4,
		calendar: calendar,
	}
}

// Month compara o mês corrente com o mês anterior inteiro, agrupado por mês
func (s *Service) Month(ctx context.Context, now time.Time) (*domain.MonthSnapshot, error) {
	if !s.shopify.IsConfigured() {
		return nil, nil
	}

	monthStart := s.calendar.StartOfMonth(now)
	prevMonthStart := s.calendar.AddMonths(monthStart, -1)
	nextMonthStart := s.calendar.AddMonths(monthStart, 1)
	since := s.calendar.ToYMD(prevMonthStart)
	until := s.calendar.ToYMD(nextMonthStart)

	query := fmt.Sprintf("FROM sales SHOW gross_sales, net_sales, total_sales GROUP BY month SINCE %s UNTIL %s", since, until)
	table, err := s.shopify.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, nil
	}

	byMonth := make(map[string]*domain.SalesTotals)
	for _, row := range table.Rows {
		key := dayKey(table.Text(row, "month"))
		if key == "" {
			continue
		}
		byMonth[key] = &domain.SalesTotals{
			GrossSales: table.Metric(row, "gross_sales"),
			NetSales:   table.Metric(row, "net_sales"),
			TotalSales: table.Metric(row, "total_sales"),
		}
	}

	return &domain.MonthSnapshot{
		Source:   domain.SourceShopifyQL,
		Current:  byMonth[s.calendar.ToYMD(monthStart)],
		Previous: byMonth[since],
		Range: domain.SnapshotRange{
			Since: since,
			Until: until,
		},
	}, nil
}

// Comparable soma o MTD e o trecho do mês anterior até o dia comparável
func (s *Service) Comparable(ctx context.Context, now time.Time) (*domain.ComparableSnapshot, error) {
	if !s.shopify.IsConfigured() {
		return nil, nil
	}

	monthStart := s.calendar.StartOfMonth(now)
	prevMonthStart := s.calendar.AddMonths(monthStart, -1)
	prevComparableEnd := s.calendar.PreviousMTDComparableEnd(now, monthStart)
	tomorrow := s.calendar.AddDays(s.calendar.StartOfDay(now), 1)
	since := s.calendar.ToYMD(prevMonthStart)
	until := s.calendar.ToYMD(tomorrow)

	query := fmt.Sprintf("FROM sales SHOW total_sales, net_sales, orders GROUP BY day SINCE %s UNTIL %s", since, until)
	table, err := s.shopify.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, nil
	}

	currentPrefix := s.calendar.ToYMD(monthStart)[:7]
	previousPrefix := since[:7]
	comparableDay := s.calendar.DayOfMonth(prevComparableEnd)

	var cur, prev struct{ sales, net, orders float64 }
	for _, row := range table.Rows {
		key := dayKey(table.Text(row, "day"))
		if key == "" {
			continue
		}
		sales := cellNumber(table, row, "total_sales")
		net := cellNumber(table, row, "net_sales")
		orders := cellNumber(table, row, "orders")

		switch key[:7] {
		case currentPrefix:
			cur.sales += sales
			cur.net += net
			cur.orders += orders
		case previousPrefix:
			if day, ok := dayOfMonth(key); ok && day <= comparableDay {
				prev.sales += sales
				prev.net += net
				prev.orders += orders
			}
		}
	}

	return &domain.ComparableSnapshot{
		Source:              domain.SourceShopifyQL,
		CurrentMTD:          utils.RoundValue(cur.sales, 2),
		CurrentMTDNetSales:  utils.RoundValue(cur.net, 2),
		CurrentMTDOrders:    utils.RoundValue(cur.orders, 2),
		PreviousMTD:         utils.RoundValue(prev.sales, 2),
		PreviousMTDNetSales: utils.RoundValue(prev.net, 2),
		PreviousMTDOrders:   utils.RoundValue(prev.orders, 2),
		Range: domain.SnapshotRange{
			Since:          since,
			Until:          until,
			PreviousEndUTC: utils.ISO(prevComparableEnd),
		},
	}, nil
}

// YTD soma o ano corrente até hoje, o ano anterior até a data comparável e o ano anterior inteiro
func (s *Service) YTD(ctx context.Context, now time.Time) (*domain.YTDSnapshot, error) {
	if !s.shopify.IsConfigured() {
		return nil, nil
	}

	yearStart := s.calendar.StartOfYear(now)
	prevYearStart := s.calendar.AddYears(yearStart, -1)
	prevComparableEnd := s.calendar.PreviousYTDComparableEnd(now)
	tomorrow := s.calendar.AddDays(s.calendar.StartOfDay(now), 1)
	since := s.calendar.ToYMD(prevYearStart)
	until := s.calendar.ToYMD(tomorrow)

	query := fmt.Sprintf("FROM sales SHOW total_sales, orders GROUP BY day SINCE %s UNTIL %s", since, until)
	table, err := s.shopify.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, nil
	}

	currentYear := s.calendar.ToYMD(yearStart)[:4]
	previousYear := since[:4]
	currentLimit := s.calendar.ToYMD(now)
	previousLimit := s.calendar.ToYMD(prevComparableEnd)

	var out domain.YTDSnapshot
	for _, row := range table.Rows {
		key := dayKey(table.Text(row, "day"))
		if key == "" {
			continue
		}
		sales := cellNumber(table, row, "total_sales")
		orders := cellNumber(table, row, "orders")

		switch {
		case key[:4] == currentYear && key <= currentLimit:
			out.CurrentYTDSales += sales
			out.CurrentYTDOrders += orders
		case key[:4] == previousYear:
			out.PreviousFullYearSales += sales
			out.PreviousFullYearOrders += orders
			if key <= previousLimit {
				out.PreviousYTDSales += sales
				out.PreviousYTDOrders += orders
			}
		}
	}

	return &domain.YTDSnapshot{
		Source:                 domain.SourceShopifyQL,
		CurrentYTDSales:        utils.RoundValue(out.CurrentYTDSales, 2),
		PreviousYTDSales:       utils.RoundValue(out.PreviousYTDSales, 2),
		CurrentYTDOrders:       utils.RoundValue(out.CurrentYTDOrders, 2),
		PreviousYTDOrders:      utils.RoundValue(out.PreviousYTDOrders, 2),
		PreviousFullYearSales:  utils.RoundValue(out.PreviousFullYearSales, 2),
		PreviousFullYearOrders: utils.RoundValue(out.PreviousFullYearOrders, 2),
		Range: domain.SnapshotRange{
			Since:          since,
			Until:          until,
			PreviousEndUTC: utils.ISO(prevComparableEnd),
		},
	}, nil
}

// SameTime compara o mês até este instante com o mesmo tempo decorrido desde o início do mês anterior.
// As vendas vêm do ShopifyQL por hora e as contagens de pedidos do endpoint de contagem.
func (s *Service) SameTime(ctx context.Context, now time.Time) (*domain.SameTimeSnapshot, error) {
	if !s.shopify.IsConfigured() {
		return nil, nil
	}

	monthStart := s.calendar.StartOfMonth(now)
	prevMonthStart := s.calendar.AddMonths(monthStart, -1)
	prevComparableEnd := prevMonthStart.Add(now.Sub(monthStart))
	tomorrow := s.calendar.AddDays(s.calendar.StartOfDay(now), 1)

	query := fmt.Sprintf(
		"FROM sales SHOW total_sales, net_sales GROUP BY hour SINCE %s UNTIL %s",
		s.calendar.ToYMD(prevMonthStart),
		s.calendar.ToYMD(tomorrow),
	)

	var (
		table         *shopifydomain.ShopifyQLResult
		currentCount  *float64
		previousCount *float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(utils.Recover(func() error {
		var err error
		table, err = s.shopify.Query(gctx, query)
		return err
	}))
	g.Go(utils.Recover(func() error {
		var err error
		currentCount, err = s.shopify.CountOrders(gctx, monthStart, now)
		return err
	}))
	g.Go(utils.Recover(func() error {
		var err error
		previousCount, err = s.shopify.CountOrders(gctx, prevMonthStart, prevComparableEnd)
		return err
	}))
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if table == nil {
		return nil, nil
	}

	current := domain.TimeRange{Start: monthStart, End: now}
	previous := domain.TimeRange{Start: prevMonthStart, End: prevComparableEnd}

	var curSales, curNet, prevSales, prevNet float64
	for _, row := range table.Rows {
		ts, ok := parseTimestamp(table.Text(row, "hour"))
		if !ok {
			continue
		}
		sales := cellNumber(table, row, "total_sales")
		net := cellNumber(table, row, "net_sales")

		if current.Contains(ts) {
			curSales += sales
			curNet += net
		}
		if previous.Contains(ts) {
			prevSales += sales
			prevNet += net
		}
	}

	return &domain.SameTimeSnapshot{
		Source:              domain.SourceShopifySameTime,
		CurrentMTDSales:     utils.RoundValue(curSales, 2),
		CurrentMTDNetSales:  utils.RoundValue(curNet, 2),
		PreviousMTDSales:    utils.RoundValue(prevSales, 2),
		PreviousMTDNetSales: utils.RoundValue(prevNet, 2),
		CurrentMTDOrders:    currentCount,
		PreviousMTDOrders:   previousCount,
		Range: domain.SameTimeRange{
			CurrentStartUTC:  utils.ISO(monthStart),
			CurrentEndUTC:    utils.ISO(now),
			PreviousStartUTC: utils.ISO(prevMonthStart),
			PreviousEndUTC:   utils.ISO(prevComparableEnd),
		},
	}, nil
}

func (s *Service) SafeMonth(ctx context.Context, now time.Time) *domain.MonthSnapshot {
	snapshot, err := s.Month(ctx, now)
	if err != nil {
		logrus.WithError(err).Warn("snapshot: ShopifyQL mensal indisponível")
		return nil
	}
	return snapshot
}

func (s *Service) SafeComparable(ctx context.Context, now time.Time) *domain.ComparableSnapshot {
	snapshot, err := s.Comparable(ctx, now)
	if err != nil {
		logrus.WithError(err).Warn("snapshot: ShopifyQL MTD comparável indisponível")
		return nil
	}
	return snapshot
}

func (s *Service) SafeYTD(ctx context.Context, now time.Time) *domain.YTDSnapshot {
	snapshot, err := s.YTD(ctx, now)
	if err != nil {
		logrus.WithError(err).Warn("snapshot: ShopifyQL YTD indisponível")
		return nil
	}
	return snapshot
}

func (s *Service) SafeSameTime(ctx context.Context, now time.Time) *domain.SameTimeSnapshot {
	snapshot, err := s.SameTime(ctx, now)
	if err != nil {
		logrus.WithError(err).Warn("snapshot: comparação no mesmo horário indisponível")
		return nil
	}
	return snapshot
}

// dayKey devolve os 10 primeiros caracteres (YYYY-MM-DD) ou "" quando o valor é curto demais
func dayKey(raw string) string {
	if len(raw) < 10 {
		return ""
	}
	return raw[:10]
}

func dayOfMonth(key string) (int, bool) {
	day, err := strconv.Atoi(key[8:10])
	if err != nil {
		return 0, false
	}
	return day, true
}

func cellNumber(table *shopifydomain.ShopifyQLResult, row shopifydomain.ShopifyQLRow, column string) float64 {
	return utils.Value(utils.CleanNumber(table.Cell(row, column)))
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseTimestamp aceita os formatos de hora devolvidos pelo ShopifyQL; sem fuso, assume UTC
func parseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
