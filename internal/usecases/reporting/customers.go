package reporting

import (
	"context"
	"fmt"
	"sort"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

const (
	reasonNoHourlyToday = "No hourly rows logged today"
	unknownChannel      = "unknown"
)

// monthOrders devolve os pedidos reportáveis do mês corrente
func (s *Service) monthOrders(ctx context.Context) (domain.TimeRange, []domain.OrderRow, error) {
	now := s.now()
	_, window := s.monthWindow(now)

	rows, err := s.fetchOrders(ctx, window)
	if err != nil {
		return window, nil, err
	}
	return window, aggregating.ReportableOrders(aggregating.OrdersWithin(rows, window)), nil
}

func (s *Service) NewVsReturning(ctx context.Context) (*domain.NewVsReturningReport, error) {
	window, orders, err := s.monthOrders(ctx)
	if err != nil {
		return nil, err
	}

	var (
		revenue domain.CustomerSplit[float64]
		counts  domain.CustomerSplit[int]
	)
	for _, o := range orders {
		amount := utils.Value(o.TotalSales)
		switch o.CustomerType {
		case domain.CustomerTypeNew:
			revenue.New += amount
			counts.New++
		case domain.CustomerTypeReturning:
			revenue.Returning += amount
			counts.Returning++
		default:
			revenue.Unknown += amount
			counts.Unknown++
		}
	}
	total := revenue.New + revenue.Returning + revenue.Unknown

	return &domain.NewVsReturningReport{
		UpdatedAt: utils.ISO(window.End),
		Period:    period(window),
		Revenue: domain.CustomerSplit[*float64]{
			New:       utils.Round(revenue.New, 2),
			Returning: utils.Round(revenue.Returning, 2),
			Unknown:   utils.Round(revenue.Unknown, 2),
		},
		Orders: counts,
		SharesPct: domain.CustomerSplit[*float64]{
			New:       pctOf(revenue.New, total),
			Returning: pctOf(revenue.Returning, total),
			Unknown:   pctOf(revenue.Unknown, total),
		},
	}, nil
}

func (s *Service) ChannelSplit(ctx context.Context) (*domain.ChannelSplitReport, error) {
	window, orders, err := s.monthOrders(ctx)
	if err != nil {
		return nil, err
	}

	type channelTotals struct {
		name    string
		revenue float64
		orders  int
	}
	index := make(map[string]*channelTotals)
	list := make([]*channelTotals, 0)
	total := 0.0
	for _, o := range orders {
		name := o.SourceName
		if name == "" {
			name = unknownChannel
		}
		c, ok := index[name]
		if !ok {
			c = &channelTotals{name: name}
			index[name] = c
			list = append(list, c)
		}
		amount := utils.Value(o.TotalSales)
		c.revenue += amount
		c.orders++
		total += amount
	}

	sort.SliceStable(list, func(i, j int) bool { return list[i].revenue > list[j].revenue })

	channels := make([]domain.ChannelEntry, 0, len(list))
	for _, c := range list {
		channels = append(channels, domain.ChannelEntry{
			Channel:         c.name,
			Revenue:         utils.Round(c.revenue, 2),
			Orders:          c.orders,
			RevenueSharePct: pctOf(c.revenue, total),
		})
	}

	report := &domain.ChannelSplitReport{
		UpdatedAt:    utils.ISO(window.End),
		Status:       domain.StatusOK,
		Period:       period(window),
		TotalRevenue: utils.Round(total, 2),
		Channels:     channels,
	}
	if len(orders) == 0 {
		report.Status = domain.StatusUnavailable
		report.UnavailableReason = reasonNoOrdersInMonth
	}
	return report, nil
}

func (s *Service) DiscountImpact(ctx context.Context) (*domain.DiscountImpactReport, error) {
	window, orders, err := s.monthOrders(ctx)
	if err != nil {
		return nil, err
	}

	totals := aggregating.AggregateOrders(orders)
	discounted := 0
	for _, o := range orders {
		if utils.Value(o.Discounts) > 0 {
			discounted++
		}
	}

	report := &domain.DiscountImpactReport{
		UpdatedAt:              utils.ISO(window.End),
		Status:                 domain.StatusOK,
		Period:                 period(window),
		DiscountedOrdersCount:  discounted,
		TotalDiscounts:         totals.Discounts,
		DiscountRatePctOfGross: pctOf(totals.Discounts, totals.GrossSales),
	}
	if totals.OrdersCount > 0 {
		report.DiscountedOrdersPct = pctOf(float64(discounted), float64(totals.OrdersCount))
		report.AvgDiscountPerOrder = utils.Round(totals.Discounts/float64(totals.OrdersCount), 2)
	} else {
		report.Status = domain.StatusUnavailable
		report.UnavailableReason = reasonNoOrdersInMonth
	}
	return report, nil
}

// HourlyHeatmapToday distribui as vendas de hoje em 24 faixas de hora UTC
func (s *Service) HourlyHeatmapToday(ctx context.Context) (*domain.HeatmapReport, error) {
	now := s.now()
	todayStart := s.calendar.StartOfDay(now)

	rows, err := s.fetchHourly(ctx, todayStart)
	if err != nil {
		return nil, err
	}
	rows = aggregating.HourlyWithin(rows, domain.TimeRange{Start: todayStart, End: now})

	var sales, orders [24]float64
	for _, row := range rows {
		h := row.LoggedAtUTC.UTC().Hour()
		sales[h] += utils.Value(row.SalesAmount)
		orders[h] += utils.Value(row.Orders)
	}

	heatmap := make([]domain.HeatmapHour, 0, 24)
	for h := 0; h < 24; h++ {
		heatmap = append(heatmap, domain.HeatmapHour{
			HourUTC:     fmt.Sprintf("%02d", h),
			SalesAmount: utils.Round(sales[h], 2),
			Orders:      utils.Round(orders[h], 2),
		})
	}

	report := &domain.HeatmapReport{
		UpdatedAt: utils.ISO(now),
		Status:    domain.StatusOK,
		DayUTC:    utils.ISO(todayStart)[:10],
		Heatmap:   heatmap,
	}
	if len(rows) == 0 {
		report.Status = domain.StatusUnavailable
		report.UnavailableReason = reasonNoHourlyToday
	}
	return report, nil
}
