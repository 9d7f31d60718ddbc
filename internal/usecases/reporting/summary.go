package reporting

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/aggregating"
	sn "github.com/vfg2006/retail-dashboard-api/internal/usecases/snapshotting"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

// Summary monta os KPIs do MTD contra o trecho comparável do mês anterior.
// Vendas: ShopifyQL comparável, depois mensal, depois tabela de pedidos.
func (s *Service) Summary(ctx context.Context) (*domain.SummaryReport, error) {
	now := s.now()
	monthStart := s.calendar.StartOfMonth(now)
	prevMonthStart := s.calendar.AddMonths(monthStart, -1)
	prevComparableEnd := s.calendar.PreviousMTDComparableEnd(now, monthStart)

	var (
		orderRows  []domain.OrderRow
		hourlyRows []domain.HourlyMetric
		month      *domain.MonthSnapshot
		comparable *domain.ComparableSnapshot
		sameTime   *domain.SameTimeSnapshot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(utils.Recover(func() error {
		var err error
		orderRows, err = s.fetchOrders(gctx, domain.TimeRange{Start: prevMonthStart, End: now})
		return err
	}))
	g.Go(utils.Recover(func() error {
		var err error
		hourlyRows, err = s.fetchHourly(gctx, prevMonthStart)
		return err
	}))
	g.Go(utils.Recover(func() error {
		month = s.snapshots.SafeMonth(gctx, now)
		return nil
	}))
	g.Go(utils.Recover(func() error {
		comparable = s.snapshots.SafeComparable(gctx, now)
		return nil
	}))
	g.Go(utils.Recover(func() error {
		sameTime = s.snapshots.SafeSameTime(gctx, now)
		return nil
	}))
	if err := g.Wait(); err != nil {
		return nil, err
	}

	current := domain.TimeRange{Start: monthStart, End: now}
	previous := domain.TimeRange{Start: prevMonthStart, End: prevComparableEnd}

	currentOrderRows := aggregating.ReportableOrders(aggregating.OrdersWithin(orderRows, current))
	prevOrderRows := aggregating.ReportableOrders(aggregating.OrdersWithin(orderRows, previous))
	curOrders := aggregating.AggregateOrders(currentOrderRows)
	prevOrders := aggregating.AggregateOrders(prevOrderRows)
	curHourly := aggregating.AggregateHourly(aggregating.HourlyWithin(hourlyRows, current))
	prevHourly := aggregating.AggregateHourly(aggregating.HourlyWithin(hourlyRows, previous))

	monthCurrent := month.CurrentTotals()
	monthTotal := func() *float64 {
		if monthCurrent == nil {
			return nil
		}
		return monthCurrent.TotalSales
	}
	monthNet := func() *float64 {
		if monthCurrent == nil {
			return nil
		}
		return monthCurrent.NetSales
	}

	currentSales, salesSource := sn.Pick(
		sn.From(domain.SourceShopifyQL, field(comparable, func(c *domain.ComparableSnapshot) float64 { return c.CurrentMTD })),
		sn.Candidate[float64]{Source: domain.SourceShopifyQL, Get: monthTotal},
		sn.From(domain.SourceOrdersTable, &curOrders.TotalSales),
	)
	previousSales, _ := sn.Pick(
		sn.From(domain.SourceShopifyQL, field(comparable, func(c *domain.ComparableSnapshot) float64 { return c.PreviousMTD })),
		sn.From(domain.SourceOrdersTable, &prevOrders.TotalSales),
	)
	currentOrders, _ := sn.Pick(
		sn.From(domain.SourceShopifyQL, field(comparable, func(c *domain.ComparableSnapshot) float64 { return c.CurrentMTDOrders })),
		sn.From(domain.SourceOrdersTable, utils.Float(float64(curOrders.OrdersCount))),
	)
	previousOrders, _ := sn.Pick(
		sn.From(domain.SourceShopifyQL, field(comparable, func(c *domain.ComparableSnapshot) float64 { return c.PreviousMTDOrders })),
		sn.From(domain.SourceOrdersTable, utils.Float(float64(prevOrders.OrdersCount))),
	)
	currentNet, _ := sn.Pick(
		sn.From(domain.SourceShopifyQL, field(comparable, func(c *domain.ComparableSnapshot) float64 { return c.CurrentMTDNetSales })),
		sn.Candidate[float64]{Source: domain.SourceShopifyQL, Get: monthNet},
		sn.From(domain.SourceOrdersTable, &curOrders.NetSales),
	)
	previousNet, _ := sn.Pick(
		sn.From(domain.SourceShopifyQL, field(comparable, func(c *domain.ComparableSnapshot) float64 { return c.PreviousMTDNetSales })),
		sn.From(domain.SourceOrdersTable, &prevOrders.NetSales),
	)

	currentAOV := utils.Ratio(*currentNet, *currentOrders)
	previousAOV := utils.Ratio(*previousNet, *previousOrders)
	currentROAS := utils.Ratio(*currentSales, curHourly.AdSpend)
	previousROAS := utils.Ratio(*previousSales, prevHourly.AdSpend)

	// Variações usam a comparação no mesmo horário quando disponível
	salesForChange, _ := sn.Pick(
		sn.From(domain.SourceShopifySameTime, field(sameTime, func(t *domain.SameTimeSnapshot) float64 { return t.CurrentMTDSales })),
		sn.From(salesSource, currentSales),
	)
	prevSalesForChange, _ := sn.Pick(
		sn.From(domain.SourceShopifySameTime, field(sameTime, func(t *domain.SameTimeSnapshot) float64 { return t.PreviousMTDSales })),
		sn.From(salesSource, previousSales),
	)
	ordersForChange, _ := sn.Pick(
		sn.From(domain.SourceShopifySameTime, sameTimeOrders(sameTime, true)),
		sn.From(salesSource, currentOrders),
	)
	prevOrdersForChange, _ := sn.Pick(
		sn.From(domain.SourceShopifySameTime, sameTimeOrders(sameTime, false)),
		sn.From(salesSource, previousOrders),
	)

	currentValues := domain.KPIValues{
		SalesAmount: utils.RoundPtr(currentSales, 2),
		Orders:      utils.RoundPtr(currentOrders, 2),
		AdSpend:     utils.Round(curHourly.AdSpend, 2),
		ROAS:        utils.RoundPtr(currentROAS, 4),
		AOV:         utils.RoundPtr(currentAOV, 2),
		RowCount:    len(currentOrderRows),
	}
	previousValues := domain.KPIValues{
		SalesAmount: utils.RoundPtr(previousSales, 2),
		Orders:      utils.RoundPtr(previousOrders, 2),
		AdSpend:     utils.Round(prevHourly.AdSpend, 2),
		ROAS:        utils.RoundPtr(previousROAS, 4),
		AOV:         utils.RoundPtr(previousAOV, 2),
		RowCount:    len(prevOrderRows),
	}

	if salesSource != domain.SourceShopifyQL {
		salesSource = domain.SourceOrdersTable
	}

	return &domain.SummaryReport{
		UpdatedAt: utils.ISO(now),
		Window: domain.ComparisonWindow{
			CurrentStartUTC:   utils.ISO(monthStart),
			CurrentEndUTC:     utils.ISO(now),
			PreviousStartUTC:  utils.ISO(prevMonthStart),
			PreviousEndUTC:    utils.ISO(prevComparableEnd),
			ReportingTimezone: s.calendar.Timezone(),
		},
		Summary: domain.SummaryHeadline{
			MTDSales:    currentValues.SalesAmount,
			MTDOrders:   currentValues.Orders,
			MTDAdSpend:  currentValues.AdSpend,
			MTDROAS:     currentValues.ROAS,
			MTDAOV:      currentValues.AOV,
			SalesSource: salesSource,
		},
		KPIs: domain.KPIs{
			Current:  currentValues,
			Previous: previousValues,
			Change: domain.KPIChange{
				SalesAmountPct: utils.RoundPtr(utils.PctChange(salesForChange, prevSalesForChange), 0),
				OrdersPct:      utils.RoundPtr(utils.PctChange(ordersForChange, prevOrdersForChange), 0),
				AdSpendPct:     utils.PctChange(currentValues.AdSpend, previousValues.AdSpend),
				ROASPct:        utils.PctChange(currentValues.ROAS, previousValues.ROAS),
				AOVPct:         utils.PctChange(currentAOV, previousAOV),
			},
		},
	}, nil
}

func sameTimeOrders(snapshot *domain.SameTimeSnapshot, current bool) *float64 {
	if snapshot == nil {
		return nil
	}
	if current {
		return snapshot.CurrentMTDOrders
	}
	return snapshot.PreviousMTDOrders
}

// YTD compara o ano corrente com o mesmo instante local do ano anterior.
// Sem ShopifyQL e sem pedidos na janela, o valor fica nulo e a origem "unavailable".
func (s *Service) YTD(ctx context.Context) (*domain.YTDReport, error) {
	now := s.now()
	yearStart := s.calendar.StartOfYear(now)
	prevYearStart := s.calendar.AddYears(yearStart, -1)
	prevComparableEnd := s.calendar.PreviousYTDComparableEnd(now)
	prevYearEnd := yearStart.Add(-time.Millisecond)

	snapshot := s.snapshots.SafeYTD(ctx, now)

	orderRows, err := s.fetchOrders(ctx, domain.TimeRange{Start: prevYearStart, End: now})
	if err != nil {
		return nil, err
	}

	currentRows := aggregating.ReportableOrders(aggregating.OrdersWithin(orderRows, domain.TimeRange{Start: yearStart, End: now}))
	previousRows := aggregating.ReportableOrders(aggregating.OrdersWithin(orderRows, domain.TimeRange{Start: prevYearStart, End: prevComparableEnd}))
	fullYearRows := aggregating.ReportableOrders(aggregating.OrdersWithin(orderRows, domain.TimeRange{Start: prevYearStart, End: prevYearEnd}))

	cur := aggregating.AggregateOrders(currentRows)
	prev := aggregating.AggregateOrders(previousRows)
	full := aggregating.AggregateOrders(fullYearRows)

	fromTable := func(rows []domain.OrderRow, v float64) sn.Candidate[float64] {
		return sn.Candidate[float64]{Source: domain.SourceOrdersTable, Get: func() *float64 {
			if len(rows) == 0 {
				return nil
			}
			return &v
		}}
	}
	fromSnapshot := func(get func(*domain.YTDSnapshot) float64) sn.Candidate[float64] {
		return sn.From(domain.SourceShopifyQL, field(snapshot, get))
	}

	currentSales, salesSource := sn.PickOr(domain.SourceUnavailable,
		fromSnapshot(func(y *domain.YTDSnapshot) float64 { return y.CurrentYTDSales }),
		fromTable(currentRows, cur.TotalSales),
	)
	previousSales, _ := sn.Pick(
		fromSnapshot(func(y *domain.YTDSnapshot) float64 { return y.PreviousYTDSales }),
		fromTable(previousRows, prev.TotalSales),
	)
	currentOrders, ordersSource := sn.PickOr(domain.SourceUnavailable,
		fromSnapshot(func(y *domain.YTDSnapshot) float64 { return y.CurrentYTDOrders }),
		fromTable(currentRows, float64(cur.OrdersCount)),
	)
	previousOrders, _ := sn.Pick(
		fromSnapshot(func(y *domain.YTDSnapshot) float64 { return y.PreviousYTDOrders }),
		fromTable(previousRows, float64(prev.OrdersCount)),
	)
	fullYearSales, _ := sn.Pick(
		fromSnapshot(func(y *domain.YTDSnapshot) float64 { return y.PreviousFullYearSales }),
		fromTable(fullYearRows, full.TotalSales),
	)
	fullYearOrders, _ := sn.Pick(
		fromSnapshot(func(y *domain.YTDSnapshot) float64 { return y.PreviousFullYearOrders }),
		fromTable(fullYearRows, float64(full.OrdersCount)),
	)

	salesPct := utils.PctChange(currentSales, previousSales)

	return &domain.YTDReport{
		UpdatedAt: utils.ISO(now),
		Period: domain.ComparisonWindow{
			CurrentStartUTC:   utils.ISO(yearStart),
			CurrentEndUTC:     utils.ISO(now),
			PreviousStartUTC:  utils.ISO(prevYearStart),
			PreviousEndUTC:    utils.ISO(prevComparableEnd),
			ReportingTimezone: s.calendar.Timezone(),
			ComparisonBasis:   domain.ComparisonBasisSameLocalDatetime,
		},
		Current: domain.PeriodTotals{
			SalesAmount: utils.RoundPtr(currentSales, 2),
			Orders:      utils.RoundPtr(currentOrders, 0),
			RowCount:    len(currentRows),
		},
		Previous: domain.PeriodTotals{
			SalesAmount: utils.RoundPtr(previousSales, 2),
			Orders:      utils.RoundPtr(previousOrders, 0),
			RowCount:    len(previousRows),
		},
		PreviousYear: domain.PreviousYearTotals{
			SalesAmount: utils.RoundPtr(fullYearSales, 2),
			Orders:      utils.RoundPtr(fullYearOrders, 0),
			RowCount:    len(fullYearRows),
			StartUTC:    utils.ISO(prevYearStart),
			EndUTC:      utils.ISO(prevYearEnd),
		},
		Change: domain.YTDChange{
			SalesAmountPct: salesPct,
			OrdersPct:      utils.PctChange(currentOrders, previousOrders),
			GrowthRatePct:  salesPct,
		},
		Source: domain.YTDSources{
			Sales:  salesSource,
			Orders: ordersSource,
		},
	}, nil
}
