package reporting

import (
	"context"
	"math"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/aggregating"
	sn "github.com/vfg2006/retail-dashboard-api/internal/usecases/snapshotting"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

const (
	reasonAOVUnavailable  = "AOV data unavailable"
	reasonMissingReports  = "Missing Shopify app scope: read_reports"
	scopeReadReports      = "read_reports"
	reasonOrdersFetch     = "Orders table fetch failed"
	reasonNoOrdersInMonth = "No orders in the current month"
)

// monthSales resolve os totais do MTD: snapshot mensal do ShopifyQL ou tabela de pedidos
type monthSales struct {
	total  *float64
	gross  *float64
	net    *float64
	source string
}

func resolveMonthSales(totals *domain.SalesTotals, fallback aggregating.OrderTotals) monthSales {
	get := func(read func(*domain.SalesTotals) *float64) sn.Candidate[float64] {
		return sn.Candidate[float64]{Source: domain.SourceShopifyQL, Get: func() *float64 {
			if totals == nil {
				return nil
			}
			return read(totals)
		}}
	}

	total, source := sn.Pick(
		get(func(t *domain.SalesTotals) *float64 { return t.TotalSales }),
		sn.From(domain.SourceOrdersTable, &fallback.TotalSales),
	)
	gross, _ := sn.Pick(
		get(func(t *domain.SalesTotals) *float64 { return t.GrossSales }),
		sn.From(domain.SourceOrdersTable, &fallback.GrossSales),
	)
	net, _ := sn.Pick(
		get(func(t *domain.SalesTotals) *float64 { return t.NetSales }),
		sn.From(domain.SourceOrdersTable, &fallback.NetSales),
	)
	return monthSales{total: total, gross: gross, net: net, source: source}
}

// envTarget devolve a meta configurada, ou nil quando não há
func (s *Service) envTarget() *float64 {
	if s.cfg.Reporting.MonthlySalesTarget > 0 {
		v := s.cfg.Reporting.MonthlySalesTarget
		return &v
	}
	return nil
}

func (s *Service) DailySalesPace(ctx context.Context) (*domain.PaceReport, error) {
	now := s.now()
	monthStart, window := s.monthWindow(now)
	prevMonthStart := s.calendar.AddMonths(monthStart, -1)
	prevMonthEnd := monthStart.Add(-time.Second)

	var (
		orderRows []domain.OrderRow
		month     *domain.MonthSnapshot
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(utils.Recover(func() error {
		var err error
		orderRows, err = s.fetchOrders(gctx, domain.TimeRange{Start: prevMonthStart, End: now})
		return err
	}))
	g.Go(utils.Recover(func() error {
		month = s.snapshots.SafeMonth(gctx, now)
		return nil
	}))
	if err := g.Wait(); err != nil {
		return nil, err
	}

	monthOrders := aggregating.OrdersWithin(orderRows, window)
	prevOrders := aggregating.AggregateOrders(aggregating.OrdersWithin(orderRows, domain.TimeRange{Start: prevMonthStart, End: prevMonthEnd}))
	mtd := resolveMonthSales(month.CurrentTotals(), aggregating.AggregateOrders(monthOrders))
	prev := resolveMonthSales(month.PreviousTotals(), prevOrders)

	target, targetSource := sn.Pick(
		sn.From(domain.SourceEnvTarget, s.envTarget()),
		sn.Candidate[float64]{Source: domain.SourcePreviousMonth, Get: func() *float64 {
			if *prev.total == 0 {
				return nil
			}
			return prev.total
		}},
	)
	if targetSource == "" {
		targetSource = domain.SourcePreviousMonth
	}

	todaySales := aggregating.AggregateOrders(aggregating.OrdersWithin(monthOrders, domain.TimeRange{Start: s.calendar.StartOfDay(now), End: now})).TotalSales

	dayOfMonth := s.calendar.DayOfMonth(now)
	daysRemaining := max(0, s.calendar.DaysInMonth(now)-dayOfMonth)

	var (
		required *float64
		onTrack  *bool
	)
	if target != nil && *target > 0 {
		required = utils.Float(math.Max(0, (*target-*mtd.total)/float64(max(1, daysRemaining))))
		track := todaySales >= *required
		onTrack = &track
	}

	return &domain.PaceReport{
		UpdatedAt:               utils.ISO(now),
		TargetSource:            targetSource,
		SalesSource:             mtd.source,
		MonthGoal:               utils.RoundPtr(target, 2),
		MTDSales:                utils.RoundPtr(mtd.total, 2),
		MTDGrossSales:           utils.RoundPtr(mtd.gross, 2),
		MTDNetSales:             utils.RoundPtr(mtd.net, 2),
		TodaySales:              utils.Round(todaySales, 2),
		RequiredDailyPace:       utils.RoundPtr(required, 2),
		OnTrackToday:            onTrack,
		PreviousMonthGrossSales: utils.RoundPtr(prev.gross, 2),
		PreviousMonthTotalSales: utils.RoundPtr(prev.total, 2),
		PreviousMonthNetSales:   utils.RoundPtr(prev.net, 2),
		PreviousMonthOrders:     prevOrders.OrdersCount,
		DaysElapsed:             dayOfMonth,
		DaysRemaining:           daysRemaining,
	}, nil
}

// MTDProjection extrapola o ritmo diário do mês até o último dia
func (s *Service) MTDProjection(ctx context.Context) (*domain.ProjectionReport, error) {
	now := s.now()
	_, window := s.monthWindow(now)

	var (
		orderRows []domain.OrderRow
		month     *domain.MonthSnapshot
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(utils.Recover(func() error {
		var err error
		orderRows, err = s.fetchOrders(gctx, window)
		return err
	}))
	g.Go(utils.Recover(func() error {
		month = s.snapshots.SafeMonth(gctx, now)
		return nil
	}))
	if err := g.Wait(); err != nil {
		return nil, err
	}

	mtd := resolveMonthSales(month.CurrentTotals(), aggregating.AggregateOrders(aggregating.OrdersWithin(orderRows, window)))

	dayOfMonth := s.calendar.DayOfMonth(now)
	daysInMonth := s.calendar.DaysInMonth(now)

	var runRate, projected *float64
	if dayOfMonth > 0 {
		runRate = utils.Float(*mtd.total / float64(dayOfMonth))
		projected = utils.Float(*runRate * float64(daysInMonth))
	}

	goal := s.envTarget()
	var progress, projectedVsTarget *float64
	if goal != nil {
		progress = utils.Round(*mtd.total / *goal * 100, 2)
		if projected != nil {
			projectedVsTarget = utils.Round((*projected-*goal) / *goal * 100, 2)
		}
	}

	return &domain.ProjectionReport{
		UpdatedAt:              utils.ISO(now),
		SalesSource:            mtd.source,
		MTDSales:               utils.RoundPtr(mtd.total, 2),
		MTDGrossSales:          utils.RoundPtr(mtd.gross, 2),
		MTDNetSales:            utils.RoundPtr(mtd.net, 2),
		ProgressPctOfTarget:    progress,
		ProjectedMonthEndSales: utils.RoundPtr(projected, 2),
		ProjectedVsTargetPct:   projectedVsTarget,
		RunRateDailySales:      utils.RoundPtr(runRate, 2),
		MonthGoal:              utils.RoundPtr(goal, 2),
		DaysElapsed:            dayOfMonth,
		DaysInMonth:            daysInMonth,
	}, nil
}

func (s *Service) GrossNetReturns(ctx context.Context) (*domain.GrossNetReturnsReport, error) {
	now := s.now()
	_, window := s.monthWindow(now)

	orderRows, err := s.fetchOrders(ctx, window)
	if err != nil {
		return nil, err
	}
	totals := aggregating.AggregateOrders(aggregating.OrdersWithin(orderRows, window))

	var returnsRate *float64
	if totals.NetSales > 0 {
		returnsRate = utils.Round(totals.ReturnsAmount/totals.NetSales*100, 2)
	}

	return &domain.GrossNetReturnsReport{
		UpdatedAt:           utils.ISO(now),
		Period:              period(window),
		GrossSales:          totals.GrossSales,
		NetSales:            totals.NetSales,
		TotalSales:          totals.TotalSales,
		ReturnsAmount:       totals.ReturnsAmount,
		ReturnsRatePctOfNet: returnsRate,
		OrdersCount:         totals.OrdersCount,
	}, nil
}

// AOV nunca falha: erros de pedidos e do ShopifyQL viram status "unavailable"
func (s *Service) AOV(ctx context.Context) (*domain.AOVReport, error) {
	now := s.now()
	monthStart, window := s.monthWindow(now)
	prevMonthStart := s.calendar.AddMonths(monthStart, -1)
	prevComparableEnd := s.calendar.PreviousMTDComparableEnd(now, monthStart)

	var (
		orderRows     []domain.OrderRow
		comparable    *domain.ComparableSnapshot
		ordersErr     error
		comparableErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(utils.Recover(func() error {
		orderRows, ordersErr = s.fetchOrders(gctx, domain.TimeRange{Start: prevMonthStart, End: now})
		if ordersErr != nil {
			logrus.WithError(ordersErr).Warn("orders fallback unavailable in aov")
		}
		return nil
	}))
	g.Go(utils.Recover(func() error {
		comparable, comparableErr = s.snapshots.Comparable(gctx, now)
		if comparableErr != nil {
			logrus.WithError(comparableErr).Warn("shopifyql comparable snapshot unavailable in aov")
		}
		return nil
	}))
	_ = g.Wait()

	current := aggregating.AggregateOrders(aggregating.OrdersWithin(orderRows, window))
	previous := aggregating.AggregateOrders(aggregating.OrdersWithin(orderRows, domain.TimeRange{Start: prevMonthStart, End: prevComparableEnd}))

	hasShopify := comparable != nil
	currentNet, previousNet := current.NetSales, previous.NetSales
	currentOrders, previousOrders := float64(current.OrdersCount), float64(previous.OrdersCount)
	sourceSales, sourceOrders := domain.SourceOrdersTable, domain.SourceOrdersTable
	if hasShopify {
		currentNet, previousNet = comparable.CurrentMTDNetSales, comparable.PreviousMTDNetSales
		currentOrders, previousOrders = comparable.CurrentMTDOrders, comparable.PreviousMTDOrders
		sourceSales, sourceOrders = domain.SourceShopifyQL, domain.SourceShopifyQL
	}

	currentAOV := utils.Ratio(currentNet, currentOrders)
	previousAOV := utils.Ratio(previousNet, previousOrders)

	status, reason := domain.StatusOK, ""
	if currentAOV == nil || previousAOV == nil {
		status = domain.StatusUnavailable
		switch {
		case comparableErr != nil:
			reason = comparableErr.Error()
		case ordersErr != nil:
			reason = reasonOrdersFetch + ": " + ordersErr.Error()
		default:
			reason = reasonAOVUnavailable
		}
	}

	return &domain.AOVReport{
		UpdatedAt:         utils.ISO(now),
		Status:            status,
		SourceSales:       sourceSales,
		SourceOrders:      sourceOrders,
		UnavailableReason: reason,
		Period: domain.ComparisonWindow{
			CurrentStartUTC:  utils.ISO(monthStart),
			CurrentEndUTC:    utils.ISO(now),
			PreviousStartUTC: utils.ISO(prevMonthStart),
			PreviousEndUTC:   utils.ISO(prevComparableEnd),
		},
		MTDAOV:              utils.RoundPtr(currentAOV, 2),
		PreviousPeriodAOV:   utils.RoundPtr(previousAOV, 2),
		AOVChangePct:        utils.PctChange(currentAOV, previousAOV),
		MTDOrders:           utils.Round(currentOrders, 2),
		MTDNetSales:         utils.Round(currentNet, 2),
		PreviousMTDNetSales: utils.Round(previousNet, 2),
		MTDSales:            utils.Round(currentNet, 2),
	}, nil
}

// WebsiteSessionsMTD nunca falha; sem sessões, verifica se falta o escopo read_reports
func (s *Service) WebsiteSessionsMTD(ctx context.Context) (*domain.SessionsReport, error) {
	now := s.now()
	monthStart := s.calendar.StartOfMonth(now)
	prevMonthStart := s.calendar.AddMonths(monthStart, -1)
	prevComparableEnd := s.calendar.PreviousMTDComparableEnd(now, monthStart)

	reason := ""
	snapshot, err := s.snapshots.Sessions(ctx, now)
	if err != nil {
		reason = err.Error()
		logrus.WithError(err).Warn("shopifyql sessions snapshot unavailable")
	}

	report := &domain.SessionsReport{
		UpdatedAt: utils.ISO(now),
		Status:    domain.StatusUnavailable,
		Source:    domain.SourceShopifyQL,
		Period: domain.ComparisonWindow{
			CurrentStartUTC:  utils.ISO(monthStart),
			CurrentEndUTC:    utils.ISO(now),
			PreviousStartUTC: utils.ISO(prevMonthStart),
			PreviousEndUTC:   utils.ISO(prevComparableEnd),
		},
	}

	if snapshot != nil {
		current, previous := snapshot.CurrentMTD, snapshot.PreviousMTD
		report.Status = domain.StatusOK
		if snapshot.Source != "" {
			report.Source = snapshot.Source
		}
		if snapshot.Metric != "" {
			metric := snapshot.Metric
			report.Metric = &metric
		}
		report.QueryUsed = snapshot.QueryUsed
		report.MTDSessions = utils.Round(current, 0)
		report.PreviousMTDSessions = utils.Round(previous, 0)
		report.SessionsChange = utils.Round(current-previous, 0)
		report.SessionsChangePct = utils.PctChange(&current, &previous)
		return report, nil
	}

	if reason == "" && s.shopify.IsConfigured() {
		scopes, scopesErr := s.shopify.AccessScopes(ctx)
		switch {
		case scopesErr != nil:
			logrus.WithError(scopesErr).Warn("shopify access scopes check failed for sessions")
		case len(scopes) > 0 && !slices.Contains(scopes, scopeReadReports):
			reason = reasonMissingReports
		}
	}
	report.UnavailableReason = reason

	return report, nil
}
