package reporting

import (
	"context"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/internal/usecases/aggregating"
	sn "github.com/vfg2006/retail-dashboard-api/internal/usecases/snapshotting"
	"github.com/vfg2006/retail-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Goal acompanha o mês corrente contra a meta. A meta vem, nesta ordem, da tabela
// monthly_targets, de MONTHLY_SALES_TARGET ou do mês anterior vezes o multiplicador.
func (s *Service) Goal(ctx context.Context) (*domain.GoalReport, error) {
	now := s.now()
	monthStart, window := s.monthWindow(now)
	prevMonthStart := s.calendar.AddMonths(monthStart, -1)
	prevMonthEnd := monthStart.Add(-time.Second)
	month := s.calendar.ToYMD(now)[:7]

	var (
		orderRows []domain.OrderRow
		snapshot  *domain.MonthSnapshot
		stored    *domain.MonthlyTarget
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(utils.Recover(func() error {
		var err error
		orderRows, err = s.fetchOrders(gctx, domain.TimeRange{Start: prevMonthStart, End: now})
		return err
	}))
	g.Go(utils.Recover(func() error {
		snapshot = s.snapshots.SafeMonth(gctx, now)
		return nil
	}))
	g.Go(utils.Recover(func() error {
		var err error
		stored, err = s.targets.Get(gctx, month)
		if err != nil {
			// sem a meta cadastrada seguimos com as outras origens
			logrus.WithError(err).WithField("month", month).Warn("stored monthly target unavailable")
			stored = nil
		}
		return nil
	}))
	if err := g.Wait(); err != nil {
		return nil, err
	}

	current := resolveMonthSales(snapshot.CurrentTotals(), aggregating.AggregateOrders(aggregating.OrdersWithin(orderRows, window)))
	previous := resolveMonthSales(snapshot.PreviousTotals(), aggregating.AggregateOrders(aggregating.OrdersWithin(orderRows, domain.TimeRange{Start: prevMonthStart, End: prevMonthEnd})))

	multiplier := s.cfg.Reporting.TargetMultiplier
	if multiplier <= 0 {
		multiplier = 1
	}

	target, targetSource := sn.PickOr(domain.SourceUnavailable,
		sn.Candidate[float64]{Source: domain.SourceStoredTarget, Get: func() *float64 {
			if stored == nil {
				return nil
			}
			return &stored.Target
		}},
		sn.From(domain.SourceEnvTarget, s.envTarget()),
		sn.Candidate[float64]{Source: domain.SourcePreviousMonth, Get: func() *float64 {
			return utils.Round(*previous.total*multiplier, 2)
		}},
	)

	dayOfMonth := s.calendar.DayOfMonth(now)
	daysInMonth := s.calendar.DaysInMonth(now)

	report := &domain.GoalReport{
		UpdatedAt:            utils.ISO(now),
		Month:                month,
		Status:               domain.GoalStatusUnavailable,
		CurrentMTD:           utils.RoundPtr(current.total, 2),
		PreviousMonthTotal:   utils.RoundPtr(previous.total, 2),
		PreviousMonthSource:  previous.source,
		TargetSource:         targetSource,
		Multiplier:           multiplier,
		GapPrevious:          signedGap(*current.total, *previous.total),
		GrowthVsLastMonthPct: utils.PctChange(current.total, previous.total),
		DaysElapsed:          dayOfMonth,
		DaysInMonth:          daysInMonth,
	}

	if target == nil || *target <= 0 {
		return report, nil
	}

	progress := *current.total / *target * 100
	expected := float64(dayOfMonth) / float64(daysInMonth) * 100

	report.Target = utils.Round(*target, 2)
	report.ProgressPct = utils.Round(progress, 2)
	report.ExpectedProgressPct = utils.Round(expected, 2)
	report.BeatTarget = *current.total >= *target
	report.OnPace = utils.RoundValue(progress, 2) >= utils.RoundValue(expected, 2)
	report.GapTarget = signedGap(*current.total, *target)

	switch {
	case report.BeatTarget:
		report.Status = domain.GoalStatusAchieved
	case report.OnPace:
		report.Status = domain.GoalStatusOnPace
	default:
		report.Status = domain.GoalStatusBehindPace
	}

	return report, nil
}

// signedGap formata a diferença com sinal explícito ("+2000", "-150.5")
func signedGap(value, reference float64) string {
	if value >= reference {
		return "+" + utils.FormatAmount(value-reference)
	}
	return "-" + utils.FormatAmount(reference-value)
}

func (s *Service) ListTargets(ctx context.Context) ([]domain.MonthlyTarget, error) {
	targets, err := s.targets.List(ctx)
	if err != nil {
		return nil, wrapFetch(ErrFetchTarget, apiErrors.ErrDatabaseOperation, err)
	}
	if targets == nil {
		targets = []domain.MonthlyTarget{}
	}
	return targets, nil
}

// UpsertTarget grava a meta de um mês YYYY-MM
func (s *Service) UpsertTarget(ctx context.Context, month string, target float64) (*domain.MonthlyTarget, error) {
	if !monthPattern.MatchString(month) {
		return nil, NewReportError(ErrInvalidMonth, apiErrors.ErrInvalidMonth, month)
	}
	if target <= 0 {
		return nil, NewReportError(ErrInvalidTarget, apiErrors.ErrInvalidTarget, "")
	}

	saved := domain.MonthlyTarget{
		Month:     month,
		Target:    utils.RoundValue(target, 2),
		UpdatedAt: s.now(),
	}
	if err := s.targets.Upsert(ctx, saved); err != nil {
		return nil, wrapFetch(ErrSaveTarget, apiErrors.ErrDatabaseOperation, err)
	}

	logrus.WithFields(logrus.Fields{"month": month, "target": saved.Target}).Info("monthly target saved")

	return &saved, nil
}
