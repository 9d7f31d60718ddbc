package snapshotting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	shopifydomain "github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

const ga4SessionsQuery = "ga4 runReport metric=sessions"

var (
	sessionMetricColumns = []string{"sessions", "online_store_visitors", "online_store_sessions", "visitors"}
	sessionDayColumns    = []string{"day", "date", "time"}
)

type compareCandidate struct {
	metric string
	query  string
}

// Sessions busca as sessões do MTD contra o trecho comparável do mês anterior.
// Ordem: ShopifyQL com COMPARE TO, consultas diárias do ShopifyQL, relatório do GA4.
func (s *Service) Sessions(ctx context.Context, now time.Time) (*domain.SessionsSnapshot, error) {
	monthStart := s.calendar.StartOfMonth(now)
	prevMonthStart := s.calendar.AddMonths(monthStart, -1)
	prevComparableEnd := s.calendar.PreviousMTDComparableEnd(now, monthStart)
	tomorrow := s.calendar.AddDays(s.calendar.StartOfDay(now), 1)

	var lastErr error
	if s.shopify.IsConfigured() {
		if snapshot := s.sessionsFromComparison(ctx, monthStart, prevComparableEnd); snapshot != nil {
			return snapshot, nil
		}

		snapshot, err := s.sessionsFromDaily(ctx, monthStart, prevMonthStart, prevComparableEnd, tomorrow)
		if err != nil {
			logrus.WithError(err).Warn("snapshot: sessões diárias do ShopifyQL indisponíveis")
			lastErr = err
		}
		if snapshot != nil {
			return snapshot, nil
		}
	}

	snapshot, err := s.sessionsFromGA4(ctx, now, monthStart, prevMonthStart, prevComparableEnd)
	if err != nil {
		logrus.WithError(err).Warn("snapshot: sessões do GA4 indisponíveis")
		if lastErr == nil {
			lastErr = err
		}
	}
	if snapshot != nil {
		return snapshot, nil
	}

	return nil, lastErr
}

func (s *Service) sessionsFromComparison(ctx context.Context, monthStart, prevComparableEnd time.Time) *domain.SessionsSnapshot {
	since := s.calendar.ToYMD(monthStart)
	candidates := []compareCandidate{
		{metric: "sessions"},
		{metric: "online_store_visitors"},
		{metric: "online_store_sessions"},
	}

	for _, c := range candidates {
		c.query = fmt.Sprintf("FROM sales, sessions SHOW %s SINCE %s UNTIL today COMPARE TO previous_period", c.metric, since)

		table, err := s.shopify.Query(ctx, c.query)
		if err != nil {
			logrus.WithError(err).WithField("metric", c.metric).Debug("snapshot: candidato COMPARE TO falhou")
			continue
		}
		if table == nil || len(table.Rows) == 0 {
			continue
		}

		metric := table.PickColumn(c.metric, "sessions", "online_store_visitors", "online_store_sessions")
		if metric == "" {
			continue
		}
		comparison := table.FindColumn(func(name string) bool {
			return strings.HasPrefix(name, "comparison_"+metric) && strings.Contains(name, "previous_period")
		})
		if comparison == "" {
			continue
		}

		row := table.Rows[0]
		current := utils.CleanNumber(table.Cell(row, metric))
		previous := utils.CleanNumber(table.Cell(row, comparison))
		if current == nil || previous == nil {
			continue
		}

		return &domain.SessionsSnapshot{
			Source:      domain.SourceShopifyQL,
			Metric:      metric,
			QueryUsed:   c.query,
			CurrentMTD:  utils.RoundValue(*current, 2),
			PreviousMTD: utils.RoundValue(*previous, 2),
			Range: domain.SnapshotRange{
				Since:          since,
				Until:          "today",
				PreviousEndUTC: utils.ISO(prevComparableEnd),
			},
		}
	}

	return nil
}

func dailySessionQueries(since, until string) []string {
	return []string{
		fmt.Sprintf("FROM sales, sessions SHOW day, sessions GROUP BY day SINCE %s UNTIL %s ORDER BY day", since, until),
		fmt.Sprintf("FROM sales, sessions SHOW day, online_store_visitors GROUP BY day SINCE %s UNTIL %s ORDER BY day", since, until),
		fmt.Sprintf("FROM sales, sessions SHOW day, online_store_sessions GROUP BY day SINCE %s UNTIL %s ORDER BY day", since, until),
		fmt.Sprintf("FROM sales, sessions SHOW day, visitors GROUP BY day SINCE %s UNTIL %s ORDER BY day", since, until),
		fmt.Sprintf("FROM sales, sessions SHOW sessions SINCE %s UNTIL %s TIMESERIES day ORDER BY day", since, until),
		fmt.Sprintf("FROM sales, sessions SHOW online_store_visitors SINCE %s UNTIL %s TIMESERIES day ORDER BY day", since, until),
		fmt.Sprintf("FROM sales, sessions SHOW online_store_sessions SINCE %s UNTIL %s TIMESERIES day ORDER BY day", since, until),
		fmt.Sprintf("FROM sales, sessions SHOW visitors SINCE %s UNTIL %s TIMESERIES day ORDER BY day", since, until),
		fmt.Sprintf("FROM sessions SHOW sessions TIMESERIES day SINCE %s UNTIL %s", since, until),
		fmt.Sprintf("FROM sessions SHOW online_store_sessions TIMESERIES day SINCE %s UNTIL %s", since, until),
		fmt.Sprintf("FROM sessions SHOW online_store_visitors TIMESERIES day SINCE %s UNTIL %s", since, until),
		fmt.Sprintf("FROM visits SHOW sessions TIMESERIES day SINCE %s UNTIL %s", since, until),
		fmt.Sprintf("FROM visits SHOW online_store_sessions TIMESERIES day SINCE %s UNTIL %s", since, until),
		fmt.Sprintf("FROM visits SHOW online_store_visitors TIMESERIES day SINCE %s UNTIL %s", since, until),
		fmt.Sprintf("FROM sessions SHOW sessions GROUP BY day SINCE %s UNTIL %s", since, until),
		fmt.Sprintf("FROM sessions SHOW online_store_sessions GROUP BY day SINCE %s UNTIL %s", since, until),
		fmt.Sprintf("FROM sessions SHOW online_store_visitors GROUP BY day SINCE %s UNTIL %s", since, until),
		fmt.Sprintf("FROM sales, sessions SHOW sessions TIMESERIES day SINCE %s UNTIL %s", since, until),
	}
}

// sessionsFromDaily tenta as consultas diárias em ordem; devolve o último erro só se nenhuma servir
func (s *Service) sessionsFromDaily(ctx context.Context, monthStart, prevMonthStart, prevComparableEnd, tomorrow time.Time) (*domain.SessionsSnapshot, error) {
	since := s.calendar.ToYMD(prevMonthStart)
	until := s.calendar.ToYMD(tomorrow)

	var (
		table     *shopifydomain.ShopifyQLResult
		metric    string
		dayColumn string
		queryUsed string
		lastErr   error
	)

	for _, query := range dailySessionQueries(since, until) {
		candidate, err := s.shopify.Query(ctx, query)
		if err != nil {
			lastErr = err
			continue
		}
		if candidate == nil {
			continue
		}

		m := candidate.PickColumn(sessionMetricColumns...)
		d := candidate.PickColumn(sessionDayColumns...)
		if m == "" || d == "" {
			continue
		}

		table, metric, dayColumn, queryUsed = candidate, m, d, query
		break
	}

	if table == nil {
		return nil, lastErr
	}

	currentPrefix := s.calendar.ToYMD(monthStart)[:7]
	previousPrefix := since[:7]
	comparableDay := s.calendar.DayOfMonth(prevComparableEnd)

	var current, previous float64
	for _, row := range table.Rows {
		key := dayKey(table.Text(row, dayColumn))
		sessions := utils.CleanNumber(table.Cell(row, metric))
		if key == "" || sessions == nil {
			continue
		}

		switch key[:7] {
		case currentPrefix:
			current += *sessions
		case previousPrefix:
			if day, ok := dayOfMonth(key); ok && day <= comparableDay {
				previous += *sessions
			}
		}
	}

	return &domain.SessionsSnapshot{
		Source:      domain.SourceShopifyQL,
		Metric:      metric,
		QueryUsed:   queryUsed,
		CurrentMTD:  utils.RoundValue(current, 2),
		PreviousMTD: utils.RoundValue(previous, 2),
		Range: domain.SnapshotRange{
			Since:          since,
			Until:          until,
			PreviousEndUTC: utils.ISO(prevComparableEnd),
		},
	}, nil
}

// sessionsFromGA4 consulta as duas janelas no GA4; datas inclusivas no fuso de relatório
func (s *Service) sessionsFromGA4(ctx context.Context, now, monthStart, prevMonthStart, prevComparableEnd time.Time) (*domain.SessionsSnapshot, error) {
	if s.ga4 == nil || !s.ga4.IsEnabled() {
		return nil, nil
	}

	since := s.calendar.ToYMD(monthStart)
	until := s.calendar.ToYMD(now)
	prevSince := s.calendar.ToYMD(prevMonthStart)
	prevUntil := s.calendar.ToYMD(prevComparableEnd)

	current, err := s.ga4.Sessions(ctx, since, until)
	if err != nil {
		return nil, err
	}
	previous, err := s.ga4.Sessions(ctx, prevSince, prevUntil)
	if err != nil {
		return nil, err
	}
	if current == nil || previous == nil {
		return nil, nil
	}

	return &domain.SessionsSnapshot{
		Source:      domain.SourceGA4,
		Metric:      "sessions",
		QueryUsed:   ga4SessionsQuery,
		CurrentMTD:  utils.RoundValue(*current, 2),
		PreviousMTD: utils.RoundValue(*previous, 2),
		Range: domain.SnapshotRange{
			Since:          since,
			Until:          until,
			PreviousEndUTC: utils.ISO(prevComparableEnd),
		},
	}, nil
}
