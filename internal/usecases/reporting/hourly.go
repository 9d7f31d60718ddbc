package reporting

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

const (
	latestLookbackDays = 7
	unknownSource      = "unknown"
	hourBucketLayout   = "2006-01-02T15"
	dayBucketLayout    = "2006-01-02"
)

// hourlySinceDays lê a série horária dos últimos N dias, em ordem crescente
func (s *Service) hourlySinceDays(ctx context.Context, days int) (time.Time, []domain.HourlyMetric, error) {
	now := s.now()
	rows, err := s.fetchHourly(ctx, now.Add(-time.Duration(days)*24*time.Hour))
	if err != nil {
		return now, nil, err
	}
	return now, rows, nil
}

func (s *Service) Clean(ctx context.Context, days int) (*domain.CleanReport, error) {
	now, rows, err := s.hourlySinceDays(ctx, days)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.HourlyMetric{}
	}

	return &domain.CleanReport{
		UpdatedAt: utils.ISO(now),
		Days:      days,
		RowCount:  len(rows),
		Rows:      rows,
		Data:      rows,
	}, nil
}

func (s *Service) Latest(ctx context.Context) (*domain.LatestReport, error) {
	now, rows, err := s.hourlySinceDays(ctx, latestLookbackDays)
	if err != nil {
		return nil, err
	}

	report := &domain.LatestReport{UpdatedAt: utils.ISO(now)}
	if len(rows) > 0 {
		latest := rows[len(rows)-1]
		report.Latest = &latest
	}
	return report, nil
}

func (s *Service) HourlyTrend(ctx context.Context, days int) (*domain.TrendReport[domain.HourlyTrendPoint], error) {
	now, rows, err := s.hourlySinceDays(ctx, days)
	if err != nil {
		return nil, err
	}

	series := make([]domain.HourlyTrendPoint, 0, len(rows))
	for _, row := range rows {
		var aov *float64
		if orders := utils.Value(row.Orders); orders != 0 {
			aov = utils.Round(utils.Value(row.SalesAmount)/orders, 2)
		}
		series = append(series, domain.HourlyTrendPoint{
			LoggedAtUTC:   utils.ISO(row.LoggedAtUTC),
			LoggedAtLocal: row.LoggedAtLocal,
			SalesAmount:   row.SalesAmount,
			Orders:        row.Orders,
			AdSpend:       row.AdSpend,
			ROAS:          row.ROAS,
			AOV:           aov,
		})
	}

	return &domain.TrendReport[domain.HourlyTrendPoint]{
		UpdatedAt: utils.ISO(now),
		Days:      days,
		Points:    len(series),
		Series:    series,
	}, nil
}

// DailyTrend agrupa a série horária por dia UTC
func (s *Service) DailyTrend(ctx context.Context, days int) (*domain.TrendReport[domain.DailyTrendPoint], error) {
	now, rows, err := s.hourlySinceDays(ctx, days)
	if err != nil {
		return nil, err
	}

	type dayTotals struct {
		sales, orders, adSpend float64
		rows                   int
	}
	byDay := make(map[string]*dayTotals)
	for _, row := range rows {
		day := row.LoggedAtUTC.UTC().Format(dayBucketLayout)
		t, ok := byDay[day]
		if !ok {
			t = &dayTotals{}
			byDay[day] = t
		}
		t.sales += utils.Value(row.SalesAmount)
		t.orders += utils.Value(row.Orders)
		t.adSpend += utils.Value(row.AdSpend)
		t.rows++
	}

	keys := make([]string, 0, len(byDay))
	for day := range byDay {
		keys = append(keys, day)
	}
	sort.Strings(keys)

	series := make([]domain.DailyTrendPoint, 0, len(keys))
	for _, day := range keys {
		t := byDay[day]
		series = append(series, domain.DailyTrendPoint{
			Day:         day,
			SalesAmount: utils.Round(t.sales, 2),
			Orders:      utils.Round(t.orders, 2),
			AdSpend:     utils.Round(t.adSpend, 2),
			AOV:         utils.RoundPtr(utils.Ratio(t.sales, t.orders), 2),
			ROAS:        utils.RoundPtr(utils.Ratio(t.sales, t.adSpend), 4),
			Rows:        t.rows,
		})
	}

	return &domain.TrendReport[domain.DailyTrendPoint]{
		UpdatedAt: utils.ISO(now),
		Days:      days,
		Points:    len(series),
		Series:    series,
	}, nil
}

func (s *Service) Quality(ctx context.Context, days int) (*domain.QualityReport, error) {
	now, rows, err := s.hourlySinceDays(ctx, days)
	if err != nil {
		return nil, err
	}

	return &domain.QualityReport{
		UpdatedAt: utils.ISO(now),
		Days:      days,
		Quality:   buildQuality(rows, now),
	}, nil
}

// buildQuality mede lacunas, duplicidades e frescor da série; rows vem em ordem crescente
func buildQuality(rows []domain.HourlyMetric, now time.Time) domain.DataQuality {
	quality := domain.DataQuality{RowsPerDay: []domain.DayCount{}}
	if len(rows) == 0 {
		return quality
	}

	seenKeys := make(map[string]struct{}, len(rows))
	seenHours := make(map[string]struct{}, len(rows))
	perDay := make(map[string]int)

	for _, row := range rows {
		if key := strings.TrimSpace(row.RowKey); key != "" {
			if _, dup := seenKeys[key]; dup {
				quality.DuplicateRows++
			} else {
				seenKeys[key] = struct{}{}
			}
		}

		ts := row.LoggedAtUTC.UTC()
		seenHours[ts.Format(hourBucketLayout)] = struct{}{}
		perDay[ts.Format(dayBucketLayout)]++

		if !row.HasSales() {
			quality.HoursWithoutSales++
		}
		if !row.HasMarketing() {
			quality.HoursWithoutMarketing++
		}
	}

	first, last := rows[0].LoggedAtUTC, rows[len(rows)-1].LoggedAtUTC
	expected := len(seenHours)
	if !last.Before(first) {
		expected = int(last.Sub(first)/time.Hour) + 1
	}
	age := int(now.Sub(last) / time.Minute)

	quality.RowCount = len(rows)
	quality.UniqueHourKeys = len(seenHours)
	quality.ExpectedHours = expected
	quality.MissingHours = max(0, expected-len(seenHours))
	quality.LatestRowAgeMinutes = &age

	days := make([]string, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		quality.RowsPerDay = append(quality.RowsPerDay, domain.DayCount{Day: day, Rows: perDay[day]})
	}

	return quality
}

func (s *Service) Sources(ctx context.Context, days int) (*domain.SourcesReport, error) {
	now, rows, err := s.hourlySinceDays(ctx, days)
	if err != nil {
		return nil, err
	}

	return &domain.SourcesReport{
		UpdatedAt: utils.ISO(now),
		Days:      days,
		Sources:   buildSourceCoverage(rows),
	}, nil
}

func buildSourceCoverage(rows []domain.HourlyMetric) domain.SourceCoverage {
	coverage := domain.SourceCoverage{
		Rows:                  len(rows),
		SourceSalesCounts:     make(map[string]int),
		SourceMarketingCounts: make(map[string]int),
	}

	for _, row := range rows {
		coverage.SourceSalesCounts[sourceOrUnknown(row.SourceSales)]++
		coverage.SourceMarketingCounts[sourceOrUnknown(row.SourceMarketing)]++

		switch hasSales, hasMarketing := row.HasSales(), row.HasMarketing(); {
		case hasSales && hasMarketing:
			coverage.Coverage.Both++
		case hasSales:
			coverage.Coverage.SalesOnly++
		case hasMarketing:
			coverage.Coverage.MarketingOnly++
		default:
			coverage.Coverage.Neither++
		}
	}

	return coverage
}

func sourceOrUnknown(source *string) string {
	if source == nil || *source == "" {
		return unknownSource
	}
	return *source
}
