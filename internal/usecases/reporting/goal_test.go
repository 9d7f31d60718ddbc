package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

func TestService_Goal(t *testing.T) {
	ctx := context.Background()
	monthSnapshot := &domain.MonthSnapshot{
		Current:  &domain.SalesTotals{TotalSales: f(46000)},
		Previous: &domain.SalesTotals{TotalSales: f(40000)},
	}

	tests := []struct {
		name     string
		setup    func(fx *fixture)
		validate func(t *testing.T, report *domain.GoalReport)
	}{
		{
			name: "meta pelo mês anterior com multiplicador",
			setup: func(fx *fixture) {
				fx.cfg.Reporting.TargetMultiplier = 1.1
				fx.targets.EXPECT().Get(gomock.Any(), "2026-03").Return(nil, nil)
				fx.snapshots.EXPECT().SafeMonth(gomock.Any(), fixedNow).Return(monthSnapshot)
			},
			validate: func(t *testing.T, report *domain.GoalReport) {
				assert.Equal(t, "2026-03", report.Month)
				assert.Equal(t, domain.SourcePreviousMonth, report.TargetSource)
				assert.Equal(t, 44000.0, *report.Target)
				assert.True(t, report.BeatTarget)
				assert.Equal(t, "+2000", report.GapTarget)
				assert.Equal(t, "+6000", report.GapPrevious)
				assert.Equal(t, 15.0, *report.GrowthVsLastMonthPct)
				assert.Equal(t, domain.GoalStatusAchieved, report.Status)
				assert.Equal(t, domain.SourceShopifyQL, report.PreviousMonthSource)
			},
		},
		{
			name: "meta cadastrada tem prioridade",
			setup: func(fx *fixture) {
				fx.cfg.Reporting.MonthlySalesTarget = 10
				fx.targets.EXPECT().Get(gomock.Any(), "2026-03").Return(&domain.MonthlyTarget{Month: "2026-03", Target: 50000}, nil)
				fx.snapshots.EXPECT().SafeMonth(gomock.Any(), fixedNow).Return(monthSnapshot)
			},
			validate: func(t *testing.T, report *domain.GoalReport) {
				assert.Equal(t, domain.SourceStoredTarget, report.TargetSource)
				assert.False(t, report.BeatTarget)
				assert.Equal(t, "-4000", report.GapTarget)
				assert.Equal(t, 92.0, *report.ProgressPct)
				assert.Equal(t, 48.39, *report.ExpectedProgressPct)
				assert.True(t, report.OnPace)
				assert.Equal(t, domain.GoalStatusOnPace, report.Status)
			},
		},
		{
			name: "meta do ambiente quando a tabela falha",
			setup: func(fx *fixture) {
				fx.cfg.Reporting.MonthlySalesTarget = 200000
				fx.targets.EXPECT().Get(gomock.Any(), "2026-03").Return(nil, errors.New("relation does not exist"))
				fx.snapshots.EXPECT().SafeMonth(gomock.Any(), fixedNow).Return(monthSnapshot)
			},
			validate: func(t *testing.T, report *domain.GoalReport) {
				assert.Equal(t, domain.SourceEnvTarget, report.TargetSource)
				assert.Equal(t, 23.0, *report.ProgressPct)
				assert.False(t, report.OnPace)
				assert.Equal(t, domain.GoalStatusBehindPace, report.Status)
			},
		},
		{
			name: "sem vendas no mês anterior não há meta",
			setup: func(fx *fixture) {
				fx.targets.EXPECT().Get(gomock.Any(), "2026-03").Return(nil, nil)
				fx.snapshots.EXPECT().SafeMonth(gomock.Any(), fixedNow).Return(nil)
			},
			validate: func(t *testing.T, report *domain.GoalReport) {
				assert.Equal(t, domain.GoalStatusUnavailable, report.Status)
				assert.Nil(t, report.ProgressPct)
				assert.Empty(t, report.GapTarget)
				assert.Equal(t, domain.SourceOrdersTable, report.PreviousMonthSource)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(t)
			fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).Return(nil, nil)
			tt.setup(fx)

			report, err := fx.service.Goal(ctx)
			require.NoError(t, err)
			tt.validate(t, report)
		})
	}
}

func TestService_UpsertTarget(t *testing.T) {
	tests := []struct {
		name     string
		month    string
		target   float64
		setup    func(fx *fixture)
		validate func(t *testing.T, saved *domain.MonthlyTarget, err error)
	}{
		{
			name:   "mês inválido",
			month:  "2026-13",
			target: 1000,
			setup:  func(fx *fixture) {},
			validate: func(t *testing.T, saved *domain.MonthlyTarget, err error) {
				assert.Nil(t, saved)
				assert.ErrorIs(t, err, ErrInvalidMonth)
			},
		},
		{
			name:   "meta não positiva",
			month:  "2026-03",
			target: 0,
			setup:  func(fx *fixture) {},
			validate: func(t *testing.T, saved *domain.MonthlyTarget, err error) {
				assert.ErrorIs(t, err, ErrInvalidTarget)
			},
		},
		{
			name:   "grava arredondando",
			month:  "2026-03",
			target: 1234.567,
			setup: func(fx *fixture) {
				fx.targets.EXPECT().Upsert(gomock.Any(), domain.MonthlyTarget{
					Month:     "2026-03",
					Target:    1234.57,
					UpdatedAt: fixedNow,
				}).Return(nil)
			},
			validate: func(t *testing.T, saved *domain.MonthlyTarget, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1234.57, saved.Target)
			},
		},
		{
			name:   "erro ao gravar",
			month:  "2026-03",
			target: 10,
			setup: func(fx *fixture) {
				fx.targets.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("conn reset"))
			},
			validate: func(t *testing.T, saved *domain.MonthlyTarget, err error) {
				assert.ErrorIs(t, err, ErrSaveTarget)
				assert.Contains(t, err.Error(), "conn reset")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(t)
			tt.setup(fx)
			saved, err := fx.service.UpsertTarget(context.Background(), tt.month, tt.target)
			tt.validate(t, saved, err)
		})
	}
}

func TestService_ListTargets(t *testing.T) {
	fx := newFixture(t)
	fx.targets.EXPECT().List(gomock.Any()).Return(nil, nil)

	targets, err := fx.service.ListTargets(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, targets)
	assert.Empty(t, targets)
}

func TestBuildQuality(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	rows := []domain.HourlyMetric{
		{RowKey: "k1", LoggedAtUTC: time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC), SalesAmount: f(10), AdSpend: f(2)},
		{RowKey: "k1", LoggedAtUTC: time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC), SalesAmount: f(10)},
		{RowKey: "k3", LoggedAtUTC: time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC)},
		{RowKey: "k4", LoggedAtUTC: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC), ROAS: f(3)},
	}

	quality := buildQuality(rows, now)

	assert.Equal(t, 4, quality.RowCount)
	assert.Equal(t, 3, quality.UniqueHourKeys)
	assert.Equal(t, 13, quality.ExpectedHours)
	assert.Equal(t, 10, quality.MissingHours)
	assert.Equal(t, 1, quality.DuplicateRows)
	assert.Equal(t, 2, quality.HoursWithoutSales)
	assert.Equal(t, 2, quality.HoursWithoutMarketing)
	require.NotNil(t, quality.LatestRowAgeMinutes)
	assert.Equal(t, 30, *quality.LatestRowAgeMinutes)
	assert.Equal(t, []domain.DayCount{{Day: "2026-03-14", Rows: 2}, {Day: "2026-03-15", Rows: 2}}, quality.RowsPerDay)

	empty := buildQuality(nil, now)
	assert.Nil(t, empty.LatestRowAgeMinutes)
	assert.Empty(t, empty.RowsPerDay)
}

func TestBuildSourceCoverage(t *testing.T) {
	shopify := "shopify"
	coverage := buildSourceCoverage([]domain.HourlyMetric{
		{SalesAmount: f(1), AdSpend: f(1), SourceSales: &shopify},
		{Orders: f(1), SourceSales: &shopify},
		{ROAS: f(1)},
		{},
	})

	assert.Equal(t, 4, coverage.Rows)
	assert.Equal(t, map[string]int{"shopify": 2, "unknown": 2}, coverage.SourceSalesCounts)
	assert.Equal(t, map[string]int{"unknown": 4}, coverage.SourceMarketingCounts)
	assert.Equal(t, domain.SourceCoverageCounts{Both: 1, SalesOnly: 1, MarketingOnly: 1, Neither: 1}, coverage.Coverage)
}
