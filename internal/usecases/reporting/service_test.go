package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	shopifymocks "github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/shopify/mocks"
	repomocks "github.com/vfg2006/retail-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/retail-dashboard-api/internal/config"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	snapmocks "github.com/vfg2006/retail-dashboard-api/internal/usecases/snapshotting/mocks"
	"github.com/vfg2006/retail-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

// 15/03/2026 10:00 UTC
var fixedNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func f(v float64) *float64 { return &v }
func str(v string) *string  { return &v }

type fixture struct {
	cfg       *config.Config
	snapshots *snapmocks.MockSnapshotter
	shopify   *shopifymocks.MockShopifyIntegrator
	hourly    *repomocks.MockHourlyMetricRepository
	orders    *repomocks.MockOrderRepository
	lines     *repomocks.MockOrderLineRepository
	targets   *repomocks.MockMonthlyTargetRepository
	service   *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	fx := &fixture{
		cfg:       &config.Config{Reporting: config.Reporting{Timezone: "UTC", TargetMultiplier: 1}},
		snapshots: snapmocks.NewMockSnapshotter(ctrl),
		shopify:   shopifymocks.NewMockShopifyIntegrator(ctrl),
		hourly:    repomocks.NewMockHourlyMetricRepository(ctrl),
		orders:    repomocks.NewMockOrderRepository(ctrl),
		lines:     repomocks.NewMockOrderLineRepository(ctrl),
		targets:   repomocks.NewMockMonthlyTargetRepository(ctrl),
	}
	fx.service = NewService(
		fx.cfg,
		utils.NewCalendar("UTC"),
		fx.snapshots,
		fx.shopify,
		fx.hourly,
		fx.orders,
		fx.lines,
		fx.targets,
	).WithClock(func() time.Time { return fixedNow })
	return fx
}

func order(id string, createdAt time.Time, total float64) domain.OrderRow {
	return domain.OrderRow{
		OrderID:      id,
		CreatedAtUTC: createdAt,
		SourceName:   "web",
		CustomerType: domain.CustomerTypeNew,
		GrossSales:   f(total),
		NetSales:     f(total),
		TotalSales:   f(total),
		Discounts:    f(0),
	}
}

func line(orderID, productID string, createdAt time.Time, units, revenue float64) domain.OrderLineRow {
	return domain.OrderLineRow{
		OrderID:                orderID,
		ProductID:              str(productID),
		ProductTitle:           str("Product " + productID),
		CreatedAtUTC:           createdAt,
		Quantity:               units,
		NetQuantity:            units,
		GrossRevenue:           revenue,
		NetRevenue:             revenue,
		NetRevenueAfterReturns: revenue,
	}
}

func TestService_Summary(t *testing.T) {
	ctx := context.Background()
	currentOrder := order("c1", time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), 100)
	previousOrder := order("p1", time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC), 50)
	lateFebruary := order("p2", time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC), 999)
	cancelled := order("c2", time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC), 500)
	cancelled.CancelledAtUTC = &cancelled.CreatedAtUTC

	hourly := []domain.HourlyMetric{
		{RowKey: "a", LoggedAtUTC: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), AdSpend: f(20)},
		{RowKey: "b", LoggedAtUTC: time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC), AdSpend: f(25)},
	}

	tests := []struct {
		name     string
		setup    func(fx *fixture)
		validate func(t *testing.T, report *domain.SummaryReport, err error)
	}{
		{
			name: "sem ShopifyQL usa a tabela de pedidos",
			setup: func(fx *fixture) {
				fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).
					Return([]domain.OrderRow{previousOrder, lateFebruary, currentOrder, cancelled}, nil)
				fx.hourly.EXPECT().ListSince(gomock.Any(), time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)).Return(hourly, nil)
				fx.snapshots.EXPECT().SafeMonth(gomock.Any(), fixedNow).Return(nil)
				fx.snapshots.EXPECT().SafeComparable(gomock.Any(), fixedNow).Return(nil)
				fx.snapshots.EXPECT().SafeSameTime(gomock.Any(), fixedNow).Return(nil)
			},
			validate: func(t *testing.T, report *domain.SummaryReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.SourceOrdersTable, report.Summary.SalesSource)
				assert.Equal(t, 100.0, *report.KPIs.Current.SalesAmount)
				assert.Equal(t, 1.0, *report.KPIs.Current.Orders)
				assert.Equal(t, 1, report.KPIs.Current.RowCount)
				assert.Equal(t, 5.0, *report.KPIs.Current.ROAS)
				assert.Equal(t, 100.0, *report.KPIs.Current.AOV)
				assert.Equal(t, 50.0, *report.KPIs.Previous.SalesAmount)
				assert.Equal(t, 2.0, *report.KPIs.Previous.ROAS)
				assert.Equal(t, 100.0, *report.KPIs.Change.SalesAmountPct)
				assert.Equal(t, 0.0, *report.KPIs.Change.OrdersPct)
				assert.Equal(t, -20.0, *report.KPIs.Change.AdSpendPct)
				assert.Equal(t, "2026-02-15T23:59:59.999Z", report.Window.PreviousEndUTC)
				assert.Equal(t, "UTC", report.Window.ReportingTimezone)
			},
		},
		{
			name: "ShopifyQL comparável tem prioridade e a variação usa o mesmo horário",
			setup: func(fx *fixture) {
				fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).Return([]domain.OrderRow{currentOrder}, nil)
				fx.hourly.EXPECT().ListSince(gomock.Any(), gomock.Any()).Return(nil, nil)
				fx.snapshots.EXPECT().SafeMonth(gomock.Any(), fixedNow).Return(nil)
				fx.snapshots.EXPECT().SafeComparable(gomock.Any(), fixedNow).Return(&domain.ComparableSnapshot{
					CurrentMTD:          1000,
					CurrentMTDNetSales:  900,
					CurrentMTDOrders:    10,
					PreviousMTD:         800,
					PreviousMTDNetSales: 700,
					PreviousMTDOrders:   7,
				})
				fx.snapshots.EXPECT().SafeSameTime(gomock.Any(), fixedNow).Return(&domain.SameTimeSnapshot{
					CurrentMTDSales:   1000,
					PreviousMTDSales:  500,
					CurrentMTDOrders:  f(10),
					PreviousMTDOrders: f(8),
				})
			},
			validate: func(t *testing.T, report *domain.SummaryReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.SourceShopifyQL, report.Summary.SalesSource)
				assert.Equal(t, 1000.0, *report.Summary.MTDSales)
				assert.Equal(t, 90.0, *report.Summary.MTDAOV)
				assert.Equal(t, 100.0, *report.KPIs.Previous.AOV)
				assert.Equal(t, 100.0, *report.KPIs.Change.SalesAmountPct)
				assert.Equal(t, 25.0, *report.KPIs.Change.OrdersPct)
				assert.Equal(t, -10.0, *report.KPIs.Change.AOVPct)
				assert.Nil(t, report.KPIs.Current.ROAS)
			},
		},
		{
			name: "erro do banco interrompe o relatório",
			setup: func(fx *fixture) {
				fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
				fx.hourly.EXPECT().ListSince(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
				fx.snapshots.EXPECT().SafeMonth(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				fx.snapshots.EXPECT().SafeComparable(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				fx.snapshots.EXPECT().SafeSameTime(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			validate: func(t *testing.T, report *domain.SummaryReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, ErrFetchOrders)
				var reportErr *ReportError
				require.ErrorAs(t, err, &reportErr)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, reportErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(t)
			tt.setup(fx)
			report, err := fx.service.Summary(ctx)
			tt.validate(t, report, err)
		})
	}
}

func TestService_YTD(t *testing.T) {
	ctx := context.Background()

	t.Run("sem snapshot e sem pedidos fica indisponível", func(t *testing.T) {
		fx := newFixture(t)
		fx.snapshots.EXPECT().SafeYTD(gomock.Any(), fixedNow).Return(nil)
		fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).Return(nil, nil)

		report, err := fx.service.YTD(ctx)
		require.NoError(t, err)
		assert.Nil(t, report.Current.SalesAmount)
		assert.Equal(t, domain.SourceUnavailable, report.Source.Sales)
		assert.Equal(t, domain.SourceUnavailable, report.Source.Orders)
		assert.Equal(t, domain.ComparisonBasisSameLocalDatetime, report.Period.ComparisonBasis)
		assert.Equal(t, "2025-12-31T23:59:59.999Z", report.PreviousYear.EndUTC)
	})

	t.Run("snapshot do ShopifyQL", func(t *testing.T) {
		fx := newFixture(t)
		fx.snapshots.EXPECT().SafeYTD(gomock.Any(), fixedNow).Return(&domain.YTDSnapshot{
			CurrentYTDSales:        1200,
			PreviousYTDSales:       1000,
			CurrentYTDOrders:       12.4,
			PreviousYTDOrders:      10,
			PreviousFullYearSales:  5000,
			PreviousFullYearOrders: 50,
		})
		fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).Return(nil, nil)

		report, err := fx.service.YTD(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.SourceShopifyQL, report.Source.Sales)
		assert.Equal(t, 12.0, *report.Current.Orders)
		assert.Equal(t, 20.0, *report.Change.SalesAmountPct)
		assert.Equal(t, *report.Change.SalesAmountPct, *report.Change.GrowthRatePct)
		assert.Equal(t, 5000.0, *report.PreviousYear.SalesAmount)
	})
}

func TestService_ProductMomentum(t *testing.T) {
	fx := newFixture(t)
	thisWeek := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
	lastWeek := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)

	fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), domain.TimeRange{
		Start: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		End:   fixedNow,
	}).Return([]domain.OrderRow{
		order("o1", thisWeek, 40),
		order("o2", lastWeek, 20),
	}, nil)
	fx.lines.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).Return([]domain.OrderLineRow{
		line("o1", "A", thisWeek, 1, 30),
		line("o1", "B", thisWeek, 1, 10),
		line("o2", "B", lastWeek, 1, 5),
		line("o2", "C", lastWeek, 1, 15),
		line("ghost", "A", thisWeek, 1, 1000),
	}, nil)

	report, err := fx.service.ProductMomentum(context.Background(), 10, "")
	require.NoError(t, err)

	assert.Equal(t, domain.MomentumMetricRevenue, report.Metric)
	assert.Equal(t, "2026-03-09T00:00:00.000Z", report.Windows.ThisWeekStartUTC)
	assert.Equal(t, "2026-03-08T23:59:59.000Z", report.Windows.PrevWeekEndUTC)
	require.Len(t, report.Products, 2)
	assert.Equal(t, "A", report.Products[0].ProductKey)
	assert.Equal(t, 30.0, *report.Products[0].Delta)
	assert.Nil(t, report.Products[0].DeltaPct)
	assert.Equal(t, "B", report.Products[1].ProductKey)
	assert.Equal(t, 5.0, *report.Products[1].PreviousValue)
	assert.Equal(t, 100.0, *report.Products[1].DeltaPct)
}

func TestService_TopProducts(t *testing.T) {
	created := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	voided := order("v1", created, 80)
	voided.FinancialStatus = str("VOIDED")

	setup := func(fx *fixture) {
		fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).
			Return([]domain.OrderRow{order("o1", created, 60), voided}, nil)
		fx.lines.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).Return([]domain.OrderLineRow{
			line("o1", "A", created, 1, 50),
			line("o1", "B", created, 3, 10),
			line("v1", "A", created, 10, 80),
		}, nil)
	}

	t.Run("por unidades", func(t *testing.T) {
		fx := newFixture(t)
		setup(fx)
		report, err := fx.service.TopProductsByUnits(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 4.0, *report.TotalUnits)
		require.Len(t, report.Products, 1)
		assert.Equal(t, "B", report.Products[0].ProductKey)
		assert.Equal(t, 1, report.Products[0].Rank)
		assert.Equal(t, 75.0, *report.Products[0].UnitSharePct)
	})

	t.Run("por receita", func(t *testing.T) {
		fx := newFixture(t)
		setup(fx)
		report, err := fx.service.TopProductsByRevenue(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, 60.0, *report.TotalRevenue)
		require.Len(t, report.Products, 2)
		assert.Equal(t, "A", report.Products[0].ProductKey)
		assert.Equal(t, 83.33, *report.Products[0].RevenueSharePct)
	})
}

func TestService_RefundWatchlist(t *testing.T) {
	fx := newFixture(t)
	created := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)

	withReturns := func(l domain.OrderLineRow, returned, returnedRevenue float64) domain.OrderLineRow {
		l.ReturnedQuantity = returned
		l.ReturnedRevenue = returnedRevenue
		return l
	}

	fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).Return([]domain.OrderRow{order("o1", created, 100)}, nil)
	fx.lines.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).Return([]domain.OrderLineRow{
		withReturns(line("o1", "low", created, 3, 30), 1, 10),
		withReturns(line("o1", "cheap", created, 1, 10), 1, 5),
		withReturns(line("o1", "pricey", created, 1, 40), 1, 40),
		line("o1", "clean", created, 5, 50),
	}, nil)

	report, err := fx.service.RefundWatchlist(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, report.Products, 3)
	assert.Equal(t, "pricey", report.Products[0].ProductKey)
	assert.Equal(t, "cheap", report.Products[1].ProductKey)
	assert.Equal(t, 50.0, *report.Products[1].ReturnRatePct)
	assert.Equal(t, "low", report.Products[2].ProductKey)
	assert.Equal(t, 25.0, *report.Products[2].ReturnRatePct)
	assert.Equal(t, 4.0, *report.Products[2].SoldUnits)
}

func TestService_DailySalesPace(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	february := time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(fx *fixture)
		validate func(t *testing.T, report *domain.PaceReport)
	}{
		{
			name: "meta do ambiente",
			setup: func(fx *fixture) {
				fx.cfg.Reporting.MonthlySalesTarget = 3200
				fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).
					Return([]domain.OrderRow{order("f", february, 900), order("e", earlier, 1000), order("t", today, 200)}, nil)
				fx.snapshots.EXPECT().SafeMonth(gomock.Any(), fixedNow).Return(nil)
			},
			validate: func(t *testing.T, report *domain.PaceReport) {
				assert.Equal(t, domain.SourceEnvTarget, report.TargetSource)
				assert.Equal(t, domain.SourceOrdersTable, report.SalesSource)
				assert.Equal(t, 3200.0, *report.MonthGoal)
				assert.Equal(t, 1200.0, *report.MTDSales)
				assert.Equal(t, 200.0, *report.TodaySales)
				assert.Equal(t, 16, report.DaysRemaining)
				assert.Equal(t, 125.0, *report.RequiredDailyPace)
				require.NotNil(t, report.OnTrackToday)
				assert.True(t, *report.OnTrackToday)
				assert.Equal(t, 1, report.PreviousMonthOrders)
			},
		},
		{
			name: "meta pelo mês anterior do snapshot",
			setup: func(fx *fixture) {
				fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).Return(nil, nil)
				fx.snapshots.EXPECT().SafeMonth(gomock.Any(), fixedNow).Return(&domain.MonthSnapshot{
					Current:  &domain.SalesTotals{TotalSales: f(100), GrossSales: f(110), NetSales: f(90)},
					Previous: &domain.SalesTotals{TotalSales: f(1700)},
				})
			},
			validate: func(t *testing.T, report *domain.PaceReport) {
				assert.Equal(t, domain.SourcePreviousMonth, report.TargetSource)
				assert.Equal(t, domain.SourceShopifyQL, report.SalesSource)
				assert.Equal(t, 1700.0, *report.MonthGoal)
				assert.Equal(t, 100.0, *report.RequiredDailyPace)
				assert.False(t, *report.OnTrackToday)
			},
		},
		{
			name: "sem meta e sem mês anterior",
			setup: func(fx *fixture) {
				fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).Return(nil, nil)
				fx.snapshots.EXPECT().SafeMonth(gomock.Any(), fixedNow).Return(nil)
			},
			validate: func(t *testing.T, report *domain.PaceReport) {
				assert.Nil(t, report.MonthGoal)
				assert.Nil(t, report.RequiredDailyPace)
				assert.Nil(t, report.OnTrackToday)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(t)
			tt.setup(fx)
			report, err := fx.service.DailySalesPace(ctx)
			require.NoError(t, err)
			tt.validate(t, report)
		})
	}
}

func TestService_MTDProjection(t *testing.T) {
	fx := newFixture(t)
	fx.cfg.Reporting.MonthlySalesTarget = 3000
	fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).
		Return([]domain.OrderRow{order("a", time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), 1500)}, nil)
	fx.snapshots.EXPECT().SafeMonth(gomock.Any(), fixedNow).Return(nil)

	report, err := fx.service.MTDProjection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100.0, *report.RunRateDailySales)
	assert.Equal(t, 3100.0, *report.ProjectedMonthEndSales)
	assert.Equal(t, 50.0, *report.ProgressPctOfTarget)
	assert.Equal(t, 3.33, *report.ProjectedVsTargetPct)
	assert.Equal(t, 31, report.DaysInMonth)
}

func TestService_AOV(t *testing.T) {
	ctx := context.Background()

	t.Run("falha do ShopifyQL e dos pedidos vira indisponível", func(t *testing.T) {
		fx := newFixture(t)
		fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
		fx.snapshots.EXPECT().Comparable(gomock.Any(), fixedNow).Return(nil, errors.New("shopifyql throttled"))

		report, err := fx.service.AOV(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusUnavailable, report.Status)
		assert.Equal(t, "shopifyql throttled", report.UnavailableReason)
		assert.Nil(t, report.MTDAOV)
	})

	t.Run("ShopifyQL comparável", func(t *testing.T) {
		fx := newFixture(t)
		fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).Return(nil, nil)
		fx.snapshots.EXPECT().Comparable(gomock.Any(), fixedNow).Return(&domain.ComparableSnapshot{
			CurrentMTDNetSales:  500,
			CurrentMTDOrders:    5,
			PreviousMTDNetSales: 400,
			PreviousMTDOrders:   5,
		}, nil)

		report, err := fx.service.AOV(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusOK, report.Status)
		assert.Equal(t, domain.SourceShopifyQL, report.SourceSales)
		assert.Equal(t, 100.0, *report.MTDAOV)
		assert.Equal(t, 25.0, *report.AOVChangePct)
		assert.Equal(t, *report.MTDNetSales, *report.MTDSales)
	})
}

func TestService_WebsiteSessionsMTD(t *testing.T) {
	ctx := context.Background()

	t.Run("sem escopo read_reports", func(t *testing.T) {
		fx := newFixture(t)
		fx.snapshots.EXPECT().Sessions(gomock.Any(), fixedNow).Return(nil, nil)
		fx.shopify.EXPECT().IsConfigured().Return(true)
		fx.shopify.EXPECT().AccessScopes(gomock.Any()).Return([]string{"read_orders"}, nil)

		report, err := fx.service.WebsiteSessionsMTD(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusUnavailable, report.Status)
		assert.Equal(t, reasonMissingReports, report.UnavailableReason)
		assert.Nil(t, report.Metric)
		assert.Equal(t, domain.SourceShopifyQL, report.Source)
	})

	t.Run("sessões do GA4", func(t *testing.T) {
		fx := newFixture(t)
		fx.snapshots.EXPECT().Sessions(gomock.Any(), fixedNow).Return(&domain.SessionsSnapshot{
			Source:      domain.SourceGA4,
			Metric:      "sessions",
			CurrentMTD:  1500.4,
			PreviousMTD: 1000,
		}, nil)

		report, err := fx.service.WebsiteSessionsMTD(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusOK, report.Status)
		assert.Equal(t, domain.SourceGA4, report.Source)
		assert.Equal(t, "sessions", *report.Metric)
		assert.Equal(t, 1500.0, *report.MTDSessions)
		assert.Equal(t, 500.0, *report.SessionsChange)
		assert.Equal(t, 50.04, *report.SessionsChangePct)
	})
}

func TestService_CustomerReports(t *testing.T) {
	created := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	returning := order("r1", created, 300)
	returning.CustomerType = domain.CustomerTypeReturning
	returning.SourceName = "pos"
	returning.Discounts = f(30)
	unknown := order("u1", created, 100)
	unknown.CustomerType = domain.CustomerTypeUnknown
	testOrder := order("t1", created, 1000)
	testOrder.IsTest = true
	rows := []domain.OrderRow{order("n1", created, 100), returning, unknown, testOrder}

	t.Run("novos e recorrentes", func(t *testing.T) {
		fx := newFixture(t)
		fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).Return(rows, nil)

		report, err := fx.service.NewVsReturning(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 300.0, *report.Revenue.Returning)
		assert.Equal(t, 1, report.Orders.New)
		assert.Equal(t, 1, report.Orders.Unknown)
		assert.Equal(t, 60.0, *report.SharesPct.Returning)
	})

	t.Run("canais", func(t *testing.T) {
		fx := newFixture(t)
		fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).Return(rows, nil)

		report, err := fx.service.ChannelSplit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.StatusOK, report.Status)
		require.Len(t, report.Channels, 2)
		assert.Equal(t, "pos", report.Channels[0].Channel)
		assert.Equal(t, 2, report.Channels[1].Orders)
		assert.Equal(t, 500.0, *report.TotalRevenue)
	})

	t.Run("descontos", func(t *testing.T) {
		fx := newFixture(t)
		fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).Return(rows, nil)

		report, err := fx.service.DiscountImpact(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, report.DiscountedOrdersCount)
		assert.Equal(t, 33.33, *report.DiscountedOrdersPct)
		assert.Equal(t, 10.0, *report.AvgDiscountPerOrder)
		assert.Equal(t, 6.0, *report.DiscountRatePctOfGross)
	})

	t.Run("sem pedidos fica indisponível", func(t *testing.T) {
		fx := newFixture(t)
		fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

		channels, err := fx.service.ChannelSplit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.StatusUnavailable, channels.Status)
		assert.NotEmpty(t, channels.UnavailableReason)

		discounts, err := fx.service.DiscountImpact(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.StatusUnavailable, discounts.Status)
		assert.Nil(t, discounts.AvgDiscountPerOrder)
	})
}

func TestService_HourlyHeatmapToday(t *testing.T) {
	fx := newFixture(t)
	fx.hourly.EXPECT().ListSince(gomock.Any(), time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)).Return([]domain.HourlyMetric{
		{RowKey: "a", LoggedAtUTC: time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC), SalesAmount: f(120.5), Orders: f(2)},
		{RowKey: "b", LoggedAtUTC: time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC), SalesAmount: f(10), Orders: f(1)},
	}, nil)

	report, err := fx.service.HourlyHeatmapToday(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOK, report.Status)
	assert.Equal(t, "2026-03-15", report.DayUTC)
	require.Len(t, report.Heatmap, 24)
	assert.Equal(t, "09", report.Heatmap[9].HourUTC)
	assert.Equal(t, 130.5, *report.Heatmap[9].SalesAmount)
	assert.Equal(t, 3.0, *report.Heatmap[9].Orders)
	assert.Equal(t, 0.0, *report.Heatmap[0].SalesAmount)
}

func TestService_Cells_PartialFailure(t *testing.T) {
	fx := newFixture(t)
	fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).Return(nil, errors.New("orders table offline")).AnyTimes()
	fx.lines.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	fx.hourly.EXPECT().ListSince(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	fx.snapshots.EXPECT().SafeMonth(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	fx.snapshots.EXPECT().SafeComparable(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	fx.snapshots.EXPECT().SafeSameTime(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	fx.snapshots.EXPECT().SafeYTD(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	fx.snapshots.EXPECT().Comparable(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	fx.snapshots.EXPECT().Sessions(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	fx.shopify.EXPECT().IsConfigured().Return(false).AnyTimes()

	report := fx.service.Cells(context.Background())

	assert.Nil(t, report.Summary)
	assert.Nil(t, report.KPIs)
	assert.Nil(t, report.DailySalesPace)
	assert.Contains(t, report.Errors["summary"], "error fetching orders")
	assert.Contains(t, report.Errors, "topUnits")

	require.NotNil(t, report.AOV)
	assert.Equal(t, domain.StatusUnavailable, report.AOV.Status)
	assert.Contains(t, report.AOV.UnavailableReason, reasonOrdersFetch)
	require.NotNil(t, report.WebsiteSessionsMTD)
	require.NotNil(t, report.HourlyHeatmapToday)
	assert.NotContains(t, report.Errors, "aov")
	assert.NotContains(t, report.Errors, "heatmap")
	assert.Len(t, report.Errors, 12)
}

func TestService_Cells_SectionPanic(t *testing.T) {
	fx := newFixture(t)
	fx.orders.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	fx.lines.EXPECT().ListCreatedBetween(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, window domain.TimeRange) ([]domain.OrderLineRow, error) {
			panic("boom")
		}).AnyTimes()
	fx.hourly.EXPECT().ListSince(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	fx.snapshots.EXPECT().SafeMonth(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	fx.snapshots.EXPECT().SafeComparable(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	fx.snapshots.EXPECT().SafeSameTime(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	fx.snapshots.EXPECT().SafeYTD(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	fx.snapshots.EXPECT().Comparable(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	fx.snapshots.EXPECT().Sessions(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	fx.shopify.EXPECT().IsConfigured().Return(false).AnyTimes()

	report := fx.service.Cells(context.Background())

	require.NotNil(t, report)
	for _, key := range []string{"topUnits", "topRevenue", "momentum", "refundWatchlist"} {
		assert.Contains(t, report.Errors[key], "boom", key)
	}
	assert.Nil(t, report.TopProductsUnits)
	assert.Nil(t, report.RefundWatchlist)
	assert.NotContains(t, report.Errors, "aov")
	assert.NotEmpty(t, report.UpdatedAt)
}
