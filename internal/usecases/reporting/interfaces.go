package reporting

import (
	"context"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

// Reporter monta os relatórios do painel. Cada método é somente leitura.
type Reporter interface {
	// Comparações de período
	Summary(ctx context.Context) (*domain.SummaryReport, error)
	YTD(ctx context.Context) (*domain.YTDReport, error)

	// Produtos
	TopProductsByUnits(ctx context.Context, limit int) (*domain.TopUnitsReport, error)
	TopProductsByRevenue(ctx context.Context, limit int) (*domain.TopRevenueReport, error)
	ProductMomentum(ctx context.Context, limit int, metric domain.MomentumMetric) (*domain.MomentumReport, error)
	RefundWatchlist(ctx context.Context, limit int) (*domain.RefundWatchlistReport, error)

	// Vendas do mês
	DailySalesPace(ctx context.Context) (*domain.PaceReport, error)
	MTDProjection(ctx context.Context) (*domain.ProjectionReport, error)
	GrossNetReturns(ctx context.Context) (*domain.GrossNetReturnsReport, error)
	AOV(ctx context.Context) (*domain.AOVReport, error)
	WebsiteSessionsMTD(ctx context.Context) (*domain.SessionsReport, error)
	NewVsReturning(ctx context.Context) (*domain.NewVsReturningReport, error)
	ChannelSplit(ctx context.Context) (*domain.ChannelSplitReport, error)
	DiscountImpact(ctx context.Context) (*domain.DiscountImpactReport, error)
	HourlyHeatmapToday(ctx context.Context) (*domain.HeatmapReport, error)

	// Série horária
	Clean(ctx context.Context, days int) (*domain.CleanReport, error)
	Latest(ctx context.Context) (*domain.LatestReport, error)
	HourlyTrend(ctx context.Context, days int) (*domain.TrendReport[domain.HourlyTrendPoint], error)
	DailyTrend(ctx context.Context, days int) (*domain.TrendReport[domain.DailyTrendPoint], error)
	Quality(ctx context.Context, days int) (*domain.QualityReport, error)
	Sources(ctx context.Context, days int) (*domain.SourcesReport, error)

	// Painel completo e meta
	Cells(ctx context.Context) *domain.CellsReport
	Goal(ctx context.Context) (*domain.GoalReport, error)
	ListTargets(ctx context.Context) ([]domain.MonthlyTarget, error)
	UpsertTarget(ctx context.Context, month string, target float64) (*domain.MonthlyTarget, error)
}
