package domain

type CleanReport struct {
	UpdatedAt string         `json:"updatedAt"`
	Days      int            `json:"days"`
	RowCount  int            `json:"rowCount"`
	Rows      []HourlyMetric `json:"rows"`
	Data      []HourlyMetric `json:"data"`
}

type LatestReport struct {
	UpdatedAt string        `json:"updatedAt"`
	Latest    *HourlyMetric `json:"latest"`
}

type HourlyTrendPoint struct {
	LoggedAtUTC   string   `json:"logged_at_utc"`
	LoggedAtLocal *string  `json:"logged_at_local"`
	SalesAmount   *float64 `json:"sales_amount"`
	Orders        *float64 `json:"orders"`
	AdSpend       *float64 `json:"ad_spend"`
	ROAS          *float64 `json:"roas"`
	AOV           *float64 `json:"aov"`
}

type DailyTrendPoint struct {
	Day         string   `json:"day"`
	SalesAmount *float64 `json:"sales_amount"`
	Orders      *float64 `json:"orders"`
	AdSpend     *float64 `json:"ad_spend"`
	AOV         *float64 `json:"aov"`
	ROAS        *float64 `json:"roas"`
	Rows        int      `json:"rows"`
}

type TrendReport[T any] struct {
	UpdatedAt string `json:"updatedAt"`
	Days      int    `json:"days"`
	Points    int    `json:"points"`
	Series    []T    `json:"series"`
}

type DayCount struct {
	Day  string `json:"day"`
	Rows int    `json:"rows"`
}

// DataQuality mede lacunas e duplicidades na série horária
type DataQuality struct {
	RowCount              int        `json:"row_count"`
	UniqueHourKeys        int        `json:"unique_hour_keys"`
	ExpectedHours         int        `json:"expected_hours"`
	MissingHours          int        `json:"missing_hours"`
	DuplicateRows         int        `json:"duplicate_rows"`
	HoursWithoutSales     int        `json:"hours_without_sales"`
	HoursWithoutMarketing int        `json:"hours_without_marketing"`
	LatestRowAgeMinutes   *int       `json:"latest_row_age_minutes"`
	RowsPerDay            []DayCount `json:"rows_per_day"`
}

type QualityReport struct {
	UpdatedAt string      `json:"updatedAt"`
	Days      int         `json:"days"`
	Quality   DataQuality `json:"quality"`
}

type SourceCoverageCounts struct {
	Both          int `json:"both"`
	SalesOnly     int `json:"sales_only"`
	MarketingOnly int `json:"marketing_only"`
	Neither       int `json:"neither"`
}

type SourceCoverage struct {
	Rows                  int                  `json:"rows"`
	SourceSalesCounts     map[string]int       `json:"source_sales_counts"`
	SourceMarketingCounts map[string]int       `json:"source_marketing_counts"`
	Coverage              SourceCoverageCounts `json:"coverage"`
}

type SourcesReport struct {
	UpdatedAt string         `json:"updatedAt"`
	Days      int            `json:"days"`
	Sources   SourceCoverage `json:"sources"`
}

// CellsReport junta todos os relatórios do painel; seções que falharam ficam nulas e vão para Errors
type CellsReport struct {
	UpdatedAt          string                 `json:"updatedAt"`
	Summary            *SummaryHeadline       `json:"summary"`
	KPIs               *KPIs                  `json:"kpis"`
	YTDComparison      *YTDReport             `json:"ytd_comparison"`
	TopProductsUnits   *TopUnitsReport        `json:"top_products_units"`
	TopProductsRevenue *TopRevenueReport      `json:"top_products_revenue"`
	ProductMomentum    *MomentumReport        `json:"product_momentum"`
	DailySalesPace     *PaceReport            `json:"daily_sales_pace"`
	MTDProjection      *ProjectionReport      `json:"mtd_projection"`
	GrossNetReturns    *GrossNetReturnsReport `json:"gross_net_returns"`
	AOV                *AOVReport             `json:"aov"`
	WebsiteSessionsMTD *SessionsReport        `json:"website_sessions_mtd"`
	NewVsReturning     *NewVsReturningReport  `json:"new_vs_returning"`
	ChannelSplit       *ChannelSplitReport    `json:"channel_split"`
	DiscountImpact     *DiscountImpactReport  `json:"discount_impact"`
	HourlyHeatmapToday *HeatmapReport         `json:"hourly_heatmap_today"`
	RefundWatchlist    *RefundWatchlistReport `json:"refund_watchlist"`
	Errors             map[string]string      `json:"errors"`
}
