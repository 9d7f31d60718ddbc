package domain

const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"

	ComparisonBasisSameLocalDatetime = "same_local_datetime_previous_year"
)

type Period struct {
	StartUTC string `json:"start_utc"`
	EndUTC   string `json:"end_utc"`
}

// ComparisonWindow descreve as janelas atual e anterior de um relatório comparativo
type ComparisonWindow struct {
	CurrentStartUTC   string `json:"current_start_utc"`
	CurrentEndUTC     string `json:"current_end_utc"`
	PreviousStartUTC  string `json:"previous_start_utc"`
	PreviousEndUTC    string `json:"previous_end_utc"`
	ReportingTimezone string `json:"reporting_timezone,omitempty"`
	ComparisonBasis   string `json:"comparison_basis,omitempty"`
}

type KPIValues struct {
	SalesAmount *float64 `json:"sales_amount"`
	Orders      *float64 `json:"orders"`
	AdSpend     *float64 `json:"ad_spend"`
	ROAS        *float64 `json:"roas"`
	AOV         *float64 `json:"aov"`
	RowCount    int      `json:"row_count"`
}

type KPIChange struct {
	SalesAmountPct *float64 `json:"sales_amount_pct"`
	OrdersPct      *float64 `json:"orders_pct"`
	AdSpendPct     *float64 `json:"ad_spend_pct"`
	ROASPct        *float64 `json:"roas_pct"`
	AOVPct         *float64 `json:"aov_pct"`
}

type KPIs struct {
	Current  KPIValues `json:"current"`
	Previous KPIValues `json:"previous"`
	Change   KPIChange `json:"change"`
}

type SummaryHeadline struct {
	MTDSales    *float64 `json:"mtd_sales"`
	MTDOrders   *float64 `json:"mtd_orders"`
	MTDAdSpend  *float64 `json:"mtd_ad_spend"`
	MTDROAS     *float64 `json:"mtd_roas"`
	MTDAOV      *float64 `json:"mtd_aov"`
	SalesSource string   `json:"sales_source"`
}

// SummaryReport é o pacote de KPIs do mês corrente contra o mês anterior comparável
type SummaryReport struct {
	UpdatedAt string           `json:"updatedAt"`
	Window    ComparisonWindow `json:"window"`
	Summary   SummaryHeadline  `json:"summary"`
	KPIs      KPIs             `json:"kpis"`
}

type PeriodTotals struct {
	SalesAmount *float64 `json:"sales_amount"`
	Orders      *float64 `json:"orders"`
	RowCount    int      `json:"row_count"`
}

type PreviousYearTotals struct {
	SalesAmount *float64 `json:"sales_amount"`
	Orders      *float64 `json:"orders"`
	RowCount    int      `json:"row_count"`
	StartUTC    string   `json:"start_utc"`
	EndUTC      string   `json:"end_utc"`
}

type YTDChange struct {
	SalesAmountPct *float64 `json:"sales_amount_pct"`
	OrdersPct      *float64 `json:"orders_pct"`
	GrowthRatePct  *float64 `json:"growth_rate_pct"`
}

type YTDSources struct {
	Sales  string `json:"sales"`
	Orders string `json:"orders"`
}

type YTDReport struct {
	UpdatedAt    string             `json:"updatedAt"`
	Period       ComparisonWindow   `json:"period"`
	Current      PeriodTotals       `json:"current"`
	Previous     PeriodTotals       `json:"previous"`
	PreviousYear PreviousYearTotals `json:"previous_year"`
	Change       YTDChange          `json:"change"`
	Source       YTDSources         `json:"source"`
}

type PaceReport struct {
	UpdatedAt               string   `json:"updatedAt"`
	TargetSource            string   `json:"target_source"`
	SalesSource             string   `json:"sales_source"`
	MonthGoal               *float64 `json:"month_goal"`
	MTDSales                *float64 `json:"mtd_sales"`
	MTDGrossSales           *float64 `json:"mtd_gross_sales"`
	MTDNetSales             *float64 `json:"mtd_net_sales"`
	TodaySales              *float64 `json:"today_sales"`
	RequiredDailyPace       *float64 `json:"required_daily_pace"`
	OnTrackToday            *bool    `json:"on_track_today"`
	PreviousMonthGrossSales *float64 `json:"previous_month_gross_sales"`
	PreviousMonthTotalSales *float64 `json:"previous_month_total_sales"`
	PreviousMonthNetSales   *float64 `json:"previous_month_net_sales"`
	PreviousMonthOrders     int      `json:"previous_month_orders"`
	DaysElapsed             int      `json:"days_elapsed"`
	DaysRemaining           int      `json:"days_remaining"`
}

type ProjectionReport struct {
	UpdatedAt              string   `json:"updatedAt"`
	SalesSource            string   `json:"sales_source"`
	MTDSales               *float64 `json:"mtd_sales"`
	MTDGrossSales          *float64 `json:"mtd_gross_sales"`
	MTDNetSales            *float64 `json:"mtd_net_sales"`
	ProgressPctOfTarget    *float64 `json:"progress_pct_of_target"`
	ProjectedMonthEndSales *float64 `json:"projected_month_end_sales"`
	ProjectedVsTargetPct   *float64 `json:"projected_vs_target_pct"`
	RunRateDailySales      *float64 `json:"run_rate_daily_sales"`
	MonthGoal              *float64 `json:"month_goal"`
	DaysElapsed            int      `json:"days_elapsed"`
	DaysInMonth            int      `json:"days_in_month"`
}

type GrossNetReturnsReport struct {
	UpdatedAt           string   `json:"updatedAt"`
	Period              Period   `json:"period"`
	GrossSales          float64  `json:"gross_sales"`
	NetSales            float64  `json:"net_sales"`
	TotalSales          float64  `json:"total_sales"`
	ReturnsAmount       float64  `json:"returns_amount"`
	ReturnsRatePctOfNet *float64 `json:"returns_rate_pct_of_net"`
	OrdersCount         int      `json:"orders_count"`
}

type AOVReport struct {
	UpdatedAt           string           `json:"updatedAt"`
	Status              string           `json:"status"`
	SourceSales         string           `json:"source_sales"`
	SourceOrders        string           `json:"source_orders"`
	UnavailableReason   string           `json:"unavailable_reason"`
	Period              ComparisonWindow `json:"period"`
	MTDAOV              *float64         `json:"mtd_aov"`
	PreviousPeriodAOV   *float64         `json:"previous_period_aov"`
	AOVChangePct        *float64         `json:"aov_change_pct"`
	MTDOrders           *float64         `json:"mtd_orders"`
	MTDNetSales         *float64         `json:"mtd_net_sales"`
	PreviousMTDNetSales *float64         `json:"previous_mtd_net_sales"`
	MTDSales            *float64         `json:"mtd_sales"`
}
