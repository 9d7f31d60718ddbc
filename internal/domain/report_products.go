package domain

type MomentumMetric string

const (
	MomentumMetricRevenue MomentumMetric = "revenue"
	MomentumMetricUnits   MomentumMetric = "units"
)

// ProductTotals é o acumulado de um produto sobre um conjunto de linhas
type ProductTotals struct {
	ProductKey      string
	ProductID       *string
	Title           string
	Units           float64
	Revenue         float64
	GrossRevenue    float64
	ReturnedUnits   float64
	ReturnedRevenue float64
}

type TopUnitsEntry struct {
	Rank         int      `json:"rank"`
	ProductKey   string   `json:"product_key"`
	ProductID    *string  `json:"product_id"`
	Title        string   `json:"title"`
	Units        *float64 `json:"units"`
	Revenue      *float64 `json:"revenue"`
	UnitSharePct *float64 `json:"unit_share_pct"`
}

type TopUnitsReport struct {
	UpdatedAt  string          `json:"updatedAt"`
	Period     Period          `json:"period"`
	TotalUnits *float64        `json:"total_units"`
	Products   []TopUnitsEntry `json:"products"`
}

type TopRevenueEntry struct {
	Rank            int      `json:"rank"`
	ProductKey      string   `json:"product_key"`
	ProductID       *string  `json:"product_id"`
	Title           string   `json:"title"`
	Revenue         *float64 `json:"revenue"`
	Units           *float64 `json:"units"`
	RevenueSharePct *float64 `json:"revenue_share_pct"`
}

type TopRevenueReport struct {
	UpdatedAt    string            `json:"updatedAt"`
	Period       Period            `json:"period"`
	TotalRevenue *float64          `json:"total_revenue"`
	Products     []TopRevenueEntry `json:"products"`
}

type MomentumEntry struct {
	ProductKey    string         `json:"product_key"`
	Title         string         `json:"title"`
	Metric        MomentumMetric `json:"metric"`
	CurrentValue  *float64       `json:"current_value"`
	PreviousValue *float64       `json:"previous_value"`
	Delta         *float64       `json:"delta"`
	DeltaPct      *float64       `json:"delta_pct"`
}

type MomentumWindows struct {
	ThisWeekStartUTC string `json:"this_week_start_utc"`
	ThisWeekEndUTC   string `json:"this_week_end_utc"`
	PrevWeekStartUTC string `json:"prev_week_start_utc"`
	PrevWeekEndUTC   string `json:"prev_week_end_utc"`
}

type MomentumReport struct {
	UpdatedAt string          `json:"updatedAt"`
	Metric    MomentumMetric  `json:"metric"`
	Windows   MomentumWindows `json:"windows"`
	Products  []MomentumEntry `json:"products"`
}

type RefundWatchEntry struct {
	ProductKey      string   `json:"product_key"`
	ProductID       *string  `json:"product_id"`
	Title           string   `json:"title"`
	SoldUnits       *float64 `json:"sold_units"`
	ReturnedUnits   *float64 `json:"returned_units"`
	ReturnRatePct   *float64 `json:"return_rate_pct"`
	ReturnedRevenue *float64 `json:"returned_revenue"`
}

type RefundWatchlistReport struct {
	UpdatedAt string             `json:"updatedAt"`
	Period    Period             `json:"period"`
	Products  []RefundWatchEntry `json:"products"`
}
