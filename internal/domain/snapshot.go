package domain

// Origens possíveis de um valor de relatório
const (
	SourceShopifyQL       = "shopifyql"
	SourceShopifySameTime = "shopify_same_time"
	SourceOrdersTable     = "orders_table"
	SourceEnvTarget       = "env_monthly_sales_target"
	SourceStoredTarget    = "monthly_targets"
	SourcePreviousMonth   = "previous_month_total_sales"
	SourceGA4             = "ga4"
	SourceUnavailable     = "unavailable"
)

// SnapshotRange ecoa os limites consultados, para auditoria
type SnapshotRange struct {
	Since          string `json:"since"`
	Until          string `json:"until"`
	PreviousEndUTC string `json:"previous_end_utc,omitempty"`
}

type SalesTotals struct {
	GrossSales *float64 `json:"gross_sales"`
	NetSales   *float64 `json:"net_sales"`
	TotalSales *float64 `json:"total_sales"`
}

// MonthSnapshot compara o mês corrente com o mês anterior inteiro
type MonthSnapshot struct {
	Source   string        `json:"source"`
	Current  *SalesTotals  `json:"current"`
	Previous *SalesTotals  `json:"previous"`
	Range    SnapshotRange `json:"range"`
}

func (s *MonthSnapshot) CurrentTotals() *SalesTotals {
	if s == nil {
		return nil
	}
	return s.Current
}

func (s *MonthSnapshot) PreviousTotals() *SalesTotals {
	if s == nil {
		return nil
	}
	return s.Previous
}

// ComparableSnapshot compara o MTD com o mesmo trecho do mês anterior (dia limitado)
type ComparableSnapshot struct {
	Source              string        `json:"source"`
	CurrentMTD          float64       `json:"current_mtd"`
	CurrentMTDNetSales  float64       `json:"current_mtd_net_sales"`
	CurrentMTDOrders    float64       `json:"current_mtd_orders"`
	PreviousMTD         float64       `json:"previous_mtd"`
	PreviousMTDNetSales float64       `json:"previous_mtd_net_sales"`
	PreviousMTDOrders   float64       `json:"previous_mtd_orders"`
	Range               SnapshotRange `json:"range"`
}

type YTDSnapshot struct {
	Source                 string        `json:"source"`
	CurrentYTDSales        float64       `json:"current_ytd_sales"`
	PreviousYTDSales       float64       `json:"previous_ytd_sales"`
	CurrentYTDOrders       float64       `json:"current_ytd_orders"`
	PreviousYTDOrders      float64       `json:"previous_ytd_orders"`
	PreviousFullYearSales  float64       `json:"previous_full_year_sales"`
	PreviousFullYearOrders float64       `json:"previous_full_year_orders"`
	Range                  SnapshotRange `json:"range"`
}

type SameTimeRange struct {
	CurrentStartUTC  string `json:"current_start_utc"`
	CurrentEndUTC    string `json:"current_end_utc"`
	PreviousStartUTC string `json:"previous_start_utc"`
	PreviousEndUTC   string `json:"previous_end_utc"`
}

// SameTimeSnapshot compara o mês até este instante com o mesmo tempo decorrido do mês anterior
type SameTimeSnapshot struct {
	Source              string        `json:"source"`
	CurrentMTDSales     float64       `json:"current_mtd_sales"`
	CurrentMTDNetSales  float64       `json:"current_mtd_net_sales"`
	PreviousMTDSales    float64       `json:"previous_mtd_sales"`
	PreviousMTDNetSales float64       `json:"previous_mtd_net_sales"`
	CurrentMTDOrders    *float64      `json:"current_mtd_orders"`
	PreviousMTDOrders   *float64      `json:"previous_mtd_orders"`
	Range               SameTimeRange `json:"range"`
}

// SessionsSnapshot traz sessões do site no MTD e no trecho comparável anterior
type SessionsSnapshot struct {
	Source      string        `json:"source"`
	Metric      string        `json:"metric"`
	QueryUsed   string        `json:"query_used"`
	CurrentMTD  float64       `json:"current_mtd"`
	PreviousMTD float64       `json:"previous_mtd"`
	Range       SnapshotRange `json:"range"`
}
