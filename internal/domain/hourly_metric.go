package domain

import (
	"math"
	"time"
)

const (
	SourceShopify    = "shopify"
	SourceAppsScript = "apps_script"

	// Sufixo das chaves horárias gravadas pelo sync
	HourlyRowKeySuffix = "tw"
)

// HourlyMetric é uma amostra horária de vendas + marketing (tabela hourly_metrics)
type HourlyMetric struct {
	RowKey          string     `db:"row_key" json:"row_key"`
	LoggedAtUTC     time.Time  `db:"logged_at_utc" json:"logged_at_utc"`
	LoggedAtLocal   *string    `db:"logged_at_local" json:"logged_at_local"`
	SalesAmount     *float64   `db:"sales_amount" json:"sales_amount"`
	Orders          *float64   `db:"orders" json:"orders"`
	AdSpend         *float64   `db:"ad_spend" json:"ad_spend"`
	ROAS            *float64   `db:"roas" json:"roas"`
	SourceSales     *string    `db:"source_sales" json:"source_sales"`
	SourceMarketing *string    `db:"source_marketing" json:"source_marketing"`
	IngestedAtUTC   *time.Time `db:"ingested_at_utc" json:"ingested_at_utc"`
}

func (h HourlyMetric) HasSales() bool {
	return isFinite(h.SalesAmount) || isFinite(h.Orders)
}

func (h HourlyMetric) HasMarketing() bool {
	return isFinite(h.AdSpend) || isFinite(h.ROAS)
}

// MarketingPoint é uma hora de marketing vinda da planilha
type MarketingPoint struct {
	HourKey       string
	LoggedAtLocal string
	AdSpend       *float64
	ROAS          *float64
}

// SalesBucket é o acumulado de vendas de uma hora, calculado a partir dos pedidos
type SalesBucket struct {
	SalesAmount float64
	Orders      float64
}

func isFinite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}
