package domain

import (
	"strings"
	"time"
)

type CustomerType string

const (
	CustomerTypeNew       CustomerType = "new"
	CustomerTypeReturning CustomerType = "returning"
	CustomerTypeUnknown   CustomerType = "unknown"

	UnknownSourceName   = "unknown"
	UnknownProductTitle = "Unknown Product"
)

// OrderRow representa um pedido da loja persistido em shopify_orders.
// Pedidos não reportáveis também são gravados, com as marcações de cancelamento e teste.
type OrderRow struct {
	OrderID           string       `db:"order_id" json:"order_id"`
	OrderName         *string      `db:"order_name" json:"order_name"`
	CreatedAtUTC      time.Time    `db:"created_at_utc" json:"created_at_utc"`
	ProcessedAtUTC    *time.Time   `db:"processed_at_utc" json:"processed_at_utc"`
	Currency          *string      `db:"currency" json:"currency"`
	SourceName        string       `db:"source_name" json:"source_name"`
	CustomerID        *string      `db:"customer_id" json:"customer_id"`
	CustomerType      CustomerType `db:"customer_type" json:"customer_type"`
	GrossSales        *float64     `db:"gross_sales" json:"gross_sales"`
	NetSales          *float64     `db:"net_sales" json:"net_sales"`
	TotalSales        *float64     `db:"total_sales" json:"total_sales"`
	Discounts         *float64     `db:"discounts" json:"discounts"`
	ReturnsAmount     *float64     `db:"returns_amount" json:"returns_amount"`
	RefundsCount      int          `db:"refunds_count" json:"refunds_count"`
	LineItemsCount    float64      `db:"line_items_count" json:"line_items_count"`
	FinancialStatus   *string      `db:"financial_status" json:"financial_status"`
	FulfillmentStatus *string      `db:"fulfillment_status" json:"fulfillment_status"`
	CancelledAtUTC    *time.Time   `db:"cancelled_at_utc" json:"cancelled_at_utc"`
	IsTest            bool         `db:"is_test" json:"is_test"`
	IngestedAtUTC     *time.Time   `db:"ingested_at_utc" json:"ingested_at_utc"`
}

// IsReportable indica se o pedido pode entrar em qualquer soma de relatório:
// não anulado (voided), não cancelado e não é pedido de teste.
func (o OrderRow) IsReportable() bool {
	if o.FinancialStatus != nil && strings.ToLower(*o.FinancialStatus) == "voided" {
		return false
	}
	if o.CancelledAtUTC != nil {
		return false
	}
	return !o.IsTest
}

// Normalize aplica os padrões de leitura da tabela
func (o *OrderRow) Normalize() {
	if o.SourceName == "" {
		o.SourceName = UnknownSourceName
	}
	if o.CustomerType == "" {
		o.CustomerType = CustomerTypeUnknown
	}
}

// OrderLineRow representa uma linha de pedido persistida em shopify_order_lines
type OrderLineRow struct {
	OrderLineKey           string       `db:"order_line_key" json:"order_line_key"`
	OrderID                string       `db:"order_id" json:"order_id"`
	LineItemID             string       `db:"line_item_id" json:"line_item_id"`
	CreatedAtUTC           time.Time    `db:"created_at_utc" json:"created_at_utc"`
	ProductID              *string      `db:"product_id" json:"product_id"`
	VariantID              *string      `db:"variant_id" json:"variant_id"`
	SKU                    *string      `db:"sku" json:"sku"`
	ProductTitle           *string      `db:"product_title" json:"product_title"`
	VariantTitle           *string      `db:"variant_title" json:"variant_title"`
	Vendor                 *string      `db:"vendor" json:"vendor"`
	SourceName             string       `db:"source_name" json:"source_name"`
	CustomerType           CustomerType `db:"customer_type" json:"customer_type"`
	Quantity               float64      `db:"quantity" json:"quantity"`
	GrossRevenue           float64      `db:"gross_revenue" json:"gross_revenue"`
	DiscountAmount         float64      `db:"discount_amount" json:"discount_amount"`
	NetRevenue             float64      `db:"net_revenue" json:"net_revenue"`
	ReturnedQuantity       float64      `db:"returned_quantity" json:"returned_quantity"`
	ReturnedRevenue        float64      `db:"returned_revenue" json:"returned_revenue"`
	NetQuantity            float64      `db:"net_quantity" json:"net_quantity"`
	NetRevenueAfterReturns float64      `db:"net_revenue_after_returns" json:"net_revenue_after_returns"`
	IngestedAtUTC          *time.Time   `db:"ingested_at_utc" json:"ingested_at_utc"`
}

// Title retorna o título do produto ou "Unknown Product"
func (l OrderLineRow) Title() string {
	if l.ProductTitle == nil || *l.ProductTitle == "" {
		return UnknownProductTitle
	}
	return *l.ProductTitle
}

func (l *OrderLineRow) Normalize() {
	if l.SourceName == "" {
		l.SourceName = UnknownSourceName
	}
	if l.CustomerType == "" {
		l.CustomerType = CustomerTypeUnknown
	}
	if l.ProductID != nil && *l.ProductID == "" {
		l.ProductID = nil
	}
}

// TimeRange é uma janela fechada [Start, End]
type TimeRange struct {
	Start time.Time
	End   time.Time
}

func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}
