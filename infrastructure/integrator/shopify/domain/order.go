package shopifydomain

import (
	"bytes"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ID aceita identificadores enviados como número ou como texto
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	if raw == "null" {
		raw = ""
	}
	*id = ID(raw)
	return nil
}

func (id ID) String() string {
	return string(id)
}

// Amount aceita valores monetários como "12.50", 12.5 ou null
type Amount struct {
	Value *float64
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	a.Value = utils.CleanNumber(raw)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Value)
}

// Or retorna o próprio valor ou, se ausente, o alternativo
func (a Amount) Or(other Amount) *float64 {
	if a.Value != nil {
		return a.Value
	}
	return other.Value
}

// OrZero trata ausente como zero
func (a Amount) OrZero() float64 {
	return utils.Value(a.Value)
}

type Customer struct {
	ID          ID     `json:"id"`
	OrdersCount Amount `json:"orders_count"`
}

type LineItem struct {
	ID            ID     `json:"id"`
	ProductID     ID     `json:"product_id"`
	VariantID     ID     `json:"variant_id"`
	SKU           string `json:"sku"`
	Title         string `json:"title"`
	VariantTitle  string `json:"variant_title"`
	Vendor        string `json:"vendor"`
	Quantity      Amount `json:"quantity"`
	Price         Amount `json:"price"`
	TotalDiscount Amount `json:"total_discount"`
}

type Transaction struct {
	Amount Amount `json:"amount"`
}

type RefundedLineItem struct {
	ID    ID     `json:"id"`
	Price Amount `json:"price"`
}

type RefundLineItem struct {
	LineItemID ID                `json:"line_item_id"`
	LineItem   *RefundedLineItem `json:"line_item"`
	Quantity   Amount            `json:"quantity"`
	Subtotal   Amount            `json:"subtotal"`
}

// LineID retorna a linha devolvida pelo id direto ou pelo objeto aninhado
func (r RefundLineItem) LineID() string {
	if r.LineItemID != "" {
		return r.LineItemID.String()
	}
	if r.LineItem != nil {
		return r.LineItem.ID.String()
	}
	return ""
}

type Refund struct {
	Transactions    []Transaction    `json:"transactions"`
	RefundLineItems []RefundLineItem `json:"refund_line_items"`
}

// Order é o pedido como vem do endpoint orders.json
type Order struct {
	ID                    ID         `json:"id"`
	Name                  string     `json:"name"`
	CreatedAt             string     `json:"created_at"`
	ProcessedAt           string     `json:"processed_at"`
	CancelledAt           string     `json:"cancelled_at"`
	Test                  bool       `json:"test"`
	Currency              string     `json:"currency"`
	SourceName            string     `json:"source_name"`
	FinancialStatus       string     `json:"financial_status"`
	FulfillmentStatus     string     `json:"fulfillment_status"`
	Customer              *Customer  `json:"customer"`
	CurrentSubtotalPrice  Amount     `json:"current_subtotal_price"`
	SubtotalPrice         Amount     `json:"subtotal_price"`
	CurrentTotalPrice     Amount     `json:"current_total_price"`
	TotalPrice            Amount     `json:"total_price"`
	CurrentTotalDiscounts Amount     `json:"current_total_discounts"`
	TotalDiscounts        Amount     `json:"total_discounts"`
	TotalLineItemsPrice   Amount     `json:"total_line_items_price"`
	LineItems             []LineItem `json:"line_items"`
	Refunds               []Refund   `json:"refunds"`
}

// IsReportable descarta pedidos anulados, cancelados e de teste
func (o Order) IsReportable() bool {
	if strings.ToLower(o.FinancialStatus) == "voided" {
		return false
	}
	if o.CancelledAt != "" {
		return false
	}
	return !o.Test
}

type OrdersPage struct {
	Orders []Order `json:"orders"`
}

type OrdersCount struct {
	Count *float64 `json:"count"`
}

type AccessScope struct {
	Handle string `json:"handle"`
}

type AccessScopes struct {
	AccessScopes []AccessScope `json:"access_scopes"`
}

// OrdersFeed é o resultado paginado da leitura de pedidos
type OrdersFeed struct {
	Orders       []Order
	PagesFetched int
}
