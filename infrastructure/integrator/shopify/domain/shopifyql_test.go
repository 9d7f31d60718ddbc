package shopifydomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopifyQLResult_CellPositionalAndNamed(t *testing.T) {
	payload := `{
		"columns": [{"name": "day"}, {"name": "total_sales"}],
		"rows": [["2026-03-01", "120.456"], {"day": "2026-03-02", "total_sales": 80}]
	}`

	var result ShopifyQLResult
	require.NoError(t, json.Unmarshal([]byte(payload), &result))
	require.Len(t, result.Rows, 2)

	assert.Equal(t, "2026-03-01", result.Text(result.Rows[0], "day"))
	assert.Equal(t, 120.46, *result.Metric(result.Rows[0], "total_sales"))
	assert.Equal(t, "2026-03-02", result.Text(result.Rows[1], "day"))
	assert.Equal(t, 80.0, *result.Metric(result.Rows[1], "total_sales"))
	assert.Nil(t, result.Cell(result.Rows[0], "orders"))
	assert.Nil(t, result.Metric(result.Rows[1], "orders"))
}

func TestShopifyQLResult_RoundTripKeepsRowShape(t *testing.T) {
	in := ShopifyQLResult{
		Columns: []ShopifyQLColumn{{Name: "month"}, {Name: "net_sales"}},
		Rows: []ShopifyQLRow{
			{Positional: []any{"2026-03-01", "10"}},
			{Named: map[string]any{"month": "2026-02-01", "net_sales": "5"}},
		},
	}

	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out ShopifyQLResult
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.NotNil(t, out.Rows[0].Positional)
	assert.NotNil(t, out.Rows[1].Named)
	assert.Equal(t, 5.0, *out.Metric(out.Rows[1], "net_sales"))
}

func TestShopifyQLResult_PickColumn(t *testing.T) {
	result := ShopifyQLResult{Columns: []ShopifyQLColumn{{Name: "date"}, {Name: "online_store_visitors"}}}

	assert.Equal(t, "date", result.PickColumn("day", "date", "time"))
	assert.Equal(t, "online_store_visitors", result.PickColumn("sessions", "online_store_visitors"))
	assert.Equal(t, "", result.PickColumn("sessions"))
}

func TestShopifyQLResponse_Errors(t *testing.T) {
	payload := `{"data":{"shopifyqlQuery":{"parseErrors":["bad token", {"message":"unknown column"}],"tableData":null}},
		"errors":[{"message":"throttled"},{"message":"denied"}]}`

	var resp ShopifyQLResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))

	assert.Equal(t, []string{"throttled", "denied"}, resp.ErrorMessages())
	assert.Equal(t, []string{"bad token", "unknown column"}, resp.ParseErrorMessages())
	assert.Empty(t, resp.Table().Rows)
}

func TestOrder_Decode(t *testing.T) {
	payload := `{"id": 5512345678901, "financial_status": "paid", "cancelled_at": null, "test": false,
		"current_subtotal_price": "90.00", "subtotal_price": "100.00", "total_price": 110,
		"customer": {"id": 77, "orders_count": 3},
		"line_items": [{"id": 1, "product_id": null, "quantity": 2, "price": "45.00"}],
		"refunds": [{"refund_line_items": [{"line_item": {"id": 1, "price": "45.00"}, "quantity": 1}]}]}`

	var order Order
	require.NoError(t, json.Unmarshal([]byte(payload), &order))

	assert.Equal(t, "5512345678901", order.ID.String())
	assert.True(t, order.IsReportable())
	assert.Equal(t, 90.0, *order.CurrentSubtotalPrice.Or(order.SubtotalPrice))
	assert.Nil(t, order.CurrentTotalPrice.Value)
	assert.Equal(t, 110.0, *order.CurrentTotalPrice.Or(order.TotalPrice))
	assert.Equal(t, "77", order.Customer.ID.String())
	assert.Equal(t, "", order.LineItems[0].ProductID.String())
	assert.Equal(t, "1", order.Refunds[0].RefundLineItems[0].LineID())
}

func TestOrder_IsReportable(t *testing.T) {
	assert.False(t, Order{FinancialStatus: "VOIDED"}.IsReportable())
	assert.False(t, Order{CancelledAt: "2026-03-01T10:00:00Z"}.IsReportable())
	assert.False(t, Order{Test: true}.IsReportable())
	assert.True(t, Order{FinancialStatus: "refunded"}.IsReportable())
}
