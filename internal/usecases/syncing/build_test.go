package syncing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shopifydomain "github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

var runAt = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func f(v float64) *float64 { return &v }
func str(v string) *string  { return &v }
func amount(v float64) shopifydomain.Amount {
	return shopifydomain.Amount{Value: &v}
}

func refundedOrder() shopifydomain.Order {
	return shopifydomain.Order{
		ID:                    "1001",
		Name:                  "#1001",
		CreatedAt:             "2026-03-14T13:05:00-03:00",
		FinancialStatus:       "partially_refunded",
		SourceName:            "web",
		Currency:              "BRL",
		Customer:              &shopifydomain.Customer{ID: "c1", OrdersCount: amount(3)},
		CurrentSubtotalPrice:  amount(90),
		CurrentTotalPrice:     amount(100),
		CurrentTotalDiscounts: amount(10),
		LineItems: []shopifydomain.LineItem{
			{ID: "L1", ProductID: "P1", Title: "Camiseta", Quantity: amount(5), Price: amount(10), TotalDiscount: amount(5)},
			{ID: "L2", ProductID: "P2", Title: "Boné", Quantity: amount(1), Price: amount(45)},
		},
		Refunds: []shopifydomain.Refund{
			{RefundLineItems: []shopifydomain.RefundLineItem{{LineItemID: "L1", Quantity: amount(1), Subtotal: amount(8)}}},
			{
				Transactions: []shopifydomain.Transaction{{Amount: amount(12)}},
				RefundLineItems: []shopifydomain.RefundLineItem{
					{LineItem: &shopifydomain.RefundedLineItem{ID: "L1", Price: amount(12)}, Quantity: amount(1)},
				},
			},
		},
	}
}

func TestBuildShopifyStructures(t *testing.T) {
	tests := []struct {
		name     string
		orders   []shopifydomain.Order
		validate func(t *testing.T, got ShopifyStructures)
	}{
		{
			name:   "soma devoluções de vários reembolsos na mesma linha",
			orders: []shopifydomain.Order{refundedOrder()},
			validate: func(t *testing.T, got ShopifyStructures) {
				require.Len(t, got.OrderRows, 1)
				require.Len(t, got.LineRows, 2)

				row := got.OrderRows[0]
				assert.Equal(t, "1001", row.OrderID)
				assert.Equal(t, time.Date(2026, 3, 14, 16, 5, 0, 0, time.UTC), row.CreatedAtUTC)
				assert.Equal(t, domain.CustomerTypeReturning, row.CustomerType)
				assert.Equal(t, 100.0, *row.GrossSales)
				assert.Equal(t, 90.0, *row.NetSales)
				assert.Equal(t, 12.0, *row.ReturnsAmount)
				assert.Equal(t, 2, row.RefundsCount)
				assert.Equal(t, 6.0, row.LineItemsCount)

				l1 := got.LineRows[0]
				assert.Equal(t, "1001:L1", l1.OrderLineKey)
				assert.Equal(t, 50.0, l1.GrossRevenue)
				assert.Equal(t, 45.0, l1.NetRevenue)
				assert.Equal(t, 2.0, l1.ReturnedQuantity)
				assert.Equal(t, 20.0, l1.ReturnedRevenue)
				assert.Equal(t, 3.0, l1.NetQuantity)
				assert.Equal(t, 25.0, l1.NetRevenueAfterReturns)

				l2 := got.LineRows[1]
				assert.Equal(t, 0.0, l2.ReturnedQuantity)
				assert.Equal(t, 1.0, l2.NetQuantity)

				bucket, ok := got.Hourly["2026-03-14-16"]
				require.True(t, ok)
				assert.Equal(t, 100.0, bucket.SalesAmount)
				assert.Equal(t, 1.0, bucket.Orders)
			},
		},
		{
			name: "pedidos não reportáveis são gravados mas não entram nos buckets",
			orders: []shopifydomain.Order{
				{ID: "2", CreatedAt: "2026-03-14T10:00:00Z", Test: true, CurrentTotalPrice: amount(50)},
				{ID: "3", CreatedAt: "2026-03-14T10:10:00Z", CancelledAt: "2026-03-14T11:00:00Z", CurrentTotalPrice: amount(70)},
				{ID: "4", CreatedAt: "2026-03-14T10:20:00Z", FinancialStatus: "VOIDED", CurrentTotalPrice: amount(30)},
				{ID: "5", CreatedAt: "2026-03-14T10:30:00Z", CurrentTotalPrice: amount(20)},
			},
			validate: func(t *testing.T, got ShopifyStructures) {
				require.Len(t, got.OrderRows, 4)
				assert.True(t, got.OrderRows[0].IsTest)
				assert.NotNil(t, got.OrderRows[1].CancelledAtUTC)
				assert.False(t, got.OrderRows[2].IsReportable())
				assert.True(t, got.OrderRows[3].IsReportable())

				require.Len(t, got.Hourly, 1)
				assert.Equal(t, domain.SalesBucket{SalesAmount: 20, Orders: 1}, got.Hourly["2026-03-14-10"])
			},
		},
		{
			name: "data inválida é ignorada e cliente ausente vira unknown",
			orders: []shopifydomain.Order{
				{ID: "6", CreatedAt: "ontem"},
				{ID: "7", CreatedAt: "2026-03-14T09:00:00Z", TotalPrice: amount(15)},
			},
			validate: func(t *testing.T, got ShopifyStructures) {
				require.Len(t, got.OrderRows, 1)
				row := got.OrderRows[0]
				assert.Equal(t, "7", row.OrderID)
				assert.Equal(t, domain.CustomerTypeUnknown, row.CustomerType)
				assert.Nil(t, row.CustomerID)
				assert.Equal(t, domain.UnknownSourceName, row.SourceName)
				assert.Equal(t, 15.0, *row.TotalSales)
				assert.Equal(t, 0.0, *row.ReturnsAmount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, BuildShopifyStructures(tt.orders, runAt))
		})
	}
}

func TestBuildShopifyStructures_Idempotent(t *testing.T) {
	orders := []shopifydomain.Order{refundedOrder()}
	assert.Equal(t, BuildShopifyStructures(orders, runAt), BuildShopifyStructures(orders, runAt))
}

func TestMergeHourlyRows(t *testing.T) {
	existing := []domain.HourlyMetric{
		{
			RowKey:          "2026-03-14-09-tw",
			LoggedAtLocal:   str("2026-03-14 06:00"),
			SalesAmount:     f(10),
			Orders:          f(1),
			AdSpend:         f(5),
			ROAS:            f(2),
			SourceSales:     str(domain.SourceShopify),
			SourceMarketing: str(domain.SourceAppsScript),
		},
		{RowKey: "lixo"},
	}
	marketing := map[string]domain.MarketingPoint{
		"2026-03-14-09": {HourKey: "2026-03-14-09", ROAS: f(3.123456)},
		"2026-03-14-11": {HourKey: "2026-03-14-11", LoggedAtLocal: "2026-03-14 08:00", AdSpend: f(7.555)},
	}
	sales := map[string]domain.SalesBucket{
		"2026-03-14-10": {SalesAmount: 40, Orders: 2},
	}

	got := MergeHourlyRows(marketing, sales, existing, runAt)
	require.Len(t, got, 3)

	assert.Equal(t, "2026-03-14-09-tw", got[0].RowKey)
	assert.Equal(t, 10.0, *got[0].SalesAmount)
	assert.Equal(t, 5.0, *got[0].AdSpend)
	assert.Equal(t, 3.1235, *got[0].ROAS)
	assert.Equal(t, "2026-03-14 06:00", *got[0].LoggedAtLocal)
	assert.Equal(t, domain.SourceShopify, *got[0].SourceSales)

	assert.Equal(t, "2026-03-14-10-tw", got[1].RowKey)
	assert.Equal(t, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC), got[1].LoggedAtUTC)
	assert.Equal(t, 40.0, *got[1].SalesAmount)
	assert.Equal(t, 2.0, *got[1].Orders)
	assert.Nil(t, got[1].AdSpend)
	assert.Nil(t, got[1].SourceMarketing)
	assert.Equal(t, "2026-03-14T10:00:00.000Z", *got[1].LoggedAtLocal)

	assert.Equal(t, 7.56, *got[2].AdSpend)
	assert.Nil(t, got[2].SalesAmount)
	assert.Nil(t, got[2].SourceSales)
	assert.Equal(t, domain.SourceAppsScript, *got[2].SourceMarketing)
	assert.Equal(t, "2026-03-14 08:00", *got[2].LoggedAtLocal)

	again := MergeHourlyRows(marketing, sales, got, runAt)
	assert.Equal(t, got, again)
}
