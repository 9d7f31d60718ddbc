package syncing

import (
	"math"
	"sort"
	"time"

	shopifydomain "github.com/vfg2006/retail-dashboard-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

// ShopifyStructures é o resultado de transformar os pedidos da loja em linhas de tabela
type ShopifyStructures struct {
	Hourly    map[string]domain.SalesBucket
	OrderRows []domain.OrderRow
	LineRows  []domain.OrderLineRow
}

type lineRefund struct {
	quantity float64
	revenue  float64
}

// BuildShopifyStructures converte os pedidos em buckets horários, linhas de pedido e
// linhas de item. Todos os pedidos são gravados, mas só os reportáveis entram nos buckets.
func BuildShopifyStructures(orders []shopifydomain.Order, runAt time.Time) ShopifyStructures {
	out := ShopifyStructures{
		Hourly:    make(map[string]domain.SalesBucket),
		OrderRows: make([]domain.OrderRow, 0, len(orders)),
		LineRows:  make([]domain.OrderLineRow, 0),
	}
	ingestedAt := runAt.UTC()

	for _, order := range orders {
		createdAt, ok := parseShopifyTime(order.CreatedAt)
		if !ok {
			continue
		}

		orderID := order.ID.String()
		net := order.CurrentSubtotalPrice.Or(order.SubtotalPrice)
		totalSales := order.CurrentTotalPrice.Or(order.TotalPrice)
		discounts := order.CurrentTotalDiscounts.Or(order.TotalDiscounts)
		sourceName := nonEmpty(order.SourceName, domain.UnknownSourceName)
		customerID, customerType := customerOf(order.Customer)

		if order.IsReportable() {
			bucket := out.Hourly[utils.HourKeyFromDate(createdAt)]
			bucket.SalesAmount += utils.Value(totalSales)
			bucket.Orders++
			out.Hourly[utils.HourKeyFromDate(createdAt)] = bucket
		}

		refunds := buildRefundLineMap(order.Refunds)
		itemsCount := 0.0
		for _, item := range order.LineItems {
			itemsCount += item.Quantity.OrZero()
		}

		processedAt := createdAt
		if t, ok := parseShopifyTime(order.ProcessedAt); ok {
			processedAt = t
		}

		row := domain.OrderRow{
			OrderID:           orderID,
			OrderName:         optional(order.Name),
			CreatedAtUTC:      createdAt,
			ProcessedAtUTC:    &processedAt,
			Currency:          optional(order.Currency),
			SourceName:        sourceName,
			CustomerID:        customerID,
			CustomerType:      customerType,
			GrossSales:        utils.RoundPtr(deriveGrossSales(order), 2),
			NetSales:          utils.RoundPtr(net, 2),
			TotalSales:        utils.RoundPtr(totalSales, 2),
			Discounts:         utils.RoundPtr(discounts, 2),
			ReturnsAmount:     utils.Round(deriveOrderRefundAmount(order.Refunds), 2),
			RefundsCount:      len(order.Refunds),
			LineItemsCount:    utils.RoundValue(itemsCount, 2),
			FinancialStatus:   optional(order.FinancialStatus),
			FulfillmentStatus: optional(order.FulfillmentStatus),
			IsTest:            order.Test,
			IngestedAtUTC:     &ingestedAt,
		}
		if cancelledAt, ok := parseShopifyTime(order.CancelledAt); ok {
			row.CancelledAtUTC = &cancelledAt
		}
		out.OrderRows = append(out.OrderRows, row)

		for _, item := range order.LineItems {
			lineID := item.ID.String()
			quantity := item.Quantity.OrZero()
			grossRevenue := item.Price.OrZero() * quantity
			discountAmount := item.TotalDiscount.OrZero()
			netRevenue := grossRevenue - discountAmount
			refunded := refunds[lineID]

			out.LineRows = append(out.LineRows, domain.OrderLineRow{
				OrderLineKey:           orderID + ":" + lineID,
				OrderID:                orderID,
				LineItemID:             lineID,
				CreatedAtUTC:           createdAt,
				ProductID:              optional(item.ProductID.String()),
				VariantID:              optional(item.VariantID.String()),
				SKU:                    optional(item.SKU),
				ProductTitle:           optional(item.Title),
				VariantTitle:           optional(item.VariantTitle),
				Vendor:                 optional(item.Vendor),
				SourceName:             sourceName,
				CustomerType:           customerType,
				Quantity:               utils.RoundValue(quantity, 2),
				GrossRevenue:           utils.RoundValue(grossRevenue, 2),
				DiscountAmount:         utils.RoundValue(discountAmount, 2),
				NetRevenue:             utils.RoundValue(netRevenue, 2),
				ReturnedQuantity:       utils.RoundValue(refunded.quantity, 2),
				ReturnedRevenue:        utils.RoundValue(refunded.revenue, 2),
				NetQuantity:            utils.RoundValue(math.Max(0, quantity-refunded.quantity), 2),
				NetRevenueAfterReturns: utils.RoundValue(netRevenue-refunded.revenue, 2),
				IngestedAtUTC:          &ingestedAt,
			})
		}
	}

	for key, bucket := range out.Hourly {
		out.Hourly[key] = domain.SalesBucket{
			SalesAmount: utils.RoundValue(bucket.SalesAmount, 2),
			Orders:      utils.RoundValue(bucket.Orders, 2),
		}
	}

	return out
}

// MergeHourlyRows junta vendas, marketing e a linha já gravada de cada hora.
// O valor novo vence; o gravado só é mantido quando a fonte nova não tem nada.
func MergeHourlyRows(
	marketing map[string]domain.MarketingPoint,
	sales map[string]domain.SalesBucket,
	existing []domain.HourlyMetric,
	runAt time.Time,
) []domain.HourlyMetric {
	existingByHour := make(map[string]domain.HourlyMetric, len(existing))
	hours := make(map[string]struct{})
	for _, row := range existing {
		key := utils.HourKeyPrefix(row.RowKey)
		if key == "" {
			continue
		}
		existingByHour[key] = row
		hours[key] = struct{}{}
	}
	for key := range marketing {
		hours[key] = struct{}{}
	}
	for key := range sales {
		hours[key] = struct{}{}
	}

	keys := make([]string, 0, len(hours))
	for key := range hours {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	ingestedAt := runAt.UTC()
	out := make([]domain.HourlyMetric, 0, len(keys))
	for _, key := range keys {
		loggedAt, ok := utils.UTCFromHourKey(key)
		if !ok {
			continue
		}

		prev := existingByHour[key]
		point, hasMarketing := marketing[key]
		bucket, hasSales := sales[key]

		salesAmount, orders := prev.SalesAmount, prev.Orders
		if hasSales {
			salesAmount, orders = &bucket.SalesAmount, &bucket.Orders
		}
		adSpend, roas := prev.AdSpend, prev.ROAS
		if hasMarketing {
			adSpend = firstNonNil(point.AdSpend, prev.AdSpend)
			roas = firstNonNil(point.ROAS, prev.ROAS)
		}

		sourceSales := prev.SourceSales
		if salesAmount != nil {
			sourceSales = optional(domain.SourceShopify)
		}
		sourceMarketing := prev.SourceMarketing
		if adSpend != nil || roas != nil {
			sourceMarketing = optional(domain.SourceAppsScript)
		}

		loggedAtISO := utils.ISO(loggedAt)
		loggedAtLocal := &loggedAtISO
		switch {
		case hasMarketing && point.LoggedAtLocal != "":
			loggedAtLocal = optional(point.LoggedAtLocal)
		case prev.LoggedAtLocal != nil && *prev.LoggedAtLocal != "":
			loggedAtLocal = prev.LoggedAtLocal
		}

		out = append(out, domain.HourlyMetric{
			RowKey:          key + "-" + domain.HourlyRowKeySuffix,
			LoggedAtUTC:     loggedAt,
			LoggedAtLocal:   loggedAtLocal,
			SalesAmount:     utils.RoundPtr(salesAmount, 2),
			Orders:          utils.RoundPtr(orders, 2),
			AdSpend:         utils.RoundPtr(adSpend, 2),
			ROAS:            utils.RoundPtr(roas, 4),
			SourceSales:     sourceSales,
			SourceMarketing: sourceMarketing,
			IngestedAtUTC:   &ingestedAt,
		})
	}

	return out
}

// deriveGrossSales soma subtotal e descontos; sem um deles usa o total dos itens
func deriveGrossSales(order shopifydomain.Order) *float64 {
	subtotal := order.CurrentSubtotalPrice.Or(order.SubtotalPrice)
	discounts := order.CurrentTotalDiscounts.Or(order.TotalDiscounts)
	if subtotal != nil && discounts != nil {
		gross := *subtotal + *discounts
		return &gross
	}
	return order.TotalLineItemsPrice.Value
}

// deriveOrderRefundAmount prefere as transações; sem valor positivo, soma os subtotais das linhas
func deriveOrderRefundAmount(refunds []shopifydomain.Refund) float64 {
	total := 0.0
	for _, refund := range refunds {
		for _, tx := range refund.Transactions {
			total += tx.Amount.OrZero()
		}
	}
	if total > 0 {
		return total
	}

	fallback := 0.0
	for _, refund := range refunds {
		for _, item := range refund.RefundLineItems {
			fallback += item.Subtotal.OrZero()
		}
	}
	return fallback
}

// buildRefundLineMap acumula quantidade e receita devolvidas por linha de item,
// somando todos os reembolsos que tocam a mesma linha
func buildRefundLineMap(refunds []shopifydomain.Refund) map[string]lineRefund {
	out := make(map[string]lineRefund)
	for _, refund := range refunds {
		for _, item := range refund.RefundLineItems {
			lineID := item.LineID()
			if lineID == "" {
				continue
			}
			quantity := item.Quantity.OrZero()
			revenue := item.Subtotal.Value
			if revenue == nil {
				price := 0.0
				if item.LineItem != nil {
					price = item.LineItem.Price.OrZero()
				}
				v := price * quantity
				revenue = &v
			}

			acc := out[lineID]
			acc.quantity += quantity
			acc.revenue += *revenue
			out[lineID] = acc
		}
	}
	return out
}

func customerOf(customer *shopifydomain.Customer) (*string, domain.CustomerType) {
	if customer == nil || customer.ID.String() == "" {
		return nil, domain.CustomerTypeUnknown
	}
	id := customer.ID.String()
	if customer.OrdersCount.OrZero() <= 1 {
		return &id, domain.CustomerTypeNew
	}
	return &id, domain.CustomerTypeReturning
}

func parseShopifyTime(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func nonEmpty(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func firstNonNil(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
