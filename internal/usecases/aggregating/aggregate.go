package aggregating

import (
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

// OrderTotals soma os pedidos reportáveis de um conjunto de linhas
type OrderTotals struct {
	GrossSales    float64
	NetSales      float64
	TotalSales    float64
	Discounts     float64
	ReturnsAmount float64
	OrdersCount   int
}

// HourlyTotals soma amostras horárias; ROAS e ticket médio ficam nulos sem denominador
type HourlyTotals struct {
	SalesAmount float64
	Orders      float64
	AdSpend     float64
	ROAS        *float64
	AOV         *float64
	RowCount    int
}

// AggregateOrders ignora pedidos não reportáveis; valores ausentes contam como zero
func AggregateOrders(rows []domain.OrderRow) OrderTotals {
	var acc OrderTotals
	for _, row := range rows {
		if !row.IsReportable() {
			continue
		}
		acc.GrossSales += utils.Value(row.GrossSales)
		acc.NetSales += utils.Value(row.NetSales)
		acc.TotalSales += utils.Value(row.TotalSales)
		acc.Discounts += utils.Value(row.Discounts)
		acc.ReturnsAmount += utils.Value(row.ReturnsAmount)
		acc.OrdersCount++
	}

	return OrderTotals{
		GrossSales:    utils.RoundValue(acc.GrossSales, 2),
		NetSales:      utils.RoundValue(acc.NetSales, 2),
		TotalSales:    utils.RoundValue(acc.TotalSales, 2),
		Discounts:     utils.RoundValue(acc.Discounts, 2),
		ReturnsAmount: utils.RoundValue(acc.ReturnsAmount, 2),
		OrdersCount:   acc.OrdersCount,
	}
}

func AggregateHourly(rows []domain.HourlyMetric) HourlyTotals {
	var sales, orders, spend float64
	for _, row := range rows {
		sales += utils.Value(row.SalesAmount)
		orders += utils.Value(row.Orders)
		spend += utils.Value(row.AdSpend)
	}

	return HourlyTotals{
		SalesAmount: utils.RoundValue(sales, 2),
		Orders:      utils.RoundValue(orders, 2),
		AdSpend:     utils.RoundValue(spend, 2),
		ROAS:        utils.RoundPtr(utils.Ratio(sales, spend), 4),
		AOV:         utils.RoundPtr(utils.Ratio(sales, orders), 2),
		RowCount:    len(rows),
	}
}

// ProductKey agrupa pelo id do produto e, sem ele, pelo título cru.
// "Unknown Product" é só o título exibido, nunca entra na chave.
func ProductKey(line domain.OrderLineRow) string {
	if line.ProductID != nil && *line.ProductID != "" {
		return *line.ProductID
	}
	if line.ProductTitle == nil {
		return "title:"
	}
	return "title:" + *line.ProductTitle
}

// AggregateProducts acumula unidades e receita líquidas de devolução por produto.
// A saída segue a ordem em que cada produto aparece pela primeira vez.
func AggregateProducts(lines []domain.OrderLineRow) []domain.ProductTotals {
	index := make(map[string]int)
	out := make([]domain.ProductTotals, 0)

	for _, line := range lines {
		key := ProductKey(line)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, domain.ProductTotals{
				ProductKey: key,
				ProductID:  line.ProductID,
				Title:      line.Title(),
			})
		}

		p := &out[i]
		p.Units += line.NetQuantity
		p.Revenue += line.NetRevenueAfterReturns
		p.GrossRevenue += line.GrossRevenue
		p.ReturnedUnits += line.ReturnedQuantity
		p.ReturnedRevenue += line.ReturnedRevenue
	}

	return out
}

// ProductsByKey indexa os acumulados para consulta por chave
func ProductsByKey(products []domain.ProductTotals) map[string]domain.ProductTotals {
	out := make(map[string]domain.ProductTotals, len(products))
	for _, p := range products {
		out[p.ProductKey] = p
	}
	return out
}
