package aggregating

import (
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

func OrdersWithin(rows []domain.OrderRow, window domain.TimeRange) []domain.OrderRow {
	out := make([]domain.OrderRow, 0, len(rows))
	for _, row := range rows {
		if window.Contains(row.CreatedAtUTC) {
			out = append(out, row)
		}
	}
	return out
}

func LinesWithin(lines []domain.OrderLineRow, window domain.TimeRange) []domain.OrderLineRow {
	out := make([]domain.OrderLineRow, 0, len(lines))
	for _, line := range lines {
		if window.Contains(line.CreatedAtUTC) {
			out = append(out, line)
		}
	}
	return out
}

func HourlyWithin(rows []domain.HourlyMetric, window domain.TimeRange) []domain.HourlyMetric {
	out := make([]domain.HourlyMetric, 0, len(rows))
	for _, row := range rows {
		if window.Contains(row.LoggedAtUTC) {
			out = append(out, row)
		}
	}
	return out
}

func ReportableOrders(rows []domain.OrderRow) []domain.OrderRow {
	out := make([]domain.OrderRow, 0, len(rows))
	for _, row := range rows {
		if row.IsReportable() {
			out = append(out, row)
		}
	}
	return out
}

// ReportableOrderIDs retorna o conjunto de ids dos pedidos reportáveis
func ReportableOrderIDs(rows []domain.OrderRow) map[string]struct{} {
	out := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if row.IsReportable() {
			out[row.OrderID] = struct{}{}
		}
	}
	return out
}

// FilterLinesByOrderIDs mantém só linhas de pedidos do conjunto; conjunto vazio devolve vazio
func FilterLinesByOrderIDs(lines []domain.OrderLineRow, ids map[string]struct{}) []domain.OrderLineRow {
	out := make([]domain.OrderLineRow, 0)
	if len(ids) == 0 {
		return out
	}
	for _, line := range lines {
		if _, ok := ids[line.OrderID]; ok {
			out = append(out, line)
		}
	}
	return out
}
