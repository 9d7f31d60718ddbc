package repository

import (
	"context"
	"fmt"

	"github.com/vfg2006/retail-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-dashboard-api/internal/config"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

var orderColumns = []string{
	"order_id",
	"order_name",
	"created_at_utc",
	"processed_at_utc",
	"currency",
	"source_name",
	"customer_id",
	"customer_type",
	"gross_sales",
	"net_sales",
	"total_sales",
	"discounts",
	"returns_amount",
	"refunds_count",
	"line_items_count",
	"financial_status",
	"fulfillment_status",
	"cancelled_at_utc",
	"is_test",
	"ingested_at_utc",
}

type OrderRepository interface {
	ListCreatedBetween(ctx context.Context, window domain.TimeRange) ([]domain.OrderRow, error)
	Upsert(ctx context.Context, rows []domain.OrderRow) (int, error)
}

type orderRepository struct {
	conn      postgres.Conn
	table     string
	page      postgres.PageOptions
	chunkSize int
}

func NewOrderRepository(conn postgres.Conn, cfg *config.Config) OrderRepository {
	return &orderRepository{
		conn:      conn,
		table:     cfg.Database.OrdersTable,
		page:      postgres.PageOptions{PageSize: cfg.RowStore.PageSize, MaxPages: cfg.RowStore.MaxPages},
		chunkSize: cfg.Sync.UpsertChunkSize,
	}
}

func (r *orderRepository) ListCreatedBetween(ctx context.Context, window domain.TimeRange) ([]domain.OrderRow, error) {
	return postgres.ScanAll(ctx, r.table, r.page, func(ctx context.Context, limit, offset uint64) ([]domain.OrderRow, error) {
		query, args, err := createdBetweenQuery(r.table, orderColumns, "order_id", window).
			Limit(limit).
			Offset(offset).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query: %w", err)
		}

		rows := make([]domain.OrderRow, 0, limit)
		if err := r.conn.SelectContext(ctx, &rows, query, args...); err != nil {
			return nil, dbError(err)
		}

		for i := range rows {
			rows[i].CreatedAtUTC = rows[i].CreatedAtUTC.UTC()
			rows[i].Normalize()
		}
		return rows, nil
	})
}

func (r *orderRepository) Upsert(ctx context.Context, rows []domain.OrderRow) (int, error) {
	return upsertAll(ctx, r.conn, r.upsertSpec(), rows)
}

func (r *orderRepository) upsertSpec() upsertSpec[domain.OrderRow] {
	return upsertSpec[domain.OrderRow]{
		table:     r.table,
		key:       "order_id",
		columns:   orderColumns,
		chunkSize: r.chunkSize,
		values: func(o domain.OrderRow) []interface{} {
			return []interface{}{
				o.OrderID,
				o.OrderName,
				o.CreatedAtUTC.UTC(),
				o.ProcessedAtUTC,
				o.Currency,
				o.SourceName,
				o.CustomerID,
				string(o.CustomerType),
				o.GrossSales,
				o.NetSales,
				o.TotalSales,
				o.Discounts,
				o.ReturnsAmount,
				o.RefundsCount,
				o.LineItemsCount,
				o.FinancialStatus,
				o.FulfillmentStatus,
				o.CancelledAtUTC,
				o.IsTest,
				o.IngestedAtUTC,
			}
		},
	}
}
