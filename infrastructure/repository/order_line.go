package repository

import (
	"context"
	"fmt"

	"github.com/vfg2006/retail-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-dashboard-api/internal/config"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

var orderLineColumns = []string{
	"order_line_key",
	"order_id",
	"line_item_id",
	"created_at_utc",
	"product_id",
	"variant_id",
	"sku",
	"product_title",
	"variant_title",
	"vendor",
	"source_name",
	"customer_type",
	"quantity",
	"gross_revenue",
	"discount_amount",
	"net_revenue",
	"returned_quantity",
	"returned_revenue",
	"net_quantity",
	"net_revenue_after_returns",
	"ingested_at_utc",
}

type OrderLineRepository interface {
	ListCreatedBetween(ctx context.Context, window domain.TimeRange) ([]domain.OrderLineRow, error)
	Upsert(ctx context.Context, rows []domain.OrderLineRow) (int, error)
}

type orderLineRepository struct {
	conn      postgres.Conn
	table     string
	page      postgres.PageOptions
	chunkSize int
}

func NewOrderLineRepository(conn postgres.Conn, cfg *config.Config) OrderLineRepository {
	return &orderLineRepository{
		conn:      conn,
		table:     cfg.Database.OrderLinesTable,
		page:      postgres.PageOptions{PageSize: cfg.RowStore.PageSize, MaxPages: cfg.RowStore.MaxPages},
		chunkSize: cfg.Sync.UpsertChunkSize,
	}
}

func (r *orderLineRepository) ListCreatedBetween(ctx context.Context, window domain.TimeRange) ([]domain.OrderLineRow, error) {
	return postgres.ScanAll(ctx, r.table, r.page, func(ctx context.Context, limit, offset uint64) ([]domain.OrderLineRow, error) {
		query, args, err := createdBetweenQuery(r.table, orderLineColumns, "order_line_key", window).
			Limit(limit).
			Offset(offset).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query: %w", err)
		}

		rows := make([]domain.OrderLineRow, 0, limit)
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

func (r *orderLineRepository) Upsert(ctx context.Context, rows []domain.OrderLineRow) (int, error) {
	return upsertAll(ctx, r.conn, r.upsertSpec(), rows)
}

func (r *orderLineRepository) upsertSpec() upsertSpec[domain.OrderLineRow] {
	return upsertSpec[domain.OrderLineRow]{
		table:     r.table,
		key:       "order_line_key",
		columns:   orderLineColumns,
		chunkSize: r.chunkSize,
		values: func(l domain.OrderLineRow) []interface{} {
			return []interface{}{
				l.OrderLineKey,
				l.OrderID,
				l.LineItemID,
				l.CreatedAtUTC.UTC(),
				l.ProductID,
				l.VariantID,
				l.SKU,
				l.ProductTitle,
				l.VariantTitle,
				l.Vendor,
				l.SourceName,
				string(l.CustomerType),
				l.Quantity,
				l.GrossRevenue,
				l.DiscountAmount,
				l.NetRevenue,
				l.ReturnedQuantity,
				l.ReturnedRevenue,
				l.NetQuantity,
				l.NetRevenueAfterReturns,
				l.IngestedAtUTC,
			}
		},
	}
}
