package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-dashboard-api/internal/config"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

var hourlyMetricColumns = []string{
	"row_key",
	"logged_at_utc",
	"logged_at_local",
	"sales_amount",
	"orders",
	"ad_spend",
	"roas",
	"source_sales",
	"source_marketing",
	"ingested_at_utc",
}

type HourlyMetricRepository interface {
	ListSince(ctx context.Context, since time.Time) ([]domain.HourlyMetric, error)
	Upsert(ctx context.Context, rows []domain.HourlyMetric) (int, error)
}

type hourlyMetricRepository struct {
	conn      postgres.Conn
	table     string
	page      postgres.PageOptions
	chunkSize int
}

func NewHourlyMetricRepository(conn postgres.Conn, cfg *config.Config) HourlyMetricRepository {
	return &hourlyMetricRepository{
		conn:      conn,
		table:     cfg.Database.HourlyTable,
		page:      postgres.PageOptions{PageSize: cfg.RowStore.PageSize, MaxPages: cfg.RowStore.MaxPages},
		chunkSize: cfg.Sync.UpsertChunkSize,
	}
}

func (r *hourlyMetricRepository) ListSince(ctx context.Context, since time.Time) ([]domain.HourlyMetric, error) {
	return postgres.ScanAll(ctx, r.table, r.page, func(ctx context.Context, limit, offset uint64) ([]domain.HourlyMetric, error) {
		query, args, err := loggedSinceQuery(r.table, since).
			Limit(limit).
			Offset(offset).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("erro ao construir a query: %w", err)
		}

		rows := make([]domain.HourlyMetric, 0, limit)
		if err := r.conn.SelectContext(ctx, &rows, query, args...); err != nil {
			return nil, dbError(err)
		}

		for i := range rows {
			rows[i].LoggedAtUTC = rows[i].LoggedAtUTC.UTC()
		}
		return rows, nil
	})
}

func (r *hourlyMetricRepository) Upsert(ctx context.Context, rows []domain.HourlyMetric) (int, error) {
	return upsertAll(ctx, r.conn, r.upsertSpec(), rows)
}

func (r *hourlyMetricRepository) upsertSpec() upsertSpec[domain.HourlyMetric] {
	return upsertSpec[domain.HourlyMetric]{
		table:     r.table,
		key:       "row_key",
		columns:   hourlyMetricColumns,
		chunkSize: r.chunkSize,
		values: func(m domain.HourlyMetric) []interface{} {
			return []interface{}{
				m.RowKey,
				m.LoggedAtUTC.UTC(),
				m.LoggedAtLocal,
				m.SalesAmount,
				m.Orders,
				m.AdSpend,
				m.ROAS,
				m.SourceSales,
				m.SourceMarketing,
				m.IngestedAtUTC,
			}
		},
	}
}

// loggedSinceQuery lê as linhas horárias a partir de since, em ordem cronológica estável
func loggedSinceQuery(table string, since time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select(hourlyMetricColumns...).
		From(table).
		Where(squirrel.GtOrEq{"logged_at_utc": since.UTC()}).
		OrderBy("logged_at_utc ASC", "row_key ASC").
		PlaceholderFormat(squirrel.Dollar)
}
