package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

const monthlyTargetsTable = "monthly_targets"

type MonthlyTargetRepository interface {
	Get(ctx context.Context, month string) (*domain.MonthlyTarget, error)
	List(ctx context.Context) ([]domain.MonthlyTarget, error)
	Upsert(ctx context.Context, target domain.MonthlyTarget) error
}

type monthlyTargetRepository struct {
	conn postgres.Conn
}

func NewMonthlyTargetRepository(conn postgres.Conn) MonthlyTargetRepository {
	return &monthlyTargetRepository{
		conn: conn,
	}
}

func (r *monthlyTargetRepository) Get(ctx context.Context, month string) (*domain.MonthlyTarget, error) {
	query, args, err := squirrel.
		Select("month", "target", "updated_at").
		From(monthlyTargetsTable).
		Where(squirrel.Eq{"month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var target domain.MonthlyTarget
	if err := r.conn.GetContext(ctx, &target, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError(err)
	}

	return &target, nil
}

func (r *monthlyTargetRepository) List(ctx context.Context) ([]domain.MonthlyTarget, error) {
	query, args, err := squirrel.
		Select("month", "target", "updated_at").
		From(monthlyTargetsTable).
		OrderBy("month DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	targets := make([]domain.MonthlyTarget, 0)
	if err := r.conn.SelectContext(ctx, &targets, query, args...); err != nil {
		return nil, dbError(err)
	}

	return targets, nil
}

func (r *monthlyTargetRepository) Upsert(ctx context.Context, target domain.MonthlyTarget) error {
	query, args, err := squirrel.
		Insert(monthlyTargetsTable).
		Columns("month", "target").
		Values(target.Month, target.Target).
		Suffix(`
			ON CONFLICT (month) DO UPDATE SET
				target = EXCLUDED.target,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return dbError(err)
	}

	return nil
}
