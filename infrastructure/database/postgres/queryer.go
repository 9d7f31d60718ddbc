package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Queryer é satisfeito tanto por *sqlx.DB quanto por *sqlx.Tx
type Queryer interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

var (
	_ Queryer = (*sqlx.DB)(nil)
	_ Queryer = (*sqlx.Tx)(nil)
	_ Conn    = (*Connection)(nil)
)
