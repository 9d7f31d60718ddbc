package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

//go:embed sql
var fs embed.FS

func source() *migrate.EmbedFileSystemMigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: fs,
		Root:       "sql",
	}
}

// Up aplica as migrações pendentes e retorna quantas foram executadas
func Up(ctx context.Context, db *sql.DB, dialect string) (int, error) {
	return run(ctx, db, dialect, migrate.Up, 0)
}

// Down desfaz as últimas `steps` migrações
func Down(ctx context.Context, db *sql.DB, dialect string, steps int) (int, error) {
	return run(ctx, db, dialect, migrate.Down, steps)
}

func run(ctx context.Context, db *sql.DB, dialect string, direction migrate.MigrationDirection, max int) (int, error) {
	type result struct {
		n   int
		err error
	}

	done := make(chan result, 1)
	go func() {
		n, err := migrate.ExecMax(db, dialect, source(), direction, max)
		done <- result{n: n, err: err}
	}()

	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("tempo esgotado ao migrar o banco: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return 0, fmt.Errorf("falha ao aplicar migrações: %w", res.err)
		}
		logrus.WithField("count", res.n).Info("Migrações aplicadas")
		return res.n, nil
	}
}

// Pending lista as migrações ainda não aplicadas
func Pending(db *sql.DB, dialect string) ([]string, error) {
	planned, _, err := migrate.PlanMigration(db, dialect, source(), migrate.Up, 0)
	if err != nil {
		return nil, fmt.Errorf("erro ao planejar migrações: %w", err)
	}

	ids := make([]string, 0, len(planned))
	for _, m := range planned {
		ids = append(ids, m.Id)
	}
	return ids, nil
}
