package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/retail-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

const defaultUpsertChunkSize = 500

// upsertSpec descreve um upsert em lote por chave natural
type upsertSpec[T any] struct {
	table     string
	key       string
	columns   []string
	chunkSize int
	values    func(T) []interface{}
}

// createdBetweenQuery seleciona a janela [Start, End] fechada nas duas pontas,
// ordenada por created_at_utc e desempatada pela chave natural
func createdBetweenQuery(table string, columns []string, key string, window domain.TimeRange) squirrel.SelectBuilder {
	return squirrel.
		Select(columns...).
		From(table).
		Where(squirrel.GtOrEq{"created_at_utc": window.Start.UTC()}).
		Where(squirrel.LtOrEq{"created_at_utc": window.End.UTC()}).
		OrderBy("created_at_utc ASC", key+" ASC").
		PlaceholderFormat(squirrel.Dollar)
}

// conflictSuffix gera "ON CONFLICT (key) DO UPDATE SET col = EXCLUDED.col" para as demais colunas
func conflictSuffix(key string, columns []string) string {
	sets := make([]string, 0, len(columns))
	for _, column := range columns {
		if column == key {
			continue
		}
		sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
	}
	return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s", key, strings.Join(sets, ", "))
}

// buildUpsertChunks monta uma query por bloco de no máximo chunkSize linhas
func buildUpsertChunks[T any](spec upsertSpec[T], rows []T) ([]string, [][]interface{}, error) {
	size := spec.chunkSize
	if size <= 0 {
		size = defaultUpsertChunkSize
	}

	suffix := conflictSuffix(spec.key, spec.columns)
	queries := make([]string, 0, len(rows)/size+1)
	argsList := make([][]interface{}, 0, len(rows)/size+1)

	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))

		builder := squirrel.
			Insert(spec.table).
			Columns(spec.columns...).
			Suffix(suffix).
			PlaceholderFormat(squirrel.Dollar)
		for _, row := range rows[start:end] {
			builder = builder.Values(spec.values(row)...)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return nil, nil, fmt.Errorf("erro ao construir a query: %w", err)
		}
		queries = append(queries, query)
		argsList = append(argsList, args)
	}

	return queries, argsList, nil
}

// upsertAll grava todas as linhas em blocos, numa única transação, e retorna as linhas afetadas
func upsertAll[T any](ctx context.Context, conn postgres.Conn, spec upsertSpec[T], rows []T) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	queries, argsList, err := buildUpsertChunks(spec, rows)
	if err != nil {
		return 0, err
	}

	affected := 0
	err = conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		for i, query := range queries {
			result, err := q.ExecContext(ctx, query, argsList[i]...)
			if err != nil {
				return dbError(err)
			}

			n, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
			}
			affected += int(n)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("erro ao gravar %s: %w", spec.table, err)
	}

	return affected, nil
}

func dbError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
