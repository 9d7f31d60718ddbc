package postgres

import (
	"context"
	"errors"
	"fmt"
)

const (
	DefaultPageSize = 1000
	DefaultMaxPages = 200
	maxPageLimit    = 5000
)

var ErrPaginationExceeded = errors.New("pagination exceeded")

// PaginationError indica que uma leitura paginada bateu no teto de páginas
type PaginationError struct {
	Table    string
	MaxPages int
}

func (e *PaginationError) Error() string {
	return fmt.Sprintf("select pagination exceeded maxPages=%d for table %s", e.MaxPages, e.Table)
}

func (e *PaginationError) Unwrap() error {
	return ErrPaginationExceeded
}

type PageOptions struct {
	PageSize int
	MaxPages int
}

func (o PageOptions) normalized() PageOptions {
	return PageOptions{
		PageSize: clampPage(o.PageSize, DefaultPageSize),
		MaxPages: clampPage(o.MaxPages, DefaultMaxPages),
	}
}

func clampPage(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return min(v, maxPageLimit)
}

// PageFetcher busca uma página com o limite e o deslocamento informados
type PageFetcher[T any] func(ctx context.Context, limit, offset uint64) ([]T, error)

// ScanAll lê a tabela página a página, em ordem, até uma página vir incompleta.
// Se MaxPages páginas cheias forem lidas, retorna PaginationError em vez de truncar o resultado.
func ScanAll[T any](ctx context.Context, table string, opts PageOptions, fetch PageFetcher[T]) ([]T, error) {
	opts = opts.normalized()
	out := make([]T, 0)

	for page := 0; page < opts.MaxPages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		offset := uint64(page * opts.PageSize)
		chunk, err := fetch(ctx, uint64(opts.PageSize), offset)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler página %d de %s: %w", page, table, err)
		}

		out = append(out, chunk...)
		if len(chunk) < opts.PageSize {
			return out, nil
		}
	}

	return nil, &PaginationError{Table: table, MaxPages: opts.MaxPages}
}
