package snapshotting

import (
	"context"
	"time"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

// Snapshotter calcula as comparações de período a partir do ShopifyQL.
// Com a loja não configurada, todos os métodos devolvem nil sem erro.
type Snapshotter interface {
	Month(ctx context.Context, now time.Time) (*domain.MonthSnapshot, error)
	Comparable(ctx context.Context, now time.Time) (*domain.ComparableSnapshot, error)
	YTD(ctx context.Context, now time.Time) (*domain.YTDSnapshot, error)
	SameTime(ctx context.Context, now time.Time) (*domain.SameTimeSnapshot, error)
	Sessions(ctx context.Context, now time.Time) (*domain.SessionsSnapshot, error)

	// Variantes que registram a falha e devolvem nil, para quem tem fallback
	SafeMonth(ctx context.Context, now time.Time) *domain.MonthSnapshot
	SafeComparable(ctx context.Context, now time.Time) *domain.ComparableSnapshot
	SafeYTD(ctx context.Context, now time.Time) *domain.YTDSnapshot
	SafeSameTime(ctx context.Context, now time.Time) *domain.SameTimeSnapshot
}
