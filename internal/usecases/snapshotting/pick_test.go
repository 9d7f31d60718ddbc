package snapshotting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
)

func TestPick(t *testing.T) {
	value := func(v float64) *float64 { return &v }

	t.Run("primeiro valor presente vence", func(t *testing.T) {
		got, source := Pick(
			From[float64](domain.SourceShopifyQL, nil),
			From(domain.SourceOrdersTable, value(10)),
			From(domain.SourceUnavailable, value(20)),
		)
		require.NotNil(t, got)
		assert.Equal(t, 10.0, *got)
		assert.Equal(t, domain.SourceOrdersTable, source)
	})

	t.Run("zero é um valor presente", func(t *testing.T) {
		got, source := Pick(
			From(domain.SourceShopifyQL, value(0)),
			From(domain.SourceOrdersTable, value(10)),
		)
		require.NotNil(t, got)
		assert.Equal(t, 0.0, *got)
		assert.Equal(t, domain.SourceShopifyQL, source)
	})

	t.Run("candidatos seguintes não são avaliados", func(t *testing.T) {
		calls := 0
		got, _ := Pick(
			From(domain.SourceShopifyQL, value(1)),
			Candidate[float64]{Source: domain.SourceOrdersTable, Get: func() *float64 {
				calls++
				return value(2)
			}},
		)
		require.NotNil(t, got)
		assert.Equal(t, 0, calls)
	})

	t.Run("sem valores", func(t *testing.T) {
		got, source := Pick[float64](From[float64](domain.SourceShopifyQL, nil))
		assert.Nil(t, got)
		assert.Empty(t, source)

		got, source = PickOr[float64](domain.SourceUnavailable, From[float64](domain.SourceShopifyQL, nil))
		assert.Nil(t, got)
		assert.Equal(t, domain.SourceUnavailable, source)
	})
}
