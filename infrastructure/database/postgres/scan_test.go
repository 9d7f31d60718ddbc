package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pagedSource(total int) (PageFetcher[int], *int) {
	calls := 0
	return func(_ context.Context, limit, offset uint64) ([]int, error) {
		calls++
		out := make([]int, 0, limit)
		for i := int(offset); i < total && i < int(offset+limit); i++ {
			out = append(out, i)
		}
		return out, nil
	}, &calls
}

func TestScanAll(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		opts      PageOptions
		wantRows  int
		wantCalls int
		wantErr   bool
	}{
		{
			name:      "empty table returns zero rows after one page",
			total:     0,
			opts:      PageOptions{PageSize: 10, MaxPages: 5},
			wantRows:  0,
			wantCalls: 1,
		},
		{
			name:      "stops on the first short page",
			total:     25,
			opts:      PageOptions{PageSize: 10, MaxPages: 5},
			wantRows:  25,
			wantCalls: 3,
		},
		{
			name:      "exact multiple needs one extra empty page",
			total:     20,
			opts:      PageOptions{PageSize: 10, MaxPages: 5},
			wantRows:  20,
			wantCalls: 3,
		},
		{
			name:      "full pages up to the ceiling fail",
			total:     100,
			opts:      PageOptions{PageSize: 10, MaxPages: 3},
			wantCalls: 3,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetch, calls := pagedSource(tt.total)

			rows, err := ScanAll(context.Background(), "shopify_orders", tt.opts, fetch)

			assert.Equal(t, tt.wantCalls, *calls)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrPaginationExceeded))
				assert.Equal(t, "select pagination exceeded maxPages=3 for table shopify_orders", err.Error())
				assert.Nil(t, rows)
				return
			}
			require.NoError(t, err)
			assert.Len(t, rows, tt.wantRows)
		})
	}
}

func TestScanAll_PreservesOrderAcrossPages(t *testing.T) {
	fetch, _ := pagedSource(7)

	rows, err := ScanAll(context.Background(), "hourly_metrics", PageOptions{PageSize: 3, MaxPages: 10}, fetch)

	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, rows)
}

func TestScanAll_PropagatesFetchError(t *testing.T) {
	boom := errors.New("connection reset")
	fetch := func(context.Context, uint64, uint64) ([]int, error) {
		return nil, boom
	}

	_, err := ScanAll(context.Background(), "shopify_order_lines", PageOptions{}, fetch)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestPageOptions_Normalized(t *testing.T) {
	assert.Equal(t, PageOptions{PageSize: 1000, MaxPages: 200}, PageOptions{}.normalized())
	assert.Equal(t, PageOptions{PageSize: 5000, MaxPages: 5000}, PageOptions{PageSize: 9000, MaxPages: 7000}.normalized())
	assert.Equal(t, PageOptions{PageSize: 50, MaxPages: 2}, PageOptions{PageSize: 50, MaxPages: 2}.normalized())
}
