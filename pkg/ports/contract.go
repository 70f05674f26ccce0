package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunCatalogLoaderContract verifies that a CatalogLoader returns want,
// record by record and in order. Numbers are compared as float64.
func RunCatalogLoaderContract(t *testing.T, loader CatalogLoader, want []map[string]any) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load", func(t *testing.T) {
		got, err := loader.Load(ctx)
		require.NoError(t, err, "Load should not return error")
		require.Len(t, got, len(want))

		for i := range want {
			assert.Equal(t, want[i]["stockExchange"], got[i]["stockExchange"], "exchange %d", i)

			wantStocks, _ := want[i]["topStocks"].([]any)
			gotStocks, ok := got[i]["topStocks"].([]any)
			require.True(t, ok, "topStocks of record %d should be a list, got %T", i, got[i]["topStocks"])
			require.Len(t, gotStocks, len(wantStocks))

			for j := range wantStocks {
				ws, _ := wantStocks[j].(map[string]any)
				gs, ok := gotStocks[j].(map[string]any)
				require.True(t, ok, "stock %d of record %d should be an object", j, i)
				assert.Equal(t, ws["stockName"], gs["stockName"])
				assert.InDelta(t, toFloat(ws["price"]), toFloat(gs["price"]), 1e-9)
			}
		}
	})

	t.Run("Load Is Repeatable", func(t *testing.T) {
		first, err := loader.Load(ctx)
		require.NoError(t, err)
		second, err := loader.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, len(first), len(second))
	})
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}
