package file_test

import (
	"context"
	"testing"

	"github.com/ic1618/chat-bot/internal/testutils"
	"github.com/ic1618/chat-bot/pkg/adapters/file"
	"github.com/ic1618/chat-bot/pkg/domain"
	"github.com/ic1618/chat-bot/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expected = []map[string]any{
	{
		"stockExchange": "NYSE",
		"topStocks": []any{
			map[string]any{"stockName": "AAPL", "price": 150.0},
			map[string]any{"stockName": "MSFT", "price": 310.25},
		},
	},
	{
		"stockExchange": "LSE",
		"topStocks":     []any{},
	},
}

const catalogJSON = `[
  {"stockExchange": "NYSE", "topStocks": [
    {"stockName": "AAPL", "price": 150.0},
    {"stockName": "MSFT", "price": 310.25}
  ]},
  {"stockExchange": "LSE", "topStocks": []}
]`

const catalogYAML = `
- stockExchange: NYSE
  topStocks:
    - stockName: AAPL
      price: 150
    - stockName: MSFT
      price: 310.25
- stockExchange: LSE
  topStocks: []
`

func TestFileLoader_JSON_Contract(t *testing.T) {
	loader := file.New(testutils.WriteCatalog(t, "stock-data.json", catalogJSON))
	ports.RunCatalogLoaderContract(t, loader, expected)
}

func TestFileLoader_YAML_Contract(t *testing.T) {
	loader := file.New(testutils.WriteCatalog(t, "stock-data.yaml", catalogYAML))
	ports.RunCatalogLoaderContract(t, loader, expected)
}

func TestFileLoader_MissingFile(t *testing.T) {
	loader := file.New(testutils.MissingPath(t, "nope.json"))
	_, err := loader.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogNotFound)
	assert.Contains(t, err.Error(), "not found")
}

func TestFileLoader_MalformedJSON(t *testing.T) {
	loader := file.New(testutils.WriteCatalog(t, "bad.json", `[{"stockExchange": "NYSE",`))
	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load JSON data")
	assert.NotErrorIs(t, err, domain.ErrCatalogNotFound)
}

func TestFileLoader_DefaultPath(t *testing.T) {
	assert.Equal(t, file.DefaultPath, file.New("").Path)
}
