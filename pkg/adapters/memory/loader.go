package memory

import (
	"context"

	"github.com/ic1618/chat-bot/pkg/domain"
)

// Loader implements ports.CatalogLoader on records held in memory.
type Loader struct {
	records []map[string]any
}

// NewLoader creates a Loader over raw records, as a JSON decoder would produce them.
func NewLoader(records []map[string]any) *Loader {
	return &Loader{records: records}
}

// NewFromDescriptors creates a Loader from typed descriptors.
// This handles the conversion to raw records, improving DX for tests.
func NewFromDescriptors(descs ...domain.ExchangeDescriptor) *Loader {
	records := make([]map[string]any, 0, len(descs))
	for _, d := range descs {
		stocks := make([]any, 0, len(d.TopStocks))
		for _, s := range d.TopStocks {
			stocks = append(stocks, map[string]any{
				domain.FieldStockName: s.Name,
				domain.FieldPrice:     s.Price,
			})
		}
		records = append(records, map[string]any{
			domain.FieldExchange:  d.Name,
			domain.FieldTopStocks: stocks,
		})
	}
	return &Loader{records: records}
}

// Load returns a copy of the outer record list.
func (l *Loader) Load(ctx context.Context) ([]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]map[string]any, len(l.records))
	copy(out, l.records)
	return out, nil
}
