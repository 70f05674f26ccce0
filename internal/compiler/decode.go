package compiler

import (
	"fmt"

	"github.com/ic1618/chat-bot/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Decode converts loosely typed catalog records (as produced by a JSON or YAML
// decoder) into exchange descriptors.
// The first missing or ill-typed field aborts decoding with a *domain.ParseError.
func Decode(records []map[string]any) ([]domain.ExchangeDescriptor, error) {
	descs := make([]domain.ExchangeDescriptor, 0, len(records))
	for i, rec := range records {
		path := fmt.Sprintf("[%d]", i)

		var desc domain.ExchangeDescriptor
		if err := requireField(rec, path, domain.FieldExchange, &desc.Name); err != nil {
			return nil, err
		}

		var stocks []map[string]any
		if err := requireField(rec, path, domain.FieldTopStocks, &stocks); err != nil {
			return nil, err
		}
		if stocks == nil {
			return nil, &domain.ParseError{Path: path, Field: domain.FieldTopStocks, Err: domain.ErrMissingField}
		}

		desc.TopStocks = make([]domain.StockDescriptor, 0, len(stocks))
		for j, stock := range stocks {
			stockPath := fmt.Sprintf("%s.%s[%d]", path, domain.FieldTopStocks, j)

			var sd domain.StockDescriptor
			if err := requireField(stock, stockPath, domain.FieldStockName, &sd.Name); err != nil {
				return nil, err
			}

			var price *float64
			if err := requireField(stock, stockPath, domain.FieldPrice, &price); err != nil {
				return nil, err
			}
			if price == nil {
				return nil, &domain.ParseError{Path: stockPath, Field: domain.FieldPrice, Err: domain.ErrMissingField}
			}
			sd.Price = *price

			desc.TopStocks = append(desc.TopStocks, sd)
		}

		descs = append(descs, desc)
	}
	return descs, nil
}

// requireField decodes rec[key] into target. Lookup is exact; a null value
// leaves target untouched so callers can tell it apart from a zero value.
func requireField(rec map[string]any, path, key string, target any) error {
	raw, ok := rec[key]
	if !ok {
		return &domain.ParseError{Path: path, Field: key, Err: domain.ErrMissingField}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: target,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return &domain.ParseError{Path: path, Field: key, Err: err}
	}
	return nil
}
