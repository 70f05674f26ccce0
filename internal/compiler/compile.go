package compiler

import (
	"errors"
	"fmt"

	"github.com/ic1618/chat-bot/pkg/domain"
)

// Compile builds the node hierarchy from exchange descriptors.
// Names must be non-empty and unique among siblings; a stock may not use a
// shortcut label. On error no hierarchy is returned.
func Compile(descs []domain.ExchangeDescriptor) (*domain.Hierarchy, error) {
	b := domain.NewBuilder()

	for i, desc := range descs {
		path := fmt.Sprintf("[%d]", i)
		if desc.Name == "" {
			return nil, &domain.ParseError{Path: path, Field: domain.FieldExchange, Err: domain.ErrMissingField}
		}
		if desc.TopStocks == nil {
			return nil, &domain.ParseError{Path: path, Field: domain.FieldTopStocks, Err: domain.ErrMissingField}
		}

		catID, err := b.AddCategory(desc.Name)
		if err != nil {
			return nil, &domain.ParseError{Path: path, Field: domain.FieldExchange, Err: err}
		}

		for j, stock := range desc.TopStocks {
			stockPath := fmt.Sprintf("%s.%s[%d]", path, domain.FieldTopStocks, j)
			if stock.Name == "" {
				return nil, &domain.ParseError{Path: stockPath, Field: domain.FieldStockName, Err: domain.ErrMissingField}
			}
			if _, err := b.AddLeaf(catID, stock.Name, stock.Price); err != nil {
				return nil, &domain.ParseError{Path: stockPath, Field: domain.FieldStockName, Err: err}
			}
		}
	}

	return b.Build(), nil
}

// Build decodes raw catalog records and compiles them in one step.
func Build(records []map[string]any) (*domain.Hierarchy, error) {
	descs, err := Decode(records)
	if err != nil {
		return nil, err
	}
	return Compile(descs)
}

// IsParseError reports whether err originates from a malformed catalog.
func IsParseError(err error) bool {
	var pe *domain.ParseError
	return errors.As(err, &pe)
}
