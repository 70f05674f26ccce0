package ports

import "context"

// CatalogLoader retrieves the catalog the hierarchy is compiled from.
// Records are loosely typed so that field validation happens in one place.
type CatalogLoader interface {
	// Load returns one record per stock exchange, in catalog order.
	// It returns domain.ErrCatalogNotFound when the source holds no catalog.
	Load(ctx context.Context) ([]map[string]any, error)
}
