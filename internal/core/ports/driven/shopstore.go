package driven

import (
	"context"

	"github.com/custodia-labs/bestpet/internal/core/domain"
)

// ShopStore provides read access to the shop catalog.
// List must return shops in catalog order; best-option ties resolve to the
// first shop in that order.
type ShopStore interface {
	// List returns all shops in catalog order.
	List(ctx context.Context) ([]*domain.Shop, error)

	// Get retrieves a shop by ID.
	// Returns domain.ErrNotFound if the shop does not exist.
	Get(ctx context.Context, id int) (*domain.Shop, error)
}

// CatalogSource loads a shop catalog.
type CatalogSource interface {
	// Load reads and validates the catalog, returning shops in file order.
	Load(ctx context.Context) ([]*domain.Shop, error)

	// Name describes where the catalog comes from (a path or "default").
	Name() string
}
