package driving

import (
	"context"

	"github.com/custodia-labs/bestpet/internal/core/domain"
)

// ShopService exposes the loaded catalog.
type ShopService interface {
	// List returns all shops in catalog order.
	List(ctx context.Context) ([]*domain.Shop, error)

	// Get retrieves a shop by ID.
	Get(ctx context.Context, id int) (*domain.Shop, error)
}
