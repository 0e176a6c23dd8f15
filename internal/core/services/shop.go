package services

import (
	"context"

	"github.com/custodia-labs/bestpet/internal/core/domain"
	"github.com/custodia-labs/bestpet/internal/core/ports/driven"
	"github.com/custodia-labs/bestpet/internal/core/ports/driving"
)

// Ensure ShopService implements the interface.
var _ driving.ShopService = (*ShopService)(nil)

// ShopService exposes the loaded catalog.
type ShopService struct {
	store driven.ShopStore
}

// NewShopService creates a new shop service.
func NewShopService(store driven.ShopStore) *ShopService {
	return &ShopService{store: store}
}

// List returns all shops in catalog order.
func (s *ShopService) List(ctx context.Context) ([]*domain.Shop, error) {
	return s.store.List(ctx)
}

// Get retrieves a shop by ID.
func (s *ShopService) Get(ctx context.Context, id int) (*domain.Shop, error) {
	return s.store.Get(ctx, id)
}
