package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/bestpet/internal/core/domain"
	"github.com/custodia-labs/bestpet/internal/core/ports/driven"
)

// Ensure ShopStore implements the interface.
var _ driven.ShopStore = (*ShopStore)(nil)

// ShopStore is an in-memory implementation of driven.ShopStore.
// Shops keep the order they were added in.
type ShopStore struct {
	mu    sync.RWMutex
	shops []*domain.Shop
	byID  map[int]int
}

// NewShopStore creates a store holding the given shops in order.
// Later shops with an already seen ID replace the earlier entry in place.
func NewShopStore(shops ...*domain.Shop) *ShopStore {
	s := &ShopStore{byID: make(map[int]int)}
	for _, shop := range shops {
		s.add(shop)
	}
	return s
}

// LoadShopStore builds a store from a catalog source.
func LoadShopStore(ctx context.Context, source driven.CatalogSource) (*ShopStore, error) {
	shops, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", source.Name(), err)
	}
	return NewShopStore(shops...), nil
}

func (s *ShopStore) add(shop *domain.Shop) {
	if i, ok := s.byID[shop.ID]; ok {
		s.shops[i] = shop
		return
	}
	s.byID[shop.ID] = len(s.shops)
	s.shops = append(s.shops, shop)
}

// List returns all shops in catalog order.
func (s *ShopStore) List(_ context.Context) ([]*domain.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*domain.Shop, len(s.shops))
	copy(result, s.shops)
	return result, nil
}

// Get retrieves a shop by ID.
func (s *ShopStore) Get(_ context.Context, id int) (*domain.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s.shops[i], nil
}
