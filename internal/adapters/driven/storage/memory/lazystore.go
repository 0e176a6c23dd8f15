package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/bestpet/internal/core/domain"
	"github.com/custodia-labs/bestpet/internal/core/ports/driven"
)

// Ensure LazyShopStore implements the interface.
var _ driven.ShopStore = (*LazyShopStore)(nil)

// LazyShopStore loads its catalog on first access and keeps the result,
// including a load error, for the rest of the run.
type LazyShopStore struct {
	source driven.CatalogSource

	once  sync.Once
	store *ShopStore
	err   error
}

// NewLazyShopStore creates a store backed by source.
func NewLazyShopStore(source driven.CatalogSource) *LazyShopStore {
	return &LazyShopStore{source: source}
}

func (s *LazyShopStore) load(ctx context.Context) (*ShopStore, error) {
	s.once.Do(func() {
		s.store, s.err = LoadShopStore(ctx, s.source)
	})
	return s.store, s.err
}

// List returns all shops in catalog order.
func (s *LazyShopStore) List(ctx context.Context) ([]*domain.Shop, error) {
	store, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return store.List(ctx)
}

// Get retrieves a shop by ID.
func (s *LazyShopStore) Get(ctx context.Context, id int) (*domain.Shop, error) {
	store, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return store.Get(ctx, id)
}
