package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bestpet/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bestpet/internal/core/domain"
)

func TestShopService_List(t *testing.T) {
	service := NewShopService(memory.NewShopStore(referenceShops(t)...))

	shops, err := service.List(context.Background())

	require.NoError(t, err)
	require.Len(t, shops, 3)
	assert.Equal(t, "Meu Canino Feliz", shops[0].Name)
}

func TestShopService_Get(t *testing.T) {
	service := NewShopService(memory.NewShopStore(referenceShops(t)...))
	ctx := context.Background()

	s, err := service.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "ChowChawgas", s.Name)

	_, err = service.Get(ctx, 42)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
