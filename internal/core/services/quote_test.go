package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bestpet/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/bestpet/internal/core/domain"
)

// --- Fixtures ---

func product(t *testing.T, id int, name string, weekday, weekend int64) domain.Product {
	t.Helper()
	table, err := domain.NewPriceTable(id, decimal.NewFromInt(weekday), decimal.NewFromInt(weekend))
	require.NoError(t, err)
	return domain.Product{ID: id, Name: name, PriceTable: table}
}

func shop(t *testing.T, id int, name string, distance int64, small, big [2]int64) *domain.Shop {
	t.Helper()
	s, err := domain.NewShop(id, name, decimal.NewFromInt(distance), []domain.Product{
		product(t, 1, "Small Dog Bath", small[0], small[1]),
		product(t, 2, "Big Dog Bath", big[0], big[1]),
	})
	require.NoError(t, err)
	return s
}

func referenceShops(t *testing.T) []*domain.Shop {
	t.Helper()
	return []*domain.Shop{
		shop(t, 1, "Meu Canino Feliz", 2000, [2]int64{20, 24}, [2]int64{40, 48}),
		shop(t, 2, "Vai Rex", 1700, [2]int64{15, 20}, [2]int64{50, 55}),
		shop(t, 3, "ChowChawgas", 800, [2]int64{30, 30}, [2]int64{45, 45}),
	}
}

func newManager(shops ...*domain.Shop) *ShopCatalogManager {
	return NewShopCatalogManager(memory.NewShopStore(shops...), nil)
}

// mockShopStore implements driven.ShopStore for testing.
type mockShopStore struct {
	shops   []*domain.Shop
	listErr error
}

func (m *mockShopStore) List(_ context.Context) ([]*domain.Shop, error) {
	return m.shops, m.listErr
}

func (m *mockShopStore) Get(_ context.Context, _ int) (*domain.Shop, error) {
	return nil, domain.ErrNotFound
}

// --- Tests ---

func TestFindBestOption_Weekday(t *testing.T) {
	manager := newManager(referenceShops(t)...)

	best, err := manager.FindBestOption(context.Background(), domain.Monday, 3, 5)

	require.NoError(t, err)
	assert.Equal(t, "Meu Canino Feliz", best.Shop.Name)
	assert.Equal(t, "260.00", best.Price.StringFixed(2))
}

func TestFindBestOption_Weekend(t *testing.T) {
	manager := newManager(referenceShops(t)...)

	best, err := manager.FindBestOption(context.Background(), domain.Saturday, 3, 5)

	require.NoError(t, err)
	assert.Equal(t, "Meu Canino Feliz", best.Shop.Name)
	assert.Equal(t, "312.00", best.Price.StringFixed(2))
}

func TestFindBestOption_EqualPricePrefersNearest(t *testing.T) {
	far := shop(t, 1, "Far", 900, [2]int64{10, 10}, [2]int64{10, 10})
	near := shop(t, 2, "Near", 100, [2]int64{10, 10}, [2]int64{10, 10})

	best, err := newManager(far, near).FindBestOption(context.Background(), domain.Tuesday, 1, 1)

	require.NoError(t, err)
	assert.Equal(t, "Near", best.Shop.Name)
	assert.Equal(t, "20", best.Price.String())
}

func TestFindBestOption_CheaperBeatsNearer(t *testing.T) {
	cheapFar := shop(t, 1, "Cheap", 5000, [2]int64{9, 9}, [2]int64{9, 9})
	dearNear := shop(t, 2, "Near", 10, [2]int64{10, 10}, [2]int64{10, 10})

	best, err := newManager(dearNear, cheapFar).FindBestOption(context.Background(), domain.Friday, 1, 1)

	require.NoError(t, err)
	assert.Equal(t, "Cheap", best.Shop.Name)
}

func TestFindBestOption_FullTieKeepsFirstShop(t *testing.T) {
	first := shop(t, 1, "First", 100, [2]int64{10, 10}, [2]int64{10, 10})
	second := shop(t, 2, "Second", 100, [2]int64{10, 10}, [2]int64{10, 10})

	best, err := newManager(first, second).FindBestOption(context.Background(), domain.Monday, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "First", best.Shop.Name)

	best, err = newManager(second, first).FindBestOption(context.Background(), domain.Monday, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "Second", best.Shop.Name)
}

func TestFindBestOption_NeverReturnsDearerShop(t *testing.T) {
	shops := referenceShops(t)
	manager := newManager(shops...)
	ctx := context.Background()

	for day := domain.Monday; day <= domain.Sunday; day++ {
		best, err := manager.FindBestOption(ctx, day, 4, 1)
		require.NoError(t, err)

		basket, err := manager.Basket(4, 1)
		require.NoError(t, err)
		for _, s := range shops {
			price, err := s.TotalPrice(day, basket)
			require.NoError(t, err)
			assert.True(t, best.Price.LessThanOrEqual(price), "%s: %s beats best %s", day, s.Name, best.Shop.Name)
		}
	}
}

func TestFindBestOption_Idempotent(t *testing.T) {
	manager := newManager(referenceShops(t)...)
	ctx := context.Background()

	first, err := manager.FindBestOption(ctx, domain.Sunday, 3, 5)
	require.NoError(t, err)
	second, err := manager.FindBestOption(ctx, domain.Sunday, 3, 5)
	require.NoError(t, err)

	assert.Same(t, first.Shop, second.Shop)
	assert.True(t, first.Price.Equal(second.Price))
}

func TestFindBestOption_ZeroDogs(t *testing.T) {
	best, err := newManager(referenceShops(t)...).FindBestOption(context.Background(), domain.Monday, 0, 0)

	require.NoError(t, err)
	assert.True(t, best.Price.IsZero())
	// All shops cost nothing, so the nearest wins.
	assert.Equal(t, "ChowChawgas", best.Shop.Name)
}

func TestFindBestOption_NoShops(t *testing.T) {
	best, err := newManager().FindBestOption(context.Background(), domain.Monday, 1, 1)

	assert.Nil(t, best)
	assert.True(t, errors.Is(err, domain.ErrNoShops))
}

func TestFindBestOption_UnknownProduct(t *testing.T) {
	partial, err := domain.NewShop(9, "Cats Only", decimal.NewFromInt(10), []domain.Product{
		product(t, 1, "Small Dog Bath", 1, 1),
	})
	require.NoError(t, err)

	_, err = newManager(append(referenceShops(t), partial)...).FindBestOption(context.Background(), domain.Monday, 1, 1)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownProduct))
	var lookupErr *domain.ProductLookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, 9, lookupErr.ShopID)
	assert.Equal(t, 2, lookupErr.ProductID)
}

func TestFindBestOption_NegativeQuantity(t *testing.T) {
	_, err := newManager(referenceShops(t)...).FindBestOption(context.Background(), domain.Monday, -1, 1)

	assert.True(t, errors.Is(err, domain.ErrInvalidQuantity))
}

func TestFindBestOption_StoreError(t *testing.T) {
	storeErr := errors.New("disk on fire")
	manager := NewShopCatalogManager(&mockShopStore{listErr: storeErr}, nil)

	_, err := manager.FindBestOption(context.Background(), domain.Monday, 1, 1)

	assert.True(t, errors.Is(err, storeErr))
}

func TestFindBestOption_CustomServiceMapping(t *testing.T) {
	s, err := domain.NewShop(1, "Renumbered", decimal.NewFromInt(10), []domain.Product{
		product(t, 10, "Small Dog Bath", 5, 6),
		product(t, 20, "Big Dog Bath", 7, 8),
	})
	require.NoError(t, err)

	mapping := domain.ServiceMapping{
		domain.ServiceSmallDogBath: 10,
		domain.ServiceBigDogBath:   20,
	}
	manager := NewShopCatalogManager(memory.NewShopStore(s), mapping)

	best, err := manager.FindBestOption(context.Background(), domain.Monday, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "19", best.Price.String())

	// The manager keeps its own copy of the mapping.
	mapping[domain.ServiceSmallDogBath] = 99
	_, err = manager.FindBestOption(context.Background(), domain.Monday, 1, 2)
	assert.NoError(t, err)
}

func TestFindBestOption_MissingServiceMapping(t *testing.T) {
	manager := NewShopCatalogManager(memory.NewShopStore(referenceShops(t)...), domain.ServiceMapping{
		domain.ServiceSmallDogBath: 1,
	})

	_, err := manager.FindBestOption(context.Background(), domain.Monday, 1, 1)

	assert.True(t, errors.Is(err, domain.ErrUnknownService))
}

func TestBestOption_FromRequest(t *testing.T) {
	req, err := domain.ParseQuoteRequest("04/08/2018 3 5")
	require.NoError(t, err)

	best, err := newManager(referenceShops(t)...).BestOption(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "312.00", best.Price.StringFixed(2))
}

func TestRank_OrdersBestFirst(t *testing.T) {
	quotes, err := newManager(referenceShops(t)...).Rank(context.Background(), domain.Monday, 3, 5)

	require.NoError(t, err)
	require.Len(t, quotes, 3)
	assert.Equal(t, "Meu Canino Feliz", quotes[0].Shop.Name)
	assert.Equal(t, "260", quotes[0].Price.String())
	assert.Equal(t, "Vai Rex", quotes[1].Shop.Name)
	assert.Equal(t, "295", quotes[1].Price.String())
	assert.Equal(t, "ChowChawgas", quotes[2].Shop.Name)
	assert.Equal(t, "315", quotes[2].Price.String())
}

func TestRank_FirstMatchesFindBestOption(t *testing.T) {
	manager := newManager(referenceShops(t)...)
	ctx := context.Background()

	for day := domain.Monday; day <= domain.Sunday; day++ {
		quotes, err := manager.Rank(ctx, day, 2, 7)
		require.NoError(t, err)
		best, err := manager.FindBestOption(ctx, day, 2, 7)
		require.NoError(t, err)
		assert.Same(t, best.Shop, quotes[0].Shop, day.String())
	}
}

func TestRank_NoShops(t *testing.T) {
	_, err := newManager().Rank(context.Background(), domain.Monday, 1, 1)
	assert.True(t, errors.Is(err, domain.ErrNoShops))
}
