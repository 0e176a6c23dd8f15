package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/custodia-labs/bestpet/internal/core/domain"
	"github.com/custodia-labs/bestpet/internal/core/ports/driven"
	"github.com/custodia-labs/bestpet/internal/core/ports/driving"
	"github.com/custodia-labs/bestpet/internal/logger"
)

// Ensure ShopCatalogManager implements the interface.
var _ driving.QuoteService = (*ShopCatalogManager)(nil)

// ShopCatalogManager selects the best shop for a grooming request.
type ShopCatalogManager struct {
	shops    driven.ShopStore
	services domain.ServiceMapping
}

// NewShopCatalogManager creates a manager over the shop store.
// A nil mapping selects domain.DefaultServiceMapping.
func NewShopCatalogManager(shops driven.ShopStore, services domain.ServiceMapping) *ShopCatalogManager {
	if services == nil {
		services = domain.DefaultServiceMapping()
	}
	return &ShopCatalogManager{
		shops:    shops,
		services: services.Clone(),
	}
}

// Basket builds the line items for the given dog counts.
func (m *ShopCatalogManager) Basket(smallDogs, bigDogs int) (domain.Basket, error) {
	smallID, err := m.services.ProductID(domain.ServiceSmallDogBath)
	if err != nil {
		return nil, err
	}
	bigID, err := m.services.ProductID(domain.ServiceBigDogBath)
	if err != nil {
		return nil, err
	}
	return domain.Basket{
		{ProductID: smallID, Quantity: smallDogs},
		{ProductID: bigID, Quantity: bigDogs},
	}, nil
}

// FindBestOption returns the cheapest shop, nearest on equal price.
// When price and distance both tie, the shop listed first wins.
func (m *ShopCatalogManager) FindBestOption(
	ctx context.Context,
	day domain.Weekday,
	smallDogs, bigDogs int,
) (*domain.BestOption, error) {
	quotes, err := m.quote(ctx, day, smallDogs, bigDogs)
	if err != nil {
		return nil, err
	}

	best := quotes[0]
	for _, q := range quotes[1:] {
		if q.Beats(best) {
			best = q
		}
	}

	logger.Debug("best option: %s at %s", best.Shop.Name, best.Price.StringFixed(2))
	return &domain.BestOption{Shop: best.Shop, Price: best.Price}, nil
}

// BestOption runs FindBestOption for a parsed request.
func (m *ShopCatalogManager) BestOption(ctx context.Context, req domain.QuoteRequest) (*domain.BestOption, error) {
	return m.FindBestOption(ctx, req.Weekday, req.SmallDogs, req.BigDogs)
}

// Rank returns every shop's total ordered best first.
// Shops that tie on price and distance keep catalog order.
func (m *ShopCatalogManager) Rank(
	ctx context.Context,
	day domain.Weekday,
	smallDogs, bigDogs int,
) ([]domain.ShopQuote, error) {
	quotes, err := m.quote(ctx, day, smallDogs, bigDogs)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].Beats(quotes[j])
	})
	return quotes, nil
}

// quote prices the basket at every shop in catalog order.
func (m *ShopCatalogManager) quote(
	ctx context.Context,
	day domain.Weekday,
	smallDogs, bigDogs int,
) ([]domain.ShopQuote, error) {
	basket, err := m.Basket(smallDogs, bigDogs)
	if err != nil {
		return nil, err
	}

	shops, err := m.shops.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	if len(shops) == 0 {
		return nil, domain.ErrNoShops
	}

	logger.Section("Pricing")
	logger.Debug("day=%s small=%d big=%d shops=%d", day, smallDogs, bigDogs, len(shops))

	quotes := make([]domain.ShopQuote, 0, len(shops))
	for _, shop := range shops {
		price, err := shop.TotalPrice(day, basket)
		if err != nil {
			return nil, fmt.Errorf("price shop %d: %w", shop.ID, err)
		}
		logger.Debugw("shop priced",
			"shop", shop.Name,
			"distance", shop.Distance.String(),
			"total", price.StringFixed(2),
		)
		quotes = append(quotes, domain.ShopQuote{Shop: shop, Price: price})
	}
	return quotes, nil
}
