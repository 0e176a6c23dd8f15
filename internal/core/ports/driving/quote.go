package driving

import (
	"context"

	"github.com/custodia-labs/bestpet/internal/core/domain"
)

// QuoteService prices grooming requests across the shop catalog.
type QuoteService interface {
	// FindBestOption returns the cheapest shop for the given day and dog counts,
	// preferring the nearest shop on equal price.
	// Returns domain.ErrNoShops when the catalog is empty.
	FindBestOption(ctx context.Context, day domain.Weekday, smallDogs, bigDogs int) (*domain.BestOption, error)

	// BestOption is FindBestOption for a parsed request.
	BestOption(ctx context.Context, req domain.QuoteRequest) (*domain.BestOption, error)

	// Rank returns every shop's total, best option first.
	Rank(ctx context.Context, day domain.Weekday, smallDogs, bigDogs int) ([]domain.ShopQuote, error)
}
