package domain

import "github.com/shopspring/decimal"

// BestOption is the shop selected for a query and its total price.
type BestOption struct {
	Shop  *Shop
	Price decimal.Decimal
}

// ShopQuote is one shop's total price for a query.
type ShopQuote struct {
	Shop  *Shop
	Price decimal.Decimal
}

// Beats reports whether q is a better option than other: a strictly lower
// price, or an equal price and a strictly shorter distance.
func (q ShopQuote) Beats(other ShopQuote) bool {
	if cmp := q.Price.Cmp(other.Price); cmp != 0 {
		return cmp < 0
	}
	return q.Shop.Distance.LessThan(other.Shop.Distance)
}
