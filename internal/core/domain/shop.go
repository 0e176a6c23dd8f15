package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Shop is a pet shop offering grooming products.
// Shops are built once with NewShop and are read-only afterwards.
type Shop struct {
	ID       int
	Name     string
	Distance decimal.Decimal

	products []Product
	byID     map[int]int
}

// NewShop creates a shop owning the given products in order.
// Product ids must be unique within the shop and the distance non-negative.
func NewShop(id int, name string, distance decimal.Decimal, products []Product) (*Shop, error) {
	if distance.IsNegative() {
		return nil, fmt.Errorf("shop %d: distance %s: %w", id, distance, ErrInvalidDistance)
	}

	s := &Shop{
		ID:       id,
		Name:     name,
		Distance: distance,
		products: make([]Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	for _, p := range products {
		if _, dup := s.byID[p.ID]; dup {
			return nil, fmt.Errorf("shop %d: product %d: %w", id, p.ID, ErrDuplicateProduct)
		}
		s.byID[p.ID] = len(s.products)
		s.products = append(s.products, p)
	}
	return s, nil
}

// Products returns a copy of the shop's products in catalog order.
func (s *Shop) Products() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Product returns the product with the given id.
func (s *Shop) Product(id int) (Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

// TotalPrice sums price times quantity over the basket on the given day.
func (s *Shop) TotalPrice(day Weekday, basket Basket) (decimal.Decimal, error) {
	if !day.IsValid() {
		return decimal.Zero, fmt.Errorf("day %d: %w", int(day), ErrInvalidWeekday)
	}

	total := decimal.Zero
	for _, item := range basket {
		if item.Quantity < 0 {
			return decimal.Zero, fmt.Errorf("product %d quantity %d: %w", item.ProductID, item.Quantity, ErrInvalidQuantity)
		}
		product, ok := s.Product(item.ProductID)
		if !ok {
			return decimal.Zero, &ProductLookupError{ShopID: s.ID, ShopName: s.Name, ProductID: item.ProductID}
		}
		total = total.Add(product.PriceForWeekday(day).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, nil
}
