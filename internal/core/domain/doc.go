// Package domain defines the core business entities for bestpet.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types of the grooming price calculator:
//
//   - PriceTable: Weekday and weekend price of one product
//   - Product: A grooming service sold by a shop
//   - Shop: A pet shop with a distance and an ordered product list
//   - Basket: The requested line items for one pricing query
//   - BestOption: The shop selected for a query and its total price
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, github.com/shopspring/decimal
//   - Cannot Import: Any internal/ package, any other external dependency
package domain
