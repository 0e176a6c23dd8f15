package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Parsing Errors.

	// ErrInvalidDate indicates a date that does not match day/month/year.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidQuantity indicates a quantity that is not a non-negative integer.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidWeekday indicates a day index outside 0-6.
	ErrInvalidWeekday = errors.New("invalid weekday")

	// Lookup Errors.

	// ErrUnknownProduct indicates a basket references a product the shop does not sell.
	ErrUnknownProduct = errors.New("unknown product id for shop")

	// ErrUnknownService indicates a service name with no product mapping.
	ErrUnknownService = errors.New("unknown service")

	// Catalog Errors.

	// ErrNoShops indicates the catalog has no shops to compare.
	ErrNoShops = errors.New("no shops available")

	// ErrInvalidCatalog indicates catalog data failed validation.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrInvalidPrice indicates a negative price.
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInvalidDistance indicates a negative shop distance.
	ErrInvalidDistance = errors.New("invalid distance")

	// ErrDuplicateProduct indicates two products with the same id in one shop.
	ErrDuplicateProduct = errors.New("duplicate product id")
)

// InputError describes a rejected field of a quote request.
// It matches both ErrInvalidInput and its specific cause with errors.Is.
type InputError struct {
	Field string
	Value string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the specific cause and ErrInvalidInput.
func (e *InputError) Unwrap() []error {
	return []error{e.Err, ErrInvalidInput}
}

// ProductLookupError is returned when a basket line has no matching product in a shop.
type ProductLookupError struct {
	ShopID    int
	ShopName  string
	ProductID int
}

func (e *ProductLookupError) Error() string {
	return fmt.Sprintf("shop %d (%s): product %d: %v", e.ShopID, e.ShopName, e.ProductID, ErrUnknownProduct)
}

// Unwrap returns ErrUnknownProduct.
func (e *ProductLookupError) Unwrap() error {
	return ErrUnknownProduct
}
