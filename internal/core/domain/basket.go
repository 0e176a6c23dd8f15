package domain

import "fmt"

// LineItem requests a quantity of one product.
type LineItem struct {
	ProductID int
	Quantity  int
}

// Basket is the ordered list of line items for one pricing query.
type Basket []LineItem

// ServiceName identifies a grooming service independently of the product
// id a catalog assigns to it.
type ServiceName string

// Known grooming services.
const (
	// ServiceSmallDogBath is the bath service for small dogs.
	ServiceSmallDogBath ServiceName = "small-dog-bath"

	// ServiceBigDogBath is the bath service for big dogs.
	ServiceBigDogBath ServiceName = "big-dog-bath"
)

// IsValid returns true if the service name is recognised.
func (s ServiceName) IsValid() bool {
	switch s {
	case ServiceSmallDogBath, ServiceBigDogBath:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s ServiceName) String() string {
	return string(s)
}

// ServiceNames returns the known services in display order.
func ServiceNames() []ServiceName {
	return []ServiceName{ServiceSmallDogBath, ServiceBigDogBath}
}

// ServiceMapping maps a grooming service to the catalog product id that sells it.
type ServiceMapping map[ServiceName]int

// DefaultServiceMapping returns the mapping used by the bundled catalog.
func DefaultServiceMapping() ServiceMapping {
	return ServiceMapping{
		ServiceSmallDogBath: 1,
		ServiceBigDogBath:   2,
	}
}

// ProductID returns the product id for a service.
func (m ServiceMapping) ProductID(service ServiceName) (int, error) {
	id, ok := m[service]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownService, service)
	}
	return id, nil
}

// Clone returns a copy of the mapping.
func (m ServiceMapping) Clone() ServiceMapping {
	out := make(ServiceMapping, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
