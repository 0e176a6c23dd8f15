package domain

import "github.com/shopspring/decimal"

// Product is a grooming service sold by a shop.
// Each product exclusively owns its price table.
type Product struct {
	ID         int
	Name       string
	PriceTable PriceTable
}

// PriceForWeekday returns the product price on the given day.
// Callers validate the day beforehand; an out-of-range day is priced as a weekday.
func (p Product) PriceForWeekday(day Weekday) decimal.Decimal {
	return p.PriceTable.PriceFor(day)
}
