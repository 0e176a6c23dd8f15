package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceTable holds the weekday and weekend price of one product variant.
// It is immutable once constructed.
type PriceTable struct {
	ID           int
	WeekdayPrice decimal.Decimal
	WeekendPrice decimal.Decimal
}

// NewPriceTable creates a price table, rejecting negative prices.
func NewPriceTable(id int, weekdayPrice, weekendPrice decimal.Decimal) (PriceTable, error) {
	if weekdayPrice.IsNegative() {
		return PriceTable{}, fmt.Errorf("price table %d: weekday price %s: %w", id, weekdayPrice, ErrInvalidPrice)
	}
	if weekendPrice.IsNegative() {
		return PriceTable{}, fmt.Errorf("price table %d: weekend price %s: %w", id, weekendPrice, ErrInvalidPrice)
	}
	return PriceTable{
		ID:           id,
		WeekdayPrice: weekdayPrice,
		WeekendPrice: weekendPrice,
	}, nil
}

// PriceFor returns the weekend price on Saturday and Sunday and the
// weekday price otherwise.
func (t PriceTable) PriceFor(day Weekday) decimal.Decimal {
	if day.IsWeekend() {
		return t.WeekendPrice
	}
	return t.WeekdayPrice
}
