// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/bestpet/internal/core/domain"
)

// QuoteCompleted carries the result of a pricing request back to the model.
type QuoteCompleted struct {
	// Line is the form content the quote was computed for.
	Line    string
	Request domain.QuoteRequest
	Best    *domain.BestOption
	Ranking []domain.ShopQuote
	Err     error
}

// FocusChanged requests focus on a form field.
type FocusChanged struct {
	Field int
}
