package tui

import "errors"

// ErrMissingQuoteService is returned when the quote service is not provided.
var ErrMissingQuoteService = errors.New("tui: quote service is required")
