// Package tui provides an interactive quote form in the terminal.
// It is a driving adapter over the same ports as the CLI.
package tui

import (
	"github.com/custodia-labs/bestpet/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Quote prices requests.
	Quote driving.QuoteService
}

// NewPorts creates a new Ports aggregate.
func NewPorts(quote driving.QuoteService) *Ports {
	return &Ports{Quote: quote}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Quote == nil {
		return ErrMissingQuoteService
	}
	return nil
}
