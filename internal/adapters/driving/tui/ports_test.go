package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPorts(t *testing.T) {
	quote := &MockQuoteService{}

	ports := NewPorts(quote)

	assert.Equal(t, quote, ports.Quote)
	assert.NoError(t, ports.Validate())
}

func TestPorts_ValidateMissingQuote(t *testing.T) {
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingQuoteService)
}

func TestPorts_ValidateNil(t *testing.T) {
	var ports *Ports

	assert.ErrorIs(t, ports.Validate(), ErrMissingQuoteService)
}
