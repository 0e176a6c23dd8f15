package messages

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/bestpet/internal/core/domain"
)

func TestQuoteCompleted_Success(t *testing.T) {
	shop := &domain.Shop{ID: 1, Name: "Vai Rex"}
	msg := QuoteCompleted{Best: &domain.BestOption{Shop: shop, Price: decimal.NewFromInt(295)}}

	assert.NoError(t, msg.Err)
	assert.Equal(t, "Vai Rex", msg.Best.Shop.Name)
	assert.Empty(t, msg.Ranking)
}

func TestQuoteCompleted_Error(t *testing.T) {
	msg := QuoteCompleted{Line: "31/02/2018 3 5", Err: domain.ErrNoShops}

	assert.Nil(t, msg.Best)
	assert.Equal(t, "31/02/2018 3 5", msg.Line)
	assert.True(t, errors.Is(msg.Err, domain.ErrNoShops))
}

func TestFocusChanged(t *testing.T) {
	msg := FocusChanged{Field: 2}

	assert.Equal(t, 2, msg.Field)
}
