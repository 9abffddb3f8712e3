package tradepublisherv1

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderbookv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/orderbook/v1"
)

// Test 1: Wire event round trip
func TestTradeEvent_RoundTrip(t *testing.T) {
	trade := orderbookv1.Trade{
		ID:          "trade1",
		Symbol:      "AAPL",
		BuyOrderID:  "buy1",
		SellOrderID: "sell1",
		Price:       decimal.NewFromFloat(9.50),
		Quantity:    60,
		Timestamp:   time.Now().UTC(),
		BuyerID:     "alice",
		SellerID:    "bob",
	}

	event := CreateFromTrade(trade)
	payload := ToBytes(event)
	require.NotNil(t, payload)

	decoded := FromBytes(payload)
	require.NotNil(t, decoded)
	assert.Equal(t, event.TradeID, decoded.TradeID)
	assert.Equal(t, event.Symbol, decoded.Symbol)
	assert.True(t, event.Price.Equal(decoded.Price))
	assert.Equal(t, event.Quantity, decoded.Quantity)
}

// Test 2: Corrupt payloads decode to nil
func TestTradeEvent_FromBytes_Corrupt(t *testing.T) {
	assert.Nil(t, FromBytes([]byte("{not json")))
}
