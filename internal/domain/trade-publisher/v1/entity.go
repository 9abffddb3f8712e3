package tradepublisherv1

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	orderbookv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/orderbook/v1"
)

// TradeEvent is the wire payload for a single execution.
type TradeEvent struct {
	TradeID     string          `json:"tradeID"`
	Symbol      string          `json:"symbol"`
	BuyOrderID  string          `json:"buyOrderID"`
	SellOrderID string          `json:"sellOrderID"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	BuyerID     string          `json:"buyerID"`
	SellerID    string          `json:"sellerID"`
	Timestamp   time.Time       `json:"timestamp"`
}

// CreateFromTrade creates the wire event for an execution record.
func CreateFromTrade(trade orderbookv1.Trade) *TradeEvent {
	return &TradeEvent{
		TradeID:     trade.ID,
		Symbol:      trade.Symbol,
		BuyOrderID:  trade.BuyOrderID,
		SellOrderID: trade.SellOrderID,
		Price:       trade.Price,
		Quantity:    trade.Quantity,
		BuyerID:     trade.BuyerID,
		SellerID:    trade.SellerID,
		Timestamp:   trade.Timestamp,
	}
}

// ToBytes converts the trade event to a byte array.
func ToBytes(event *TradeEvent) []byte {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil
	}

	return payload
}

// FromBytes converts a byte array to a trade event.
func FromBytes(data []byte) *TradeEvent {
	var event TradeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil
	}
	return &event
}
