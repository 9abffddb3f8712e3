package trade

import (
	"time"

	"github.com/shopspring/decimal"

	orderbookv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/orderbook/v1"
)

// Trade is the persisted representation of an execution record.
type Trade struct {
	ID          string
	Symbol      string
	BuyOrderID  string
	SellOrderID string
	Price       decimal.Decimal
	Quantity    int64
	Timestamp   time.Time
	BuyerID     string
	SellerID    string
}

// FromDomain maps an execution record to its persisted representation.
func FromDomain(t orderbookv1.Trade) *Trade {
	return &Trade{
		ID:          t.ID,
		Symbol:      t.Symbol,
		BuyOrderID:  t.BuyOrderID,
		SellOrderID: t.SellOrderID,
		Price:       t.Price,
		Quantity:    t.Quantity,
		Timestamp:   t.Timestamp,
		BuyerID:     t.BuyerID,
		SellerID:    t.SellerID,
	}
}

// ToDomain maps a persisted trade back to the domain record.
func (t *Trade) ToDomain() orderbookv1.Trade {
	return orderbookv1.Trade{
		ID:          t.ID,
		Symbol:      t.Symbol,
		BuyOrderID:  t.BuyOrderID,
		SellOrderID: t.SellOrderID,
		Price:       t.Price,
		Quantity:    t.Quantity,
		Timestamp:   t.Timestamp,
		BuyerID:     t.BuyerID,
		SellerID:    t.SellerID,
	}
}
