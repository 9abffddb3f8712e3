package orderbookv1

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Trade represents a single immutable execution between a buy and a
// sell order. Trades are created exactly once per match event and
// handed to external collaborators; the book keeps no trade history.
type Trade struct {
	ID          string          `json:"id"`
	Symbol      string          `json:"symbol"`
	BuyOrderID  string          `json:"buyOrderID"`
	SellOrderID string          `json:"sellOrderID"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	Timestamp   time.Time       `json:"timestamp"`
	BuyerID     string          `json:"buyerID"`
	SellerID    string          `json:"sellerID"`
}

// NewTrade creates the execution record for a match between buy and
// sell. The execution price is always the sell order's limit price,
// regardless of which side was resting when the match occurred.
func NewTrade(buy, sell *Order, quantity int64) Trade {
	return Trade{
		ID:          ulid.Make().String(),
		Symbol:      buy.Symbol,
		BuyOrderID:  buy.ID,
		SellOrderID: sell.ID,
		Price:       sell.Price,
		Quantity:    quantity,
		Timestamp:   time.Now(),
		BuyerID:     buy.UserID,
		SellerID:    sell.UserID,
	}
}
