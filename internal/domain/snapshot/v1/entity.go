package snapshotv1

import (
	"time"

	"github.com/shopspring/decimal"

	orderbookv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/orderbook/v1"
)

// BookOrder is the read-only projection of a single active order as it
// appears in a book view.
type BookOrder struct {
	OrderID   string             `json:"orderID"`
	UserID    string             `json:"userID"`
	Side      orderbookv1.Side   `json:"side"`
	Price     decimal.Decimal    `json:"price"`
	Quantity  int64              `json:"quantity"`
	Remaining int64              `json:"remaining"`
	Status    orderbookv1.Status `json:"status"`
	Timestamp int64              `json:"timestamp"`
}

// BookView is a point-in-time view of all active orders on both sides
// of one symbol's book, sorted by each side's matching priority. It is
// derived data; receivers must never treat it as live book state.
type BookView struct {
	Symbol    string      `json:"symbol"`
	Bids      []BookOrder `json:"bids"`
	Asks      []BookOrder `json:"asks"`
	Timestamp time.Time   `json:"timestamp"`
}

// FromOrder projects an order into its view representation, copying
// every field so callers never hold a reference into the book.
func FromOrder(o *orderbookv1.Order) BookOrder {
	return BookOrder{
		OrderID:   o.ID,
		UserID:    o.UserID,
		Side:      o.Side,
		Price:     o.Price,
		Quantity:  o.Quantity,
		Remaining: o.Remaining,
		Status:    o.Status,
		Timestamp: o.Timestamp,
	}
}
