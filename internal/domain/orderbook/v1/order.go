package orderbookv1

import (
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptySymbol     = errors.New("symbol cannot be empty")
	ErrInvalidSide     = errors.New("side must be BUY or SELL")
	ErrInvalidPrice    = errors.New("price must be positive")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Side represents the side of an order.
type Side string

const (
	// SideBuy represents a buy (bid) order.
	SideBuy Side = "BUY"
	// SideSell represents a sell (ask) order.
	SideSell Side = "SELL"
)

// Valid checks that the side is one of the two known values.
func (s Side) Valid() bool {
	return s == SideBuy || s == SideSell
}

// Status represents the lifecycle status of an order.
type Status string

const (
	// StatusPending means the order has been created but not yet accepted by a book.
	StatusPending Status = "PENDING"
	// StatusOpen means the order is resting in the book, waiting to be matched.
	StatusOpen Status = "OPEN"
	// StatusPartiallyFilled means the order has been partially executed.
	StatusPartiallyFilled Status = "PARTIALLY_FILLED"
	// StatusFilled means the order is fully executed. Terminal.
	StatusFilled Status = "FILLED"
	// StatusCancelled means the order was cancelled before being fully executed. Terminal.
	StatusCancelled Status = "CANCELLED"
)

// Order represents a single order in the order book.
//
// While an order rests in a book, the book exclusively owns the mutable
// fields (Remaining, Status, Sequence); everything else is set at
// creation and never changes.
type Order struct {
	ID        string          `json:"id"`
	Symbol    string          `json:"symbol"`
	Side      Side            `json:"side"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	Remaining int64           `json:"remaining"`
	Timestamp int64           `json:"timestamp"` // arrival time, UnixNano
	Sequence  uint64          `json:"sequence"`  // book-assigned arrival tie-breaker
	Status    Status          `json:"status"`
	UserID    string          `json:"userID"`
}

// NewOrder creates a new order with a generated ULID, arrival timestamp
// and status PENDING. Remaining starts equal to Quantity.
func NewOrder(symbol string, side Side, price decimal.Decimal, quantity int64, userID string) *Order {
	return &Order{
		ID:        ulid.Make().String(),
		Symbol:    symbol,
		Side:      side,
		Price:     price,
		Quantity:  quantity,
		Remaining: quantity,
		Timestamp: time.Now().UnixNano(),
		Status:    StatusPending,
		UserID:    userID,
	}
}

// IsBuy checks if the order is a buy (bid) order.
func (o *Order) IsBuy() bool {
	return o.Side == SideBuy
}

// IsSell checks if the order is a sell (ask) order.
func (o *Order) IsSell() bool {
	return o.Side == SideSell
}

// IsActive reports whether the order may still participate in matching.
// Priority queues keep stale entries after cancellation or fill, so
// every consumer must check this before trusting a queue entry.
func (o *Order) IsActive() bool {
	return o.Remaining > 0 && (o.Status == StatusOpen || o.Status == StatusPartiallyFilled)
}

// IsFilled checks if the order is fully executed.
func (o *Order) IsFilled() bool {
	return o.Status == StatusFilled
}

// ArrivesBefore reports whether o arrived strictly before other.
// Timestamps alone may collide on coarse clocks, so the book-assigned
// sequence number breaks ties deterministically.
func (o *Order) ArrivesBefore(other *Order) bool {
	if o.Timestamp == other.Timestamp {
		return o.Sequence < other.Sequence
	}
	return o.Timestamp < other.Timestamp
}

// PlaceOrderRequest represents a request to place an order, as produced
// by the request layer before an Order is constructed.
type PlaceOrderRequest struct {
	Symbol   string          `json:"symbol"`
	Side     Side            `json:"side"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
	UserID   string          `json:"userID"`
}

// Validate rejects malformed requests before they reach a book. The
// book itself treats well-formed input as a contract precondition.
func (r *PlaceOrderRequest) Validate() error {
	if r.Symbol == "" {
		return ErrEmptySymbol
	}
	if !r.Side.Valid() {
		return ErrInvalidSide
	}
	if !r.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if r.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}
