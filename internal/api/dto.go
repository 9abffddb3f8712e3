package api

import (
	"github.com/shopspring/decimal"

	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/app/engine"
	orderbookv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/orderbook/v1"
)

// PlaceOrderPayload is the request body for placing an order.
type PlaceOrderPayload struct {
	Symbol   string           `json:"symbol"`
	Side     orderbookv1.Side `json:"side"`
	Price    decimal.Decimal  `json:"price"`
	Quantity int64            `json:"quantity"`
	UserID   string           `json:"userID"`
}

// ToRequest maps the payload to the engine's order request.
func (p *PlaceOrderPayload) ToRequest() *orderbookv1.PlaceOrderRequest {
	return &orderbookv1.PlaceOrderRequest{
		Symbol:   p.Symbol,
		Side:     p.Side,
		Price:    p.Price,
		Quantity: p.Quantity,
		UserID:   p.UserID,
	}
}

// OrderResponse is the response body for a placed order.
type OrderResponse struct {
	OrderID        string              `json:"orderID"`
	Status         orderbookv1.Status  `json:"status"`
	Remaining      int64               `json:"remaining"`
	ExecutedTrades []orderbookv1.Trade `json:"executedTrades"`
}

// CancelResponse is the response body for a cancel request.
type CancelResponse struct {
	OrderID   string `json:"orderID"`
	Symbol    string `json:"symbol"`
	Cancelled bool   `json:"cancelled"`
}

// TradesResponse is the response body for a recent trades query.
type TradesResponse struct {
	Symbol string              `json:"symbol"`
	Trades []orderbookv1.Trade `json:"trades"`
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func orderResponseFromResult(result *engine.PlaceOrderResult) *OrderResponse {
	trades := result.ExecutedTrades
	if trades == nil {
		trades = []orderbookv1.Trade{}
	}
	return &OrderResponse{
		OrderID:        result.OrderID,
		Status:         result.Status,
		Remaining:      result.Remaining,
		ExecutedTrades: trades,
	}
}
