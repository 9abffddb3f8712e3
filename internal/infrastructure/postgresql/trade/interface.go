package trade

import "context"

// Repository defines the interface for durable trade storage.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=trade_mock
type Repository interface {
	// Store stores a single trade.
	Store(ctx context.Context, trade *Trade) error
	// StoreBatch stores a batch of trades.
	StoreBatch(ctx context.Context, trades []*Trade) error
	// ListBySymbol lists the most recent trades for a symbol, newest
	// first.
	ListBySymbol(ctx context.Context, symbol string, limit int) ([]*Trade, error)
}
