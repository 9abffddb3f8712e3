package tradepublisherv1

import (
	"context"

	orderbookv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/orderbook/v1"
	snapshotv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/snapshot/v1"
)

// Publisher defines the interface for notifying subscribers of
// executions and book updates. Delivery ordering and at-least-once
// semantics are the sink's responsibility, not the matching core's.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=tradepublisherv1_mock
type Publisher interface {
	// PublishTrade publishes a single execution event, keyed by symbol.
	PublishTrade(ctx context.Context, trade orderbookv1.Trade) error
	// PublishBookView publishes a book snapshot, keyed by symbol.
	PublishBookView(ctx context.Context, view *snapshotv1.BookView) error
	// Close flushes and closes the underlying transport.
	Close() error
}
