package engine

import (
	"context"
	"sync"
	"time"

	orderbookv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/orderbook/v1"
	snapshotv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/snapshot/v1"
	tradepublisherv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/trade-publisher/v1"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/infrastructure/postgresql/trade"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/usecase/registry"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/errors"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/logger"
)

// Engine ties the matching core to its boundary collaborators: durable
// trade storage, event publishing and the book view cache. Matching
// itself is synchronous; persistence and publishing happen on background
// goroutines so a slow sink never stalls the books.
type Engine struct {
	registry  *registry.Registry
	trades    trade.Repository
	publisher tradepublisherv1.Publisher
	snapshots snapshotv1.Store
	logger    logger.Interface

	snapshotInterval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	tradesMutex sync.RWMutex
	totalTrades int64
}

// PlaceOrderResult is what a submission reports back to the caller once
// the matching loop has settled.
type PlaceOrderResult struct {
	OrderID        string
	Status         orderbookv1.Status
	Remaining      int64
	ExecutedTrades []orderbookv1.Trade
}

// NewEngine creates a new engine with default options.
func NewEngine(
	reg *registry.Registry,
	trades trade.Repository,
	publisher tradepublisherv1.Publisher,
	snapshots snapshotv1.Store,
	log logger.Interface,
) *Engine {
	return NewEngineWithOptions(reg, trades, publisher, snapshots, log, DefaultOptions())
}

// NewEngineWithOptions creates a new engine with custom options.
func NewEngineWithOptions(
	reg *registry.Registry,
	trades trade.Repository,
	publisher tradepublisherv1.Publisher,
	snapshots snapshotv1.Store,
	log logger.Interface,
	options *Options,
) *Engine {
	return &Engine{
		registry:  reg,
		trades:    trades,
		publisher: publisher,
		snapshots: snapshots,
		logger:    log,

		snapshotInterval: options.SnapshotInterval,
	}
}

// Start launches the background snapshot job. It must be called before
// orders are placed so asynchronous work is tracked for shutdown.
func (e *Engine) Start(ctx context.Context) error {
	e.ctx, e.cancel = context.WithCancel(ctx)

	e.wg.Add(1)
	go e.runSnapshotJob()

	e.logger.Info("Engine started", logger.Field{
		Key:   "snapshotInterval",
		Value: e.snapshotInterval.String(),
	})
	return nil
}

// Stop cancels background work and waits for in-flight persistence and
// publishing to drain, up to the deadline carried by ctx.
func (e *Engine) Stop(ctx context.Context) error {
	if e.cancel != nil {
		e.cancel()
	}

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		e.logger.Info("Engine stopped gracefully")
		return nil
	case <-ctx.Done():
		e.logger.Warn("Engine stop timeout exceeded")
		return ctx.Err()
	}
}

// PlaceOrder validates the request, runs it through the matching core
// and kicks off persistence and publishing for any executions. The
// returned result reflects the order's state after the matching loop
// settled.
func (e *Engine) PlaceOrder(ctx context.Context, req *orderbookv1.PlaceOrderRequest) (*PlaceOrderResult, error) {
	if err := req.Validate(); err != nil {
		return nil, errors.NewTracer("invalid order request").Wrap(err)
	}

	order := orderbookv1.NewOrder(req.Symbol, req.Side, req.Price, req.Quantity, req.UserID)
	trades := e.registry.Submit(order)

	e.logger.InfoContext(ctx, "Order placed",
		logger.Field{Key: "orderID", Value: order.ID},
		logger.Field{Key: "symbol", Value: order.Symbol},
		logger.Field{Key: "side", Value: string(order.Side)},
		logger.Field{Key: "tradeCount", Value: len(trades)},
	)

	if len(trades) > 0 {
		e.recordTrades(len(trades))

		e.wg.Add(2)
		go e.processTrades(trades)
		go e.broadcastBookView(order.Symbol)
	}

	return &PlaceOrderResult{
		OrderID:        order.ID,
		Status:         order.Status,
		Remaining:      order.Remaining,
		ExecutedTrades: trades,
	}, nil
}

// CancelOrder cancels an active order. It returns false when the symbol
// has no book or the order is unknown, filled or already cancelled.
func (e *Engine) CancelOrder(ctx context.Context, symbol, orderID string) bool {
	cancelled := e.registry.Cancel(symbol, orderID)

	e.logger.InfoContext(ctx, "Order cancel requested",
		logger.Field{Key: "orderID", Value: orderID},
		logger.Field{Key: "symbol", Value: symbol},
		logger.Field{Key: "cancelled", Value: cancelled},
	)

	if cancelled {
		e.wg.Add(1)
		go e.broadcastBookView(symbol)
	}
	return cancelled
}

// BookSnapshot returns a live point-in-time view of the symbol's book,
// or false when the symbol has no book.
func (e *Engine) BookSnapshot(_ context.Context, symbol string) (*snapshotv1.BookView, bool) {
	return e.registry.Snapshot(symbol)
}

// RecentTrades lists the most recent executions for a symbol, newest
// first.
func (e *Engine) RecentTrades(ctx context.Context, symbol string, limit int) ([]orderbookv1.Trade, error) {
	rows, err := e.trades.ListBySymbol(ctx, symbol, limit)
	if err != nil {
		return nil, err
	}

	trades := make([]orderbookv1.Trade, 0, len(rows))
	for _, row := range rows {
		trades = append(trades, row.ToDomain())
	}
	return trades, nil
}

// TotalTrades returns the number of executions since the engine started.
func (e *Engine) TotalTrades() int64 {
	e.tradesMutex.RLock()
	defer e.tradesMutex.RUnlock()
	return e.totalTrades
}

// processTrades persists a batch of executions and publishes each one.
// Failures are logged and dropped: the matching core already settled,
// so sink errors must never surface to the submitting client.
func (e *Engine) processTrades(trades []orderbookv1.Trade) {
	defer e.wg.Done()

	rows := make([]*trade.Trade, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, trade.FromDomain(t))
	}

	if err := e.trades.StoreBatch(e.ctx, rows); err != nil {
		e.logger.ErrorContext(e.ctx, err, logger.Field{
			Key:   "action",
			Value: "store_trades",
		}, logger.Field{
			Key:   "tradeCount",
			Value: len(trades),
		})
	}

	for _, t := range trades {
		if err := e.publisher.PublishTrade(e.ctx, t); err != nil {
			e.logger.ErrorContext(e.ctx, err, logger.Field{
				Key:   "action",
				Value: "publish_trade",
			}, logger.Field{
				Key:   "tradeID",
				Value: t.ID,
			})
		}
	}
}

// broadcastBookView publishes the symbol's current book view after a
// state change.
func (e *Engine) broadcastBookView(symbol string) {
	defer e.wg.Done()

	view, ok := e.registry.Snapshot(symbol)
	if !ok {
		return
	}

	if err := e.publisher.PublishBookView(e.ctx, view); err != nil {
		e.logger.ErrorContext(e.ctx, err, logger.Field{
			Key:   "action",
			Value: "publish_book_view",
		}, logger.Field{
			Key:   "symbol",
			Value: symbol,
		})
	}
}

// runSnapshotJob periodically refreshes the book view cache for every
// known symbol.
func (e *Engine) runSnapshotJob() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.snapshotInterval)
	defer ticker.Stop()

	e.logger.Info("Starting snapshot job")

	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("Snapshot job shutting down")
			return
		case <-ticker.C:
			e.storeSnapshots()
		}
	}
}

// storeSnapshots writes the current view of every book to the cache.
func (e *Engine) storeSnapshots() {
	for _, symbol := range e.registry.Symbols() {
		view, ok := e.registry.Snapshot(symbol)
		if !ok {
			continue
		}
		if err := e.snapshots.Store(e.ctx, view); err != nil {
			e.logger.ErrorContext(e.ctx, err, logger.Field{
				Key:   "action",
				Value: "store_snapshot",
			}, logger.Field{
				Key:   "symbol",
				Value: symbol,
			})
		}
	}
}

func (e *Engine) recordTrades(n int) {
	e.tradesMutex.Lock()
	e.totalTrades += int64(n)
	e.tradesMutex.Unlock()
}
