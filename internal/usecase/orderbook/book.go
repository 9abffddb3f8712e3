package orderbook

import (
	"sort"
	"time"

	orderbookv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/orderbook/v1"
	snapshotv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/snapshot/v1"
)

// Book is the matching core for a single symbol. It keeps two priority
// queues (bids and asks) plus an index of active orders for O(1)
// cancellation, and runs price-time priority matching under a single
// FIFO-fair lock covering every public operation.
//
// The queues share the index's *Order records; they never hold copies.
// Cancellation does not touch the queues — a cancelled or filled entry
// is discarded lazily the next time it surfaces at the head.
type Book struct {
	symbol string

	mu     fairMutex
	bids   *orderbookv1.Queue
	asks   *orderbookv1.Queue
	active map[string]*orderbookv1.Order
	seq    uint64
}

// NewBook creates an empty book for the given symbol.
func NewBook(symbol string) *Book {
	return &Book{
		symbol: symbol,
		bids:   orderbookv1.NewBidQueue(),
		asks:   orderbookv1.NewAskQueue(),
		active: make(map[string]*orderbookv1.Order),
	}
}

// Symbol returns the symbol this book matches.
func (b *Book) Symbol() string {
	return b.symbol
}

// Submit accepts a new order, inserts it into the book and runs the
// matching loop to settlement. It returns the trades executed by this
// submission in execution order; the slice is empty when nothing
// crossed. The order must be well-formed (positive price and quantity,
// symbol matching this book) — validation is the request layer's job.
func (b *Book) Submit(order *orderbookv1.Order) []orderbookv1.Trade {
	b.mu.Lock()
	defer b.mu.Unlock()

	order.Sequence = b.nextSequence()
	order.Status = orderbookv1.StatusOpen
	b.active[order.ID] = order

	if order.IsBuy() {
		b.bids.Push(order)
	} else {
		b.asks.Push(order)
	}

	return b.match()
}

// match runs the price-time priority matching loop. The caller must
// hold the book lock.
func (b *Book) match() []orderbookv1.Trade {
	var trades []orderbookv1.Trade

	for b.bids.Len() > 0 && b.asks.Len() > 0 {
		bestBid := b.bids.Peek()
		if !bestBid.IsActive() {
			// Stale entry left behind by a cancel or fill.
			b.bids.Pop()
			continue
		}
		bestAsk := b.asks.Peek()
		if !bestAsk.IsActive() {
			b.asks.Pop()
			continue
		}

		if bestBid.Price.LessThan(bestAsk.Price) {
			// No crossing, the book is settled.
			break
		}

		quantity := min(bestBid.Remaining, bestAsk.Remaining)
		trade := orderbookv1.NewTrade(bestBid, bestAsk, quantity)

		bestBid.Remaining -= quantity
		bestAsk.Remaining -= quantity
		b.settle(bestBid, b.bids)
		b.settle(bestAsk, b.asks)

		trades = append(trades, trade)
	}

	return trades
}

// settle updates an order's status after a fill and removes it from
// its queue and the active index once fully executed.
func (b *Book) settle(order *orderbookv1.Order, queue *orderbookv1.Queue) {
	if order.Remaining > 0 {
		order.Status = orderbookv1.StatusPartiallyFilled
		return
	}
	order.Status = orderbookv1.StatusFilled
	queue.Pop()
	delete(b.active, order.ID)
}

// Cancel cancels an active order by ID. It returns false when the
// order is unknown, already filled or already cancelled — the three
// cases are indistinguishable to the caller by design. The queue entry
// is left in place and discarded lazily, keeping cancellation O(1).
func (b *Book) Cancel(orderID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	order, ok := b.active[orderID]
	if !ok {
		return false
	}

	delete(b.active, orderID)
	order.Status = orderbookv1.StatusCancelled
	order.Remaining = 0
	return true
}

// Snapshot returns a point-in-time view of all active orders on both
// sides, sorted with the same comparators the matching loop uses.
// Every order is copied — receivers never observe later mutations.
func (b *Book) Snapshot() *snapshotv1.BookView {
	b.mu.Lock()
	defer b.mu.Unlock()

	var bids, asks []*orderbookv1.Order
	for _, order := range b.active {
		if !order.IsActive() {
			continue
		}
		if order.IsBuy() {
			bids = append(bids, order)
		} else {
			asks = append(asks, order)
		}
	}

	sort.Slice(bids, func(i, j int) bool { return orderbookv1.BidLess(bids[i], bids[j]) })
	sort.Slice(asks, func(i, j int) bool { return orderbookv1.AskLess(asks[i], asks[j]) })

	view := &snapshotv1.BookView{
		Symbol:    b.symbol,
		Bids:      make([]snapshotv1.BookOrder, 0, len(bids)),
		Asks:      make([]snapshotv1.BookOrder, 0, len(asks)),
		Timestamp: time.Now(),
	}
	for _, order := range bids {
		view.Bids = append(view.Bids, snapshotv1.FromOrder(order))
	}
	for _, order := range asks {
		view.Asks = append(view.Asks, snapshotv1.FromOrder(order))
	}
	return view
}

// ActiveOrders returns the number of active orders in the book.
func (b *Book) ActiveOrders() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.active)
}

// nextSequence returns a strictly increasing arrival tie-breaker.
// Assigned under the fair lock, so it agrees with lock-grant order.
func (b *Book) nextSequence() uint64 {
	b.seq++
	return b.seq
}
