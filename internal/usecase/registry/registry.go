package registry

import (
	"sync"

	orderbookv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/orderbook/v1"
	snapshotv1 "github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/domain/snapshot/v1"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/internal/usecase/orderbook"
	"github.com/parthibCsaha/Real-Time-Stock-Matching-Engine/pkg/logger"
)

// Registry maps each symbol to exactly one Book, created lazily on
// first submission. Books for different symbols never share a lock, so
// operations on unrelated symbols proceed fully in parallel; the
// registry's own lock is held only for map access, never across a book
// operation.
type Registry struct {
	mu     sync.RWMutex
	books  map[string]*orderbook.Book
	logger logger.Interface
}

// NewRegistry creates an empty registry.
func NewRegistry(log logger.Interface) *Registry {
	return &Registry{
		books:  make(map[string]*orderbook.Book),
		logger: log,
	}
}

// Resolve returns the book for a symbol, creating it if none exists.
// Concurrent first-time resolutions of the same symbol produce exactly
// one book.
func (r *Registry) Resolve(symbol string) *orderbook.Book {
	r.mu.RLock()
	book, ok := r.books[symbol]
	r.mu.RUnlock()
	if ok {
		return book
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Re-check: another caller may have created the book while we were
	// waiting for the write lock.
	if book, ok := r.books[symbol]; ok {
		return book
	}
	book = orderbook.NewBook(symbol)
	r.books[symbol] = book
	r.logger.Info("Order book created", logger.Field{
		Key:   "symbol",
		Value: symbol,
	})
	return book
}

// Submit routes an order to its symbol's book and returns the trades
// it executed.
func (r *Registry) Submit(order *orderbookv1.Order) []orderbookv1.Trade {
	return r.Resolve(order.Symbol).Submit(order)
}

// Cancel cancels an order on the given symbol's book. It returns false
// when the symbol has no book or the order is not active; no book is
// created as a side effect.
func (r *Registry) Cancel(symbol, orderID string) bool {
	book, ok := r.lookup(symbol)
	if !ok {
		return false
	}
	return book.Cancel(orderID)
}

// Snapshot returns the current view of the given symbol's book, or
// false when the symbol has no book. No book is created as a side
// effect.
func (r *Registry) Snapshot(symbol string) (*snapshotv1.BookView, bool) {
	book, ok := r.lookup(symbol)
	if !ok {
		return nil, false
	}
	return book.Snapshot(), true
}

// Symbols returns the symbols that currently have a book.
func (r *Registry) Symbols() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	symbols := make([]string, 0, len(r.books))
	for symbol := range r.books {
		symbols = append(symbols, symbol)
	}
	return symbols
}

func (r *Registry) lookup(symbol string) (*orderbook.Book, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	book, ok := r.books[symbol]
	return book, ok
}
