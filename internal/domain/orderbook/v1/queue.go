package orderbookv1

import "container/heap"

// BidLess orders bids by price descending, then arrival ascending.
// Both comparators are pure functions over fields captured at
// insertion; position in a queue never depends on Remaining or Status.
func BidLess(a, b *Order) bool {
	if cmp := a.Price.Cmp(b.Price); cmp != 0 {
		return cmp > 0
	}
	return a.ArrivesBefore(b)
}

// AskLess orders asks by price ascending, then arrival ascending.
func AskLess(a, b *Order) bool {
	if cmp := a.Price.Cmp(b.Price); cmp != 0 {
		return cmp < 0
	}
	return a.ArrivesBefore(b)
}

// Queue is a priority queue of orders for one side of a book. It may
// contain stale entries: cancellation and fills do not remove an order
// from the queue, they only flip its status, and the stale entry is
// discarded the next time it surfaces at the head (lazy deletion).
type Queue struct {
	h orderHeap
}

// NewBidQueue creates a queue that yields the highest-priced, earliest
// arrived bid first.
func NewBidQueue() *Queue {
	return &Queue{h: orderHeap{less: BidLess}}
}

// NewAskQueue creates a queue that yields the lowest-priced, earliest
// arrived ask first.
func NewAskQueue() *Queue {
	return &Queue{h: orderHeap{less: AskLess}}
}

// Push adds an order to the queue.
func (q *Queue) Push(o *Order) {
	heap.Push(&q.h, o)
}

// Peek returns the head of the queue without removing it, or nil if
// the queue is empty. The head may be a stale entry.
func (q *Queue) Peek() *Order {
	if len(q.h.orders) == 0 {
		return nil
	}
	return q.h.orders[0]
}

// Pop removes and returns the head of the queue, or nil if empty.
func (q *Queue) Pop() *Order {
	if len(q.h.orders) == 0 {
		return nil
	}
	return heap.Pop(&q.h).(*Order)
}

// Len returns the number of entries in the queue, stale ones included.
func (q *Queue) Len() int {
	return len(q.h.orders)
}

// orderHeap adapts a comparator-ordered order slice to heap.Interface.
type orderHeap struct {
	orders []*Order
	less   func(a, b *Order) bool
}

func (h orderHeap) Len() int           { return len(h.orders) }
func (h orderHeap) Less(i, j int) bool { return h.less(h.orders[i], h.orders[j]) }
func (h orderHeap) Swap(i, j int)      { h.orders[i], h.orders[j] = h.orders[j], h.orders[i] }

func (h *orderHeap) Push(x any) {
	h.orders = append(h.orders, x.(*Order))
}

func (h *orderHeap) Pop() any {
	old := h.orders
	n := len(old)
	o := old[n-1]
	old[n-1] = nil
	h.orders = old[:n-1]
	return o
}
