package orderbookv1

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queuedOrder(side Side, price float64, seq uint64) *Order {
	order := NewOrder("AAPL", side, decimal.NewFromFloat(price), 100, "user")
	order.Status = StatusOpen
	order.Timestamp = 1_000
	order.Sequence = seq
	return order
}

// Test 1: Bids yield the highest price first
func TestBidQueue_PriceOrdering(t *testing.T) {
	q := NewBidQueue()
	low := queuedOrder(SideBuy, 9.50, 1)
	high := queuedOrder(SideBuy, 10.00, 2)
	mid := queuedOrder(SideBuy, 9.75, 3)

	q.Push(low)
	q.Push(high)
	q.Push(mid)

	assert.Equal(t, 3, q.Len())
	assert.Same(t, high, q.Pop())
	assert.Same(t, mid, q.Pop())
	assert.Same(t, low, q.Pop())
	assert.Nil(t, q.Pop())
}

// Test 2: Asks yield the lowest price first
func TestAskQueue_PriceOrdering(t *testing.T) {
	q := NewAskQueue()
	low := queuedOrder(SideSell, 9.50, 1)
	high := queuedOrder(SideSell, 10.00, 2)
	mid := queuedOrder(SideSell, 9.75, 3)

	q.Push(high)
	q.Push(low)
	q.Push(mid)

	assert.Same(t, low, q.Pop())
	assert.Same(t, mid, q.Pop())
	assert.Same(t, high, q.Pop())
}

// Test 3: Equal prices break ties by arrival
func TestQueue_FIFOAtEqualPrice(t *testing.T) {
	q := NewBidQueue()
	first := queuedOrder(SideBuy, 10.00, 1)
	second := queuedOrder(SideBuy, 10.00, 2)
	third := queuedOrder(SideBuy, 10.00, 3)

	q.Push(second)
	q.Push(third)
	q.Push(first)

	assert.Same(t, first, q.Pop())
	assert.Same(t, second, q.Pop())
	assert.Same(t, third, q.Pop())
}

// Test 4: Peek does not remove the head
func TestQueue_Peek(t *testing.T) {
	q := NewAskQueue()
	assert.Nil(t, q.Peek())

	order := queuedOrder(SideSell, 10.00, 1)
	q.Push(order)

	assert.Same(t, order, q.Peek())
	assert.Equal(t, 1, q.Len())
	assert.Same(t, order, q.Pop())
	assert.Equal(t, 0, q.Len())
}

// Test 5: Cancelled entries keep their position until popped
func TestQueue_StaleEntriesRemain(t *testing.T) {
	q := NewBidQueue()
	stale := queuedOrder(SideBuy, 10.00, 1)
	live := queuedOrder(SideBuy, 9.50, 2)
	q.Push(stale)
	q.Push(live)

	stale.Status = StatusCancelled
	stale.Remaining = 0

	// The stale entry still surfaces first; consumers must check
	// IsActive and discard it.
	head := q.Peek()
	require.Same(t, stale, head)
	assert.False(t, head.IsActive())

	q.Pop()
	assert.Same(t, live, q.Peek())
	assert.True(t, live.IsActive())
}

// Test 6: Position never depends on Remaining
func TestQueue_PartialFillKeepsPriority(t *testing.T) {
	q := NewBidQueue()
	first := queuedOrder(SideBuy, 10.00, 1)
	second := queuedOrder(SideBuy, 10.00, 2)
	q.Push(first)
	q.Push(second)

	first.Remaining = 1
	first.Status = StatusPartiallyFilled

	assert.Same(t, first, q.Peek())
}
