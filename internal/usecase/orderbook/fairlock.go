package orderbook

import "sync"

// fairMutex is a mutual-exclusion lock granted in strict FIFO order of
// Lock calls. The book's price-time tie-break is derived from arrival
// order, so an unfair lock could let a later submission overtake one
// already waiting and receive an earlier effective priority.
// sync.Mutex only guarantees eventual fairness, not FIFO hand-off.
type fairMutex struct {
	mu      sync.Mutex
	locked  bool
	waiters []chan struct{}
}

// Lock acquires the mutex, blocking behind all earlier waiters.
func (m *fairMutex) Lock() {
	m.mu.Lock()
	if !m.locked {
		m.locked = true
		m.mu.Unlock()
		return
	}
	ch := make(chan struct{})
	m.waiters = append(m.waiters, ch)
	m.mu.Unlock()
	<-ch
}

// Unlock releases the mutex, handing it directly to the oldest waiter
// if one exists. The lock stays held across the hand-off so no later
// caller can slip in between.
func (m *fairMutex) Unlock() {
	m.mu.Lock()
	if len(m.waiters) == 0 {
		m.locked = false
		m.mu.Unlock()
		return
	}
	ch := m.waiters[0]
	m.waiters = m.waiters[1:]
	m.mu.Unlock()
	close(ch)
}
