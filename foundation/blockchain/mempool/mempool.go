// Package mempool maintains the pool of transactions waiting to be sealed
// into the next block.
package mempool

import (
	"sync"

	"github.com/minichain/minichain/foundation/blockchain/ledger"
)

// Mempool represents an ordered cache of pending transactions. Order is
// preserved: transactions enter the next block in the order they were
// submitted.
type Mempool struct {
	mu   sync.RWMutex
	pool []ledger.Tx
}

// New constructs a new mempool for pending transactions.
func New() *Mempool {
	return &Mempool{}
}

// Count returns the current number of transactions in the pool.
func (mp *Mempool) Count() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	return len(mp.pool)
}

// Append adds a transaction to the end of the pool. There is no
// deduplication; the same transaction submitted twice is pooled twice.
func (mp *Mempool) Append(tx ledger.Tx) int {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = append(mp.pool, tx)

	return len(mp.pool)
}

// Copy returns a copy of the pending transactions in submission order.
func (mp *Mempool) Copy() []ledger.Tx {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	pool := make([]ledger.Tx, len(mp.pool))
	copy(pool, mp.pool)

	return pool
}

// Drain returns the pending transactions in submission order and empties
// the pool. This is called exactly once per sealed block.
func (mp *Mempool) Drain() []ledger.Tx {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	pool := make([]ledger.Tx, len(mp.pool))
	copy(pool, mp.pool)
	mp.pool = nil

	return pool
}
