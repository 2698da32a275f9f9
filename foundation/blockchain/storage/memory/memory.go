// Package memory implements an append-only store of blocks held in memory
// using a slice. Process restart discards all state.
package memory

import (
	"errors"
	"sync"

	"github.com/minichain/minichain/foundation/blockchain/ledger"
)

// ErrOutOfOrder is returned when an appended block does not carry the
// next index in the chain.
var ErrOutOfOrder = errors.New("block is out of order")

// Memory represents the chain storage. Blocks only ever enter through
// Append and only ever leave through a wholesale Replace.
type Memory struct {
	mu     sync.RWMutex
	blocks []ledger.Block
}

// New constructs the in-memory chain store seeded with the genesis block.
func New(genesis ledger.Block) *Memory {
	return &Memory{
		blocks: []ledger.Block{genesis},
	}
}

// Append adds the block to the end of the chain. The block's index must
// be contiguous with the current height.
func (m *Memory) Append(block ledger.Block) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if block.Index != uint64(len(m.blocks))+1 {
		return ErrOutOfOrder
	}

	m.blocks = append(m.blocks, block)
	return nil
}

// Latest returns the last block in the chain.
func (m *Memory) Latest() ledger.Block {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.blocks[len(m.blocks)-1]
}

// Height returns the number of blocks in the chain.
func (m *Memory) Height() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.blocks)
}

// All returns a copy of the full chain in order.
func (m *Memory) All() []ledger.Block {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blocks := make([]ledger.Block, len(m.blocks))
	copy(blocks, m.blocks)

	return blocks
}

// Replace substitutes the entire chain with the candidate. This is the
// only way existing blocks ever disappear and is reserved for conflict
// resolution.
func (m *Memory) Replace(chain []ledger.Block) {
	m.mu.Lock()
	defer m.mu.Unlock()

	blocks := make([]ledger.Block, len(chain))
	copy(blocks, chain)

	m.blocks = blocks
}
