package state

import (
	"github.com/minichain/minichain/foundation/blockchain/ledger"
)

// SubmitTransaction accepts a transaction into the pending pool and
// returns the index of the block that will eventually contain it. Field
// validation belongs to the boundary layer; the core takes the value
// as given.
func (s *State) SubmitTransaction(tx ledger.Tx) uint64 {

	// Serialize against SealBlock so a pool snapshot never races a
	// submission.
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mempool.Append(tx)

	index := s.chain.Latest().Index + 1
	s.evHandler("state: SubmitTransaction: pooled: from[%s] to[%s] amount[%d]: blk[%d]", tx.Sender, tx.Recipient, tx.Amount, index)

	return index
}
