package state

import (
	"github.com/minichain/minichain/foundation/blockchain/ledger"
	"github.com/minichain/minichain/foundation/blockchain/peer"
)

// RetrieveChain returns a copy of the full chain in order.
func (s *State) RetrieveChain() []ledger.Block {
	return s.chain.All()
}

// RetrieveLatestBlock returns a copy of the current latest block.
func (s *State) RetrieveLatestBlock() ledger.Block {
	return s.chain.Latest()
}

// RetrieveChainHeight returns the number of blocks in the chain.
func (s *State) RetrieveChainHeight() int {
	return s.chain.Height()
}

// RetrieveMempool returns a copy of the pending pool in submission order.
func (s *State) RetrieveMempool() []ledger.Tx {
	return s.mempool.Copy()
}

// QueryMempoolLength returns the current length of the pending pool.
func (s *State) QueryMempoolLength() int {
	return s.mempool.Count()
}

// RetrieveKnownPeers retrieves a copy of the known peer list.
func (s *State) RetrieveKnownPeers() []peer.Peer {
	return s.knownPeers.Copy(s.host)
}
