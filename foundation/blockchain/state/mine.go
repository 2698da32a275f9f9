package state

import (
	"context"
	"errors"

	"github.com/minichain/minichain/foundation/blockchain/ledger"
)

// ErrNoTransactions is returned when a block is requested to be mined and
// there are no transactions in the pool.
var ErrNoTransactions = errors.New("no transactions in mempool")

// ErrInvalidProof is returned from SealBlock when the supplied proof does
// not solve the puzzle against the current last block.
var ErrInvalidProof = errors.New("proof is not valid for the current last block")

// ErrWrongParent is returned from SealBlock when the caller supplies a
// previous hash that does not match the current last block.
var ErrWrongParent = errors.New("previous hash does not match the last block")

// =============================================================================

// MineNewBlock runs the proof-of-work search against the current last
// block and seals the pending pool into a new block. The search can be
// cancelled through the context. The pool is only consumed inside a
// successful seal, so a cancelled attempt leaves it untouched.
func (s *State) MineNewBlock(ctx context.Context) (ledger.Block, error) {
	s.evHandler("state: MineNewBlock: MINING: check mempool count")

	if s.mempool.Count() == 0 {
		return ledger.Block{}, ErrNoTransactions
	}

	s.evHandler("state: MineNewBlock: MINING: perform POW")

	lastBlock := s.chain.Latest()
	proof, err := ledger.ProofOfWork(ctx, lastBlock.Proof)
	if err != nil {
		return ledger.Block{}, err
	}

	// Just check one more time we were not cancelled.
	if ctx.Err() != nil {
		return ledger.Block{}, ctx.Err()
	}

	s.evHandler("state: MineNewBlock: MINING: POW solved: proof[%d]", proof)

	// If the chain was replaced while the search ran, the proof no longer
	// solves against the new last block and SealBlock refuses it.
	return s.SealBlock(proof, "")
}

// MineBlock schedules a mining run through the worker and waits for the
// result. The worker serializes mining so only one search runs at a time.
func (s *State) MineBlock(ctx context.Context) (ledger.Block, error) {
	return s.Worker.MineBlock(ctx)
}

// =============================================================================

// SealBlock builds the next block from the pending pool and appends it to
// the chain. The supplied proof must solve the puzzle against the current
// last block. An empty prevHash means the hash of the last block; a
// non-empty value must match it. The pending pool is cleared exactly once,
// as a side effect of a successful seal.
func (s *State) SealBlock(proof uint64, prevHash string) (ledger.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lastBlock := s.chain.Latest()

	if !ledger.ValidateProof(lastBlock.Proof, proof) {
		return ledger.Block{}, ErrInvalidProof
	}

	switch prevHash {
	case "":
		prevHash = lastBlock.Hash()
	case lastBlock.Hash():
	default:
		return ledger.Block{}, ErrWrongParent
	}

	block := ledger.Block{
		Index:        lastBlock.Index + 1,
		Timestamp:    ledger.Now(),
		Transactions: s.mempool.Drain(),
		Proof:        proof,
		PrevHash:     prevHash,
	}

	if err := s.chain.Append(block); err != nil {
		return ledger.Block{}, err
	}

	s.evHandler("state: SealBlock: sealed: blk[%d]: txs[%d]", block.Index, len(block.Transactions))

	return block, nil
}
