package worker

import (
	"context"
	"errors"
	"time"

	"github.com/minichain/minichain/foundation/blockchain/ledger"
)

// ErrWorkerShutdown is returned for mining requests made while the worker
// is shutting down.
var ErrWorkerShutdown = errors.New("worker is shut down")

// mineResult carries the outcome of a mining run back to the requester.
type mineResult struct {
	block ledger.Block
	err   error
}

// mineRequest represents a caller waiting on a mining run.
type mineRequest struct {
	ctx  context.Context
	resp chan mineResult
}

// MineBlock schedules a mining run and waits for its result. Requests are
// serviced one at a time so two searches never race for the same parent
// block. Cancelling the context abandons the wait and stops the search.
func (w *Worker) MineBlock(ctx context.Context) (ledger.Block, error) {
	req := mineRequest{
		ctx:  ctx,
		resp: make(chan mineResult, 1),
	}

	select {
	case w.mineReqs <- req:
	case <-ctx.Done():
		return ledger.Block{}, ctx.Err()
	case <-w.shut:
		return ledger.Block{}, ErrWorkerShutdown
	}

	select {
	case result := <-req.resp:
		return result.block, result.err
	case <-ctx.Done():
		return ledger.Block{}, ctx.Err()
	}
}

// =============================================================================

// miningOperations services mining requests until shutdown.
func (w *Worker) miningOperations() {
	w.evHandler("worker: miningOperations: G started")
	defer w.evHandler("worker: miningOperations: G completed")

	for {
		select {
		case req := <-w.mineReqs:
			if !w.isShutdown() {
				w.runMiningOperation(req)
			}
		case <-w.shut:
			w.evHandler("worker: miningOperations: received shut signal")
			return
		}
	}
}

// runMiningOperation performs one proof-of-work run and reports the
// result to the requester. The run can be stopped by the requester's
// context or by SignalCancelMining.
func (w *Worker) runMiningOperation(req mineRequest) {
	w.evHandler("worker: runMiningOperation: MINING: started")
	defer w.evHandler("worker: runMiningOperation: MINING: completed")

	ctx, cancel := context.WithCancel(req.ctx)
	defer cancel()

	// Expose the cancel function so a chain replacement or shutdown can
	// stop this search from outside.
	w.muCancel.Lock()
	w.cancel = cancel
	w.muCancel.Unlock()

	defer func() {
		w.muCancel.Lock()
		w.cancel = nil
		w.muCancel.Unlock()
	}()

	t := time.Now()
	block, err := w.state.MineNewBlock(ctx)
	duration := time.Since(t)

	w.evHandler("worker: runMiningOperation: MINING: mining duration[%v]", duration)

	if err != nil {
		switch {
		case ctx.Err() != nil:
			w.evHandler("worker: runMiningOperation: MINING: CANCEL: complete")
		default:
			w.evHandler("worker: runMiningOperation: MINING: ERROR: %s", err)
		}
	}

	req.resp <- mineResult{block: block, err: err}
}
