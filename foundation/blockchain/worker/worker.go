// Package worker implements the background workflows for the node: mining
// requests and periodic chain reconciliation.
package worker

import (
	"sync"
	"time"

	"github.com/minichain/minichain/foundation/blockchain/state"
)

// reconcileInterval represents the interval between periodic attempts to
// reconcile the local chain against the known peers. Convergence comes
// from re-invocation, not from any agreement protocol.
const reconcileInterval = time.Minute

// Worker manages the mining and reconciliation workflows for the node.
type Worker struct {
	state     *state.State
	wg        sync.WaitGroup
	ticker    *time.Ticker
	shut      chan struct{}
	mineReqs  chan mineRequest
	evHandler state.EventHandler

	muCancel sync.Mutex
	cancel   func()
}

// Run creates a worker, registers the worker with the state package, and
// starts up all the background processes.
func Run(st *state.State, evHandler state.EventHandler) *Worker {
	w := Worker{
		state:     st,
		ticker:    time.NewTicker(reconcileInterval),
		shut:      make(chan struct{}),
		mineReqs:  make(chan mineRequest),
		evHandler: evHandler,
	}

	// Register this worker with the state package.
	st.Worker = &w

	// Load the set of operations we need to run.
	operations := []func(){
		w.miningOperations,
		w.reconcileOperations,
	}

	// Set waitgroup to match the number of G's we need for the set
	// of operations we have.
	g := len(operations)
	w.wg.Add(g)

	// We don't want to return until we know all the G's are up and running.
	hasStarted := make(chan bool)

	for _, op := range operations {
		go func(op func()) {
			defer w.wg.Done()
			hasStarted <- true
			op()
		}(op)
	}

	for i := 0; i < g; i++ {
		<-hasStarted
	}

	return &w
}

// =============================================================================
// These methods implement the state.Worker interface.

// Shutdown terminates the goroutines performing work.
func (w *Worker) Shutdown() {
	w.evHandler("worker: shutdown: started")
	defer w.evHandler("worker: shutdown: completed")

	w.evHandler("worker: shutdown: stop ticker")
	w.ticker.Stop()

	w.evHandler("worker: shutdown: signal cancel mining")
	w.SignalCancelMining()

	w.evHandler("worker: shutdown: terminate goroutines")
	close(w.shut)
	w.wg.Wait()
}

// SignalCancelMining stops an in-flight proof-of-work search immediately.
// If no search is running this is a no-op.
func (w *Worker) SignalCancelMining() {
	w.muCancel.Lock()
	defer w.muCancel.Unlock()

	if w.cancel != nil {
		w.cancel()
		w.evHandler("worker: SignalCancelMining: MINING: CANCEL: signaled")
	}
}

// =============================================================================

// isShutdown is used to test if a shutdown has been signaled.
func (w *Worker) isShutdown() bool {
	select {
	case <-w.shut:
		return true
	default:
		return false
	}
}
