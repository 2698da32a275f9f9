package worker

import (
	"context"
	"time"
)

// reconcileTimeout bounds a full reconciliation pass across all peers.
const reconcileTimeout = 30 * time.Second

// reconcileOperations handles the periodic longest-chain reconciliation.
func (w *Worker) reconcileOperations() {
	w.evHandler("worker: reconcileOperations: G started")
	defer w.evHandler("worker: reconcileOperations: G completed")

	for {
		select {
		case <-w.ticker.C:
			if !w.isShutdown() {
				w.runReconcileOperation()
			}
		case <-w.shut:
			w.evHandler("worker: reconcileOperations: received shut signal")
			return
		}
	}
}

// runReconcileOperation performs one resolve pass against the known peers.
// A peer that errors or times out is skipped; only the pass as a whole is
// bounded here.
func (w *Worker) runReconcileOperation() {
	w.evHandler("worker: runReconcileOperation: started")
	defer w.evHandler("worker: runReconcileOperation: completed")

	ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
	defer cancel()

	replaced, err := w.state.ResolveConflicts(ctx)
	if err != nil {
		w.evHandler("worker: runReconcileOperation: ERROR: %s", err)
		return
	}

	if replaced {
		w.evHandler("worker: runReconcileOperation: chain replaced by longer peer chain")
	}
}
