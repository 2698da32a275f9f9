package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/minichain/minichain/foundation/blockchain/ledger"
	"github.com/minichain/minichain/foundation/blockchain/state"
	"github.com/minichain/minichain/foundation/blockchain/worker"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func runWorker(t *testing.T) *state.State {
	t.Helper()

	st, err := state.New(state.Config{
		Host: "0.0.0.0:8080",
	})
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct the state: %s", failed, err)
	}

	worker.Run(st, func(v string, args ...any) {})
	t.Cleanup(func() { st.Shutdown() })

	return st
}

func Test_MineBlock(t *testing.T) {
	t.Log("Given a running worker servicing mining requests.")
	{
		st := runWorker(t)

		if _, err := st.MineBlock(context.Background()); err != state.ErrNoTransactions {
			t.Fatalf("\t%s\tShould refuse to mine with an empty pool: got %v", failed, err)
		}
		t.Logf("\t%s\tShould refuse to mine with an empty pool.", success)

		st.SubmitTransaction(ledger.NewTx("A", "B", 10))

		block, err := st.MineBlock(context.Background())
		if err != nil {
			t.Fatalf("\t%s\tShould be able to mine through the worker: %s", failed, err)
		}
		t.Logf("\t%s\tShould be able to mine through the worker.", success)

		if block.Index != 2 {
			t.Fatalf("\t%s\tShould seal block 2: got %d", failed, block.Index)
		}
		t.Logf("\t%s\tShould seal block 2.", success)

		if st.RetrieveChainHeight() != 2 {
			t.Fatalf("\t%s\tShould grow the chain to height 2: got %d", failed, st.RetrieveChainHeight())
		}
		t.Logf("\t%s\tShould grow the chain to height 2.", success)
	}
}

func Test_CancelMining(t *testing.T) {
	t.Log("Given a mining request cancelled by its caller.")
	{
		st := runWorker(t)
		st.SubmitTransaction(ledger.NewTx("A", "B", 10))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := st.MineBlock(ctx); err == nil {
			t.Fatalf("\t%s\tShould return an error when the context is cancelled.", failed)
		}
		t.Logf("\t%s\tShould return an error when the context is cancelled.", success)

		if st.QueryMempoolLength() != 1 {
			t.Fatalf("\t%s\tShould leave the pending pool intact after cancellation.", failed)
		}
		t.Logf("\t%s\tShould leave the pending pool intact after cancellation.", success)
	}
}

func Test_Shutdown(t *testing.T) {
	t.Log("Given the need to shut the worker down cleanly.")
	{
		st, err := state.New(state.Config{
			Host: "0.0.0.0:8080",
		})
		if err != nil {
			t.Fatalf("\t%s\tShould be able to construct the state: %s", failed, err)
		}

		w := worker.Run(st, func(v string, args ...any) {})

		done := make(chan struct{})
		go func() {
			w.Shutdown()
			close(done)
		}()

		select {
		case <-done:
			t.Logf("\t%s\tShould complete the shutdown.", success)
		case <-time.After(5 * time.Second):
			t.Fatalf("\t%s\tShould complete the shutdown.", failed)
		}

		if _, err := st.MineBlock(context.Background()); err != worker.ErrWorkerShutdown {
			t.Fatalf("\t%s\tShould refuse mining requests after shutdown: got %v", failed, err)
		}
		t.Logf("\t%s\tShould refuse mining requests after shutdown.", success)
	}
}
