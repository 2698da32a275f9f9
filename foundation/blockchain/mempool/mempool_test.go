package mempool_test

import (
	"reflect"
	"testing"

	"github.com/minichain/minichain/foundation/blockchain/ledger"
	"github.com/minichain/minichain/foundation/blockchain/mempool"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func Test_Mempool(t *testing.T) {
	t.Log("Given the need to pool pending transactions in order.")
	{
		mp := mempool.New()

		txs := []ledger.Tx{
			ledger.NewTx("A", "B", 1),
			ledger.NewTx("C", "D", 2),
			ledger.NewTx("A", "B", 1),
		}

		for i, tx := range txs {
			if count := mp.Append(tx); count != i+1 {
				t.Fatalf("\t%s\tShould report %d pooled transactions: got %d", failed, i+1, count)
			}
		}
		t.Logf("\t%s\tShould report the pool growing with each append.", success)

		if mp.Count() != len(txs) {
			t.Fatalf("\t%s\tShould pool duplicate submissions twice: got %d", failed, mp.Count())
		}
		t.Logf("\t%s\tShould pool duplicate submissions twice.", success)

		if !reflect.DeepEqual(mp.Copy(), txs) {
			t.Fatalf("\t%s\tShould copy transactions in submission order.", failed)
		}
		t.Logf("\t%s\tShould copy transactions in submission order.", success)
	}
}

func Test_Drain(t *testing.T) {
	t.Log("Given the need to drain the pool exactly once per sealed block.")
	{
		mp := mempool.New()

		txs := []ledger.Tx{
			ledger.NewTx("A", "B", 1),
			ledger.NewTx("C", "D", 2),
		}
		for _, tx := range txs {
			mp.Append(tx)
		}

		drained := mp.Drain()
		if !reflect.DeepEqual(drained, txs) {
			t.Fatalf("\t%s\tShould drain transactions in submission order.", failed)
		}
		t.Logf("\t%s\tShould drain transactions in submission order.", success)

		if mp.Count() != 0 {
			t.Fatalf("\t%s\tShould leave the pool empty after a drain: got %d", failed, mp.Count())
		}
		t.Logf("\t%s\tShould leave the pool empty after a drain.", success)

		if len(mp.Drain()) != 0 {
			t.Fatalf("\t%s\tShould drain nothing from an empty pool.", failed)
		}
		t.Logf("\t%s\tShould drain nothing from an empty pool.", success)
	}
}
