package memory_test

import (
	"reflect"
	"testing"

	"github.com/minichain/minichain/foundation/blockchain/ledger"
	"github.com/minichain/minichain/foundation/blockchain/storage/memory"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func Test_Append(t *testing.T) {
	t.Log("Given a store seeded with the genesis block.")
	{
		genesis := ledger.Genesis()
		store := memory.New(genesis)

		if store.Height() != 1 {
			t.Fatalf("\t%s\tShould start at height 1: got %d", failed, store.Height())
		}
		t.Logf("\t%s\tShould start at height 1.", success)

		block := ledger.Block{
			Index:     2,
			Timestamp: ledger.Now(),
			Proof:     35293,
			PrevHash:  genesis.Hash(),
		}
		if err := store.Append(block); err != nil {
			t.Fatalf("\t%s\tShould accept the next contiguous block: %s", failed, err)
		}
		t.Logf("\t%s\tShould accept the next contiguous block.", success)

		if store.Latest().Index != 2 {
			t.Fatalf("\t%s\tShould report the appended block as latest: got %d", failed, store.Latest().Index)
		}
		t.Logf("\t%s\tShould report the appended block as latest.", success)

		gap := ledger.Block{Index: 5}
		if err := store.Append(gap); err != memory.ErrOutOfOrder {
			t.Fatalf("\t%s\tShould reject a non-contiguous block: got %v", failed, err)
		}
		t.Logf("\t%s\tShould reject a non-contiguous block.", success)

		if err := store.Append(block); err != memory.ErrOutOfOrder {
			t.Fatalf("\t%s\tShould reject a repeated index: got %v", failed, err)
		}
		t.Logf("\t%s\tShould reject a repeated index.", success)
	}
}

func Test_Replace(t *testing.T) {
	t.Log("Given the need to swap the chain wholesale.")
	{
		store := memory.New(ledger.Genesis())

		chain := []ledger.Block{
			ledger.Genesis(),
			{Index: 2, Proof: 35293, PrevHash: "x"},
			{Index: 3, Proof: 35089, PrevHash: "y"},
		}
		store.Replace(chain)

		if store.Height() != 3 {
			t.Fatalf("\t%s\tShould report the replacement height: got %d", failed, store.Height())
		}
		t.Logf("\t%s\tShould report the replacement height.", success)

		if !reflect.DeepEqual(store.All(), chain) {
			t.Fatalf("\t%s\tShould hold exactly the replacement chain.", failed)
		}
		t.Logf("\t%s\tShould hold exactly the replacement chain.", success)

		// The store must not alias the caller's slice.
		chain[1].Proof = 0
		if store.All()[1].Proof != 35293 {
			t.Fatalf("\t%s\tShould not alias the caller's slice.", failed)
		}
		t.Logf("\t%s\tShould not alias the caller's slice.", success)
	}
}
