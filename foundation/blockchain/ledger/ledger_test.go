package ledger_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/minichain/minichain/foundation/blockchain/ledger"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func Test_Genesis(t *testing.T) {
	t.Log("Given the need to validate the genesis block shape.")
	{
		genesis := ledger.Genesis()

		if genesis.Index != 1 {
			t.Fatalf("\t%s\tShould have index 1: got %d", failed, genesis.Index)
		}
		t.Logf("\t%s\tShould have index 1.", success)

		if genesis.Proof != ledger.GenesisProof {
			t.Fatalf("\t%s\tShould have proof %d: got %d", failed, ledger.GenesisProof, genesis.Proof)
		}
		t.Logf("\t%s\tShould have proof %d.", success, ledger.GenesisProof)

		if genesis.PrevHash != ledger.GenesisPrevHash {
			t.Fatalf("\t%s\tShould have previous hash %q: got %q", failed, ledger.GenesisPrevHash, genesis.PrevHash)
		}
		t.Logf("\t%s\tShould have previous hash %q.", success, ledger.GenesisPrevHash)

		if len(genesis.Transactions) != 0 {
			t.Fatalf("\t%s\tShould have no transactions: got %d", failed, len(genesis.Transactions))
		}
		t.Logf("\t%s\tShould have no transactions.", success)
	}
}

func Test_Hash(t *testing.T) {
	t.Log("Given the need to validate canonical block hashing.")
	{
		txs := []ledger.Tx{
			ledger.NewTx("addr-a", "addr-b", 10),
			ledger.NewTx("addr-c", "addr-d", 20),
		}

		block := ledger.Block{
			Index:        2,
			Timestamp:    1723456789.123,
			Transactions: txs,
			Proof:        35293,
			PrevHash:     "1",
		}

		t.Logf("\tWhen hashing the same content twice.")
		{
			same := ledger.Block{
				PrevHash:     "1",
				Proof:        35293,
				Transactions: []ledger.Tx{txs[0], txs[1]},
				Timestamp:    1723456789.123,
				Index:        2,
			}

			if block.Hash() != same.Hash() {
				t.Fatalf("\t%s\tShould produce identical digests regardless of population order.", failed)
			}
			t.Logf("\t%s\tShould produce identical digests regardless of population order.", success)
		}

		t.Logf("\tWhen reordering the transactions.")
		{
			swapped := block
			swapped.Transactions = []ledger.Tx{txs[1], txs[0]}

			if block.Hash() == swapped.Hash() {
				t.Fatalf("\t%s\tShould produce a different digest when transactions are permuted.", failed)
			}
			t.Logf("\t%s\tShould produce a different digest when transactions are permuted.", success)
		}

		t.Logf("\tWhen mutating a single field.")
		{
			mutated := block
			mutated.Proof++

			if block.Hash() == mutated.Hash() {
				t.Fatalf("\t%s\tShould produce a different digest when the proof changes.", failed)
			}
			t.Logf("\t%s\tShould produce a different digest when the proof changes.", success)
		}
	}
}

func Test_ProofOfWork(t *testing.T) {
	t.Log("Given the need to validate the proof of work search.")
	{
		const lastProof = ledger.GenesisProof

		proof, err := ledger.ProofOfWork(context.Background(), lastProof)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to complete the search: %s", failed, err)
		}
		t.Logf("\t%s\tShould be able to complete the search.", success)

		if !ledger.ValidateProof(lastProof, proof) {
			t.Fatalf("\t%s\tShould find a proof that validates.", failed)
		}
		t.Logf("\t%s\tShould find a proof that validates.", success)

		guess := fmt.Sprintf("%d%d", lastProof, proof)
		digest := sha256.Sum256([]byte(guess))
		if !strings.HasPrefix(hex.EncodeToString(digest[:]), strings.Repeat("0", ledger.Difficulty)) {
			t.Fatalf("\t%s\tShould produce a digest with %d leading zeros.", failed, ledger.Difficulty)
		}
		t.Logf("\t%s\tShould produce a digest with %d leading zeros.", success, ledger.Difficulty)
	}

	t.Log("Given the need to cancel a running search.")
	{
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := ledger.ProofOfWork(ctx, 0); err == nil {
			t.Fatalf("\t%s\tShould return an error when the context is cancelled.", failed)
		}
		t.Logf("\t%s\tShould return an error when the context is cancelled.", success)
	}
}

func Test_ValidateChain(t *testing.T) {
	t.Log("Given the need to validate chain structural checks.")
	{
		chain := buildChain(t, 4)

		if !ledger.ValidateChain(chain) {
			t.Fatalf("\t%s\tShould validate a chain built through sealing.", failed)
		}
		t.Logf("\t%s\tShould validate a chain built through sealing.", success)

		t.Logf("\tWhen tampering with a historical block.")
		{
			tampered := make([]ledger.Block, len(chain))
			copy(tampered, chain)

			txs := make([]ledger.Tx, len(tampered[1].Transactions))
			copy(txs, tampered[1].Transactions)
			txs[0].Amount += 1000
			tampered[1].Transactions = txs

			if ledger.ValidateChain(tampered) {
				t.Fatalf("\t%s\tShould reject a chain with a mutated historical block.", failed)
			}
			t.Logf("\t%s\tShould reject a chain with a mutated historical block.", success)
		}

		t.Logf("\tWhen breaking a proof.")
		{
			broken := make([]ledger.Block, len(chain))
			copy(broken, chain)
			broken[2].Proof++

			if ledger.ValidateChain(broken) {
				t.Fatalf("\t%s\tShould reject a chain with an invalid proof.", failed)
			}
			t.Logf("\t%s\tShould reject a chain with an invalid proof.", success)
		}
	}
}

// buildChain constructs an internally valid chain of the specified height
// by running the real proof of work search for each block.
func buildChain(t *testing.T, height int) []ledger.Block {
	t.Helper()

	chain := []ledger.Block{ledger.Genesis()}

	for len(chain) < height {
		last := chain[len(chain)-1]

		proof, err := ledger.ProofOfWork(context.Background(), last.Proof)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to solve the puzzle for block %d: %s", failed, last.Index+1, err)
		}

		block := ledger.Block{
			Index:        last.Index + 1,
			Timestamp:    ledger.Now(),
			Transactions: []ledger.Tx{ledger.NewTx("addr-a", "addr-b", int(last.Index))},
			Proof:        proof,
			PrevHash:     last.Hash(),
		}

		chain = append(chain, block)
	}

	return chain
}
