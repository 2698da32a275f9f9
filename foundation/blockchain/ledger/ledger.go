// Package ledger implements the value types and pure functions at the heart
// of the blockchain: transactions, blocks, canonical hashing, the
// proof-of-work puzzle, and structural chain validation.
package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Genesis block constants. Every node constructs the same first block
// shape so independently started chains share a common root.
const (
	GenesisProof    = 100
	GenesisPrevHash = "1"
)

// =============================================================================

// Tx represents a transfer of some amount between two addresses. Addresses
// are opaque strings, the amount is whatever the caller supplies. Values
// are immutable once constructed.
type Tx struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Amount    int    `json:"amount"`
}

// NewTx constructs a transaction value.
func NewTx(sender string, recipient string, amount int) Tx {
	return Tx{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
	}
}

// =============================================================================

// Block represents a group of transactions sealed together with a proof
// and a link to the previous block. Blocks are never mutated after they
// are appended to a chain.
type Block struct {
	Index        uint64  `json:"index"`
	Timestamp    float64 `json:"timestamp"`
	Transactions []Tx    `json:"transactions"`
	Proof        uint64  `json:"proof"`
	PrevHash     string  `json:"previous_hash"`
}

// Genesis constructs the first block in a chain. It carries a fixed proof
// and previous hash and an empty transaction list.
func Genesis() Block {
	return Block{
		Index:        1,
		Timestamp:    Now(),
		Transactions: []Tx{},
		Proof:        GenesisProof,
		PrevHash:     GenesisPrevHash,
	}
}

// Now returns the current time as seconds since the Unix epoch.
func Now() float64 {
	return float64(time.Now().UTC().UnixNano()) / float64(time.Second)
}

// Hash returns the SHA-256 hex digest of the block's canonical
// serialization. The block is marshaled as a map so encoding/json writes
// the keys in lexicographic order, making the digest independent of how
// the block value was populated. Transaction order is preserved and is
// part of the block's identity.
func (b Block) Hash() string {
	trans := make([]map[string]any, len(b.Transactions))
	for i, tx := range b.Transactions {
		trans[i] = map[string]any{
			"sender":    tx.Sender,
			"recipient": tx.Recipient,
			"amount":    tx.Amount,
		}
	}

	doc := map[string]any{
		"index":         b.Index,
		"timestamp":     b.Timestamp,
		"transactions":  trans,
		"proof":         b.Proof,
		"previous_hash": b.PrevHash,
	}

	data, err := json.Marshal(doc)
	if err != nil {

		// A map of strings and numbers can't fail to marshal. If it ever
		// does, hashing silently wrong would corrupt the chain.
		panic(err)
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
