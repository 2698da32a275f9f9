package nodegrp

import (
	"github.com/minichain/minichain/business/sys/validate"
	"github.com/minichain/minichain/foundation/blockchain/ledger"
)

// newTx is what a client submits to place a transaction in the pool. All
// fields are required; a zero amount is rejected the same as a missing one.
type newTx struct {
	Sender    string `json:"sender" validate:"required"`
	Recipient string `json:"recipient" validate:"required"`
	Amount    int    `json:"amount" validate:"required"`
}

// Validate checks the data in the model is considered clean.
func (app newTx) Validate() error {
	if err := validate.Check(app); err != nil {
		return err
	}
	return nil
}

// registerNodes is the document for registering peers with this node.
type registerNodes struct {
	Nodes []string `json:"nodes" validate:"required,min=1,dive,required"`
}

// Validate checks the data in the model is considered clean.
func (app registerNodes) Validate() error {
	if err := validate.Check(app); err != nil {
		return err
	}
	return nil
}

// =============================================================================

// pendingTxs lists the pool waiting for the next seal.
type pendingTxs struct {
	Transactions []ledger.Tx `json:"transactions"`
	Count        int         `json:"count"`
}

// chainDoc is the wire contract peers use to exchange chains.
type chainDoc struct {
	Chain  []ledger.Block `json:"chain"`
	Length int            `json:"length"`
}

// minedBlock reports the outcome of a successful mining run.
type minedBlock struct {
	Message      string      `json:"message"`
	Index        uint64      `json:"index"`
	Transactions []ledger.Tx `json:"transactions"`
	Proof        uint64      `json:"proof"`
	PrevHash     string      `json:"previous_hash"`
}

// registered reports the outcome of a peer registration.
type registered struct {
	Message    string   `json:"message"`
	TotalNodes []string `json:"total_nodes"`
}

// resolved reports the outcome of a conflict resolution run. Exactly one
// of Chain or NewChain is populated.
type resolved struct {
	Message  string         `json:"message"`
	Chain    []ledger.Block `json:"chain,omitempty"`
	NewChain []ledger.Block `json:"new_chain,omitempty"`
}
