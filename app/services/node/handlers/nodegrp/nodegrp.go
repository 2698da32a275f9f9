// Package nodegrp maintains the group of handlers for ledger node access.
package nodegrp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minichain/minichain/business/web/errs"
	"github.com/minichain/minichain/foundation/blockchain/ledger"
	"github.com/minichain/minichain/foundation/blockchain/state"
	"github.com/minichain/minichain/foundation/events"
	"github.com/minichain/minichain/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of node endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
	WS    websocket.Upgrader
	Evts  *events.Feed
}

// SubmitTransaction adds a new transaction to the pending pool.
func (h Handlers) SubmitTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var app newTx
	if err := web.Decode(r, &app); err != nil {
		return err
	}

	h.Log.Infow("add tran", "traceid", v.TraceID, "sender", app.Sender, "recipient", app.Recipient, "amount", app.Amount)

	index := h.State.SubmitTransaction(ledger.NewTx(app.Sender, app.Recipient, app.Amount))

	resp := struct {
		Message string `json:"message"`
	}{
		Message: fmt.Sprintf("Transaction will be added to Block %d", index),
	}

	return web.Respond(ctx, w, resp, http.StatusCreated)
}

// Mine runs a mining attempt: read the last proof, solve the puzzle, seal
// the pending pool into a new block. Cancelling the request cancels the
// search.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	block, err := h.State.MineBlock(ctx)
	if err != nil {
		if errors.Is(err, state.ErrNoTransactions) {
			return errs.NewTrusted(err, http.StatusBadRequest)
		}
		return err
	}

	resp := minedBlock{
		Message:      "New Block Forged",
		Index:        block.Index,
		Transactions: block.Transactions,
		Proof:        block.Proof,
		PrevHash:     block.PrevHash,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// PendingTransactions returns the transactions waiting to be sealed into
// the next block, in submission order.
func (h Handlers) PendingTransactions(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	txs := h.State.RetrieveMempool()

	resp := pendingTxs{
		Transactions: txs,
		Count:        len(txs),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Chain returns the full chain and its length. This is the wire contract
// peers fetch during conflict resolution.
func (h Handlers) Chain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	chain := h.State.RetrieveChain()

	resp := chainDoc{
		Chain:  chain,
		Length: len(chain),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// RegisterNodes adds the supplied addresses to the known peer set.
func (h Handlers) RegisterNodes(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var app registerNodes
	if err := web.Decode(r, &app); err != nil {
		return err
	}

	for _, node := range app.Nodes {
		if _, err := h.State.AddKnownPeer(node); err != nil {
			return errs.NewTrusted(fmt.Errorf("invalid node address %q: %w", node, err), http.StatusBadRequest)
		}
	}

	peers := h.State.RetrieveKnownPeers()
	hosts := make([]string, len(peers))
	for i, pr := range peers {
		hosts[i] = pr.Host
	}

	resp := registered{
		Message:    "New nodes have been added",
		TotalNodes: hosts,
	}

	return web.Respond(ctx, w, resp, http.StatusCreated)
}

// ResolveConflicts runs the longest valid chain rule against the known
// peers right now.
func (h Handlers) ResolveConflicts(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	replaced, err := h.State.ResolveConflicts(ctx)
	if err != nil {
		return err
	}

	chain := h.State.RetrieveChain()

	var resp resolved
	if replaced {
		resp = resolved{
			Message:  "Our chain was replaced",
			NewChain: chain,
		}
	} else {
		resp = resolved{
			Message: "Our chain is authoritative",
			Chain:   chain,
		}
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Events handles a web socket to provide node events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Subscribe(v.TraceID)
	defer h.Evts.Unsubscribe(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}
