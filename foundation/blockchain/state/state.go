// Package state is the core API for the ledger and implements all the
// business rules and processing.
package state

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/minichain/minichain/foundation/blockchain/ledger"
	"github.com/minichain/minichain/foundation/blockchain/mempool"
	"github.com/minichain/minichain/foundation/blockchain/peer"
	"github.com/minichain/minichain/foundation/blockchain/storage/memory"
)

// defaultFetchTimeout bounds each peer chain fetch so a dead peer can't
// stall reconciliation.
const defaultFetchTimeout = 5 * time.Second

// =============================================================================

// EventHandler defines a function that is called when events occur in the
// processing of blocks and peers.
type EventHandler func(v string, args ...any)

// Worker interface represents the behavior required to be implemented by
// any package providing support for mining and chain reconciliation.
type Worker interface {
	Shutdown()
	MineBlock(ctx context.Context) (ledger.Block, error)
	SignalCancelMining()
}

// =============================================================================

// Config represents the configuration required to start the node state.
type Config struct {
	Host         string
	KnownPeers   *peer.PeerSet
	FetchTimeout time.Duration
	EvHandler    EventHandler
}

// State manages the blockchain node. All chain and pool mutation funnels
// through the single mutex so a seal never races a submit and a chain
// replacement never interleaves with a seal.
type State struct {
	mu sync.Mutex

	host      string
	evHandler EventHandler

	chain      *memory.Memory
	mempool    *mempool.Mempool
	knownPeers *peer.PeerSet
	client     http.Client

	// Worker is assigned by the worker package's Run function.
	Worker Worker
}

// New constructs a new node state with a freshly generated genesis block.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	knownPeers := cfg.KnownPeers
	if knownPeers == nil {
		knownPeers = peer.NewPeerSet()
	}

	fetchTimeout := cfg.FetchTimeout
	if fetchTimeout == 0 {
		fetchTimeout = defaultFetchTimeout
	}

	state := State{
		host:       cfg.Host,
		evHandler:  ev,
		chain:      memory.New(ledger.Genesis()),
		mempool:    mempool.New(),
		knownPeers: knownPeers,
		client:     http.Client{Timeout: fetchTimeout},
	}

	// The Worker is not set here. The call to worker.Run will assign
	// itself and start everything up and running for the node.

	return &state, nil
}

// Shutdown cleanly brings the node down.
func (s *State) Shutdown() error {
	if s.Worker != nil {
		s.Worker.Shutdown()
	}

	return nil
}

// =============================================================================

// AddKnownPeer normalizes the address and inserts it into the peer set.
// It reports whether the peer was not already known.
func (s *State) AddKnownPeer(address string) (bool, error) {
	pr, err := peer.New(address)
	if err != nil {
		return false, err
	}

	added := s.knownPeers.Add(pr)
	if added {
		s.evHandler("state: AddKnownPeer: registered peer[%s]", pr)
	}

	return added, nil
}
