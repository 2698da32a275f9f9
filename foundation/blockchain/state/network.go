package state

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/minichain/minichain/foundation/blockchain/ledger"
	"github.com/minichain/minichain/foundation/blockchain/peer"
)

// chainURL is the wire contract every node serves its chain on.
const chainURL = "http://%s/chain"

// PeerChain is the document a peer returns from its chain endpoint.
type PeerChain struct {
	Chain  []ledger.Block `json:"chain"`
	Length int            `json:"length"`
}

// NetRequestPeerChain fetches the full chain advertised by the specified
// peer. The request is bounded by the state's fetch timeout and the
// caller's context.
func (s *State) NetRequestPeerChain(ctx context.Context, pr peer.Peer) (PeerChain, error) {
	s.evHandler("state: NetRequestPeerChain: started: %s", pr)
	defer s.evHandler("state: NetRequestPeerChain: completed: %s", pr)

	url := fmt.Sprintf(chainURL, pr.Host)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return PeerChain{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return PeerChain{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return PeerChain{}, fmt.Errorf("peer %s returned status %d", pr, resp.StatusCode)
	}

	var pc PeerChain
	if err := json.NewDecoder(resp.Body).Decode(&pc); err != nil {
		return PeerChain{}, err
	}

	return pc, nil
}

// =============================================================================

// ResolveConflicts applies the longest valid chain rule against every
// known peer. A peer's chain is a candidate only if it is strictly longer
// than the longest chain seen so far and passes structural validation.
// Peers that error, time out, or advertise an invalid chain are skipped.
// It reports whether the local chain was replaced.
func (s *State) ResolveConflicts(ctx context.Context) (bool, error) {
	s.evHandler("state: ResolveConflicts: started")
	defer s.evHandler("state: ResolveConflicts: completed")

	var newChain []ledger.Block
	maxLength := s.chain.Height()

	for _, pr := range s.RetrieveKnownPeers() {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		pc, err := s.NetRequestPeerChain(ctx, pr)
		if err != nil {
			s.evHandler("state: ResolveConflicts: peer[%s]: skipped: %s", pr, err)
			continue
		}

		if len(pc.Chain) != pc.Length {
			s.evHandler("state: ResolveConflicts: peer[%s]: skipped: advertised length %d, got %d blocks", pr, pc.Length, len(pc.Chain))
			continue
		}

		if len(pc.Chain) <= maxLength {
			s.evHandler("state: ResolveConflicts: peer[%s]: chain not longer: len[%d]", pr, len(pc.Chain))
			continue
		}

		if !ledger.ValidateChain(pc.Chain) {
			s.evHandler("state: ResolveConflicts: peer[%s]: chain failed validation", pr)
			continue
		}

		maxLength = len(pc.Chain)
		newChain = pc.Chain
	}

	if newChain == nil {
		s.evHandler("state: ResolveConflicts: local chain is authoritative")
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A seal may have grown the local chain while the peer fetches were in
	// flight. The candidate must still be strictly longer at the moment of
	// the swap or locally sealed blocks would be discarded.
	if len(newChain) <= s.chain.Height() {
		s.evHandler("state: ResolveConflicts: local chain grew during scan: height[%d]", s.chain.Height())
		return false, nil
	}

	// Any in-flight mining is solving against a chain that is about to
	// disappear. Stop it before the swap.
	if s.Worker != nil {
		s.Worker.SignalCancelMining()
	}

	s.chain.Replace(newChain)
	s.evHandler("state: ResolveConflicts: chain replaced: height[%d]", len(newChain))

	return true, nil
}
