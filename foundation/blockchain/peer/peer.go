// Package peer maintains the set of known remote nodes whose chains this
// node reconciles against.
package peer

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// Peer represents information about a node in the network.
type Peer struct {
	Host string
}

// New constructs a peer from an address, normalizing it to its network
// location. Accepted forms are "http://host:port", "host:port", or a bare
// host. There is no reachability check at registration time.
func New(address string) (Peer, error) {
	addr := strings.TrimSpace(address)
	if addr == "" {
		return Peer{}, fmt.Errorf("empty peer address")
	}

	// A bare "host:port" has no scheme and url.Parse would read the host
	// as the scheme. Give it one so the network location parses out.
	if !strings.Contains(addr, "//") {
		addr = "http://" + addr
	}

	u, err := url.Parse(addr)
	if err != nil {
		return Peer{}, fmt.Errorf("parsing peer address %q: %w", address, err)
	}

	if u.Host == "" {
		return Peer{}, fmt.Errorf("peer address %q has no network location", address)
	}

	return Peer{Host: u.Host}, nil
}

// Match validates if the specified host matches this peer.
func (p Peer) Match(host string) bool {
	return p.Host == host
}

// String implements the fmt.Stringer interface.
func (p Peer) String() string {
	return p.Host
}

// =============================================================================

// PeerSet represents the data representation to maintain a set of known
// peers. Membership is deduplicated by network location; iteration order
// is undefined.
type PeerSet struct {
	mu  sync.RWMutex
	set map[Peer]struct{}
}

// NewPeerSet constructs a new set to manage node peer information.
func NewPeerSet() *PeerSet {
	return &PeerSet{
		set: make(map[Peer]struct{}),
	}
}

// Add adds a new peer to the set. It reports whether the peer was not
// already present.
func (ps *PeerSet) Add(peer Peer) bool {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if _, exists := ps.set[peer]; exists {
		return false
	}

	ps.set[peer] = struct{}{}
	return true
}

// Remove removes a peer from the set.
func (ps *PeerSet) Remove(peer Peer) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	delete(ps.set, peer)
}

// Count returns the number of known peers.
func (ps *PeerSet) Count() int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	return len(ps.set)
}

// Copy returns a list of the known peers, excluding the specified host.
func (ps *PeerSet) Copy(host string) []Peer {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	var peers []Peer
	for peer := range ps.set {
		if !peer.Match(host) {
			peers = append(peers, peer)
		}
	}

	return peers
}
