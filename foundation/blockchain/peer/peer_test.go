package peer_test

import (
	"testing"

	"github.com/minichain/minichain/foundation/blockchain/peer"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func Test_New(t *testing.T) {
	t.Log("Given the need to normalize peer addresses to a network location.")
	{
		tests := []struct {
			name    string
			address string
			host    string
		}{
			{"full url", "http://192.168.0.5:8080", "192.168.0.5:8080"},
			{"host and port", "192.168.0.5:8080", "192.168.0.5:8080"},
			{"bare host", "node1", "node1"},
			{"with path", "http://node1:8080/chain", "node1:8080"},
			{"padded", "  node1:8080  ", "node1:8080"},
		}

		for _, tt := range tests {
			pr, err := peer.New(tt.address)
			if err != nil {
				t.Fatalf("\t%s\tShould parse the %s form: %s", failed, tt.name, err)
			}

			if pr.Host != tt.host {
				t.Fatalf("\t%s\tShould normalize the %s form to %q: got %q", failed, tt.name, tt.host, pr.Host)
			}
			t.Logf("\t%s\tShould normalize the %s form to %q.", success, tt.name, tt.host)
		}
	}

	t.Log("Given addresses with no network location.")
	{
		for _, address := range []string{"", "   ", "http://"} {
			if _, err := peer.New(address); err == nil {
				t.Fatalf("\t%s\tShould reject %q.", failed, address)
			}
			t.Logf("\t%s\tShould reject %q.", success, address)
		}
	}
}

func Test_PeerSet(t *testing.T) {
	t.Log("Given the need to keep peer membership deduplicated.")
	{
		ps := peer.NewPeerSet()

		p1, err := peer.New("http://node1:8080")
		if err != nil {
			t.Fatalf("\t%s\tShould be able to construct the peer: %s", failed, err)
		}

		if !ps.Add(p1) {
			t.Fatalf("\t%s\tShould report a first add as new.", failed)
		}
		t.Logf("\t%s\tShould report a first add as new.", success)

		same, err := peer.New("node1:8080")
		if err != nil {
			t.Fatalf("\t%s\tShould be able to construct the peer: %s", failed, err)
		}

		if ps.Add(same) {
			t.Fatalf("\t%s\tShould treat different spellings of one location as the same peer.", failed)
		}
		t.Logf("\t%s\tShould treat different spellings of one location as the same peer.", success)

		if ps.Count() != 1 {
			t.Fatalf("\t%s\tShould hold one peer: got %d", failed, ps.Count())
		}
		t.Logf("\t%s\tShould hold one peer.", success)
	}

	t.Log("Given the need to copy the set without the local host.")
	{
		ps := peer.NewPeerSet()
		for _, address := range []string{"node1:8080", "node2:8080", "node3:8080"} {
			pr, err := peer.New(address)
			if err != nil {
				t.Fatalf("\t%s\tShould be able to construct the peer: %s", failed, err)
			}
			ps.Add(pr)
		}

		peers := ps.Copy("node2:8080")
		if len(peers) != 2 {
			t.Fatalf("\t%s\tShould exclude the specified host: got %d peers", failed, len(peers))
		}
		for _, pr := range peers {
			if pr.Match("node2:8080") {
				t.Fatalf("\t%s\tShould exclude the specified host.", failed)
			}
		}
		t.Logf("\t%s\tShould exclude the specified host.", success)

		pr, err := peer.New("node3:8080")
		if err != nil {
			t.Fatalf("\t%s\tShould be able to construct the peer: %s", failed, err)
		}
		ps.Remove(pr)

		if ps.Count() != 2 {
			t.Fatalf("\t%s\tShould be able to remove a peer: got %d", failed, ps.Count())
		}
		t.Logf("\t%s\tShould be able to remove a peer.", success)
	}
}
