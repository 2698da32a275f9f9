// Package events allows for the registering and receiving of node events
// such as mining progress and reconciliation outcomes.
package events

import (
	"fmt"
	"sync"
)

// messageBuffer is how many events a slow subscriber may fall behind
// before new events are dropped for it.
const messageBuffer = 100

// Feed maintains a mapping of unique id and channels so goroutines
// can subscribe and receive events.
type Feed struct {
	mu   sync.RWMutex
	subs map[string]chan string
}

// New constructs a feed for subscribing to and publishing events.
func New() *Feed {
	return &Feed{
		subs: make(map[string]chan string),
	}
}

// Shutdown closes and removes all channels that were provided by
// the call to Subscribe.
func (f *Feed) Shutdown() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for id, ch := range f.subs {
		delete(f.subs, id)
		close(ch)
	}
}

// Subscribe takes a unique id and returns a channel that can be used
// to receive events.
func (f *Feed) Subscribe(id string) chan string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if ch, exists := f.subs[id]; exists {
		return ch
	}

	f.subs[id] = make(chan string, messageBuffer)
	return f.subs[id]
}

// Unsubscribe closes and removes the channel that was provided by
// the call to Subscribe.
func (f *Feed) Unsubscribe(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch, exists := f.subs[id]
	if !exists {
		return fmt.Errorf("id %q does not exist", id)
	}

	delete(f.subs, id)
	close(ch)
	return nil
}

// Publish signals the message to every subscriber. Publish will not block
// waiting for a receiver on any given channel.
func (f *Feed) Publish(s string) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, ch := range f.subs {
		select {
		case ch <- s:
		default:
		}
	}
}
