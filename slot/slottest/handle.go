// Package slottest provides release-observable values for testing code that
// owns slot storage.
package slottest

import (
	"fmt"
	"sync"
)

// Ledger records every release of the handles it issued.
type Ledger struct {
	mu       sync.Mutex
	released map[string]int
	clones   int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{released: make(map[string]int)}
}

// Handle is a named resource whose Release is observable in its Ledger.
type Handle struct {
	Name   string
	ledger *Ledger
}

// Handle issues a new handle called name.
func (l *Ledger) Handle(name string) *Handle {
	return &Handle{Name: name, ledger: l}
}

// Handles issues one handle per name.
func (l *Ledger) Handles(names ...string) []*Handle {
	out := make([]*Handle, len(names))
	for i, n := range names {
		out[i] = l.Handle(n)
	}

	return out
}

// Release records the release of h.
func (h *Handle) Release() {
	h.ledger.mu.Lock()
	defer h.ledger.mu.Unlock()

	h.ledger.released[h.Name]++
}

// Clone issues another handle with the same name, like taking a second
// reference on a shared resource.
func (h *Handle) Clone() *Handle {
	h.ledger.mu.Lock()
	h.ledger.clones++
	h.ledger.mu.Unlock()

	return &Handle{Name: h.Name, ledger: h.ledger}
}

func (h *Handle) String() string {
	return fmt.Sprintf("handle(%s)", h.Name)
}

// Released returns how many times handles called name were released.
func (l *Ledger) Released(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.released[name]
}

// Total returns the number of releases across all names.
func (l *Ledger) Total() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := 0
	for _, c := range l.released {
		total += c
	}

	return total
}

// Clones returns how many times a handle was cloned.
func (l *Ledger) Clones() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.clones
}

// Snapshot returns a copy of the per-name release counts.
func (l *Ledger) Snapshot() map[string]int {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string]int, len(l.released))
	for k, v := range l.released {
		out[k] = v
	}

	return out
}
