// Package hooks provides a request-scoped bus of named string filters.
//
// A filter receives the current value of a query fragment and returns the
// next one. Filters on the same hook run in ascending priority; filters
// with equal priority run in the order they were added. Each filter is
// registered under an ID so the owner can remove it again without holding
// a reference to the function.
//
// Design: Apply copies the chain under the lock and runs it outside, so a
// filter may remove itself (or its siblings) while the chain is running.
// The removal takes effect from the next Apply or Snapshot.
package hooks

import (
	"sort"
	"sync"
)

// Hook names fired by the query runner while building the listing query.
const (
	PostsJoin     = "posts_join"
	PostsWhere    = "posts_where"
	PostsDistinct = "posts_distinct"
)

// DefaultPriority is the priority used by callers with no ordering needs.
const DefaultPriority = 10

// Filter transforms one fragment value.
type Filter func(value string) string

type entry struct {
	id       string
	priority int
	seq      uint64
	fn       Filter
}

// Bus holds the filter chains for one request. The zero value is not
// usable; call New.
type Bus struct {
	mu     sync.Mutex
	chains map[string][]entry
	seq    uint64
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{chains: make(map[string][]entry)}
}

// Add registers fn on name under id. Adding an id that is already present
// on name replaces the earlier registration.
func (b *Bus) Add(name, id string, priority int, fn Filter) {
	b.mu.Lock()
	defer b.mu.Unlock()

	chain := removeID(b.chains[name], id)
	b.seq++
	chain = append(chain, entry{id: id, priority: priority, seq: b.seq, fn: fn})
	sort.SliceStable(chain, func(i, j int) bool {
		if chain[i].priority != chain[j].priority {
			return chain[i].priority < chain[j].priority
		}
		return chain[i].seq < chain[j].seq
	})
	b.chains[name] = chain
}

// Remove unregisters id from name. It reports whether anything was removed;
// removing an absent id is a no-op.
func (b *Bus) Remove(name, id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	chain := b.chains[name]
	next := removeID(chain, id)
	if len(next) == len(chain) {
		return false
	}
	if len(next) == 0 {
		delete(b.chains, name)
	} else {
		b.chains[name] = next
	}
	return true
}

// Has reports whether id is registered on name.
func (b *Bus) Has(name, id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, e := range b.chains[name] {
		if e.id == id {
			return true
		}
	}
	return false
}

// Len returns the number of filters registered on name.
func (b *Bus) Len(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.chains[name])
}

// Apply runs the current chain for name over value.
func (b *Bus) Apply(name, value string) string {
	return b.chain(name).Apply(value)
}

// Snapshot freezes the chains for names. Later Add and Remove calls do not
// affect the returned Chains.
func (b *Bus) Snapshot(names ...string) Chains {
	out := make(Chains, len(names))
	for _, n := range names {
		out[n] = b.chain(n)
	}
	return out
}

func (b *Bus) chain(name string) Chain {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.chains[name]
	c := make(Chain, len(entries))
	for i, e := range entries {
		c[i] = e.fn
	}
	return c
}

func removeID(chain []entry, id string) []entry {
	out := chain[:0:0]
	for _, e := range chain {
		if e.id != id {
			out = append(out, e)
		}
	}
	return out
}

// Chain is an ordered, frozen list of filters.
type Chain []Filter

// Apply runs every filter in order, feeding each the previous output.
func (c Chain) Apply(value string) string {
	for _, fn := range c {
		value = fn(value)
	}
	return value
}

// Chains maps hook names to frozen chains.
type Chains map[string]Chain

// Apply runs the frozen chain for name. Unknown names return value as is.
func (c Chains) Apply(name, value string) string {
	return c[name].Apply(value)
}
