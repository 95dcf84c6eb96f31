// handle.go implements the registration of a Rewriter on a filter bus.
//
// The handle is the only record of the registration. Whoever holds it can
// release it; the Rewriter holds it too so its WHERE stage can release the
// registration itself.

package search

import (
	"github.com/google/uuid"

	"github.com/jpl-au/xsearch/internal/hooks"
)

// Handle is a live registration of one Rewriter's three stages.
type Handle struct {
	bus *hooks.Bus
	id  string
}

// Attach registers rw's stages on bus and returns the handle. Each call
// uses a fresh ID, so two handles never remove each other's filters.
func Attach(bus *hooks.Bus, rw *Rewriter) *Handle {
	h := &Handle{bus: bus, id: "xsearch-" + uuid.NewString()}
	rw.handle = h

	bus.Add(hooks.PostsJoin, h.id, hooks.DefaultPriority, rw.ExtendJoin)
	bus.Add(hooks.PostsWhere, h.id, hooks.DefaultPriority, rw.ExtendWhere)
	bus.Add(hooks.PostsDistinct, h.id, hooks.DefaultPriority, rw.ForceDistinct)
	return h
}

// ID returns the filter ID the stages are registered under.
func (h *Handle) ID() string {
	if h == nil {
		return ""
	}
	return h.id
}

// Release removes all three stages. It is safe to call more than once and
// on a nil handle.
func (h *Handle) Release() {
	if h == nil {
		return
	}
	for _, name := range stageHooks {
		h.bus.Remove(name, h.id)
	}
}

// Active reports whether any of the stages is still registered.
func (h *Handle) Active() bool {
	if h == nil {
		return false
	}
	for _, name := range stageHooks {
		if h.bus.Has(name, h.id) {
			return true
		}
	}
	return false
}

var stageHooks = []string{hooks.PostsJoin, hooks.PostsWhere, hooks.PostsDistinct}
