// registry.go implements the xsearch extension registry.
//
// Separated from extension.go to keep the global registry state in one
// place. The core, content and search extensions register from init() in
// their own packages; extension/all imports them so cmd and the MCP server
// see the same set.
//
// Design: a duplicate name panics, as database/sql.Register does, because
// it can only come from two packages claiming one name. Registration order
// is kept so commands and MCP tools appear in the same order on every run.

package extension

import "sync"

var (
	mu       sync.RWMutex
	registry = make(map[string]Extension)
	order    []string
)

// Register adds e to the registry. Call it from init().
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if _, exists := registry[name]; exists {
		panic("xsearch: extension already registered: " + name)
	}

	registry[name] = e
	order = append(order, name)
}

// All returns the registered extensions in registration order. The root
// command mounts their commands and the MCP server their tools from it.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]Extension, 0, len(order))
	for _, name := range order {
		exts = append(exts, registry[name])
	}
	return exts
}
