// Package all imports all core xsearch extensions.
// Import this package to register all built-in commands.
package all

import (
	// Core extensions - each registers itself via init()
	_ "github.com/jpl-au/xsearch/extension/content"
	_ "github.com/jpl-au/xsearch/extension/core"
	_ "github.com/jpl-au/xsearch/extension/search"
)
