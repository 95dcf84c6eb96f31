// Package content provides the content extension for xsearch.
// It registers commands: post (add, show), meta (set), taxonomy (register),
// term (assign), import, export and stats.
package content

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/xsearch/extension"
	"github.com/jpl-au/xsearch/internal/service"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the content extension.
type Extension struct {
	svc service.Service
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "content" - this extension manages posts and their data.
func (e *Extension) Name() string { return "content" }

// Init receives the shared service from the extension context.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	return nil
}

// Commands returns the content commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newPostCmd(),
		e.newMetaCmd(),
		e.newTaxonomyCmd(),
		e.newTermCmd(),
		e.newImportCmd(),
		e.newExportCmd(),
		e.newStatsCmd(),
	}
}

// MCPTools returns the xsearch_add_post tool.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{addPostTool()}
}
