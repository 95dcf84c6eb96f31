// Package search provides the search and explain commands.
// Both run through the query runner, so a normal search is rewritten to
// match configured metadata and taxonomy terms.
package search

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/xsearch/extension"
	"github.com/jpl-au/xsearch/internal/service"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the search extension.
type Extension struct {
	svc service.Service
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "search".
func (e *Extension) Name() string { return "search" }

// Init connects to the shared service for search operations.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	return nil
}

// Commands returns the search and explain commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newSearchCmd(),
		e.newExplainCmd(),
	}
}

// MCPTools returns nil - MCP search tools are in internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}
