// Package core provides the core extension for xsearch.
// It registers commands: init, config, serve, guide, db, version.
package core

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/xsearch/extension"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension = (*Extension)(nil)
	_ extension.Storeless = (*Extension)(nil)
)

// Name returns "core" - this extension provides fundamental xsearch commands.
func (e *Extension) Name() string { return "core" }

// Commands returns all core CLI commands for repository management.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newInitCmd(),
		newConfigCmd(),
		newServeCmd(),
		newGuideCmd(),
		newDBCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil - core commands have no MCP tool equivalents.
// The built-in tools live in internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// NoStoreCommands returns commands that manage their own service lifecycle.
// serve: Long-running MCP server needs its own service lifecycle.
// db: Manages gitignore, doesn't need database connection.
// version: Displays build info, doesn't need database connection.
func (e *Extension) NoStoreCommands() []string {
	return []string{"serve", "db", "version"}
}
