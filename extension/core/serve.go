// serve.go implements the "xsearch serve" command for MCP server operation.
//
// Separated from extension.go because serve has unique lifecycle requirements.
// Unlike other commands that run and exit, serve blocks indefinitely handling
// MCP requests over stdio.
//
// Design: Serve is a NoStoreCommand - it manages its own service lifecycle
// instead of using the shared service from root.go. The server starts even
// when no store exists, so an LLM can call xsearch_init itself.

package core

import (
	"github.com/spf13/cobra"

	"github.com/jpl-au/xsearch/cmd"
	"github.com/jpl-au/xsearch/internal/mcp"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Tools: xsearch_search, xsearch_explain, xsearch_post, xsearch_stats,
xsearch_config_get, xsearch_import, xsearch_guide, xsearch_init, plus
any tools contributed by extensions.

Use --db to serve a specific database:
  xsearch serve --db shop    # serve xsearch-shop.db`,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	return mcp.Serve(cmd.DB())
}
