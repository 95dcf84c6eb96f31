// tools_init.go implements the MCP tool for initialising a new store.
//
// This tool works without an existing store, allowing LLMs to bootstrap
// a new xsearch repository. Other tools require initialisation first.
//
// Design: The table prefix comes from store.table_prefix. A store with a
// custom prefix is created from the CLI, which also records the prefix in
// the local config.

package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/xsearch/internal/config"
	"github.com/jpl-au/xsearch/internal/content"
	"github.com/jpl-au/xsearch/internal/log"
)

// initStore handles xsearch_init tool calls.
func (h *handlers) initStore(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	if h.svc != nil {
		return mcp.NewToolResultError("store already initialised"), nil
	}

	local := getBool(req, "local", false)

	cfg, err := config.Load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	err = content.Init(false, h.db, local, "", cfg.TablePrefix())

	log.Event("mcp:init", "init").Author("mcp").Detail("local", local).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Open the newly created store
	svc, err := content.New(h.db)
	if err != nil {
		return mcp.NewToolResultError("init succeeded but failed to open store: " + err.Error()), nil
	}
	h.svc = svc

	slog.Info("store initialised", "local", local)

	if local {
		return mcp.NewToolResultText("store initialised (local - gitignored)"), nil
	}
	return mcp.NewToolResultText("store initialised"), nil
}
