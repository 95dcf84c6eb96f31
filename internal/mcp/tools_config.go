// tools_config.go implements the MCP tool for reading configuration.
//
// Design: The tool is read-only. The search.* keys change what every
// search matches, so they are changed from the CLI where the user sees
// the result, and the running server picks them up on restart.

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/xsearch/internal/config"
	"github.com/jpl-au/xsearch/internal/log"
)

// configGet handles xsearch_config_get tool calls.
func (h *handlers) configGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	cfg, err := config.Load()
	if err != nil {
		log.Event("mcp:config_get", "get").Author("mcp").Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	key := getString(req, "key", "")
	if key == "" {
		log.Event("mcp:config_get", "list").Author("mcp").Write(nil)
		return jsonResult(cfg.All())
	}

	v, err := cfg.Get(key)

	log.Event("mcp:config_get", "get").Author("mcp").Detail("key", key).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]string{key: v})
}
