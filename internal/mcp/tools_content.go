// tools_content.go implements MCP tools for reading posts and counts.

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/xsearch/internal/log"
)

// post handles xsearch_post tool calls.
func (h *handlers) post(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	id := int64(getInt(req, "id", 0))
	if id <= 0 {
		return mcp.NewToolResultError("id is required"), nil
	}

	v, err := h.loadPost(ctx, id)

	log.Event("mcp:post", "read").Author("mcp").Post(id).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(v)
}

// stats handles xsearch_stats tool calls.
func (h *handlers) stats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // req unused
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	st, err := h.svc.Stats(ctx)

	log.Event("mcp:stats", "read").Author("mcp").Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(st)
}
