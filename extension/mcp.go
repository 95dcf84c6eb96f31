// mcp.go defines the tool type extensions hand to "xsearch serve".
//
// Separated from extension.go because only some extensions add MCP tools.
// The content extension contributes xsearch_add_post; core and search
// expose their operations through the built-in tools in internal/mcp.
//
// Design: the server wraps each Handler so it only runs once a store is
// open, and passes a Context built over that store.

package extension

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool pairs an MCP tool definition with its handler.
type MCPTool struct {
	Tool    mcp.Tool
	Handler MCPHandler
}

// MCPHandler answers one tool call against the store in extCtx.
type MCPHandler func(ctx context.Context, extCtx Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
