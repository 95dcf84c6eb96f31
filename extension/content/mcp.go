// mcp.go implements the xsearch_add_post MCP tool.
//
// Design: The tool mirrors "xsearch post add", including metadata and terms,
// so an assistant can build a small catalogue and then search it.

package content

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/xsearch/extension"
	"github.com/jpl-au/xsearch/internal/log"
	"github.com/jpl-au/xsearch/internal/store"
)

func addPostTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("xsearch_add_post",
			mcp.WithDescription("Add a post, optionally with metadata and terms"),
			mcp.WithString("title", mcp.Required(), mcp.Description("Post title")),
			mcp.WithString("content", mcp.Description("Post content")),
			mcp.WithString("type", mcp.Description("Post type (default post)")),
			mcp.WithString("status", mcp.Description("Post status: publish (default) or draft")),
			mcp.WithObject("meta", mcp.Description("Metadata as an object of key to string value")),
			mcp.WithObject("terms", mcp.Description("Terms as an object of taxonomy to term name")),
		),
		Handler: handleAddPost,
	}
}

func handleAddPost(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title is required"), nil //nolint:nilerr
	}
	args := req.GetArguments()

	p := store.Post{
		Title:   title,
		Content: req.GetString("content", ""),
		Type:    req.GetString("type", ""),
		Status:  req.GetString("status", ""),
	}
	meta := stringPairs(args["meta"])
	terms := stringPairs(args["terms"])

	e := &Extension{svc: extCtx.Service()}
	id, err := addPost(ctx, e, p, meta, terms)

	log.Event("mcp:add_post", "add").Author("mcp").Post(id).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("added post #%d", id)), nil
}

// stringPairs flattens a JSON object into key/value pairs, skipping values
// that are not strings.
func stringPairs(v any) [][2]string {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make([][2]string, 0, len(m))
	for k, val := range m {
		if s, ok := val.(string); ok {
			out = append(out, [2]string{k, s})
		}
	}
	return out
}
