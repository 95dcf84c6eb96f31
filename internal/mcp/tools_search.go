// tools_search.go implements MCP tools for search and explain.
//
// Separated from tools_content.go because these tools go through the query
// runner and return statements alongside posts.
//
// Design: Search results are returned as JSON for easy LLM parsing. The
// request ID is included so a result can be matched to its audit log entry.

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/xsearch/internal/log"
	"github.com/jpl-au/xsearch/internal/service"
	"github.com/jpl-au/xsearch/internal/store"
)

// search handles xsearch_search tool calls.
func (h *handlers) search(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	phrase, err := req.RequireString("phrase")
	if err != nil {
		return mcp.NewToolResultError("phrase is required"), nil //nolint:nilerr
	}

	opts := service.SearchOptions{
		Admin: getBool(req, "admin", false),
		Limit: getInt(req, "limit", 0),
	}
	withContent := getBool(req, "content", false)

	res, err := h.svc.Search(ctx, phrase, opts)

	l := log.Event("mcp:search", "search").Author("mcp").Phrase(phrase)
	if res != nil {
		l.Request(res.Request).Count(len(res.Posts))
	}
	l.Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	posts := make([]store.PostJSON, len(res.Posts))
	for i := range res.Posts {
		posts[i] = res.Posts[i].ToJSON(withContent)
	}

	return jsonResult(map[string]any{
		"request":   res.Request,
		"rewritten": res.Rewritten,
		"posts":     posts,
	})
}

// explain handles xsearch_explain tool calls.
func (h *handlers) explain(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	phrase, err := req.RequireString("phrase")
	if err != nil {
		return mcp.NewToolResultError("phrase is required"), nil //nolint:nilerr
	}

	ex, err := h.svc.Explain(ctx, phrase)

	log.Event("mcp:explain", "explain").Author("mcp").Phrase(phrase).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]any{
		"post_types": ex.Scope.DocumentTypes,
		"meta_keys":  ex.Scope.MetaKeys,
		"taxonomies": ex.Scope.Taxonomies,
		"default":    ex.Default,
		"rewritten":  ex.Rewritten,
		"diff":       ex.Diff.Format(false),
	})
}
