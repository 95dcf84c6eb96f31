// tools_import.go implements the MCP tool for importing seed files.
//
// Import brings a YAML seed of taxonomies and posts into the store. It
// reads from the filesystem, so the path is resolved on the server side.
//
// Design: Supports dry-run mode for LLMs to preview changes before committing.

package mcp

import (
	"bytes"
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/xsearch/internal/importer"
	"github.com/jpl-au/xsearch/internal/log"
)

// importSeed handles xsearch_import tool calls.
func (h *handlers) importSeed(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	opts := importer.Options{DryRun: getBool(req, "dry_run", false)}

	var buf bytes.Buffer
	result, err := importer.RunFile(ctx, &buf, h.svc, path, opts)

	log.Event("mcp:import", "import").
		Author("mcp").
		Count(result.Posts).
		Detail("source", path).
		Detail("dry_run", opts.DryRun).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]any{
		"taxonomies": result.Taxonomies,
		"posts":      result.Posts,
		"meta":       result.Meta,
		"terms":      result.Terms,
		"ids":        result.IDs,
		"dry_run":    opts.DryRun,
	})
}
