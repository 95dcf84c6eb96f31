// Package mcp implements the Model Context Protocol server, exposing xsearch
// operations to LLMs. This enables AI assistants to search content, see what
// the rewrite does to a phrase, and inspect posts through a standardised
// protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jpl-au/xsearch/extension"
	"github.com/jpl-au/xsearch/internal/config"
	"github.com/jpl-au/xsearch/internal/content"
	"github.com/jpl-au/xsearch/internal/repo"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// ErrNotInitialised is returned by tools when the store has not been initialised.
// The LLM should call xsearch_init to create a store before using other tools.
const ErrNotInitialised = "store not initialised - call xsearch_init first"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other MCP clients.
//
// Design: The server starts successfully even if no store exists. This allows
// LLMs to call xsearch_init to create a store, rather than failing with an
// opaque error. Tools that require a store return ErrNotInitialised with
// clear guidance.
func Serve(db string) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	h := &handlers{db: db}

	// Try to open existing store; nil service is OK (uninitialised mode)
	svc, err := content.New(db)
	if err != nil && !errors.Is(err, repo.ErrNotInitialised) {
		slog.Error("failed to open store", "error", err)
		return err
	}
	if err == nil {
		h.svc = svc
		defer svc.Close()
	} else {
		slog.Info("xsearch not initialised, starting in uninitialised mode - call xsearch_init to create store")
	}

	s := newServer(h)

	slog.Info("xsearch MCP server ready", "version", Version, "transport", "stdio")

	err = server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// newServer builds the MCP server with every resource and tool registered.
func newServer(h *handlers) *server.MCPServer {
	s := server.NewMCPServer(
		"xsearch",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)
	registerResources(s, h)
	registerTools(s, h)
	registerExtensionTools(s, h, extension.All())
	return s
}

// handlers provides MCP request handlers with access to the content store.
// The svc field may be nil if the store has not been initialised.
type handlers struct {
	db  string           // database name for init
	svc *content.Service // nil if not initialised
}

// requireInit returns an error result if the store is not initialised.
// Tools that require a store should call this first.
func (h *handlers) requireInit() *mcp.CallToolResult {
	if h.svc == nil {
		return mcp.NewToolResultError(ErrNotInitialised)
	}
	return nil
}

// registerResources adds URI-based resource access for direct post reading.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"xsearch://posts/{id}",
			"Post",
			mcp.WithTemplateDescription("Read a post with its metadata and terms"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		h.readPost,
	)
}

// registerTools exposes xsearch operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	// Init - works without existing store
	s.AddTool(
		mcp.NewTool("xsearch_init",
			mcp.WithDescription("Initialise a new xsearch content store. Call this first if other tools return 'store not initialised'."),
			mcp.WithBoolean("local", mcp.Description("If true, database is gitignored (not committed to version control)")),
		),
		h.initStore,
	)

	// Search
	s.AddTool(
		mcp.NewTool("xsearch_search",
			mcp.WithDescription("Search published posts. Matches title and content, plus configured meta values and taxonomy terms"),
			mcp.WithString("phrase", mcp.Required(), mcp.Description("Phrase to search for (matched literally)")),
			mcp.WithNumber("limit", mcp.Description("Maximum posts to return (default: search.limit)")),
			mcp.WithBoolean("admin", mcp.Description("Run as an administrative search: title and content only, all post types")),
			mcp.WithBoolean("content", mcp.Description("Include post content in results")),
		),
		h.search,
	)

	// Explain
	s.AddTool(
		mcp.NewTool("xsearch_explain",
			mcp.WithDescription("Show the SQL a search would run with and without the rewrite, and the lists it searches"),
			mcp.WithString("phrase", mcp.Required(), mcp.Description("Phrase to explain")),
		),
		h.explain,
	)

	// Post
	s.AddTool(
		mcp.NewTool("xsearch_post",
			mcp.WithDescription("Read a post with its metadata and terms"),
			mcp.WithNumber("id", mcp.Required(), mcp.Description("Post ID")),
		),
		h.post,
	)

	// Stats
	s.AddTool(
		mcp.NewTool("xsearch_stats",
			mcp.WithDescription("Count posts, metadata, terms and taxonomies"),
		),
		h.stats,
	)

	// Config Get
	s.AddTool(
		mcp.NewTool("xsearch_config_get",
			mcp.WithDescription("Get a configuration value"),
			mcp.WithString("key", mcp.Description("Config key (e.g. search.meta_keys, search.taxonomies) or empty for all")),
		),
		h.configGet,
	)

	// Import
	s.AddTool(
		mcp.NewTool("xsearch_import",
			mcp.WithDescription("Import a YAML seed file of taxonomies and posts"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Filesystem path of the seed file")),
			mcp.WithBoolean("dry_run", mcp.Description("Show what would be imported without importing")),
		),
		h.importSeed,
	)

	// Guide
	s.AddTool(
		mcp.NewTool("xsearch_guide",
			mcp.WithDescription("Get help/guide content for xsearch commands"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g., 'search', 'explain', 'config') or empty for index")),
		),
		h.getGuide,
	)
}

// registerExtensionTools adds the tools contributed by extensions. Each
// handler is wrapped so it sees the store opened (or created) by this server.
func registerExtensionTools(s *server.MCPServer, h *handlers, exts []extension.Extension) {
	for _, ext := range exts {
		for _, t := range ext.MCPTools() {
			s.AddTool(t.Tool, h.extensionHandler(t.Handler))
		}
	}
}

func (h *handlers) extensionHandler(fn extension.MCPHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if r := h.requireInit(); r != nil {
			return r, nil
		}
		cfg, err := config.Load()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return fn(ctx, extension.NewContext(h.svc, h.svc.DB(), cfg), req)
	}
}

// readPost handles xsearch://posts/{id} resource requests.
func (h *handlers) readPost(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return h.readPostResource(ctx, req.Params.URI)
}
