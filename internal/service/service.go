// Package service defines the shared interface for content and search
// operations. Commands, extensions and the MCP server depend on this
// interface rather than on the content package, enabling testing with
// fakes and keeping the search wiring in one place.
package service

import (
	"context"
	"database/sql"

	"github.com/jpl-au/xsearch/internal/diff"
	"github.com/jpl-au/xsearch/internal/query"
	"github.com/jpl-au/xsearch/internal/search"
	"github.com/jpl-au/xsearch/internal/store"
)

// SearchOptions configures one search.
type SearchOptions struct {
	Admin     bool     // Run as an administrative request; the rewrite is skipped
	Limit     int      // Zero uses the configured search.limit
	PostTypes []string // Initial post types; narrowed by the rewrite when it applies
}

// Result is the outcome of one search.
type Result struct {
	Request   string          // Request ID, shared with audit log entries
	Phrase    string          // The phrase searched for
	Rewritten bool            // True when the rewrite was applied to the main query
	Posts     []store.Post    // Matching posts, newest first
	Statement query.Statement // The statement that ran
}

// Explanation shows what the rewrite does to a phrase's query.
type Explanation struct {
	Scope     search.Scope // Lists the rewrite resolved for this phrase
	Default   string       // Statement without the rewrite
	Rewritten string       // Statement with the rewrite
	Diff      diff.Result  // Clause-level diff of the two
}

// Service defines all content and search operations.
//
// Extensions obtain a Service from their extension.Context. Always call
// Close() when done with one you created yourself (use defer).
//
// Example:
//
//	svc, err := content.New("")
//	if err != nil {
//	    return err
//	}
//	defer svc.Close()
//	res, err := svc.Search(ctx, "wireless mouse", service.SearchOptions{})
type Service interface {
	// Close checkpoints the WAL and releases database resources.
	Close() error

	// Search runs the listing query for phrase. Unless opts.Admin is set,
	// the query also matches configured meta values and taxonomy terms.
	Search(ctx context.Context, phrase string, opts SearchOptions) (*Result, error)

	// Explain builds the default and rewritten statements for phrase
	// without running either.
	Explain(ctx context.Context, phrase string) (*Explanation, error)

	// AddPost stores a new post and returns its ID.
	AddPost(ctx context.Context, p store.Post) (int64, error)

	// Post returns one post. Returns store.ErrNotFound if missing.
	Post(ctx context.Context, id int64) (*store.Post, error)

	// Meta returns every metadata row for a post.
	Meta(ctx context.Context, id int64) ([]store.MetaEntry, error)

	// Terms returns the terms attached to a post.
	Terms(ctx context.Context, id int64) ([]store.Term, error)

	// SetMeta replaces the rows for key with a single value.
	SetMeta(ctx context.Context, id int64, key, value string) error

	// AddMeta appends a row for key, keeping existing rows.
	AddMeta(ctx context.Context, id int64, key, value string) error

	// RegisterTaxonomy attaches a taxonomy to post types.
	RegisterTaxonomy(ctx context.Context, taxonomy string, postTypes []string) error

	// AssignTerm attaches a term to a post, creating it on demand.
	AssignTerm(ctx context.Context, id int64, taxonomy, name string) error

	// Batch runs fn in one transaction; see store.Store.Batch.
	Batch(ctx context.Context, fn func(b store.BatchWriter) error) error

	// Stats returns aggregate counts.
	Stats(ctx context.Context) (*store.Stats, error)

	// Posts returns every post, by ID.
	Posts(ctx context.Context) ([]store.Post, error)

	// Registrations returns the taxonomy registry.
	Registrations(ctx context.Context) ([]store.Registration, error)

	// Tables returns the content table names for the configured prefix.
	Tables() store.Tables

	// DB returns the underlying SQLite connection.
	// Extensions use this to create custom tables.
	// Do not close this connection directly; use Service.Close().
	DB() *sql.DB

	// Checkpoint flushes the WAL to the main database file.
	Checkpoint(ctx context.Context) error
}
