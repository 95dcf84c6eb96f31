// interfaces.go defines the storage abstraction for content persistence.
//
// Separated from the SQLite implementation to enable testing and potential
// alternative backends. The interfaces are intentionally granular (Reader,
// Writer, TaxonomyRegistry, etc.) to support interface segregation -
// consumers only depend on the capabilities they need. The search core, for
// example, only needs TaxonomyRegistry.

package store

import (
	"context"
	"database/sql"
)

// Reader defines read-only operations for retrieving posts and their data.
type Reader interface {
	// Post retrieves a single post by ID. Returns ErrNotFound if missing.
	Post(ctx context.Context, id int64) (*Post, error)

	// Meta returns every metadata row for a post in insertion order.
	Meta(ctx context.Context, postID int64) ([]MetaEntry, error)

	// Terms returns the terms attached to a post, ordered by taxonomy then name.
	Terms(ctx context.Context, postID int64) ([]Term, error)

	// Stats returns aggregate counts for dashboards and diagnostics.
	Stats(ctx context.Context) (*Stats, error)

	// Posts returns every post regardless of type or status, by ID.
	Posts(ctx context.Context) ([]Post, error)

	// Registrations returns the taxonomy registry grouped by taxonomy, in
	// registration order.
	Registrations(ctx context.Context) ([]Registration, error)
}

// Writer defines operations that modify content.
type Writer interface {
	// InsertPost stores a new post and returns its ID. Zero Date means now.
	InsertPost(ctx context.Context, p Post) (int64, error)

	// AddMeta appends a metadata row, keeping existing rows for the key.
	AddMeta(ctx context.Context, postID int64, key, value string) error

	// SetMeta replaces all rows for key with a single row.
	SetMeta(ctx context.Context, postID int64, key, value string) error

	// AssignTerm attaches a term to a post, creating the term on demand.
	AssignTerm(ctx context.Context, postID int64, taxonomy, name string) error
}

// TaxonomyRegistry records which taxonomies apply to which post types.
type TaxonomyRegistry interface {
	// RegisterTaxonomy attaches taxonomy to each post type. Re-registering
	// an existing pair is a no-op and keeps the original order.
	RegisterTaxonomy(ctx context.Context, taxonomy string, postTypes []string) error

	// ObjectTaxonomies returns the distinct taxonomies attached to any of
	// postTypes, in registration order.
	ObjectTaxonomies(ctx context.Context, postTypes []string) ([]string, error)
}

// Querier runs assembled listing queries.
type Querier interface {
	// QueryPosts executes a SELECT over the posts table and scans each row
	// as a Post. The statement must select posts.* (in schema column order).
	QueryPosts(ctx context.Context, query string, args ...any) ([]Post, error)

	// Tables returns the table names for the configured prefix.
	Tables() Tables
}

// Maintainer defines operations for database maintenance and lifecycle.
type Maintainer interface {
	// Close releases the database connection.
	Close() error

	// DB exposes the underlying connection for extensions needing custom tables.
	DB() *sql.DB

	// Checkpoint flushes WAL to the main database file.
	Checkpoint(ctx context.Context) error

	// Tx runs fn inside a transaction.
	Tx(ctx context.Context, fn func(tx *sql.Tx) error) error
}

// BatchWriter is the view of the store inside a Batch.
type BatchWriter interface {
	Writer
	TaxonomyRegistry
}

// Store defines the persistence interface for content.
type Store interface {
	Reader
	Writer
	TaxonomyRegistry
	Querier
	Maintainer

	// Batch runs fn inside one transaction. If fn returns an error, none
	// of its writes are kept.
	Batch(ctx context.Context, fn func(b BatchWriter) error) error
}
