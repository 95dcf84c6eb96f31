// schema.go defines the SQLite database schema and provides schema execution helpers.
//
// Schema files are embedded from the sql/ directory and executed in alphabetical
// order (hence the numeric prefixes like 001_, 002_). Table names in the files
// carry a {prefix} placeholder that is replaced with the configured table
// prefix before execution, so one schema serves "wp_posts" and "posts" alike.
//
// Extensions can create their own embedded schemas:
//
//	//go:embed sql/*.sql
//	var extensionSchemas embed.FS
//
//	func (e *Extension) Init(ctx extension.Context) error {
//	    return store.ExecEmbedded(ctx.DB(), extensionSchemas, "sql", ctx.Service().Tables().Prefix)
//	}

package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed sql/*.sql
var schemas embed.FS

// ErrNotFound indicates the requested post or term does not exist.
var ErrNotFound = errors.New("not found")

// prefixPlaceholder is substituted with the table prefix in schema files.
const prefixPlaceholder = "{prefix}"

// ExecEmbedded executes all .sql files from an embedded filesystem in alphabetical order.
// The dir parameter specifies the directory within the embed.FS to read from.
// Every {prefix} token is replaced with prefix before execution.
//
// Each .sql file should use IF NOT EXISTS clauses for idempotency.
func ExecEmbedded(db *sql.DB, fsys embed.FS, dir, prefix string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read schema directory: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := dir + "/" + entry.Name()
		data, err := fsys.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		stmt := strings.ReplaceAll(string(data), prefixPlaceholder, prefix)
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// execSchema executes the embedded core schema files.
func execSchema(db *sql.DB, prefix string) error {
	return ExecEmbedded(db, schemas, "sql", prefix)
}
