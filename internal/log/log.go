// Package log provides centralised audit logging for xsearch operations.
// Logs are stored in ~/.xsearch/log/xsearch-log.db and track CLI commands,
// MCP tool invocations and search rewrites across projects.
//
// # Fluent API
//
// Build an entry with Event, chain the fields that apply, then Write:
//
//	log.Event("search:search", "search").
//		Author(cmd.Author()).
//		Request(req.ID).
//		Phrase(phrase).
//		Count(len(posts)).
//		Write(err)
//
//	log.Event("content:meta", "set").
//		Author(cmd.Author()).
//		Post(id).
//		Detail("key", key).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands, "mcp:{tool}" for MCP tools and "search:{component}" for the
// rewriter itself.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source  string // e.g., "search:search", "mcp:xsearch_search"
	Author  string // who performed the action
	Action  string // verb: search, explain, insert, set, register, etc.
	Request string // request ID the entry belongs to
	Phrase  string // search phrase, if any
	Post    int64  // post the action targeted, if any

	// Output
	Count int // rows returned or written

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "search:search", "content:post")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:xsearch_search")
//   - The rewriter: "search:taxonomy", "search:gate"
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Author sets who performed the operation.
//
// For CLI commands, use cmd.Author() which returns the configured author.
// For MCP tools, use "mcp" as the author.
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Request ties the entry to one query request.
func (b *Builder) Request(id string) *Builder {
	b.entry.Request = id
	return b
}

// Phrase sets the search phrase.
func (b *Builder) Phrase(phrase string) *Builder {
	b.entry.Phrase = phrase
	return b
}

// Post sets the post this operation affects.
func (b *Builder) Post(id int64) *Builder {
	b.entry.Post = id
	return b
}

// Count sets the number of rows the operation returned or wrote (output).
//
// Example:
//
//	l.Count(len(posts)) // After confirming success
func (b *Builder) Count(n int) *Builder {
	b.entry.Count = n
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// meta keys, taxonomies, dry-run flags, etc. Can be called multiple
// times to add multiple details.
//
// Example:
//
//	log.Event("search:taxonomy", "discover").
//		Detail("post_types", types).
//		Write(err)
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute path to the .xsearch directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
