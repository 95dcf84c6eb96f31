// context.go defines what an extension sees of an open xsearch store.
//
// Separated from extension.go because extensions register before any store
// exists. The MCP server builds a Context per tool call from the store it
// has open; CLI commands reach the service through cmd instead.

package extension

import (
	"database/sql"

	"github.com/jpl-au/xsearch/internal/config"
	"github.com/jpl-au/xsearch/internal/service"
)

// Context gives an extension's MCP handler the open store: the service for
// posts and search, its connection and the config it was opened with.
type Context interface {
	// Service returns the content service for search and content operations.
	Service() service.Service

	// DB is the connection behind the post, meta and taxonomy tables.
	DB() *sql.DB

	// Config is the merged global and local config, including the search
	// lists the rewrite resolves from.
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	svc service.Service
	db  *sql.DB
	cfg *config.Config
}

// NewContext creates a new extension context.
func NewContext(svc service.Service, db *sql.DB, cfg *config.Config) Context {
	return &extContext{
		svc: svc,
		db:  db,
		cfg: cfg,
	}
}

// Service returns the content service.
func (c *extContext) Service() service.Service {
	return c.svc
}

// DB returns the store's connection.
func (c *extContext) DB() *sql.DB {
	return c.db
}

// Config returns the merged config.
func (c *extContext) Config() *config.Config {
	return c.cfg
}
