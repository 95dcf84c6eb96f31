// Package content provides the search and content operations backed by a
// Store implementation. It exposes a `Service` which wraps a `store.Store`,
// wires the search rewrite into the query runner, and offers convenience
// methods for the CLI, extensions and the MCP server.
package content

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jpl-au/xsearch/internal/config"
	"github.com/jpl-au/xsearch/internal/log"
	"github.com/jpl-au/xsearch/internal/query"
	"github.com/jpl-au/xsearch/internal/repo"
	"github.com/jpl-au/xsearch/internal/search"
	"github.com/jpl-au/xsearch/internal/service"
	"github.com/jpl-au/xsearch/internal/store"
)

var _ service.Service = (*Service)(nil)

// Service provides search and content operations backed by a Store.
type Service struct {
	store    *store.SQLiteStore
	dbPath   string
	limit    int
	resolver *search.Resolver
	runner   *query.Runner
}

// New creates a new Service, discovering the DB by walking up the directory tree.
// The db parameter specifies which database to use (empty for default).
// Returns repo.ErrNotInitialised if no matching database is found.
func New(db string) (*Service, error) {
	dbPath, err := repo.Discover(db)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err // config.Load provides detailed, actionable error messages
	}
	return Open(dbPath, cfg)
}

// Open creates a Service over the database at dbPath using cfg. A nil cfg
// uses the built-in defaults.
func Open(dbPath string, cfg *config.Config) (*Service, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}

	s, err := store.Open(dbPath, cfg.TablePrefix())
	if err != nil {
		return nil, err
	}

	svc := &Service{
		store:  s,
		dbPath: dbPath,
		limit:  cfg.Limit(),
	}
	svc.wire(cfg)
	return svc, nil
}

// wire connects the rewrite to the runner. The resolver reads the
// taxonomy registry through the same store the runner queries.
func (s *Service) wire(cfg *config.Config) {
	s.resolver = search.NewResolver(search.NewDiscoverer(s.store), search.FromConfig(cfg))
	gate := search.NewGate(s.resolver, s.store.Tables())

	s.runner = query.NewRunner(s.store)
	s.runner.OnPrepare(gate.Prepare)
}

// Init initialises a new xsearch store.
// If dir is empty, uses current directory; otherwise uses dir.
// The db parameter specifies which database to create (empty for default).
// If local is true, the database is added to .gitignore (not committed).
// prefix names the content tables (empty uses store.DefaultPrefix).
//
// Note: Init does not write config. A non-default prefix must be recorded
// as store.table_prefix for later opens to find the tables; "xsearch init
// --prefix" does that after calling Init.
func Init(force bool, db string, local bool, dir, prefix string) error {
	return repo.Init(force, db, local, dir, prefix)
}

// Close checkpoints the WAL and closes the database connection.
func (s *Service) Close() error {
	if err := s.store.Checkpoint(context.Background()); err != nil {
		log.Event("service:close", "checkpoint").
			Detail("error", err.Error()).
			Write(err)
	}
	return s.store.Close()
}

// DB returns the underlying database connection for extensions.
func (s *Service) DB() *sql.DB {
	return s.store.DB()
}

// DBPath returns the path to the database file.
func (s *Service) DBPath() string {
	return s.dbPath
}

// Tables returns the content table names.
func (s *Service) Tables() store.Tables {
	return s.store.Tables()
}

// NewIn opens the database named db inside dir/.xsearch, skipping
// discovery. An empty dir falls back to New.
func NewIn(dir, db string) (*Service, error) {
	if dir == "" {
		return New(db)
	}
	dbPath := filepath.Join(dir, repo.Dir, repo.DBFileName(db))
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("%w: %s", repo.ErrNotInitialised, dbPath)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return Open(dbPath, cfg)
}
