// Package repo provides content repository initialisation and discovery.
//
// An xsearch repository is a .xsearch directory containing one or more
// SQLite content databases. This package handles:
//   - Initialising new repositories (creating .xsearch/ and the schema)
//   - Discovering existing repositories by walking up the directory tree
//   - Managing multiple named databases (xsearch.db, xsearch-shop.db, etc.)
//   - Controlling git visibility via .gitignore (local vs shared databases)
//
// Discovery mirrors git: starting from the current directory, walk up until
// a .xsearch directory containing the target database is found, or the
// filesystem root is reached.
package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jpl-au/xsearch/internal/store"
)

const (
	// Dir is the directory name for the repository.
	Dir = ".xsearch"
	// DBFile is the default database filename.
	DBFile = "xsearch.db"
	// dbPrefix starts every named database filename.
	dbPrefix = "xsearch-"
)

// DBFileName returns the database filename for a given name.
// Empty name returns the default "xsearch.db".
// A name like "shop" returns "xsearch-shop.db".
// A name already ending in ".db" is returned as-is.
func DBFileName(name string) string {
	if name == "" {
		return DBFile
	}
	if strings.HasSuffix(name, ".db") {
		return name
	}
	return dbPrefix + name + ".db"
}

// ErrNotInitialised is returned when no repository is found.
var ErrNotInitialised = errors.New("xsearch not initialised (run 'xsearch init')")

// Init initialises a new repository.
//
// Init only creates the database and its tables. Settings live in config
// (global ~/.xsearch/config.yaml or local .xsearch/config.yaml), and the
// table prefix is the one setting Init needs, so the caller passes it in.
//
// Parameters:
//   - force: reinitialise existing repository
//   - db: database name (empty for default "xsearch.db")
//   - local: add database to .gitignore (not committed)
//   - dir: target directory (empty for current directory)
//   - prefix: table prefix for the content tables (empty uses store.DefaultPrefix)
func Init(force bool, db string, local bool, dir, prefix string) error {
	if dir == "" {
		dir = "."
	}
	if prefix == "" {
		prefix = store.DefaultPrefix
	}
	repoDir := filepath.Join(dir, Dir)
	dbPath := filepath.Join(repoDir, DBFileName(db))

	// Check if already exists
	if _, err := os.Stat(dbPath); err == nil {
		if !force {
			return fmt.Errorf("database %s already exists (use --force to reinitialise)", DBFileName(db))
		}
		// Remove existing DB for reinit
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("remove database: %w", err)
		}
	}

	// Create directory
	if err := os.MkdirAll(repoDir, 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	// Create and initialise DB
	s, err := store.Open(dbPath, prefix)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	if err := s.Init(); err != nil {
		return fmt.Errorf("init store: %w", err)
	}

	// Create .gitignore if it doesn't exist.
	// Only create on first init - subsequent inits (for additional databases)
	// should not overwrite and lose custom entries like local database markers.
	gitignore := filepath.Join(repoDir, ".gitignore")
	if _, err := os.Stat(gitignore); os.IsNotExist(err) {
		s := `# xsearch - ignore WAL side files and local config
# Database files (*.db) hold the content and may be committed
*.db-wal
*.db-shm
config.yaml
`
		if err := os.WriteFile(gitignore, []byte(s), 0644); err != nil {
			return fmt.Errorf("write gitignore: %w", err)
		}
	}

	// --local only controls whether the database file is committed.
	if local {
		if err := IgnoreDB(db, repoDir); err != nil {
			return fmt.Errorf("ignore database: %w", err)
		}
	}

	return nil
}

// Discover walks up the directory tree looking for a .xsearch database.
// The db parameter specifies which database to find (empty for default).
// Returns the full path to the database if found.
func Discover(db string) (string, error) {
	dbFile := DBFileName(db)
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		dbPath := filepath.Join(dir, Dir, dbFile)
		if _, err := os.Stat(dbPath); err == nil {
			return dbPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotInitialised
		}
		dir = parent
	}
}

// DiscoverDir finds the .xsearch directory, walking up the tree.
// Returns the full path to the .xsearch directory.
func DiscoverDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		repoDir := filepath.Join(dir, Dir)
		if info, err := os.Stat(repoDir); err == nil && info.IsDir() {
			return repoDir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotInitialised
		}
		dir = parent
	}
}

// DBInfo holds database metadata.
type DBInfo struct {
	Name  string // Short name (empty for default, "shop" for xsearch-shop.db)
	File  string // Filename (xsearch.db, xsearch-shop.db)
	Path  string // Full path
	Local bool   // True if gitignored
}

// ListDBs returns all databases in the .xsearch directory with their status.
// If dir is empty, discovers the directory from the current working directory.
func ListDBs(dir string) ([]DBInfo, error) {
	if dir == "" {
		var err error
		dir, err = DiscoverDir()
		if err != nil {
			return nil, fmt.Errorf("discover %s directory: %w", Dir, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s directory: %w", Dir, err)
	}

	var dbs []DBInfo
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".db") {
			continue
		}

		// Extract short name from filename
		name := ""
		if e.Name() == DBFile {
			name = ""
		} else if strings.HasPrefix(e.Name(), dbPrefix) {
			name = strings.TrimSuffix(strings.TrimPrefix(e.Name(), dbPrefix), ".db")
		} else {
			continue
		}

		ignored, err := IsIgnored(name, dir)
		if err != nil {
			// If we can't determine ignored status, default to false (shared).
			// This can happen if .gitignore is malformed or unreadable.
			ignored = false
		}
		dbs = append(dbs, DBInfo{
			Name:  name,
			File:  e.Name(),
			Path:  filepath.Join(dir, e.Name()),
			Local: ignored,
		})
	}

	return dbs, nil
}
