// Package config provides reading and writing of xsearch configuration.
// Supports both global (~/.xsearch/config.yaml) and local (.xsearch/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/jpl-au/xsearch/internal/store"
	"github.com/jpl-au/xsearch/internal/validate"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.xsearch/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is repository-specific config in .xsearch/config.yaml
	ScopeLocal
)

// Author represents the author metadata stored in the repository config.
type Author struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// Store holds content store options.
type Store struct {
	TablePrefix *string `yaml:"table_prefix,omitempty"`
}

// Search holds the overrides applied to the searchable lists. A nil list
// keeps the built-in default; a non-nil empty list switches that plane off.
type Search struct {
	PostTypes  *[]string `yaml:"post_types,omitempty"`
	MetaKeys   *[]string `yaml:"meta_keys,omitempty"`
	Taxonomies *[]string `yaml:"taxonomies,omitempty"`
	Limit      *int      `yaml:"limit,omitempty"`
}

// DefaultLimit is the result cap applied when search.limit is not configured.
const DefaultLimit = 10

// Validation bounds for configuration values.
const (
	MinLimit = 1
	MaxLimit = 1000
)

// Config contains configuration for xsearch.
type Config struct {
	Author Author `yaml:"author,omitempty"`
	Store  Store  `yaml:"store,omitempty"`
	Search Search `yaml:"search,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Store.TablePrefix != nil {
		if err := validate.TablePrefix(*c.Store.TablePrefix); err != nil {
			return fmt.Errorf("%w: store.table_prefix: %w", ErrInvalidValue, err)
		}
	}
	if c.Search.Limit != nil {
		v := *c.Search.Limit
		if v < MinLimit || v > MaxLimit {
			return fmt.Errorf("%w: search.limit must be between %d and %d, got %d",
				ErrInvalidValue, MinLimit, MaxLimit, v)
		}
	}
	for _, l := range lists {
		if p := l.field(c); p != nil {
			for _, item := range *p {
				if err := l.check(item); err != nil {
					return fmt.Errorf("%w: %s: %w", ErrInvalidValue, l.key, err)
				}
			}
		}
	}
	return nil
}

// TablePrefix returns the table prefix (defaults to "wp_").
func (c *Config) TablePrefix() string {
	if c.Store.TablePrefix == nil {
		return store.DefaultPrefix
	}
	return *c.Store.TablePrefix
}

// Limit returns the search result cap (defaults to 10).
func (c *Config) Limit() int {
	if c.Search.Limit == nil {
		return DefaultLimit
	}
	return *c.Search.Limit
}

// PostTypes returns the post type override and whether one is set.
func (c *Config) PostTypes() ([]string, bool) {
	return deref(c.Search.PostTypes)
}

// MetaKeys returns the meta key override and whether one is set.
func (c *Config) MetaKeys() ([]string, bool) {
	return deref(c.Search.MetaKeys)
}

// Taxonomies returns the taxonomy override and whether one is set.
func (c *Config) Taxonomies() ([]string, bool) {
	return deref(c.Search.Taxonomies)
}

func deref(p *[]string) ([]string, bool) {
	if p == nil {
		return nil, false
	}
	return slices.Clone(*p), true
}

// LocalPath returns the path to the local (repository) config file.
func LocalPath() string {
	return filepath.Join(".xsearch", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.xsearch/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".xsearch", "config.yaml")
}

// Path returns the local config path (for backwards compatibility).
func Path() string {
	return LocalPath()
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	// Check if local config exists
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	// Fall back to global
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	return loadFile(path, scope)
}

// loadFile reads and validates one config file. A missing file yields an
// empty config bound to path.
func loadFile(path string, scope Scope) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
