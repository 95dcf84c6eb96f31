// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML structure
// and loading, while this file handles the MCP and CLI interface where config
// is accessed by string keys (e.g., "search.meta_keys").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to empty". For the search lists this
// matters: an unset list keeps the built-in default, an empty list turns the
// plane off. Lists are written as comma-separated values; the single value
// "-" removes the override.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/xsearch/internal/validate"
)

// Unset is the value that clears an optional setting back to its default.
const Unset = "-"

// listKey describes one comma-separated list setting.
type listKey struct {
	key   string
	field func(c *Config) *[]string
	set   func(c *Config, v *[]string)
	check func(string) error
	def   []string
}

var lists = []listKey{
	{
		key:   "search.post_types",
		field: func(c *Config) *[]string { return c.Search.PostTypes },
		set:   func(c *Config, v *[]string) { c.Search.PostTypes = v },
		check: validate.PostType,
		def:   []string{"post", "page"},
	},
	{
		key:   "search.meta_keys",
		field: func(c *Config) *[]string { return c.Search.MetaKeys },
		set:   func(c *Config, v *[]string) { c.Search.MetaKeys = v },
		check: validate.MetaKey,
	},
	{
		key:   "search.taxonomies",
		field: func(c *Config) *[]string { return c.Search.Taxonomies },
		set:   func(c *Config, v *[]string) { c.Search.Taxonomies = v },
		check: validate.Taxonomy,
	},
}

func findList(key string) (listKey, bool) {
	for _, l := range lists {
		if l.key == key {
			return l, true
		}
	}
	return listKey{}, false
}

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"author.name", "author.email",
		"store.table_prefix",
		"search.post_types", "search.meta_keys", "search.taxonomies", "search.limit",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string. Unset lists
// report their static default; search.taxonomies has none because its
// default is discovered from the store.
func (c *Config) Get(key string) (string, error) {
	if l, ok := findList(key); ok {
		if p := l.field(c); p != nil {
			return strings.Join(*p, ","), nil
		}
		return strings.Join(l.def, ","), nil
	}

	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "author.email":
		return c.Author.Email, nil
	case "store.table_prefix":
		return c.TablePrefix(), nil
	case "search.limit":
		return strconv.Itoa(c.Limit()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	if l, ok := findList(key); ok {
		if value == Unset {
			l.set(c, nil)
			return nil
		}
		items := SplitList(value)
		for _, item := range items {
			if err := l.check(item); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrInvalidValue, key, err)
			}
		}
		l.set(c, &items)
		return nil
	}

	switch key {
	case "author.name":
		c.Author.Name = value
	case "author.email":
		c.Author.Email = value
	case "store.table_prefix":
		if value == Unset {
			c.Store.TablePrefix = nil
			return nil
		}
		if err := validate.TablePrefix(value); err != nil {
			return fmt.Errorf("%w: store.table_prefix: %w", ErrInvalidValue, err)
		}
		c.Store.TablePrefix = &value
	case "search.limit":
		if value == Unset {
			c.Search.Limit = nil
			return nil
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < MinLimit || n > MaxLimit {
			return fmt.Errorf("%w: search.limit must be an integer between %d and %d",
				ErrInvalidValue, MinLimit, MaxLimit)
		}
		c.Search.Limit = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	out := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		v, _ := c.Get(k)
		out[k] = v
	}
	return out
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	if l, ok := findList(key); ok {
		return l.field(c) != nil
	}
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "author.email":
		return c.Author.Email != ""
	case "store.table_prefix":
		return c.Store.TablePrefix != nil
	case "search.limit":
		return c.Search.Limit != nil
	default:
		return false
	}
}

// SplitList parses a comma-separated list, trimming spaces and dropping
// empty items. An empty string yields an empty, non-nil list.
func SplitList(value string) []string {
	items := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
