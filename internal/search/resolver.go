// resolver.go implements the searchable-list configuration.
//
// Separated from taxonomy.go because the resolver owns the override
// points while the discoverer only knows how to read the registry. Each
// list has its own override, applied to the computed default.

package search

import (
	"context"
	"slices"

	"github.com/jpl-au/xsearch/internal/config"
	"github.com/jpl-au/xsearch/internal/log"
)

// ListFilter maps a computed default list to the final list.
type ListFilter func(defaults []string) []string

// Replace returns a ListFilter that ignores the default and yields list.
func Replace(list []string) ListFilter {
	fixed := slices.Clone(list)
	return func([]string) []string {
		return slices.Clone(fixed)
	}
}

// Overrides holds one optional filter per searchable list. A nil filter
// keeps the default.
type Overrides struct {
	DocumentTypes ListFilter
	MetaKeys      ListFilter
	Taxonomies    ListFilter
}

// FromConfig builds overrides from the search.* config keys. Only keys that
// are set produce a filter.
func FromConfig(cfg *config.Config) Overrides {
	var o Overrides
	if cfg == nil {
		return o
	}
	if v, ok := cfg.PostTypes(); ok {
		o.DocumentTypes = Replace(v)
	}
	if v, ok := cfg.MetaKeys(); ok {
		o.MetaKeys = Replace(v)
	}
	if v, ok := cfg.Taxonomies(); ok {
		o.Taxonomies = Replace(v)
	}
	return o
}

// DefaultDocumentTypes returns the built-in searchable post types.
func DefaultDocumentTypes() []string {
	return []string{"post", "page"}
}

// Resolver supplies the searchable post types, meta keys and taxonomies.
type Resolver struct {
	discoverer *Discoverer
	overrides  Overrides
}

// NewResolver returns a resolver that discovers taxonomies through d.
// A nil discoverer yields an empty default taxonomy set.
func NewResolver(d *Discoverer, o Overrides) *Resolver {
	return &Resolver{discoverer: d, overrides: o}
}

// DocumentTypes returns the searchable post types.
func (r *Resolver) DocumentTypes() []string {
	return apply(r.overrides.DocumentTypes, DefaultDocumentTypes())
}

// MetaKeys returns the searchable meta keys. The default is empty; every
// key added here is matched with an unindexed LIKE scan over postmeta.
func (r *Resolver) MetaKeys() []string {
	return apply(r.overrides.MetaKeys, nil)
}

// Taxonomies returns the searchable taxonomies: those discovered for the
// searchable post types, then passed through the override. A registry
// failure is logged and treated as no taxonomies.
func (r *Resolver) Taxonomies(ctx context.Context) []string {
	var found []string
	if r.discoverer != nil {
		types := r.DocumentTypes()
		var err error
		found, err = r.discoverer.Discover(ctx, types)
		if err != nil {
			log.Event("search:taxonomy", "discover").
				Detail("post_types", types).
				Write(err)
			found = nil
		}
	}
	return apply(r.overrides.Taxonomies, found)
}

func apply(f ListFilter, defaults []string) []string {
	if f == nil {
		return defaults
	}
	return f(slices.Clone(defaults))
}
