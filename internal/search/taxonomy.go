// taxonomy.go implements default taxonomy discovery.

package search

import (
	"context"
	"fmt"

	"github.com/jpl-au/xsearch/internal/validate"
)

// Registry reports which taxonomies are attached to a set of post types.
// store.SQLiteStore satisfies it.
type Registry interface {
	ObjectTaxonomies(ctx context.Context, postTypes []string) ([]string, error)
}

// excluded taxonomies never take part in search: they describe
// presentation (post formats, menus, link categories), not content.
var excluded = map[string]bool{
	"post_format":   true,
	"nav_menu":      true,
	"link_category": true,
}

// Excluded reports whether taxonomy is in the fixed exclusion set.
func Excluded(taxonomy string) bool {
	return excluded[taxonomy]
}

// Discoverer derives the default searchable taxonomies from the registry.
type Discoverer struct {
	registry Registry
}

// NewDiscoverer returns a discoverer backed by r.
func NewDiscoverer(r Registry) *Discoverer {
	return &Discoverer{registry: r}
}

// Discover returns the taxonomies attached to any of documentTypes, in
// registry order, without the excluded set. Entries that are not valid
// taxonomy identifiers and repeats are skipped.
func (d *Discoverer) Discover(ctx context.Context, documentTypes []string) ([]string, error) {
	if d.registry == nil || len(documentTypes) == 0 {
		return nil, nil
	}

	all, err := d.registry.ObjectTaxonomies(ctx, documentTypes)
	if err != nil {
		return nil, fmt.Errorf("discover taxonomies: %w", err)
	}

	seen := make(map[string]bool, len(all))
	out := make([]string, 0, len(all))
	for _, t := range all {
		if excluded[t] || seen[t] || validate.Taxonomy(t) != nil {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out, nil
}
