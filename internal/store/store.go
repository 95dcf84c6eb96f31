// Package store defines content persistence types and the Store interface.
// Implementations handle the actual database operations while consumers
// depend only on this interface, enabling testing and alternative backends.
//
// The layout mirrors the classic blog schema: a posts table, a key-value
// postmeta table, and a three-table taxonomy chain (terms, term_taxonomy,
// term_relationships). Search extensions join against these tables, so
// the names are exposed through Tables.
package store

import (
	"encoding/json"
	"time"
)

// DefaultPrefix is the table prefix used when none is configured.
const DefaultPrefix = "wp_"

// Post status values.
const (
	StatusPublish = "publish"
	StatusDraft   = "draft"
)

// Tables holds the fully qualified table names for a prefix. Query builders
// use these instead of hard-coding names so the prefix stays configurable.
type Tables struct {
	Prefix            string
	Posts             string
	PostMeta          string
	Terms             string
	TermTaxonomy      string
	TermRelationships string
	TaxonomyTypes     string
}

// NewTables returns the table names for prefix.
func NewTables(prefix string) Tables {
	return Tables{
		Prefix:            prefix,
		Posts:             prefix + "posts",
		PostMeta:          prefix + "postmeta",
		Terms:             prefix + "terms",
		TermTaxonomy:      prefix + "term_taxonomy",
		TermRelationships: prefix + "term_relationships",
		TaxonomyTypes:     prefix + "taxonomy_types",
	}
}

// Post is a single content item.
type Post struct {
	ID      int64  // Database primary key
	Title   string // post_title
	Content string // post_content
	Type    string // post_type (e.g., "post", "page", "product")
	Status  string // post_status ("publish", "draft")
	Date    int64  // Unix timestamp of publication
}

// MetaEntry is one key-value metadata row. A post may carry several rows
// with the same key.
type MetaEntry struct {
	Key   string
	Value string
}

// Term is a taxonomy term attached to a post.
type Term struct {
	ID       int64
	Name     string
	Slug     string
	Taxonomy string
}

// Registration lists the post types a taxonomy is attached to.
type Registration struct {
	Taxonomy  string
	PostTypes []string
}

// PostJSON is the API-friendly representation of a Post with an RFC3339
// date and optional content.
type PostJSON struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
	Type    string `json:"type"`
	Status  string `json:"status"`
	Date    string `json:"date"`
}

// ToJSON converts a Post to its API representation. The content parameter
// controls whether to include the body, allowing compact listings.
func (p *Post) ToJSON(content bool) PostJSON {
	j := PostJSON{
		ID:     p.ID,
		Title:  p.Title,
		Type:   p.Type,
		Status: p.Status,
		Date:   time.Unix(p.Date, 0).UTC().Format(time.RFC3339),
	}
	if content {
		j.Content = p.Content
	}
	return j
}

// MarshalJSON encodes a value with indentation for human-readable CLI output.
// Use this instead of json.Marshal when the output will be displayed to users.
func MarshalJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// Stats provides aggregate counts for operational visibility.
type Stats struct {
	Posts      int64 `json:"posts"`      // All posts regardless of status
	Published  int64 `json:"published"`  // Posts with status "publish"
	MetaRows   int64 `json:"meta_rows"`  // Rows in postmeta
	MetaKeys   int64 `json:"meta_keys"`  // Distinct meta keys
	Terms      int64 `json:"terms"`      // Distinct terms
	Taxonomies int64 `json:"taxonomies"` // Registered taxonomies
}
