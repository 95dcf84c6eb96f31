// query.go defines the listing query parameters.

package query

import "slices"

// DefaultLimit caps result rows when a query sets no limit.
const DefaultLimit = 10

// Query describes one listing: which post types, which status, and the
// search phrase when the listing is a search.
type Query struct {
	Phrase string // Raw user input; may be empty even for a search
	Search bool   // Set when the caller asked for a search listing
	Status string // Empty means publish
	Limit  int    // Zero or negative means DefaultLimit

	postTypes []string
}

// New returns a plain listing over postTypes.
func New(postTypes ...string) *Query {
	return &Query{postTypes: slices.Clone(postTypes)}
}

// NewSearch returns a search listing for phrase over postTypes.
func NewSearch(phrase string, postTypes ...string) *Query {
	q := New(postTypes...)
	q.Phrase = phrase
	q.Search = true
	return q
}

// PostTypes returns a copy of the post types the query is restricted to.
func (q *Query) PostTypes() []string {
	return slices.Clone(q.postTypes)
}

// SetPostTypes narrows or widens the post types. The slice is copied.
func (q *Query) SetPostTypes(types []string) {
	q.postTypes = slices.Clone(types)
}
