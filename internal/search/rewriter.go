// rewriter.go implements the three query-build stages.
//
// A Rewriter is created per eligible query and carries that query's Scope.
// The stages must run in the order JOIN, WHERE, DISTINCT (Pipeline does
// this for callers without a host). ExtendWhere releases the registration
// handle whatever it returns, so no stage outlives the query it was built
// for.

package search

import (
	"regexp"
	"slices"

	"github.com/jpl-au/xsearch/internal/store"
)

// Distinct is the DISTINCT fragment forced by the rewriter.
const Distinct = "DISTINCT"

// Scope is the per-query search context.
type Scope struct {
	Phrase        string   // Raw user input; may be empty
	DocumentTypes []string // Post types the query is narrowed to
	MetaKeys      []string // Meta keys whose values are searched
	Taxonomies    []string // Taxonomies whose term names are searched
}

// clone returns a deep copy so a Rewriter's scope cannot be changed from
// outside.
func (s Scope) clone() Scope {
	return Scope{
		Phrase:        s.Phrase,
		DocumentTypes: slices.Clone(s.DocumentTypes),
		MetaKeys:      slices.Clone(s.MetaKeys),
		Taxonomies:    slices.Clone(s.Taxonomies),
	}
}

// Rewriter extends one query's JOIN, WHERE and DISTINCT fragments.
type Rewriter struct {
	scope   Scope
	tables  store.Tables
	pattern *regexp.Regexp
	handle  *Handle
}

// NewRewriter returns a rewriter for scope over the given tables.
func NewRewriter(tables store.Tables, scope Scope) *Rewriter {
	return &Rewriter{
		scope:   scope.clone(),
		tables:  tables,
		pattern: bodyClausePattern(tables.Posts),
	}
}

// Scope returns a copy of the rewriter's scope.
func (rw *Rewriter) Scope() Scope {
	return rw.scope.clone()
}

// ExtendJoin appends the postmeta join when there are meta keys and the
// taxonomy chain joins when there are taxonomies.
func (rw *Rewriter) ExtendJoin(join string) string {
	t := rw.tables
	if len(rw.scope.MetaKeys) > 0 {
		join += " LEFT JOIN " + t.PostMeta + " AS " + AliasMeta +
			" ON " + t.Posts + ".ID = " + AliasMeta + ".post_id"
	}
	if len(rw.scope.Taxonomies) > 0 {
		join += " LEFT JOIN " + t.TermRelationships + " AS " + AliasRelationship +
			" ON " + t.Posts + ".ID = " + AliasRelationship + ".object_id"
		join += " LEFT JOIN " + t.TermTaxonomy + " AS " + AliasTermTaxonomy +
			" ON " + AliasRelationship + ".term_taxonomy_id = " + AliasTermTaxonomy + ".term_taxonomy_id"
		join += " LEFT JOIN " + t.Terms + " AS " + AliasTerm +
			" ON " + AliasTermTaxonomy + ".term_id = " + AliasTerm + ".term_id"
	}
	return join
}

// ExtendWhere replaces the host's title/content clause with the OR of the
// body, meta and taxonomy predicates. An empty phrase or an unrecognised
// clause returns where unchanged. The registration is released in every
// case.
func (rw *Rewriter) ExtendWhere(where string) string {
	defer rw.handle.Release()

	if rw.scope.Phrase == "" {
		return where
	}
	combined := NewPredicates(rw.tables, rw.scope).Combine()
	out, _ := replaceBodyClause(rw.pattern, where, combined)
	return out
}

// ForceDistinct returns DISTINCT regardless of input.
func (rw *Rewriter) ForceDistinct(string) string {
	return Distinct
}
