// predicate.go builds the WHERE sub-predicates.
//
// Separated from replace.go so the predicate logic can be tested on its own.
// Nothing here looks at the host's clause: given table names and a Scope it
// returns strings.

package search

import (
	"strings"

	"github.com/jpl-au/xsearch/internal/store"
)

// Table aliases used by the extra joins. The xs_ prefix keeps them apart
// from aliases the host or other filters may introduce.
const (
	AliasMeta         = "xs_meta"
	AliasRelationship = "xs_tr"
	AliasTermTaxonomy = "xs_tt"
	AliasTerm         = "xs_t"
)

// Predicates holds the sub-predicates for one phrase. Meta and Taxonomy
// are empty when the scope has no meta keys or no taxonomies.
type Predicates struct {
	Body     string
	Meta     string
	Taxonomy string
}

// NewPredicates builds every predicate the scope calls for. All of them
// test the same literal.
func NewPredicates(t store.Tables, s Scope) Predicates {
	lit := LikeLiteral(s.Phrase)
	like := " LIKE " + lit + " ESCAPE '" + escapeChar + "'"

	p := Predicates{
		Body: "(" + t.Posts + ".post_title" + like + " OR " + t.Posts + ".post_content" + like + ")",
	}
	if len(s.MetaKeys) > 0 {
		p.Meta = "(" + AliasMeta + ".meta_value" + like +
			" AND " + AliasMeta + ".meta_key IN " + inList(s.MetaKeys) + ")"
	}
	if len(s.Taxonomies) > 0 {
		p.Taxonomy = "(" + AliasTerm + ".name" + like +
			" AND " + AliasTermTaxonomy + ".taxonomy IN " + inList(s.Taxonomies) + ")"
	}
	return p
}

// List returns the present predicates, body first.
func (p Predicates) List() []string {
	out := []string{p.Body}
	if p.Meta != "" {
		out = append(out, p.Meta)
	}
	if p.Taxonomy != "" {
		out = append(out, p.Taxonomy)
	}
	return out
}

// Combine joins the present predicates with OR.
func (p Predicates) Combine() string {
	return strings.Join(p.List(), " OR ")
}
