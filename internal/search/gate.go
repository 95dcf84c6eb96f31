// gate.go decides which queries get rewritten.
//
// Only the main query of a non-admin request, and only when it is a
// search, is touched. Everything else passes through untouched: no
// narrowing, no registration.

package search

import (
	"context"

	"github.com/jpl-au/xsearch/internal/query"
	"github.com/jpl-au/xsearch/internal/store"
)

// Gate attaches a Rewriter to eligible queries.
type Gate struct {
	resolver *Resolver
	tables   store.Tables
}

// NewGate returns a gate resolving lists through r for the given tables.
func NewGate(r *Resolver, tables store.Tables) *Gate {
	return &Gate{resolver: r, tables: tables}
}

// OnQueryPrepare narrows q to the searchable post types and attaches a
// Rewriter to the request bus. It returns nil and leaves q alone when the
// request in ctx is admin, q is not the request's main query, or q is not
// a search.
func (g *Gate) OnQueryPrepare(ctx context.Context, q *query.Query) *Handle {
	req, ok := query.RequestFrom(ctx)
	if !ok || req.Admin || !req.IsMain(q) || !q.Search {
		return nil
	}

	types := g.resolver.DocumentTypes()
	q.SetPostTypes(types)

	scope := Scope{
		Phrase:        q.Phrase,
		DocumentTypes: types,
		MetaKeys:      g.resolver.MetaKeys(),
		Taxonomies:    g.resolver.Taxonomies(ctx),
	}
	return Attach(req.Bus, NewRewriter(g.tables, scope))
}

// Prepare matches query.PrepareFunc.
func (g *Gate) Prepare(ctx context.Context, q *query.Query) {
	g.OnQueryPrepare(ctx, q)
}
