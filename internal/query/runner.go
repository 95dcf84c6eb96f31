// runner.go implements query assembly and execution.
//
// Separated from query.go because building is where the request's filters
// run. The order is fixed: prepare hooks, then a snapshot of the filter
// chains, then JOIN, WHERE and DISTINCT in that order. The snapshot means a
// filter that unregisters itself mid-build (the WHERE stage of the search
// extension does this) still lets the rest of that build's filters run,
// while the next build on the same request sees the bus as it is now.

package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/jpl-au/xsearch/internal/hooks"
	"github.com/jpl-au/xsearch/internal/store"
)

// PrepareFunc runs before a query is built and may mutate it or register
// filters on the request bus.
type PrepareFunc func(ctx context.Context, q *Query)

// Statement is an assembled listing query plus the fragments that made it.
type Statement struct {
	SQL      string
	Join     string
	Where    string
	Distinct string

	// Default is the statement the unfiltered fragments would have
	// produced. Explain output diffs it against SQL.
	Default string
}

// Runner builds and executes listing queries against a store.
type Runner struct {
	db      store.Querier
	tables  store.Tables
	prepare []PrepareFunc
}

// NewRunner returns a runner over db.
func NewRunner(db store.Querier) *Runner {
	return &Runner{db: db, tables: db.Tables()}
}

// OnPrepare registers fn to run before every build, in registration order.
func (r *Runner) OnPrepare(fn PrepareFunc) {
	r.prepare = append(r.prepare, fn)
}

// Build fires the prepare hooks for q and assembles its statement. Filters
// come from the request in ctx; without one, only the defaults apply.
func (r *Runner) Build(ctx context.Context, q *Query) Statement {
	for _, fn := range r.prepare {
		fn(ctx, q)
	}

	chains := hooks.Chains{}
	if req, ok := RequestFrom(ctx); ok {
		chains = req.Bus.Snapshot(hooks.PostsJoin, hooks.PostsWhere, hooks.PostsDistinct)
	}

	join, where, distinct := "", r.defaultWhere(q), ""
	st := Statement{Default: r.assemble(q, join, where, distinct)}

	st.Join = chains.Apply(hooks.PostsJoin, join)
	st.Where = chains.Apply(hooks.PostsWhere, where)
	st.Distinct = chains.Apply(hooks.PostsDistinct, distinct)
	st.SQL = r.assemble(q, st.Join, st.Where, st.Distinct)
	return st
}

// Run builds q and executes it.
func (r *Runner) Run(ctx context.Context, q *Query) ([]store.Post, Statement, error) {
	st := r.Build(ctx, q)
	posts, err := r.db.QueryPosts(ctx, st.SQL)
	if err != nil {
		return nil, st, fmt.Errorf("run query: %w", err)
	}
	return posts, st, nil
}

// defaultWhere restricts by post type and status and, for a non-empty
// phrase, adds the two-field title/content clause.
func (r *Runner) defaultWhere(q *Query) string {
	posts := r.tables.Posts
	var b strings.Builder

	if types := q.PostTypes(); len(types) > 0 {
		quoted := make([]string, len(types))
		for i, t := range types {
			quoted[i] = quote(t)
		}
		fmt.Fprintf(&b, " AND %s.post_type IN (%s)", posts, strings.Join(quoted, ", "))
	}

	status := q.Status
	if status == "" {
		status = store.StatusPublish
	}
	fmt.Fprintf(&b, " AND %s.post_status = %s", posts, quote(status))

	if q.Search && q.Phrase != "" {
		lit := quote("%" + q.Phrase + "%")
		fmt.Fprintf(&b, " AND ((%s.post_title LIKE %s) OR (%s.post_content LIKE %s))",
			posts, lit, posts, lit)
	}
	return b.String()
}

func (r *Runner) assemble(q *Query, join, where, distinct string) string {
	posts := r.tables.Posts
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	sel := "SELECT "
	if distinct != "" {
		sel += distinct + " "
	}
	return fmt.Sprintf("%s%s.* FROM %s%s WHERE 1=1%s ORDER BY %s.post_date DESC, %s.ID DESC LIMIT %d",
		sel, posts, posts, join, where, posts, posts, limit)
}

// quote renders s as a SQL string literal.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
