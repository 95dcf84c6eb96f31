// Package query assembles and runs the post listing query.
//
// A Request scopes one inbound call: it owns a filter bus and names the
// main query. The Runner fires prepare hooks for a Query, builds the
// default JOIN, WHERE and DISTINCT fragments, passes each through the
// request's filters, and executes the assembled statement.
package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/jpl-au/xsearch/internal/hooks"
)

// Request is the state shared by every query built during one inbound call.
type Request struct {
	ID    string     // Unique per request, used in audit entries
	Admin bool       // True for administrative callers
	Bus   *hooks.Bus // Filters registered for this request only

	main *Query
}

// NewRequest returns a request with a fresh ID and an empty filter bus.
func NewRequest(admin bool) *Request {
	return &Request{
		ID:    uuid.NewString(),
		Admin: admin,
		Bus:   hooks.New(),
	}
}

// SetMain marks q as the request's main listing query.
func (r *Request) SetMain(q *Query) {
	r.main = q
}

// IsMain reports whether q is the request's main query.
func (r *Request) IsMain(q *Query) bool {
	return q != nil && r.main == q
}

type requestKey struct{}

// WithRequest returns a context carrying r.
func WithRequest(ctx context.Context, r *Request) context.Context {
	return context.WithValue(ctx, requestKey{}, r)
}

// RequestFrom returns the request carried by ctx.
func RequestFrom(ctx context.Context) (*Request, bool) {
	r, ok := ctx.Value(requestKey{}).(*Request)
	return r, ok && r != nil
}
