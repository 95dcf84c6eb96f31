// search.go implements search and explain for the Service layer.
//
// Separated from content.go because every search goes through the query
// runner and its request bus, while content operations go straight to the
// store. A search is one request whose main query is the search itself;
// that is what lets the gate recognise it.
//
// Design: Explain builds the statement twice, once as an admin request and
// once as a normal one, and diffs the two. The admin build is exactly what
// the rewrite would have left alone, so the diff is the rewrite.

package content

import (
	"context"
	"errors"

	"github.com/jpl-au/xsearch/internal/diff"
	"github.com/jpl-au/xsearch/internal/query"
	"github.com/jpl-au/xsearch/internal/search"
	"github.com/jpl-au/xsearch/internal/service"
)

// ErrEmptyPhrase is returned when a search or explain has nothing to match.
var ErrEmptyPhrase = errors.New("search phrase is empty")

// Search runs the listing query for phrase.
func (s *Service) Search(ctx context.Context, phrase string, opts service.SearchOptions) (*service.Result, error) {
	if phrase == "" {
		return nil, ErrEmptyPhrase
	}

	req, q := s.request(phrase, opts)
	posts, st, err := s.runner.Run(query.WithRequest(ctx, req), q)
	if err != nil {
		return nil, err
	}

	res := &service.Result{
		Request:   req.ID,
		Phrase:    phrase,
		Rewritten: st.SQL != st.Default,
		Posts:     posts,
		Statement: st,
	}
	return res, nil
}

// Explain builds the default and rewritten statements for phrase.
func (s *Service) Explain(ctx context.Context, phrase string) (*service.Explanation, error) {
	if phrase == "" {
		return nil, ErrEmptyPhrase
	}

	def := s.build(ctx, phrase, service.SearchOptions{Admin: true})
	rw := s.build(ctx, phrase, service.SearchOptions{})

	return &service.Explanation{
		Scope: search.Scope{
			Phrase:        phrase,
			DocumentTypes: s.resolver.DocumentTypes(),
			MetaKeys:      s.resolver.MetaKeys(),
			Taxonomies:    s.resolver.Taxonomies(ctx),
		},
		Default:   def.SQL,
		Rewritten: rw.SQL,
		Diff:      diff.SQL(def.SQL, rw.SQL),
	}, nil
}

// build assembles the statement for phrase under a fresh request.
func (s *Service) build(ctx context.Context, phrase string, opts service.SearchOptions) query.Statement {
	req, q := s.request(phrase, opts)
	return s.runner.Build(query.WithRequest(ctx, req), q)
}

// request creates a request whose main query searches for phrase.
func (s *Service) request(phrase string, opts service.SearchOptions) (*query.Request, *query.Query) {
	req := query.NewRequest(opts.Admin)
	q := query.NewSearch(phrase, opts.PostTypes...)
	q.Limit = s.limit
	if opts.Limit > 0 {
		q.Limit = opts.Limit
	}
	req.SetMain(q)
	return req, q
}
