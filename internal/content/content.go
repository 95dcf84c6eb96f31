// content.go implements post, metadata and taxonomy writes for the Service
// layer.
//
// Separated from search.go because these operations never touch the query
// runner. Validation lives in the store; callers write the audit log.

package content

import (
	"context"

	"github.com/jpl-au/xsearch/internal/store"
)

// AddPost stores a new post and returns its ID.
func (s *Service) AddPost(ctx context.Context, p store.Post) (int64, error) {
	return s.store.InsertPost(ctx, p)
}

// Post returns one post.
func (s *Service) Post(ctx context.Context, id int64) (*store.Post, error) {
	return s.store.Post(ctx, id)
}

// Meta returns every metadata row for a post.
func (s *Service) Meta(ctx context.Context, id int64) ([]store.MetaEntry, error) {
	return s.store.Meta(ctx, id)
}

// Terms returns the terms attached to a post.
func (s *Service) Terms(ctx context.Context, id int64) ([]store.Term, error) {
	return s.store.Terms(ctx, id)
}

// SetMeta replaces the rows for key with a single value.
func (s *Service) SetMeta(ctx context.Context, id int64, key, value string) error {
	return s.store.SetMeta(ctx, id, key, value)
}

// AddMeta appends a row for key.
func (s *Service) AddMeta(ctx context.Context, id int64, key, value string) error {
	return s.store.AddMeta(ctx, id, key, value)
}

// RegisterTaxonomy attaches a taxonomy to post types.
func (s *Service) RegisterTaxonomy(ctx context.Context, taxonomy string, postTypes []string) error {
	return s.store.RegisterTaxonomy(ctx, taxonomy, postTypes)
}

// AssignTerm attaches a term to a post.
func (s *Service) AssignTerm(ctx context.Context, id int64, taxonomy, name string) error {
	return s.store.AssignTerm(ctx, id, taxonomy, name)
}

// Posts returns every post, by ID.
func (s *Service) Posts(ctx context.Context) ([]store.Post, error) {
	return s.store.Posts(ctx)
}

// Registrations returns the taxonomy registry.
func (s *Service) Registrations(ctx context.Context) ([]store.Registration, error) {
	return s.store.Registrations(ctx)
}

// Batch runs fn in one transaction.
func (s *Service) Batch(ctx context.Context, fn func(b store.BatchWriter) error) error {
	return s.store.Batch(ctx, fn)
}
