package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jpl-au/xsearch/internal/store"
	"github.com/jpl-au/xsearch/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupStore creates a temporary SQLite store for testing.
func setupStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"), store.DefaultPrefix)
	require.NoError(t, err)
	require.NoError(t, s.Init())
	t.Cleanup(func() { s.Close() })
	return s
}

// --- Posts ---

func TestStore_InsertAndPost(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	id, err := s.InsertPost(ctx, store.Post{Title: "Hello", Content: "World"})
	require.NoError(t, err)
	assert.Positive(t, id)

	p, err := s.Post(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Hello", p.Title)
	assert.Equal(t, "World", p.Content)
	assert.Equal(t, "post", p.Type)
	assert.Equal(t, store.StatusPublish, p.Status)
	assert.NotZero(t, p.Date)
}

func TestStore_Posts(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	first, err := s.InsertPost(ctx, store.Post{Title: "First", Date: 200})
	require.NoError(t, err)
	second, err := s.InsertPost(ctx, store.Post{Title: "Second", Status: store.StatusDraft, Date: 100})
	require.NoError(t, err)

	posts, err := s.Posts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, first, posts[0].ID)
	assert.Equal(t, second, posts[1].ID)
	assert.Equal(t, store.StatusDraft, posts[1].Status)
}

func TestStore_PostNotFound(t *testing.T) {
	s := setupStore(t)

	_, err := s.Post(context.Background(), 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_InsertInvalidFields(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := s.InsertPost(ctx, store.Post{Title: ""})
	assert.ErrorIs(t, err, validate.ErrInvalidPost)
	_, err = s.InsertPost(ctx, store.Post{Title: "x", Status: "pub'lish"})
	assert.ErrorIs(t, err, validate.ErrInvalidStatus)
}

func TestStore_InsertInvalidType(t *testing.T) {
	s := setupStore(t)

	_, err := s.InsertPost(context.Background(), store.Post{Title: "x", Type: "bad type"})
	assert.ErrorIs(t, err, validate.ErrInvalidPostType)
}

func TestStore_QueryPosts(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	_, err := s.InsertPost(ctx, store.Post{Title: "old", Date: 100})
	require.NoError(t, err)
	_, err = s.InsertPost(ctx, store.Post{Title: "new", Date: 200})
	require.NoError(t, err)

	posts, err := s.QueryPosts(ctx, `SELECT wp_posts.* FROM wp_posts ORDER BY post_date DESC`)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "new", posts[0].Title)
	assert.Equal(t, "old", posts[1].Title)
}

// --- Meta ---

func TestStore_SetMetaReplaces(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	id, err := s.InsertPost(ctx, store.Post{Title: "Widget"})
	require.NoError(t, err)

	require.NoError(t, s.AddMeta(ctx, id, "colour", "red"))
	require.NoError(t, s.AddMeta(ctx, id, "colour", "blue"))
	require.NoError(t, s.AddMeta(ctx, id, "sku", "W-1"))

	meta, err := s.Meta(ctx, id)
	require.NoError(t, err)
	assert.Len(t, meta, 3)

	require.NoError(t, s.SetMeta(ctx, id, "colour", "green"))

	meta, err = s.Meta(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []store.MetaEntry{
		{Key: "sku", Value: "W-1"},
		{Key: "colour", Value: "green"},
	}, meta)
}

func TestStore_MetaMissingPost(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.AddMeta(ctx, 42, "sku", "x"), store.ErrNotFound)
	assert.ErrorIs(t, s.SetMeta(ctx, 42, "sku", "x"), store.ErrNotFound)
}

// --- Taxonomies ---

func TestStore_ObjectTaxonomies(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.RegisterTaxonomy(ctx, "category", []string{"post"}))
	require.NoError(t, s.RegisterTaxonomy(ctx, "post_tag", []string{"post"}))
	require.NoError(t, s.RegisterTaxonomy(ctx, "genre", []string{"page", "book"}))
	require.NoError(t, s.RegisterTaxonomy(ctx, "category", []string{"page"}))

	got, err := s.ObjectTaxonomies(ctx, []string{"post", "page"})
	require.NoError(t, err)
	assert.Equal(t, []string{"category", "post_tag", "genre"}, got)

	got, err = s.ObjectTaxonomies(ctx, []string{"book"})
	require.NoError(t, err)
	assert.Equal(t, []string{"genre"}, got)

	got, err = s.ObjectTaxonomies(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_Registrations(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	regs, err := s.Registrations(ctx)
	require.NoError(t, err)
	assert.Empty(t, regs)

	require.NoError(t, s.RegisterTaxonomy(ctx, "category", []string{"post"}))
	require.NoError(t, s.RegisterTaxonomy(ctx, "genre", []string{"book"}))
	require.NoError(t, s.RegisterTaxonomy(ctx, "category", []string{"page"}))

	regs, err = s.Registrations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []store.Registration{
		{Taxonomy: "category", PostTypes: []string{"post", "page"}},
		{Taxonomy: "genre", PostTypes: []string{"book"}},
	}, regs)
}

func TestStore_RegisterTaxonomyIdempotent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.RegisterTaxonomy(ctx, "genre", []string{"book"}))
	require.NoError(t, s.RegisterTaxonomy(ctx, "genre", []string{"book"}))

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), st.Taxonomies)
}

func TestStore_RegisterTaxonomyInvalid(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.RegisterTaxonomy(ctx, "has space", []string{"post"}), validate.ErrInvalidTaxonomy)
	assert.ErrorIs(t, s.RegisterTaxonomy(ctx, "genre", nil), validate.ErrInvalidPostType)
}

func TestStore_AssignTerm(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	a, err := s.InsertPost(ctx, store.Post{Title: "A"})
	require.NoError(t, err)
	b, err := s.InsertPost(ctx, store.Post{Title: "B"})
	require.NoError(t, err)

	require.NoError(t, s.AssignTerm(ctx, a, "genre", "Science Fiction"))
	require.NoError(t, s.AssignTerm(ctx, a, "genre", "Science Fiction"))
	require.NoError(t, s.AssignTerm(ctx, b, "genre", "Science Fiction"))
	require.NoError(t, s.AssignTerm(ctx, a, "post_tag", "space"))

	terms, err := s.Terms(ctx, a)
	require.NoError(t, err)
	require.Len(t, terms, 2)
	assert.Equal(t, "Science Fiction", terms[0].Name)
	assert.Equal(t, "science-fiction", terms[0].Slug)
	assert.Equal(t, "genre", terms[0].Taxonomy)
	assert.Equal(t, "space", terms[1].Name)

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), st.Terms)
}

func TestStore_AssignTermMissingPost(t *testing.T) {
	s := setupStore(t)

	err := s.AssignTerm(context.Background(), 7, "genre", "x")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// --- Maintenance ---

func TestStore_Stats(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	id, err := s.InsertPost(ctx, store.Post{Title: "one"})
	require.NoError(t, err)
	_, err = s.InsertPost(ctx, store.Post{Title: "two", Status: store.StatusDraft})
	require.NoError(t, err)
	require.NoError(t, s.AddMeta(ctx, id, "sku", "1"))
	require.NoError(t, s.AddMeta(ctx, id, "sku", "2"))

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), st.Posts)
	assert.Equal(t, int64(1), st.Published)
	assert.Equal(t, int64(2), st.MetaRows)
	assert.Equal(t, int64(1), st.MetaKeys)
}

func TestStore_Checkpoint(t *testing.T) {
	s := setupStore(t)
	assert.NoError(t, s.Checkpoint(context.Background()))
}

func TestStore_CustomPrefix(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"), "cms_")
	require.NoError(t, err)
	require.NoError(t, s.Init())
	defer s.Close()

	assert.Equal(t, "cms_posts", s.Tables().Posts)
	_, err = s.InsertPost(context.Background(), store.Post{Title: "x"})
	require.NoError(t, err)

	_, err = store.Open(filepath.Join(t.TempDir(), "bad.db"), "bad-prefix")
	assert.ErrorIs(t, err, validate.ErrInvalidPrefix)
}

// --- Batch ---

func TestStore_BatchCommits(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	var id int64
	err := s.Batch(ctx, func(b store.BatchWriter) error {
		var err error
		if id, err = b.InsertPost(ctx, store.Post{Title: "Mouse"}); err != nil {
			return err
		}
		if err := b.SetMeta(ctx, id, "sku", "M-1"); err != nil {
			return err
		}
		if err := b.RegisterTaxonomy(ctx, "product_cat", []string{"post"}); err != nil {
			return err
		}
		return b.AssignTerm(ctx, id, "product_cat", "Peripherals")
	})
	require.NoError(t, err)

	meta, err := s.Meta(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []store.MetaEntry{{Key: "sku", Value: "M-1"}}, meta)

	terms, err := s.Terms(ctx, id)
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, "Peripherals", terms[0].Name)
}

func TestStore_BatchRollsBack(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	err := s.Batch(ctx, func(b store.BatchWriter) error {
		if _, err := b.InsertPost(ctx, store.Post{Title: "kept?"}); err != nil {
			return err
		}
		return b.AssignTerm(ctx, 999, "genre", "x")
	})
	assert.ErrorIs(t, err, store.ErrNotFound)

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, st.Posts)
}
