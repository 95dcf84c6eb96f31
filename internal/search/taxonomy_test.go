package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRegistry struct {
	taxonomies []string
	err        error
	asked      [][]string
}

func (f *fakeRegistry) ObjectTaxonomies(_ context.Context, postTypes []string) ([]string, error) {
	f.asked = append(f.asked, postTypes)
	return f.taxonomies, f.err
}

func TestDiscover_ExcludesBuiltIns(t *testing.T) {
	reg := &fakeRegistry{taxonomies: []string{"category", "post_format", "post_tag", "nav_menu", "product_cat"}}

	got, err := NewDiscoverer(reg).Discover(context.Background(), []string{"post", "page"})
	require.NoError(t, err)
	assert.Equal(t, []string{"category", "post_tag", "product_cat"}, got)
	assert.Equal(t, [][]string{{"post", "page"}}, reg.asked)
}

func TestDiscover_SkipsMalformed(t *testing.T) {
	reg := &fakeRegistry{taxonomies: []string{"", "genre", "has space", "bad\x00", "link_category", "genre", "colour"}}

	got, err := NewDiscoverer(reg).Discover(context.Background(), []string{"book"})
	require.NoError(t, err)
	assert.Equal(t, []string{"genre", "colour"}, got)
}

func TestDiscover_NoTypesOrRegistry(t *testing.T) {
	reg := &fakeRegistry{taxonomies: []string{"genre"}}

	got, err := NewDiscoverer(reg).Discover(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, reg.asked)

	got, err = NewDiscoverer(nil).Discover(context.Background(), []string{"post"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDiscover_RegistryError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewDiscoverer(&fakeRegistry{err: boom}).Discover(context.Background(), []string{"post"})
	assert.ErrorIs(t, err, boom)
}

func TestExcluded(t *testing.T) {
	for _, name := range []string{"post_format", "nav_menu", "link_category"} {
		assert.True(t, Excluded(name), name)
	}
	assert.False(t, Excluded("category"))
}
