package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	c := &Config{}

	assert.Equal(t, "wp_", c.TablePrefix())
	assert.Equal(t, DefaultLimit, c.Limit())

	_, ok := c.PostTypes()
	assert.False(t, ok)

	v, err := c.Get("search.post_types")
	require.NoError(t, err)
	assert.Equal(t, "post,page", v)

	v, err = c.Get("search.taxonomies")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestConfig_SetLists(t *testing.T) {
	c := &Config{}

	require.NoError(t, c.Set("search.meta_keys", "sku, _price ,,colour"))
	keys, ok := c.MetaKeys()
	assert.True(t, ok)
	assert.Equal(t, []string{"sku", "_price", "colour"}, keys)
	assert.True(t, c.IsSet("search.meta_keys"))

	require.NoError(t, c.Set("search.taxonomies", ""))
	tax, ok := c.Taxonomies()
	assert.True(t, ok)
	assert.Empty(t, tax)

	require.NoError(t, c.Set("search.meta_keys", Unset))
	_, ok = c.MetaKeys()
	assert.False(t, ok)
	assert.False(t, c.IsSet("search.meta_keys"))
}

func TestConfig_SetInvalid(t *testing.T) {
	c := &Config{}

	tests := []struct {
		key, value string
		err        error
	}{
		{"search.post_types", "post,bad type", ErrInvalidValue},
		{"search.meta_keys", "it's", ErrInvalidValue},
		{"search.limit", "0", ErrInvalidValue},
		{"search.limit", "abc", ErrInvalidValue},
		{"store.table_prefix", "wp-", ErrInvalidValue},
		{"sync.files", "true", ErrUnknownKey},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			assert.ErrorIs(t, c.Set(tt.key, tt.value), tt.err)
		})
	}
}

func TestConfig_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	c := &Config{}
	require.NoError(t, c.Set("author.name", "alice"))
	require.NoError(t, c.Set("search.meta_keys", "sku"))
	require.NoError(t, c.Set("search.taxonomies", ""))
	require.NoError(t, c.Set("search.limit", "25"))
	require.NoError(t, c.saveToPath(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "meta_keys:")
	assert.NotContains(t, string(data), "post_types")

	loaded, err := loadFile(path, ScopeLocal)
	require.NoError(t, err)
	assert.Equal(t, "alice", loaded.Author.Name)
	assert.Equal(t, 25, loaded.Limit())

	keys, ok := loaded.MetaKeys()
	assert.True(t, ok)
	assert.Equal(t, []string{"sku"}, keys)

	tax, ok := loaded.Taxonomies()
	assert.True(t, ok, "an empty list must survive a round trip as set")
	assert.Empty(t, tax)
}

func TestConfig_LoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  limit: 5000\n"), 0644))

	_, err := loadFile(path, ScopeGlobal)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestConfig_All(t *testing.T) {
	c := &Config{}
	all := c.All()

	assert.Len(t, all, len(ValidKeys()))
	assert.Equal(t, "10", all["search.limit"])
}
