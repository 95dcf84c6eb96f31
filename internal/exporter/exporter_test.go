package exporter_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/xsearch/internal/content"
	"github.com/jpl-au/xsearch/internal/exporter"
	"github.com/jpl-au/xsearch/internal/importer"
	"github.com/jpl-au/xsearch/internal/repo"
)

func setupService(t *testing.T) *content.Service {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, content.Init(false, "", false, dir, ""))
	svc, err := content.Open(filepath.Join(dir, repo.Dir, repo.DBFile), nil)
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return svc
}

func seeded(t *testing.T) *content.Service {
	t.Helper()
	svc := setupService(t)
	var out bytes.Buffer
	_, err := importer.RunFile(context.Background(), &out, svc, "../importer/testdata/catalogue.yaml", importer.Options{})
	require.NoError(t, err)
	return svc
}

func TestBuild(t *testing.T) {
	seed, err := exporter.Build(context.Background(), seeded(t))
	require.NoError(t, err)

	require.Len(t, seed.Taxonomies, 2)
	assert.Equal(t, importer.Taxonomy{Name: "product_cat", PostTypes: []string{"product"}}, seed.Taxonomies[0])

	require.Len(t, seed.Posts, 3)
	mx := seed.Posts[1]
	assert.Equal(t, "MX Master", mx.Title)
	assert.Equal(t, importer.Values{"graphite", "white"}, mx.Meta["colour"])
	assert.Equal(t, importer.Values{"MX-3"}, mx.Meta["sku"])
	assert.Equal(t, importer.Values{"Mice", "Wireless mouse"}, mx.Terms["product_cat"])
	assert.Equal(t, "draft", seed.Posts[2].Status)
}

func TestRun_RoundTrip(t *testing.T) {
	ctx := context.Background()
	src := seeded(t)
	dst := filepath.Join(t.TempDir(), "out", "catalogue")

	var out bytes.Buffer
	res, err := exporter.Run(ctx, &out, src, dst, exporter.Options{})
	require.NoError(t, err)
	assert.Equal(t, dst+".yaml", res.Path)
	assert.Equal(t, 3, res.Posts)
	assert.Contains(t, out.String(), "Exported: 3 posts")

	data, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sku: MX-3")

	copyOf := setupService(t)
	_, err = importer.RunFile(ctx, &out, copyOf, res.Path, importer.Options{})
	require.NoError(t, err)

	want, err := exporter.Build(ctx, src)
	require.NoError(t, err)
	got, err := exporter.Build(ctx, copyOf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRun_RefusesOverwrite(t *testing.T) {
	ctx := context.Background()
	svc := seeded(t)
	dst := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(dst, []byte("keep"), 0o644))

	var out bytes.Buffer
	_, err := exporter.Run(ctx, &out, svc, dst, exporter.Options{})
	assert.ErrorIs(t, err, exporter.ErrFileExists)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))

	_, err = exporter.Run(ctx, &out, svc, dst, exporter.Options{Force: true})
	require.NoError(t, err)
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, exporter.Write(&buf, &importer.Seed{}))
	assert.Contains(t, buf.String(), "taxonomies: []")
}
