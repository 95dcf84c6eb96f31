package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = `taxonomies:
  - name: product_cat
    post_types: [product]
posts:
  - title: MX Master
    content: A wireless mouse.
    type: product
    date: 2024-03-01T09:00:00Z
    meta:
      sku: MX-3
    terms:
      product_cat: [Mice, Wireless]
  - title: Mouse mats compared
    date: 2024-04-01T09:00:00Z
`

func writeSeed(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImport(t *testing.T) {
	env := newTestEnv(t)
	env.run("config", "--local", "search.post_types", "post,product")
	path := writeSeed(t, env.dir, testSeed)

	out := env.run("import", path)
	env.contains(out, "Imported 2 posts")

	out = env.run("search", "wireless")
	env.contains(out, "MX Master")

	out = env.run("explain", "wireless")
	env.contains(out, "Taxonomies: product_cat")
}

func TestImport_DryRun(t *testing.T) {
	env := newTestEnv(t)
	path := writeSeed(t, env.dir, testSeed)

	out := env.run("import", path, "--dry-run")
	env.contains(out, "Would import")

	env.notContains(env.run("search", "mouse", "--admin"), "MX Master")
}

func TestImport_Invalid(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.runErr("import", writeSeed(t, env.dir, "posts:\n  - titel: typo\n"))
	assert.Error(t, err, "unknown field")

	_, err = env.runErr("import", writeSeed(t, env.dir, ""))
	assert.Error(t, err, "empty seed")

	_, err = env.runErr("import", filepath.Join(env.dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	env := newTestEnv(t)
	env.run("import", writeSeed(t, env.dir, testSeed))

	out := env.run("export", "backup")
	env.contains(out, "Exported: 2 posts, 1 taxonomies")
	dst := filepath.Join(env.dir, "backup.yaml")
	assert.FileExists(t, dst)

	_, err := env.runErr("export", "backup.yaml")
	assert.Error(t, err, "refuses to overwrite")
	env.run("export", "backup.yaml", "--force")

	other := newTestEnv(t)
	other.run("config", "--local", "search.post_types", "product")
	other.run("import", dst)
	other.contains(other.run("search", "wireless"), "MX Master")
}
