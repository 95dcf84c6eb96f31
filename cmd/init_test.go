package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	env := newBareEnv(t)
	out := env.run("init")
	env.contains(out, "wp_posts")

	assert.DirExists(t, filepath.Join(env.dir, ".xsearch"))
	assert.FileExists(t, filepath.Join(env.dir, ".xsearch", "xsearch.db"))
	// init does not write config unless --prefix is given
	assert.NoFileExists(t, filepath.Join(env.dir, ".xsearch", "config.yaml"))
}

func TestInit_AlreadyInitialised(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.runErr("init")
	assert.Error(t, err)
}

func TestInit_Force(t *testing.T) {
	env := newTestEnv(t)
	env.addPost("Before reinit")

	env.run("init", "--force")

	out := env.run("search", "reinit")
	env.notContains(out, "Before reinit")
}

func TestInit_Prefix(t *testing.T) {
	env := newBareEnv(t)
	out := env.run("init", "--prefix", "cms_")
	env.contains(out, "cms_posts")

	assert.Equal(t, "cms_\n", env.run("config", "store.table_prefix"))

	env.addPost("Prefixed post")
	env.contains(env.run("search", "prefixed"), "Prefixed post")
}

func TestInit_InvalidPrefix(t *testing.T) {
	env := newBareEnv(t)
	_, err := env.runErr("init", "--prefix", "bad prefix")
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(env.dir, ".xsearch", "config.yaml"))
}

func TestInit_NamedDB(t *testing.T) {
	env := newBareEnv(t)
	env.run("init", "--db", "shop")
	assert.FileExists(t, filepath.Join(env.dir, ".xsearch", "xsearch-shop.db"))

	env.run("--db", "shop", "post", "add", "Shop only", "--content", "")

	env.setenv("XSEARCH_DB", "shop")
	env.contains(env.run("search", "shop"), "Shop only")
}

func TestInit_Dir(t *testing.T) {
	env := newBareEnv(t)
	other := t.TempDir()

	env.run("init", "--dir", other)
	assert.FileExists(t, filepath.Join(other, ".xsearch", "xsearch.db"))

	env.run("--dir", other, "post", "add", "Elsewhere", "--content", "")
	env.contains(env.run("--dir", other, "search", "elsewhere"), "Elsewhere")

	_, err := env.runErr("init", "--dir", other, "--local")
	assert.Error(t, err)
}

func TestNotInitialised(t *testing.T) {
	env := newBareEnv(t)
	out, err := env.runErr("search", "anything")
	require.Error(t, err)
	env.contains(out, "init")
}
