package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_List(t *testing.T) {
	env := newTestEnv(t)
	env.run("init", "--db", "shop", "--local")

	out := env.run("db")
	env.contains(out, "xsearch.db")
	env.contains(out, "xsearch-shop.db  local")
}

func TestDB_MarkLocal(t *testing.T) {
	env := newTestEnv(t)

	env.contains(env.run("db"), "xsearch.db  shared")

	env.contains(env.run("db", "--local"), "xsearch.db marked as local")
	env.contains(env.run("db", ""), "xsearch.db: local")

	data, err := os.ReadFile(filepath.Join(env.dir, ".xsearch", ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "xsearch.db")
}

func TestDB_Isolated(t *testing.T) {
	env := newTestEnv(t)
	env.run("init", "--db", "shop")

	env.addPost("Default store post")
	env.run("--db", "shop", "post", "add", "Shop store post", "--content", "")

	out := env.run("search", "store")
	env.contains(out, "Default store post")
	env.notContains(out, "Shop store post")

	out = env.run("--db", "shop", "search", "store")
	env.contains(out, "Shop store post")
	env.notContains(out, "Default store post")
}
