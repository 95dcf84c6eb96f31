package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuide(t *testing.T) {
	env := newBareEnv(t)

	// guide works without a store
	out := env.run("guide")
	env.contains(out, "# xsearch")
	env.contains(out, "xsearch guide <topic>")

	for _, topic := range []string{"init", "post", "import", "search", "explain", "config", "db", "serve"} {
		t.Run(topic, func(t *testing.T) {
			out := env.run("guide", topic)
			assert.NotEmpty(t, out)
		})
	}

	out, err := env.runErr("guide", "nonexistent")
	assert.Error(t, err)
	env.contains(out, "Available:")
}
