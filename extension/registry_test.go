package extension

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

type stubExtension struct {
	name string
}

func (e stubExtension) Name() string               { return e.name }
func (e stubExtension) Commands() []*cobra.Command { return nil }
func (e stubExtension) MCPTools() []MCPTool        { return nil }

func TestRegister_PanicsOnDuplicate(t *testing.T) {
	Register(stubExtension{name: "xsearch-test-dup"})

	assert.PanicsWithValue(t, "xsearch: extension already registered: xsearch-test-dup", func() {
		Register(stubExtension{name: "xsearch-test-dup"})
	})
}

func TestAll_KeepsRegistrationOrder(t *testing.T) {
	Register(stubExtension{name: "xsearch-test-b"})
	Register(stubExtension{name: "xsearch-test-a"})

	var names []string
	for _, e := range All() {
		names = append(names, e.Name())
	}
	b := indexOf(names, "xsearch-test-b")
	a := indexOf(names, "xsearch-test-a")
	assert.GreaterOrEqual(t, b, 0)
	assert.Greater(t, a, b, "later registration listed later")
}

func indexOf(names []string, want string) int {
	for i, n := range names {
		if n == want {
			return i
		}
	}
	return -1
}
