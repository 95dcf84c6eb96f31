// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full stack:
// command parsing -> extension -> service -> query runner -> store -> SQLite.
//
// The rewrite itself is unit tested in internal/search against golden SQL.
// These tests check what a user sees: a search for a SKU finds the product,
// an admin search does not, and explain shows the difference.
//
// Each test runs with HOME pointed at a temp directory so global config and
// the audit log never touch the real home directory.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the xsearch binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "xsearch-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "xsearch"
		if os.PathSeparator == '\\' {
			binaryName = "xsearch.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		projectRoot := filepath.Dir(mustGetwd())

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
	env    []string
}

// newBareEnv creates a temporary project directory without a store.
func newBareEnv(t *testing.T) *testEnv {
	t.Helper()
	home := t.TempDir()
	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   home,
		binary: buildBinary(t),
		env: append(os.Environ(),
			"HOME="+home,
			"USERPROFILE="+home,
			"XSEARCH_DB=",
			"XSEARCH_DIR=",
		),
	}
}

// newTestEnv creates a temporary directory with an initialised store.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := newBareEnv(t)
	env.run("init")
	return env
}

// run executes xsearch with the given args and returns its output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("xsearch %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes xsearch and returns its output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	return e.exec(nil, args...)
}

// runStdin executes xsearch with stdin input.
func (e *testEnv) runStdin(input string, args ...string) string {
	e.t.Helper()
	out, err := e.exec(strings.NewReader(input), args...)
	if err != nil {
		e.t.Fatalf("xsearch %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

func (e *testEnv) exec(stdin *strings.Reader, args ...string) (string, error) {
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = e.env
	if stdin != nil {
		cmd.Stdin = stdin
	}
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// setenv adds an environment variable for subsequent runs.
func (e *testEnv) setenv(key, value string) {
	e.env = append(e.env, key+"="+value)
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// notContains checks that output does not contain unexpected string.
func (e *testEnv) notContains(output, unexpected string) {
	e.t.Helper()
	assert.NotContains(e.t, output, unexpected)
}

// addPost adds a post and returns its ID.
func (e *testEnv) addPost(title string, args ...string) string {
	e.t.Helper()
	out := e.run(append([]string{"post", "add", title, "--content", ""}, args...)...)
	_, id, ok := strings.Cut(strings.TrimSpace(out), "#")
	if !ok {
		e.t.Fatalf("post add %q: unexpected output %q", title, out)
	}
	return id
}
