package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Use temp directory for test database
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	defer func() { dbPathFunc = origDBPath }()

	t.Run("open and close", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		// Verify database file exists
		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project/.xsearch")

		Log(Entry{
			Source:  "search:search",
			Author:  "test-user",
			Action:  "search",
			Phrase:  "wireless mouse",
			Post:    3,
			Success: true,
		})

		// Verify entry was written
		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM log").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		var source, action, phrase string
		var post int64
		var success int
		err = db.QueryRow("SELECT source, action, phrase, post_id, success FROM log WHERE id = 1").
			Scan(&source, &action, &phrase, &post, &success)
		require.NoError(t, err)
		assert.Equal(t, "search:search", source)
		assert.Equal(t, "search", action)
		assert.Equal(t, "wireless mouse", phrase)
		assert.Equal(t, int64(3), post)
		assert.Equal(t, 1, success)
	})

	t.Run("log error entry", func(t *testing.T) {
		// Reset global for clean test
		Close()

		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project/.xsearch")

		Log(Entry{
			Source:  "content:post",
			Action:  "show",
			Post:    99,
			Success: false,
			Error:   "post 99: not found",
		})

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var success int
		var errMsg string
		err = db.QueryRow("SELECT success, error FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, "post 99: not found", errMsg)
	})

	t.Run("log with detail", func(t *testing.T) {
		Close()

		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project/.xsearch")

		Log(Entry{
			Source:  "search:taxonomy",
			Action:  "discover",
			Success: true,
			Detail:  map[string]any{"post_types": []string{"product"}, "found": 42},
		})

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var detail string
		err = db.QueryRow("SELECT detail FROM log ORDER BY id DESC LIMIT 1").Scan(&detail)
		require.NoError(t, err)
		assert.Contains(t, detail, "product")
		assert.Contains(t, detail, "42")
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()

		// Should not panic
		Log(Entry{
			Source:  "test:cmd",
			Action:  "test",
			Success: true,
		})
	})

	t.Run("open is idempotent", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)

		err = Open() // second call should succeed
		require.NoError(t, err)

		Close()
	})
}

func TestHash(t *testing.T) {
	h1 := hash("/home/user/project/.xsearch")
	h2 := hash("/home/user/project/.xsearch")
	h3 := hash("/home/user/other/.xsearch")

	assert.Equal(t, h1, h2, "same input should produce same hash")
	assert.NotEqual(t, h1, h3, "different input should produce different hash")
	assert.Len(t, h1, 16, "BLAKE2b-64 should produce 16 hex chars")
}

func TestDBPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expected := filepath.Join(home, ".xsearch", "log", "xsearch-log.db")

	// Use default path function
	origDBPath := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = origDBPath }()

	assert.Equal(t, expected, DBPath())
}

func TestBuilder(t *testing.T) {
	// Use temp directory for test database
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	defer func() { dbPathFunc = origDBPath }()

	t.Run("fluent API success", func(t *testing.T) {
		Close()
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project/.xsearch")

		Event("search:search", "search").
			Author("test-user").
			Request("req-1").
			Phrase("mouse").
			Count(5).
			Write(nil) // success

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var source, author, request, phrase string
		var count, success int
		err = db.QueryRow("SELECT source, author, request, phrase, count, success FROM log ORDER BY id DESC LIMIT 1").
			Scan(&source, &author, &request, &phrase, &count, &success)
		require.NoError(t, err)
		assert.Equal(t, "search:search", source)
		assert.Equal(t, "test-user", author)
		assert.Equal(t, "req-1", request)
		assert.Equal(t, "mouse", phrase)
		assert.Equal(t, 5, count)
		assert.Equal(t, 1, success)
	})

	t.Run("fluent API with error", func(t *testing.T) {
		Close()
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project/.xsearch")

		testErr := sql.ErrNoRows // use any error
		Event("content:post", "show").
			Author("test-user").
			Post(12).
			Write(testErr)

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var success int
		var errMsg string
		err = db.QueryRow("SELECT success, error FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, testErr.Error(), errMsg)
	})

	t.Run("fluent API with Detail", func(t *testing.T) {
		Close()
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetProject("/test/project/.xsearch")

		Event("search:taxonomy", "discover").
			Author("test-user").
			Detail("post_types", "product").
			Detail("found", 42).
			Write(nil)

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var detail string
		err = db.QueryRow("SELECT detail FROM log ORDER BY id DESC LIMIT 1").Scan(&detail)
		require.NoError(t, err)
		assert.Contains(t, detail, "product")
		assert.Contains(t, detail, "42")
	})
}
