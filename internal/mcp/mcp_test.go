package mcp

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/xsearch/extension"
	"github.com/jpl-au/xsearch/internal/config"
	"github.com/jpl-au/xsearch/internal/content"
	"github.com/jpl-au/xsearch/internal/repo"
	"github.com/jpl-au/xsearch/internal/service"
	"github.com/jpl-au/xsearch/internal/store"
)

func setupHandlers(t *testing.T) *handlers {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, content.Init(false, "", false, dir, ""))

	cfg := &config.Config{}
	require.NoError(t, cfg.Set("search.meta_keys", "sku"))
	svc, err := content.Open(filepath.Join(dir, repo.Dir, repo.DBFile), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return &handlers{svc: svc}
}

func call(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "text content")
	return tc.Text
}

func TestParsePostURI(t *testing.T) {
	tests := []struct {
		uri     string
		want    int64
		wantErr error
	}{
		{"xsearch://posts/42", 42, nil},
		{"xsearch://posts/", 0, ErrEmptyID},
		{"xsearch://posts/abc", 0, ErrInvalidURI},
		{"xsearch://posts/-1", 0, ErrInvalidURI},
		{"other://posts/1", 0, ErrInvalidURI},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			id, err := parsePostURI(tt.uri)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestTools_RequireInit(t *testing.T) {
	h := &handlers{}
	res, err := h.search(context.Background(), call("xsearch_search", map[string]any{"phrase": "x"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, ErrNotInitialised, text(t, res))
}

func TestTools_Search(t *testing.T) {
	h := setupHandlers(t)
	ctx := context.Background()

	id, err := h.svc.AddPost(ctx, store.Post{Title: "MX Master", Content: "secret body"})
	require.NoError(t, err)
	require.NoError(t, h.svc.SetMeta(ctx, id, "sku", "MOUSE-1"))

	res, err := h.search(ctx, call("xsearch_search", map[string]any{"phrase": "mouse"}))
	require.NoError(t, err)
	require.False(t, res.IsError, text(t, res))

	var out struct {
		Request   string           `json:"request"`
		Rewritten bool             `json:"rewritten"`
		Posts     []store.PostJSON `json:"posts"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &out))
	assert.True(t, out.Rewritten)
	assert.NotEmpty(t, out.Request)
	require.Len(t, out.Posts, 1)
	assert.Equal(t, id, out.Posts[0].ID)
	assert.Empty(t, out.Posts[0].Content, "content omitted by default")
}

func TestTools_SearchRequiresPhrase(t *testing.T) {
	h := setupHandlers(t)
	res, err := h.search(context.Background(), call("xsearch_search", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestTools_Explain(t *testing.T) {
	h := setupHandlers(t)

	res, err := h.explain(context.Background(), call("xsearch_explain", map[string]any{"phrase": "mouse"}))
	require.NoError(t, err)
	require.False(t, res.IsError, text(t, res))

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &out))
	assert.Equal(t, []any{"sku"}, out["meta_keys"])
	assert.Contains(t, out["rewritten"], "xs_meta")
	assert.NotContains(t, out["default"], "xs_meta")
}

func TestTools_PostAndResource(t *testing.T) {
	h := setupHandlers(t)
	ctx := context.Background()

	id, err := h.svc.AddPost(ctx, store.Post{Title: "Hello"})
	require.NoError(t, err)
	require.NoError(t, h.svc.SetMeta(ctx, id, "sku", "A1"))

	res, err := h.post(ctx, call("xsearch_post", map[string]any{"id": float64(id)}))
	require.NoError(t, err)
	require.False(t, res.IsError, text(t, res))
	assert.Contains(t, text(t, res), `"A1"`)

	contents, err := h.readPostResource(ctx, "xsearch://posts/1")
	require.NoError(t, err)
	require.Len(t, contents, 1)
	rc, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Contains(t, rc.Text, `"Hello"`)

	res, err = h.post(ctx, call("xsearch_post", map[string]any{"id": float64(id + 1)}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestTools_Stats(t *testing.T) {
	h := setupHandlers(t)
	ctx := context.Background()

	_, err := h.svc.AddPost(ctx, store.Post{Title: "one"})
	require.NoError(t, err)

	res, err := h.stats(ctx, call("xsearch_stats", nil))
	require.NoError(t, err)

	var st store.Stats
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &st))
	assert.Equal(t, int64(1), st.Posts)
}

func TestExtensionHandler(t *testing.T) {
	var got service.Service
	fn := func(_ context.Context, extCtx extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		got = extCtx.Service()
		return mcp.NewToolResultText("ok"), nil
	}

	t.Run("uninitialised", func(t *testing.T) {
		h := &handlers{}
		res, err := h.extensionHandler(fn)(context.Background(), call("ext", nil))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Nil(t, got)
	})

	t.Run("initialised", func(t *testing.T) {
		h := setupHandlers(t)
		res, err := h.extensionHandler(fn)(context.Background(), call("ext", nil))
		require.NoError(t, err)
		assert.Equal(t, "ok", text(t, res))
		assert.Same(t, h.svc, got)
	})
}
