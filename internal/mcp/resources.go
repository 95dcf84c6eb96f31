// resources.go implements MCP resource handlers for post access.
//
// MCP resources provide read-only access to posts via URI schemes, enabling
// LLM clients to reference a post without using tools. This is useful for
// context loading where the LLM needs a search hit in full but isn't
// performing an action.
//
// Design: Resource URIs follow the pattern xsearch://posts/{id}. The body
// is the same JSON the xsearch_post tool returns.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/xsearch/internal/store"
)

var (
	// ErrInvalidURI indicates a malformed resource URI, helping clients
	// debug URI construction issues.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyID indicates a missing post ID in a resource URI.
	ErrEmptyID = errors.New("empty post ID")
)

// postView is a post together with its metadata and terms.
type postView struct {
	store.PostJSON
	Meta  []store.MetaEntry `json:"meta"`
	Terms []store.Term      `json:"terms"`
}

// loadPost reads a post and everything attached to it.
func (h *handlers) loadPost(ctx context.Context, id int64) (*postView, error) {
	p, err := h.svc.Post(ctx, id)
	if err != nil {
		return nil, err
	}
	meta, err := h.svc.Meta(ctx, id)
	if err != nil {
		return nil, err
	}
	terms, err := h.svc.Terms(ctx, id)
	if err != nil {
		return nil, err
	}
	return &postView{PostJSON: p.ToJSON(true), Meta: meta, Terms: terms}, nil
}

// readPostResource reads a post and returns it as resource contents.
func (h *handlers) readPostResource(ctx context.Context, uri string) ([]mcp.ResourceContents, error) {
	if h.svc == nil {
		return nil, errors.New(ErrNotInitialised)
	}

	id, err := parsePostURI(uri)
	if err != nil {
		return nil, err
	}

	v, err := h.loadPost(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := store.MarshalJSON(v)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// parsePostURI extracts the post ID from xsearch://posts/{id}.
func parsePostURI(uri string) (int64, error) {
	const prefix = "xsearch://posts/"
	if !strings.HasPrefix(uri, prefix) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}

	rest := strings.TrimPrefix(uri, prefix)
	if rest == "" {
		return 0, ErrEmptyID
	}

	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid post ID %s", ErrInvalidURI, rest)
	}
	return id, nil
}
