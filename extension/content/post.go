// post.go implements the "xsearch post" command and its subcommands.
//
// Design: Metadata and terms can be attached in the same call that creates
// the post (--meta key=value, --term taxonomy=name). All of it is written in
// one batch, so a bad term does not leave a half-tagged post behind.

package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jpl-au/xsearch/cmd"
	"github.com/jpl-au/xsearch/extension"
	"github.com/jpl-au/xsearch/internal/format"
	"github.com/jpl-au/xsearch/internal/log"
	"github.com/jpl-au/xsearch/internal/store"
)

// ErrInvalidPair is returned for a --meta or --term value without "=".
var ErrInvalidPair = errors.New("expected key=value")

func (e *Extension) newPostCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "post",
		Short: "Add or show posts",
	}
	c.AddCommand(e.newPostAddCmd())
	c.AddCommand(e.newPostShowCmd())
	return c
}

func (e *Extension) newPostAddCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a post",
		Long: `Add a post. Content comes from --content, or stdin when piped.

  xsearch post add "Wireless mouse review" --content "..."
  xsearch post add "MX Master" --type product --meta sku=MX-3 --term product_cat=Mice
  cat body.md | xsearch post add "Release notes"`,
		Args: cobra.ExactArgs(1),
		RunE: e.runPostAdd,
	}
	c.Flags().String(extension.FlagContent, "", "Post content (default: stdin when piped)")
	c.Flags().String(extension.FlagType, "post", "Post type")
	c.Flags().String(extension.FlagStatus, store.StatusPublish, "Post status (publish, draft)")
	c.Flags().String(extension.FlagDate, "", "Publication date, RFC3339 or YYYY-MM-DD (default: now)")
	c.Flags().StringArray(extension.FlagMeta, nil, "Metadata key=value (repeatable)")
	c.Flags().StringArray(extension.FlagTerm, nil, "Term taxonomy=name (repeatable)")
	return c
}

func (e *Extension) newPostShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a post with its metadata and terms",
		Args:  cobra.ExactArgs(1),
		RunE:  e.runPostShow,
	}
}

func (e *Extension) runPostAdd(c *cobra.Command, args []string) error {
	ctx := c.Context()
	title := args[0]
	typ, _ := c.Flags().GetString(extension.FlagType)
	status, _ := c.Flags().GetString(extension.FlagStatus)
	dateFlag, _ := c.Flags().GetString(extension.FlagDate)
	metaFlags, _ := c.Flags().GetStringArray(extension.FlagMeta)
	termFlags, _ := c.Flags().GetStringArray(extension.FlagTerm)

	body, err := readContent(c)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	date, err := parseDate(dateFlag)
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	meta, err := parsePairs(metaFlags)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("--%s: %w", extension.FlagMeta, err))
	}
	terms, err := parsePairs(termFlags)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("--%s: %w", extension.FlagTerm, err))
	}

	p := store.Post{Title: title, Content: body, Type: typ, Status: status, Date: date}
	id, err := addPost(ctx, e, p, meta, terms)

	log.Event("content:post", "add").
		Author(cmd.Author()).
		Post(id).
		Detail("type", typ).
		Detail("meta", len(meta)).
		Detail("terms", len(terms)).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("post add: %w", err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]int64{"id": id})
	}
	fmt.Fprintf(cmd.Out(), "Added post #%d\n", id)
	return nil
}

// addPost writes the post, its metadata and its terms in one batch.
func addPost(ctx context.Context, e *Extension, p store.Post, meta, terms [][2]string) (int64, error) {
	var id int64
	err := e.svc.Batch(ctx, func(b store.BatchWriter) error {
		var err error
		if id, err = b.InsertPost(ctx, p); err != nil {
			return err
		}
		for _, kv := range meta {
			if err := b.AddMeta(ctx, id, kv[0], kv[1]); err != nil {
				return err
			}
		}
		for _, kv := range terms {
			if err := b.AssignTerm(ctx, id, kv[0], kv[1]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (e *Extension) runPostShow(c *cobra.Command, args []string) error {
	ctx := c.Context()
	id, err := parseID(args[0])
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	l := log.Event("content:post", "show").Author(cmd.Author()).Post(id)

	p, err := e.svc.Post(ctx, id)
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("post show %d: %w", id, err))
	}
	meta, err := e.svc.Meta(ctx, id)
	if err != nil {
		l.Write(err)
		return cmd.PrintJSONError(err)
	}
	terms, err := e.svc.Terms(ctx, id)
	l.Write(err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{
			"post":  p.ToJSON(true),
			"meta":  meta,
			"terms": terms,
		})
	}
	return format.Post(cmd.Out(), p, meta, terms)
}

// readContent returns --content, or stdin when it is piped.
func readContent(c *cobra.Command) (string, error) {
	if c.Flags().Changed(extension.FlagContent) {
		return c.Flags().GetString(extension.FlagContent)
	}
	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 {
		return "", nil
	}
	data, err := io.ReadAll(c.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// parseDate accepts RFC3339 or YYYY-MM-DD. Empty means now.
func parseDate(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Unix(), nil
		}
	}
	return 0, fmt.Errorf("invalid date %q (want RFC3339 or YYYY-MM-DD)", s)
}

// parsePairs splits each key=value on the first "=".
func parsePairs(values []string) ([][2]string, error) {
	out := make([][2]string, 0, len(values))
	for _, v := range values {
		k, val, ok := strings.Cut(v, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPair, v)
		}
		out = append(out, [2]string{k, val})
	}
	return out, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(s, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid post id %q", s)
	}
	return id, nil
}
