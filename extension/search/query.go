// query.go implements the "xsearch search" command.
//
// Design: Output follows the guide command. A terminal gets the results as
// glamour-rendered markdown with a snippet around each match; a pipe gets a
// plain aligned listing, or bare IDs with --ids.

package search

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jpl-au/xsearch/cmd"
	"github.com/jpl-au/xsearch/extension"
	"github.com/jpl-au/xsearch/internal/format"
	"github.com/jpl-au/xsearch/internal/log"
	"github.com/jpl-au/xsearch/internal/service"
	"github.com/jpl-au/xsearch/internal/store"
)

func (e *Extension) newSearchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "search <phrase>",
		Short: "Search published posts",
		Long: `Search published posts, newest first.

The phrase is matched literally against titles and content. Unless --admin
is set, it is also matched against the values of search.meta_keys and the
names of terms in searchable taxonomies, and results are restricted to
search.post_types.`,
		Args: cobra.ExactArgs(1),
		RunE: e.runSearch,
	}
	c.Flags().Bool(extension.FlagAdmin, false, "Administrative search: title and content only")
	c.Flags().IntP(extension.FlagLimit, "n", 0, "Maximum posts to return (default: search.limit)")
	c.Flags().StringArrayP(extension.FlagType, "t", nil, "Post type to search, honoured with --admin only; other searches use search.post_types (repeatable)")
	c.Flags().BoolP(extension.FlagIDs, "l", false, "Only output post IDs")
	c.Flags().Bool(extension.FlagRaw, false, "Plain listing even on a terminal")
	c.Flags().Bool(extension.FlagContent, false, "Include content in JSON output")
	return c
}

func (e *Extension) runSearch(c *cobra.Command, args []string) error {
	phrase := args[0]
	admin, _ := c.Flags().GetBool(extension.FlagAdmin)
	limit, _ := c.Flags().GetInt(extension.FlagLimit)
	types, _ := c.Flags().GetStringArray(extension.FlagType)
	idsOnly, _ := c.Flags().GetBool(extension.FlagIDs)
	raw, _ := c.Flags().GetBool(extension.FlagRaw)
	withContent, _ := c.Flags().GetBool(extension.FlagContent)

	opts := service.SearchOptions{Admin: admin, Limit: limit, PostTypes: types}
	res, err := e.svc.Search(c.Context(), phrase, opts)

	l := log.Event("search:search", "search").Author(cmd.Author()).Phrase(phrase).Detail("admin", admin)
	if res != nil {
		l.Request(res.Request).Count(len(res.Posts))
	}
	l.Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("search %q: %w", phrase, err))
	}

	if cmd.JSON() {
		posts := make([]store.PostJSON, len(res.Posts))
		for i := range res.Posts {
			posts[i] = res.Posts[i].ToJSON(withContent)
		}
		return cmd.PrintJSON(map[string]any{
			"request":   res.Request,
			"phrase":    res.Phrase,
			"rewritten": res.Rewritten,
			"posts":     posts,
		})
	}

	w := cmd.Out()
	if idsOnly {
		return format.IDs(w, res.Posts)
	}
	if !raw && term.IsTerminal(int(os.Stdout.Fd())) {
		md := format.Markdown(res.Posts, phrase)
		rendered, err := glamour.Render(md, "dark")
		if err == nil {
			md = rendered
		}
		_, err = fmt.Fprint(w, md)
		return err
	}
	return format.List(w, res.Posts)
}
