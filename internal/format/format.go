// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// business logic while this package handles presentation concerns like
// column alignment, match snippets and markdown for terminal rendering.
package format

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jpl-au/xsearch/internal/store"
)

// snippetWidth is the number of characters of context kept around a match.
const snippetWidth = 40

// List prints search results one per line: ID, date, type and title.
func List(w io.Writer, posts []store.Post) error {
	if len(posts) == 0 {
		return nil
	}

	maxType := 4 // minimum "TYPE"
	for _, p := range posts {
		maxType = max(maxType, len(p.Type))
	}

	fmt.Fprintf(w, "%6s  %-10s  %-*s  %s\n", "ID", "DATE", maxType, "TYPE", "TITLE")
	for _, p := range posts {
		date := time.Unix(p.Date, 0).UTC().Format("2006-01-02")
		fmt.Fprintf(w, "%6d  %s  %-*s  %s\n", p.ID, date, maxType, p.Type, p.Title)
	}
	return nil
}

// IDs prints just post IDs, one per line.
func IDs(w io.Writer, posts []store.Post) error {
	for _, p := range posts {
		fmt.Fprintln(w, p.ID)
	}
	return nil
}

// Snippet returns the text around the first case-insensitive occurrence of
// phrase in s, or "" when s does not contain it.
func Snippet(s, phrase string) string {
	if phrase == "" {
		return ""
	}
	idx := strings.Index(strings.ToLower(s), strings.ToLower(phrase))
	if idx < 0 {
		return ""
	}

	start := max(0, idx-snippetWidth)
	end := min(len(s), idx+len(phrase)+snippetWidth)
	out := strings.Join(strings.Fields(s[start:end]), " ")
	if start > 0 {
		out = "..." + out
	}
	if end < len(s) {
		out += "..."
	}
	return out
}

// Markdown renders search results as a markdown document for glamour.
// Posts that matched through metadata or terms have no body snippet and
// are marked as such.
func Markdown(posts []store.Post, phrase string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Results for %q\n\n", phrase)
	if len(posts) == 0 {
		b.WriteString("_No posts matched._\n")
		return b.String()
	}

	for _, p := range posts {
		date := time.Unix(p.Date, 0).UTC().Format("2006-01-02")
		fmt.Fprintf(&b, "## %s\n\n", p.Title)
		fmt.Fprintf(&b, "`#%d` · %s · %s\n\n", p.ID, p.Type, date)

		snippet := Snippet(p.Title+" "+p.Content, phrase)
		if snippet == "" {
			b.WriteString("_Matched on metadata or terms._\n\n")
			continue
		}
		fmt.Fprintf(&b, "> %s\n\n", snippet)
	}
	return b.String()
}

// Post prints one post with its metadata and terms.
func Post(w io.Writer, p *store.Post, meta []store.MetaEntry, terms []store.Term) error {
	date := time.Unix(p.Date, 0).UTC().Format(time.RFC3339)
	fmt.Fprintf(w, "ID:      %d\n", p.ID)
	fmt.Fprintf(w, "Title:   %s\n", p.Title)
	fmt.Fprintf(w, "Type:    %s\n", p.Type)
	fmt.Fprintf(w, "Status:  %s\n", p.Status)
	fmt.Fprintf(w, "Date:    %s\n", date)

	if len(meta) > 0 {
		fmt.Fprintln(w, "\nMeta:")
		for _, m := range meta {
			fmt.Fprintf(w, "  %s = %s\n", m.Key, m.Value)
		}
	}
	if len(terms) > 0 {
		fmt.Fprintln(w, "\nTerms:")
		for _, t := range terms {
			fmt.Fprintf(w, "  %s: %s\n", t.Taxonomy, t.Name)
		}
	}
	if p.Content != "" {
		fmt.Fprintf(w, "\n%s\n", p.Content)
	}
	return nil
}

// Stats prints aggregate store counts.
func Stats(w io.Writer, s *store.Stats) error {
	rows := []struct {
		label string
		n     int64
	}{
		{"Posts", s.Posts},
		{"Published", s.Published},
		{"Meta rows", s.MetaRows},
		{"Meta keys", s.MetaKeys},
		{"Terms", s.Terms},
		{"Taxonomies", s.Taxonomies},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-11s %d\n", r.label+":", r.n)
	}
	return nil
}
