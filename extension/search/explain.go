// explain.go implements the "xsearch explain" command.
//
// Shows the lists the rewrite resolved for a phrase, then the difference
// between the statement an administrative search would run and the one a
// normal search runs.

package search

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jpl-au/xsearch/cmd"
	"github.com/jpl-au/xsearch/extension"
	"github.com/jpl-au/xsearch/internal/diff"
	"github.com/jpl-au/xsearch/internal/log"
	"github.com/jpl-au/xsearch/internal/service"
)

func (e *Extension) newExplainCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "explain <phrase>",
		Short: "Show how a search for phrase is rewritten",
		Args:  cobra.ExactArgs(1),
		RunE:  e.runExplain,
	}
	c.Flags().Bool(extension.FlagRaw, false, "Print both statements in full instead of a diff")
	return c
}

func (e *Extension) runExplain(c *cobra.Command, args []string) error {
	phrase := args[0]
	raw, _ := c.Flags().GetBool(extension.FlagRaw)

	ex, err := e.svc.Explain(c.Context(), phrase)

	log.Event("search:explain", "explain").Author(cmd.Author()).Phrase(phrase).Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("explain %q: %w", phrase, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{
			"phrase":     phrase,
			"post_types": ex.Scope.DocumentTypes,
			"meta_keys":  ex.Scope.MetaKeys,
			"taxonomies": ex.Scope.Taxonomies,
			"default":    ex.Default,
			"rewritten":  ex.Rewritten,
			"changed":    ex.Diff.Changed(),
		})
	}

	w := cmd.Out()
	printScope(w, ex)
	fmt.Fprintln(w)

	if raw {
		fmt.Fprintf(w, "Default:\n%s\n\nRewritten:\n%s\n", diff.Clauses(ex.Default), diff.Clauses(ex.Rewritten))
		return nil
	}
	fmt.Fprint(w, ex.Diff.Format(term.IsTerminal(int(os.Stdout.Fd()))))
	return nil
}

func printScope(w io.Writer, ex *service.Explanation) {
	fmt.Fprintf(w, "Post types: %s\n", list(ex.Scope.DocumentTypes))
	fmt.Fprintf(w, "Meta keys:  %s\n", list(ex.Scope.MetaKeys))
	fmt.Fprintf(w, "Taxonomies: %s\n", list(ex.Scope.Taxonomies))
}

func list(s []string) string {
	if len(s) == 0 {
		return "(none)"
	}
	return strings.Join(s, ", ")
}
