// import.go implements the "xsearch import" command for YAML seed files.

package content

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jpl-au/xsearch/cmd"
	"github.com/jpl-au/xsearch/extension"
	"github.com/jpl-au/xsearch/internal/importer"
	"github.com/jpl-au/xsearch/internal/log"
)

func (e *Extension) newImportCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import taxonomies and posts from a YAML seed",
		Long: `Import taxonomies and posts from a YAML seed file.

  taxonomies:
    - name: product_cat
      post_types: [product]
  posts:
    - title: MX Master
      type: product
      meta:
        sku: MX-3
      terms:
        product_cat: [Mice, Wireless]

The seed is written in one transaction. Use --dry-run to validate it and
see what would be written.`,
		Args: cobra.ExactArgs(1),
		RunE: e.runImport,
	}
	c.Flags().BoolP(extension.FlagDryRun, "n", false, "Validate and report without writing")
	return c
}

func (e *Extension) runImport(c *cobra.Command, args []string) error {
	path := args[0]
	dryRun, _ := c.Flags().GetBool(extension.FlagDryRun)

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	result, err := importer.RunFile(c.Context(), w, e.svc, path, importer.Options{DryRun: dryRun})

	log.Event("content:import", "import").
		Author(cmd.Author()).
		Count(result.Posts).
		Detail("source", path).
		Detail("dry_run", dryRun).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("import %s: %w", path, err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(result)
	}
	verb := "Imported"
	if dryRun {
		verb = "Would import"
	}
	fmt.Fprintf(cmd.Out(), "%s %d posts, %d meta rows, %d terms, %d taxonomy registrations\n",
		verb, result.Posts, result.Meta, result.Terms, result.Taxonomies)
	return nil
}
