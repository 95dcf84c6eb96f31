// export.go implements the "xsearch export" command.

package content

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jpl-au/xsearch/cmd"
	"github.com/jpl-au/xsearch/internal/exporter"
	"github.com/jpl-au/xsearch/internal/log"
)

func (e *Extension) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.yaml>",
		Short: "Export the store as a YAML seed",
		Long: `Export every taxonomy registration and post, with metadata and terms,
as a seed file that "xsearch import" can load into another store.

  xsearch export catalogue.yaml
  xsearch --db shop export backup/shop --force`,
		Args: cobra.ExactArgs(1),
		RunE: e.runExport,
	}
}

func (e *Extension) runExport(c *cobra.Command, args []string) error {
	dst := args[0]

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	result, err := exporter.Run(c.Context(), w, e.svc, dst, exporter.Options{Force: cmd.Force()})

	log.Event("content:export", "export").
		Author(cmd.Author()).
		Count(result.Posts).
		Detail("destination", result.Path).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("export %s: %w", dst, err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(result)
	}
	return nil
}
