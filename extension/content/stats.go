// stats.go implements the "xsearch stats" command.

package content

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpl-au/xsearch/cmd"
	"github.com/jpl-au/xsearch/internal/format"
	"github.com/jpl-au/xsearch/internal/log"
)

func (e *Extension) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count posts, metadata, terms and taxonomies",
		Args:  cobra.NoArgs,
		RunE:  e.runStats,
	}
}

func (e *Extension) runStats(c *cobra.Command, _ []string) error {
	st, err := e.svc.Stats(c.Context())

	log.Event("content:stats", "read").Author(cmd.Author()).Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("stats: %w", err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(st)
	}
	return format.Stats(cmd.Out(), st)
}
