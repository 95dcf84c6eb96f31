// meta.go implements the "xsearch meta" command.

package content

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpl-au/xsearch/cmd"
	"github.com/jpl-au/xsearch/extension"
	"github.com/jpl-au/xsearch/internal/log"
)

func (e *Extension) newMetaCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "meta",
		Short: "Manage post metadata",
	}
	set := &cobra.Command{
		Use:   "set <id> <key> <value>",
		Short: "Set a metadata value on a post",
		Long: `Set a metadata value on a post, replacing any existing rows for the key.
Use --add to keep existing rows and append another.

Metadata is only searched for keys listed in search.meta_keys:
  xsearch config search.meta_keys sku`,
		Args: cobra.ExactArgs(3),
		RunE: e.runMetaSet,
	}
	set.Flags().Bool(extension.FlagAdd, false, "Append a row instead of replacing")
	c.AddCommand(set)
	return c
}

func (e *Extension) runMetaSet(c *cobra.Command, args []string) error {
	ctx := c.Context()
	id, err := parseID(args[0])
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	key, value := args[1], args[2]
	add, _ := c.Flags().GetBool(extension.FlagAdd)

	if add {
		err = e.svc.AddMeta(ctx, id, key, value)
	} else {
		err = e.svc.SetMeta(ctx, id, key, value)
	}

	log.Event("content:meta", "set").
		Author(cmd.Author()).
		Post(id).
		Detail("key", key).
		Detail("add", add).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("meta set %d %s: %w", id, key, err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"id": id, "key": key, "value": value})
	}
	fmt.Fprintf(cmd.Out(), "#%d %s = %s\n", id, key, value)
	return nil
}
