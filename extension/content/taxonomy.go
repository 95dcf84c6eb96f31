// taxonomy.go implements the "xsearch taxonomy" and "xsearch term" commands.
//
// Registration is what makes a taxonomy searchable by default: the search
// discovers taxonomies registered for the searched post types. A term can
// be assigned under any taxonomy, registered or not.

package content

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpl-au/xsearch/cmd"
	"github.com/jpl-au/xsearch/internal/log"
)

func (e *Extension) newTaxonomyCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "taxonomy",
		Short: "Manage taxonomy registrations",
	}
	c.AddCommand(&cobra.Command{
		Use:   "register <taxonomy> <post-type>...",
		Short: "Attach a taxonomy to post types",
		Args:  cobra.MinimumNArgs(2),
		RunE:  e.runTaxonomyRegister,
	})
	return c
}

func (e *Extension) newTermCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "term",
		Short: "Manage post terms",
	}
	c.AddCommand(&cobra.Command{
		Use:   "assign <id> <taxonomy> <name>",
		Short: "Attach a term to a post, creating it if needed",
		Args:  cobra.ExactArgs(3),
		RunE:  e.runTermAssign,
	})
	return c
}

func (e *Extension) runTaxonomyRegister(c *cobra.Command, args []string) error {
	taxonomy, types := args[0], args[1:]

	err := e.svc.RegisterTaxonomy(c.Context(), taxonomy, types)

	log.Event("content:taxonomy", "register").
		Author(cmd.Author()).
		Detail("taxonomy", taxonomy).
		Detail("post_types", types).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("taxonomy register %s: %w", taxonomy, err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"taxonomy": taxonomy, "post_types": types})
	}
	fmt.Fprintf(cmd.Out(), "Registered %s for %v\n", taxonomy, types)
	return nil
}

func (e *Extension) runTermAssign(c *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return cmd.PrintJSONError(err)
	}
	taxonomy, name := args[1], args[2]

	err = e.svc.AssignTerm(c.Context(), id, taxonomy, name)

	log.Event("content:term", "assign").
		Author(cmd.Author()).
		Post(id).
		Detail("taxonomy", taxonomy).
		Detail("term", name).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("term assign %d: %w", id, err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"id": id, "taxonomy": taxonomy, "term": name})
	}
	fmt.Fprintf(cmd.Out(), "#%d %s: %s\n", id, taxonomy, name)
	return nil
}
