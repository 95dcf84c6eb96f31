// config.go implements the "xsearch config" command for configuration management.
//
// Separated from extension.go to isolate config-specific logic including
// the local vs global config precedence rules.
//
// Design: Config follows a cascade model similar to git: local config
// (.xsearch/config.yaml) takes precedence over global (~/.xsearch/config.yaml).
// The --local flag forces use of local config even if it doesn't exist yet,
// enabling config setup during init workflows.

package core

import (
	"fmt"

	"github.com/jpl-au/xsearch/cmd"
	"github.com/jpl-au/xsearch/extension"
	"github.com/jpl-au/xsearch/internal/config"
	"github.com/jpl-au/xsearch/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  xsearch config                              # show config
  xsearch config search.meta_keys             # show searched meta keys
  xsearch config search.meta_keys sku,brand   # search these meta values
  xsearch config search.taxonomies ""         # stop matching terms
  xsearch config search.taxonomies -          # back to discovered taxonomies

Keys:
  author.name, author.email   recorded in the audit log
  store.table_prefix          content table prefix (default wp_)
  search.post_types           searched post types (default post,page)
  search.meta_keys            searched meta keys (default none)
  search.taxonomies           searched taxonomies (default: discovered)
  search.limit                results per search (default 10)

Lists are comma-separated. An empty list switches that part of the
search off; "-" removes the override and restores the default.

Configuration locations:
  Global: ~/.xsearch/config.yaml
  Local:  .xsearch/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool(extension.FlagLocal, false, "Use local config (.xsearch/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool(extension.FlagLocal)

	// Load config: local if exists, otherwise global
	// --local flag forces local even if it doesn't exist yet
	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		// Show all values, in key order
		all := cfg.All()
		if cmd.JSON() {
			_ = cmd.PrintJSON(all)
		} else {
			for _, k := range config.ValidKeys() {
				fmt.Fprintf(cmd.Out(), "%s: %s\n", k, all[k])
			}
		}
		log.Event("core:config", "list").Author(cmd.Author()).Write(nil)

	case 1:
		// Get single value
		v, err := cfg.Get(args[0])
		log.Event("core:config", "get").Author(cmd.Author()).Detail("key", args[0]).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(cmd.Out(), v)

	case 2:
		// Set value - write to same place we read from
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("core:config", "set").Author(cmd.Author()).Detail("key", args[0]).Write(err)
			return cmd.PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := cfg.Save()
		// Note: value intentionally not logged; author.email is personal data
		log.Event("core:config", "set").Author(cmd.Author()).Detail("key", args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return cmd.PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		fmt.Fprintf(cmd.Out(), "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}
