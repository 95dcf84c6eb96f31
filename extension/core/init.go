// init.go implements the "xsearch init" command for repository initialisation.
//
// Separated from extension.go to isolate init-specific logic. Init is special
// because it runs before a store exists and creates the initial database.
//
// Design: Init does not write config, with one exception. The table prefix
// is needed by every later command to find the tables, so --prefix records
// store.table_prefix in the local config. Everything else is managed via
// "xsearch config".

package core

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpl-au/xsearch/cmd"
	"github.com/jpl-au/xsearch/extension"
	"github.com/jpl-au/xsearch/internal/config"
	"github.com/jpl-au/xsearch/internal/content"
	"github.com/jpl-au/xsearch/internal/log"
	"github.com/jpl-au/xsearch/internal/repo"
)

func newInitCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "init",
		Short: "Initialise a new xsearch store",
		Long: `Creates a .xsearch/xsearch.db database in the current directory.

Use --db to create additional databases:
  xsearch init --db shop    # creates .xsearch/xsearch-shop.db

Use --dir to create in a different directory:
  xsearch init --dir /path/to/project    # creates /path/to/project/.xsearch/xsearch.db

Use --local to exclude from git:
  xsearch init --db scratch --local    # creates xsearch-scratch.db, not committed

Use --prefix to name the content tables (default wp_):
  xsearch init --prefix cms_    # creates cms_posts, cms_postmeta, ...`,
		RunE: runInit,
	}
	c.Flags().BoolP(extension.FlagLocal, "l", false, "Mark database as local (gitignored)")
	c.Flags().String(extension.FlagPrefix, "", "Table prefix (default from store.table_prefix, else wp_)")
	return c
}

func runInit(c *cobra.Command, _ []string) error {
	local, _ := c.Flags().GetBool(extension.FlagLocal)
	prefix, _ := c.Flags().GetString(extension.FlagPrefix)
	db, dir := cmd.DB(), cmd.Dir()

	// --local adds the database to the current project's .gitignore, while
	// --dir creates it elsewhere. The combination has no sensible meaning.
	if local && dir != "" {
		return cmd.PrintJSONError(fmt.Errorf("cannot use --local with --dir: --local modifies the current project's .gitignore, but --dir creates the database elsewhere"))
	}
	if prefix != "" && dir != "" {
		return cmd.PrintJSONError(fmt.Errorf("cannot use --prefix with --dir: the prefix is recorded in the current project's config"))
	}

	explicit := prefix != ""
	if !explicit {
		cfg, err := config.Load()
		if err != nil {
			return cmd.PrintJSONError(err)
		}
		prefix = cfg.TablePrefix()
	}

	err := content.Init(cmd.Force(), db, local, dir, prefix)
	if err == nil && explicit {
		err = savePrefix(prefix)
	}

	log.Event("core:init", "init").
		Author(cmd.Author()).
		Detail("db", db).
		Detail("dir", dir).
		Detail("local", local).
		Detail("prefix", prefix).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("init: %w", err))
	}

	dbFile := repo.DBFileName(db)
	loc := repo.Dir + "/" + dbFile
	if dir != "" {
		loc = dir + "/" + repo.Dir + "/" + dbFile
	}
	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"database": loc, "prefix": prefix})
	}
	fmt.Fprintf(cmd.Out(), "Initialised xsearch store in %s (tables %sposts, ...)\n", loc, prefix)
	return nil
}

// savePrefix records prefix in the local config, validating it first.
func savePrefix(prefix string) error {
	cfg, err := config.LoadScope(config.ScopeLocal)
	if err != nil {
		return err
	}
	if err := cfg.Set("store.table_prefix", prefix); err != nil {
		return err
	}
	return cfg.SaveScope(config.ScopeLocal)
}
