// db.go implements the "xsearch db" command for database management.
//
// Separated from extension.go to isolate multi-database management logic.
// A project can hold several stores (one per site, say), each with its own
// tables and taxonomy registry.
//
// Design: DB is a NoStoreCommand because it manages database metadata
// (gitignore entries) without needing to open the databases themselves.
// This allows managing databases that might be locked or corrupted.

package core

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jpl-au/xsearch/cmd"
	"github.com/jpl-au/xsearch/extension"
	"github.com/jpl-au/xsearch/internal/log"
	"github.com/jpl-au/xsearch/internal/repo"
)

func newDBCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "db [name]",
		Short: "List databases or mark one as local",
		Long: `List databases or mark one as local.

  xsearch db                    # list all databases
  xsearch db shop               # show whether xsearch-shop.db is local
  xsearch db --local            # mark default database as local
  xsearch db shop --local       # mark shop database as local
  xsearch db --dir /path        # list databases in external directory

Local databases are gitignored. Shared databases are committed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDB,
	}
	c.Flags().BoolP(extension.FlagLocal, "l", false, "Mark database as local")
	return c
}

func runDB(c *cobra.Command, args []string) error {
	local, _ := c.Flags().GetBool(extension.FlagLocal)

	// repo functions expect the .xsearch directory path, not the project
	// root. Empty means discover it from the working directory.
	dir := cmd.Dir()
	repoDir := ""
	if dir != "" {
		repoDir = filepath.Join(dir, repo.Dir)
	}

	// No args and no flags: list databases
	if len(args) == 0 && !local {
		err := listDBs(repoDir)

		log.Event("core:db", "list").
			Author(cmd.Author()).
			Detail("dir", dir).
			Write(err)

		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("db list: %w", err))
		}
		return nil
	}

	// Empty name means the default database
	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	if local {
		err := repo.IgnoreDB(name, repoDir)

		log.Event("core:db", "ignore").
			Author(cmd.Author()).
			Detail("db", name).
			Detail("dir", dir).
			Write(err)

		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("db ignore %q: %w", name, err))
		}
		fmt.Fprintf(cmd.Out(), "%s marked as local\n", repo.DBFileName(name))
		return nil
	}

	ignored, err := repo.IsIgnored(name, repoDir)

	log.Event("core:db", "status").
		Author(cmd.Author()).
		Detail("db", name).
		Detail("dir", dir).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("db status %q: %w", name, err))
	}
	fmt.Fprintf(cmd.Out(), "%s: %s\n", repo.DBFileName(name), status(ignored))
	return nil
}

// listDBs displays all databases in the target directory with their status.
func listDBs(dir string) error {
	dbs, err := repo.ListDBs(dir)
	if err != nil {
		return err
	}

	if cmd.JSON() {
		return cmd.PrintJSON(dbs)
	}
	if len(dbs) == 0 {
		fmt.Fprintln(cmd.Out(), "No databases found")
		return nil
	}
	for _, db := range dbs {
		fmt.Fprintf(cmd.Out(), "%s  %s\n", db.File, status(db.Local))
	}
	return nil
}

func status(local bool) string {
	if local {
		return "local"
	}
	return "shared"
}
