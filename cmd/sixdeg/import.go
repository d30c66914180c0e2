// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sixdeg/ingest"
	"github.com/katalvlaran/sixdeg/internal/config"
)

// errImportNeedsFiles is returned when import is pointed at a database source.
var errImportNeedsFiles = errors.New("import reads the entity, group and membership files; unset the sqlite source")

// ImportResponse is the JSON output of the import command.
type ImportResponse struct {
	Database    string `json:"database"`
	Entities    int    `json:"entities"`
	Groups      int    `json:"groups"`
	Memberships int    `json:"memberships"`
	Malformed   int    `json:"malformed_lines"`
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <database>",
		Short: "Copy text records into a SQLite database",
		Long: `Read the entity, group and membership files and store them in a SQLite
database, which can then be used with --sqlite.

Existing entities and groups with the same id are replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.UsesSQLite() {
				return withCode(ExitConfigError, errImportNeedsFiles)
			}
			if err := a.cfg.Validate(); err != nil {
				return withCode(ExitConfigError, err)
			}

			d := a.cfg.Data
			recs, bad, err := ingest.LoadFiles(d.Entities, d.Groups, d.Memberships)
			if err != nil {
				return withCode(ExitDataError, err)
			}
			for _, b := range bad {
				a.logger.Warn("malformed line skipped", "source", b.Source, "line", b.Line, "text", b.Text)
			}

			db := config.ExpandTilde(args[0])
			if err = ingest.SaveSQLite(cmd.Context(), db, recs); err != nil {
				return withCode(ExitDataError, fmt.Errorf("saving %s: %w", db, err))
			}

			resp := ImportResponse{
				Database:    db,
				Entities:    len(recs.Entities),
				Groups:      len(recs.Groups),
				Memberships: len(recs.Memberships),
				Malformed:   len(bad),
			}
			w := cmd.OutOrStdout()
			if a.human {
				outputHuman(w, "Imported %s entities, %s groups and %s memberships into %s\n",
					count(resp.Entities), count(resp.Groups), count(resp.Memberships), resp.Database)
				return nil
			}
			return outputJSON(w, resp)
		},
	}
}
