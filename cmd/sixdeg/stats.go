// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

// StatsResponse is the JSON output of the stats command.
type StatsResponse struct {
	Vertices int  `json:"vertices"`
	Edges    int  `json:"edges"`
	Isolated int  `json:"isolated"`
	Groups   int  `json:"groups"`
	Resolved int  `json:"resolved_memberships"`
	Skipped  int  `json:"skipped_memberships"`
	Loops    bool `json:"loops"`
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show graph and build statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, report, err := a.openUniverse(cmd.Context())
			if err != nil {
				return err
			}

			gs := u.Stats()
			resp := StatsResponse{
				Vertices: gs.VertexCount,
				Edges:    gs.EdgeCount,
				Isolated: gs.IsolatedCount,
				Groups:   report.Groups,
				Resolved: report.Resolved,
				Skipped:  len(report.Skipped),
				Loops:    gs.AllowsLoops,
			}

			w := cmd.OutOrStdout()
			if a.human {
				outputHuman(w, "Entities:    %s (%s isolated)\n", count(resp.Vertices), count(resp.Isolated))
				outputHuman(w, "Co-star edges: %s\n", count(resp.Edges))
				outputHuman(w, "Groups:      %s\n", count(resp.Groups))
				outputHuman(w, "Memberships: %s resolved, %s skipped\n", count(resp.Resolved), count(resp.Skipped))
				return nil
			}
			return outputJSON(w, resp)
		},
	}
}
