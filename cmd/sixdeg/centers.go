// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sixdeg/query"
)

func newCentersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "centers <k>",
		Short: "Rank entities by average separation",
		Long: `Rank every entity as a candidate center by its average separation.

A negative k lists the |k| best (most central) candidates, a positive k the
k worst: "sixdeg centers -10" or "sixdeg centers 10". The ranking runs one breadth-first search per entity.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseInt("k", args[0])
			if err != nil {
				return err
			}
			u, _, err := a.openUniverse(cmd.Context())
			if err != nil {
				return err
			}

			scores, err := u.Centers(cmd.Context(), k)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.human {
				for i, s := range scores {
					outputHuman(w, "%3d. %s\t%s\n", i+1, s.Vertex, average(s.AverageSeparation))
				}
				return nil
			}
			return outputJSON(w, ListResponse[query.CenterScore[string]]{
				K:       &k,
				Count:   len(scores),
				Results: scores,
			})
		},
	}
	cmd.Flags().IntVar(&a.workers, "workers", 1, "Concurrent searches while ranking")

	return cmd
}
