// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sixdeg/universe"
)

func newCenterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "center [name]",
		Short: "Summarize a center of the universe",
		Long: `Summarize how well-connected a center is: how many entities reach it and
their average separation from it.

With no argument the configured center is summarized.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, _, err := a.openUniverse(cmd.Context())
			if err != nil {
				return err
			}

			var s universe.CenterSummary
			if len(args) == 1 {
				s, err = u.SetCenter(restoreArg(args[0]))
			} else {
				s, err = u.Summary()
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.human {
				outputHuman(w, "%s is now the center of the universe, connected to %s/%s entities with average separation %s\n",
					s.Center, count(s.Connected), count(s.Total), average(s.AverageSeparation))
				return nil
			}
			return outputJSON(w, s)
		},
	}
}
