// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

func newInfiniteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "infinite",
		Short: "List entities unreachable from the center",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, _, err := a.openUniverse(cmd.Context())
			if err != nil {
				return err
			}

			missing := u.Infinite()
			w := cmd.OutOrStdout()
			if a.human {
				for _, name := range missing {
					outputHuman(w, "%s\n", name)
				}
				outputHuman(w, "%s entities have infinite separation from %s\n", count(len(missing)), u.Center())
				return nil
			}
			return outputJSON(w, ListResponse[string]{
				Center:  u.Center(),
				Count:   len(missing),
				Results: missing,
			})
		},
	}
}
