// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sixdeg/bfs"
	"github.com/katalvlaran/sixdeg/universe"
)

// PathResponse is the JSON output of the path command. Separation is null
// when the target cannot reach the center.
type PathResponse struct {
	Target     string         `json:"target"`
	Center     string         `json:"center"`
	Separation *int           `json:"separation"`
	Infinite   bool           `json:"infinite"`
	Hops       []universe.Hop `json:"hops"`
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path <name>",
		Short: "Show how an entity connects to the center",
		Long: `Show the shortest chain of shared groups from an entity to the center.

An entity with no chain is reported with infinite separation; an entity
that is not in the universe is an error (exit code 4).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, _, err := a.openUniverse(cmd.Context())
			if err != nil {
				return err
			}

			name := restoreArg(args[0])
			resp := PathResponse{Target: name, Center: u.Center(), Hops: []universe.Hop{}}
			report, err := u.Path(name)
			switch {
			case errors.Is(err, bfs.ErrUnreachable):
				resp.Infinite = true
			case err != nil:
				return err
			default:
				sep := report.Separation
				resp.Separation = &sep
				resp.Hops = report.Hops
			}

			w := cmd.OutOrStdout()
			if !a.human {
				return outputJSON(w, resp)
			}
			if resp.Infinite {
				outputHuman(w, "%s has infinite separation from %s\n", resp.Target, resp.Center)
				return nil
			}
			outputHuman(w, "%s has a separation of %d from %s\n", resp.Target, *resp.Separation, resp.Center)
			for _, h := range resp.Hops {
				outputHuman(w, "  %s was in %s with %s\n", h.From, strings.Join(h.Credits, ", "), h.To)
			}
			return nil
		},
	}
}
