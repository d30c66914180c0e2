// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sixdeg/query"
)

// errNotNumeric marks a non-integer command argument.
var errNotNumeric = errors.New("argument must be an integer")

// parseInt parses a named integer argument.
func parseInt(name, s string) (int, error) {
	s = restoreArg(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, s, errNotNumeric)
	}
	return n, nil
}

// parseRange parses the <low> <high> argument pair.
func parseRange(args []string) (low, high int, err error) {
	if low, err = parseInt("low", args[0]); err != nil {
		return 0, 0, err
	}
	if high, err = parseInt("high", args[1]); err != nil {
		return 0, 0, err
	}
	return low, high, nil
}

// rangeResult renders a range query. An inverted range is a warning with an
// empty result, not a failure.
func rangeResult[T any](a *app, cmd *cobra.Command, center string, low, high int, results []T, err error, line func(T) string) error {
	resp := ListResponse[T]{Center: center, Low: &low, High: &high, Results: results}
	switch {
	case errors.Is(err, query.ErrInvertedRange):
		resp.Warning = err.Error()
		resp.Results = []T{}
		a.logger.Warn("inverted range", "low", low, "high", high)
	case err != nil:
		return err
	}
	resp.Count = len(resp.Results)

	w := cmd.OutOrStdout()
	if !a.human {
		return outputJSON(w, resp)
	}
	if resp.Warning != "" {
		outputHuman(cmd.ErrOrStderr(), "warning: %s\n", resp.Warning)
		return nil
	}
	for _, r := range resp.Results {
		outputHuman(w, "%s\n", line(r))
	}
	return nil
}

func newSeparationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "separation <low> <high>",
		Short: "List entities whose separation from the center lies in a range",
		Long: `List entities whose separation from the center lies in [low, high],
ascending by separation. The center itself has separation 0; bounds may
be negative ("sixdeg separation -1 2").

A high bound below the low bound yields an empty list with a warning.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			low, high, err := parseRange(args)
			if err != nil {
				return err
			}
			u, _, err := a.openUniverse(cmd.Context())
			if err != nil {
				return err
			}

			entries, err := u.Separation(low, high)
			return rangeResult(a, cmd, u.Center(), low, high, entries, err, func(e query.SeparationEntry[string]) string {
				return fmt.Sprintf("%s\t%d", e.Vertex, e.Separation)
			})
		},
	}
}

func newDegreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "degree <low> <high>",
		Short: "List entities whose co-star count lies in a range",
		Long: `List entities with between low and high distinct co-stars (inclusive),
ascending by count.

A high bound below the low bound yields an empty list with a warning.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			low, high, err := parseRange(args)
			if err != nil {
				return err
			}
			u, _, err := a.openUniverse(cmd.Context())
			if err != nil {
				return err
			}

			entries, err := u.Degree(low, high)
			return rangeResult(a, cmd, "", low, high, entries, err, func(e query.DegreeEntry[string]) string {
				return fmt.Sprintf("%s\t%s", e.Vertex, count(e.Degree))
			})
		},
	}
}
