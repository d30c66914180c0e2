// SPDX-License-Identifier: MIT

package main

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// negativeSign replaces the leading '-' of a bare negative number so pflag
// keeps it as a positional argument instead of a shorthand flag.
const negativeSign = "−"

var negativeNumber = regexp.MustCompile(`^-[0-9]+$`)

// protectNegatives rewrites bare negative numbers in args ("centers -2",
// "separation -1 2"). Values of flags that take one ("--center -2") and
// everything after "--" are left alone.
func protectNegatives(root *cobra.Command, args []string) []string {
	out := make([]string, len(args))
	copy(out, args)

	flagValue := false
	for i, arg := range args {
		switch {
		case flagValue:
			flagValue = false
		case arg == "--":
			return out
		case strings.HasPrefix(arg, "--"):
			flagValue = takesValue(root, strings.TrimPrefix(arg, "--"))
		case negativeNumber.MatchString(arg):
			out[i] = negativeSign + arg[1:]
		}
	}

	return out
}

// restoreArg undoes protectNegatives for one positional argument.
func restoreArg(arg string) string {
	if rest, ok := strings.CutPrefix(arg, negativeSign); ok {
		return "-" + rest
	}
	return arg
}

// takesValue reports whether the long flag spelled by name consumes the
// next argument.
func takesValue(root *cobra.Command, name string) bool {
	if strings.Contains(name, "=") {
		return false
	}
	f := lookupFlag(root, name)

	return f != nil && f.NoOptDefVal == ""
}

func lookupFlag(c *cobra.Command, name string) *pflag.Flag {
	if f := c.Flags().Lookup(name); f != nil {
		return f
	}
	if f := c.PersistentFlags().Lookup(name); f != nil {
		return f
	}
	for _, sub := range c.Commands() {
		if f := lookupFlag(sub, name); f != nil {
			return f
		}
	}

	return nil
}
