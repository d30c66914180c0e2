// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// ErrorResponse is the JSON body written for a failed command.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// ListResponse wraps a range or ranking result.
type ListResponse[T any] struct {
	Center  string `json:"center,omitempty"`
	Low     *int   `json:"low,omitempty"`
	High    *int   `json:"high,omitempty"`
	K       *int   `json:"k,omitempty"`
	Count   int    `json:"count"`
	Results []T    `json:"results"`
	Warning string `json:"warning,omitempty"`
}

// outputJSON writes a value as formatted JSON to w.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable line to w.
func outputHuman(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
}

// outputError writes err in the selected format and returns its exit code.
func outputError(stdout, stderr io.Writer, human bool, err error) int {
	code := exitCode(err)
	if human {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return code
	}
	if encErr := outputJSON(stdout, ErrorResponse{Error: err.Error(), Code: code}); encErr != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return code
}

// count renders n with thousands separators.
func count(n int) string {
	return humanize.Comma(int64(n))
}

// average renders a separation average with two decimals.
func average(f float64) string {
	return humanize.FormatFloat("#,###.##", f)
}
