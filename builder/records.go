// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/sixdeg/core"
)

// Membership links one entity to one group by id.
type Membership struct {
	GroupID  string
	EntityID string
}

// Records is the raw input of Build: id→name tables for entities and
// groups plus the membership relation between them.
type Records struct {
	Entities    map[string]string
	Groups      map[string]string
	Memberships []Membership
}

// Credits is the label of a co-star edge: the set of group names shared by
// the two endpoints. It is a reference type, so both directions of an
// undirected edge observe the same set.
type Credits map[string]struct{}

// NewCredits returns a Credits set holding names.
func NewCredits(names ...string) Credits {
	c := make(Credits, len(names))
	for _, n := range names {
		c[n] = struct{}{}
	}

	return c
}

// Add inserts name into the set.
func (c Credits) Add(name string) { c[name] = struct{}{} }

// Has reports whether name is in the set.
func (c Credits) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// Len returns the number of shared groups.
func (c Credits) Len() int { return len(c) }

// Sorted returns the group names in ascending order.
func (c Credits) Sorted() []string {
	out := make([]string, 0, len(c))
	for n := range c {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// Graph is the co-star graph produced by Build.
type Graph = core.Graph[string, Credits]

// SkippedRecord describes one membership Build could not resolve.
type SkippedRecord struct {
	Index      int
	Membership Membership
	Err        error
}

// Error implements error.
func (s SkippedRecord) Error() string {
	return fmt.Sprintf("membership #%d (group %q, entity %q): %v",
		s.Index, s.Membership.GroupID, s.Membership.EntityID, s.Err)
}

// Unwrap exposes the cause for errors.Is.
func (s SkippedRecord) Unwrap() error { return s.Err }

// Report summarizes a build.
type Report struct {
	Vertices int
	Groups   int // groups with at least one resolved member
	Edges    int
	Resolved int // memberships that contributed to the graph
	Skipped  []SkippedRecord
}

// Err joins every skipped record into one error, or returns nil.
func (r Report) Err() error {
	if len(r.Skipped) == 0 {
		return nil
	}
	errs := make([]error, len(r.Skipped))
	for i, s := range r.Skipped {
		errs[i] = s
	}

	return errors.Join(errs...)
}

// Result bundles the built graph with its Report.
type Result struct {
	Graph  *Graph
	Report Report
}
