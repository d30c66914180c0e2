// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/sixdeg/core"
	"github.com/katalvlaran/sixdeg/internal/telemetry"
)

// MethodBuild is the context prefix for Build errors.
const MethodBuild = "Build"

// Build constructs the co-star graph from recs.
//
// Every entity name in recs.Entities becomes a vertex, including entities
// with no memberships. For each group, every pair of distinct members is
// joined by one undirected edge whose Credits label accumulates the names of
// all groups the pair shares. Groups are processed in name order and
// members in membership order, so vertex and neighbor order are
// reproducible for the same input.
//
// Memberships naming an unknown group or entity are skipped and listed in
// Report.Skipped; under WithStrict the first one aborts the build with an
// error matching ErrStrict and the skip cause.
//
// Complexity: O(M + Σ members(g)²) where M = len(recs.Memberships).
func Build(recs *Records, opts ...BuilderOption) (*Result, error) {
	if recs == nil {
		return nil, builderErrorf(MethodBuild, "%w", ErrNilRecords)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.capacity == 0 {
		cfg.capacity = len(recs.Entities)
	}

	var report Report
	members, order, err := resolve(recs, cfg, &report)
	if err != nil {
		return nil, err
	}

	g := core.NewGraph[string, Credits](core.WithCapacity(cfg.capacity))
	for _, name := range entityNames(recs.Entities) {
		g.AddVertex(name)
	}

	for _, group := range order {
		if err = link(g, group, members[group]); err != nil {
			return nil, builderErrorf(MethodBuild, "group %q: %w", group, err)
		}
	}

	report.Vertices = g.VertexCount()
	report.Groups = len(order)
	report.Edges = g.EdgeCount()
	telemetry.RecordBuildSkipped(len(report.Skipped))
	cfg.logger.Info("co-star graph built",
		"vertices", report.Vertices,
		"edges", report.Edges,
		"groups", report.Groups,
		"skipped", len(report.Skipped),
	)

	return &Result{Graph: g, Report: report}, nil
}

// resolve maps memberships to group name → distinct member names and
// returns the group names sorted.
func resolve(recs *Records, cfg builderConfig, report *Report) (map[string][]string, []string, error) {
	members := make(map[string][]string)
	seen := make(map[string]map[string]struct{})

	for i, m := range recs.Memberships {
		group, ok := recs.Groups[m.GroupID]
		if !ok {
			if err := skip(cfg, report, i, m, ErrUnknownGroup); err != nil {
				return nil, nil, err
			}
			continue
		}
		entity, ok := recs.Entities[m.EntityID]
		if !ok {
			if err := skip(cfg, report, i, m, ErrUnknownEntity); err != nil {
				return nil, nil, err
			}
			continue
		}

		report.Resolved++
		set, ok := seen[group]
		if !ok {
			set = make(map[string]struct{})
			seen[group] = set
		}
		if _, dup := set[entity]; dup {
			continue
		}
		set[entity] = struct{}{}
		members[group] = append(members[group], entity)
	}

	order := make([]string, 0, len(members))
	for group := range members {
		order = append(order, group)
	}
	sort.Strings(order)

	return members, order, nil
}

// skip records one unresolvable membership, or fails under strict mode.
func skip(cfg builderConfig, report *Report, i int, m Membership, cause error) error {
	rec := SkippedRecord{Index: i, Membership: m, Err: cause}
	if cfg.strict {
		return builderErrorf(MethodBuild, "%w: %w", ErrStrict, rec)
	}
	report.Skipped = append(report.Skipped, rec)
	cfg.logger.Debug("membership skipped",
		"index", i,
		"group_id", m.GroupID,
		"entity_id", m.EntityID,
		"cause", cause,
	)

	return nil
}

// link joins every pair of distinct members with an edge crediting group.
func link(g *Graph, group string, cast []string) error {
	for i := 0; i < len(cast); i++ {
		for j := i + 1; j < len(cast); j++ {
			a, b := cast[i], cast[j]
			if a == b {
				continue
			}
			if g.HasEdge(a, b) {
				err := g.UpdateLabel(a, b, func(c Credits) Credits {
					c.Add(group)
					return c
				})
				if err != nil {
					return fmt.Errorf("credit %s–%s: %w", a, b, err)
				}
				continue
			}
			if err := g.AddUndirected(a, b, NewCredits(group)); err != nil {
				return fmt.Errorf("join %s–%s: %w", a, b, err)
			}
		}
	}

	return nil
}

// entityNames returns the distinct entity names sorted ascending.
func entityNames(entities map[string]string) []string {
	names := make([]string, 0, len(entities))
	seen := make(map[string]struct{}, len(entities))
	for _, name := range entities {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
