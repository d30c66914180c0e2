// SPDX-License-Identifier: MIT

package universe

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/sixdeg/bfs"
	"github.com/katalvlaran/sixdeg/builder"
	"github.com/katalvlaran/sixdeg/centrality"
	"github.com/katalvlaran/sixdeg/core"
	"github.com/katalvlaran/sixdeg/internal/logging"
	"github.com/katalvlaran/sixdeg/internal/telemetry"
	"github.com/katalvlaran/sixdeg/query"
)

// ErrGraphNil is returned by New for a nil graph.
var ErrGraphNil = centrality.ErrGraphNil

// CenterSummary describes the current center of the universe.
type CenterSummary struct {
	Center            string  `json:"center"`
	Connected         int     `json:"connected"` // reachable vertices, center excluded
	Total             int     `json:"total"`
	AverageSeparation float64 `json:"average_separation"`
}

// Hop is one link of a path: From and To shared every group in Credits.
type Hop struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	Credits []string `json:"credits"`
}

// PathReport is the answer to "how is Target connected to the center".
type PathReport struct {
	Target     string `json:"target"`
	Center     string `json:"center"`
	Separation int    `json:"separation"`
	Hops       []Hop  `json:"hops"` // from Target back to Center
}

// Universe holds a built co-star graph and a current center, keeping the
// center's BFS tree ready for path and separation queries.
//
// Thread Safety: Safe for concurrent use. The graph must not be mutated
// after New.
type Universe struct {
	graph   *builder.Graph
	cache   *centrality.Cache[string, builder.Credits]
	logger  *slog.Logger
	workers int

	mu     sync.RWMutex
	center string
	tree   *bfs.Tree[string]
}

// Option configures a Universe.
type Option func(*Universe)

// WithLogger logs center changes and rankings to l. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(u *Universe) {
		if l != nil {
			u.logger = l
		}
	}
}

// WithWorkers sets the goroutine count for Centers. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(u *Universe) {
		if n >= 1 {
			u.workers = n
		}
	}
}

// New returns a Universe over g centered on center.
// An unknown center yields core.ErrVertexNotFound.
func New(g *builder.Graph, center string, opts ...Option) (*Universe, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cache, err := centrality.NewCache(g)
	if err != nil {
		return nil, err
	}
	u := &Universe{
		graph:   g,
		cache:   cache,
		logger:  logging.Discard(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(u)
	}
	if _, err = u.SetCenter(center); err != nil {
		return nil, err
	}

	return u, nil
}

// Graph returns the underlying graph. Treat it as read-only.
func (u *Universe) Graph() *builder.Graph { return u.graph }

// Center returns the current center.
func (u *Universe) Center() string {
	u.mu.RLock()
	defer u.mu.RUnlock()

	return u.center
}

// SetCenter makes name the center of the universe and summarizes it.
// An unknown name yields core.ErrVertexNotFound and leaves the center unchanged.
func (u *Universe) SetCenter(name string) (CenterSummary, error) {
	if !u.graph.HasVertex(name) {
		return CenterSummary{}, fmt.Errorf("universe: %q is not in the universe: %w", name, core.ErrVertexNotFound)
	}
	telemetry.RecordBFSRun("universe")
	tree, err := bfs.BFS(u.graph, name)
	if err != nil {
		return CenterSummary{}, fmt.Errorf("universe: center %q: %w", name, err)
	}

	u.mu.Lock()
	u.center, u.tree = name, tree
	u.mu.Unlock()

	s, err := summarize(u.graph, tree)
	if err != nil {
		return CenterSummary{}, err
	}
	u.logger.Info("center changed",
		"center", s.Center,
		"connected", s.Connected,
		"total", s.Total,
		"average_separation", s.AverageSeparation,
	)

	return s, nil
}

// Summary describes the current center.
func (u *Universe) Summary() (CenterSummary, error) {
	_, tree := u.snapshot()

	return summarize(u.graph, tree)
}

// Path reports how name connects to the center.
//
// Returns core.ErrVertexNotFound when name is not in the graph, and
// bfs.ErrUnreachable when it is but has infinite separation.
func (u *Universe) Path(name string) (*PathReport, error) {
	if !u.graph.HasVertex(name) {
		return nil, fmt.Errorf("universe: %q is not in the universe: %w", name, core.ErrVertexNotFound)
	}
	center, tree := u.snapshot()
	path, err := bfs.PathTo(tree, name)
	if err != nil {
		return nil, fmt.Errorf("universe: %q has infinite separation from %q: %w", name, center, err)
	}

	report := &PathReport{
		Target:     name,
		Center:     center,
		Separation: len(path) - 1,
		Hops:       make([]Hop, 0, len(path)-1),
	}
	for i := len(path) - 1; i > 0; i-- {
		from, to := path[i], path[i-1]
		credits, err := u.graph.Label(from, to)
		if err != nil {
			return nil, fmt.Errorf("universe: credits %s–%s: %w", from, to, err)
		}
		report.Hops = append(report.Hops, Hop{From: from, To: to, Credits: credits.Sorted()})
	}

	return report, nil
}

// Infinite lists the vertices unreachable from the center, in graph order.
func (u *Universe) Infinite() []string {
	_, tree := u.snapshot()

	return centrality.Missing(u.graph, tree.Graph())
}

// Separation lists the vertices whose separation from the center lies in
// [low, high], ascending. high < low yields query.ErrInvertedRange.
func (u *Universe) Separation(low, high int) ([]query.SeparationEntry[string], error) {
	_, tree := u.snapshot()

	return query.FilterBySeparation(tree, low, high)
}

// Degree lists the vertices whose co-star count lies in [low, high],
// ascending. high < low yields query.ErrInvertedRange.
func (u *Universe) Degree(low, high int) ([]query.DegreeEntry[string], error) {
	return query.FilterByDegree(u.graph, low, high)
}

// Centers ranks every vertex by average separation and selects |k| of
// them: k < 0 the most central, k > 0 the least central. Averages are
// memoized across calls.
func (u *Universe) Centers(ctx context.Context, k int) ([]query.CenterScore[string], error) {
	ranked, err := query.RankCenters(ctx, u.graph,
		query.WithCache(u.cache),
		query.WithWorkers(u.workers),
		query.WithLogger(u.logger),
	)
	if err != nil {
		return nil, err
	}

	return query.SelectCenters(ranked, k)
}

// Stats returns the graph diagnostics.
func (u *Universe) Stats() core.GraphStats {
	return u.graph.Stats()
}

func (u *Universe) snapshot() (string, *bfs.Tree[string]) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	return u.center, u.tree
}

func summarize(g *builder.Graph, tree *bfs.Tree[string]) (CenterSummary, error) {
	avg, err := centrality.AverageSeparation(tree, tree.Root())
	if err != nil {
		return CenterSummary{}, fmt.Errorf("universe: average separation: %w", err)
	}

	return CenterSummary{
		Center:            tree.Root(),
		Connected:         tree.Len() - 1,
		Total:             g.VertexCount(),
		AverageSeparation: avg,
	}, nil
}
