// SPDX-License-Identifier: MIT

package query

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sixdeg/centrality"
	"github.com/katalvlaran/sixdeg/core"
	"github.com/katalvlaran/sixdeg/internal/logging"
	"github.com/katalvlaran/sixdeg/internal/telemetry"
)

// CenterScore is one vertex's average separation as a center.
type CenterScore[V comparable] struct {
	Vertex            V       `json:"vertex"`
	AverageSeparation float64 `json:"average_separation"`
}

// averager is satisfied by *centrality.Cache.
type averager[V comparable] interface {
	AverageSeparation(ctx context.Context, root V) (float64, error)
}

// RankOption configures RankCenters.
type RankOption func(*rankConfig)

type rankConfig struct {
	workers int
	source  any // averager[V] for the graph in cacheOf
	cacheOf any // *core.Graph[V, L] the source answers for
	logger  *slog.Logger
	err     error
}

// WithCache answers each vertex through c instead of a fresh BFS.
// c must be built over the ranked graph; otherwise RankCenters fails
// with ErrOptionViolation.
func WithCache[V comparable, L any](c *centrality.Cache[V, L]) RankOption {
	return func(o *rankConfig) {
		if c == nil {
			o.err = fmt.Errorf("%w: nil cache", ErrOptionViolation)
			return
		}
		o.source = averager[V](c)
		o.cacheOf = c.Graph()
	}
}

// WithWorkers runs up to n BFS computations at once. n must be >= 1.
func WithWorkers(n int) RankOption {
	return func(o *rankConfig) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.workers = n
	}
}

// WithLogger logs ranking progress to l. Nil is ignored.
func WithLogger(l *slog.Logger) RankOption {
	return func(o *rankConfig) {
		if l != nil {
			o.logger = l
		}
	}
}

// RankCenters computes every vertex's average separation (one BFS per
// vertex) and returns all vertices ascending by it, so the most central
// come first. Ties keep g's vertex order.
//
// The context is checked between vertices and inside every BFS.
//
// Complexity: O(V·(V+E)) without a warm cache.
func RankCenters[V comparable, L any](ctx context.Context, g *core.Graph[V, L], opts ...RankOption) (ranked []CenterScore[V], err error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := rankConfig{workers: 1, logger: logging.Discard()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	score := func(ctx context.Context, v V) (float64, error) {
		return centrality.AverageSeparationFrom(ctx, g, v)
	}
	if cfg.source != nil {
		src, ok := cfg.source.(averager[V])
		if !ok || cfg.cacheOf != any(g) {
			return nil, fmt.Errorf("%w: cache does not belong to the ranked graph", ErrOptionViolation)
		}
		score = src.AverageSeparation
	}

	vertices := g.Vertices()
	ctx, span := telemetry.StartSpan(ctx, "query.RankCenters",
		attribute.Int("vertices", len(vertices)),
		attribute.Int("workers", cfg.workers),
		attribute.Bool("cached", cfg.source != nil),
	)
	start := time.Now()
	defer func() {
		telemetry.ObserveRankDuration(time.Since(start))
		telemetry.EndSpan(span, err)
	}()

	ranked = make([]CenterScore[V], len(vertices))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for i, v := range vertices {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			if cfg.source == nil {
				telemetry.RecordBFSRun("query.rank")
			}
			avg, err := score(egCtx, v)
			if err != nil {
				return fmt.Errorf("query: rank %v: %w", v, err)
			}
			ranked[i] = CenterScore[V]{Vertex: v, AverageSeparation: avg}
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AverageSeparation < ranked[j].AverageSeparation
	})
	cfg.logger.Debug("centers ranked", "vertices", len(ranked), "elapsed", time.Since(start))

	return ranked, nil
}

// SelectCenters picks |k| entries from a RankCenters result:
//
//	k < 0   the |k| most central (front of the list)
//	k > 0   the k least central (back of the list)
//	k == 0  empty
//
// |k| > len(ranked) yields ErrRankOutOfRange. The returned slice is a copy.
func SelectCenters[V comparable](ranked []CenterScore[V], k int) ([]CenterScore[V], error) {
	n := k
	if n < 0 {
		n = -n
	}
	if n > len(ranked) {
		return make([]CenterScore[V], 0), fmt.Errorf("%w: |%d| > %d", ErrRankOutOfRange, k, len(ranked))
	}

	out := make([]CenterScore[V], n)
	if k < 0 {
		copy(out, ranked[:n])
	} else {
		copy(out, ranked[len(ranked)-n:])
	}

	return out, nil
}

// Best returns the n most central entries; n must not be negative.
func Best[V comparable](ranked []CenterScore[V], n int) ([]CenterScore[V], error) {
	if n < 0 {
		return make([]CenterScore[V], 0), fmt.Errorf("%w: negative count %d", ErrRankOutOfRange, n)
	}

	return SelectCenters(ranked, -n)
}

// Worst returns the n least central entries; n must not be negative.
func Worst[V comparable](ranked []CenterScore[V], n int) ([]CenterScore[V], error) {
	if n < 0 {
		return make([]CenterScore[V], 0), fmt.Errorf("%w: negative count %d", ErrRankOutOfRange, n)
	}

	return SelectCenters(ranked, n)
}
