// SPDX-License-Identifier: MIT

package query_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sixdeg/centrality"
	"github.com/katalvlaran/sixdeg/core"
	"github.com/katalvlaran/sixdeg/query"
)

// randomCast builds a sparse co-star graph of the given size.
func randomCast(actors, movies, cast int) *core.Graph[int, struct{}] {
	rng := rand.New(rand.NewSource(7))
	g := core.NewGraph[int, struct{}]()
	for a := 0; a < actors; a++ {
		g.AddVertex(a)
	}
	for m := 0; m < movies; m++ {
		members := rng.Perm(actors)[:cast]
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				_ = g.AddUndirected(members[i], members[j], struct{}{})
			}
		}
	}
	return g
}

// BenchmarkRankCenters measures a full uncached ranking.
func BenchmarkRankCenters(b *testing.B) {
	g := randomCast(300, 120, 5)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = query.RankCenters(ctx, g)
	}
}

// BenchmarkRankCenters_Workers measures ranking spread over four goroutines.
func BenchmarkRankCenters_Workers(b *testing.B) {
	g := randomCast(300, 120, 5)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = query.RankCenters(ctx, g, query.WithWorkers(4))
	}
}

// BenchmarkRankCenters_WarmCache measures ranking answered from a warm cache.
func BenchmarkRankCenters_WarmCache(b *testing.B) {
	g := randomCast(300, 120, 5)
	ctx := context.Background()
	cache, err := centrality.NewCache(g)
	if err != nil {
		b.Fatal(err)
	}
	if _, err = query.RankCenters(ctx, g, query.WithCache(cache)); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = query.RankCenters(ctx, g, query.WithCache(cache))
	}
}
