// SPDX-License-Identifier: MIT

package query_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sixdeg/bfs"
	"github.com/katalvlaran/sixdeg/centrality"
	"github.com/katalvlaran/sixdeg/core"
	"github.com/katalvlaran/sixdeg/query"
)

// castGraph builds Bacon–Alice, Bacon–Bob, Alice–Bob, Alice–Charlie,
// Bob–Charlie, Charlie–Earl.
func castGraph(t testing.TB) *core.Graph[string, string] {
	t.Helper()
	g := core.NewGraph[string, string]()
	for _, e := range [][3]string{
		{"Bacon", "Alice", "A movie"},
		{"Bacon", "Bob", "A movie"},
		{"Alice", "Bob", "A movie"},
		{"Alice", "Charlie", "D movie"},
		{"Bob", "Charlie", "C movie"},
		{"Charlie", "Earl", "B movie"},
	} {
		require.NoError(t, g.AddUndirected(e[0], e[1], e[2]))
	}

	return g
}

func vertices[E any](entries []E, get func(E) string) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = get(e)
	}
	return out
}

func TestFilterByDegree(t *testing.T) {
	g := castGraph(t)

	got, err := query.FilterByDegree(g, 2, 3)
	require.NoError(t, err)
	// Bacon 2; Alice, Bob and Charlie 3; Earl 1
	assert.Equal(t, []query.DegreeEntry[string]{
		{Vertex: "Bacon", Degree: 2},
		{Vertex: "Alice", Degree: 3},
		{Vertex: "Bob", Degree: 3},
		{Vertex: "Charlie", Degree: 3},
	}, got)

	got, err = query.FilterByDegree(g, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", "Charlie"},
		vertices(got, func(e query.DegreeEntry[string]) string { return e.Vertex }))

	got, err = query.FilterByDegree(g, 3, 1)
	assert.ErrorIs(t, err, query.ErrInvertedRange)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = query.FilterByDegree[string, string](nil, 0, 1)
	assert.ErrorIs(t, err, query.ErrGraphNil)
}

func TestFilterBySeparation(t *testing.T) {
	g := castGraph(t)
	g.AddVertex("Hermit")
	tree, err := bfs.BFS(g, "Bacon")
	require.NoError(t, err)

	got, err := query.FilterBySeparation(tree, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []query.SeparationEntry[string]{
		{Vertex: "Alice", Separation: 1},
		{Vertex: "Bob", Separation: 1},
		{Vertex: "Charlie", Separation: 2},
	}, got)

	got, err = query.FilterBySeparation(tree, 0, 100)
	require.NoError(t, err)
	assert.Len(t, got, 5, "unreachable Hermit never matches")
	assert.Equal(t, "Bacon", got[0].Vertex)

	// separation agrees with path length
	for _, e := range got {
		path, err := tree.PathTo(e.Vertex)
		require.NoError(t, err)
		assert.Equal(t, len(path)-1, e.Separation)
	}

	_, err = query.FilterBySeparation(tree, 2, 1)
	assert.ErrorIs(t, err, query.ErrInvertedRange)
	_, err = query.FilterBySeparation[string](nil, 0, 1)
	assert.ErrorIs(t, err, query.ErrTreeNil)
}

func TestRankCenters(t *testing.T) {
	g := castGraph(t)
	g.AddVertex("Hermit")
	ctx := context.Background()

	ranked, err := query.RankCenters(ctx, g)
	require.NoError(t, err)
	require.Len(t, ranked, 6)

	// Hermit reaches nobody and averages 0, so it sorts first.
	assert.Equal(t, "Hermit", ranked[0].Vertex)
	assert.Equal(t, []string{"Hermit", "Alice", "Bob", "Charlie", "Bacon", "Earl"},
		vertices(ranked, func(e query.CenterScore[string]) string { return e.Vertex }))
	assert.Zero(t, ranked[0].AverageSeparation)
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].AverageSeparation, ranked[i].AverageSeparation)
	}
	last := ranked[len(ranked)-1]
	assert.Equal(t, "Earl", last.Vertex)
	assert.InDelta(t, 2.0, last.AverageSeparation, 1e-9) // (1+2+2+3)/4

	parallel, err := query.RankCenters(ctx, g, query.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, ranked, parallel, "workers do not change the order")
}

func TestRankCenters_Cache(t *testing.T) {
	g := castGraph(t)
	ctx := context.Background()
	cache, err := centrality.NewCache(g)
	require.NoError(t, err)

	first, err := query.RankCenters(ctx, g, query.WithCache(cache))
	require.NoError(t, err)
	assert.Equal(t, g.VertexCount(), cache.Len())

	second, err := query.RankCenters(ctx, g, query.WithCache(cache), query.WithWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := centrality.NewCache(castGraph(t))
	require.NoError(t, err)
	_, err = query.RankCenters(ctx, g, query.WithCache(other))
	assert.ErrorIs(t, err, query.ErrOptionViolation)

	intGraph := core.NewGraph[int, string]()
	intCache, err := centrality.NewCache(intGraph)
	require.NoError(t, err)
	_, err = query.RankCenters(ctx, g, query.WithCache(intCache))
	assert.ErrorIs(t, err, query.ErrOptionViolation)
}

func TestRankCenters_Errors(t *testing.T) {
	g := castGraph(t)

	_, err := query.RankCenters[string, string](context.Background(), nil)
	assert.ErrorIs(t, err, query.ErrGraphNil)

	_, err = query.RankCenters(context.Background(), g, query.WithWorkers(0))
	assert.ErrorIs(t, err, query.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = query.RankCenters(ctx, g)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSelectCenters(t *testing.T) {
	ranked := []query.CenterScore[string]{
		{Vertex: "a", AverageSeparation: 1},
		{Vertex: "b", AverageSeparation: 2},
		{Vertex: "c", AverageSeparation: 3},
	}
	name := func(e query.CenterScore[string]) string { return e.Vertex }

	tests := []struct {
		k    int
		want []string
	}{
		{-2, []string{"a", "b"}},
		{2, []string{"b", "c"}},
		{-3, []string{"a", "b", "c"}},
		{3, []string{"a", "b", "c"}},
		{0, []string{}},
	}
	for _, tt := range tests {
		got, err := query.SelectCenters(ranked, tt.k)
		require.NoError(t, err, "k=%d", tt.k)
		assert.Equal(t, tt.want, vertices(got, name), "k=%d", tt.k)
	}

	_, err := query.SelectCenters(ranked, 4)
	assert.ErrorIs(t, err, query.ErrRankOutOfRange)
	_, err = query.SelectCenters(ranked, -4)
	assert.ErrorIs(t, err, query.ErrRankOutOfRange)

	best, err := query.Best(ranked, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, vertices(best, name))
	worst, err := query.Worst(ranked, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, vertices(worst, name))
	_, err = query.Best(ranked, -1)
	assert.ErrorIs(t, err, query.ErrRankOutOfRange)

	// the selection is a copy
	best[0].Vertex = "mutated"
	assert.Equal(t, "a", ranked[0].Vertex)
}
