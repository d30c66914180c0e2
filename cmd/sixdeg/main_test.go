// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sixdeg/query"
	"github.com/katalvlaran/sixdeg/universe"
)

// castArgs writes the cast fixture and returns the data-source flags:
//
//	Footloose: Bacon, Alice, Bob    Tremors: Alice, Bob, Charlie
//	Diner: Charlie, Earl            Hermit has no groups
func castArgs(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}
	entities := write("actors.txt", "1|Bacon\n2|Alice\n3|Bob\n4|Charlie\n5|Earl\n6|Hermit\n")
	groups := write("movies.txt", "f|Footloose\nt|Tremors\nd|Diner\n")
	memberships := write("cast.txt", "f|1\nf|2\nf|3\nt|2\nt|3\nt|4\nd|4\nd|5\nd|99\n")

	return []string{
		"--config", filepath.Join(dir, "missing.yml"),
		"--center", "Bacon",
		"--entities", entities,
		"--groups", groups,
		"--memberships", memberships,
	}
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestCenterCommand(t *testing.T) {
	base := castArgs(t)

	code, out, _ := runCLI(t, append([]string{"center"}, base...)...)
	require.Equal(t, ExitSuccess, code, out)
	var s universe.CenterSummary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, universe.CenterSummary{Center: "Bacon", Connected: 4, Total: 6, AverageSeparation: 1.75}, s)

	code, out, _ = runCLI(t, append([]string{"center", "Earl", "--human"}, base...)...)
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "Earl is now the center of the universe, connected to 4/6 entities")

	code, out, _ = runCLI(t, append([]string{"center", "Nobody"}, base...)...)
	assert.Equal(t, ExitNotFound, code)
	var e ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(out), &e))
	assert.Equal(t, ExitNotFound, e.Code)
}

func TestPathCommand(t *testing.T) {
	base := castArgs(t)

	code, out, _ := runCLI(t, append([]string{"path", "Earl"}, base...)...)
	require.Equal(t, ExitSuccess, code, out)
	var resp PathResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotNil(t, resp.Separation)
	assert.Equal(t, 3, *resp.Separation)
	require.Len(t, resp.Hops, 3)
	assert.Equal(t, universe.Hop{From: "Earl", To: "Charlie", Credits: []string{"Diner"}}, resp.Hops[0])
	assert.Equal(t, "Bacon", resp.Hops[2].To)

	code, out, _ = runCLI(t, append([]string{"path", "Hermit"}, base...)...)
	require.Equal(t, ExitSuccess, code)
	resp = PathResponse{}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Infinite)
	assert.Nil(t, resp.Separation)
	assert.Empty(t, resp.Hops)

	code, out, _ = runCLI(t, append([]string{"path", "Hermit", "--human"}, base...)...)
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "Hermit has infinite separation from Bacon\n", out)

	code, _, errOut := runCLI(t, append([]string{"path", "Nobody", "--human"}, base...)...)
	assert.Equal(t, ExitNotFound, code)
	assert.Contains(t, errOut, "error:")
}

func TestInfiniteCommand(t *testing.T) {
	code, out, _ := runCLI(t, append([]string{"infinite"}, castArgs(t)...)...)
	require.Equal(t, ExitSuccess, code, out)

	var resp ListResponse[string]
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, []string{"Hermit"}, resp.Results)
	assert.Equal(t, 1, resp.Count)
}

func TestSeparationCommand(t *testing.T) {
	base := castArgs(t)

	code, out, _ := runCLI(t, append([]string{"separation", "2", "3"}, base...)...)
	require.Equal(t, ExitSuccess, code, out)
	var resp ListResponse[query.SeparationEntry[string]]
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, []query.SeparationEntry[string]{
		{Vertex: "Charlie", Separation: 2},
		{Vertex: "Earl", Separation: 3},
	}, resp.Results)

	code, out, _ = runCLI(t, append([]string{"separation", "3", "1"}, base...)...)
	require.Equal(t, ExitSuccess, code, "inverted range is a warning")
	resp = ListResponse[query.SeparationEntry[string]]{}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Empty(t, resp.Results)
	assert.NotNil(t, resp.Results)
	assert.NotEmpty(t, resp.Warning)

	code, _, _ = runCLI(t, append([]string{"separation", "one", "3"}, base...)...)
	assert.Equal(t, ExitError, code)
}

func TestSeparationCommand_NegativeLow(t *testing.T) {
	code, out, _ := runCLI(t, append([]string{"separation", "-1", "2"}, castArgs(t)...)...)
	require.Equal(t, ExitSuccess, code, out)

	var resp ListResponse[query.SeparationEntry[string]]
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotNil(t, resp.Low)
	assert.Equal(t, -1, *resp.Low)
	assert.Equal(t, []query.SeparationEntry[string]{
		{Vertex: "Bacon", Separation: 0},
		{Vertex: "Alice", Separation: 1},
		{Vertex: "Bob", Separation: 1},
		{Vertex: "Charlie", Separation: 2},
	}, resp.Results)
}

func TestDegreeCommand(t *testing.T) {
	code, out, _ := runCLI(t, append([]string{"degree", "3", "3"}, castArgs(t)...)...)
	require.Equal(t, ExitSuccess, code, out)

	var resp ListResponse[query.DegreeEntry[string]]
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, []query.DegreeEntry[string]{
		{Vertex: "Alice", Degree: 3},
		{Vertex: "Bob", Degree: 3},
		{Vertex: "Charlie", Degree: 3},
	}, resp.Results)
}

func TestCentersCommand(t *testing.T) {
	base := castArgs(t)

	code, out, _ := runCLI(t, append([]string{"centers", "-2", "--workers", "3"}, base...)...)
	require.Equal(t, ExitSuccess, code, out)
	var resp ListResponse[query.CenterScore[string]]
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "Hermit", resp.Results[0].Vertex)
	assert.InDelta(t, 1.25, resp.Results[1].AverageSeparation, 1e-9)

	code, out, _ = runCLI(t, append(append([]string{"centers"}, base...), "--", "-1")...)
	require.Equal(t, ExitSuccess, code, out)
	resp = ListResponse[query.CenterScore[string]]{}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Hermit", resp.Results[0].Vertex)

	code, out, _ = runCLI(t, append([]string{"centers", "1", "--human"}, base...)...)
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "Earl")
}

func TestStatsCommand(t *testing.T) {
	code, out, errOut := runCLI(t, append([]string{"stats"}, castArgs(t)...)...)
	require.Equal(t, ExitSuccess, code, out)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, StatsResponse{
		Vertices: 6,
		Edges:    6,
		Isolated: 1,
		Groups:   3,
		Resolved: 8,
		Skipped:  1,
	}, resp)
	assert.Contains(t, errOut, "membership skipped")
}

func TestStrictBuildFails(t *testing.T) {
	code, _, _ := runCLI(t, append([]string{"stats", "--strict"}, castArgs(t)...)...)
	assert.Equal(t, ExitDataError, code)
}

func TestImportThenQuerySQLite(t *testing.T) {
	base := castArgs(t)
	db := filepath.Join(t.TempDir(), "cast.db")

	code, out, _ := runCLI(t, append([]string{"import", db}, base...)...)
	require.Equal(t, ExitSuccess, code, out)
	var imp ImportResponse
	require.NoError(t, json.Unmarshal([]byte(out), &imp))
	assert.Equal(t, ImportResponse{Database: db, Entities: 6, Groups: 3, Memberships: 9}, imp)

	code, out, _ = runCLI(t, "center", "--config", base[1], "--center", "Bacon", "--sqlite", db)
	require.Equal(t, ExitSuccess, code, out)
	var s universe.CenterSummary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 4, s.Connected)
}

func TestConfigErrors(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.yml")

	code, _, _ := runCLI(t, "center", "--config", missing)
	assert.Equal(t, ExitConfigError, code, "no data source")

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("data: [unterminated"), 0o644))
	code, _, _ = runCLI(t, "center", "--config", bad)
	assert.Equal(t, ExitConfigError, code)

	code, _, _ = runCLI(t, append([]string{"center", "--trace", "jaeger"}, castArgs(t)...)...)
	assert.Equal(t, ExitConfigError, code)
}

func TestMetricsDump(t *testing.T) {
	code, _, errOut := runCLI(t, append([]string{"centers", "-1", "--metrics"}, castArgs(t)...)...)
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, errOut, "sixdeg_bfs_runs_total")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, exitCode(nil))
	assert.Equal(t, ExitDataError, exitCode(withCode(ExitDataError, os.ErrNotExist)))
	assert.Nil(t, withCode(ExitDataError, nil))
	assert.Equal(t, ExitError, exitCode(os.ErrClosed))
}

func TestProtectNegatives(t *testing.T) {
	root := newRootCmd(&app{})
	in := []string{"centers", "-2", "--workers", "3", "--center", "-7", "--human", "-h", "--trace=-1", "-x1"}
	got := protectNegatives(root, in)

	assert.Equal(t, []string{"centers", "−2", "--workers", "3", "--center", "-7", "--human", "-h", "--trace=-1", "-x1"}, got)
	assert.Equal(t, "-2", in[1], "input is not modified")
	assert.Equal(t, "-2", restoreArg(got[1]))
	assert.Equal(t, "Bacon", restoreArg("Bacon"))

	tail := protectNegatives(root, []string{"separation", "--", "-1", "-3"})
	assert.Equal(t, []string{"separation", "--", "-1", "-3"}, tail)
}
