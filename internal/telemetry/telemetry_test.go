// SPDX-License-Identifier: MIT

package telemetry

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestWriteMetrics(t *testing.T) {
	RecordBFSRun("test")
	RecordCacheResult(CacheMiss)
	RecordCacheResult(CacheHit)
	ObserveRankDuration(3 * time.Millisecond)
	RecordBuildSkipped(2)
	RecordBuildSkipped(0)

	var buf bytes.Buffer
	require.NoError(t, WriteMetrics(&buf, nil))
	out := buf.String()

	assert.Contains(t, out, `sixdeg_bfs_runs_total{caller="test"}`)
	assert.Contains(t, out, `sixdeg_separation_cache_total{result="hit"}`)
	assert.Contains(t, out, "sixdeg_rank_duration_seconds_count")
	assert.Contains(t, out, "sixdeg_build_skipped_records_total")
	assert.NotContains(t, out, "go_goroutines", "non-sixdeg families are filtered")
}

func TestInit_Exporters(t *testing.T) {
	ctx := context.Background()

	shutdown, err := Init(ctx, Config{})
	require.NoError(t, err)
	require.NoError(t, shutdown(ctx))

	_, err = Init(ctx, Config{Exporter: "jaeger"})
	assert.ErrorIs(t, err, ErrUnknownExporter)

	var buf bytes.Buffer
	shutdown, err = Init(ctx, Config{ServiceName: "sixdeg", Exporter: ExporterStdout, Output: &buf})
	require.NoError(t, err)

	_, span := StartSpan(ctx, "test.span", attribute.String("center", "Kevin Bacon"))
	EndSpan(span, errors.New("boom"))
	require.NoError(t, shutdown(ctx))

	assert.Contains(t, buf.String(), "test.span")
	assert.Contains(t, buf.String(), "Kevin Bacon")
}
