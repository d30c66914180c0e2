// SPDX-License-Identifier: MIT

// Package main provides the sixdeg CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sixdeg/builder"
	"github.com/katalvlaran/sixdeg/ingest"
	"github.com/katalvlaran/sixdeg/internal/config"
	"github.com/katalvlaran/sixdeg/internal/logging"
	"github.com/katalvlaran/sixdeg/internal/telemetry"
	"github.com/katalvlaran/sixdeg/universe"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one CLI invocation and returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(protectNegatives(root, args))
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	err = errors.Join(err, a.finish(ctx, stderr))
	if err != nil {
		return outputError(stdout, stderr, a.human, err)
	}
	return ExitSuccess
}

// app carries flag values and the per-invocation state shared by commands.
type app struct {
	configPath string
	human      bool
	metrics    bool
	trace      string
	center     string
	strict     bool
	workers    int
	data       config.Data

	cfg      *config.Config
	logger   *slog.Logger
	shutdown func(context.Context) error
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "sixdeg",
		Short: "Degrees of separation over a co-star graph",
		Long: `sixdeg answers "center of the universe" questions over a collaboration graph.

Entities (actors) sharing a group (movie) are joined by an edge labelled with
every group they share. Queries are answered relative to a center, Kevin Bacon
unless configured otherwise.

Records come from three pipe-delimited files (id|name, id|name, groupID|entityID)
or a SQLite database. All commands output JSON by default.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup(cmd) },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultPath(), "Path to the YAML config file")
	pf.BoolVar(&a.human, "human", false, "Use human-readable output instead of JSON")
	pf.BoolVar(&a.metrics, "metrics", false, "Write Prometheus metrics to stderr after the command")
	pf.StringVar(&a.trace, "trace", "", "Trace exporter: none or stdout (spans go to stderr)")
	pf.StringVar(&a.center, "center", "", "Center of the universe (default from config)")
	pf.BoolVar(&a.strict, "strict", false, "Fail on unresolvable membership records instead of skipping them")
	pf.StringVar(&a.data.Entities, "entities", "", "Entity file (id|name)")
	pf.StringVar(&a.data.Groups, "groups", "", "Group file (id|name)")
	pf.StringVar(&a.data.Memberships, "memberships", "", "Membership file (groupID|entityID)")
	pf.StringVar(&a.data.SQLite, "sqlite", "", "SQLite database holding the records")

	root.AddCommand(
		newCenterCmd(a),
		newPathCmd(a),
		newInfiniteCmd(a),
		newSeparationCmd(a),
		newDegreeCmd(a),
		newCentersCmd(a),
		newStatsCmd(a),
		newImportCmd(a),
	)

	return root
}

// setup resolves configuration (file, .env, environment, flags) and
// initializes logging and tracing.
func (a *app) setup(cmd *cobra.Command) error {
	_ = godotenv.Load()

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return withCode(ExitConfigError, err)
	}
	if err = cfg.ApplyEnv(nil); err != nil {
		return withCode(ExitConfigError, err)
	}
	a.applyFlags(cfg)
	a.cfg = cfg

	a.logger, err = logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return withCode(ExitConfigError, err)
	}

	a.shutdown, err = telemetry.Init(cmd.Context(), telemetry.Config{
		ServiceName: "sixdeg",
		Version:     Version,
		Exporter:    cfg.Tracing.Exporter,
		Output:      cmd.ErrOrStderr(),
	})
	if err != nil {
		return withCode(ExitConfigError, err)
	}

	return nil
}

// applyFlags lets explicitly set flags win over file and environment values.
func (a *app) applyFlags(cfg *config.Config) {
	if a.data != (config.Data{}) {
		cfg.Data = a.data
	}
	if a.center != "" {
		cfg.Center = a.center
	}
	if a.trace != "" {
		cfg.Tracing.Exporter = a.trace
	}
	if a.metrics {
		cfg.Metrics.Enabled = true
	}
	if a.strict {
		cfg.Build.Strict = true
	}
}

// finish dumps metrics when enabled and flushes tracing.
func (a *app) finish(ctx context.Context, stderr io.Writer) error {
	var errs []error
	if a.cfg != nil && a.cfg.Metrics.Enabled {
		errs = append(errs, telemetry.WriteMetrics(stderr, nil))
	}
	if a.shutdown != nil {
		errs = append(errs, a.shutdown(ctx))
	}
	return errors.Join(errs...)
}

// loadRecords reads records from the configured source.
func (a *app) loadRecords(ctx context.Context) (*builder.Records, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, withCode(ExitConfigError, err)
	}
	if a.cfg.UsesSQLite() {
		recs, err := ingest.LoadSQLite(ctx, a.cfg.Data.SQLite)
		if err != nil {
			return nil, withCode(ExitDataError, fmt.Errorf("loading %s: %w", a.cfg.Data.SQLite, err))
		}
		return recs, nil
	}

	d := a.cfg.Data
	recs, bad, err := ingest.LoadFiles(d.Entities, d.Groups, d.Memberships)
	for _, b := range bad {
		a.logger.Warn("malformed line skipped", "source", b.Source, "line", b.Line, "text", b.Text)
	}
	if err != nil {
		return nil, withCode(ExitDataError, err)
	}
	return recs, nil
}

// openUniverse loads records, builds the graph and centers it.
func (a *app) openUniverse(ctx context.Context) (*universe.Universe, builder.Report, error) {
	recs, err := a.loadRecords(ctx)
	if err != nil {
		return nil, builder.Report{}, err
	}

	opts := []builder.BuilderOption{builder.WithLogger(a.logger)}
	if a.cfg.Build.Strict {
		opts = append(opts, builder.WithStrict())
	}
	res, err := builder.Build(recs, opts...)
	if err != nil {
		return nil, builder.Report{}, withCode(ExitDataError, err)
	}
	for _, s := range res.Report.Skipped {
		a.logger.Warn("membership skipped", "error", s.Error())
	}

	u, err := universe.New(res.Graph, a.cfg.Center,
		universe.WithLogger(a.logger),
		universe.WithWorkers(a.workersOrDefault()),
	)
	if err != nil {
		return nil, res.Report, err
	}
	return u, res.Report, nil
}

func (a *app) workersOrDefault() int {
	if a.workers > 0 {
		return a.workers
	}
	return 1
}
